// Package constraint defines the closed Constraint variant the solver
// operates on — fixed, distance, angle, and segment-distance — and the
// PointID type used throughout this module to name sketch points.
package constraint

import (
	"fmt"

	"github.com/kestrelcad/sketchsolve/geom"
)

// PointID names a point in a sketch. The solver treats every id
// identically; no id is reserved (spec §6).
type PointID string

// PointPair is an ordered pair of point ids, used by angle and
// segment-distance constraints to name the two endpoints of a line.
type PointPair struct {
	P0, P1 PointID
}

// Kind discriminates the four closed variants of a [Constraint].
type Kind uint8

const (
	// KindFixed pins a single point to an exact position.
	KindFixed Kind = iota
	// KindDistance fixes the Euclidean distance between two points.
	KindDistance
	// KindAngle fixes the angle between the undirected lines through
	// two ordered point pairs.
	KindAngle
	// KindSegmentDistance fixes the perpendicular distance from a point
	// to the infinite line through an ordered pair of other points.
	KindSegmentDistance
)

// String returns the name of the Kind, for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindFixed:
		return "fixed"
	case KindDistance:
		return "distance"
	case KindAngle:
		return "angle"
	case KindSegmentDistance:
		return "segment-distance"
	default:
		return "unknown"
	}
}

// Constraint is one geometric relationship among one or more points,
// identified by the [PointID]s in its payload (see [Constraint.Dependencies]).
type Constraint struct {
	kind Kind

	fixedPoint    PointID
	fixedPosition geom.Position

	distanceA, distanceB PointID
	distanceLength       float64

	anglePairA, anglePairB PointPair
	angleTheta             float64

	segmentPoint PointID
	segmentPair  PointPair
	segmentD     float64
}

// Kind returns c's variant tag.
func (c Constraint) Kind() Kind {
	return c.kind
}

// NewFixed returns the constraint pinning a to position p.
func NewFixed(a PointID, p geom.Position) Constraint {
	return Constraint{kind: KindFixed, fixedPoint: a, fixedPosition: p}
}

// Fixed returns the payload of a [KindFixed] constraint.
func (c Constraint) Fixed() (a PointID, p geom.Position) {
	return c.fixedPoint, c.fixedPosition
}

// NewDistance returns the constraint pinning the distance between a and
// b to d, or an error if d is negative or a and b are the same point
// (such a constraint would only ever give its point an unconstraining
// plane locus, since [LocusOf] would look up the point being solved as
// the circle's center).
func NewDistance(a, b PointID, d float64) (Constraint, error) {
	if d < 0 {
		return Constraint{}, fmt.Errorf("constraint: distance must be non-negative, got %g", d)
	}
	if a == b {
		return Constraint{}, fmt.Errorf("constraint: distance requires two distinct points, got %q twice", a)
	}
	return Constraint{kind: KindDistance, distanceA: a, distanceB: b, distanceLength: d}, nil
}

// Distance returns the payload of a [KindDistance] constraint.
func (c Constraint) Distance() (a, b PointID, d float64) {
	return c.distanceA, c.distanceB, c.distanceLength
}

// NewAngle returns the constraint pinning the angle between the
// undirected lines through pairA and pairB to theta radians, or an
// error if either pair names the same point twice.
//
// theta itself is not validated here: whether a given theta is
// degenerate depends on which point of the constraint is being solved
// (see [LocusOf]'s Case A / Case B split), not on the constraint in
// isolation.
func NewAngle(pairA, pairB PointPair, theta float64) (Constraint, error) {
	if pairA.P0 == pairA.P1 {
		return Constraint{}, fmt.Errorf("constraint: angle pair A repeats point %q", pairA.P0)
	}
	if pairB.P0 == pairB.P1 {
		return Constraint{}, fmt.Errorf("constraint: angle pair B repeats point %q", pairB.P0)
	}
	return Constraint{kind: KindAngle, anglePairA: pairA, anglePairB: pairB, angleTheta: theta}, nil
}

// Angle returns the payload of a [KindAngle] constraint.
func (c Constraint) Angle() (pairA, pairB PointPair, theta float64) {
	return c.anglePairA, c.anglePairB, c.angleTheta
}

// NewSegmentDistance returns the constraint pinning the perpendicular
// distance from a to the infinite line through pair to d, or an error
// if d is negative or pair names the same point twice.
func NewSegmentDistance(a PointID, pair PointPair, d float64) (Constraint, error) {
	if d < 0 {
		return Constraint{}, fmt.Errorf("constraint: segment-distance must be non-negative, got %g", d)
	}
	if pair.P0 == pair.P1 {
		return Constraint{}, fmt.Errorf("constraint: segment-distance pair repeats point %q", pair.P0)
	}
	return Constraint{kind: KindSegmentDistance, segmentPoint: a, segmentPair: pair, segmentD: d}, nil
}

// SegmentDistance returns the payload of a [KindSegmentDistance]
// constraint.
func (c Constraint) SegmentDistance() (a PointID, pair PointPair, d float64) {
	return c.segmentPoint, c.segmentPair, c.segmentD
}

// Dependencies returns every point id the constraint mentions.
func (c Constraint) Dependencies() []PointID {
	switch c.kind {
	case KindFixed:
		return []PointID{c.fixedPoint}
	case KindDistance:
		return []PointID{c.distanceA, c.distanceB}
	case KindAngle:
		return dedupe(c.anglePairA.P0, c.anglePairA.P1, c.anglePairB.P0, c.anglePairB.P1)
	case KindSegmentDistance:
		return dedupe(c.segmentPoint, c.segmentPair.P0, c.segmentPair.P1)
	default:
		return nil
	}
}

// Mentions reports whether the constraint's dependencies include v.
func (c Constraint) Mentions(v PointID) bool {
	for _, id := range c.Dependencies() {
		if id == v {
			return true
		}
	}
	return false
}

func dedupe(ids ...PointID) []PointID {
	seen := make(map[PointID]bool, len(ids))
	out := make([]PointID, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
