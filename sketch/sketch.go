// Package sketch defines the JSON schema collaborators use to persist a
// solver request and its result, and loads/saves it. This is purely an
// I/O boundary for cmd/sketchsolve: the solver core (geom, locus,
// constraint, solve) has no file format of its own.
package sketch

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/emirpasic/gods/maps/linkedhashmap"

	"github.com/kestrelcad/sketchsolve/constraint"
	"github.com/kestrelcad/sketchsolve/geom"
	"github.com/kestrelcad/sketchsolve/solve"
)

// Sketch is the external representation of a solve request: an ordered
// list of initial point positions (order is preserved from the file, so
// reproducing a dragging hint only requires reordering this list) and a
// list of constraints.
type Sketch struct {
	Points      []PointEntry     `json:"points"`
	Constraints []ConstraintSpec `json:"constraints"`
}

// PointEntry is one named initial position.
type PointEntry struct {
	ID constraint.PointID `json:"id"`
	X  float64            `json:"x"`
	Y  float64            `json:"y"`
}

// ConstraintSpec is the JSON form of a [constraint.Constraint]. Exactly
// one of the variant-specific field groups is populated, selected by
// Kind.
type ConstraintSpec struct {
	Kind string `json:"kind"`

	Point constraint.PointID `json:"point,omitempty"`
	X     float64            `json:"x,omitempty"`
	Y     float64            `json:"y,omitempty"`

	A      constraint.PointID `json:"a,omitempty"`
	B      constraint.PointID `json:"b,omitempty"`
	Length float64            `json:"length,omitempty"`

	PairAP0      constraint.PointID `json:"pairAP0,omitempty"`
	PairAP1      constraint.PointID `json:"pairAP1,omitempty"`
	PairBP0      constraint.PointID `json:"pairBP0,omitempty"`
	PairBP1      constraint.PointID `json:"pairBP1,omitempty"`
	ThetaRadians float64            `json:"thetaRadians,omitempty"`

	SegmentA  constraint.PointID `json:"segmentA,omitempty"`
	SegmentP0 constraint.PointID `json:"segmentP0,omitempty"`
	SegmentP1 constraint.PointID `json:"segmentP1,omitempty"`
	Distance  float64            `json:"distance,omitempty"`
}

const (
	kindFixed           = "fixed"
	kindDistance        = "distance"
	kindAngle           = "angle"
	kindSegmentDistance = "segment-distance"
)

// Load parses a Sketch from r.
func Load(r io.Reader) (Sketch, error) {
	var s Sketch
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return Sketch{}, fmt.Errorf("sketch: decode: %w", err)
	}
	return s, nil
}

// Save writes s to w as indented JSON.
func Save(w io.Writer, s Sketch) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("sketch: encode: %w", err)
	}
	return nil
}

// SaveResult writes r to w as indented JSON.
func SaveResult(w io.Writer, r Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("sketch: encode result: %w", err)
	}
	return nil
}

// PointsMap returns s's initial points as an insertion-ordered solve.Points
// map, preserving the file's declaration order.
func (s Sketch) PointsMap() *solve.Points {
	m := linkedhashmap.New()
	for _, p := range s.Points {
		m.Put(p.ID, geom.NewPosition(p.X, p.Y))
	}
	return m
}

// ToConstraints converts s's constraint specs to [constraint.Constraint]
// values, or an error on the first invalid spec.
func (s Sketch) ToConstraints() ([]constraint.Constraint, error) {
	out := make([]constraint.Constraint, 0, len(s.Constraints))
	for i, spec := range s.Constraints {
		c, err := spec.toConstraint()
		if err != nil {
			return nil, fmt.Errorf("sketch: constraint %d: %w", i, err)
		}
		out = append(out, c)
	}
	return out, nil
}

func (spec ConstraintSpec) toConstraint() (constraint.Constraint, error) {
	switch spec.Kind {
	case kindFixed:
		return constraint.NewFixed(spec.Point, geom.NewPosition(spec.X, spec.Y)), nil
	case kindDistance:
		return constraint.NewDistance(spec.A, spec.B, spec.Length)
	case kindAngle:
		return constraint.NewAngle(
			constraint.PointPair{P0: spec.PairAP0, P1: spec.PairAP1},
			constraint.PointPair{P0: spec.PairBP0, P1: spec.PairBP1},
			spec.ThetaRadians,
		)
	case kindSegmentDistance:
		return constraint.NewSegmentDistance(
			spec.SegmentA,
			constraint.PointPair{P0: spec.SegmentP0, P1: spec.SegmentP1},
			spec.Distance,
		)
	default:
		return constraint.Constraint{}, fmt.Errorf("unknown constraint kind %q", spec.Kind)
	}
}

// Result is the external representation of a solve's output: the solved
// positions (in the same order as the request's points) and the
// diagnostic log.
type Result struct {
	Solution  []PointEntry `json:"solution"`
	Arbitrary []string     `json:"arbitrary,omitempty"`
	Steps     []StepEntry  `json:"steps"`
}

// StepEntry is the JSON form of a [solve.Step].
type StepEntry struct {
	Variable    constraint.PointID `json:"variable"`
	Initial     PointEntry         `json:"initial"`
	Freedom     int64              `json:"freedom"`
	Intersected string             `json:"intersected"`
	Chosen      PointEntry         `json:"chosen"`
}

// NewResult builds a Result from the ordered request points, the solved
// map, and the diagnostic log, preserving the request's point order in
// the output solution list.
func NewResult(requestOrder []constraint.PointID, solution *solve.Points, log solve.Log) Result {
	r := Result{Solution: make([]PointEntry, 0, len(requestOrder))}
	for _, id := range requestOrder {
		v, found := solution.Get(id)
		if !found {
			continue
		}
		p := v.(geom.Position)
		r.Solution = append(r.Solution, PointEntry{ID: id, X: p.X, Y: p.Y})
	}
	for _, id := range log.Arbitrary {
		r.Arbitrary = append(r.Arbitrary, string(id))
	}
	for _, step := range log.Steps {
		r.Steps = append(r.Steps, StepEntry{
			Variable:    step.Variable,
			Initial:     PointEntry{ID: step.Variable, X: step.Initial.X, Y: step.Initial.Y},
			Freedom:     step.Freedom,
			Intersected: step.Intersected.String(),
			Chosen:      PointEntry{ID: step.Variable, X: step.Chosen.X, Y: step.Chosen.Y},
		})
	}
	return r
}

// roundTripEpsilon bounds the precision JSON round-tripping is expected
// to preserve; callers comparing a re-loaded Sketch to its source should
// use this rather than exact equality.
const roundTripEpsilon = 1e-9

func nearlyEqual(a, b float64) bool {
	return math.Abs(a-b) <= roundTripEpsilon
}
