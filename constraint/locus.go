package constraint

import (
	"math"

	"github.com/kestrelcad/sketchsolve/geom"
	"github.com/kestrelcad/sketchsolve/locus"
)

// Positions resolves a point id to its already-solved position. LocusOf
// never calls Positions for the variable it is solving, only for a
// constraint's other dependencies.
type Positions func(id PointID) (geom.Position, bool)

// LocusOf returns the locus that constraint c places on variable v,
// given the positions of v's already-solved co-dependencies in solved.
// The caller (see the solve package) is responsible for only calling
// LocusOf with "certain" constraints — ones whose other dependencies are
// all present in solved; LocusOf itself does not re-check this and will
// fall back to an unconstraining plane locus for a missing dependency.
func LocusOf(v PointID, c Constraint, solved Positions) locus.Gamut {
	switch c.kind {
	case KindFixed:
		return locusOfFixed(v, c)
	case KindDistance:
		return locusOfDistance(v, c, solved)
	case KindAngle:
		return locusOfAngle(v, c, solved)
	case KindSegmentDistance:
		return locusOfSegmentDistance(v, c, solved)
	default:
		return locus.Void()
	}
}

func locusOfFixed(v PointID, c Constraint) locus.Gamut {
	a, p := c.Fixed()
	if a != v {
		return locus.Plane()
	}
	return locus.Point(p)
}

func locusOfDistance(v PointID, c Constraint, solved Positions) locus.Gamut {
	a, b, d := c.Distance()
	other := a
	if v == a {
		other = b
	}
	center, ok := solved(other)
	if !ok {
		return locus.Plane()
	}
	return locus.CircleLocus(geom.NewCircle(center, d))
}

// locusOfAngle handles an angle constraint between two point pairs.
// myLine is the pair containing v; otherLine is the other pair. Case A
// applies when v appears in both pairs (the pairs share v); Case B
// applies when v appears only in myLine.
func locusOfAngle(v PointID, c Constraint, solved Positions) locus.Gamut {
	pairA, pairB, theta := c.Angle()

	inA := pairA.P0 == v || pairA.P1 == v
	inB := pairB.P0 == v || pairB.P1 == v

	if inA && inB {
		return locusOfAngleCaseA(v, pairA, pairB, theta, solved)
	}

	var myLine, otherLine PointPair
	switch {
	case inA:
		myLine, otherLine = pairA, pairB
	case inB:
		myLine, otherLine = pairB, pairA
	default:
		return locus.Plane()
	}
	return locusOfAngleCaseB(v, myLine, otherLine, theta, solved)
}

// locusOfAngleCaseA implements the inscribed-angle-theorem construction:
// v is the shared point of both pairs, A is the other point of myLine, B
// is the other point of otherLine, and the locus is the union of the two
// circles through A and B for which A-v-B subtends angle theta.
func locusOfAngleCaseA(v PointID, pairA, pairB PointPair, theta float64, solved Positions) locus.Gamut {
	myOther := pairA.P0
	if myOther == v {
		myOther = pairA.P1
	}
	otherOther := pairB.P0
	if otherOther == v {
		otherOther = pairB.P1
	}

	a, okA := solved(myOther)
	b, okB := solved(otherOther)
	if !okA || !okB {
		return locus.Plane()
	}

	ab := geom.Distance(a, b)
	if ab < geom.GetEpsilon() {
		return locus.Void()
	}

	// tan(theta) -> 0 as theta -> 0 or pi, driving h to infinity: the
	// construction is ill-conditioned there. theta = pi/2 is not
	// degenerate (Thales' theorem gives h = 0 exactly) and needs no
	// special case.
	eps := geom.GetEpsilon()
	if math.Abs(theta) < eps || math.Abs(theta-math.Pi) < eps {
		return locus.Void()
	}

	m := geom.Midpoint(a, b)
	h := (ab / 2) / math.Tan(theta)

	dir := b.Subtract(a)
	unit, ok := dir.Unit()
	if !ok {
		return locus.Void()
	}
	n := unit.Perpendicular()

	center1 := m.Add(n.Scale(h))
	center2 := m.Subtract(n.Scale(h))
	r1 := geom.Distance(center1, a)
	r2 := geom.Distance(center2, a)

	return locus.Union(
		locus.CircleLocus(geom.NewCircle(center1, r1)),
		locus.CircleLocus(geom.NewCircle(center2, r2)),
	)
}

// locusOfAngleCaseB implements the standard angle-between-two-lines
// construction: otherLine's direction fixes a base angle, and v (the
// other point of myLine, reached via its fixed co-point) must lie on one
// of two candidate lines rotated +-theta from that base.
func locusOfAngleCaseB(v PointID, myLine, otherLine PointPair, theta float64, solved Positions) locus.Gamut {
	myOther := myLine.P0
	if myOther == v {
		myOther = myLine.P1
	}
	anchor, ok := solved(myOther)
	if !ok {
		return locus.Plane()
	}

	p0, ok0 := solved(otherLine.P0)
	p1, ok1 := solved(otherLine.P1)
	if !ok0 || !ok1 {
		return locus.Plane()
	}

	u := p1.Subtract(p0)
	unit, ok := u.Unit()
	if !ok {
		return locus.Plane()
	}

	alpha := math.Atan2(unit.Y, unit.X)
	dPlus := geom.NewPosition(math.Cos(alpha+theta), math.Sin(alpha+theta))
	dMinus := geom.NewPosition(math.Cos(alpha-theta), math.Sin(alpha-theta))

	linePlus := geom.NewLine(anchor, anchor.Add(dPlus))
	lineMinus := geom.NewLine(anchor, anchor.Add(dMinus))

	eps := geom.GetEpsilon()
	if math.Abs(theta) <= eps || math.Abs(theta-math.Pi/2) <= eps {
		return locus.LineLocus(linePlus)
	}
	return locus.Union(locus.LineLocus(linePlus), locus.LineLocus(lineMinus))
}

// locusOfSegmentDistance dispatches on whether v is the point off the
// line (a), one of the line's own endpoints, or neither.
func locusOfSegmentDistance(v PointID, c Constraint, solved Positions) locus.Gamut {
	a, pair, d := c.SegmentDistance()

	if v != a && v != pair.P0 && v != pair.P1 {
		return locus.Plane()
	}

	if a == pair.P0 || a == pair.P1 {
		// a lies on the very line it is being measured against: no
		// finite distance constrains it, so the locus is unconstraining.
		return locus.Plane()
	}

	if v == a {
		p0, ok0 := solved(pair.P0)
		p1, ok1 := solved(pair.P1)
		if !ok0 || !ok1 {
			return locus.Plane()
		}
		line := geom.NewSegment(p0, p1).Line()
		unit, ok := line.Direction()
		if !ok {
			return locus.Plane()
		}
		n := unit.Perpendicular()
		line1 := geom.NewLine(p0.Add(n.Scale(d)), p1.Add(n.Scale(d)))
		line2 := geom.NewLine(p0.Subtract(n.Scale(d)), p1.Subtract(n.Scale(d)))
		if d < geom.GetEpsilon() {
			return locus.LineLocus(line1)
		}
		return locus.Union(locus.LineLocus(line1), locus.LineLocus(line2))
	}

	// v is one of the line's endpoints (pair.P0 or pair.P1); the other
	// endpoint B is the pivot that stays put.
	other := pair.P0
	if other == v {
		other = pair.P1
	}
	aPos, okA := solved(a)
	bPos, okB := solved(other)
	if !okA || !okB {
		return locus.Plane()
	}

	ab := geom.Distance(aPos, bPos)
	eps := geom.GetEpsilon()
	if ab < eps {
		return locus.Plane()
	}
	if d > ab && d-ab > eps {
		return locus.Void()
	}

	ba := aPos.Subtract(bPos)
	unit, ok := ba.Unit()
	if !ok {
		return locus.Plane()
	}
	baseAngle := math.Atan2(unit.Y, unit.X)

	if math.Abs(ab-d) < eps {
		n := unit.Perpendicular()
		return locus.LineLocus(geom.NewLine(bPos, bPos.Add(n)))
	}

	theta := math.Asin(d / ab)
	dPlus := geom.NewPosition(math.Cos(baseAngle+theta), math.Sin(baseAngle+theta))
	dMinus := geom.NewPosition(math.Cos(baseAngle-theta), math.Sin(baseAngle-theta))
	linePlus := geom.NewLine(bPos, bPos.Add(dPlus))
	lineMinus := geom.NewLine(bPos, bPos.Add(dMinus))
	return locus.Union(locus.LineLocus(linePlus), locus.LineLocus(lineMinus))
}

// SolveLocal folds each of constraints' loci for v via intersection,
// starting from the unconstraining plane, and returns the result plus
// the per-constraint loci (for diagnostics).
func SolveLocal(v PointID, constraints []Constraint, solved Positions) (gamut locus.Gamut, loci []locus.Gamut) {
	gamut = locus.Plane()
	loci = make([]locus.Gamut, 0, len(constraints))
	for _, c := range constraints {
		g := LocusOf(v, c, solved)
		loci = append(loci, g)
		gamut = locus.Intersect(gamut, g)
	}
	return gamut, loci
}
