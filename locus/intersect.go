package locus

import "github.com/kestrelcad/sketchsolve/geom"

// IntersectCircle returns the simplified intersection of g with the
// full circumference of c.
//
//   - plane ∩ c = the circle itself.
//   - circle ∩ c: two-circle intersection. A same-circle result keeps
//     the circle; otherwise a union of zero, one, or two points.
//   - point{p} ∩ c = p if p lies on c within epsilon, else void.
//   - line{l} ∩ c: the 0/1/2 points where l crosses c.
//   - union ∩ c = simplify(union of member-wise intersections).
//   - void ∩ c = void.
func IntersectCircle(g Gamut, c geom.Circle) Gamut {
	switch g.kind {
	case KindPlane:
		return CircleLocus(c)

	case KindCircle:
		rel, points := geom.IntersectCircleCircle(g.circle, c)
		switch rel {
		case geom.CirclesSame:
			return CircleLocus(g.circle)
		case geom.CirclesTangent, geom.CirclesTwoPoints:
			return pointUnion(points)
		default: // CirclesDisjoint, CirclesConcentricDistinct
			return Void()
		}

	case KindPoint:
		if withinEpsilonOfCircle(g.point, c) {
			return Point(g.point)
		}
		return Void()

	case KindLine:
		rel, points := geom.IntersectCircleLine(c, g.line)
		switch rel {
		case geom.CircleLineNone:
			return Void()
		default: // tangent, two points, diameter all yield point members
			return pointUnion(points)
		}

	case KindUnion:
		members := make([]Gamut, len(g.members))
		for i, m := range g.members {
			members[i] = IntersectCircle(m, c)
		}
		return simplifyMembers(members)

	case KindVoid:
		return Void()

	default:
		return Void()
	}
}

func withinEpsilonOfCircle(p geom.Position, c geom.Circle) bool {
	d := geom.Distance(p, c.Center) - c.Radius
	if d < 0 {
		d = -d
	}
	return d < geom.GetEpsilon()
}

func pointUnion(points []geom.Position) Gamut {
	members := make([]Gamut, len(points))
	for i, p := range points {
		members[i] = Point(p)
	}
	return simplifyMembers(members)
}

// IntersectLines returns the simplified intersection of g with the
// combined set of candidate lines ls. This operator exists for
// constraints that produce two candidate lines (e.g. the reflected pair
// from an angle constraint): the result is the intersection of g with
// their union, NOT their own union with each other (except for the
// separated-parallel case of a line g noted below).
//
//   - plane ∩ L = union of line{l} for each l in L.
//   - circle{c} ∩ L = union of all circle-line intersection points
//     across L.
//   - line{l0} ∩ L: per l in L, if non-parallel the unique intersection
//     point; if parallel and coincident (distance ≤ epsilon) l0 itself
//     is returned immediately; if parallel and separated, void is
//     returned immediately. Both short-circuit the rest of L: a
//     separated parallel line in L makes the result void even when
//     another line of L crosses l0.
//   - point{p} ∩ L = p if it lies on any l in L within epsilon, else
//     void.
//   - union ∩ L = simplify(member-wise).
//   - void ∩ L = void.
func IntersectLines(g Gamut, ls []geom.Line) Gamut {
	switch g.kind {
	case KindPlane:
		members := make([]Gamut, len(ls))
		for i, l := range ls {
			members[i] = LineLocus(l)
		}
		return simplifyMembers(members)

	case KindCircle:
		var points []geom.Position
		for _, l := range ls {
			_, pts := geom.IntersectCircleLine(g.circle, l)
			points = append(points, pts...)
		}
		return pointUnion(points)

	case KindLine:
		var points []geom.Position
		for _, l := range ls {
			if geom.Parallel(g.line, l) {
				if geom.Coincident(g.line, l) {
					return LineLocus(g.line)
				}
				return Void()
			}
			p, ok := geom.IntersectLineLine(g.line, l)
			if ok {
				points = append(points, p)
			}
		}
		return pointUnion(points)

	case KindPoint:
		for _, l := range ls {
			if d, ok := l.DistanceToPoint(g.point); ok && d <= geom.GetEpsilon() {
				return Point(g.point)
			}
		}
		return Void()

	case KindUnion:
		members := make([]Gamut, len(g.members))
		for i, m := range g.members {
			members[i] = IntersectLines(m, ls)
		}
		return simplifyMembers(members)

	case KindVoid:
		return Void()

	default:
		return Void()
	}
}

// Intersect returns the simplified intersection of a and b.
//
// Plane is the identity element and void is absorbing:
//
//	Intersect(Plane(), b) == b
//	Intersect(a, Plane()) == a
//	Intersect(Void(), b) == Void()
//	Intersect(a, Void()) == Void()
//
// If b is a union, the intersection distributes over its members. For a
// non-union, non-plane, non-void b, Intersect dispatches on b's kind:
// circle and line go through [IntersectCircle] / [IntersectLines] (both
// of which already handle any a, including a union), and point is
// handled by testing membership with [Nearest]. The operator is
// commutative in outcome even though the dispatch order differs by
// argument (see the package tests).
func Intersect(a, b Gamut) Gamut {
	if a.kind == KindPlane {
		return b
	}
	if b.kind == KindPlane {
		return a
	}
	if a.kind == KindVoid || b.kind == KindVoid {
		return Void()
	}
	if b.kind == KindUnion {
		members := make([]Gamut, len(b.members))
		for i, m := range b.members {
			members[i] = Intersect(a, m)
		}
		return simplifyMembers(members)
	}

	switch b.kind {
	case KindCircle:
		return IntersectCircle(a, b.circle)
	case KindLine:
		return IntersectLines(a, []geom.Line{b.line})
	case KindPoint:
		if nearest, ok := Nearest(a, b.point); ok && geom.Distance(nearest, b.point) <= geom.GetEpsilon() {
			return Point(b.point)
		}
		return Void()
	default:
		return Void()
	}
}
