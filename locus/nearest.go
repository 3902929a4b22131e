package locus

import "github.com/kestrelcad/sketchsolve/geom"

// Nearest returns the position in g closest to q, and false iff g is
// empty. Every returned position satisfies g's defining predicate
// within epsilon (spec §8, universal property 5).
//
//   - [KindPlane]: q itself.
//   - [KindPoint]: the point.
//   - [KindCircle]: if q is within epsilon of the center (undefined
//     radial direction), a deterministic boundary point
//     (center + (radius, 0)); otherwise q projected radially onto the
//     circumference.
//   - [KindLine]: the orthogonal projection of q onto the line.
//   - [KindUnion]: the nearest among the members' nearest results, by
//     Euclidean distance to q; ties are broken by member order.
//   - [KindVoid]: none.
func Nearest(g Gamut, q geom.Position) (geom.Position, bool) {
	switch g.kind {
	case KindPlane:
		return q, true

	case KindPoint:
		return g.point, true

	case KindCircle:
		if geom.Distance(q, g.circle.Center) <= geom.GetEpsilon() {
			return g.circle.Center.Add(geom.NewPosition(g.circle.Radius, 0)), true
		}
		dir, ok := q.Subtract(g.circle.Center).Unit()
		if !ok {
			// Unreachable given the epsilon check above, but avoids a
			// hidden division by zero if epsilon is reconfigured
			// between the distance check and here.
			return g.circle.Center.Add(geom.NewPosition(g.circle.Radius, 0)), true
		}
		return g.circle.Center.Add(dir.Scale(g.circle.Radius)), true

	case KindLine:
		p, ok := g.line.ProjectPoint(q)
		if !ok {
			return geom.Position{}, false
		}
		return p, true

	case KindUnion:
		var (
			best     geom.Position
			found    bool
			bestDist float64
		)
		for _, m := range g.members {
			p, ok := Nearest(m, q)
			if !ok {
				continue
			}
			d := geom.Distance(p, q)
			if !found || d < bestDist {
				best, bestDist, found = p, d, true
			}
		}
		return best, found

	case KindVoid:
		return geom.Position{}, false

	default:
		return geom.Position{}, false
	}
}
