// Package locus implements the closed locus algebra the solver uses to
// represent "the set of positions a point may occupy": a [Gamut] is one
// of six variants (plane, point, circle, line, union, void), closed
// under the intersection operators defined in this package.
//
// Gamuts are immutable values. Every exported constructor and
// intersection operator returns a value already in [Simplify]'d form
// (or the [Void] sentinel), so a Gamut observed outside this package
// never holds a nested union, a union with fewer than two members, or a
// union containing a void member.
package locus

import (
	"fmt"
	"strings"

	"github.com/kestrelcad/sketchsolve/geom"
)

// Kind discriminates the six closed variants of a [Gamut].
type Kind uint8

const (
	// KindPlane is the entire plane: every position satisfies it.
	KindPlane Kind = iota
	// KindPoint is a single position.
	KindPoint
	// KindCircle is the full circumference of a circle.
	KindCircle
	// KindLine is an infinite line.
	KindLine
	// KindUnion is a non-empty disjunction of two or more other gamuts,
	// none of which is itself a union or void.
	KindUnion
	// KindVoid is the empty set.
	KindVoid
)

// String returns the name of the Kind, for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindPlane:
		return "plane"
	case KindPoint:
		return "point"
	case KindCircle:
		return "circle"
	case KindLine:
		return "line"
	case KindUnion:
		return "union"
	case KindVoid:
		return "void"
	default:
		return "unknown"
	}
}

// Gamut is a subset of the plane: the set of positions a solved point may
// occupy given the constraints resolved so far. See the package doc for
// the closure guarantee every exported Gamut-producing function upholds.
type Gamut struct {
	kind    Kind
	point   geom.Position
	circle  geom.Circle
	line    geom.Line
	members []Gamut
}

// Plane returns the gamut containing every position in the plane.
func Plane() Gamut {
	return Gamut{kind: KindPlane}
}

// Void returns the empty gamut.
func Void() Gamut {
	return Gamut{kind: KindVoid}
}

// Point returns the gamut containing exactly p.
//
// Panics in debug builds (see assert_debug.go) if p is not finite; this
// is a programmer error at the boundary, not a user-facing failure (see
// spec §7).
func Point(p geom.Position) Gamut {
	invariant(p.IsFinite(), "locus.Point: non-finite position %v", p)
	return Gamut{kind: KindPoint, point: p}
}

// CircleLocus returns the gamut containing every position on c's
// circumference.
func CircleLocus(c geom.Circle) Gamut {
	invariant(c.Center.IsFinite() && c.Radius >= 0, "locus.CircleLocus: invalid circle %v", c)
	return Gamut{kind: KindCircle, circle: c}
}

// LineLocus returns the gamut containing every position on the infinite
// line l.
//
// Panics in debug builds if l is degenerate (its two endpoints are
// within epsilon of coincident): a Line gamut member must have a
// well-defined direction. Callers with a possibly-degenerate line should
// branch before constructing a LineLocus (every call site in this
// module's locus_of translation already does).
func LineLocus(l geom.Line) Gamut {
	invariant(!l.Degenerate(), "locus.LineLocus: degenerate line %v", l)
	return Gamut{kind: KindLine, line: l}
}

// Union returns the simplified union of the given members: nested
// unions are flattened, void members are dropped, and a result with
// zero or one surviving member collapses to [Void] or that member.
func Union(members ...Gamut) Gamut {
	return simplifyMembers(members)
}

// Kind returns g's variant tag.
func (g Gamut) Kind() Kind {
	return g.kind
}

// AsPoint returns g's position and true if g is a [KindPoint] gamut.
func (g Gamut) AsPoint() (geom.Position, bool) {
	if g.kind != KindPoint {
		return geom.Position{}, false
	}
	return g.point, true
}

// AsCircle returns g's circle and true if g is a [KindCircle] gamut.
func (g Gamut) AsCircle() (geom.Circle, bool) {
	if g.kind != KindCircle {
		return geom.Circle{}, false
	}
	return g.circle, true
}

// AsLine returns g's line and true if g is a [KindLine] gamut.
func (g Gamut) AsLine() (geom.Line, bool) {
	if g.kind != KindLine {
		return geom.Line{}, false
	}
	return g.line, true
}

// Members returns a copy of g's union members, or nil if g is not a
// [KindUnion] gamut.
func (g Gamut) Members() []Gamut {
	if g.kind != KindUnion {
		return nil
	}
	out := make([]Gamut, len(g.members))
	copy(out, g.members)
	return out
}

// String returns a human-readable representation of g, used by the
// propagation log.
func (g Gamut) String() string {
	switch g.kind {
	case KindPlane:
		return "plane"
	case KindVoid:
		return "void"
	case KindPoint:
		return fmt.Sprintf("point%s", g.point)
	case KindCircle:
		return g.circle.String()
	case KindLine:
		return g.line.String()
	case KindUnion:
		parts := make([]string, len(g.members))
		for i, m := range g.members {
			parts[i] = m.String()
		}
		return "union{" + strings.Join(parts, ", ") + "}"
	default:
		return "unknown"
	}
}

// Simplify returns g in canonical form: nested unions flattened, void
// members dropped, empty unions rewritten to [Void], and singleton
// unions rewritten to their sole member. Non-union gamuts are returned
// unchanged, since every constructor other than [Union] already
// produces a canonical value.
//
// Simplify is idempotent: Simplify(Simplify(g)) equals Simplify(g).
func Simplify(g Gamut) Gamut {
	if g.kind != KindUnion {
		return g
	}
	return simplifyMembers(g.members)
}

func simplifyMembers(members []Gamut) Gamut {
	var flat []Gamut
	var flatten func([]Gamut)
	flatten = func(ms []Gamut) {
		for _, m := range ms {
			switch m.kind {
			case KindVoid:
				continue
			case KindUnion:
				flatten(m.members)
			default:
				flat = append(flat, m)
			}
		}
	}
	flatten(members)

	switch len(flat) {
	case 0:
		return Void()
	case 1:
		return flat[0]
	default:
		return Gamut{kind: KindUnion, members: flat}
	}
}

// freedomUnit is the sentinel magnitude used to rank 2-D gamuts above
// 1-D gamuts above any plausible sum of 0-D (point) gamuts. Its square
// ranks plane strictly above every other variant; see [Freedom].
const freedomUnit = 100000

// Freedom returns a dimension-ordered score used only to rank candidate
// variables during propagation (see the solve package): plane scores
// highest, then circle and line (equal, both 1-D), then point, then
// void lowest (zero). A union's freedom is the sum of its simplified
// members' freedoms, so a union of many points can still outrank a
// single line if it has enough members — by design, see spec §4.2 and
// the glossary entry for Freedom.
func Freedom(g Gamut) int64 {
	switch g.kind {
	case KindPlane:
		return int64(freedomUnit) * int64(freedomUnit)
	case KindLine, KindCircle:
		return int64(freedomUnit)
	case KindPoint:
		return 1
	case KindVoid:
		return 0
	case KindUnion:
		var sum int64
		for _, m := range g.members {
			sum += Freedom(m)
		}
		return sum
	default:
		return 0
	}
}

// IsEmpty reports whether g is [Void], or a union all of whose members
// are empty (accepted even if g was not simplified first).
func IsEmpty(g Gamut) bool {
	switch g.kind {
	case KindVoid:
		return true
	case KindUnion:
		for _, m := range g.members {
			if !IsEmpty(m) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
