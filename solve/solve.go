package solve

import (
	"github.com/emirpasic/gods/maps/linkedhashmap"

	"github.com/kestrelcad/sketchsolve/constraint"
	"github.com/kestrelcad/sketchsolve/geom"
	"github.com/kestrelcad/sketchsolve/locus"
)

// Points is an ordered point-id-to-position map. Iteration order is
// insertion order, which the propagation loop's determinism and
// tie-breaking both depend on.
type Points = linkedhashmap.Map

// NewPoints returns an empty, insertion-ordered Points map.
func NewPoints() *Points {
	return linkedhashmap.New()
}

func getPosition(m *Points, id constraint.PointID) (geom.Position, bool) {
	v, found := m.Get(id)
	if !found {
		return geom.Position{}, false
	}
	p, ok := v.(geom.Position)
	return p, ok
}

// candidate is one unsolved point's state for the current round.
type candidate struct {
	id           constraint.PointID
	gamut        locus.Gamut
	loci         []locus.Gamut
	freedom      int64
	order        int
	unreferenced bool
}

// Solve runs the propagation loop to completion and returns the solved
// positions plus a diagnostic log.
//
// initial is read-only; Solve never mutates it. The returned Points map
// is freshly allocated and shares no state with initial.
func Solve(initial *Points, constraints []constraint.Constraint) (*Points, Log) {
	solved := NewPoints()
	var log Log

	unsolved := make([]constraint.PointID, 0, initial.Size())
	order := make(map[constraint.PointID]int, initial.Size())
	for i, k := range initial.Keys() {
		id := k.(constraint.PointID)
		unsolved = append(unsolved, id)
		order[id] = i
	}

	solvedLookup := func(id constraint.PointID) (geom.Position, bool) {
		return getPosition(solved, id)
	}

	for len(unsolved) > 0 {
		candidates := make([]candidate, 0, len(unsolved))
		for _, v := range unsolved {
			certain := certainConstraints(v, constraints, solved)
			gamut, loci := constraint.SolveLocal(v, certain, solvedLookup)
			candidates = append(candidates, candidate{
				id:           v,
				gamut:        gamut,
				loci:         loci,
				freedom:      locus.Freedom(gamut),
				order:        order[v],
				unreferenced: !mentionedByAny(v, constraints),
			})
		}

		chosen, ok := pickMostConstrained(candidates)
		if !ok {
			commitArbitrary(initial, solved, unsolved, &log)
			break
		}
		invariant(chosen.freedom > 0, "solve.Solve: chosen candidate %q has non-positive freedom %d", chosen.id, chosen.freedom)

		initialPos, _ := getPosition(initial, chosen.id)
		nearest, ok := locus.Nearest(chosen.gamut, initialPos)
		if !ok {
			nearest = initialPos
		}

		solved.Put(chosen.id, nearest)
		log.Steps = append(log.Steps, Step{
			Variable:          chosen.id,
			Initial:           initialPos,
			PerConstraintLoci: chosen.loci,
			Intersected:       chosen.gamut,
			Freedom:           chosen.freedom,
			Chosen:            nearest,
		})

		unsolved = removeID(unsolved, chosen.id)
	}

	return solved, log
}

// certainConstraints returns the constraints mentioning v whose other
// dependencies are all already solved.
func certainConstraints(v constraint.PointID, constraints []constraint.Constraint, solved *Points) []constraint.Constraint {
	var out []constraint.Constraint
	for _, c := range constraints {
		if !c.Mentions(v) {
			continue
		}
		certain := true
		for _, dep := range c.Dependencies() {
			if dep == v {
				continue
			}
			if _, found := getPosition(solved, dep); !found {
				certain = false
				break
			}
		}
		if certain {
			out = append(out, c)
		}
	}
	return out
}

// mentionedByAny reports whether any constraint mentions v at all,
// regardless of whether its other dependencies are solved yet. A
// variable no constraint ever mentions carries no information a
// propagation step could use — picking it normally would just copy its
// initial position under the guise of a "solved" plane locus, so such
// variables are excluded from picking entirely and fall through to the
// arbitrary fallback once they are all that remains unsolved.
func mentionedByAny(v constraint.PointID, constraints []constraint.Constraint) bool {
	for _, c := range constraints {
		if c.Mentions(v) {
			return true
		}
	}
	return false
}

// pickMostConstrained returns the candidate with the smallest non-zero
// freedom among those some constraint actually mentions, ties broken by
// initial-map iteration order. ok is false if every eligible candidate
// is void (freedom zero) or unreferenced by any constraint.
func pickMostConstrained(candidates []candidate) (candidate, bool) {
	var best candidate
	found := false
	for _, c := range candidates {
		if c.freedom == 0 || c.unreferenced {
			continue
		}
		if !found || c.freedom < best.freedom || (c.freedom == best.freedom && c.order < best.order) {
			best = c
			found = true
		}
	}
	return best, found
}

// commitArbitrary assigns every remaining unsolved id its initial
// position and records them as arbitrary in log.
func commitArbitrary(initial, solved *Points, unsolved []constraint.PointID, log *Log) {
	for _, id := range unsolved {
		p, _ := getPosition(initial, id)
		solved.Put(id, p)
		log.Arbitrary = append(log.Arbitrary, id)
	}
}

func removeID(ids []constraint.PointID, target constraint.PointID) []constraint.PointID {
	out := ids[:0]
	for _, id := range ids {
		if id != target {
			out = append(out, id)
		}
	}
	return out
}
