package solve

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/kestrelcad/sketchsolve/constraint"
	"github.com/kestrelcad/sketchsolve/geom"
	"github.com/kestrelcad/sketchsolve/locus"
)

// Step is one committed propagation decision: which variable was chosen,
// its initial guess, the locus each certain constraint contributed, the
// intersection of those loci, its freedom score, and the position
// finally chosen for it.
type Step struct {
	Variable          constraint.PointID
	Initial           geom.Position
	PerConstraintLoci []locus.Gamut
	Intersected       locus.Gamut
	Freedom           int64
	Chosen            geom.Position
}

// Log is the ordered diagnostic trace of a [Solve] call: one [Step] per
// committed variable, plus the set of ids that were committed to their
// initial position because no constraint could pin them down.
type Log struct {
	Steps     []Step
	Arbitrary []constraint.PointID
}

// String renders the log as a human-readable table, for a host's
// diagnostic panel or CLI --format table output.
func (l Log) String() string {
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "variable\tinitial\tfreedom\tintersected\tchosen")
	for _, s := range l.Steps {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n", s.Variable, s.Initial, s.Freedom, s.Intersected, s.Chosen)
	}
	w.Flush()
	if len(l.Arbitrary) > 0 {
		ids := make([]string, len(l.Arbitrary))
		for i, id := range l.Arbitrary {
			ids[i] = string(id)
		}
		fmt.Fprintf(&b, "arbitrary: %s\n", strings.Join(ids, ", "))
	}
	return b.String()
}
