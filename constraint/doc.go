// Package constraint translates a closed Constraint variant — fixed,
// distance, angle, segment-distance — into the locus it places on one of
// its dependent points, given the already-solved positions of its other
// dependencies. See [LocusOf] and [SolveLocal].
package constraint
