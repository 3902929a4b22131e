// Package solve implements the propagation loop: given an ordered map of
// initial point positions and a sequence of constraints, it repeatedly
// picks the most-constrained unsolved point, snaps it to the nearest
// position on its combined locus, and falls back to committing the
// remaining points to their initial guesses when no more progress is
// possible. See [Solve].
package solve

