//go:build debug

package locus

import "fmt"

// invariant panics if cond is false. It is only compiled into debug
// builds: a failed invariant here is a programmer error in a Gamut
// constructor's caller, not a user-facing failure.
func invariant(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
