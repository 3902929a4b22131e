//go:build !debug

package locus

// invariant is a no-op outside of debug builds; see assert_debug.go.
func invariant(cond bool, format string, args ...any) {
	_ = cond
	_ = format
}
