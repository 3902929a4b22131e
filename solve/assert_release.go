//go:build !debug

package solve

// invariant is a no-op in release builds; see assert_debug.go.
func invariant(cond bool, format string, args ...any) {}
