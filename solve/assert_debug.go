//go:build debug

package solve

import "fmt"

// invariant panics with a formatted message if cond is false. Compiled
// only into debug builds; see assert_release.go for the release no-op.
func invariant(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
