//go:build dynindex_debug

package btree

import "fmt"

// assertPrecondition panics with msg when cond is false. Only compiled in
// with -tags dynindex_debug: preconditions like "ShiftGreaterOrEqual's key
// must be present" are a contract with the sole caller, checked in debug
// builds and left unchecked (undefined behaviour on violation) in release,
// per spec.md §7 and §9.
func assertPrecondition(cond bool, msg string) {
	if !cond {
		panic(fmt.Sprintf("btree: precondition violated: %s", msg))
	}
}
