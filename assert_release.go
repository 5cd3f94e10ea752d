//go:build !dynindex_debug

package btree

// assertPrecondition is a no-op in release builds; see assert.go.
func assertPrecondition(cond bool, msg string) {}
