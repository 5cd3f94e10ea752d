package btree

import "fmt"

// CheckIntegrity walks the tree verifying occupancy, balance, and
// sortedness (invariants 1–3 of spec.md §8; invariant 4, shift
// transparency, holds by construction of every mutator and is exercised by
// the round-trip tests rather than checked structurally here). It is a
// read-only diagnostic: on failure it reports the first violation found and
// does not attempt any repair.
func (t *Tree[K, S]) CheckIntegrity() (bool, error) {
	if t.root == nil {
		if t.length != 0 {
			return false, fmt.Errorf("btree: empty root but length %d", t.length)
		}
		return true, nil
	}

	leafDepth := -1
	var walk func(n *node[K, S], depth int, isRoot bool) error
	walk = func(n *node[K, S], depth int, isRoot bool) error {
		if !isRoot && len(n.entries) < t.cfg.minItems() {
			return fmt.Errorf("btree: node at depth %d has %d entries, fewer than minimum %d", depth, len(n.entries), t.cfg.minItems())
		}
		if len(n.entries) > t.cfg.B {
			return fmt.Errorf("btree: node at depth %d has %d entries, more than branching factor %d", depth, len(n.entries), t.cfg.B)
		}
		if n.isLeaf() {
			if leafDepth == -1 {
				leafDepth = depth
			} else if leafDepth != depth {
				return fmt.Errorf("btree: leaf at depth %d, expected %d", depth, leafDepth)
			}
			return nil
		}
		if len(n.children) != len(n.entries)+1 {
			return fmt.Errorf("btree: node at depth %d has %d children for %d entries", depth, len(n.children), len(n.entries))
		}
		for i := 1; i < len(n.entries); i++ {
			if !(n.entries[i-1].value < n.entries[i].value) {
				return fmt.Errorf("btree: node at depth %d not strictly sorted at index %d", depth, i)
			}
		}
		for _, c := range n.children {
			if err := walk(c, depth+1, false); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(t.root, 0, true); err != nil {
		return false, err
	}

	it := t.Begin()
	var prev Entry[K, S]
	havePrev := false
	count := 0
	for {
		e, ok := it.Next()
		if !ok {
			break
		}
		if havePrev && !(prev.Value < e.Value) {
			return false, fmt.Errorf("btree: iteration not strictly increasing: %v then %v", prev.Value, e.Value)
		}
		prev, havePrev = e, true
		count++
	}
	if count != t.length {
		return false, fmt.Errorf("btree: iteration visited %d entries, tree length is %d", count, t.length)
	}
	return true, nil
}
