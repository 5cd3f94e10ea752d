package btree

// search descends for an entry with effective value target. It adds this
// node's own shift to consumed, the running sum of shifts above, and
// compares target minus that sum against its stored entries; the chosen
// child gets the unchanged target and the updated sum, and its own recursive
// step adds its own shift in turn.
func (n *node[K, S]) search(target, consumed K) (Entry[K, S], bool) {
	consumed += n.shift
	local := target - consumed
	i, found := n.entries.find(local)
	if found {
		return n.entries[i].toEntry(target), true
	}
	if n.isLeaf() {
		var zero Entry[K, S]
		return zero, false
	}
	return n.children[i].search(target, consumed)
}

// predecessor returns the entry with the largest effective value <= target.
func (n *node[K, S]) predecessor(target, consumed K) (Entry[K, S], bool) {
	consumed += n.shift
	local := target - consumed
	i, found := n.entries.find(local)
	if found {
		return n.entries[i].toEntry(target), true
	}
	if n.isLeaf() {
		if i > 0 {
			e := n.entries[i-1]
			return e.toEntry(e.value + consumed), true
		}
		var zero Entry[K, S]
		return zero, false
	}
	if res, ok := n.children[i].predecessor(target, consumed); ok {
		return res, true
	}
	if i > 0 {
		e := n.entries[i-1]
		return e.toEntry(e.value + consumed), true
	}
	var zero Entry[K, S]
	return zero, false
}

// successor returns the entry with the smallest effective value > target.
func (n *node[K, S]) successor(target, consumed K) (Entry[K, S], bool) {
	consumed += n.shift
	local := target - consumed
	i, found := n.entries.find(local)
	if found {
		i++
	}
	if n.isLeaf() {
		if i < len(n.entries) {
			e := n.entries[i]
			return e.toEntry(e.value + consumed), true
		}
		var zero Entry[K, S]
		return zero, false
	}
	if res, ok := n.children[i].successor(target, consumed); ok {
		return res, true
	}
	if i < len(n.entries) {
		e := n.entries[i]
		return e.toEntry(e.value + consumed), true
	}
	var zero Entry[K, S]
	return zero, false
}

// insert descends to place (target, sat), splitting a full child before
// entering it so that a leaf insertion never needs to signal "grew" back up
// through the recursion. Returns the resulting entry and whether it is new
// (as opposed to an append to an existing key's satellite list).
func (n *node[K, S]) insert(t *Tree[K, S], target K, sat S, consumed K) (Entry[K, S], bool) {
	consumed += n.shift
	local := target - consumed
	i, found := n.entries.find(local)
	if found {
		n.entries[i].satellites = append(n.entries[i].satellites, sat)
		return n.entries[i].toEntry(target), false
	}
	if n.isLeaf() {
		n.entries.insertAt(i, entry[K, S]{value: local, satellites: []S{sat}})
		return n.entries[i].toEntry(target), true
	}
	if n.children[i].full() {
		n.splitChild(t, i)
		switch {
		case local == n.entries[i].value:
			n.entries[i].satellites = append(n.entries[i].satellites, sat)
			return n.entries[i].toEntry(target), false
		case local > n.entries[i].value:
			i++
		}
	}
	return n.children[i].insert(t, target, sat, consumed)
}

// Insert adds sat under key v, appending to v's satellite list if v is
// already present. Returns the resulting entry with its full satellite
// list.
func (t *Tree[K, S]) Insert(v K, sat S) Entry[K, S] {
	if t.root == nil {
		t.root = t.newNode()
		t.root.entries = entries[K, S]{{value: v, satellites: []S{sat}}}
		t.length++
		return t.root.entries[0].toEntry(v)
	}
	if t.root.full() {
		newRoot := t.newNode()
		newRoot.children = children[K, S]{t.root}
		newRoot.splitChild(t, 0)
		t.root = newRoot
		t.log.Structural("grow_root", 0, len(newRoot.entries))
	}
	e, isNew := t.root.insert(t, v, sat, 0)
	if isNew {
		t.length++
	}
	return e
}

// Search returns the entry for v, if present.
func (t *Tree[K, S]) Search(v K) (Entry[K, S], bool) {
	if t.root == nil {
		var zero Entry[K, S]
		return zero, false
	}
	return t.root.search(v, 0)
}

// Predecessor returns the entry with the largest effective value <= v.
func (t *Tree[K, S]) Predecessor(v K) (Entry[K, S], bool) {
	if t.root == nil {
		var zero Entry[K, S]
		return zero, false
	}
	return t.root.predecessor(v, 0)
}

// Successor returns the entry with the smallest effective value > v.
func (t *Tree[K, S]) Successor(v K) (Entry[K, S], bool) {
	if t.root == nil {
		var zero Entry[K, S]
		return zero, false
	}
	return t.root.successor(v, 0)
}
