package btree

// removeKind selects which entry a recursive remove call is after, mirroring
// the teacher's toRemove: an internal key swap reduces to "remove the max of
// my left child" or "remove the min of my right child", reusing the same
// top-up machinery as removing an explicitly named key.
type removeKind int

const (
	removeItemKind removeKind = iota
	removeMinKind
	removeMaxKind
)

// remove extracts an entry from n's subtree and returns it with an effective
// (globally comparable) value, so the caller can re-base it into whatever
// frame it is stored in next without re-deriving ancestor sums. For
// removeItemKind, the caller must already have confirmed the key is present
// (Tree.Remove does this via Search) — remove never has to report "not
// found" partway through a structural top-up.
func (n *node[K, S]) remove(t *Tree[K, S], target, consumed K, kind removeKind) Entry[K, S] {
	consumed += n.shift
	local := target - consumed

	var i int
	var found bool
	switch kind {
	case removeMaxKind:
		if n.isLeaf() {
			e := n.entries.pop()
			return e.toEntry(e.value + consumed)
		}
		i = len(n.entries)
	case removeMinKind:
		if n.isLeaf() {
			e := n.entries.removeAt(0)
			return e.toEntry(e.value + consumed)
		}
		i = 0
	case removeItemKind:
		i, found = n.entries.find(local)
		if n.isLeaf() {
			e := n.entries.removeAt(i)
			return e.toEntry(target)
		}
	}

	if len(n.children[i].entries) < n.cfg.T {
		return n.growChildAndRemove(t, i, target, consumed, kind)
	}
	child := n.children[i]
	if kind == removeItemKind && found {
		out := n.entries[i]
		pred := child.remove(t, 0, consumed, removeMaxKind)
		n.entries[i] = entry[K, S]{value: pred.Value - consumed, satellites: pred.Satellites}
		return out.toEntry(target)
	}
	return child.remove(t, target, consumed, kind)
}

// growChildAndRemove ensures n.children[i] holds at least T entries before
// retrying the remove, by rotating a key through n from a sibling that can
// spare one, or fusing n.children[i] with a sibling when neither can. consumed
// is n's own full ancestor sum (inclusive of n.shift), matching what n.remove
// added before dispatching here.
func (n *node[K, S]) growChildAndRemove(t *Tree[K, S], i int, target, consumed K, kind removeKind) Entry[K, S] {
	switch {
	case i > 0 && len(n.children[i-1].entries) >= n.cfg.T:
		n.rotateRight(i)
	case i < len(n.entries) && len(n.children[i+1].entries) >= n.cfg.T:
		n.rotateLeft(i)
	default:
		if i >= len(n.entries) {
			i--
		}
		n.fuseChildren(t, i)
	}
	return n.remove(t, target, consumed-n.shift, kind)
}

// rotateRight moves n.children[i-1]'s max entry (and, if internal, its
// rightmost child) up through n and down into n.children[i], the classic
// borrow-from-left-sibling step, re-basing every moved value and shift.
func (n *node[K, S]) rotateRight(i int) {
	left := n.children[i-1]
	child := n.children[i]

	sinking := n.entries[i-1]
	child.entries.insertAt(0, entry[K, S]{value: sinking.value - child.shift, satellites: sinking.satellites})

	stolen := left.entries.pop()
	n.entries[i-1] = entry[K, S]{value: stolen.value + left.shift, satellites: stolen.satellites}

	if !left.isLeaf() {
		movedChild := left.children.removeAt(len(left.children) - 1)
		movedChild.shift = movedChild.shift + left.shift - child.shift
		child.children.insertAt(0, movedChild)
	}
}

// rotateLeft moves n.children[i+1]'s min entry (and, if internal, its
// leftmost child) up through n and down into n.children[i], the
// borrow-from-right-sibling step.
func (n *node[K, S]) rotateLeft(i int) {
	right := n.children[i+1]
	child := n.children[i]

	sinking := n.entries[i]
	child.entries = append(child.entries, entry[K, S]{value: sinking.value - child.shift, satellites: sinking.satellites})

	stolen := right.entries.removeAt(0)
	n.entries[i] = entry[K, S]{value: stolen.value + right.shift, satellites: stolen.satellites}

	if !right.isLeaf() {
		movedChild := right.children.removeAt(0)
		movedChild.shift = movedChild.shift + right.shift - child.shift
		child.children = append(child.children, movedChild)
	}
}

// Remove deletes v and returns its satellite list. Absence is detected via a
// Search up front, per the documented deviation from the reference's
// descend-then-discover-absent behaviour: there is no reason to perform
// top-up rotations that will simply be undone by nothing happening.
func (t *Tree[K, S]) Remove(v K) (K, []S, bool) {
	if _, ok := t.Search(v); !ok || t.root == nil {
		var zero K
		return zero, nil, false
	}
	e := t.root.remove(t, v, 0, removeItemKind)
	if len(t.root.entries) == 0 {
		if t.root.isLeaf() {
			t.freeNode(t.root)
			t.root = nil
		} else {
			old := t.root
			t.root = old.children[0]
			t.root.shift += old.shift
			t.freeNode(old)
		}
	}
	t.length--
	return e.Value, e.Satellites, true
}
