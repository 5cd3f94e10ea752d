package btree

// Merge unions other into t in place, without the ordering precondition
// Join carries: t and other may have arbitrarily interleaved key ranges,
// and any key present in both keeps both satellite lists, t's entries
// before other's. It is the Farach-Thorup linearizing merge described in
// the original reference implementation's merge(), expressed here directly
// in terms of Split and Join rather than an element-by-element extract-and-insert pass:
// each round peels off the lowest contiguous run bounded by the smaller of
// the two trees' current minimums and joins it onto an accumulator, so the
// only key re-inserted into a full-height tree is a key present in both,
// which is removed from d and re-inserted there with its combined satellite
// list. other is left empty.
func (t *Tree[K, S]) Merge(other *Tree[K, S]) {
	if t.root == nil {
		t.root, t.length = other.root, other.length
		other.root, other.length = nil, 0
		return
	}
	if other.root == nil {
		return
	}

	a, d := t, other
	aIsT := true // tracks which of a/d descends from t's data, not from other's
	acc := NewTree[K, S](t.cfg)

	for {
		minA, _ := a.GetMin()
		minD, _ := d.GetMin()
		if minD < minA {
			a, d = d, a
			minA, minD = minD, minA
			aIsT = !aIsT
		}

		lowPart := a.Split(minD)  // a keeps <= minD, lowPart holds > minD
		dup := a.Split(minD - 1)  // a keeps < minD, dup holds the possible duplicate == minD

		if !dup.IsEmpty() {
			it := dup.Begin()
			dupEntry, _ := it.Next()
			if _, sats, ok := d.Remove(minD); ok {
				// Concatenation order must track lineage, not the current
				// pointer identity of a/d: Split hands back a brand new
				// *Tree each round, so aIsT (flipped only on an actual
				// swap) is what keeps t's satellites first regardless of
				// how many rounds have run.
				first, second := dupEntry.Satellites, sats
				if !aIsT {
					first, second = sats, dupEntry.Satellites
				}
				combined := append(append([]S{}, first...), second...)
				for _, s := range combined {
					d.Insert(minD, s)
				}
			}
		}

		acc.Join(a)
		a = lowPart
		if a.IsEmpty() || d.IsEmpty() {
			break
		}
	}

	acc.Join(a)
	acc.Join(d)

	t.root, t.length = acc.root, acc.length
	other.root, other.length = nil, 0
}
