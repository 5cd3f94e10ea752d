package btree

import (
	"sort"
	"testing"
)

func TestIteratorOrderAfterShift(t *testing.T) {
	tr := New[int, sat]()
	for _, v := range perm(300) {
		tr.Insert(v, "s")
	}
	tr.Shift(-1000)

	got := allValues(tr)
	if !sort.IntsAreSorted(got) {
		t.Fatalf("iteration not sorted after shift: %v", got[:10])
	}
	if got[0] != -1000 || got[len(got)-1] != -701 {
		t.Fatalf("unexpected bounds after shift: min=%d max=%d", got[0], got[len(got)-1])
	}
}

func TestAllStopsEarly(t *testing.T) {
	tr := New[int, sat]()
	for _, v := range rang(100) {
		tr.Insert(v, "s")
	}
	count := 0
	tr.All(func(e Entry[int, sat]) bool {
		count++
		return count < 10
	})
	if count != 10 {
		t.Fatalf("All visited %d entries, want 10 (stop should short-circuit)", count)
	}
}

func TestEmptyTreeIteratesNothing(t *testing.T) {
	tr := New[int, sat]()
	it := tr.Begin()
	if _, ok := it.Next(); ok {
		t.Fatalf("Next() on an empty tree's iterator returned an entry")
	}
}
