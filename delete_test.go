package btree

import "testing"

func TestRemove(t *testing.T) {
	tr := New[int, sat]()
	const treeSize = 300
	for _, v := range perm(treeSize) {
		tr.Insert(v, "s")
	}
	for _, v := range perm(treeSize) {
		val, sats, ok := tr.Remove(v)
		if !ok || val != v || len(sats) != 1 || sats[0] != "s" {
			t.Fatalf("Remove(%d) = %d, %v, %v", v, val, sats, ok)
		}
		if _, ok := tr.Search(v); ok {
			t.Fatalf("Search(%d) succeeded after removal", v)
		}
	}
	if tr.Len() != 0 || !tr.IsEmpty() {
		t.Fatalf("tree not empty after removing everything: Len()=%d", tr.Len())
	}
}

func TestRemoveAbsentKey(t *testing.T) {
	tr := New[int, sat]()
	tr.Insert(1, "s")
	tr.Insert(2, "s")
	if _, _, ok := tr.Remove(99); ok {
		t.Fatalf("Remove reported success for an absent key")
	}
	if tr.Len() != 2 {
		t.Fatalf("Len() = %d, want 2 (failed remove must not mutate the tree)", tr.Len())
	}
}

func TestRemoveKeepsSatelliteList(t *testing.T) {
	tr := New[int, sat]()
	tr.Insert(1, "a")
	tr.Insert(1, "b")
	tr.Insert(1, "c")
	_, sats, ok := tr.Remove(1)
	if !ok || len(sats) != 3 {
		t.Fatalf("Remove(1) = %v, %v; want 3 satellites", sats, ok)
	}
}

func TestRemoveMaintainsIntegrityUnderRandomOps(t *testing.T) {
	tr := New[int, sat]()
	const treeSize = 400
	inserted := map[int]bool{}
	for _, v := range perm(treeSize) {
		tr.Insert(v, "s")
		inserted[v] = true
		if ok, err := tr.CheckIntegrity(); !ok {
			t.Fatalf("integrity broken after inserting %d: %v", v, err)
		}
	}
	for _, v := range perm(treeSize) {
		if v%3 == 0 {
			continue
		}
		tr.Remove(v)
		delete(inserted, v)
		if ok, err := tr.CheckIntegrity(); !ok {
			t.Fatalf("integrity broken after removing %d: %v", v, err)
		}
	}
	if tr.Len() != len(inserted) {
		t.Fatalf("Len() = %d, want %d", tr.Len(), len(inserted))
	}
	for v := range inserted {
		if _, ok := tr.Search(v); !ok {
			t.Fatalf("Search(%d) failed for a key that should remain", v)
		}
	}
}
