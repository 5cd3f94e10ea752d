package btree

import (
	"go.uber.org/zap"

	"github.com/simonrossi/dynindex/internal/trace"
)

// Tree is an augmented B-tree of minimum degree Config.T and branching
// factor Config.B, keyed by K, carrying a satellite list of S per key, and
// supporting an O(1) whole-tree shift.
//
// A Tree has a single logical owner. Iterators borrow it read-only and must
// be discarded before any mutating call; there is no internal
// synchronization, matching the single-threaded cooperative model the core
// is specified against.
type Tree[K Key, S any] struct {
	cfg      Config
	root     *node[K, S]
	length   int
	freelist *FreeList[K, S]
	log      trace.Logger
}

// New creates an empty Tree using DefaultConfig.
func New[K Key, S any]() *Tree[K, S] {
	return NewTree[K, S](DefaultConfig())
}

// NewTree creates an empty Tree with the given Config.
func NewTree[K Key, S any](cfg Config) *Tree[K, S] {
	return NewWithFreeList[K, S](cfg, NewFreeList[K, S](DefaultFreeListSize))
}

// NewWithFreeList creates an empty Tree that draws and retires nodes through
// the given FreeList, letting multiple trees that are never mutated
// concurrently amortize node allocation.
func NewWithFreeList[K Key, S any](cfg Config, f *FreeList[K, S]) *Tree[K, S] {
	return &Tree[K, S]{
		cfg:      cfg,
		freelist: f,
		log:      trace.Nop(),
	}
}

// MakeSet creates a Tree containing a single entry (v, [s]), the public
// make_set operation.
func MakeSet[K Key, S any](v K, s S) *Tree[K, S] {
	t := New[K, S]()
	t.Insert(v, s)
	return t
}

// WithLogger attaches a zap.Logger for opt-in Debug-level structural
// tracing. A nil logger restores the default no-op. Returns t for chaining.
func (t *Tree[K, S]) WithLogger(l *zap.Logger) *Tree[K, S] {
	t.log = trace.New(l)
	return t
}

func (t *Tree[K, S]) newNode() *node[K, S] {
	n := t.freelist.newNode()
	n.cfg = t.cfg
	return n
}

func (t *Tree[K, S]) freeNode(n *node[K, S]) {
	t.freelist.freeNode(n)
}

// Len returns the number of entries in the tree.
func (t *Tree[K, S]) Len() int {
	return t.length
}

// IsEmpty reports whether the tree holds no entries.
func (t *Tree[K, S]) IsEmpty() bool {
	return t.length == 0
}

// Height returns the number of nodes on a root-to-leaf path, or 0 for an
// empty tree. Each call walks the leftmost spine, O(h); Join and Split call
// it once at the top and thread the result through their recursion instead
// of recomputing it per level, per the Design Notes on height tracking.
func (t *Tree[K, S]) Height() int {
	if t.root == nil {
		return 0
	}
	return t.root.height()
}

// GetMax returns the effective value of the largest key in the tree.
func (t *Tree[K, S]) GetMax() (K, bool) {
	if t.root == nil {
		var zero K
		return zero, false
	}
	return t.root.getMax(), true
}

// GetMin returns the effective value of the smallest key in the tree.
func (t *Tree[K, S]) GetMin() (K, bool) {
	if t.root == nil {
		var zero K
		return zero, false
	}
	return t.root.getMin(), true
}

// Shift adds delta to every effective key in the tree in O(1) by adjusting
// only the root's lazy shift.
func (t *Tree[K, S]) Shift(delta K) {
	if t.root == nil {
		return
	}
	t.root.shift += delta
}
