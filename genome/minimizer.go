package genome

import "github.com/google/uuid"

// Strand records which strand of the reference a Minimizer's k-mer was
// drawn from.
type Strand int8

const (
	Forward Strand = iota
	Reverse
)

func (s Strand) String() string {
	if s == Reverse {
		return "-"
	}
	return "+"
}

// Minimizer is the satellite payload attached to a Position in the index: a
// k-mer's hash, the strand it was read from, and a stable ID minted once at
// creation. The ID exists so that two Minimizers extracted from the same
// window of the same read at different times (e.g. across a re-index after
// a shift) can be told apart without comparing hashes, mirroring the kind
// of identity a real index needs once it starts tracking provenance instead
// of just membership.
type Minimizer struct {
	ID     uuid.UUID
	Hash   uint64
	K      int
	Strand Strand
}

// NewMinimizer mints a Minimizer with a fresh random ID.
func NewMinimizer(hash uint64, k int, strand Strand) Minimizer {
	return Minimizer{ID: uuid.New(), Hash: hash, K: k, Strand: strand}
}
