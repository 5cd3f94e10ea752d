// Package genome adapts the generic btree core to a genomic value shape,
// giving the core's Key and satellite type parameters something with the
// scale and layout of the coordinates and per-position annotations a
// dynamic minimizer index over DNA would actually see. It contains no
// minimizer-extraction or variant-application logic of its own — the core
// consumes an opaque key/satellite pair and this package exists only to
// give the demo program a realistic pair to hand it.
package genome

import "fmt"

// Position is a 0-based coordinate along a reference sequence. It satisfies
// btree.Key directly, since int64 already supports the ordering and
// addition the lazy-shift discipline needs.
type Position int64

// String renders a Position the way a human would read a genomic
// coordinate, one-based and with a leading "chr" omitted since this package
// carries no notion of which contig a coordinate belongs to.
func (p Position) String() string {
	return fmt.Sprintf("%d", int64(p)+1)
}
