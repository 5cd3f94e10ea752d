// Command dynindex-demo builds a tree over a handful of synthetic minimizer
// positions, applies a shift to simulate a variant insertion downstream of
// them, and prints the resulting in-order sequence. It exists to exercise
// the core end to end with a realistic value shape; it has no flags and no
// CLI framework, per the module's Non-goal on a command-line surface.
package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/simonrossi/dynindex"
	"github.com/simonrossi/dynindex/genome"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	t := btree.New[genome.Position, genome.Minimizer]().WithLogger(logger)

	seed := []struct {
		pos    genome.Position
		hash   uint64
		strand genome.Strand
	}{
		{120, 0xA1F0, genome.Forward},
		{144, 0xB2E1, genome.Forward},
		{201, 0xC3D2, genome.Reverse},
		{318, 0xD4C3, genome.Forward},
		{402, 0xE5B4, genome.Reverse},
	}
	for _, s := range seed {
		t.Insert(s.pos, genome.NewMinimizer(s.hash, 15, s.strand))
	}

	logger.Info("index built", zap.Int("entries", t.Len()))

	fmt.Println("before shift:")
	printAll(t)

	// Simulate a 12bp insertion at position 200: every minimizer downstream
	// moves forward by 12, in O(log n) rather than O(n).
	t.ShiftGreaterOrEqual(201, 12)

	fmt.Println("after +12 shift at position 201:")
	printAll(t)

	if ok, err := t.CheckIntegrity(); !ok {
		logger.Error("integrity check failed", zap.Error(err))
	}
}

func printAll(t *btree.Tree[genome.Position, genome.Minimizer]) {
	it := t.Begin()
	for {
		e, ok := it.Next()
		if !ok {
			break
		}
		for _, m := range e.Satellites {
			fmt.Printf("  pos=%-6s strand=%s hash=%#x id=%s\n", e.Value, m.Strand, m.Hash, m.ID)
		}
	}
}
