// Package trace wraps the structured-logging library the core uses for
// opt-in diagnostic visibility into shift propagation. It exists so the
// hot-path call sites (shift-greater-or-equal, split, merge-children,
// join, split-by-value) can carry a single cheap field access instead of a
// zap.Logger nil check scattered through the algorithm code.
package trace

import "go.uber.org/zap"

// Logger wraps a *zap.Logger, defaulting to a no-op so the default
// construction path never pays for logging it never uses.
type Logger struct {
	z *zap.Logger
}

// New wraps z. A nil z is treated the same as zap.NewNop().
func New(z *zap.Logger) Logger {
	if z == nil {
		z = zap.NewNop()
	}
	return Logger{z: z}
}

// Nop returns a Logger that discards everything.
func Nop() Logger {
	return Logger{z: zap.NewNop()}
}

// ShiftGreater records a shift-greater-or-equal touch on a single node: how
// many entries and child subtrees at this node had delta folded into them.
func (l Logger) ShiftGreater(depth, entriesShifted, childrenShifted int, delta any) {
	l.z.Debug("shift_greater touched node",
		zap.Int("depth", depth),
		zap.Int("entries_shifted", entriesShifted),
		zap.Int("children_shifted", childrenShifted),
		zap.Any("delta", delta),
	)
}

// Structural records a structural rewrite (split-child, merge-children,
// balance-children, join, split) at a given node depth.
func (l Logger) Structural(op string, depth, keyCount int) {
	l.z.Debug("structural rewrite",
		zap.String("op", op),
		zap.Int("depth", depth),
		zap.Int("key_count", keyCount),
	)
}
