package packer

import (
	"slices"

	"go.uber.org/zap"
)

// Selector picks the best feasible combination of items for a capacity.
type Selector interface {
	Select(items []Item, capacity float64) (Combination, bool)
}

type powersetSelector struct {
	logger *zap.Logger
}

// NewSelector creates a Selector that enumerates the powerset of the items,
// dropping combinations as soon as they exceed the capacity.
func NewSelector(logger *zap.Logger) Selector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &powersetSelector{logger: logger}
}

func (s *powersetSelector) Select(items []Item, capacity float64) (Combination, bool) {
	ledger := NewLedger(capacity)
	var best *Combination

	consider := func(slot int) {
		candidate := ledger.At(slot)
		if Better(best, candidate) {
			best = &candidate
			s.logger.Debug("best combination updated",
				zap.Ints("indices", candidate.Indices),
				zap.Float64("weight", candidate.Weight),
				zap.Float64("cost", candidate.Cost),
			)
		}
	}

	for _, item := range items {
		// Only combinations that existed before this item are extended, so
		// no combination ever holds the same item twice.
		existing := ledger.Len()
		for i := 0; i < existing; i++ {
			if slot, ok := ledger.Record(ledger.At(i).With(item)); ok {
				consider(slot)
			}
		}

		if slot, ok := ledger.Record(single(item)); ok {
			consider(slot)
		}
		s.logger.Debug("item combined",
			zap.Stringer("item", item),
			zap.Int("combinations", ledger.Len()),
		)
	}

	if best == nil {
		return Combination{}, false
	}
	result := *best
	result.Indices = slices.Clone(best.Indices)
	return result, true
}

// Better reports whether candidate should replace best: higher cost wins,
// and on equal cost the lighter combination wins. A nil best always loses.
func Better(best *Combination, candidate Combination) bool {
	if best == nil {
		return true
	}
	if candidate.Cost > best.Cost {
		return true
	}
	return candidate.Cost == best.Cost && candidate.Weight < best.Weight
}
