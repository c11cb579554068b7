package packer

import (
	"strconv"
	"strings"
)

// Combination is a selection of items with its aggregate weight and cost.
// Indices keep the order in which items were combined. A Combination is
// never modified once built; With returns a new one.
type Combination struct {
	Indices []int
	Weight  float64
	Cost    float64
}

func single(item Item) Combination {
	return Combination{Indices: []int{item.Index}, Weight: item.Weight, Cost: item.Cost}
}

// With returns the combination extended by item.
func (c Combination) With(item Item) Combination {
	indices := make([]int, len(c.Indices)+1)
	copy(indices, c.Indices)
	indices[len(c.Indices)] = item.Index
	return Combination{
		Indices: indices,
		Weight:  c.Weight + item.Weight,
		Cost:    c.Cost + item.Cost,
	}
}

// Key is the canonical comma-joined index list, e.g. "3,4".
func (c Combination) Key() string {
	var b strings.Builder
	for i, idx := range c.Indices {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(idx))
	}
	return b.String()
}

// Ledger holds every feasible combination discovered for one package line.
// Entries live in an arena addressed by slot; the key index gives O(1)
// lookup by canonical key. When two entries share a key (duplicate item
// indices) the key resolves to the most recent one, while slots stay distinct.
type Ledger struct {
	capacity float64
	entries  []Combination
	slots    map[string]int
}

// NewLedger creates an empty ledger for a package with the given capacity.
func NewLedger(capacity float64) *Ledger {
	return &Ledger{
		capacity: capacity,
		slots:    make(map[string]int),
	}
}

// Capacity returns the weight limit the ledger admits combinations under.
func (l *Ledger) Capacity() float64 {
	return l.capacity
}

// Len returns the number of recorded combinations.
func (l *Ledger) Len() int {
	return len(l.entries)
}

// At returns the combination stored in slot i.
func (l *Ledger) At(i int) Combination {
	return l.entries[i]
}

// Lookup returns the combination recorded under key.
func (l *Ledger) Lookup(key string) (Combination, bool) {
	slot, ok := l.slots[key]
	if !ok {
		return Combination{}, false
	}
	return l.entries[slot], true
}

// Record stores c when it fits the capacity and reports its slot.
// Combinations heavier than the capacity are not stored.
func (l *Ledger) Record(c Combination) (int, bool) {
	if c.Weight > l.capacity {
		return -1, false
	}
	slot := len(l.entries)
	l.entries = append(l.entries, c)
	l.slots[c.Key()] = slot
	return slot, true
}

// Keys returns the keys of all recorded combinations in slot order.
func (l *Ledger) Keys() []string {
	keys := make([]string, len(l.entries))
	for i, c := range l.entries {
		keys[i] = c.Key()
	}
	return keys
}
