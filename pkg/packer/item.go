package packer

import "fmt"

// MaxItems is the largest number of candidate items accepted on one line.
const MaxItems = 15

// Item is one candidate thing that may go into a package.
// Indices are labels only: two items on the same line may share one.
type Item struct {
	Index  int
	Weight float64
	Cost   float64
}

func (i Item) String() string {
	return fmt.Sprintf("[%d, %g, %g]", i.Index, i.Weight, i.Cost)
}

// Line is a parsed package definition.
type Line struct {
	Capacity float64
	Items    []Item
}
