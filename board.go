package clackers

import (
	"github.com/cockroachdb/errors"
)

// Board is a line of cells indexed 1..Size(). Index 0 is reserved.
// The number of marked cells is tracked alongside the cells so that
// Won is constant time.
type Board struct {
	cells  *bitMask
	size   int
	marked int
}

// Cell is a snapshot of a single board cell.
type Cell struct {
	Index  int
	Marked bool
}

func NewBoard(size int) *Board {
	if size < 1 {
		panic(errors.AssertionFailedf("cannot create board with %d cells", size))
	}
	return &Board{cells: newBitMask(size + 1), size: size}
}

func (b *Board) Size() int {
	return b.size
}

// Number of cells currently marked.
func (b *Board) Marked() int {
	return b.marked
}

// Whether cell i is unmarked.
func (b *Board) IsClear(i int) bool {
	b.checkIndex(i)
	return !b.cells.IsSet(i)
}

// Apply marks each index in turn according to mode. Repeated indices
// are applied once per occurrence.
func (b *Board) Apply(indices []int, mode MarkingMode) {
	for _, i := range indices {
		b.checkIndex(i)
		switch mode {
		case Remove:
			if !b.cells.IsSet(i) {
				b.cells.Set(i)
				b.marked++
			}
		case Toggle:
			if b.cells.Flip(i) {
				b.marked++
			} else {
				b.marked--
			}
		default:
			panic(errors.AssertionFailedf("unknown marking mode %d", mode))
		}
	}
}

// Whether every cell is marked.
func (b *Board) Won() bool {
	return b.marked >= b.Size()
}

func (b *Board) Snapshot() []Cell {
	result := make([]Cell, 0, b.size)
	for i := 1; i <= b.size; i++ {
		result = append(result, Cell{Index: i, Marked: b.cells.IsSet(i)})
	}
	return result
}

func (b *Board) Clone() *Board {
	return &Board{cells: b.cells.Clone(), size: b.size, marked: b.marked}
}

func (b *Board) checkIndex(i int) {
	if i < 1 || i > b.Size() {
		panic(errors.AssertionFailedf("cell %d out of range [1, %d]", i, b.Size()))
	}
}
