package game

import "math/rand"

// Board is an NxN table of the numbers 1..N*N in shuffled order.
// Values never change after generation; Found is the per-cell marker for
// numbers the player has already activated correctly.
type Board struct {
	// Size is the row and column count N
	Size int

	// Values holds the permutation in row-major order
	Values []int

	// Found marks cells whose value has been correctly activated
	Found []bool
}

// NewBoard builds a fresh shuffled board of the given size.
func NewBoard(size int, r *rand.Rand) *Board {
	n := size * size
	vals := make([]int, n)
	for i := range vals {
		vals[i] = i + 1
	}
	Shuffle(r, vals)

	return &Board{
		Size:   size,
		Values: vals,
		Found:  make([]bool, n),
	}
}

// CellCount returns the total number of cells.
func (b *Board) CellCount() int {
	return b.Size * b.Size
}

func (b *Board) index(col, row int) int {
	return row*b.Size + col
}

// ValueAt returns the number bound to the cell at (col, row).
func (b *Board) ValueAt(col, row int) int {
	return b.Values[b.index(col, row)]
}

// FoundAt reports whether the cell at (col, row) has been found.
func (b *Board) FoundAt(col, row int) bool {
	return b.Found[b.index(col, row)]
}

// markFound marks the cell bound to value as found.
func (b *Board) markFound(value int) {
	for i, v := range b.Values {
		if v == value {
			b.Found[i] = true
			return
		}
	}
}
