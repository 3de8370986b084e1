package matrix

import (
	"iter"

	"skirmish/internal/grid"
)

// Iterator is a forward cursor over a matrix in row-major order. The end
// position is Size().
type Iterator[T any] struct {
	m     *Matrix[T]
	index int
}

func (m *Matrix[T]) Begin() Iterator[T] { return Iterator[T]{m: m} }
func (m *Matrix[T]) End() Iterator[T]   { return Iterator[T]{m: m, index: m.Size()} }

func (it *Iterator[T]) Next()     { it.index++ }
func (it Iterator[T]) Index() int { return it.index }

// Value returns a live pointer to the current element.
func (it Iterator[T]) Value() (*T, error) {
	p := it.m.dims.Point(it.index)
	return it.m.Ref(p.Row, p.Col)
}

// Equal is false for iterators of different matrices, whatever their index.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.m == other.m && it.index == other.index
}

// Cells yields every position with a live pointer to its element.
func (m *Matrix[T]) Cells() iter.Seq2[grid.Point, *T] {
	return func(yield func(grid.Point, *T) bool) {
		for i := range m.data {
			if !yield(m.dims.Point(i), &m.data[i]) {
				return
			}
		}
	}
}
