// Package matrix implements a dense, fixed-size, row-major 2D container.
//
// A Matrix owns its backing slice exclusively. Copies made through Clone,
// CloneFunc and Assign never share storage with their source, and Assign only
// replaces the receiver's storage once the new copy is complete.
package matrix

import (
	"fmt"
	"strings"

	apperrors "skirmish/internal/errors"
	"skirmish/internal/grid"
)

type Matrix[T any] struct {
	dims grid.Dimensions
	data []T
}

// New creates a matrix of the given shape holding the zero value of T.
func New[T any](dims grid.Dimensions) (*Matrix[T], error) {
	var zero T
	return Filled(dims, zero)
}

// Filled creates a matrix of the given shape with value in every cell.
func Filled[T any](dims grid.Dimensions, value T) (*Matrix[T], error) {
	if err := verifyDimensions(dims); err != nil {
		return nil, err
	}
	m := alloc[T](dims)
	for i := range m.data {
		m.data[i] = value
	}
	return m, nil
}

// Diagonal creates an n×n matrix with value on the main diagonal and the zero
// value elsewhere.
func Diagonal[T any](n int, value T) (*Matrix[T], error) {
	m, err := New[T](grid.Dimensions{Rows: n, Cols: n})
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = value
	}
	return m, nil
}

// alloc skips validation; dims must already be valid.
func alloc[T any](dims grid.Dimensions) *Matrix[T] {
	return &Matrix[T]{dims: dims, data: make([]T, dims.Size())}
}

func verifyDimensions(dims grid.Dimensions) error {
	if !dims.Valid() {
		return apperrors.WithMetadata(apperrors.CodeIllegalInitialization,
			"matrix: illegal initialization values "+dims.String(),
			map[string]string{"dimensions": dims.String()})
	}
	return nil
}

// verifyIndex returns the linear index of (row, col) when it is in bounds.
func (m *Matrix[T]) verifyIndex(row, col int) (int, error) {
	p := grid.Point{Row: row, Col: col}
	if m.dims.Contains(p) {
		return m.dims.Index(p), nil
	}
	return 0, apperrors.WithMetadata(apperrors.CodeAccessIllegalElement,
		fmt.Sprintf("matrix: access to an illegal element %s in %s", p, m.dims),
		map[string]string{"cell": p.String(), "dimensions": m.dims.String()})
}

func mismatch(a, b grid.Dimensions) error {
	return apperrors.WithMetadata(apperrors.CodeDimensionMismatch,
		"matrix: dimension mismatch: "+a.String()+" "+b.String(),
		map[string]string{"left": a.String(), "right": b.String()})
}

func (m *Matrix[T]) Height() int                 { return m.dims.Rows }
func (m *Matrix[T]) Width() int                  { return m.dims.Cols }
func (m *Matrix[T]) Size() int                   { return m.dims.Size() }
func (m *Matrix[T]) Dimensions() grid.Dimensions { return m.dims }

func (m *Matrix[T]) At(row, col int) (T, error) {
	i, err := m.verifyIndex(row, col)
	if err != nil {
		var zero T
		return zero, err
	}
	return m.data[i], nil
}

func (m *Matrix[T]) Set(row, col int, value T) error {
	i, err := m.verifyIndex(row, col)
	if err != nil {
		return err
	}
	m.data[i] = value
	return nil
}

// Ref returns a live pointer into the backing storage. It stays valid until
// the next Assign or AddAssign on m.
func (m *Matrix[T]) Ref(row, col int) (*T, error) {
	i, err := m.verifyIndex(row, col)
	if err != nil {
		return nil, err
	}
	return &m.data[i], nil
}

func (m *Matrix[T]) Clone() *Matrix[T] {
	c := alloc[T](m.dims)
	copy(c.data, m.data)
	return c
}

// CloneFunc copies m through copyElem. The first copyElem error aborts the
// copy and is returned as is.
func (m *Matrix[T]) CloneFunc(copyElem func(T) (T, error)) (*Matrix[T], error) {
	c := alloc[T](m.dims)
	for i, v := range m.data {
		cv, err := copyElem(v)
		if err != nil {
			return nil, err
		}
		c.data[i] = cv
	}
	return c, nil
}

// Assign makes m a deep copy of src, adopting its shape.
func (m *Matrix[T]) Assign(src *Matrix[T]) {
	if m == src {
		return
	}
	c := src.Clone()
	m.dims, m.data = c.dims, c.data
}

// AssignFunc is Assign through a fallible element copier. If copyElem fails,
// m keeps its previous contents and shape.
func (m *Matrix[T]) AssignFunc(src *Matrix[T], copyElem func(T) (T, error)) error {
	if m == src {
		return nil
	}
	c, err := src.CloneFunc(copyElem)
	if err != nil {
		return err
	}
	m.dims, m.data = c.dims, c.data
	return nil
}

func (m *Matrix[T]) Transpose() *Matrix[T] {
	t := alloc[T](grid.Dimensions{Rows: m.dims.Cols, Cols: m.dims.Rows})
	for i := 0; i < m.dims.Rows; i++ {
		for j := 0; j < m.dims.Cols; j++ {
			t.data[j*t.dims.Cols+i] = m.data[i*m.dims.Cols+j]
		}
	}
	return t
}

// Apply returns a new matrix with f applied to every element.
func (m *Matrix[T]) Apply(f func(T) T) *Matrix[T] {
	return Map(m, f)
}

// Map is Apply for functions that change the element type.
func Map[T, U any](m *Matrix[T], f func(T) U) *Matrix[U] {
	out := alloc[U](m.dims)
	for i, v := range m.data {
		out.data[i] = f(v)
	}
	return out
}

func zip[T, U any](a, b *Matrix[T], f func(T, T) U) (*Matrix[U], error) {
	if a.dims != b.dims {
		return nil, mismatch(a.dims, b.dims)
	}
	out := alloc[U](a.dims)
	for i := range a.data {
		out.data[i] = f(a.data[i], b.data[i])
	}
	return out, nil
}

func (m *Matrix[T]) String() string {
	var sb strings.Builder
	for i := 0; i < m.dims.Rows; i++ {
		for j := 0; j < m.dims.Cols; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprint(&sb, m.data[i*m.dims.Cols+j])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
