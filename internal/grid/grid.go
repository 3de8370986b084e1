// Package grid holds the integer coordinate types shared by the board and the matrix.
package grid

import "fmt"

type Point struct{ Row, Col int }

func (p Point) Sub(o Point) Point { return Point{p.Row - o.Row, p.Col - o.Col} }
func (p Point) String() string    { return fmt.Sprintf("(%d,%d)", p.Row, p.Col) }

// Distance is the grid distance: the larger of the row and column deltas.
func Distance(a, b Point) int {
	d := a.Sub(b)
	return max(abs(d.Row), abs(d.Col))
}

// SameLine reports whether a and b share a row or a column.
func SameLine(a, b Point) bool { return a.Row == b.Row || a.Col == b.Col }

type Dimensions struct{ Rows, Cols int }

func (d Dimensions) String() string { return fmt.Sprintf("(%d,%d)", d.Rows, d.Cols) }
func (d Dimensions) Size() int      { return d.Rows * d.Cols }
func (d Dimensions) Valid() bool    { return d.Rows > 0 && d.Cols > 0 }

func (d Dimensions) Contains(p Point) bool {
	return p.Row >= 0 && p.Row < d.Rows && p.Col >= 0 && p.Col < d.Cols
}

// Index is the row-major linear index of p. It does not check bounds.
func (d Dimensions) Index(p Point) int { return p.Row*d.Cols + p.Col }

// Point decodes a row-major linear index.
func (d Dimensions) Point(index int) Point {
	return Point{Row: index / d.Cols, Col: index % d.Cols}
}

// DivCeil is ceil(a/b) for a >= 0 and b > 0.
func DivCeil(a, b int) int { return (a + b - 1) / b }

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
