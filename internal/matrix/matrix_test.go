package matrix

import (
	"errors"
	"strings"
	"testing"

	apperrors "skirmish/internal/errors"
	"skirmish/internal/grid"
)

func mustFilled[T any](t *testing.T, rows, cols int, v T) *Matrix[T] {
	t.Helper()
	m, err := Filled(grid.Dimensions{Rows: rows, Cols: cols}, v)
	if err != nil {
		t.Fatalf("filled %dx%d: %v", rows, cols, err)
	}
	return m
}

func fromRows(t *testing.T, rows [][]int) *Matrix[int] {
	t.Helper()
	m, err := New[int](grid.Dimensions{Rows: len(rows), Cols: len(rows[0])})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	for i, row := range rows {
		for j, v := range row {
			if err := m.Set(i, j, v); err != nil {
				t.Fatalf("set (%d,%d): %v", i, j, err)
			}
		}
	}
	return m
}

func TestFilledEveryCell(t *testing.T) {
	for _, dims := range []grid.Dimensions{{1, 1}, {2, 5}, {4, 3}} {
		m, err := Filled(dims, 7)
		if err != nil {
			t.Fatalf("filled %v: %v", dims, err)
		}
		if m.Height() != dims.Rows || m.Width() != dims.Cols || m.Size() != dims.Size() {
			t.Fatalf("shape = %v, want %v", m.Dimensions(), dims)
		}
		if !All(Equal(m, 7)) {
			t.Fatalf("expected every cell of %v to be 7", dims)
		}
	}
}

func TestNewZeroValue(t *testing.T) {
	m, err := New[string](grid.Dimensions{Rows: 2, Cols: 2})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if !All(Equal(m, "")) {
		t.Fatal("expected zero values")
	}
}

func TestIllegalInitialization(t *testing.T) {
	for _, dims := range []grid.Dimensions{{0, 3}, {3, 0}, {-1, 2}} {
		if _, err := New[int](dims); !errors.Is(err, apperrors.ErrIllegalInitialization) {
			t.Fatalf("New(%v) error = %v, want illegal initialization", dims, err)
		}
	}
	if _, err := Diagonal(0, 1); !errors.Is(err, apperrors.ErrIllegalInitialization) {
		t.Fatalf("Diagonal(0) error = %v", err)
	}
}

func TestAccessIllegalElement(t *testing.T) {
	m := mustFilled(t, 2, 3, 0)
	for _, p := range []grid.Point{{-1, 0}, {0, -1}, {2, 0}, {0, 3}} {
		if _, err := m.At(p.Row, p.Col); !errors.Is(err, apperrors.ErrAccessIllegalElement) {
			t.Fatalf("At%v error = %v", p, err)
		}
		if err := m.Set(p.Row, p.Col, 1); !errors.Is(err, apperrors.ErrAccessIllegalElement) {
			t.Fatalf("Set%v error = %v", p, err)
		}
		if _, err := m.Ref(p.Row, p.Col); !errors.Is(err, apperrors.ErrAccessIllegalElement) {
			t.Fatalf("Ref%v error = %v", p, err)
		}
	}
	if !All(Equal(m, 0)) {
		t.Fatal("failed Set must not mutate")
	}
}

func TestRefIsLive(t *testing.T) {
	m := mustFilled(t, 2, 2, 1)
	ref, err := m.Ref(1, 0)
	if err != nil {
		t.Fatalf("ref: %v", err)
	}
	*ref = 9
	if v, _ := m.At(1, 0); v != 9 {
		t.Fatalf("At(1,0) = %d, want 9", v)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	orig := mustFilled(t, 2, 2, 1)
	cp := orig.Clone()
	if err := cp.Set(0, 0, 5); err != nil {
		t.Fatalf("set: %v", err)
	}
	if v, _ := orig.At(0, 0); v != 1 {
		t.Fatalf("source changed to %d", v)
	}
	if err := orig.Set(1, 1, 8); err != nil {
		t.Fatalf("set: %v", err)
	}
	if v, _ := cp.At(1, 1); v != 1 {
		t.Fatalf("copy changed to %d", v)
	}
}

func TestAssignAdoptsShape(t *testing.T) {
	dst := mustFilled(t, 1, 1, 0)
	src := mustFilled(t, 3, 2, 4)
	dst.Assign(src)
	if dst.Dimensions() != src.Dimensions() || !All(Equal(dst, 4)) {
		t.Fatalf("assign result %v", dst.Dimensions())
	}
	if err := src.Set(0, 0, 1); err != nil {
		t.Fatalf("set: %v", err)
	}
	if v, _ := dst.At(0, 0); v != 4 {
		t.Fatal("assign must deep copy")
	}
	dst.Assign(dst)
	if !All(Equal(dst, 4)) {
		t.Fatal("self assignment must be a no-op")
	}
}

func TestAssignFuncIsAtomic(t *testing.T) {
	dst := mustFilled(t, 2, 2, 1)
	src := fromRows(t, [][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	boom := errors.New("copy failed")
	copied := 0
	err := dst.AssignFunc(src, func(v int) (int, error) {
		if copied == 5 {
			return 0, boom
		}
		copied++
		return v, nil
	})
	if !errors.Is(err, boom) {
		t.Fatalf("error = %v, want %v", err, boom)
	}
	if dst.Dimensions() != (grid.Dimensions{Rows: 2, Cols: 2}) {
		t.Fatalf("dimensions changed to %v", dst.Dimensions())
	}
	if !All(Equal(dst, 1)) {
		t.Fatal("contents changed after failed assignment")
	}

	if err := dst.AssignFunc(src, func(v int) (int, error) { return v * 10, nil }); err != nil {
		t.Fatalf("assign: %v", err)
	}
	if v, _ := dst.At(2, 2); v != 90 {
		t.Fatalf("At(2,2) = %d, want 90", v)
	}
}

func TestAddSub(t *testing.T) {
	a := fromRows(t, [][]int{{1, 2}, {3, 4}})
	b := fromRows(t, [][]int{{10, 20}, {30, 40}})
	sum, err := Add(a, b)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if v, _ := sum.At(1, 1); v != 44 {
		t.Fatalf("sum(1,1) = %d", v)
	}
	diff, err := Sub(b, a)
	if err != nil {
		t.Fatalf("sub: %v", err)
	}
	if v, _ := diff.At(0, 1); v != 18 {
		t.Fatalf("diff(0,1) = %d", v)
	}
	if v, _ := Negate(a).At(1, 0); v != -3 {
		t.Fatalf("negate(1,0) = %d", v)
	}

	f := mustFilled(t, 1, 2, 1.5)
	if v, _ := Negate(f).At(0, 1); v != -1.5 {
		t.Fatalf("negate float = %v", v)
	}
}

func TestDimensionMismatch(t *testing.T) {
	a := mustFilled(t, 2, 3, 1)
	b := mustFilled(t, 3, 2, 1)
	_, err := Add(a, b)
	if !errors.Is(err, apperrors.ErrDimensionMismatch) {
		t.Fatalf("add error = %v", err)
	}
	if !strings.Contains(err.Error(), "(2,3)") || !strings.Contains(err.Error(), "(3,2)") {
		t.Fatalf("expected both shapes in %q", err.Error())
	}
	if _, err := Sub(a, b); !errors.Is(err, apperrors.ErrDimensionMismatch) {
		t.Fatalf("sub error = %v", err)
	}
	if _, err := Or(Equal(a, 1), Equal(b, 1)); !errors.Is(err, apperrors.ErrDimensionMismatch) {
		t.Fatalf("or error = %v", err)
	}
}

func TestScalarAdd(t *testing.T) {
	m := mustFilled(t, 2, 2, "b")
	if v, _ := AddScalar(m, "c").At(0, 0); v != "bc" {
		t.Fatalf("right add = %q", v)
	}
	if v, _ := ScalarAdd("a", m).At(1, 1); v != "ab" {
		t.Fatalf("left add = %q", v)
	}
	if v, _ := m.At(0, 1); v != "b" {
		t.Fatal("scalar add must not mutate the operand")
	}

	n := mustFilled(t, 1, 3, 2)
	AddAssign(n, 3)
	if !All(Equal(n, 5)) {
		t.Fatal("AddAssign did not update in place")
	}
}

func TestDerivedComparisons(t *testing.T) {
	m := fromRows(t, [][]int{{-3, 0, 2}, {5, 2, 7}})
	for _, v := range []int{-4, -3, 0, 2, 3, 7, 8} {
		lt, eq := Less(m, v), Equal(m, v)
		le, gt, ge, ne := LessEqual(m, v), Greater(m, v), GreaterEqual(m, v), NotEqual(m, v)
		for i := 0; i < m.Height(); i++ {
			for j := 0; j < m.Width(); j++ {
				x, _ := m.At(i, j)
				l, _ := lt.At(i, j)
				e, _ := eq.At(i, j)
				gotLE, _ := le.At(i, j)
				gotGT, _ := gt.At(i, j)
				gotGE, _ := ge.At(i, j)
				gotNE, _ := ne.At(i, j)
				if l != (x < v) || e != (x == v) {
					t.Fatalf("primitive mismatch at %d vs %d", x, v)
				}
				if gotLE != (l || e) {
					t.Fatalf("<= mismatch at %d vs %d", x, v)
				}
				if gotGT != !(l || e) || gotGT != (x > v) {
					t.Fatalf("> mismatch at %d vs %d", x, v)
				}
				if gotGE != (gotGT || e) || gotGE != (x >= v) {
					t.Fatalf(">= mismatch at %d vs %d", x, v)
				}
				if gotNE != !e {
					t.Fatalf("!= mismatch at %d vs %d", x, v)
				}
			}
		}
	}
}

func TestAllAny(t *testing.T) {
	m := fromRows(t, [][]int{{1, 2}, {3, 4}})
	if !All(Greater(m, 0)) || All(Greater(m, 1)) {
		t.Fatal("All mismatch")
	}
	if !Any(Equal(m, 4)) || Any(Equal(m, 5)) {
		t.Fatal("Any mismatch")
	}
}

func TestApplyAndMap(t *testing.T) {
	m := fromRows(t, [][]int{{1, 2}, {3, 4}})
	sq := m.Apply(func(x int) int { return x * x })
	if v, _ := sq.At(1, 1); v != 16 {
		t.Fatalf("apply(1,1) = %d", v)
	}
	if v, _ := m.At(1, 1); v != 4 {
		t.Fatal("apply must not mutate")
	}
	even := Map(m, func(x int) bool { return x%2 == 0 })
	if v, _ := even.At(0, 1); !v {
		t.Fatal("map(0,1) should be true")
	}
}

func TestTransposeAndDiagonal(t *testing.T) {
	m := fromRows(t, [][]int{{1, 2, 3}, {4, 5, 6}})
	tr := m.Transpose()
	if tr.Height() != 3 || tr.Width() != 2 {
		t.Fatalf("transpose shape %v", tr.Dimensions())
	}
	for i := 0; i < m.Height(); i++ {
		for j := 0; j < m.Width(); j++ {
			a, _ := m.At(i, j)
			b, _ := tr.At(j, i)
			if a != b {
				t.Fatalf("transpose (%d,%d) = %d, want %d", j, i, b, a)
			}
		}
	}

	d, err := Diagonal(3, 1)
	if err != nil {
		t.Fatalf("diagonal: %v", err)
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v, _ := d.At(i, j)
			want := 0
			if i == j {
				want = 1
			}
			if v != want {
				t.Fatalf("diagonal (%d,%d) = %d", i, j, v)
			}
		}
	}
}

func TestIterator(t *testing.T) {
	m := fromRows(t, [][]int{{1, 2}, {3, 4}})
	var got []int
	for it := m.Begin(); !it.Equal(m.End()); it.Next() {
		v, err := it.Value()
		if err != nil {
			t.Fatalf("value at %d: %v", it.Index(), err)
		}
		got = append(got, *v)
		*v *= 10
	}
	if len(got) != 4 || got[0] != 1 || got[3] != 4 {
		t.Fatalf("iteration order %v", got)
	}
	if v, _ := m.At(1, 0); v != 30 {
		t.Fatal("iterator value must be a live reference")
	}

	// Begin restarts from the first element.
	first, _ := m.Begin().Value()
	if *first != 10 {
		t.Fatalf("restarted iterator value = %d", *first)
	}
	if _, err := m.End().Value(); !errors.Is(err, apperrors.ErrAccessIllegalElement) {
		t.Fatalf("end value error = %v", err)
	}

	other := m.Clone()
	if m.Begin().Equal(other.Begin()) || m.End().Equal(other.End()) {
		t.Fatal("iterators of different matrices must never be equal")
	}
}

func TestCells(t *testing.T) {
	m := mustFilled(t, 2, 3, 0)
	for p, v := range m.Cells() {
		*v = p.Row*10 + p.Col
	}
	if v, _ := m.At(1, 2); v != 12 {
		t.Fatalf("At(1,2) = %d", v)
	}
	n := 0
	for range m.Cells() {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Fatal("expected early break to stop iteration")
	}
}

func TestString(t *testing.T) {
	m := fromRows(t, [][]int{{1, 2}, {3, 4}})
	if got := m.String(); got != "1 2\n3 4\n" {
		t.Fatalf("String() = %q", got)
	}
}
