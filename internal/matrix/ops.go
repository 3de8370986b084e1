package matrix

import "cmp"

type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Negatable is anything with a unary - operator.
type Negatable interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~float32 | ~float64 | ~complex64 | ~complex128
}

type Number interface {
	Integer | ~float32 | ~float64 | ~complex64 | ~complex128
}

// Additive is anything with a + operator.
type Additive interface {
	Number | ~string
}

func Add[T Additive](a, b *Matrix[T]) (*Matrix[T], error) {
	return zip(a, b, func(x, y T) T { return x + y })
}

func Sub[T Number](a, b *Matrix[T]) (*Matrix[T], error) {
	return zip(a, b, func(x, y T) T { return x - y })
}

func Negate[T Negatable](m *Matrix[T]) *Matrix[T] {
	return m.Apply(func(x T) T { return -x })
}

// AddScalar returns m with v added on the right of every element.
func AddScalar[T Additive](m *Matrix[T], v T) *Matrix[T] {
	return m.Apply(func(x T) T { return x + v })
}

// ScalarAdd returns m with v added on the left of every element.
func ScalarAdd[T Additive](v T, m *Matrix[T]) *Matrix[T] {
	return m.Apply(func(x T) T { return v + x })
}

// AddAssign adds v to every element of m in place.
func AddAssign[T Additive](m *Matrix[T], v T) {
	m.data = AddScalar(m, v).data
}

// Less and Equal are the only comparisons that inspect elements. The others
// are boolean combinations of the two.

func Less[T cmp.Ordered](m *Matrix[T], v T) *Matrix[bool] {
	return Map(m, func(x T) bool { return x < v })
}

func Equal[T comparable](m *Matrix[T], v T) *Matrix[bool] {
	return Map(m, func(x T) bool { return x == v })
}

func LessEqual[T cmp.Ordered](m *Matrix[T], v T) *Matrix[bool] {
	return union(Less(m, v), Equal(m, v))
}

func Greater[T cmp.Ordered](m *Matrix[T], v T) *Matrix[bool] {
	return Not(LessEqual(m, v))
}

func GreaterEqual[T cmp.Ordered](m *Matrix[T], v T) *Matrix[bool] {
	return union(Greater(m, v), Equal(m, v))
}

func NotEqual[T comparable](m *Matrix[T], v T) *Matrix[bool] {
	return Not(Equal(m, v))
}

func Not(m *Matrix[bool]) *Matrix[bool] {
	return m.Apply(func(x bool) bool { return !x })
}

func Or(a, b *Matrix[bool]) (*Matrix[bool], error) {
	return zip(a, b, func(x, y bool) bool { return x || y })
}

func And(a, b *Matrix[bool]) (*Matrix[bool], error) {
	return zip(a, b, func(x, y bool) bool { return x && y })
}

// union is Or for operands built from the same matrix.
func union(a, b *Matrix[bool]) *Matrix[bool] {
	out, err := Or(a, b)
	if err != nil {
		panic(err)
	}
	return out
}

func All(m *Matrix[bool]) bool {
	for _, v := range m.data {
		if !v {
			return false
		}
	}
	return true
}

func Any(m *Matrix[bool]) bool {
	for _, v := range m.data {
		if v {
			return true
		}
	}
	return false
}
