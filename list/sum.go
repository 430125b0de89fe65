package list

import "github.com/dball/cons/ex"

// Integer is the set of integer element types
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Float is the set of floating-point element types
type Float interface {
	~float32 | ~float64
}

// Number is the set of element types Sum accepts
type Number interface {
	Integer | Float
}

// Sum adds the values of l. Integers wrap around on overflow and floats go to
// ±Inf, as Go arithmetic does. The sum of the empty list is 0.
func Sum[N Number](l List[N]) N {
	var zero N
	return FoldLeft(zero, func(acc, x N) N { return acc + x }, l)
}

// SumChecked adds the values of l, failing with an error matching ex.Overflow
// when the sum does not fit in N. The error context holds the index of the
// value that overflowed.
func SumChecked[N Integer](l List[N]) (N, error) {
	var total N
	i := 0
	for c, ok := l.(*Cons[N]); ok; c, ok = c.rest.(*Cons[N]) {
		next := total + c.head
		if (c.head > 0 && next < total) || (c.head < 0 && next > total) {
			return 0, ex.Overflow.With("index", i)
		}
		total = next
		i++
	}
	return total, nil
}
