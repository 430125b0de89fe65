package list

// Map applies f to every value of l, first to last, and returns the results in
// the same order.
func Map[T, U any](f func(T) U, l List[T]) List[U] {
	var ys []U
	for c, ok := l.(*Cons[T]); ok; c, ok = c.rest.(*Cons[T]) {
		ys = append(ys, f(c.head))
	}
	return Of(ys...)
}

// Filter returns the values of l that satisfy p, in order.
func Filter[T any](p func(T) bool, l List[T]) List[T] {
	var ys []T
	for c, ok := l.(*Cons[T]); ok; c, ok = c.rest.(*Cons[T]) {
		if p(c.head) {
			ys = append(ys, c.head)
		}
	}
	return Of(ys...)
}

// Append returns the values of a followed by the values of b. The nodes of a
// are copied; b becomes the tail of the result as is.
func Append[T any](a, b List[T]) List[T] {
	if b == nil {
		b = Empty[T]()
	}
	return FoldRight(b, Pair[T], a)
}

// FlatMap concatenates f(x) for every value x of l, in order. Being a right
// fold, it calls f from the last value to the first.
func FlatMap[T, U any](f func(T) List[U], l List[T]) List[U] {
	return FoldRight(Empty[U](), func(x T, acc List[U]) List[U] {
		return Append(f(x), acc)
	}, l)
}
