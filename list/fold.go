package list

// FoldLeft combines the values of l from first to last, starting from init.
func FoldLeft[T, B any](init B, f func(acc B, x T) B, l List[T]) B {
	acc := init
	for c, ok := l.(*Cons[T]); ok; c, ok = c.rest.(*Cons[T]) {
		acc = f(acc, c.head)
	}
	return acc
}

// FoldRight combines the values of l from last to first, starting from init:
// FoldRight(init, f, Of(a, b, c)) is f(a, f(b, f(c, init))).
//
// The values are staged in a slice and walked backwards, so the call depth is
// constant.
func FoldRight[T, B any](init B, f func(x T, acc B) B, l List[T]) B {
	xs := ToSlice(l)
	acc := init
	for i := len(xs) - 1; i >= 0; i-- {
		acc = f(xs[i], acc)
	}
	return acc
}
