package list

// TryFoldLeft is FoldLeft with a callback that can fail. It stops at the first
// error and returns it unmodified.
func TryFoldLeft[T, B any](init B, f func(acc B, x T) (B, error), l List[T]) (B, error) {
	acc := init
	for c, ok := l.(*Cons[T]); ok; c, ok = c.rest.(*Cons[T]) {
		var err error
		acc, err = f(acc, c.head)
		if err != nil {
			var zero B
			return zero, err
		}
	}
	return acc, nil
}

// TryFoldRight is FoldRight with a callback that can fail. It stops at the
// first error, counting from the last value, and returns it unmodified.
func TryFoldRight[T, B any](init B, f func(x T, acc B) (B, error), l List[T]) (B, error) {
	xs := ToSlice(l)
	acc := init
	for i := len(xs) - 1; i >= 0; i-- {
		var err error
		acc, err = f(xs[i], acc)
		if err != nil {
			var zero B
			return zero, err
		}
	}
	return acc, nil
}

// TryMap is Map with a callback that can fail.
func TryMap[T, U any](f func(T) (U, error), l List[T]) (List[U], error) {
	var ys []U
	for c, ok := l.(*Cons[T]); ok; c, ok = c.rest.(*Cons[T]) {
		y, err := f(c.head)
		if err != nil {
			return Empty[U](), err
		}
		ys = append(ys, y)
	}
	return Of(ys...), nil
}

// TryFilter is Filter with a predicate that can fail.
func TryFilter[T any](p func(T) (bool, error), l List[T]) (List[T], error) {
	var ys []T
	for c, ok := l.(*Cons[T]); ok; c, ok = c.rest.(*Cons[T]) {
		keep, err := p(c.head)
		if err != nil {
			return Empty[T](), err
		}
		if keep {
			ys = append(ys, c.head)
		}
	}
	return Of(ys...), nil
}

// TryFlatMap is FlatMap with a callback that can fail.
func TryFlatMap[T, U any](f func(T) (List[U], error), l List[T]) (List[U], error) {
	ys, err := TryFoldRight(Empty[U](), func(x T, acc List[U]) (List[U], error) {
		y, err := f(x)
		if err != nil {
			return nil, err
		}
		return Append(y, acc), nil
	}, l)
	if err != nil {
		return Empty[U](), err
	}
	return ys, nil
}
