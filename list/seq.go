package list

// ToSlice returns the values of l in order. The result is never nil.
func ToSlice[T any](l List[T]) []T {
	xs := []T{}
	for c, ok := l.(*Cons[T]); ok; c, ok = c.rest.(*Cons[T]) {
		xs = append(xs, c.head)
	}
	return xs
}

// Len counts the values of l
func Len[T any](l List[T]) int {
	return FoldLeft(0, func(n int, _ T) int { return n + 1 }, l)
}

// Reverse returns the values of l in reverse order
func Reverse[T any](l List[T]) List[T] {
	return FoldLeft(Empty[T](), func(acc List[T], x T) List[T] {
		return Pair(x, acc)
	}, l)
}

// Concat appends all of ls in order, sharing the last one
func Concat[T any](ls ...List[T]) List[T] {
	if len(ls) == 0 {
		return Empty[T]()
	}
	acc := ls[len(ls)-1]
	for i := len(ls) - 2; i >= 0; i-- {
		acc = Append(ls[i], acc)
	}
	if acc == nil {
		return Empty[T]()
	}
	return acc
}

// Take returns a copy of the first n values of l
func Take[T any](n int, l List[T]) List[T] {
	var xs []T
	for c, ok := l.(*Cons[T]); ok && len(xs) < n; c, ok = c.rest.(*Cons[T]) {
		xs = append(xs, c.head)
	}
	return Of(xs...)
}

// Drop returns the list after the first n values of l, sharing it with l
func Drop[T any](n int, l List[T]) List[T] {
	for i := 0; i < n; i++ {
		c, ok := l.(*Cons[T])
		if !ok {
			break
		}
		l = c.rest
	}
	if l == nil {
		return Empty[T]()
	}
	return l
}

// Equal compares lists of comparable values
func Equal[T comparable](a, b List[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc compares lists value by value with eq
func EqualFunc[T any](a, b List[T], eq func(x, y T) bool) bool {
	for {
		if IsEmpty(a) || IsEmpty(b) {
			return IsEmpty(a) && IsEmpty(b)
		}
		if a == b {
			return true
		}
		ca, cb := a.(*Cons[T]), b.(*Cons[T])
		if !eq(ca.head, cb.head) {
			return false
		}
		a, b = ca.rest, cb.rest
	}
}
