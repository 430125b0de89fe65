package list

import (
	"github.com/benbjohnson/immutable"
	"github.com/dball/cons/ex"
)

// ToImmutable copies the values of l into an immutable.List
func ToImmutable[T any](l List[T]) *immutable.List {
	b := immutable.NewListBuilder(immutable.NewList())
	for c, ok := l.(*Cons[T]); ok; c, ok = c.rest.(*Cons[T]) {
		b.Append(c.head)
	}
	return b.List()
}

// FromImmutable builds a list from the values of v. It fails with an error
// matching ex.InvalidType if a value is not a T.
func FromImmutable[T any](v *immutable.List) (List[T], error) {
	if v == nil {
		return Empty[T](), nil
	}
	xs := make([]T, v.Len())
	itr := v.Iterator()
	for !itr.Done() {
		i, value := itr.Next()
		x, valid := value.(T)
		if !valid {
			return Empty[T](), ex.InvalidType.With("index", i)
		}
		xs[i] = x
	}
	return Of(xs...), nil
}
