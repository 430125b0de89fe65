package list

import (
	"fmt"
	"strings"
)

// List is a persistent list, either Nil or a *Cons. A nil List is treated as
// empty by every function in this package.
type List[T any] interface {
	// IsEmpty reports whether the list is Nil.
	IsEmpty() bool
	// IsPair reports whether the list is a *Cons.
	IsPair() bool
	// Next returns a tuple of emptiness, the first item if non-empty, and the
	// rest of the list.
	Next() (bool, T, List[T])
	String() string
	list()
}

// Nil - the empty list
type Nil[T any] struct{}

// IsEmpty is always true for Nil
func (Nil[T]) IsEmpty() bool { return true }

// IsPair is always false for Nil
func (Nil[T]) IsPair() bool { return false }

// Next of Nil is empty
func (Nil[T]) Next() (bool, T, List[T]) {
	var zero T
	return true, zero, Nil[T]{}
}

func (Nil[T]) String() string { return "()" }

func (Nil[T]) list() {}

// Cons - a head value prepended to the rest of a list
type Cons[T any] struct {
	head T
	rest List[T]
}

// IsEmpty is always false for a cons
func (*Cons[T]) IsEmpty() bool { return false }

// IsPair is always true for a cons
func (*Cons[T]) IsPair() bool { return true }

// Next of a cons just decomposes it
func (c *Cons[T]) Next() (bool, T, List[T]) {
	return false, c.head, c.rest
}

// Head returns the first value
func (c *Cons[T]) Head() T { return c.head }

// Rest returns the list after the first value
func (c *Cons[T]) Rest() List[T] { return c.rest }

func (c *Cons[T]) String() string {
	var sb strings.Builder
	sb.WriteRune('(')
	for n, ok := c, true; ok; n, ok = n.rest.(*Cons[T]) {
		if n != c {
			sb.WriteRune(' ')
		}
		fmt.Fprint(&sb, n.head)
	}
	sb.WriteRune(')')
	return sb.String()
}

func (*Cons[T]) list() {}

// Empty returns the empty list
func Empty[T any]() List[T] {
	return Nil[T]{}
}

// Pair builds a new list with head in front of rest. A nil rest, including a
// nil *Cons, stands for the empty list.
func Pair[T any](head T, rest List[T]) List[T] {
	if c, ok := rest.(*Cons[T]); rest == nil || (ok && c == nil) {
		rest = Nil[T]{}
	}
	return &Cons[T]{head: head, rest: rest}
}

// Of builds a list holding xs in order
func Of[T any](xs ...T) List[T] {
	l := Empty[T]()
	for i := len(xs) - 1; i >= 0; i-- {
		l = &Cons[T]{head: xs[i], rest: l}
	}
	return l
}

// IsEmpty reports whether l is the empty list
func IsEmpty[T any](l List[T]) bool {
	return l == nil || l.IsEmpty()
}

// IsPair reports whether l has a head and a rest
func IsPair[T any](l List[T]) bool {
	return l != nil && l.IsPair()
}
