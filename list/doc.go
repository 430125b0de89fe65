/*
Package list implements a persistent singly-linked list.

A List is exactly one of two variants: Nil, the empty list, or a *Cons holding
a head value and the rest of the list. Nodes are never modified after they are
built, so lists share tails freely and may be read from many goroutines at
once without locking.

	xs := list.Of(1, 2, 3)           // (1 2 3)
	ys := list.Pair(0, xs)           // (0 1 2 3), shares xs
	zs := list.Append(xs, ys)        // (1 2 3 0 1 2 3), shares ys

Every traversal is an explicit loop, FoldRight included, so the call stack does
not grow with the length of the list. Append and FlatMap are right folds.

Callbacks passed to Map, Filter, FlatMap and the folds cannot fail; a panic in
one propagates to the caller untouched. The Try variants accept callbacks that
return an error and stop at the first one, returning it unmodified.

Sum adds with Go's wrapping arithmetic. SumChecked reports integer overflow as
an error matching ex.Overflow instead.
*/
package list
