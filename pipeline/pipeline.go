// Package pipeline threads a single value through a chain of functions.
package pipeline

// Pipeline holds a value between steps. Chaining never modifies a Pipeline;
// every step returns a new one.
type Pipeline[A any] struct {
	value A
}

// Do starts a pipeline with value
func Do[A any](value A) Pipeline[A] {
	return Pipeline[A]{value: value}
}

// Pipe applies f to the held value
func (p Pipeline[A]) Pipe(f func(A) A) Pipeline[A] {
	return Pipeline[A]{value: f(p.value)}
}

// Then applies f to the held value of p, changing the held type
func Then[A, B any](p Pipeline[A], f func(A) B) Pipeline[B] {
	return Pipeline[B]{value: f(p.value)}
}

// Return ends the pipeline and extracts the held value
func (p Pipeline[A]) Return() A {
	return p.value
}
