package iterator

import (
	"math"

	"golang.org/x/exp/constraints"
)

var _ SizeHinter = (*CountIterator[int])(nil)

// CountIterator yields start, start+step, start+2*step, ...
// forever. Overflow wraps around like any other integer
// arithmetic in Go.
type CountIterator[T constraints.Integer] struct {
	next, step, at T
}

// Count returns an infinite CountIterator.
func Count[T constraints.Integer](start, step T) *CountIterator[T] {
	return &CountIterator[T]{
		next: start,
		step: step,
	}
}

func (c *CountIterator[T]) Next() bool {
	c.at = c.next
	c.next += c.step
	return true
}

func (c *CountIterator[T]) Item() T {
	return c.at
}

func (c *CountIterator[T]) SizeHint() (int, int, bool) {
	return math.MaxInt, 0, false
}
