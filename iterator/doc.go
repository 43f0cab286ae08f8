// Package iterator provides the pull-style Iterator interface
// shared by this module, together with a handful of producers
// and bridges to the iter package.
package iterator

import (
	"iter"
)

// Iterator describes a sequence producer.
// Next must always be called before Item, even for
// the first round of iteration.
// If Next returns false, Item must not be called and the
// iterator is exhausted.
// Item may be called any number of times if the
// last call to Next returned true.
// The iterator may be abandoned at any time.
//
// Calling Next again on an exhausted iterator is not guaranteed
// to be free of side effects. Callers that poll more than once
// past the end should track exhaustion themselves.
//
// The usual usage of an Iterator is like this:
//
//	i := iterator.Slice(items)
//	for i.Next() {
//		k := i.Item()
//		... do stuff with k, or break ...
//	}
type Iterator[T any] interface {
	Next() bool
	Item() T
}

// SizeHinter is implemented by iterators that know bounds on
// the number of items they have left.
// If bounded is false, there is no known upper bound and upper
// should be ignored.
type SizeHinter interface {
	SizeHint() (lower, upper int, bounded bool)
}

// DoubleEnded iterators can also be consumed from the back.
// After NextBack returns true, Item returns the item taken from
// the back. Len is the exact number of items left between
// the two ends.
type DoubleEnded[T any] interface {
	Iterator[T]
	NextBack() bool
	Len() int
}

// All adapts it for use in a for-range loop.
// The returned sequence is single-use, like it.
func All[T any](it Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for it.Next() {
			if !yield(it.Item()) {
				return
			}
		}
	}
}

// Collect drains it into a slice.
func Collect[T any](it Iterator[T]) []T {
	var out []T
	if sh, ok := it.(SizeHinter); ok {
		lower, _, _ := sh.SizeHint()
		// infinite iterators report MaxInt, don't try to allocate that
		if lower > 0 && lower < 1<<16 {
			out = make([]T, 0, lower)
		}
	}

	for it.Next() {
		out = append(out, it.Item())
	}
	return out
}
