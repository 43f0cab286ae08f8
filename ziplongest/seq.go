package ziplongest

import (
	"iter"

	"go.lepak.sg/ziplongest/iterator"
)

// All returns the rest of z as a sequence for use with
// for-range. Breaking out of the loop leaves z where it
// stopped.
func (z *ZipLongest[A, B]) All() iter.Seq[EitherOrBoth[A, B]] {
	return iterator.All[EitherOrBoth[A, B]](z)
}

// Seq zips two push-style sequences.
// Both sequences are pulled lazily, one item per side per step,
// and both pulls are stopped when the loop ends, whether by
// running out or by break.
func Seq[A, B any](left iter.Seq[A], right iter.Seq[B]) iter.Seq[EitherOrBoth[A, B]] {
	return func(yield func(EitherOrBoth[A, B]) bool) {
		l := iterator.Pull(left)
		defer l.Stop()
		r := iterator.Pull(right)
		defer r.Stop()

		z := New[A, B](l, r)
		for z.Next() {
			if !yield(z.Item()) {
				return
			}
		}
	}
}
