package ziplongest

import (
	"go.lepak.sg/ziplongest/iterator"
)

var _ iterator.DoubleEnded[EitherOrBoth[int, int]] = (*DoubleEndedZip[int, int])(nil)

// DoubleEndedZip is a ZipLongest over two double-ended iterators.
// It can be consumed from either end, and the two ends agree
// with each other: the items taken from the back are the
// items that forward iteration would have reached last.
type DoubleEndedZip[A, B any] struct {
	*ZipLongest[A, B]

	left  iterator.DoubleEnded[A]
	right iterator.DoubleEnded[B]
}

// NewDoubleEnded returns a DoubleEndedZip over left and right.
func NewDoubleEnded[A, B any](
	left iterator.DoubleEnded[A], right iterator.DoubleEnded[B],
) *DoubleEndedZip[A, B] {
	return &DoubleEndedZip[A, B]{
		ZipLongest: New[A, B](left, right),
		left:       left,
		right:      right,
	}
}

// NextBack takes the next item from the back.
// While one side is longer than the other, only the longer side
// gives up items, so the tail of the longer side comes out as
// Left or Right items before any Both item.
func (z *DoubleEndedZip[A, B]) NextBack() bool {
	ll, rl := z.left.Len(), z.right.Len()

	switch {
	case ll == 0 && rl == 0:
		// the ends have met, forward iteration has nothing left either
		z.leftDone, z.rightDone = true, true
		z.at = EitherOrBoth[A, B]{}
		return false
	case ll > rl:
		if !z.left.NextBack() {
			return false
		}
		z.at = NewLeft[A, B](z.left.Item())
	case rl > ll:
		if !z.right.NextBack() {
			return false
		}
		z.at = NewRight[A](z.right.Item())
	default:
		aok, bok := z.left.NextBack(), z.right.NextBack()
		// anything other than both true means Len lied
		switch {
		case aok && bok:
			z.at = NewBoth[A, B](z.left.Item(), z.right.Item())
		case aok:
			z.at = NewLeft[A, B](z.left.Item())
		case bok:
			z.at = NewRight[A](z.right.Item())
		default:
			return false
		}
	}
	return true
}

// Len returns the number of items left, which is the length
// of the longer side.
func (z *DoubleEndedZip[_, _]) Len() int {
	return max(z.left.Len(), z.right.Len())
}
