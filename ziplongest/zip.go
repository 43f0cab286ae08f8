// Package ziplongest zips two iterators together, carrying on
// until both of them are exhausted instead of stopping at
// the shorter one.
//
// Where a plain zip over [1, 2, 3] and [a, b] gives
//
//	(1, a) (2, b)
//
// ZipLongest gives
//
//	Both(1, a) Both(2, b) Left(3)
package ziplongest

import (
	"go.lepak.sg/ziplongest/iterator"
)

var (
	_ iterator.Iterator[EitherOrBoth[int, string]] = (*ZipLongest[int, string])(nil)
	_ iterator.SizeHinter                          = (*ZipLongest[int, string])(nil)
)

// ZipLongest is an iterator which iterates two other iterators
// simultaneously.
// Once one side reports that it is exhausted, it is never
// polled again. Once both sides are exhausted, ZipLongest is
// finished for good and Next keeps returning false.
//
// ZipLongest is not safe for concurrent use.
type ZipLongest[A, B any] struct {
	left  iterator.Iterator[A]
	right iterator.Iterator[B]

	leftDone, rightDone bool

	at EitherOrBoth[A, B]
}

// New returns a ZipLongest over left and right, which it takes
// ownership of. Either may already be exhausted.
// Neither is polled until the first call to Next.
func New[A, B any](left iterator.Iterator[A], right iterator.Iterator[B]) *ZipLongest[A, B] {
	return &ZipLongest[A, B]{
		left:  left,
		right: right,
	}
}

// Next advances both sides that are still active and returns
// true if at least one of them produced an item.
func (z *ZipLongest[A, B]) Next() bool {
	var a A
	var b B
	aok, bok := false, false

	if !z.leftDone {
		if aok = z.left.Next(); aok {
			a = z.left.Item()
		} else {
			z.leftDone = true
		}
	}

	if !z.rightDone {
		if bok = z.right.Next(); bok {
			b = z.right.Item()
		} else {
			z.rightDone = true
		}
	}

	switch {
	case aok && bok:
		z.at = NewBoth[A, B](a, b)
	case aok:
		z.at = NewLeft[A, B](a)
	case bok:
		z.at = NewRight[A](b)
	default:
		z.at = EitherOrBoth[A, B]{}
		return false
	}
	return true
}

// Item returns the item produced by the last call to Next.
func (z *ZipLongest[A, B]) Item() EitherOrBoth[A, B] {
	return z.at
}

// Finished reports whether both sides are exhausted.
func (z *ZipLongest[_, _]) Finished() bool {
	return z.leftDone && z.rightDone
}

// SizeHint combines the size hints of both sides.
// A side that is not a SizeHinter has no known upper bound.
func (z *ZipLongest[A, B]) SizeHint() (lower, upper int, bounded bool) {
	llo, lhi, lok := hint(z.left, z.leftDone)
	rlo, rhi, rok := hint(z.right, z.rightDone)

	lower = max(llo, rlo)
	if lok && rok {
		return lower, max(lhi, rhi), true
	}
	return lower, 0, false
}

func hint(it any, done bool) (int, int, bool) {
	if done {
		return 0, 0, true
	}
	if sh, ok := it.(iterator.SizeHinter); ok {
		return sh.SizeHint()
	}
	return 0, 0, false
}

// Slices zips two slices.
func Slices[A, B any](left []A, right []B) []EitherOrBoth[A, B] {
	return iterator.Collect[EitherOrBoth[A, B]](
		New[A, B](iterator.Slice(left), iterator.Slice(right)),
	)
}
