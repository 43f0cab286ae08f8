package ziplongest

import (
	"fmt"
)

// Kind tells which sides of an EitherOrBoth hold a value.
type Kind int

const (
	// Both inputs produced an item.
	Both Kind = iota + 1
	// Only the left input produced an item. The right
	// input is exhausted.
	Left
	// Only the right input produced an item. The left
	// input is exhausted.
	Right
)

func (k Kind) String() string {
	switch k {
	case Both:
		return "Both"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "<invalid ziplongest.Kind>"
	}
}

// EitherOrBoth is a value yielded by ZipLongest.
// It holds one or two values, depending on which of the
// inputs are exhausted.
// The zero value has no valid Kind and is never yielded.
type EitherOrBoth[A, B any] struct {
	left  A
	right B
	kind  Kind
}

// NewBoth returns an EitherOrBoth holding both a and b.
func NewBoth[A, B any](a A, b B) EitherOrBoth[A, B] {
	return EitherOrBoth[A, B]{left: a, right: b, kind: Both}
}

// NewLeft returns an EitherOrBoth holding only a.
func NewLeft[A, B any](a A) EitherOrBoth[A, B] {
	return EitherOrBoth[A, B]{left: a, kind: Left}
}

// NewRight returns an EitherOrBoth holding only b.
func NewRight[A, B any](b B) EitherOrBoth[A, B] {
	return EitherOrBoth[A, B]{right: b, kind: Right}
}

// Kind reports which sides hold a value.
func (e EitherOrBoth[_, _]) Kind() Kind {
	return e.kind
}

// Left returns the left value, if there is one.
func (e EitherOrBoth[A, _]) Left() (a A, ok bool) {
	if e.kind == Both || e.kind == Left {
		return e.left, true
	}
	return
}

// Right returns the right value, if there is one.
func (e EitherOrBoth[_, B]) Right() (b B, ok bool) {
	if e.kind == Both || e.kind == Right {
		return e.right, true
	}
	return
}

// Get returns both sides at once. A missing side is
// returned as its zero value with ok set to false.
func (e EitherOrBoth[A, B]) Get() (a A, aok bool, b B, bok bool) {
	a, aok = e.Left()
	b, bok = e.Right()
	return
}

// Match performs an exhaustive match on the EitherOrBoth.
// Exactly one of the functions is called.
func (e EitherOrBoth[A, B]) Match(both func(A, B), left func(A), right func(B)) {
	switch e.kind {
	case Both:
		both(e.left, e.right)
	case Left:
		left(e.left)
	case Right:
		right(e.right)
	default:
		panic("unhandled case in Match")
	}
}

func (e EitherOrBoth[_, _]) String() string {
	switch e.kind {
	case Both:
		return fmt.Sprintf("Both(%v, %v)", e.left, e.right)
	case Left:
		return fmt.Sprintf("Left(%v)", e.left)
	case Right:
		return fmt.Sprintf("Right(%v)", e.right)
	default:
		return "<invalid ziplongest.EitherOrBoth>"
	}
}
