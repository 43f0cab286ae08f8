package iterator

var (
	_ DoubleEnded[int] = (*SliceIterator[int])(nil)
	_ SizeHinter       = (*SliceIterator[int])(nil)
)

// SliceIterator iterates over a slice from either end.
// The slice is not copied, so mutating it while iterating
// will show through.
type SliceIterator[T any] struct {
	s           []T
	front, back int
	at          T
}

// Slice returns a new SliceIterator over s.
func Slice[T any, S ~[]T](s S) *SliceIterator[T] {
	return &SliceIterator[T]{
		s:    s,
		back: len(s),
	}
}

func (i *SliceIterator[T]) Next() bool {
	if i == nil || i.front >= i.back {
		return false
	}
	i.at = i.s[i.front]
	i.front++
	return true
}

func (i *SliceIterator[T]) NextBack() bool {
	if i == nil || i.back <= i.front {
		return false
	}
	i.back--
	i.at = i.s[i.back]
	return true
}

// Item returns the item most recently taken from either end.
func (i *SliceIterator[T]) Item() T {
	return i.at
}

func (i *SliceIterator[T]) Len() int {
	if i == nil {
		return 0
	}
	return i.back - i.front
}

func (i *SliceIterator[T]) SizeHint() (int, int, bool) {
	n := i.Len()
	return n, n, true
}
