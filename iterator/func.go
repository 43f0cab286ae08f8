package iterator

// FuncIterator calls a generator function once per Next.
type FuncIterator[T any] struct {
	f  func() (T, bool)
	at T
}

// Func returns an iterator over the values produced by f.
// f signals the end of the sequence by returning false.
// f is called again if Next is called after that.
func Func[T any](f func() (T, bool)) *FuncIterator[T] {
	return &FuncIterator[T]{f: f}
}

func (i *FuncIterator[T]) Next() bool {
	var ok bool
	i.at, ok = i.f()
	return ok
}

func (i *FuncIterator[T]) Item() T {
	return i.at
}

// ChanIterator receives items from a channel.
type ChanIterator[T any] struct {
	ch <-chan T
	at T
}

// Chan returns an iterator that receives from ch until it is closed.
// Next blocks whenever a receive on ch would block.
// A nil channel is treated as already closed, rather than
// blocking forever.
func Chan[T any](ch <-chan T) *ChanIterator[T] {
	return &ChanIterator[T]{ch: ch}
}

func (i *ChanIterator[T]) Next() bool {
	if i.ch == nil {
		return false
	}
	x, ok := <-i.ch
	if !ok {
		i.ch = nil
		return false
	}
	i.at = x
	return true
}

func (i *ChanIterator[T]) Item() T {
	return i.at
}
