package iterator

import (
	"iter"
)

// PullIterator turns a push-style iter.Seq into an Iterator.
// It must be stopped once it is no longer needed, unless it
// has been run to exhaustion.
type PullIterator[T any] struct {
	next func() (T, bool)
	stop func()
	at   T
}

// Pull starts pulling from seq. Nothing runs until the
// first call to Next.
func Pull[T any](seq iter.Seq[T]) *PullIterator[T] {
	next, stop := iter.Pull(seq)
	return &PullIterator[T]{
		next: next,
		stop: stop,
	}
}

func (p *PullIterator[T]) Next() bool {
	var ok bool
	p.at, ok = p.next()
	return ok
}

func (p *PullIterator[T]) Item() T {
	return p.at
}

// Stop ends the iteration and releases the underlying sequence.
// It may be called any number of times. After Stop, Next
// returns false.
func (p *PullIterator[T]) Stop() {
	p.stop()
}
