package testutils

import (
	"github.com/stretchr/testify/assert"
	"go.lepak.sg/ziplongest/iterator"
)

type TestT interface {
	Log(...any)
	Logf(string, ...any)
	Error(...any)
	Errorf(string, ...any) // also used by testify/assert
}

// Drain expects to receive data in order from it, then expects
// it to be exhausted.
// After that, Next is called extra more times, and every one
// of them must also report exhaustion.
// Only use extra > 0 on iterators that promise to stay exhausted.
func Drain[T any](t TestT, data []T, it iterator.Iterator[T], extra int) {
	t.Logf("draining: expecting %v", data)
	for i, datum := range data {
		if !it.Next() {
			t.Errorf("iterator exhausted early, expecting i=%d %v", i, datum)
			return
		}
		assert.Equal(t, datum, it.Item(), "i=%d", i)
	}

	if it.Next() {
		t.Errorf("iterator should be exhausted, but yielded: %v", it.Item())
		return
	}

	for i := 0; i < extra; i++ {
		if it.Next() {
			t.Errorf("iterator resumed after exhaustion (extra=%d): %v", i, it.Item())
			return
		}
	}
}
