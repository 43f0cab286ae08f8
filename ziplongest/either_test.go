package ziplongest

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEitherOrBoth(t *testing.T) {
	tests := []struct {
		name   string
		e      EitherOrBoth[int, string]
		kind   Kind
		str    string
		a      int
		aok    bool
		b      string
		bok    bool
		called string
	}{
		{
			name:   "both",
			e:      NewBoth(1, "a"),
			kind:   Both,
			str:    "Both(1, a)",
			a:      1,
			aok:    true,
			b:      "a",
			bok:    true,
			called: "both",
		},
		{
			name:   "left",
			e:      NewLeft[int, string](3),
			kind:   Left,
			str:    "Left(3)",
			a:      3,
			aok:    true,
			called: "left",
		},
		{
			name:   "right",
			e:      NewRight[int]("b"),
			kind:   Right,
			str:    "Right(b)",
			b:      "b",
			bok:    true,
			called: "right",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.e.Kind())
			assert.Equal(t, tt.str, tt.e.String())
			assert.Equal(t, tt.str, fmt.Sprint(tt.e))

			a, aok, b, bok := tt.e.Get()
			assert.Equal(t, tt.a, a)
			assert.Equal(t, tt.aok, aok)
			assert.Equal(t, tt.b, b)
			assert.Equal(t, tt.bok, bok)

			var called string
			tt.e.Match(
				func(int, string) { called = "both" },
				func(int) { called = "left" },
				func(string) { called = "right" },
			)
			assert.Equal(t, tt.called, called)
		})
	}
}

func TestEitherOrBoth_Zero(t *testing.T) {
	var e EitherOrBoth[int, int]
	assert.Equal(t, "<invalid ziplongest.Kind>", e.Kind().String())
	assert.Equal(t, "<invalid ziplongest.EitherOrBoth>", e.String())

	_, ok := e.Left()
	assert.False(t, ok)
	_, ok = e.Right()
	assert.False(t, ok)

	assert.PanicsWithValue(t, "unhandled case in Match", func() {
		e.Match(func(int, int) {}, func(int) {}, func(int) {})
	})
}

func TestEitherOrBoth_Comparable(t *testing.T) {
	assert.True(t, NewBoth(1, 2) == NewBoth(1, 2))
	assert.False(t, NewBoth(1, 2) == NewBoth(1, 3))
	// a Left(0) is not the same as a Both(0, 0)
	assert.False(t, NewLeft[int, int](0) == NewBoth(0, 0))
	assert.False(t, NewLeft[int, int](1) == NewRight[int](1))
}
