package ziplongest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.lepak.sg/ziplongest/iterator"
)

func TestDoubleEndedZip(t *testing.T) {
	type Z = DoubleEndedZip[int, int]

	tests := []struct {
		name  string
		left  []int
		right []int
		post  func(t *testing.T, z *Z)
	}{
		{
			name: "empty",
			post: func(t *testing.T, z *Z) {
				assert.Equal(t, 0, z.Len())
				assert.False(t, z.NextBack())
				assert.True(t, z.Finished())
				assert.False(t, z.Next())
			},
		},
		{
			name:  "both ends",
			left:  []int{1, 2, 3, 4, 5, 6},
			right: []int{1, 2, 3, 7},
			post: func(t *testing.T, z *Z) {
				assert.Equal(t, 6, z.Len())
				assert.True(t, z.Next())
				assert.Equal(t, NewBoth(1, 1), z.Item())
				assert.True(t, z.Next())
				assert.Equal(t, NewBoth(2, 2), z.Item())
				assert.True(t, z.NextBack())
				assert.Equal(t, NewLeft[int, int](6), z.Item())
				assert.True(t, z.NextBack())
				assert.Equal(t, NewLeft[int, int](5), z.Item())
				assert.True(t, z.NextBack())
				assert.Equal(t, NewBoth(4, 7), z.Item())
				assert.True(t, z.Next())
				assert.Equal(t, NewBoth(3, 3), z.Item())
				assert.Equal(t, 0, z.Len())
				assert.False(t, z.Next())
				assert.False(t, z.NextBack())
			},
		},
		{
			name:  "backwards only",
			left:  []int{1},
			right: []int{10, 20, 30},
			post: func(t *testing.T, z *Z) {
				assert.True(t, z.NextBack())
				assert.Equal(t, NewRight[int](30), z.Item())
				assert.True(t, z.NextBack())
				assert.Equal(t, NewRight[int](20), z.Item())
				assert.True(t, z.NextBack())
				assert.Equal(t, NewBoth(1, 10), z.Item())
				assert.False(t, z.Finished())
				assert.False(t, z.NextBack())
				assert.True(t, z.Finished())
				assert.False(t, z.Next())
			},
		},
		{
			name:  "forward after right ran out",
			left:  []int{1, 2, 3},
			right: []int{10},
			post: func(t *testing.T, z *Z) {
				assert.True(t, z.Next())
				assert.True(t, z.Next())
				assert.Equal(t, NewLeft[int, int](2), z.Item())
				assert.True(t, z.NextBack())
				assert.Equal(t, NewLeft[int, int](3), z.Item())
				assert.False(t, z.NextBack())
				assert.False(t, z.Next())
				assert.True(t, z.Finished())
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.post(t, NewDoubleEnded[int, int](iterator.Slice(tt.left), iterator.Slice(tt.right)))
		})
	}
}
