package containerops_test

import (
	"testing"

	ops "github.com/denismitr/containerops"
	"github.com/stretchr/testify/assert"
)

func TestSeq_Insert(t *testing.T) {
	t.Run("appends at the end", func(t *testing.T) {
		s := ops.Of("foo", "bar")

		s.Insert("baz")

		assert.Equal(t, []string{"foo", "bar", "baz"}, s.Items())
		assert.Equal(t, 3, s.Len())
	})

	t.Run("keeps duplicates", func(t *testing.T) {
		s := ops.Of(1)

		s.Insert(1)
		s.Insert(1)

		assert.Equal(t, []int{1, 1, 1}, s.Items())
	})
}

func TestSeq_Remove(t *testing.T) {
	t.Run("removes every occurrence and keeps relative order", func(t *testing.T) {
		s := ops.Of("foo", "bar", "foo", "baz", "foo")

		removed := s.Remove("foo")

		assert.True(t, removed)
		assert.Equal(t, []string{"bar", "baz"}, s.Items())
	})

	t.Run("absent item leaves the sequence untouched", func(t *testing.T) {
		s := ops.Of(1, 2, 3)

		removed := s.Remove(9)

		assert.False(t, removed)
		assert.Equal(t, []int{1, 2, 3}, s.Items())
	})
}

func TestSeq_ForEach(t *testing.T) {
	t.Run("visits elements in order", func(t *testing.T) {
		s := ops.Of(1, 2, 3)

		var visited []int
		s.ForEach(func(item int) bool {
			visited = append(visited, item)
			return true
		})

		assert.Equal(t, []int{1, 2, 3}, visited)
	})

	t.Run("stops when fn returns false", func(t *testing.T) {
		s := ops.Of(1, 2, 3)

		var visited []int
		s.ForEach(func(item int) bool {
			visited = append(visited, item)
			return item < 2
		})

		assert.Equal(t, []int{1, 2}, visited)
	})
}
