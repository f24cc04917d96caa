package list_test

import (
	"testing"

	"github.com/denismitr/containerops/list"
	"github.com/stretchr/testify/assert"
)

func TestList_Insert(t *testing.T) {
	t.Run("appends at the end and keeps duplicates", func(t *testing.T) {
		l := list.New[string]()

		l.Insert("foo")
		l.Insert("bar")
		l.Insert("foo")

		assert.Equal(t, []string{"foo", "bar", "foo"}, l.Items())
		assert.Equal(t, 3, l.Len())
	})
}

func TestList_Remove(t *testing.T) {
	t.Run("removes every occurrence and keeps relative order", func(t *testing.T) {
		l := list.New[int]()
		l.Insert(1)
		l.Insert(3)
		l.Insert(2)
		l.Insert(3)
		l.Insert(4)

		assert.True(t, l.Remove(3))

		assert.Equal(t, []int{1, 2, 4}, l.Items())
		assert.Equal(t, 3, l.Len())
	})

	t.Run("remove from the beginning", func(t *testing.T) {
		l := list.New[string]()
		l.Insert("foo")
		l.Insert("bar")
		l.Insert("baz")

		assert.True(t, l.Remove("foo"))

		assert.Equal(t, []string{"bar", "baz"}, l.Items())
	})

	t.Run("remove from the end", func(t *testing.T) {
		l := list.New[string]()
		l.Insert("foo")
		l.Insert("bar")
		l.Insert("baz")

		assert.True(t, l.Remove("baz"))

		assert.Equal(t, []string{"foo", "bar"}, l.Items())
	})

	t.Run("absent item leaves the list untouched", func(t *testing.T) {
		l := list.New[int]()
		l.Insert(1)
		l.Insert(2)

		assert.False(t, l.Remove(9))
		assert.Equal(t, []int{1, 2}, l.Items())
	})
}

func TestList_ForEach(t *testing.T) {
	t.Run("visits elements in insertion order", func(t *testing.T) {
		l := list.New[int]()
		l.Insert(1)
		l.Insert(2)
		l.Insert(3)

		var visited []int
		l.ForEach(func(item int) bool {
			visited = append(visited, item)
			return true
		})

		assert.Equal(t, []int{1, 2, 3}, visited)
	})

	t.Run("stops when fn returns false", func(t *testing.T) {
		l := list.New[int]()
		l.Insert(1)
		l.Insert(2)
		l.Insert(3)

		var visited []int
		l.ForEach(func(item int) bool {
			visited = append(visited, item)
			return false
		})

		assert.Equal(t, []int{1}, visited)
	})
}

func TestList_Clear(t *testing.T) {
	l := list.New[int]()
	l.Insert(1)
	l.Insert(2)

	l.Clear()

	assert.Equal(t, 0, l.Len())
	assert.Empty(t, l.Items())
}
