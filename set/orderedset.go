package set

import (
	"github.com/google/btree"
	"golang.org/x/exp/constraints"
)

const btreeDegree = 16

// OrderedSet - is a sorted set: items are kept unique and
// traversed in ascending order.
type OrderedSet[T constraints.Ordered] struct {
	tree *btree.BTreeG[T]
}

var _ Set[int] = (*OrderedSet[int])(nil)

func NewOrderedSet[T constraints.Ordered]() *OrderedSet[T] {
	return &OrderedSet[T]{
		tree: btree.NewG(btreeDegree, func(a, b T) bool { return a < b }),
	}
}

func (s *OrderedSet[T]) Insert(item T) (modified bool) {
	_, found := s.tree.ReplaceOrInsert(item)
	return !found
}

func (s *OrderedSet[T]) Clear() {
	s.tree.Clear(false)
}

func (s *OrderedSet[T]) Items() []T {
	items := make([]T, 0, s.tree.Len())
	s.tree.Ascend(func(item T) bool {
		items = append(items, item)
		return true
	})
	return items
}

// ForEach visits every item in ascending order until fn returns false.
func (s *OrderedSet[T]) ForEach(fn func(item T) bool) {
	s.tree.Ascend(fn)
}

func (s *OrderedSet[T]) Has(item T) bool {
	return s.tree.Has(item)
}

// Count returns 1 if the item is present, otherwise 0.
func (s *OrderedSet[T]) Count(item T) int {
	if s.tree.Has(item) {
		return 1
	}
	return 0
}

func (s *OrderedSet[T]) Remove(item T) (removed bool) {
	_, removed = s.tree.Delete(item)
	return removed
}

func (s *OrderedSet[T]) InsertSet(sourceSet Set[T]) (modified bool) {
	sourceSet.ForEach(func(item T) bool {
		if s.Insert(item) {
			modified = true
		}
		return true
	})

	return modified
}

func (s *OrderedSet[T]) InsertSlice(sourceSlice []T) (modified bool) {
	for _, item := range sourceSlice {
		if s.Insert(item) {
			modified = true
		}
	}

	return modified
}

func (s *OrderedSet[T]) Len() int {
	return s.tree.Len()
}
