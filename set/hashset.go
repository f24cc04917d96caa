package set

// HashSet - is an unordered set
type HashSet[T comparable] struct {
	m map[T]nothing
}

var _ Set[int] = (*HashSet[int])(nil)

func NewHashSet[T comparable]() *HashSet[T] {
	return &HashSet[T]{
		m: make(map[T]nothing),
	}
}

func (s *HashSet[T]) Insert(item T) (modified bool) {
	if _, found := s.m[item]; !found {
		s.m[item] = nothing{}
		modified = true
	}

	return modified
}

func (s *HashSet[T]) Clear() {
	s.m = nil
	s.m = make(map[T]nothing)
}

func (s *HashSet[T]) Items() []T {
	items := make([]T, 0, len(s.m))
	for item := range s.m {
		items = append(items, item)
	}
	return items
}

// ForEach visits every item in unspecified order until fn returns false.
func (s *HashSet[T]) ForEach(fn func(item T) bool) {
	for item := range s.m {
		if !fn(item) {
			return
		}
	}
}

func (s *HashSet[T]) Has(item T) bool {
	_, ok := s.m[item]
	return ok
}

// Count returns 1 if the item is present, otherwise 0.
func (s *HashSet[T]) Count(item T) int {
	if _, ok := s.m[item]; ok {
		return 1
	}
	return 0
}

func (s *HashSet[T]) Remove(item T) (removed bool) {
	if _, found := s.m[item]; found {
		delete(s.m, item)
		removed = true
	}

	return removed
}

func (s *HashSet[T]) InsertSet(sourceSet Set[T]) (modified bool) {
	sourceSet.ForEach(func(item T) bool {
		if s.Insert(item) {
			modified = true
		}
		return true
	})

	return modified
}

func (s *HashSet[T]) InsertSlice(sourceSlice []T) (modified bool) {
	for _, item := range sourceSlice {
		if s.Insert(item) {
			modified = true
		}
	}

	return modified
}

func (s *HashSet[T]) Len() int {
	return len(s.m)
}
