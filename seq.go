package containerops

// Seq is a slice-backed sequential container: insertion order is kept
// and duplicates are permitted. A slice literal converts straight into
// the items argument of the facade operations; Of spells it inline.
type Seq[T comparable] []T

// Of builds a Seq from an in-place list of items.
func Of[T comparable](items ...T) Seq[T] {
	return Seq[T](items)
}

// ForEach visits every element in slice order until fn returns false.
func (s Seq[T]) ForEach(fn func(item T) bool) {
	for _, item := range s {
		if !fn(item) {
			return
		}
	}
}

// Insert appends the item at the end. It always succeeds since
// duplicates are permitted.
func (s *Seq[T]) Insert(item T) (modified bool) {
	*s = append(*s, item)
	return true
}

// Remove removes every element equal to item in place, keeping the
// relative order of the remaining elements.
func (s *Seq[T]) Remove(item T) (removed bool) {
	kept := (*s)[:0]
	for _, candidate := range *s {
		if candidate == item {
			removed = true
			continue
		}
		kept = append(kept, candidate)
	}

	*s = kept
	return removed
}

func (s Seq[T]) Items() []T {
	items := make([]T, len(s))
	copy(items, s)
	return items
}

func (s Seq[T]) Len() int {
	return len(s)
}
