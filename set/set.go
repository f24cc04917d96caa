package set

type nothing struct{}

type Set[T comparable] interface {
	Insert(item T) (modified bool)
	Remove(item T) (removed bool)
	Clear()
	Has(item T) bool
	Count(item T) int
	Len() int
	Items() []T
	ForEach(fn func(item T) bool)
	InsertSet(sourceSet Set[T]) (modified bool)
	InsertSlice(sourceSlice []T) (modified bool)
}
