// Package containerops provides a uniform vocabulary of container
// operations - Find, Contains, ContainsAll, ContainsAny, Count, Add,
// AddAll, Remove, Difference - that dispatches to the most efficient
// operation the concrete container supports. Containers advertise
// their native abilities through small capability interfaces; anything
// that is merely Iterable falls back to a linear scan.
package containerops

import (
	"github.com/denismitr/containerops/set"
	"github.com/denismitr/containerops/utils"
)

type (
	// Iterable is the minimal capability the facade requires of a
	// container: visit items in the container's own order until fn
	// returns false. For key value containers the items are the keys.
	Iterable[T comparable] interface {
		ForEach(fn func(item T) bool)
	}

	// Lookuper is implemented by containers with a native key lookup
	// that is cheaper than a scan.
	Lookuper[T comparable] interface {
		Has(item T) bool
	}

	// Counter is implemented by containers with a native counting
	// operation.
	Counter[T comparable] interface {
		Count(item T) int
	}

	// Inserter is implemented by containers that accept single items:
	// sequential containers append, sets insert if absent.
	Inserter[T comparable] interface {
		Insert(item T) (modified bool)
	}

	// Eraser is implemented by containers with a native removal
	// operation. Sequential containers remove every occurrence,
	// unique key containers remove the single entry.
	Eraser[T comparable] interface {
		Remove(item T) (removed bool)
	}

	// Setter is implemented by key value containers. Set has
	// assignment semantics: an existing value is overwritten.
	Setter[K comparable, V any] interface {
		Set(key K, value V)
	}

	// PairIterable is implemented by key value containers: visit
	// pairs in the container's own order until fn returns false.
	PairIterable[K comparable, V any] interface {
		ForEachPair(fn func(key K, value V) bool)
	}
)

// Find returns the first element of the container equal to item, or
// the zero value and false if there is none. For key value containers
// item is a key. Containers with a native lookup are probed directly,
// anything else is scanned.
func Find[T comparable](c Iterable[T], item T) (T, bool) {
	if l, ok := c.(Lookuper[T]); ok {
		if l.Has(item) {
			return item, true
		}
		return utils.GetZero[T](), false
	}

	var (
		result T
		found  bool
	)
	c.ForEach(func(candidate T) bool {
		if candidate == item {
			result = candidate
			found = true
			return false
		}
		return true
	})

	if !found {
		return utils.GetZero[T](), false
	}
	return result, true
}

// Contains reports whether the container holds the item. For key
// value containers item is a key.
func Contains[T comparable](c Iterable[T], item T) bool {
	_, found := Find(c, item)
	return found
}

// ContainsAll reports whether the container holds every item of
// items. An empty items yields true. Stops at the first miss.
func ContainsAll[T comparable](c Iterable[T], items Iterable[T]) bool {
	all := true
	items.ForEach(func(item T) bool {
		if !Contains(c, item) {
			all = false
			return false
		}
		return true
	})
	return all
}

// ContainsAny reports whether the container holds at least one item
// of items. An empty items yields false. Stops at the first hit.
func ContainsAny[T comparable](c Iterable[T], items Iterable[T]) bool {
	found := false
	items.ForEach(func(item T) bool {
		if Contains(c, item) {
			found = true
			return false
		}
		return true
	})
	return found
}

// Count returns the number of elements equal to item. For unique key
// containers the answer is 0 or 1, for sequential containers it may
// exceed 1. Containers with a native count answer directly, anything
// else is scanned with a running tally.
func Count[T comparable](c Iterable[T], item T) int {
	if counter, ok := c.(Counter[T]); ok {
		return counter.Count(item)
	}

	if l, ok := c.(Lookuper[T]); ok {
		if l.Has(item) {
			return 1
		}
		return 0
	}

	n := 0
	c.ForEach(func(candidate T) bool {
		if candidate == item {
			n++
		}
		return true
	})
	return n
}

// Add inserts the item into the container: sequential containers
// append it at the end, sets insert it if absent. Returns whether the
// container was modified. Key value containers take Put instead.
func Add[T comparable](c Inserter[T], item T) bool {
	return c.Insert(item)
}

// AddAll inserts every item of items, in items order, and reports
// whether the container was modified at all.
func AddAll[T comparable](c Inserter[T], items Iterable[T]) (modified bool) {
	items.ForEach(func(item T) bool {
		if c.Insert(item) {
			modified = true
		}
		return true
	})
	return modified
}

// Put assigns value to key in a key value container, overwriting any
// previous value.
func Put[K comparable, V any](m Setter[K, V], key K, value V) {
	m.Set(key, value)
}

// PutAll assigns every pair of src into dst, overwriting values of
// keys already present.
func PutAll[K comparable, V any](dst Setter[K, V], src PairIterable[K, V]) {
	src.ForEachPair(func(key K, value V) bool {
		dst.Set(key, value)
		return true
	})
}

// Remove removes the item from the container: every occurrence for a
// sequential container, the single entry for a unique key container.
// An absent item is a no-op reported as false.
func Remove[T comparable](c Eraser[T], item T) bool {
	return c.Remove(item)
}

// Difference returns the distinct elements of first that are not
// contained in second, as an unordered set.
func Difference[T comparable](first, second Iterable[T]) *set.HashSet[T] {
	result := set.NewHashSet[T]()
	first.ForEach(func(item T) bool {
		if !Contains(second, item) {
			result.Insert(item)
		}
		return true
	})
	return result
}
