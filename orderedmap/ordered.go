package orderedmap

import (
	"github.com/denismitr/containerops/keyvalue"
	"github.com/denismitr/containerops/utils"
	"github.com/google/btree"
	"golang.org/x/exp/constraints"
)

const btreeDegree = 16

// OrderedMap is a key value container sorted by key: keys are kept
// unique and traversed in ascending order.
// As far as the facade is concerned its items are its keys.
type OrderedMap[K constraints.Ordered, V any] struct {
	tree *btree.BTreeG[keyvalue.Pair[K, V]]
}

func NewOrderedMap[K constraints.Ordered, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		tree: btree.NewG(btreeDegree, func(a, b keyvalue.Pair[K, V]) bool {
			return a.Key < b.Key
		}),
	}
}

// Set assigns value to key, overwriting any previous value.
func (om *OrderedMap[K, V]) Set(key K, value V) {
	om.tree.ReplaceOrInsert(keyvalue.Pair[K, V]{Key: key, Value: value})
}

// SetNX assigns value to key only if the key is absent
// and returns true when the assignment happened.
func (om *OrderedMap[K, V]) SetNX(key K, value V) (added bool) {
	if om.tree.Has(keyvalue.Pair[K, V]{Key: key}) {
		return false
	}

	om.tree.ReplaceOrInsert(keyvalue.Pair[K, V]{Key: key, Value: value})
	return true
}

func (om *OrderedMap[K, V]) Get(key K) V {
	v, _ := om.HasGet(key)
	return v
}

func (om *OrderedMap[K, V]) HasGet(key K) (V, bool) {
	p, found := om.tree.Get(keyvalue.Pair[K, V]{Key: key})
	if !found {
		return utils.GetZero[V](), false
	}

	return p.Value, true
}

func (om *OrderedMap[K, V]) Has(key K) bool {
	return om.tree.Has(keyvalue.Pair[K, V]{Key: key})
}

// Count reports how many entries are stored under key, which
// for a unique key container is 0 or 1.
func (om *OrderedMap[K, V]) Count(key K) int {
	if om.tree.Has(keyvalue.Pair[K, V]{Key: key}) {
		return 1
	}
	return 0
}

func (om *OrderedMap[K, V]) Remove(key K) (removed bool) {
	_, removed = om.tree.Delete(keyvalue.Pair[K, V]{Key: key})
	return removed
}

func (om *OrderedMap[K, V]) Len() int {
	return om.tree.Len()
}

func (om *OrderedMap[K, V]) Clear() {
	om.tree.Clear(false)
}

// ForEach visits every key in ascending order until fn returns false.
func (om *OrderedMap[K, V]) ForEach(fn func(key K) bool) {
	om.tree.Ascend(func(p keyvalue.Pair[K, V]) bool {
		return fn(p.Key)
	})
}

// ForEachPair visits every pair in ascending key order until fn returns false.
func (om *OrderedMap[K, V]) ForEachPair(fn func(key K, value V) bool) {
	om.tree.Ascend(func(p keyvalue.Pair[K, V]) bool {
		return fn(p.Key, p.Value)
	})
}

func (om *OrderedMap[K, V]) Keys() []K {
	keys := make([]K, 0, om.tree.Len())
	om.tree.Ascend(func(p keyvalue.Pair[K, V]) bool {
		keys = append(keys, p.Key)
		return true
	})
	return keys
}

func (om *OrderedMap[K, V]) Values() []V {
	values := make([]V, 0, om.tree.Len())
	om.tree.Ascend(func(p keyvalue.Pair[K, V]) bool {
		values = append(values, p.Value)
		return true
	})
	return values
}

func (om *OrderedMap[K, V]) Pairs() []keyvalue.Pair[K, V] {
	pairs := make([]keyvalue.Pair[K, V], 0, om.tree.Len())
	om.tree.Ascend(func(p keyvalue.Pair[K, V]) bool {
		pairs = append(pairs, p)
		return true
	})
	return pairs
}
