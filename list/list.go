package list

import (
	"github.com/denismitr/dll"
)

// List is a sequential container backed by a doubly linked list.
// It keeps insertion order and permits duplicates.
type List[T comparable] struct {
	list   *dll.DoublyLinkedList[T]
	length int
}

func New[T comparable]() *List[T] {
	return &List[T]{
		list: dll.New[T](),
	}
}

// Insert appends the item to the end of the list. It always
// succeeds since duplicates are permitted.
func (l *List[T]) Insert(item T) (modified bool) {
	l.list.PushTail(dll.NewElement(item))
	l.length++
	return true
}

// Remove removes every element equal to item, keeping the
// relative order of the remaining elements.
func (l *List[T]) Remove(item T) (removed bool) {
	var matched []*dll.Element[T]
	curr := l.list.Head()
	for curr != nil {
		if curr.Value() == item {
			matched = append(matched, curr)
		}
		curr = curr.Next()
	}

	for _, el := range matched {
		l.list.Remove(el)
		l.length--
	}

	return len(matched) > 0
}

func (l *List[T]) Clear() {
	l.list = nil
	l.list = dll.New[T]()
	l.length = 0
}

// ForEach visits every element in list order until fn returns false.
func (l *List[T]) ForEach(fn func(item T) bool) {
	curr := l.list.Head()
	for curr != nil {
		if !fn(curr.Value()) {
			return
		}
		curr = curr.Next()
	}
}

func (l *List[T]) Items() []T {
	items := make([]T, 0, l.length)
	curr := l.list.Head()
	for curr != nil {
		items = append(items, curr.Value())
		curr = curr.Next()
	}
	return items
}

func (l *List[T]) Len() int {
	return l.length
}
