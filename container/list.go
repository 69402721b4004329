package container

import (
	"fmt"
	"iter"
	"strings"

	"github.com/hasbyte1/go-sigutil/maybe"
)

type listNode[T any] struct {
	value      T
	prev, next *listNode[T]
}

// List is a doubly linked [CategorySequence] container. It has no random
// access; sorting it goes through a copy (see hof.Sort).
type List[T any] struct {
	head, tail *listNode[T]
	n          int
}

// NewList creates a List holding items in order.
func NewList[T any](items ...T) *List[T] {
	l := &List[T]{}
	for _, item := range items {
		l.PushBack(item)
	}
	return l
}

// Category returns [CategorySequence].
func (l *List[T]) Category() Category { return CategorySequence }

// Len returns the number of items.
func (l *List[T]) Len() int { return l.n }

// All yields the items front to back.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for e := l.head; e != nil; e = e.next {
			if !yield(e.value) {
				return
			}
		}
	}
}

// Backward yields the items back to front.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for e := l.tail; e != nil; e = e.prev {
			if !yield(e.value) {
				return
			}
		}
	}
}

// Pointers yields a pointer to every item, front to back.
func (l *List[T]) Pointers() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for e := l.head; e != nil; e = e.next {
			if !yield(&e.value) {
				return
			}
		}
	}
}

// Add appends item at the back.
func (l *List[T]) Add(item T) { l.PushBack(item) }

// PushBack appends item at the back.
func (l *List[T]) PushBack(item T) {
	e := &listNode[T]{value: item, prev: l.tail}
	if l.tail == nil {
		l.head = e
	} else {
		l.tail.next = e
	}
	l.tail = e
	l.n++
}

// PushFront inserts item at the front.
func (l *List[T]) PushFront(item T) {
	e := &listNode[T]{value: item, next: l.head}
	if l.head == nil {
		l.tail = e
	} else {
		l.head.prev = e
	}
	l.head = e
	l.n++
}

// Front returns the first item, or Nothing when the list is empty.
func (l *List[T]) Front() maybe.Maybe[T] {
	if l.head == nil {
		return maybe.Nothing[T]()
	}
	return maybe.Just(l.head.value)
}

// Back returns the last item, or Nothing when the list is empty.
func (l *List[T]) Back() maybe.Maybe[T] {
	if l.tail == nil {
		return maybe.Nothing[T]()
	}
	return maybe.Just(l.tail.value)
}

// Make returns an empty List.
func (l *List[T]) Make(int) Container[T] { return NewList[T]() }

// Release returns the items as a slice and leaves l empty.
func (l *List[T]) Release() []T {
	out := make([]T, 0, l.n)
	for e := l.head; e != nil; e = e.next {
		out = append(out, e.value)
	}
	l.head, l.tail, l.n = nil, nil, 0
	return out
}

// Concat returns a new List holding l's items followed by other's.
func (l *List[T]) Concat(other *List[T]) *List[T] {
	out := NewList[T]()
	for v := range l.All() {
		out.PushBack(v)
	}
	for v := range other.All() {
		out.PushBack(v)
	}
	return out
}

// String implements [fmt.Stringer].
func (l *List[T]) String() string {
	parts := make([]string, 0, l.n)
	for v := range l.All() {
		parts = append(parts, fmt.Sprint(v))
	}
	return "[" + strings.Join(parts, " ") + "]"
}
