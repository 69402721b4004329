package container

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Text is a [CategoryStringLike] container. Text[rune] and Text[byte] render
// as ordinary strings; other element types render by concatenating their
// printed forms.
type Text[T any] struct {
	items []T
}

// NewText creates a Text holding the runes of s.
func NewText(s string) *Text[rune] {
	return &Text[rune]{items: []rune(s)}
}

// TextOf creates a Text from a variadic list of characters (copied).
func TextOf[T any](items ...T) *Text[T] {
	return &Text[T]{items: slices.Clone(items)}
}

// Category returns [CategoryStringLike].
func (t *Text[T]) Category() Category { return CategoryStringLike }

// Len returns the number of characters.
func (t *Text[T]) Len() int { return len(t.items) }

// All yields the characters in order.
func (t *Text[T]) All() iter.Seq[T] { return slices.Values(t.items) }

// Backward yields the characters in reverse order.
func (t *Text[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := len(t.items) - 1; i >= 0; i-- {
			if !yield(t.items[i]) {
				return
			}
		}
	}
}

// Pointers yields a pointer to every character.
func (t *Text[T]) Pointers() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for i := range t.items {
			if !yield(&t.items[i]) {
				return
			}
		}
	}
}

// Add appends a character.
func (t *Text[T]) Add(c T) { t.items = append(t.items, c) }

// Make returns an empty Text.
func (t *Text[T]) Make(sizeHint int) Container[T] {
	return &Text[T]{items: make([]T, 0, max(sizeHint, 0))}
}

// Release hands the characters to the caller and leaves t empty.
func (t *Text[T]) Release() []T {
	items := t.items
	t.items = nil
	return items
}

// Adopt returns a Text backed by items.
func (t *Text[T]) Adopt(items []T) Container[T] { return &Text[T]{items: items} }

// Concat returns a new Text holding t followed by other.
func (t *Text[T]) Concat(other *Text[T]) *Text[T] {
	out := make([]T, 0, len(t.items)+len(other.items))
	out = append(out, t.items...)
	out = append(out, other.items...)
	return &Text[T]{items: out}
}

// String implements [fmt.Stringer].
func (t *Text[T]) String() string {
	switch cs := any(t.items).(type) {
	case []rune:
		return string(cs)
	case []byte:
		return string(cs)
	}
	var b strings.Builder
	for _, c := range t.items {
		fmt.Fprint(&b, c)
	}
	return b.String()
}
