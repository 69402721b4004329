package access

import (
	"iter"
	"slices"

	"github.com/hasbyte1/go-sigutil/container"
)

// Mode is the access contract a [View] was created under.
type Mode uint8

const (
	// ReadOnly borrows the container; it is left untouched.
	ReadOnly Mode = iota
	// Mutable borrows the container and may write its elements in place.
	Mutable
	// Move consumes the container. It must not be read again; its contents
	// afterwards are unspecified.
	Move
)

// String implements [fmt.Stringer].
func (m Mode) String() string {
	switch m {
	case ReadOnly:
		return "ReadOnly"
	case Mutable:
		return "Mutable"
	case Move:
		return "Move"
	default:
		return "Mode(?)"
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Ownership transfer
// ─────────────────────────────────────────────────────────────────────────────

// moved marks a container handed over by [Consume]. It still satisfies
// [container.Container] so it can be passed wherever a source is expected.
type moved[T any] struct {
	c container.Container[T]
}

// Consume marks c as handed over. An operation receiving the result may take
// c's storage when c implements [container.Releaser]; the caller must not
// read c again, and its contents afterwards are unspecified. Containers that
// cannot release their storage are read (copied) instead.
//
//	out := hof.Map(f, access.Consume(container.NewVector(1, 2, 3)))
func Consume[T any](c container.Container[T]) container.Container[T] {
	if m, ok := c.(*moved[T]); ok {
		return m
	}
	return &moved[T]{c: c}
}

func (m *moved[T]) All() iter.Seq[T] { return m.c.All() }

func (m *moved[T]) Add(v T) { m.c.Add(v) }

func (m *moved[T]) Len() int { return m.c.Len() }

func (m *moved[T]) Category() container.Category { return m.c.Category() }

func (m *moved[T]) Make(sizeHint int) container.Container[T] { return m.c.Make(sizeHint) }

// ─────────────────────────────────────────────────────────────────────────────
// View
// ─────────────────────────────────────────────────────────────────────────────

// View is a single-use traversal of a container under a [Mode]. The first of
// [View.Values], [View.Backward] or [View.Pointers] to be iterated consumes
// the view; later traversals yield nothing.
type View[T any] struct {
	mode Mode
	c    container.Container[T]
	used bool
}

// Of returns a view of src. The mode is [Move] when src came from [Consume]
// and the container can release its storage, [ReadOnly] otherwise.
func Of[T any](src container.Source[T]) *View[T] {
	if m, ok := src.(*moved[T]); ok {
		if _, ok := m.c.(container.Releaser[T]); ok {
			return &View[T]{mode: Move, c: m.c}
		}
		return &View[T]{mode: ReadOnly, c: m.c}
	}
	return &View[T]{mode: ReadOnly, c: container.Describe(src)}
}

// Mutate returns a [Mutable] view of c.
func Mutate[T any](c container.Mutable[T]) *View[T] {
	return &View[T]{mode: Mutable, c: c}
}

// Mode returns the access mode.
func (v *View[T]) Mode() Mode { return v.mode }

// Container returns the descriptor of the viewed container. In [Move] mode
// its contents are unspecified once the view has been traversed, but it
// keeps its category and configuration.
func (v *View[T]) Container() container.Container[T] { return v.c }

// Category is shorthand for v.Container().Category().
func (v *View[T]) Category() container.Category { return v.c.Category() }

// Len returns the number of elements left in the viewed container.
func (v *View[T]) Len() int { return v.c.Len() }

// Consumed reports whether the view has been traversed.
func (v *View[T]) Consumed() bool { return v.used }

// Values yields the elements in traversal order. In [Move] mode the storage
// is released from the container when iteration starts.
func (v *View[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		if v.used {
			return
		}
		v.used = true
		if v.mode == Move {
			for _, e := range v.c.(container.Releaser[T]).Release() {
				if !yield(e) {
					return
				}
			}
			return
		}
		for e := range v.c.All() {
			if !yield(e) {
				return
			}
		}
	}
}

// Storage hands the released elements of the container to the caller and
// consumes the view. It reports false, leaving the view untouched, unless
// the view is in [Move] mode and has not been traversed yet.
func (v *View[T]) Storage() ([]T, bool) {
	if v.used || v.mode != Move {
		return nil, false
	}
	v.used = true
	return v.c.(container.Releaser[T]).Release(), true
}

// Backward yields the elements in reverse traversal order, natively when the
// container is [container.Reversible] and by buffering otherwise.
func (v *View[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		if v.used {
			return
		}
		if r, ok := v.c.(container.Reversible[T]); ok && v.mode != Move {
			v.used = true
			for e := range r.Backward() {
				if !yield(e) {
					return
				}
			}
			return
		}
		buf := slices.Collect(v.Values())
		for i := len(buf) - 1; i >= 0; i-- {
			if !yield(buf[i]) {
				return
			}
		}
	}
}

// Pointers yields a pointer to every element. It yields nothing unless the
// view was created by [Mutate].
func (v *View[T]) Pointers() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		if v.used || v.mode != Mutable {
			return
		}
		v.used = true
		for p := range v.c.(container.Mutable[T]).Pointers() {
			if !yield(p) {
				return
			}
		}
	}
}
