package container

import (
	"iter"
	"slices"
)

// Source is the minimal surface a collection type must expose to be handed to
// the engine: a traversal over its elements and an insertion operation.
type Source[T any] interface {
	// All yields every element in the collection's traversal order.
	All() iter.Seq[T]

	// Add inserts v following the collection's own rule: append for
	// positional categories, insert (collapsing duplicates) for sets and maps.
	Add(v T)
}

// Container is the full capability descriptor of a categorized collection.
// All concrete types in this package implement it; [Describe] synthesizes it
// for any other [Source].
type Container[T any] interface {
	Source[T]

	// Len returns the number of elements.
	Len() int

	// Category returns the structural category.
	Category() Category

	// Make returns a new, empty container of the same concrete type and
	// configuration (capacity, comparator), ready to receive about sizeHint
	// elements.
	Make(sizeHint int) Container[T]
}

// Categorized is implemented by user types that declare their category.
type Categorized interface {
	Category() Category
}

// Maker is implemented by user types that know how to build an empty
// instance of themselves.
type Maker[T any] interface {
	Make(sizeHint int) Source[T]
}

// Mutable is implemented by containers whose elements can be updated in
// place. Set and map categories never implement it: their elements are keys.
type Mutable[T any] interface {
	Container[T]

	// Pointers yields a pointer to every element in traversal order.
	Pointers() iter.Seq[*T]
}

// Releaser is implemented by containers that can hand their storage over to
// a consumer. After Release the container is empty.
type Releaser[T any] interface {
	Release() []T
}

// Adopter is implemented by slice-backed containers that can take ownership
// of an existing slice without copying it.
type Adopter[T any] interface {
	// Adopt returns a new container of the same concrete type and
	// configuration whose storage is items. The caller must not use items
	// afterwards.
	Adopt(items []T) Container[T]
}

// Reversible is implemented by containers with a native reverse traversal.
type Reversible[T any] interface {
	Backward() iter.Seq[T]
}

// Bounded is implemented by fixed-capacity containers.
type Bounded interface {
	Cap() int
}

// ─────────────────────────────────────────────────────────────────────────────
// Classification
// ─────────────────────────────────────────────────────────────────────────────

// Describe classifies src and returns its capability descriptor.
//
// src is returned unchanged when it already implements [Container]. Otherwise
// the category comes from an optional Category() method (default
// [CategorySequence]), the length from an optional Len() method (default: a
// counting traversal) and Make from an optional [Maker] implementation
// (default: the built-in container of that category, see [New]).
func Describe[T any](src Source[T]) Container[T] {
	if c, ok := src.(Container[T]); ok {
		return c
	}
	return &admitted[T]{src: src}
}

// Categorize returns the category of src, defaulting to [CategorySequence].
func Categorize[T any](src Source[T]) Category {
	return Describe(src).Category()
}

type admitted[T any] struct {
	src Source[T]
}

func (a *admitted[T]) All() iter.Seq[T] { return a.src.All() }

func (a *admitted[T]) Add(v T) { a.src.Add(v) }

func (a *admitted[T]) Category() Category {
	if c, ok := a.src.(Categorized); ok {
		return c.Category()
	}
	return CategorySequence
}

func (a *admitted[T]) Len() int {
	if l, ok := a.src.(interface{ Len() int }); ok {
		return l.Len()
	}
	n := 0
	for range a.src.All() {
		n++
	}
	return n
}

func (a *admitted[T]) Make(sizeHint int) Container[T] {
	if m, ok := a.src.(Maker[T]); ok {
		return Describe(m.Make(sizeHint))
	}
	return New[T](a.Category(), sizeHint)
}

// Unwrap returns the user value behind a synthesized descriptor.
func (a *admitted[T]) Unwrap() Source[T] { return a.src }

// ─────────────────────────────────────────────────────────────────────────────
// Construction
// ─────────────────────────────────────────────────────────────────────────────

// New returns an empty built-in container of category cat, sized for about
// sizeHint elements. For [CategoryFixedSize] sizeHint is the capacity.
//
// Ordered categories use [Compare]. Map categories produce a typed
// [HashMap]/[OrderedMap] when T is an [Entry]; any other element type is
// keyed on the whole value.
func New[T any](cat Category, sizeHint int) Container[T] {
	if sizeHint < 0 {
		sizeHint = 0
	}
	switch cat {
	case CategoryFixedSize:
		return NewArray[T](sizeHint)
	case CategoryStringLike:
		return &Text[T]{items: make([]T, 0, sizeHint)}
	case CategoryHashSet:
		return newHashSet[T](sizeHint)
	case CategoryOrderedSet:
		return NewOrderedSetFunc[T](Compare[T])
	case CategoryHashMap, CategoryOrderedMap:
		var zero T
		if mk, ok := any(&zero).(mapMaker); ok {
			if m, ok := mk.makeMap(cat, sizeHint).(Container[T]); ok {
				return m
			}
		}
		if cat == CategoryOrderedMap {
			return newTreeStore(CategoryOrderedMap, Compare[T])
		}
		return newHashStore(CategoryHashMap, selfKey[T], sizeHint)
	default:
		return &Vector[T]{items: make([]T, 0, sizeHint)}
	}
}

// Rebind returns an empty container of the same category as c that holds
// elements of type U.
//
// A fixed-size source keeps its capacity (grown to sizeHint if larger) and a
// [List] rebinds to a List; everything else is built by [New].
func Rebind[T, U any](c Container[T], sizeHint int) Container[U] {
	switch src := c.(type) {
	case *List[T]:
		return NewList[U]()
	case Bounded:
		if c.Category() == CategoryFixedSize {
			return NewArray[U](max(src.Cap(), sizeHint))
		}
	}
	return New[U](c.Category(), sizeHint)
}

// Concat adds every element of src to dst following dst's insertion rule and
// returns dst.
func Concat[T any](dst Container[T], src Source[T]) Container[T] {
	for v := range src.All() {
		dst.Add(v)
	}
	return dst
}

// Slice collects the traversal of src into a new slice.
func Slice[T any](src Source[T]) []T {
	return slices.Collect(src.All())
}

// Clone returns an independent copy of c with the same concrete type.
func Clone[T any](c Container[T]) Container[T] {
	return Concat(c.Make(c.Len()), c)
}
