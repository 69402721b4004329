package container

import (
	"cmp"
	"fmt"
	"iter"
	"strings"

	"github.com/google/btree"

	"github.com/hasbyte1/go-sigutil/maybe"
)

// treeDegree is the B-tree node degree used by the ordered categories.
const treeDegree = 16

// treeStore is the sorted, duplicate-collapsing storage shared by the ordered
// categories. Two elements are duplicates when compare reports 0.
type treeStore[E any] struct {
	cat     Category
	compare func(a, b E) int
	tree    *btree.BTreeG[E]
}

func newTreeStore[E any](cat Category, compare func(a, b E) int) *treeStore[E] {
	return &treeStore[E]{
		cat:     cat,
		compare: compare,
		tree:    btree.NewG(treeDegree, func(a, b E) bool { return compare(a, b) < 0 }),
	}
}

func (s *treeStore[E]) Category() Category { return s.cat }

func (s *treeStore[E]) Len() int { return s.tree.Len() }

func (s *treeStore[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		s.tree.Ascend(func(e E) bool { return yield(e) })
	}
}

func (s *treeStore[E]) Backward() iter.Seq[E] {
	return func(yield func(E) bool) {
		s.tree.Descend(func(e E) bool { return yield(e) })
	}
}

// Add inserts e; an element comparing equal is replaced.
func (s *treeStore[E]) Add(e E) { s.tree.ReplaceOrInsert(e) }

func (s *treeStore[E]) Make(int) Container[E] { return newTreeStore(s.cat, s.compare) }

func (s *treeStore[E]) min() maybe.Maybe[E] { return maybe.FromPair(s.tree.Min()) }

func (s *treeStore[E]) max() maybe.Maybe[E] { return maybe.FromPair(s.tree.Max()) }

func (s *treeStore[E]) clone() *treeStore[E] {
	return &treeStore[E]{cat: s.cat, compare: s.compare, tree: s.tree.Clone()}
}

func (s *treeStore[E]) String() string {
	parts := make([]string, 0, s.tree.Len())
	s.tree.Ascend(func(e E) bool {
		parts = append(parts, fmt.Sprint(e))
		return true
	})
	return "{" + strings.Join(parts, " ") + "}"
}

// ─────────────────────────────────────────────────────────────────────────────
// OrderedSet
// ─────────────────────────────────────────────────────────────────────────────

// OrderedSet is a [CategoryOrderedSet] container: unique elements traversed
// in comparator order.
type OrderedSet[T any] struct {
	*treeStore[T]
}

// NewOrderedSet creates an OrderedSet of an ordered type sorted ascending.
func NewOrderedSet[T cmp.Ordered](items ...T) *OrderedSet[T] {
	return NewOrderedSetFunc(cmp.Compare[T], items...)
}

// NewOrderedSetFunc creates an OrderedSet sorted by compare, which must
// return a negative number, zero or a positive number like [cmp.Compare].
func NewOrderedSetFunc[T any](compare func(a, b T) int, items ...T) *OrderedSet[T] {
	s := &OrderedSet[T]{treeStore: newTreeStore(CategoryOrderedSet, compare)}
	for _, item := range items {
		s.Add(item)
	}
	return s
}

// Make returns an empty OrderedSet with the same comparator.
func (s *OrderedSet[T]) Make(int) Container[T] {
	return &OrderedSet[T]{treeStore: newTreeStore(CategoryOrderedSet, s.compare)}
}

// Has reports whether an element comparing equal to item is present.
func (s *OrderedSet[T]) Has(item T) bool { return s.tree.Has(item) }

// Delete removes item and reports whether it was present.
func (s *OrderedSet[T]) Delete(item T) bool {
	_, ok := s.tree.Delete(item)
	return ok
}

// Min returns the smallest element, or Nothing when the set is empty.
func (s *OrderedSet[T]) Min() maybe.Maybe[T] { return s.min() }

// Max returns the largest element, or Nothing when the set is empty.
func (s *OrderedSet[T]) Max() maybe.Maybe[T] { return s.max() }

// Concat returns a new OrderedSet holding the union of s and other, ordered
// by s's comparator.
func (s *OrderedSet[T]) Concat(other *OrderedSet[T]) *OrderedSet[T] {
	out := &OrderedSet[T]{treeStore: s.clone()}
	for v := range other.All() {
		out.Add(v)
	}
	return out
}
