package container_test

import (
	"errors"
	"iter"
	"slices"
	"sort"
	"testing"

	"github.com/hasbyte1/go-sigutil/container"
	"github.com/hasbyte1/go-sigutil/maybe"
)

// ─────────────────────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────────────────────

func assertSlice[T comparable](t *testing.T, got, want []T) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("slice length: got %d want %d  (got=%v want=%v)", len(got), len(want), got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %v want %v", i, got[i], want[i])
		}
	}
}

func sorted[T int | string](s []T) []T {
	out := slices.Clone(s)
	slices.Sort(out)
	return out
}

// ring exposes only the minimal surface.
type ring struct{ buf []int }

func (r *ring) All() iter.Seq[int] { return slices.Values(r.buf) }
func (r *ring) Add(v int)          { r.buf = append(r.buf, v) }

// tagged declares its own category.
type tagged struct{ ring }

func (*tagged) Category() container.Category { return container.CategoryHashSet }

// selfMaking builds fresh instances of itself.
type selfMaking struct{ ring }

func (*selfMaking) Make(int) container.Source[int] { return &selfMaking{} }

// ─────────────────────────────────────────────────────────────────────────────
// Category
// ─────────────────────────────────────────────────────────────────────────────

func TestCategoryPredicates(t *testing.T) {
	cases := []struct {
		cat                             container.Category
		name                            string
		positional, sortedCat, keyed bool
	}{
		{container.CategorySequence, "Sequence", true, false, false},
		{container.CategoryFixedSize, "FixedSize", true, false, false},
		{container.CategoryStringLike, "StringLike", true, false, false},
		{container.CategoryOrderedSet, "OrderedSet", false, true, false},
		{container.CategoryHashSet, "HashSet", false, false, false},
		{container.CategoryOrderedMap, "OrderedMap", false, true, true},
		{container.CategoryHashMap, "HashMap", false, false, true},
	}
	for _, tc := range cases {
		if tc.cat.String() != tc.name {
			t.Errorf("String() = %q; want %q", tc.cat.String(), tc.name)
		}
		if tc.cat.Positional() != tc.positional {
			t.Errorf("%s.Positional() = %v; want %v", tc.name, tc.cat.Positional(), tc.positional)
		}
		if tc.cat.Unique() == tc.positional {
			t.Errorf("%s.Unique() = %v; want %v", tc.name, tc.cat.Unique(), !tc.positional)
		}
		if tc.cat.Sorted() != tc.sortedCat {
			t.Errorf("%s.Sorted() = %v; want %v", tc.name, tc.cat.Sorted(), tc.sortedCat)
		}
		if tc.cat.Keyed() != tc.keyed {
			t.Errorf("%s.Keyed() = %v; want %v", tc.name, tc.cat.Keyed(), tc.keyed)
		}
	}
	if got := container.Category(200).String(); got != "Category(?)" {
		t.Fatalf("unknown category String() = %q", got)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Classification
// ─────────────────────────────────────────────────────────────────────────────

func TestDescribeBuiltins(t *testing.T) {
	cases := []struct {
		src  container.Source[int]
		want container.Category
	}{
		{container.NewVector(1), container.CategorySequence},
		{container.NewList(1), container.CategorySequence},
		{container.NewArray(3, 1), container.CategoryFixedSize},
		{container.TextOf(1), container.CategoryStringLike},
		{container.NewOrderedSet(1), container.CategoryOrderedSet},
		{container.NewHashSet(1), container.CategoryHashSet},
	}
	for _, tc := range cases {
		if got := container.Categorize(tc.src); got != tc.want {
			t.Errorf("Categorize(%T) = %v; want %v", tc.src, got, tc.want)
		}
	}
	v := container.NewVector(1, 2)
	if container.Describe[int](v) != container.Container[int](v) {
		t.Fatal("Describe must return a Container unchanged")
	}
}

func TestDescribeMinimalSurface(t *testing.T) {
	r := &ring{buf: []int{3, 1, 2}}
	c := container.Describe[int](r)

	if c.Category() != container.CategorySequence {
		t.Fatalf("Category = %v; want Sequence", c.Category())
	}
	if c.Len() != 3 {
		t.Fatalf("Len = %d; want 3", c.Len())
	}
	fresh := c.Make(4)
	if _, ok := fresh.(*container.Vector[int]); !ok {
		t.Fatalf("Make = %T; want *Vector[int]", fresh)
	}
	c.Add(9)
	assertSlice(t, r.buf, []int{3, 1, 2, 9})

	u, ok := c.(interface{ Unwrap() container.Source[int] })
	if !ok || u.Unwrap() != container.Source[int](r) {
		t.Fatal("Unwrap did not return the original value")
	}
}

func TestDescribeDeclaredCategory(t *testing.T) {
	c := container.Describe[int](&tagged{})
	if c.Category() != container.CategoryHashSet {
		t.Fatalf("Category = %v; want HashSet", c.Category())
	}
	if _, ok := c.Make(0).(*container.HashSet[int]); !ok {
		t.Fatalf("Make = %T; want *HashSet[int]", c.Make(0))
	}
}

func TestDescribeUserMaker(t *testing.T) {
	c := container.Describe[int](&selfMaking{})
	fresh := c.Make(0)
	fresh.Add(1)
	u := fresh.(interface{ Unwrap() container.Source[int] })
	if _, ok := u.Unwrap().(*selfMaking); !ok {
		t.Fatalf("Make built %T; want *selfMaking", u.Unwrap())
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Construction
// ─────────────────────────────────────────────────────────────────────────────

func TestNewByCategory(t *testing.T) {
	for _, cat := range []container.Category{
		container.CategorySequence, container.CategoryFixedSize, container.CategoryStringLike,
		container.CategoryOrderedSet, container.CategoryHashSet,
		container.CategoryOrderedMap, container.CategoryHashMap,
	} {
		c := container.New[int](cat, 4)
		if c.Category() != cat {
			t.Errorf("New(%v).Category() = %v", cat, c.Category())
		}
		if c.Len() != 0 {
			t.Errorf("New(%v).Len() = %d; want 0", cat, c.Len())
		}
	}
	if a, ok := container.New[int](container.CategoryFixedSize, 5).(*container.Array[int]); !ok || a.Cap() != 5 {
		t.Fatal("New(FixedSize, 5) should be an Array of capacity 5")
	}
	if c := container.New[int](container.CategorySequence, -3); c.Len() != 0 {
		t.Fatal("negative size hint should be accepted")
	}
}

func TestNewMapOfEntries(t *testing.T) {
	hm := container.New[container.Entry[string, int]](container.CategoryHashMap, 2)
	if _, ok := hm.(*container.HashMap[string, int]); !ok {
		t.Fatalf("New(HashMap) = %T; want *HashMap[string,int]", hm)
	}
	om := container.New[container.Entry[string, int]](container.CategoryOrderedMap, 2)
	m, ok := om.(*container.OrderedMap[string, int])
	if !ok {
		t.Fatalf("New(OrderedMap) = %T; want *OrderedMap[string,int]", om)
	}
	m.Put("b", 2)
	m.Put("a", 1)
	assertSlice(t, m.Keys(), []string{"a", "b"})
}

func TestNewMapOfPlainValues(t *testing.T) {
	c := container.New[int](container.CategoryOrderedMap, 0)
	for _, v := range []int{3, 1, 3, 2} {
		c.Add(v)
	}
	assertSlice(t, container.Slice[int](c), []int{1, 2, 3})

	h := container.New[int](container.CategoryHashMap, 0)
	for _, v := range []int{3, 1, 3} {
		h.Add(v)
	}
	if h.Len() != 2 {
		t.Fatalf("Len = %d; want 2", h.Len())
	}
}

func TestRebind(t *testing.T) {
	a := container.NewArray(4, 1, 2)
	ra := container.Rebind[int, string](a, 2)
	if arr, ok := ra.(*container.Array[string]); !ok || arr.Cap() != 4 {
		t.Fatalf("Rebind(Array) = %T; want *Array[string] of capacity 4", ra)
	}
	if arr := container.Rebind[int, string](a, 10).(*container.Array[string]); arr.Cap() != 10 {
		t.Fatalf("Rebind(Array, 10).Cap() = %d; want 10", arr.Cap())
	}
	if _, ok := container.Rebind[int, string](container.NewList(1), 1).(*container.List[string]); !ok {
		t.Fatal("Rebind(List) should produce a List")
	}
	if _, ok := container.Rebind[int, string](container.NewVector(1), 1).(*container.Vector[string]); !ok {
		t.Fatal("Rebind(Vector) should produce a Vector")
	}

	os := container.Rebind[int, string](container.NewOrderedSet(1), 0)
	for _, s := range []string{"c", "a", "b", "a"} {
		os.Add(s)
	}
	assertSlice(t, container.Slice[string](os), []string{"a", "b", "c"})

	m := container.NewHashMap(container.E("a", 1))
	rm := container.Rebind[container.Entry[string, int], container.Entry[int, bool]](m, 0)
	if _, ok := rm.(*container.HashMap[int, bool]); !ok {
		t.Fatalf("Rebind(HashMap) = %T; want *HashMap[int,bool]", rm)
	}
}

func TestConcatAndClone(t *testing.T) {
	dst := container.NewOrderedSet(5, 1)
	container.Concat[int](dst, container.NewVector(3, 1, 9))
	assertSlice(t, container.Slice[int](dst), []int{1, 3, 5, 9})

	v := container.NewVector(1, 2, 3)
	c := container.Clone[int](v)
	c.Add(4)
	if v.Len() != 3 {
		t.Fatal("Clone aliased the source")
	}
	if _, ok := c.(*container.Vector[int]); !ok {
		t.Fatalf("Clone = %T; want *Vector[int]", c)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Vector / List
// ─────────────────────────────────────────────────────────────────────────────

func TestVector(t *testing.T) {
	src := []int{1, 2, 3}
	v := container.VectorFrom(src)
	src[0] = 99
	assertSlice(t, v.ToSlice(), []int{1, 2, 3})

	if got := v.Get(1); maybe.FromJust(got) != 2 {
		t.Fatalf("Get(1) = %v; want Just(2)", got)
	}
	if v.Get(3).IsJust() || v.Get(-1).IsJust() {
		t.Fatal("out-of-range Get should be Nothing")
	}
	if !v.Set(0, 7) || v.Set(5, 1) {
		t.Fatal("Set range check failed")
	}
	assertSlice(t, slices.Collect(v.Backward()), []int{3, 2, 7})

	for p := range v.Pointers() {
		*p *= 10
	}
	assertSlice(t, v.ToSlice(), []int{70, 20, 30})

	joined := v.Concat(container.NewVector(40))
	assertSlice(t, joined.ToSlice(), []int{70, 20, 30, 40})
	if v.Len() != 3 {
		t.Fatal("Concat modified the receiver")
	}

	assertSlice(t, v.Release(), []int{70, 20, 30})
	if !v.IsEmpty() {
		t.Fatal("Release should leave the vector empty")
	}
	if got := container.NewVector(1, 2).String(); got != "[1 2]" {
		t.Fatalf("String() = %q", got)
	}
}

func TestList(t *testing.T) {
	l := container.NewList(2, 3)
	l.PushFront(1)
	l.Add(4)
	assertSlice(t, container.Slice[int](l), []int{1, 2, 3, 4})
	assertSlice(t, slices.Collect(l.Backward()), []int{4, 3, 2, 1})
	if maybe.FromJust(l.Front()) != 1 || maybe.FromJust(l.Back()) != 4 {
		t.Fatal("Front/Back mismatch")
	}
	if l.String() != "[1 2 3 4]" {
		t.Fatalf("String() = %q", l.String())
	}

	for p := range l.Pointers() {
		*p++
	}
	assertSlice(t, l.Concat(container.NewList(9)).Release(), []int{2, 3, 4, 5, 9})

	assertSlice(t, l.Release(), []int{2, 3, 4, 5})
	if l.Len() != 0 || l.Front().IsJust() {
		t.Fatal("Release should leave the list empty")
	}
}

func TestEarlyBreak(t *testing.T) {
	for _, c := range []container.Container[int]{
		container.NewVector(1, 2, 3),
		container.NewList(1, 2, 3),
		container.NewOrderedSet(1, 2, 3),
	} {
		var seen []int
		for v := range c.All() {
			seen = append(seen, v)
			if v == 2 {
				break
			}
		}
		assertSlice(t, seen, []int{1, 2})
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Array
// ─────────────────────────────────────────────────────────────────────────────

func TestArrayCapacity(t *testing.T) {
	a := container.NewArray(3, 1, 2)
	if a.Cap() != 3 || a.Len() != 2 || a.IsFull() {
		t.Fatalf("Cap=%d Len=%d IsFull=%v", a.Cap(), a.Len(), a.IsFull())
	}
	if a.Get(2).IsJust() {
		t.Fatal("Get past the filled length should be Nothing")
	}
	if err := a.TryAdd(3); err != nil {
		t.Fatalf("TryAdd: %v", err)
	}
	if err := a.TryAdd(4); !errors.Is(err, container.ErrCapacityExceeded) {
		t.Fatalf("TryAdd on full array = %v; want ErrCapacityExceeded", err)
	}
	assertSlice(t, container.Slice[int](a), []int{1, 2, 3})
}

func TestArrayAddPanicsWhenFull(t *testing.T) {
	a := container.NewArray[int](1)
	a.Add(1)
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, container.ErrCapacityExceeded) {
			t.Fatalf("recovered %v; want ErrCapacityExceeded", r)
		}
	}()
	a.Add(2)
}

func TestNewArrayNegativeCapacityPanics(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, container.ErrNegativeCapacity) {
			t.Fatalf("recovered %v; want ErrNegativeCapacity", r)
		}
	}()
	container.NewArray[int](-1)
}

func TestArrayMakeReleaseConcat(t *testing.T) {
	a := container.NewArray(2, 1, 2)
	if m := a.Make(5).(*container.Array[int]); m.Cap() != 5 {
		t.Fatalf("Make(5).Cap() = %d; want 5", m.Cap())
	}
	if m := a.Make(1).(*container.Array[int]); m.Cap() != 2 {
		t.Fatalf("Make(1).Cap() = %d; want 2", m.Cap())
	}
	c := a.Concat(container.NewArray(3, 3))
	if c.Cap() != 5 {
		t.Fatalf("Concat Cap = %d; want 5", c.Cap())
	}
	assertSlice(t, container.Slice[int](c), []int{1, 2, 3})

	assertSlice(t, a.Release(), []int{1, 2})
	if a.Len() != 0 || a.Cap() != 2 {
		t.Fatal("Release should empty the array and keep its capacity")
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Text
// ─────────────────────────────────────────────────────────────────────────────

func TestText(t *testing.T) {
	s := container.NewText("héllo")
	if s.Len() != 5 {
		t.Fatalf("Len = %d; want 5", s.Len())
	}
	if s.Concat(container.NewText("!")).String() != "héllo!" {
		t.Fatal("Concat/String mismatch")
	}
	if got := container.TextOf[byte]('h', 'i').String(); got != "hi" {
		t.Fatalf("Text[byte].String() = %q", got)
	}
	if got := container.TextOf("ab", "cd").String(); got != "abcd" {
		t.Fatalf("Text[string].String() = %q", got)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Sets
// ─────────────────────────────────────────────────────────────────────────────

func TestOrderedSet(t *testing.T) {
	s := container.NewOrderedSet(5, 1, 3, 1, 5)
	assertSlice(t, container.Slice[int](s), []int{1, 3, 5})
	assertSlice(t, slices.Collect(s.Backward()), []int{5, 3, 1})
	if !s.Has(3) || s.Has(2) {
		t.Fatal("Has mismatch")
	}
	if maybe.FromJust(s.Min()) != 1 || maybe.FromJust(s.Max()) != 5 {
		t.Fatal("Min/Max mismatch")
	}
	if !s.Delete(3) || s.Delete(3) {
		t.Fatal("Delete should report presence once")
	}
	if s.String() != "{1 5}" {
		t.Fatalf("String() = %q", s.String())
	}

	u := s.Concat(container.NewOrderedSet(4, 5))
	assertSlice(t, container.Slice[int](u), []int{1, 4, 5})
	assertSlice(t, container.Slice[int](s), []int{1, 5})

	if container.NewOrderedSet[int]().Min().IsJust() {
		t.Fatal("Min of empty set should be Nothing")
	}
}

func TestOrderedSetFuncKeepsComparator(t *testing.T) {
	desc := func(a, b int) int { return b - a }
	s := container.NewOrderedSetFunc(desc, 1, 3, 2)
	assertSlice(t, container.Slice[int](s), []int{3, 2, 1})

	fresh := s.Make(0)
	fresh.Add(1)
	fresh.Add(2)
	assertSlice(t, container.Slice[int](fresh), []int{2, 1})
}

func TestHashSet(t *testing.T) {
	s := container.NewHashSet("b", "a", "b")
	if s.Len() != 2 {
		t.Fatalf("Len = %d; want 2", s.Len())
	}
	assertSlice(t, sorted(container.Slice[string](s)), []string{"a", "b"})
	if !s.Has("a") || s.Has("z") {
		t.Fatal("Has mismatch")
	}
	if !s.Delete("a") || s.Delete("a") {
		t.Fatal("Delete should report presence once")
	}
	u := s.Concat(container.NewHashSet("c", "b"))
	assertSlice(t, sorted(container.Slice[string](u)), []string{"b", "c"})
}

func TestHashSetNonComparable(t *testing.T) {
	s := container.NewHashSet([]int{1, 2}, []int{1, 2}, []int{2, 1})
	if s.Len() != 2 {
		t.Fatalf("Len = %d; want 2", s.Len())
	}
	if !s.Has([]int{2, 1}) || s.Has([]int{3}) {
		t.Fatal("Has mismatch for slice elements")
	}

	m := container.NewHashSet(map[string]int{"a": 1, "b": 2}, map[string]int{"b": 2, "a": 1})
	if m.Len() != 1 {
		t.Fatalf("equal maps should collapse; Len = %d", m.Len())
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Maps
// ─────────────────────────────────────────────────────────────────────────────

func TestHashMap(t *testing.T) {
	m := container.NewHashMap(container.E("a", 1), container.E("b", 2), container.E("a", 3))
	if m.Len() != 2 {
		t.Fatalf("Len = %d; want 2", m.Len())
	}
	if got := m.Get("a"); maybe.FromJust(got) != 3 {
		t.Fatalf("Get(a) = %v; want Just(3) (last insert wins)", got)
	}
	if m.Get("z").IsJust() {
		t.Fatal("Get of missing key should be Nothing")
	}
	m.Put("c", 4)
	keys := m.Keys()
	sort.Strings(keys)
	assertSlice(t, keys, []string{"a", "b", "c"})
	if !m.Has("c") || !m.Delete("c") || m.Has("c") {
		t.Fatal("Has/Delete mismatch")
	}

	merged := m.Concat(container.HashMapFrom(map[string]int{"b": 20}))
	if maybe.FromJust(merged.Get("b")) != 20 || maybe.FromJust(m.Get("b")) != 2 {
		t.Fatal("Concat should overwrite in a fresh map only")
	}
}

func TestOrderedMap(t *testing.T) {
	m := container.NewOrderedMap(container.E(3, "c"), container.E(1, "a"), container.E(2, "b"))
	assertSlice(t, m.Keys(), []int{1, 2, 3})
	m.Put(2, "B")
	if got := maybe.FromJust(m.Get(2)); got != "B" {
		t.Fatalf("Get(2) = %q; want B", got)
	}
	if m.Len() != 3 {
		t.Fatalf("Len = %d; want 3", m.Len())
	}
	if maybe.FromJust(m.Min()).Key != 1 || maybe.FromJust(m.Max()).Key != 3 {
		t.Fatal("Min/Max mismatch")
	}
	if !m.Delete(1) || m.Has(1) {
		t.Fatal("Delete mismatch")
	}
	if m.String() != "{(2, B) (3, c)}" {
		t.Fatalf("String() = %q", m.String())
	}

	merged := m.Concat(container.NewOrderedMap(container.E(0, "z"), container.E(3, "C")))
	assertSlice(t, merged.Keys(), []int{0, 2, 3})
	if maybe.FromJust(merged.Get(3)) != "C" || maybe.FromJust(m.Get(3)) != "c" {
		t.Fatal("Concat should overwrite in a fresh map only")
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Compare
// ─────────────────────────────────────────────────────────────────────────────

func TestCompare(t *testing.T) {
	type point struct{ X, Y int }
	cases := []struct {
		name string
		got  int
		want int
	}{
		{"int", container.Compare(1, 2), -1},
		{"string", container.Compare("b", "a"), 1},
		{"bool", container.Compare(false, true), -1},
		{"float", container.Compare(1.5, 1.5), 0},
		{"slice prefix", container.Compare([]int{1, 2}, []int{1, 2, 0}), -1},
		{"slice elem", container.Compare([]int{1, 3}, []int{1, 2, 9}), 1},
		{"struct", container.Compare(point{1, 2}, point{1, 1}), 1},
		{"any mixed", container.Compare[any](1, "a"), -1},
		{"any nil", container.Compare[any](nil, 0), -1},
	}
	for _, tc := range cases {
		if tc.got != tc.want {
			t.Errorf("%s: Compare = %d; want %d", tc.name, tc.got, tc.want)
		}
	}
}
