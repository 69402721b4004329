// Package container classifies collection types into categories and exposes
// the capability operations the higher-order engine (package hof) is built on.
//
// # Categories
//
// Every collection belongs to exactly one [Category]:
//
//	CategoryFixedSize   – bounded buffer              ([Array])
//	CategorySequence    – growable, call-ordered      ([Vector], [List])
//	CategoryStringLike  – character sequence          ([Text])
//	CategoryOrderedSet  – sorted, duplicate-free      ([OrderedSet])
//	CategoryHashSet     – unordered, duplicate-free   ([HashSet])
//	CategoryOrderedMap  – sorted by key               ([OrderedMap])
//	CategoryHashMap     – unordered, keyed            ([HashMap])
//
// # Minimal surface
//
// A type takes part in the engine by implementing [Source]: a traversal
// (All, which also fixes the element type) and an insertion (Add). Types that
// do not provide it are rejected by the compiler. [Describe] classifies any
// Source into a full [Container], synthesizing whatever capability the type
// does not provide itself:
//
//	type ring struct{ buf []int }
//
//	func (r *ring) All() iter.Seq[int] { return slices.Values(r.buf) }
//	func (r *ring) Add(v int)          { r.buf = append(r.buf, v) }
//
//	c := container.Describe[int](&ring{})   // CategorySequence by default
//
// A type can move itself into another category by adding a
// Category() method, and control how fresh instances are built with
// Make(int) Source[T]. No built-in type is privileged: the concrete containers
// in this package are ordinary implementations of the same surface.
//
// # Rebinding
//
// [Rebind] produces an empty container of the same category holding a new
// element type. Ordered categories fall back to the natural order
// [Compare]; map categories produce typed [HashMap]/[OrderedMap] values when
// the new element type is an [Entry].
//
// # Hash keys
//
// Hash categories accept any element type. Comparable values are used as map
// keys directly; values that Go cannot compare (slices, maps, structs holding
// them) are keyed by a BLAKE2b-256 digest of their printed form.
package container
