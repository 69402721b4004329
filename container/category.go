package container

// Category is the structural classification of a collection type by its
// insertion and ordering semantics.
type Category uint8

const (
	// CategorySequence is a growable collection that preserves call order.
	// It is the default for types that declare no category.
	CategorySequence Category = iota
	// CategoryFixedSize is a bounded buffer that preserves call order.
	CategoryFixedSize
	// CategoryStringLike is a character sequence.
	CategoryStringLike
	// CategoryOrderedSet keeps unique elements in comparator order.
	CategoryOrderedSet
	// CategoryHashSet keeps unique elements in no particular order.
	CategoryHashSet
	// CategoryOrderedMap keeps key/value entries in key order.
	CategoryOrderedMap
	// CategoryHashMap keeps key/value entries in no particular order.
	CategoryHashMap
)

var categoryNames = [...]string{
	CategorySequence:   "Sequence",
	CategoryFixedSize:  "FixedSize",
	CategoryStringLike: "StringLike",
	CategoryOrderedSet: "OrderedSet",
	CategoryHashSet:    "HashSet",
	CategoryOrderedMap: "OrderedMap",
	CategoryHashMap:    "HashMap",
}

// String implements [fmt.Stringer].
func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return "Category(?)"
}

// Positional reports whether the category preserves the order elements were
// added in (Sequence, FixedSize, StringLike).
func (c Category) Positional() bool {
	return c == CategorySequence || c == CategoryFixedSize || c == CategoryStringLike
}

// Unique reports whether adding an element equal (or equal-keyed) to an
// existing one collapses the two.
func (c Category) Unique() bool { return !c.Positional() }

// Sorted reports whether traversal follows a comparator.
func (c Category) Sorted() bool {
	return c == CategoryOrderedSet || c == CategoryOrderedMap
}

// Keyed reports whether elements are key/value entries.
func (c Category) Keyed() bool {
	return c == CategoryOrderedMap || c == CategoryHashMap
}
