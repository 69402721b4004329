// Package access makes the borrow / mutate / consume contract of the
// higher-order engine explicit.
//
// Every engine operation reads its inputs through a [View]. By default a
// view borrows: the input container is traversed and left untouched. Wrapping
// an argument with [Consume] hands it over; containers that implement
// [container.Releaser] then give up their storage instead of being copied.
// A consumed container must not be read again; its contents afterwards are
// unspecified:
//
//	v := container.NewVector(3, 1, 2)
//	sorted := hof.Sort(cmp.Compare[int], access.Consume[int](v)) // reuses v's storage
//
// [Mutate] opens a view with element pointers for in-place updates. Set and
// map categories never offer it: their elements are keys.
//
// A view is single-use. Once any of its traversals has started, every later
// traversal yields nothing.
package access
