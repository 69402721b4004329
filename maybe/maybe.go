package maybe

import (
	"errors"
	"fmt"

	"github.com/samber/mo"
)

// ErrNothing is the panic value (wrapped) raised by [FromJust] when the Maybe
// holds no value.
var ErrNothing = errors.New("maybe: fromJust called on Nothing")

// Maybe holds either a present value of type T (Just) or nothing.
//
// The zero value is Nothing.
type Maybe[T any] struct {
	opt mo.Option[T]
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// Just wraps a present value.
func Just[T any](value T) Maybe[T] {
	return Maybe[T]{opt: mo.Some(value)}
}

// Nothing returns an absent value.
func Nothing[T any]() Maybe[T] {
	return Maybe[T]{opt: mo.None[T]()}
}

// FromPair converts the comma-ok idiom into a Maybe.
//
//	v, ok := m["key"]
//	mv := maybe.FromPair(v, ok)
func FromPair[T any](value T, ok bool) Maybe[T] {
	if !ok {
		return Nothing[T]()
	}
	return Just(value)
}

// Of wraps an existing mo.Option.
func Of[T any](opt mo.Option[T]) Maybe[T] {
	return Maybe[T]{opt: opt}
}

// ─────────────────────────────────────────────────────────────────────────────
// Queries
// ─────────────────────────────────────────────────────────────────────────────

// IsJust reports whether m holds a value.
func (m Maybe[T]) IsJust() bool { return m.opt.IsPresent() }

// IsNothing reports whether m is absent.
func (m Maybe[T]) IsNothing() bool { return !m.opt.IsPresent() }

// Get returns the value together with a presence flag.
func (m Maybe[T]) Get() (T, bool) { return m.opt.Get() }

// Option returns the underlying mo.Option.
func (m Maybe[T]) Option() mo.Option[T] { return m.opt }

// String implements [fmt.Stringer]: "Just(v)" or "Nothing".
func (m Maybe[T]) String() string {
	if v, ok := m.opt.Get(); ok {
		return fmt.Sprintf("Just(%v)", v)
	}
	return "Nothing"
}

// IsJust is the package-level form of [Maybe.IsJust].
func IsJust[T any](m Maybe[T]) bool { return m.IsJust() }

// IsNothing is the package-level form of [Maybe.IsNothing].
func IsNothing[T any](m Maybe[T]) bool { return m.IsNothing() }

// ─────────────────────────────────────────────────────────────────────────────
// Extraction
// ─────────────────────────────────────────────────────────────────────────────

// FromJust returns the wrapped value.
//
// The caller must check [Maybe.IsJust] first; calling FromJust on Nothing
// panics with an error wrapping [ErrNothing].
func FromJust[T any](m Maybe[T]) T {
	v, ok := m.opt.Get()
	if !ok {
		panic(fmt.Errorf("%w (element type %T)", ErrNothing, v))
	}
	return v
}

// FromMaybe returns the wrapped value, or def when m is Nothing.
func FromMaybe[T any](def T, m Maybe[T]) T {
	return m.opt.OrElse(def)
}

// ─────────────────────────────────────────────────────────────────────────────
// Combinators
// ─────────────────────────────────────────────────────────────────────────────

// Fmap applies f to the wrapped value, propagating Nothing.
func Fmap[T, U any](m Maybe[T], f func(T) U) Maybe[U] {
	if v, ok := m.opt.Get(); ok {
		return Just(f(v))
	}
	return Nothing[U]()
}

// Bind chains a fallible computation onto m, propagating Nothing.
func Bind[T, U any](m Maybe[T], f func(T) Maybe[U]) Maybe[U] {
	if v, ok := m.opt.Get(); ok {
		return f(v)
	}
	return Nothing[U]()
}
