// Package maybe provides Maybe, a present-or-absent value wrapper used to
// signal fallible results without raising errors.
//
// # Overview
//
// A Maybe is created at the point a fallible computation completes and is
// either consumed immediately or propagated to the caller:
//
//	m := distance.KLDivergence(p, q)
//	if m.IsJust() {
//	    fmt.Println(maybe.FromJust(m))
//	}
//	d := maybe.FromMaybe(math.Inf(1), m)
//
// There are no implicit defaults: the only ways to obtain the wrapped value are
// [FromJust] (which requires presence), [FromMaybe] (which requires an explicit
// fallback) and [Maybe.Get] (which reports presence alongside the value).
//
// # Backing
//
// Maybe is a thin wrapper around github.com/samber/mo's Option type. Use
// [Maybe.Option] to hand a value to code that already speaks mo, and [Of] to
// wrap one.
//
// # Precondition violations
//
// Extracting an absent value with [FromJust] is a precondition violation. It
// panics with an error wrapping [ErrNothing] instead of returning a zero value.
package maybe
