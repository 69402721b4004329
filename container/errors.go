package container

import "errors"

// Sentinel errors returned (or wrapped in panics) by container operations.
var (
	// ErrCapacityExceeded is returned by [Array.TryAdd] when the array is full.
	// [Array.Add] panics with an error wrapping it instead.
	ErrCapacityExceeded = errors.New("container: fixed-size capacity exceeded")

	// ErrNegativeCapacity is wrapped in the panic raised by [NewArray] for a
	// negative capacity.
	ErrNegativeCapacity = errors.New("container: capacity must not be negative")
)
