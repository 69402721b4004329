package hof

import "github.com/hasbyte1/go-sigutil/container"

// BinaryOp applies op element-wise to a and b. The result has the category
// of a and the length of the shorter input, as with [ZipWith].
func BinaryOp[T, U, R any](op func(T, U) R, a container.Source[T], b container.Source[U]) container.Container[R] {
	return ZipWith(op, a, b)
}

// BinaryOpScalar applies op to every element of c with s as the right
// operand.
func BinaryOpScalar[T, S, R any](op func(T, S) R, c container.Source[T], s S) container.Container[R] {
	return Map(func(x T) R { return op(x, s) }, c)
}

// ScalarBinaryOp applies op to every element of c with s as the left
// operand.
func ScalarBinaryOp[S, T, R any](op func(S, T) R, s S, c container.Source[T]) container.Container[R] {
	return Map(func(x T) R { return op(s, x) }, c)
}

// Plus adds a and b element-wise.
//
//	hof.Plus(container.NewVector(1, -3, 5), container.NewVector(1, 2, 3, 4)) // → [2 -1 8]
func Plus[T Number](a, b container.Source[T]) container.Container[T] { return BinaryOp(add[T], a, b) }

// Minus subtracts b from a element-wise.
func Minus[T Number](a, b container.Source[T]) container.Container[T] { return BinaryOp(sub[T], a, b) }

// Multiplies multiplies a and b element-wise.
func Multiplies[T Number](a, b container.Source[T]) container.Container[T] {
	return BinaryOp(mul[T], a, b)
}

// Divides divides a by b element-wise. Integer division by zero panics.
func Divides[T Number](a, b container.Source[T]) container.Container[T] { return BinaryOp(div[T], a, b) }

// PlusScalar adds s to every element of c.
//
//	hof.PlusScalar(container.NewList(1.0, -3.0, 5.0), 1) // → [2 -2 6]
func PlusScalar[T Number](c container.Source[T], s T) container.Container[T] {
	return BinaryOpScalar(add[T], c, s)
}

// MinusScalar subtracts s from every element of c.
func MinusScalar[T Number](c container.Source[T], s T) container.Container[T] {
	return BinaryOpScalar(sub[T], c, s)
}

// MultipliesScalar multiplies every element of c by s.
func MultipliesScalar[T Number](c container.Source[T], s T) container.Container[T] {
	return BinaryOpScalar(mul[T], c, s)
}

// DividesScalar divides every element of c by s.
func DividesScalar[T Number](c container.Source[T], s T) container.Container[T] {
	return BinaryOpScalar(div[T], c, s)
}

// ScalarMinus subtracts every element of c from s.
//
//	hof.ScalarMinus(1, container.NewVector(1, -3, 5)) // → [0 4 -4]
func ScalarMinus[T Number](s T, c container.Source[T]) container.Container[T] {
	return ScalarBinaryOp(sub[T], s, c)
}

// ScalarDivides divides s by every element of c.
func ScalarDivides[T Number](s T, c container.Source[T]) container.Container[T] {
	return ScalarBinaryOp(div[T], s, c)
}

func add[T Number](a, b T) T { return a + b }
func sub[T Number](a, b T) T { return a - b }
func mul[T Number](a, b T) T { return a * b }
func div[T Number](a, b T) T { return a / b }
