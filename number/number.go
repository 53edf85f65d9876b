// Package number defines the arithmetic contract shared by exact number kinds
// and the operator forms of that contract.
//
// Go has no operator overloading, so the operators are provided here as
// generic functions.
// Each of them calls the corresponding method of the contract and does
// nothing else, so every number kind behaves the same way under its
// operator and its method.
package number

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Number is the set of operations every number kind T implements.
// Implementations must be immutable: every method returns a new value
// (or a shared constant) and leaves its operands unchanged.
//
// Equal must agree with Cmp, and values that are Equal must have the
// same Hash.
type Number[T any] interface {
	// Neg returns the additive inverse.
	Neg() (T, error)
	// Add returns the sum.
	Add(T) (T, error)
	// Sub returns the difference.
	Sub(T) (T, error)
	// Mul returns the product.
	Mul(T) (T, error)
	// Quo returns the quotient.
	Quo(T) (T, error)
	// Cmp returns -1, 0 or +1.
	Cmp(T) int
	Equal(T) bool
	Hash() uint64
}

// Pos implements unary plus, which returns x itself.
func Pos[T Number[T]](x T) T {
	return x
}

// Neg implements unary minus.
func Neg[T Number[T]](x T) (T, error) {
	return x.Neg()
}

// Add implements x + y.
func Add[T Number[T]](x, y T) (T, error) {
	return x.Add(y)
}

// Sub implements x - y.
func Sub[T Number[T]](x, y T) (T, error) {
	return x.Sub(y)
}

// Mul implements x * y.
func Mul[T Number[T]](x, y T) (T, error) {
	return x.Mul(y)
}

// Quo implements x / y.
func Quo[T Number[T]](x, y T) (T, error) {
	return x.Quo(y)
}

// Less returns true if x < y.
func Less[T Number[T]](x, y T) bool {
	return x.Cmp(y) < 0
}

// LessOrEqual returns true if x <= y.
func LessOrEqual[T Number[T]](x, y T) bool {
	return x.Cmp(y) <= 0
}

// Greater returns true if x > y.
func Greater[T Number[T]](x, y T) bool {
	return x.Cmp(y) > 0
}

// GreaterOrEqual returns true if x >= y.
func GreaterOrEqual[T Number[T]](x, y T) bool {
	return x.Cmp(y) >= 0
}

// Min returns the minimum of x and y.
// If x and y are equal, Min returns x.
func Min[T Number[T]](x, y T) T {
	if LessOrEqual(x, y) {
		return x
	}
	return y
}

// Max returns the maximum of x and y.
// If x and y are equal, Max returns x.
func Max[T Number[T]](x, y T) T {
	if GreaterOrEqual(x, y) {
		return x
	}
	return y
}

// Sum returns init + xs[0] + xs[1] + ...
// It stops at the first error.
func Sum[T Number[T]](init T, xs ...T) (T, error) {
	return fold(init, xs, func(x, y T) (T, error) { return x.Add(y) })
}

// Prod returns init * xs[0] * xs[1] * ...
// It stops at the first error.
func Prod[T Number[T]](init T, xs ...T) (T, error) {
	return fold(init, xs, func(x, y T) (T, error) { return x.Mul(y) })
}

func fold[T Number[T]](acc T, xs []T, op func(T, T) (T, error)) (T, error) {
	var err error
	for i, x := range xs {
		acc, err = op(acc, x)
		if err != nil {
			var zero T
			return zero, fmt.Errorf("operand %v: %w", i, err)
		}
	}
	return acc, nil
}

// Sort sorts xs in ascending order.
// Equal elements keep their original order.
func Sort[T Number[T]](xs []T) {
	slices.SortStableFunc(xs, func(x, y T) int { return x.Cmp(y) })
}
