/*
Package rational implements immutable exact rational numbers
with 64-bit numerator and denominator.
It is intended for computations where the rounding of floating-point
numbers is not acceptable and where a fixed width is preferred over
unbounded precision.

# Representation

[Rational] is a struct with two fields:

  - Numerator: a signed 64-bit integer carrying the sign of the number.
  - Denominator: a positive 64-bit integer.

The numerical value of a rational is Numerator / Denominator.

Every rational is kept in canonical form:

 1. The denominator is positive.
 2. The numerator and the denominator have no common factor other than 1.
 3. Zero is always represented as 0/1.

Canonical form is established by the single internal constructor used
by [New] and by every arithmetic operation, so a non-canonical rational
cannot be observed.
As a consequence, two rationals are numerically equal if and only if
their numerators and denominators are equal, see [Rational.Equal] and
[Rational.Hash].

Rationals are handled through pointers.
The package variables [Zero] and [One] are shared instances, and every
operation whose result is 0 or 1 returns one of them rather than
allocating a new rational:

	r, _ := rational.Zero.Add(rational.Zero)
	fmt.Println(r == rational.Zero) // true

# Constraints

Both parts of a rational are limited to the range of int64.
The denominator is positive, so its range is from 1 to [math.MaxInt64].
A rational with numerator [math.MinInt64] is valid, but its negation,
absolute value and reciprocal are not representable.

# Operations

Arithmetic follows the textbook formulas:

	a/b + c/d = (a*d + c*b) / (b*d)
	a/b - c/d = a/b + (-c)/d
	a/b * c/d = (a*c) / (b*d)
	a/b / c/d = a/b * d/c

Every multiplication, addition and negation is checked for overflow
before its result is used.
The result is then reduced to canonical form.
Note that an operation fails if an intermediate value does not fit into
int64, even if the reduced result would.
Results are never promoted to a wider representation.

Comparison is the exception: [Rational.Cmp] uses int64 cross products
when they fit and falls back to [big.Int] arithmetic otherwise,
so comparison never fails.

The operator forms of these operations, which are shared by all number
kinds, are provided by package [github.com/govalues/rational/number].

# Errors

All arithmetic methods are pure and return errors instead of panicking.
Errors are returned in the following cases:

  - Zero Denominator.
    [New] returns [ErrZeroDenominator] if the denominator is 0.

  - Division by Zero.
    [Rational.Quo], [Rational.Inv] and [Rational.Pow] return
    [ErrDivisionByZero] when dividing by 0.

  - Overflow.
    There is no "wrap around" for rationals.
    Operations return [ErrOverflow] if any intermediate or final integer
    does not fit into int64.

Errors are wrapped with the operation and its operands, so they should
be examined with [errors.Is].
The Must variants, such as [MustNew] and [Rational.MustAdd], panic
instead of returning an error.

[big.Int]: https://pkg.go.dev/math/big#Int
*/
package rational
