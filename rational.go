package rational

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash/maphash"
	"math/big"
	"strconv"

	"github.com/govalues/rational/number"
)

// Rational type is a representation of an exact rational number
// with 64-bit numerator and denominator.
// Values are immutable and are handled through pointers, so they are
// safe for concurrent use by multiple goroutines.
//
// A rational is always kept in canonical form:
//
//   - Numerator: a signed integer that carries the sign of the rational.
//   - Denominator: a positive integer that shares no common factor with
//     the numerator.
//
// Zero has the single representation 0/1.
// Canonical form makes two rationals equal if and only if their numerators
// and denominators are equal.
//
// Internally, the denominator is stored minus one, so the zero value
// Rational{} is a valid 0/1.
type Rational struct {
	num fint // the numerator, carries the sign
	den fint // the denominator minus one
}

var _ number.Number[*Rational] = (*Rational)(nil)

var (
	// Zero is the shared instance of 0/1.
	Zero = &Rational{}
	// One is the shared instance of 1/1.
	One = &Rational{num: 1}
)

var (
	ErrZeroDenominator = errors.New("zero denominator")
	ErrDivisionByZero  = errors.New("division by zero")
	ErrOverflow        = errors.New("integer overflow")
)

// newRational is the only place where rationals are created.
// It returns Zero or One instead of allocating when the value allows it.
func newRational(num, den fint) (*Rational, error) {
	var ok bool
	if den == 0 {
		return nil, ErrZeroDenominator
	}
	if den < 0 {
		num, ok = num.neg()
		if !ok {
			return nil, ErrOverflow
		}
		den, ok = den.neg()
		if !ok {
			return nil, ErrOverflow
		}
	}
	if num == 0 {
		return Zero, nil
	}
	// g <= den, so it fits into fint.
	g := fint(gcd(num.mag(), uint64(den)))
	num /= g
	den /= g
	if num == 1 && den == 1 {
		return One, nil
	}
	return &Rational{num: num, den: den - 1}, nil
}

// New returns a rational equal to num / den in lowest terms
// with the sign carried by the numerator.
//
// New returns an error if:
//   - den is 0;
//   - den is negative and either num or den is [math.MinInt64],
//     since the sign cannot be moved to the numerator.
func New(num, den int64) (*Rational, error) {
	r, err := newRational(fint(num), fint(den))
	if err != nil {
		return nil, fmt.Errorf("constructing %v/%v: %w", num, den, err)
	}
	return r, nil
}

// MustNew is like [New] but panics if the rational cannot be constructed.
// It simplifies safe initialization of global variables holding rationals.
func MustNew(num, den int64) *Rational {
	r, err := New(num, den)
	if err != nil {
		panic(fmt.Sprintf("MustNew(%v, %v) failed: %v", num, den, err))
	}
	return r
}

// NewFromInt64 returns a rational equal to n / 1.
func NewFromInt64(n int64) *Rational {
	r, err := newRational(fint(n), 1)
	if err != nil {
		panic(fmt.Sprintf("NewFromInt64(%v) failed: %v", n, err))
	}
	return r
}

// NewFromBigRat converts x to a rational.
// NewFromBigRat returns an error if the numerator or the denominator of x
// cannot be represented as int64.
func NewFromBigRat(x *big.Rat) (*Rational, error) {
	num, den := x.Num(), x.Denom()
	if !num.IsInt64() || !den.IsInt64() {
		return nil, fmt.Errorf("converting %v: %w", x.RatString(), ErrOverflow)
	}
	return newRational(fint(num.Int64()), fint(den.Int64()))
}

// BigRat returns a new [big.Rat] equal to r.
func (r *Rational) BigRat() *big.Rat {
	return new(big.Rat).SetFrac64(int64(r.num), int64(r.denom()))
}

// Float64 returns the float64 nearest to r.
// If the conversion is exact, exact is true.
func (r *Rational) Float64() (f float64, exact bool) {
	return r.BigRat().Float64()
}

// String implements the [fmt.Stringer] interface and returns
// the rational as "num/den".
// The denominator is always printed, even when it is 1.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (r *Rational) String() string {
	buf := make([]byte, 0, 41)
	buf = strconv.AppendInt(buf, int64(r.num), 10)
	buf = append(buf, '/')
	buf = strconv.AppendInt(buf, int64(r.denom()), 10)
	return string(buf)
}

// Num returns the numerator of r.
// The sign of r is carried by the numerator.
func (r *Rational) Num() int64 {
	return int64(r.num)
}

// Den returns the denominator of r, which is always positive.
func (r *Rational) Den() int64 {
	return int64(r.denom())
}

func (r *Rational) denom() fint {
	return r.den + 1
}

// Sign returns:
//
//	-1 if r < 0
//	 0 if r == 0
//	+1 if r > 0
func (r *Rational) Sign() int {
	return r.num.sign()
}

// IsZero returns true if r == 0.
func (r *Rational) IsZero() bool {
	return r.num == 0
}

// IsOne returns true if r == 1.
func (r *Rational) IsOne() bool {
	return r.num == 1 && r.den == 0
}

// IsInt returns true if the denominator of r is 1.
func (r *Rational) IsInt() bool {
	return r.den == 0
}

// IsPos returns true if r > 0.
func (r *Rational) IsPos() bool {
	return r.num > 0
}

// IsNeg returns true if r < 0.
func (r *Rational) IsNeg() bool {
	return r.num < 0
}

// IsInvertible returns true if r has a reciprocal, that is, if r != 0.
func (r *Rational) IsInvertible() bool {
	return r.num != 0
}

// IsUnitFraction returns true if the numerator of r is 1.
func (r *Rational) IsUnitFraction() bool {
	return r.num == 1
}

// IsDyadic returns true if the denominator of r is a power of two.
func (r *Rational) IsDyadic() bool {
	d := r.denom()
	return d&(d-1) == 0
}

// IsProper returns true if |r| < 1.
func (r *Rational) IsProper() bool {
	return r.num.mag() < uint64(r.denom())
}

// Neg returns r with opposite sign.
//
// Neg returns an overflow error if the numerator of r is [math.MinInt64].
func (r *Rational) Neg() (*Rational, error) {
	f, err := neg(r)
	if err != nil {
		return nil, fmt.Errorf("computing [-%v]: %w", r, err)
	}
	return f, nil
}

func neg(r *Rational) (*Rational, error) {
	num, ok := r.num.neg()
	if !ok {
		return nil, ErrOverflow
	}
	return newRational(num, r.denom())
}

// Abs returns the absolute value of r.
//
// Abs returns an overflow error if the numerator of r is [math.MinInt64].
func (r *Rational) Abs() (*Rational, error) {
	if !r.IsNeg() {
		return r, nil
	}
	f, err := neg(r)
	if err != nil {
		return nil, fmt.Errorf("computing [abs(%v)]: %w", r, err)
	}
	return f, nil
}

// Add returns the sum of r and e.
//
// Add returns an overflow error if any of the products or the sum
// needed to compute a/b + c/d = (a*d + c*b) / (b*d) cannot be
// represented as int64, even when the reduced result could.
func (r *Rational) Add(e *Rational) (*Rational, error) {
	f, err := add(r, e)
	if err != nil {
		return nil, fmt.Errorf("computing [%v + %v]: %w", r, e, err)
	}
	return f, nil
}

func add(r, e *Rational) (*Rational, error) {

	var (
		a, b, c, d fint
		ad, cb     fint
		num, den   fint
		ok         bool
	)

	a, b = r.num, r.denom()
	c, d = e.num, e.denom()

	// Numerator
	ad, ok = a.mul(d)
	if !ok {
		return nil, ErrOverflow
	}
	cb, ok = c.mul(b)
	if !ok {
		return nil, ErrOverflow
	}
	num, ok = ad.add(cb)
	if !ok {
		return nil, ErrOverflow
	}

	// Denominator
	den, ok = b.mul(d)
	if !ok {
		return nil, ErrOverflow
	}

	return newRational(num, den)
}

// Sub returns the difference of r and e.
// The following are equivalent in outcome:
//
//	r.Sub(e) == r.Add(e.Neg())
//
// In particular, Sub returns an overflow error whenever e.Neg does.
func (r *Rational) Sub(e *Rational) (*Rational, error) {
	f, err := sub(r, e)
	if err != nil {
		return nil, fmt.Errorf("computing [%v - %v]: %w", r, e, err)
	}
	return f, nil
}

func sub(r, e *Rational) (*Rational, error) {
	f, err := neg(e)
	if err != nil {
		return nil, err
	}
	return add(r, f)
}

// Mul returns the product of r and e.
//
// Mul returns an overflow error if the product of the numerators or
// the product of the denominators cannot be represented as int64.
func (r *Rational) Mul(e *Rational) (*Rational, error) {
	f, err := mul(r, e)
	if err != nil {
		return nil, fmt.Errorf("computing [%v * %v]: %w", r, e, err)
	}
	return f, nil
}

func mul(r, e *Rational) (*Rational, error) {
	num, ok := r.num.mul(e.num)
	if !ok {
		return nil, ErrOverflow
	}
	den, ok := r.denom().mul(e.denom())
	if !ok {
		return nil, ErrOverflow
	}
	return newRational(num, den)
}

// Quo returns the quotient of r and e.
// The following are equivalent in outcome:
//
//	r.Quo(e) == r.Mul(e.Inv())
//
// Quo returns an error if:
//   - e is 0;
//   - the product cannot be represented, see [Rational.Mul].
func (r *Rational) Quo(e *Rational) (*Rational, error) {
	f, err := quo(r, e)
	if err != nil {
		return nil, fmt.Errorf("computing [%v / %v]: %w", r, e, err)
	}
	return f, nil
}

func quo(r, e *Rational) (*Rational, error) {
	f, err := inv(e)
	if err != nil {
		return nil, err
	}
	return mul(r, f)
}

// Inv returns the reciprocal of r.
//
// Inv returns an error if:
//   - r is 0;
//   - r is negative and its numerator is [math.MinInt64].
func (r *Rational) Inv() (*Rational, error) {
	f, err := inv(r)
	if err != nil {
		return nil, fmt.Errorf("computing [1 / %v]: %w", r, err)
	}
	return f, nil
}

func inv(r *Rational) (*Rational, error) {
	if r.IsZero() {
		return nil, ErrDivisionByZero
	}
	return newRational(r.denom(), r.num)
}

// Pow returns r raised to the power of exp.
// Zero raised to the power of zero is one.
//
// Pow returns an error if:
//   - r is 0 and exp is negative;
//   - the numerator or the denominator of the power cannot be
//     represented as int64.
func (r *Rational) Pow(exp int) (*Rational, error) {
	f, err := pow(r, exp)
	if err != nil {
		return nil, fmt.Errorf("computing [%v^%v]: %w", r, exp, err)
	}
	return f, nil
}

func pow(r *Rational, exp int) (*Rational, error) {
	var err error

	n := uint(exp)
	if exp < 0 {
		r, err = inv(r)
		if err != nil {
			return nil, err
		}
		n = uint(-(exp + 1)) + 1
	}

	// Exponentiation by squaring.
	// The base is squared only while higher bits remain, so every
	// intermediate value divides the final power.
	f := One
	for n > 0 {
		if n&1 == 1 {
			f, err = mul(f, r)
			if err != nil {
				return nil, err
			}
		}
		n >>= 1
		if n > 0 {
			r, err = mul(r, r)
			if err != nil {
				return nil, err
			}
		}
	}
	return f, nil
}

// Inc returns r + 1.
func (r *Rational) Inc() (*Rational, error) {
	f, err := add(r, One)
	if err != nil {
		return nil, fmt.Errorf("computing [%v + 1]: %w", r, err)
	}
	return f, nil
}

// Dec returns r - 1.
func (r *Rational) Dec() (*Rational, error) {
	f, err := sub(r, One)
	if err != nil {
		return nil, fmt.Errorf("computing [%v - 1]: %w", r, err)
	}
	return f, nil
}

// Cmp compares r and e numerically and returns:
//
//	-1 if r < e
//	 0 if r == e
//	+1 if r > e
//
// Cmp is exact for all rationals, including those whose
// cross products do not fit into int64.
func (r *Rational) Cmp(e *Rational) int {

	// Special case: different signs
	switch {
	case e.Sign() < r.Sign():
		return 1
	case r.Sign() < e.Sign():
		return -1
	}

	// General case
	c, err := cmpFast(r, e)
	if err != nil {
		c = cmpSlow(r, e)
	}
	return c
}

func cmpFast(r, e *Rational) (int, error) {

	var (
		ad, cb fint
		ok     bool
	)

	ad, ok = r.num.mul(e.denom())
	if !ok {
		return 0, ErrOverflow
	}
	cb, ok = e.num.mul(r.denom())
	if !ok {
		return 0, ErrOverflow
	}

	switch {
	case ad < cb:
		return -1, nil
	case cb < ad:
		return 1, nil
	default:
		return 0, nil
	}
}

func cmpSlow(r, e *Rational) int {

	var (
		ad *bint
		cb *bint
		x  *bint
	)

	ad = getBint()
	defer putBint(ad)
	cb = getBint()
	defer putBint(cb)
	x = getBint()
	defer putBint(x)

	ad.setFint(r.num)
	x.setFint(e.denom())
	ad.mul(ad, x)

	cb.setFint(e.num)
	x.setFint(r.denom())
	cb.mul(cb, x)

	return ad.cmp(cb)
}

// Equal returns true if r and e represent the same number.
// Also see method [Rational.Cmp].
func (r *Rational) Equal(e *Rational) bool {
	return r == e || (r.num == e.num && r.den == e.den)
}

// seed is shared by all hashes computed in this process.
var seed = maphash.MakeSeed()

// Hash returns a hash of r that is consistent with [Rational.Equal]
// within a single process.
func (r *Rational) Hash() uint64 {
	var b [16]byte
	binary.LittleEndian.PutUint64(b[:8], uint64(r.num))
	binary.LittleEndian.PutUint64(b[8:], uint64(r.den))
	return maphash.Bytes(seed, b[:])
}

// Min returns the minimum of r and e.
// If r and e are equal, Min returns r.
func (r *Rational) Min(e *Rational) *Rational {
	return number.Min(r, e)
}

// Max returns the maximum of r and e.
// If r and e are equal, Max returns r.
func (r *Rational) Max(e *Rational) *Rational {
	return number.Max(r, e)
}
