package rational

import (
	"math"
	"math/big"
	"sync"

	"golang.org/x/exp/constraints"
)

// fint (Fixed INTeger) is a wrapper around int64.
type fint int64

// minFint is a minimum value of fint, which has no positive counterpart.
const minFint = math.MinInt64

// add calculates x + y and checks overflow.
func (x fint) add(y fint) (z fint, ok bool) {
	z = x + y
	if (z > x) != (y > 0) {
		return 0, false
	}
	return z, true
}

// mul calculates x * y and checks overflow.
func (x fint) mul(y fint) (z fint, ok bool) {
	if x == 0 || y == 0 {
		return 0, true
	}
	// minFint / -1 is minFint again in Go, so z / y != x cannot catch it.
	if (x == -1 && y == minFint) || (y == -1 && x == minFint) {
		return 0, false
	}
	z = x * y
	if z/y != x {
		return 0, false
	}
	return z, true
}

// neg calculates -x and checks overflow.
func (x fint) neg() (z fint, ok bool) {
	if x == minFint {
		return 0, false
	}
	return -x, true
}

// mag returns |x| as uint64, which is exact even for minFint.
func (x fint) mag() uint64 {
	if x < 0 {
		return uint64(-(x + 1)) + 1
	}
	return uint64(x)
}

func (x fint) sign() int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}

// gcd calculates the greatest common divisor of x and y.
// Both arguments must be non-negative; gcd(0, 0) is 0.
func gcd[T constraints.Integer](x, y T) T {
	for y != 0 {
		x, y = y, x%y
	}
	return x
}

// bint (Big INTeger) is a wrapper around big.Int.
type bint big.Int

func (z *bint) cmp(x *bint) int {
	return (*big.Int)(z).Cmp((*big.Int)(x))
}

func (z *bint) setBint(x *bint) {
	(*big.Int)(z).Set((*big.Int)(x))
}

func (z *bint) setFint(x fint) {
	(*big.Int)(z).SetInt64(int64(x))
}

// mul calculates z = x * y.
func (z *bint) mul(x, y *bint) {
	// Copying x, y to prevent heap allocations.
	if z == x {
		b := getBint()
		defer putBint(b)
		b.setBint(x)
		x = b
	}
	if z == y {
		b := getBint()
		defer putBint(b)
		b.setBint(y)
		y = b
	}
	(*big.Int)(z).Mul((*big.Int)(x), (*big.Int)(y))
}

// bpool is a cache of reusable *big.Int instances.
var bpool = sync.Pool{
	New: func() any {
		return (*bint)(new(big.Int))
	},
}

// getBint obtains a *big.Int from the pool.
func getBint() *bint {
	return bpool.Get().(*bint)
}

// putBint returns the *big.Int into the pool.
func putBint(b *bint) {
	bpool.Put(b)
}
