// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements signed multi-precision integers, the
// numerator/denominator representation behind Rat and the integer
// side of the Float conversions.

package bigfloat

import "github.com/dimakogan/bigfloat/internal/limbs"

// An Int represents a signed multi-precision integer.
// The zero value for an Int represents the value 0.
type Int struct {
	neg bool      // sign
	abs limbs.Nat // absolute value of the integer
}

// Sign returns:
//
//	-1 if x <  0
//	 0 if x == 0
//	+1 if x >  0
func (x *Int) Sign() int {
	if len(x.abs) == 0 {
		return 0
	}
	if x.neg {
		return -1
	}
	return 1
}

// SetInt64 sets z to x and returns z.
func (z *Int) SetInt64(x int64) *Int {
	neg := false
	if x < 0 {
		neg = true
		x = -x
	}
	z.abs = limbs.SetUint64(uint64(x))
	z.neg = neg
	return z
}

// SetUint64 sets z to x and returns z.
func (z *Int) SetUint64(x uint64) *Int {
	z.abs = limbs.SetUint64(x)
	z.neg = false
	return z
}

// NewInt allocates and returns a new Int set to x.
func NewInt(x int64) *Int {
	return new(Int).SetInt64(x)
}

// Set sets z to x and returns z.
func (z *Int) Set(x *Int) *Int {
	if z != x {
		z.abs = x.abs.Clone()
		z.neg = x.neg
	}
	return z
}

// Abs sets z to |x| (the absolute value of x) and returns z.
func (z *Int) Abs(x *Int) *Int {
	z.Set(x)
	z.neg = false
	return z
}

// Neg sets z to -x and returns z.
func (z *Int) Neg(x *Int) *Int {
	z.Set(x)
	z.neg = len(z.abs) > 0 && !z.neg // 0 has no sign
	return z
}

// Add sets z to the sum x+y and returns z.
func (z *Int) Add(x, y *Int) *Int {
	neg := x.neg
	if x.neg == y.neg {
		// x + y == x + y
		// (-x) + (-y) == -(x + y)
		z.abs = x.abs.Add(y.abs)
	} else {
		// x + (-y) == x - y == -(y - x)
		// (-x) + y == y - x == -(x - y)
		if x.abs.Cmp(y.abs) >= 0 {
			z.abs = x.abs.Sub(y.abs)
		} else {
			neg = !neg
			z.abs = y.abs.Sub(x.abs)
		}
	}
	z.neg = len(z.abs) > 0 && neg // 0 has no sign
	return z
}

// Sub sets z to the difference x-y and returns z.
func (z *Int) Sub(x, y *Int) *Int {
	neg := x.neg
	if x.neg != y.neg {
		// x - (-y) == x + y
		// (-x) - y == -(x + y)
		z.abs = x.abs.Add(y.abs)
	} else {
		// x - y == x - y == -(y - x)
		// (-x) - (-y) == y - x == -(x - y)
		if x.abs.Cmp(y.abs) >= 0 {
			z.abs = x.abs.Sub(y.abs)
		} else {
			neg = !neg
			z.abs = y.abs.Sub(x.abs)
		}
	}
	z.neg = len(z.abs) > 0 && neg // 0 has no sign
	return z
}

// Mul sets z to the product x*y and returns z.
func (z *Int) Mul(x, y *Int) *Int {
	// x * y == x * y
	// x * (-y) == -(x * y)
	// (-x) * y == -(x * y)
	// (-x) * (-y) == x * y
	neg := x.neg != y.neg
	z.abs = x.abs.Mul(y.abs)
	z.neg = len(z.abs) > 0 && neg // 0 has no sign
	return z
}

// QuoRem sets z to the quotient x/y and r to the remainder x%y and
// returns the pair (z, r) for y != 0. If y == 0, a division-by-zero
// run-time panic occurs.
//
// QuoRem implements T-division and modulus (like Go):
//
//	q = x/y      with the result truncated towards zero
//	r = x - y*q
func (z *Int) QuoRem(x, y, r *Int) (*Int, *Int) {
	xneg := x.neg
	q, rr := x.abs.DivMod(y.abs)
	z.abs, r.abs = q, rr
	z.neg = len(z.abs) > 0 && xneg != y.neg // 0 has no sign
	r.neg = len(r.abs) > 0 && xneg          // 0 has no sign
	return z, r
}

// Quo sets z to the quotient x/y for y != 0 and returns z.
// Quo implements truncated division.
func (z *Int) Quo(x, y *Int) *Int {
	z.abs, _ = x.abs.DivMod(y.abs)
	z.neg = len(z.abs) > 0 && x.neg != y.neg // 0 has no sign
	return z
}

// Cmp compares x and y and returns:
//
//	-1 if x <  y
//	 0 if x == y
//	+1 if x >  y
func (x *Int) Cmp(y *Int) (r int) {
	// x cmp y == x cmp y
	// x cmp (-y) == x
	// (-x) cmp y == y
	// (-x) cmp (-y) == -(x cmp y)
	switch {
	case x.neg == y.neg:
		r = x.abs.Cmp(y.abs)
		if x.neg {
			r = -r
		}
	case x.neg:
		r = -1
	default:
		r = 1
	}
	return
}

// BitLen returns the length of the absolute value of x in bits.
// The bit length of 0 is 0.
func (x *Int) BitLen() uint {
	return x.abs.BitLen()
}

// Lsh sets z = x << n and returns z.
func (z *Int) Lsh(x *Int, n uint) *Int {
	z.abs = x.abs.ShiftLeft(n)
	z.neg = x.neg
	return z
}

// Rsh sets z = x >> n (truncating towards zero) and returns z.
func (z *Int) Rsh(x *Int, n uint) *Int {
	z.abs = x.abs.ShiftRight(n)
	z.neg = len(z.abs) > 0 && x.neg
	return z
}

// GCD returns the greatest common divisor of |a| and |b|; the result
// is always non-negative. GCD(0, 0) is 0.
func GCD(a, b *Int) *Int {
	u := a.abs.Clone()
	v := b.abs.Clone()
	for !v.IsZero() {
		_, r := u.DivMod(v)
		u, v = v, r
	}
	return &Int{abs: u}
}

// Int64 returns the int64 representation of x.
// If x cannot be represented in an int64, the result is undefined.
func (x *Int) Int64() int64 {
	v := int64(x.abs.Uint64())
	if x.neg {
		v = -v
	}
	return v
}
