// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements addition and subtraction.

package bigfloat

import "github.com/dimakogan/bigfloat/internal/limbs"

// Handling of sign bit as defined by IEEE 754-2008, section 6.3:
//
// When neither the inputs nor result are NaN, the sign of a sum, or of
// a difference x−y regarded as a sum x+(−y), differs from at most one
// of the addends' signs.
//
// When the sum of two operands with opposite signs (or the difference
// of two operands with like signs) is exactly zero, the sign of that
// sum (or difference) shall be +0 in all rounding-direction attributes
// except roundTowardNegative; under that attribute, the sign of an
// exact zero sum (or difference) shall be −0.

// Add sets z to the rounded sum x+y and returns z.
// If z's precision is 0, it is changed to the larger of x's or y's
// precision before the operation. Rounding is performed according to
// z's precision and rounding mode; and z's Ordering reports the result
// error relative to the exact (not rounded) result.
func (z *Float) Add(x, y *Float) *Float {
	return z.addImpl(x, y)
}

// Sub sets z to the rounded difference x-y and returns z.
// Precision, rounding, and ordering reporting are as for Add.
func (z *Float) Sub(x, y *Float) *Float {
	yy := *y
	yy.neg = !yy.neg
	return z.addImpl(x, &yy)
}

func (z *Float) addImpl(x, y *Float) *Float {
	if z.prec == 0 {
		z.prec = umax32(x.prec, y.prec)
	}

	if x.IsNaN() || y.IsNaN() {
		z.setNaN()
		return z
	}

	if x.IsInf(0) || y.IsInf(0) {
		if x.IsInf(0) && y.IsInf(0) && x.neg != y.neg {
			// Inf + -Inf
			z.setNaN()
			return z
		}
		neg := x.neg
		if !x.IsInf(0) {
			neg = y.neg
		}
		z.setInf(neg)
		return z
	}

	if x.isZero() && y.isZero() {
		neg := x.neg && y.neg
		if x.neg != y.neg && z.mode == Floor {
			neg = true
		}
		z.setZero(neg)
		return z
	}
	if y.isZero() {
		return z.Round(x, uint(z.prec), z.mode)
	}
	if x.isZero() {
		return z.Round(y, uint(z.prec), z.mode)
	}

	// x, y != 0
	neg := x.neg
	if x.neg == y.neg {
		// x + y == x + y
		// (-x) + (-y) == -(x + y)
		z.neg = neg
		z.uadd(x, y)
	} else {
		// x + (-y) == x - y == -(y - x)
		// (-x) + y == y - x == -(x - y)
		if x.ucmp(y) >= 0 {
			z.neg = neg
			z.usub(x, y)
		} else {
			z.neg = !neg
			z.usub(y, x)
		}
	}
	return z
}

// belowMant reports whether all of y lies strictly below the n-word
// mantissa of x, so that in x ± y the whole of y collapses into the
// sticky bit.
func belowMant(x, y *Float, n int) bool {
	return int64(y.exp) <= int64(x.exp)-int64(n)*_W
}

// uadd sets z = x + y, ignoring signs of x and y; z.neg must already
// hold the result sign. x and y must be finite and nonzero.
func (z *Float) uadd(x, y *Float) {
	if debugFloat && (len(x.mant) == 0 || len(y.mant) == 0) {
		panic("uadd called with 0 argument")
	}

	if x.exp < y.exp {
		x, y = y, x
	}

	// Widen x to n words, at least one bit beyond the result precision;
	// if y lies entirely below that, it only contributes a sticky bit.
	n := int(uint(z.prec)/_W) + 1
	if n < len(x.mant) {
		n = len(x.mant)
	}
	if belowMant(x, y, n) {
		zm := make(limbs.Nat, n)
		copy(zm[n-len(x.mant):], x.mant)
		exp := x.exp
		z.mant = zm
		z.exp = exp
		z.round(1)
		return
	}

	// compute exponents ex, ey for mantissa with "binary point"
	// on the right (mantissa.0) - use int64 to avoid overflow
	ex := int64(x.exp) - int64(len(x.mant))*_W
	ey := int64(y.exp) - int64(len(y.mant))*_W

	var m limbs.Nat
	switch {
	case ex < ey:
		m = y.mant.ShiftLeft(uint(ey - ex)).Add(x.mant)
	case ex > ey:
		m = x.mant.ShiftLeft(uint(ex - ey)).Add(y.mant)
		ex = ey
	default:
		// ex == ey, no shift needed
		m = x.mant.Add(y.mant)
	}

	z.setMantExp(m, ex, 0)
}

// usub sets z = x - y for |x| >= |y|, ignoring signs of x and y;
// z.neg must already hold the result sign. x and y must be finite and
// nonzero.
func (z *Float) usub(x, y *Float) {
	// This code is symmetric to uadd.

	if debugFloat && (len(x.mant) == 0 || len(y.mant) == 0) {
		panic("usub called with 0 argument")
	}

	// Keep at least two bits beyond the result precision: when x is a
	// power of two, the borrow below loses one bit to renormalization.
	n := int((uint(z.prec)+1)/_W) + 1
	if n < len(x.mant) {
		n = len(x.mant)
	}
	if belowMant(x, y, n) {
		// x - ε: borrow one unit from the widened mantissa, the rest
		// of ε is sticky
		zm := make(limbs.Nat, n)
		copy(zm[n-len(x.mant):], x.mant)
		e := int64(x.exp) - int64(n)*_W
		z.setMantExp(limbs.Nat(zm).SubWord(1), e, 1)
		return
	}

	ex := int64(x.exp) - int64(len(x.mant))*_W
	ey := int64(y.exp) - int64(len(y.mant))*_W

	var m limbs.Nat
	switch {
	case ex < ey:
		m = x.mant.Sub(y.mant.ShiftLeft(uint(ey - ex)))
	case ex > ey:
		m = x.mant.ShiftLeft(uint(ex - ey)).Sub(y.mant)
		ex = ey
	default:
		// ex == ey, no shift needed
		m = x.mant.Sub(y.mant)
	}

	// operands may have cancelled each other out
	if m.IsZero() {
		z.setZero(z.mode == Floor)
		return
	}

	z.setMantExp(m, ex, 0)
}
