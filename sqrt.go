// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the square root and the reciprocal square
// root. Sqrt reduces to an integer square root with remainder, so its
// rounding decision is always final. RecSqrt composes an exact
// division with an integer square root; the one-unit slack of that
// composition is resolved by the usual widen-and-retry loop.

package bigfloat

import "github.com/dimakogan/bigfloat/internal/limbs"

// Sqrt sets z to the rounded square root of x and returns z.
// If z's precision is 0, it is changed to x's precision.
//
// The square root of -0 is -0, and the square root of a negative
// nonzero x is NaN.
func (z *Float) Sqrt(x *Float) *Float {
	if z.prec == 0 {
		z.prec = x.prec
	}

	switch {
	case x.IsNaN():
		z.setNaN()
		return z
	case x.IsInf(0):
		if x.neg {
			z.setNaN()
		} else {
			z.setInf(false)
		}
		return z
	case x.isZero():
		z.setZero(x.neg)
		return z
	case x.neg:
		z.setNaN()
		return z
	}

	z.neg = false
	z.usqrt(x)
	return z
}

// usqrt sets z = sqrt(x) for a finite positive x. The mantissa is
// padded to an even exponent and enough bits that the integer root
// carries the precision plus a guard bit; the root's remainder is the
// sticky bit.
func (z *Float) usqrt(x *Float) {
	mb := int64(len(x.mant)) * _W
	e := int64(x.exp)

	shift := 2*(int64(z.prec)+2) - mb
	if shift < 0 {
		shift = 0
	}
	if (e-mb-shift)&1 != 0 {
		shift++
	}

	m := x.mant.ShiftLeft(uint(shift))
	ev := e - mb - shift // even

	s, r := m.SqrtRem()
	var sbit uint
	if !r.IsZero() {
		sbit = 1
	}
	z.setMantExp(s, ev/2, sbit)
}

// RecSqrt sets z to the rounded reciprocal square root 1/sqrt(x) and
// returns z. If z's precision is 0, it is changed to x's precision.
//
// Following the sign conventions of Sqrt, RecSqrt of ±0 is ±Inf, and
// RecSqrt of a negative nonzero x is NaN.
func (z *Float) RecSqrt(x *Float) *Float {
	if z.prec == 0 {
		z.prec = x.prec
	}

	switch {
	case x.IsNaN():
		z.setNaN()
		return z
	case x.IsInf(0):
		if x.neg {
			z.setNaN()
		} else {
			z.setZero(false)
		}
		return z
	case x.isZero():
		z.setInf(x.neg)
		return z
	case x.neg:
		z.setNaN()
		return z
	}

	z.neg = false
	z.urecSqrt(x)
	return z
}

// urecSqrt sets z = 1/sqrt(x) for a finite positive x.
func (z *Float) urecSqrt(x *Float) {
	mb := int64(len(x.mant)) * _W
	e := int64(x.exp)

	// A power of four is the only input whose reciprocal square root
	// is a binary power, hence exactly representable.
	pow2 := x.mant[len(x.mant)-1] == 1<<(_W-1) && !x.mant.StickyFrom(uint(len(x.mant)-1)*_W)
	if pow2 && (e-1)&1 == 0 {
		z.setMantExp(limbs.SetUint64(1), -(e-1)/2, 0)
		return
	}

	m := x.mant
	ev := e - mb
	if ev&1 != 0 {
		m = m.ShiftLeft(1)
		ev--
	}
	// x = m * 2^ev with ev even; 1/sqrt(x) = 2^(-ev/2)/sqrt(m)

	lo := limbs.Nat(nil)
	hi := limbs.SetUint64(2)
	for g := int64(2 * _W); ; g *= 2 {
		wp := int64(z.prec) + g
		bm := int64(m.BitLen())
		j := wp + 3 + (bm+1)/2

		a, _ := natOne.ShiftLeft(uint(2 * j)).DivMod(m)
		s, _ := a.SqrtRem()
		// 2^j/sqrt(m) lies in the open interval (s, s+2): both floors
		// below lose less than one unit each, and the value itself is
		// irrational here.
		t := int64(s.BitLen()) - int64(z.prec)
		if canRoundDecide(s, t, lo, hi) {
			z.setMantExp(s, -j-ev/2, 1)
			return
		}
	}
}
