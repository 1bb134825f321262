// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements exact multi-precision rationals and the mixed
// Float/Rational arithmetic: conversion, division in both directions,
// and the square root of a rational. Rationals are always held in
// lowest terms with a positive denominator.

package bigfloat

import "github.com/dimakogan/bigfloat/internal/limbs"

// A Rat represents a quotient a/b of arbitrary precision.
// The zero value for a Rat represents the value 0.
type Rat struct {
	// To make the zero value for Rat work w/o initialization,
	// a zero value of b (len(b.abs) == 0) acts like b == 1.
	a, b Int
}

// NewRat creates a new Rat with numerator a and denominator b.
func NewRat(a, b int64) *Rat {
	return new(Rat).SetFrac64(a, b)
}

// SetFrac64 sets z to a/b and returns z. It panics if b == 0.
func (z *Rat) SetFrac64(a, b int64) *Rat {
	return z.SetFrac(NewInt(a), NewInt(b))
}

// SetFrac sets z to a/b and returns z. It panics if b == 0.
func (z *Rat) SetFrac(a, b *Int) *Rat {
	if b.Sign() == 0 {
		panic("bigfloat: division by zero")
	}
	z.a.Set(a)
	z.b.Set(b)
	if z.b.neg {
		z.a.neg = !z.a.neg && z.a.Sign() != 0
		z.b.neg = false
	}
	return z.norm()
}

// SetInt sets z to x (by making a copy of x) and returns z.
func (z *Rat) SetInt(x *Int) *Rat {
	z.a.Set(x)
	z.b.abs = z.b.abs[:0]
	return z
}

// SetInt64 sets z to x and returns z.
func (z *Rat) SetInt64(x int64) *Rat {
	z.a.SetInt64(x)
	z.b.abs = z.b.abs[:0]
	return z
}

// norm reduces z to its lowest-terms representation.
func (z *Rat) norm() *Rat {
	switch {
	case len(z.a.abs) == 0:
		// z == 0; normalize sign and denominator
		z.a.neg = false
		z.b.abs = z.b.abs[:0]
	case len(z.b.abs) == 0:
		// z is normalized int
	default:
		g := GCD(&z.a, &z.b)
		if g.abs.Cmp(natOne) != 0 {
			z.a.Quo(&z.a, g)
			z.b.Quo(&z.b, g)
		}
		if z.b.abs.Cmp(natOne) == 0 {
			z.b.abs = z.b.abs[:0]
		}
	}
	return z
}

// Num returns the numerator of x; it may be <= 0.
// The result is a reference to x's numerator.
func (x *Rat) Num() *Int {
	return &x.a
}

// Denom returns the denominator of x; it is always > 0.
func (x *Rat) Denom() *Int {
	if len(x.b.abs) == 0 {
		return &Int{abs: natOne.Clone()}
	}
	return &x.b
}

// denomNat returns the denominator's absolute value as a Nat.
func (x *Rat) denomNat() limbs.Nat {
	if len(x.b.abs) == 0 {
		return natOne
	}
	return x.b.abs
}

// Sign returns:
//
//	-1 if x <  0
//	 0 if x == 0
//	+1 if x >  0
func (x *Rat) Sign() int {
	return x.a.Sign()
}

// IsInt reports whether the denominator of x is 1.
func (x *Rat) IsInt() bool {
	return len(x.b.abs) == 0 || x.b.abs.Cmp(natOne) == 0
}

// Neg sets z to -x and returns z.
func (z *Rat) Neg(x *Rat) *Rat {
	z.a.Neg(&x.a)
	z.b.Set(&x.b)
	return z
}

// Cmp compares x and y and returns:
//
//	-1 if x <  y
//	 0 if x == y
//	+1 if x >  y
func (x *Rat) Cmp(y *Rat) int {
	var u, v Int
	u.abs = x.a.abs.Mul(y.denomNat())
	u.neg = x.a.neg
	v.abs = y.a.abs.Mul(x.denomNat())
	v.neg = y.a.neg
	return u.Cmp(&v)
}

// SetRat sets z to the (possibly rounded) value of x and returns z.
// If z's precision is 0, it is changed to the larger of the bit
// lengths of x's numerator and denominator.
func (z *Float) SetRat(x *Rat) *Float {
	if z.prec == 0 {
		z.prec = uint32(umax(umax(x.a.BitLen(), x.denomNat().BitLen()), 1))
	}
	if x.Sign() == 0 {
		z.setZero(false)
		return z
	}
	neg := x.a.neg
	num := x.a.abs
	den := x.denomNat()

	// widen the numerator so the quotient carries at least one bit
	// beyond the precision
	var t int64
	if need := int64(z.prec) + 2 + int64(den.BitLen()) - int64(num.BitLen()); need > 0 {
		t = need
	}
	q, r := num.ShiftLeft(uint(t)).DivMod(den)
	var sbit uint
	if !r.IsZero() {
		sbit = 1
	}
	z.neg = neg
	z.setMantExp(q, -t, sbit)
	return z
}

// Rat returns the exact rational value of a finite x.
// It panics if x is not finite.
func (x *Float) Rat() *Rat {
	if len(x.mant) == 0 {
		if x.exp != 0 {
			panic("bigfloat: Rat of a non-finite Float")
		}
		return new(Rat)
	}
	z := new(Rat)
	e := int64(x.exp) - int64(len(x.mant))*_W
	if e >= 0 {
		z.a.abs = x.mant.ShiftLeft(uint(e))
	} else {
		z.a.abs = x.mant.Clone().Norm()
		z.b.abs = natOne.ShiftLeft(uint(-e))
	}
	z.a.abs = z.a.abs.Norm()
	z.a.neg = x.neg
	return z.norm()
}

// CmpRat compares a finite x to the rational y and returns:
//
//	-1 if x <  y
//	 0 if x == y
//	+1 if x >  y
func (x *Float) CmpRat(y *Rat) int {
	return x.Rat().Cmp(y)
}

// quoRatFallbackBits is the operand size, relative to the result
// precision, above which the Float/Rational quotients first try a
// truncated-divisor estimate instead of forming the exact products.
func quoRatFallbackBits(prec uint32) int64 {
	return 32 * (int64(prec) + 2*_W)
}

// QuoRat sets z to the rounded quotient x/y of a Float by a Rational
// and returns z. If z's precision is 0, it is changed to x's
// precision. Rounding and ordering reporting are as for Add.
func (z *Float) QuoRat(x *Float, y *Rat) *Float {
	if z.prec == 0 {
		z.prec = x.prec
	}

	if x.IsNaN() {
		z.setNaN()
		return z
	}

	neg := x.neg != (y.Sign() < 0)

	switch {
	case x.IsInf(0):
		if y.Sign() == 0 {
			z.setInf(x.neg)
			return z
		}
		z.setInf(neg)
		return z
	case y.Sign() == 0:
		if x.isZero() {
			// 0 / 0
			z.setNaN()
			return z
		}
		z.setInf(x.neg)
		return z
	case x.isZero():
		z.setZero(neg)
		return z
	}

	num := y.a.abs
	den := y.denomNat()

	if int64(num.BitLen())+int64(den.BitLen()) > quoRatFallbackBits(z.prec) {
		if z.quoRatApprox(x, y, neg) {
			return z
		}
	}

	// exact: x/(n/d) = (mant*d) / n, scaled
	xm := x.mant.Mul(den)
	var t int64
	if need := int64(z.prec) + 2 + int64(num.BitLen()) - int64(xm.BitLen()); need > 0 {
		t = need
	}
	q, r := xm.ShiftLeft(uint(t)).DivMod(num)
	var sbit uint
	if !r.IsZero() {
		sbit = 1
	}
	e := int64(x.exp) - int64(len(x.mant))*_W - t
	z.neg = neg
	z.setMantExp(q, e, sbit)
	return z
}

// quoRatApprox divides by a Rational too wide to be worth an exact
// product: the Rational is rounded to a working precision, the
// quotient computed there, and the result committed only when the
// error interval of at most three working ulps clears every rounding
// boundary. It reports whether it committed.
func (z *Float) quoRatApprox(x *Float, y *Rat, neg bool) bool {
	for attempt := 0; attempt < 2; attempt++ {
		wp := uint(z.prec) + 2*_W + uint(attempt)*2*_W

		yf := new(Float)
		yf.prec = uint32(wp)
		yf.SetRat(y)
		if yf.Ord() == Equal {
			// the Rational fit exactly; the plain quotient is final
			zz := new(Float)
			zz.prec = z.prec
			zz.mode = z.mode
			zz.neg = neg
			zz.uquo(x, yf)
			*z = *zz
			return true
		}

		qf := new(Float)
		qf.prec = uint32(wp)
		qf.Quo(x, yf)

		m := qf.mant
		bits := int64(len(m)) * _W
		slack := limbs.SetUint64(3).ShiftLeft(uint(bits - int64(wp)))
		t := int64(m.BitLen()) - int64(z.prec)
		if canRoundDecide(m, t, slack, slack) {
			z.neg = neg
			z.mant = m
			z.setExp(int64(qf.exp))
			z.round(1)
			return true
		}
	}
	return false
}

// RatQuo sets z to the rounded quotient x/y of a Rational by a Float
// and returns z. If z's precision is 0, it is changed to y's
// precision. Rounding and ordering reporting are as for Add.
func (z *Float) RatQuo(x *Rat, y *Float) *Float {
	if z.prec == 0 {
		z.prec = y.prec
	}

	if y.IsNaN() {
		z.setNaN()
		return z
	}

	neg := (x.Sign() < 0) != y.neg

	switch {
	case y.IsInf(0):
		z.setZero(neg)
		return z
	case y.isZero():
		if x.Sign() == 0 {
			// 0 / 0
			z.setNaN()
			return z
		}
		z.setInf(neg)
		return z
	case x.Sign() == 0:
		z.setZero(neg)
		return z
	}

	// (n/d) / y = n / (d * mant), scaled
	num := x.a.abs
	den := x.denomNat().Mul(y.mant)
	var t int64
	if need := int64(z.prec) + 2 + int64(den.BitLen()) - int64(num.BitLen()); need > 0 {
		t = need
	}
	q, r := num.ShiftLeft(uint(t)).DivMod(den)
	var sbit uint
	if !r.IsZero() {
		sbit = 1
	}
	e := -(int64(y.exp) - int64(len(y.mant))*_W) - t
	z.neg = neg
	z.setMantExp(q, e, sbit)
	return z
}

// SqrtRat sets z to the rounded square root of the non-negative
// rational x and returns z. If z's precision is 0, it is changed to
// the larger of the bit lengths of x's numerator and denominator.
//
// The square root of a negative rational is NaN.
func (z *Float) SqrtRat(x *Rat) *Float {
	if z.prec == 0 {
		z.prec = uint32(umax(umax(x.a.BitLen(), x.denomNat().BitLen()), 1))
	}

	if x.Sign() < 0 {
		z.setNaN()
		return z
	}
	if x.Sign() == 0 {
		z.setZero(false)
		return z
	}

	z.neg = false
	z.usqrtRat(x)
	return z
}

// usqrtRat computes sqrt(n/d) as sqrt(n*d)/d: an integer square root
// followed by an integer division, both with remainders. When both
// remainders vanish the value is exact; otherwise the composition is
// off by less than two units and the result is committed only when
// that interval clears every rounding boundary.
func (z *Float) usqrtRat(x *Rat) {
	nd := x.a.abs.Mul(x.denomNat())
	d := x.denomNat()
	h := int64(d.BitLen()) - 1 // 2^h <= d

	lo := limbs.Nat(nil)
	hi := limbs.SetUint64(2)
	for g := int64(2 * _W); ; g *= 2 {
		wp := int64(z.prec) + g

		var k int64
		if need := wp + 2 - int64(nd.BitLen())/2; need > 0 {
			k = need
		}
		s1, r1 := nd.ShiftLeft(uint(2 * k)).SqrtRem()
		q, r2 := s1.ShiftLeft(uint(h)).DivMod(d)
		// sqrt(n/d) = (q + f) * 2^(-k-h) with 0 <= f < 2: one unit
		// from the root's floor (scaled down by 2^h/d <= 1), one from
		// the division's.
		if r1.IsZero() && r2.IsZero() {
			z.setMantExp(q, -k-h, 0)
			return
		}
		t := int64(q.BitLen()) - int64(z.prec)
		if canRoundDecide(q, t, lo, hi) {
			z.setMantExp(q, -k-h, 1)
			return
		}
	}
}
