// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements multiplication.

package bigfloat

// Mul sets z to the rounded product x*y and returns z.
// Precision, rounding, and ordering reporting are as for Add.
func (z *Float) Mul(x, y *Float) *Float {
	if z.prec == 0 {
		z.prec = umax32(x.prec, y.prec)
	}

	if x.IsNaN() || y.IsNaN() {
		z.setNaN()
		return z
	}

	neg := x.neg != y.neg

	if x.IsInf(0) || y.IsInf(0) {
		if x.isZero() || y.isZero() {
			// 0 * Inf
			z.setNaN()
			return z
		}
		z.setInf(neg)
		return z
	}

	if x.isZero() || y.isZero() {
		z.setZero(neg)
		return z
	}

	// x, y != 0
	z.neg = neg
	z.umul(x, y)
	return z
}

// umul sets z = x * y, ignoring signs of x and y; z.neg must already
// hold the result sign. x and y must be finite and nonzero. The full
// product is formed, so the rounded result is exact by construction.
func (z *Float) umul(x, y *Float) {
	if debugFloat && (len(x.mant) == 0 || len(y.mant) == 0) {
		panic("umul called with 0 argument")
	}

	e := int64(x.exp) + int64(y.exp) - int64(len(x.mant)+len(y.mant))*_W
	z.setMantExp(x.mant.Mul(y.mant), e, 0)
}
