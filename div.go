// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements division. The quotient kernel has a one-limb
// fast path, an exact general path that divides with remainder (the
// remainder supplies the sticky bit, so the rounding decision is
// always final), and an approximate path for operands much wider than
// the result precision: there the operands are truncated, the quotient
// is estimated with a precomputed reciprocal, and the result is only
// committed when the error interval cannot straddle a rounding
// boundary, retrying at higher working precision otherwise.

package bigfloat

import "github.com/dimakogan/bigfloat/internal/limbs"

// quoApproxMargin is the number of extra operand limbs, beyond those
// needed for the result precision, above which Quo tries the truncated
// reciprocal estimate before falling back to the exact division.
const quoApproxMargin = 48

// Quo sets z to the rounded quotient x/y and returns z.
// Precision, rounding, and ordering reporting are as for Add.
func (z *Float) Quo(x, y *Float) *Float {
	if z.prec == 0 {
		z.prec = umax32(x.prec, y.prec)
	}

	if x.IsNaN() || y.IsNaN() {
		z.setNaN()
		return z
	}

	neg := x.neg != y.neg

	switch {
	case x.IsInf(0):
		if y.IsInf(0) {
			// Inf / Inf
			z.setNaN()
			return z
		}
		z.setInf(neg)
		return z
	case y.IsInf(0):
		z.setZero(neg)
		return z
	case y.isZero():
		if x.isZero() {
			// 0 / 0
			z.setNaN()
			return z
		}
		z.setInf(neg)
		return z
	case x.isZero():
		z.setZero(neg)
		return z
	}

	// x, y != 0
	z.neg = neg
	z.uquo(x, y)
	return z
}

// uquo sets z = x / y, ignoring signs of x and y; z.neg must already
// hold the result sign. x and y must be finite and nonzero.
func (z *Float) uquo(x, y *Float) {
	if debugFloat && (len(x.mant) == 0 || len(y.mant) == 0) {
		panic("uquo called with 0 argument")
	}

	if len(x.mant) == 1 && len(y.mant) == 1 && uint(z.prec) < 2*_W {
		z.uquoSmall(x, y)
		return
	}

	n := int(uint(z.prec)/_W) + 1
	if len(x.mant) > 2*n+quoApproxMargin && len(y.mant) > 2*n+quoApproxMargin {
		if z.uquoApprox(x, y) {
			return
		}
	}

	// Exact path: widen the dividend until the quotient carries at
	// least one bit beyond the result precision; a nonzero remainder
	// is exactly the sticky bit.
	d := n - len(x.mant) + len(y.mant)
	xm := x.mant
	if d > 0 {
		xm = xm.ShiftLeft(uint(d) * _W)
	} else {
		d = 0
	}
	e := int64(x.exp) - int64(y.exp) - int64(len(x.mant)+d-len(y.mant))*_W

	q, r := xm.DivMod(y.mant)
	var sbit uint
	if !r.IsZero() {
		sbit = 1
	}
	z.setMantExp(q, e, sbit)
}

// uquoSmall divides two one-limb mantissas by widening the dividend to
// three limbs; the rounding decision comes from the final remainder.
func (z *Float) uquoSmall(x, y *Float) {
	x0, y0 := x.mant[0], y.mant[0]
	e := int64(x.exp) - int64(y.exp)

	var qh limbs.Word
	r := x0
	if x0 >= y0 {
		qh = 1
		r = x0 - y0
	}
	q1, r := limbs.DivWW(r, 0, y0)
	q0, r := limbs.DivWW(r, 0, y0)

	var sbit uint
	if r != 0 {
		sbit = 1
	}
	z.setMantExp(limbs.Nat{q0, q1, qh}.Norm(), e-2*_W, sbit)
}

// uquoApprox divides truncated operands with a reciprocal estimate.
// It reports whether the rounding decision was forced; if the error
// interval of the estimate touches a rounding boundary it gives up,
// the second time for good, and the caller reruns the exact path.
func (z *Float) uquoApprox(x, y *Float) bool {
	lo := limbs.SetUint64(5)
	hi := limbs.SetUint64(9)
	n := int(uint(z.prec)/_W) + 3
	for attempt := 0; attempt < 2; attempt++ {
		xt := x.mant[len(x.mant)-n:]
		yt := y.mant[len(y.mant)-n:]
		xp := make(limbs.Nat, 2*n)
		copy(xp[n:], xt)

		qe := limbs.DivApprox(xp, limbs.Nat(yt).Clone())
		// With α, β ∈ [0, 1) the truncation losses, the exact quotient
		// scaled to these units is (xt+α)*B^n/(yt+β), which lies in
		// the open interval (qe-5, qe+9).
		t := int64(qe.BitLen()) - int64(z.prec)
		if canRoundDecide(qe, t, lo, hi) {
			e := int64(x.exp) - int64(y.exp) - int64(n)*_W
			z.setMantExp(qe, e, 1)
			return true
		}
		n += 2
	}
	return false
}
