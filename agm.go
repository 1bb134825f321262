// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the arithmetic-geometric mean: the common
// limit of a' = (a+b)/2, b' = sqrt(a*b). Each iteration step is
// exactly rounded at the working precision, so the accumulated error
// stays a counted number of working ulps; the loop result is only
// committed when that error interval cannot straddle a rounding
// boundary, retrying at a higher working precision otherwise.

package bigfloat

import "github.com/dimakogan/bigfloat/internal/limbs"

// agmMaxIter bounds one working-precision pass: closing an exponent
// gap costs one halving step per gap bit (at most the exponent width),
// after which convergence is quadratic.
const agmMaxIter = 400

// Agm sets z to the rounded arithmetic-geometric mean of x and y and
// returns z. Precision, rounding, and ordering reporting are as for
// Add.
//
// The AGM is defined for non-negative reals: any negative operand
// paired with a nonzero operand yields NaN. A zero operand paired
// with a finite operand yields +0; paired with an infinity it yields
// NaN.
func (z *Float) Agm(x, y *Float) *Float {
	if z.prec == 0 {
		z.prec = umax32(x.prec, y.prec)
	}

	if x.IsNaN() || y.IsNaN() {
		z.setNaN()
		return z
	}

	if x.isZero() || y.isZero() {
		if x.IsInf(0) || y.IsInf(0) {
			z.setNaN()
			return z
		}
		z.setZero(false)
		return z
	}

	if x.neg || y.neg {
		z.setNaN()
		return z
	}

	if x.IsInf(0) || y.IsInf(0) {
		z.setInf(false)
		return z
	}

	// x, y finite, positive
	if x.Cmp(y) == 0 {
		return z.Round(x, uint(z.prec), z.mode)
	}

	z.neg = false
	z.uagm(x, y)
	return z
}

// uagm iterates the mean pair at a working precision until a and b
// agree to within an ulp, then rounds if the error bound permits.
func (z *Float) uagm(x, y *Float) {
	prec := int64(z.prec)
	for g := int64(2 * _W); ; g *= 2 {
		wp := uint(prec + g)

		a := new(Float).Round(x, wp, Nearest)
		b := new(Float).Round(y, wp, Nearest)
		if a.Cmp(b) < 0 {
			a, b = b, a
		}

		// Center the exponents under a common shift: both operands
		// scale by the same power of two, so the result scales back
		// exactly.
		s := -(int64(a.exp) + int64(b.exp)) / 2
		a.setExp(int64(a.exp) + s)
		b.setExp(int64(b.exp) + s)

		errUlps := int64(4) // the two initial roundings
		converged := false
		for iter := 0; iter < agmMaxIter; iter++ {
			d := new(Float)
			d.prec = uint32(wp)
			d.Sub(a, b)
			if d.isZero() || int64(a.exp)-int64(d.exp) >= int64(wp) {
				converged = true
				break
			}

			an := new(Float)
			an.prec = uint32(wp)
			an.Add(a, b)
			an.setExp(int64(an.exp) - 1) // (a+b)/2

			bn := new(Float)
			bn.prec = uint32(wp)
			bn.Mul(a, b)
			bn.Sqrt(bn)

			a, b = an, bn
			if a.Cmp(b) < 0 {
				a, b = b, a
			}
			errUlps += 4
		}
		errUlps += 2 // the final sub-ulp gap between a and b
		if !converged {
			continue
		}

		m := a.mant
		bits := int64(len(m)) * _W
		slack := limbs.SetUint64(uint64(errUlps)).ShiftLeft(uint(bits - int64(wp)))
		t := int64(m.BitLen()) - prec
		if canRoundDecide(m, t, slack, slack) {
			z.mant = m
			z.setExp(int64(a.exp) - s)
			z.round(1)
			return
		}
	}
}
