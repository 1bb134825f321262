// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements conversion between Float and IEEE 754 binary16
// values, for folding high-precision results down to the smallest
// interchange format and lifting binary16 data up to working
// precision.

package bigfloat

import "github.com/x448/float16"

// SetFloat16 sets z to the (possibly rounded) value of x and returns
// z. If z's precision is 0, it is changed to 11, the binary16
// significand width (and rounding will have no effect).
func (z *Float) SetFloat16(x float16.Float16) *Float {
	if z.prec == 0 {
		z.prec = 11
	}
	// every binary16 value converts to float32, and on to float64,
	// exactly
	return z.SetFloat64(float64(x.Float32()))
}

// Float16 returns the binary16 value nearest to x and an Ordering
// describing its error relative to x. Overflow returns ±Inf with the
// matching Ordering; values below the subnormal range flush to ±0.
func (x *Float) Float16() (float16.Float16, Ordering) {
	if x.IsNaN() {
		return float16.NaN(), Equal
	}
	if x.IsInf(0) {
		if x.neg {
			return float16.Inf(-1), Equal
		}
		return float16.Inf(1), Equal
	}
	var sign uint16
	if x.neg {
		sign = 1 << 15
	}
	if len(x.mant) == 0 {
		return float16.Frombits(sign), Equal
	}

	e := int64(x.exp) // value in [2^(e-1), 2^e)
	switch {
	case e > 16:
		// above the finite range
		if x.neg {
			return float16.Inf(-1), Less
		}
		return float16.Inf(1), Greater
	case e >= -13:
		// normal range: round to the 11-bit significand; rounding may
		// carry into the next binade, possibly past the largest finite
		// value
		r := new(Float).Round(x, 11, Nearest)
		re := int64(r.exp)
		if re > 16 {
			if x.neg {
				return float16.Inf(-1), Less
			}
			return float16.Inf(1), Greater
		}
		mant10 := uint16(high64(r.mant)>>53) & (1<<10 - 1)
		bits := sign | uint16(re+14)<<10 | mant10
		return float16.Frombits(bits), r.Ord()
	case e >= -23:
		// subnormal range: the effective precision shrinks with the
		// exponent; the significand becomes a multiple of 2^-24
		prec := uint(e + 24)
		r := new(Float).Round(x, prec, Nearest)
		if int64(r.exp) >= -13 {
			// rounding carried up to the smallest normal value
			return float16.Frombits(sign | 1<<10), r.Ord()
		}
		k := uint16(high64(r.mant) >> (64 - uint(int64(r.exp)+24)))
		return float16.Frombits(sign | k), r.Ord()
	case e == -24:
		// between 2^-25 and 2^-24: the midpoint of zero and the
		// smallest subnormal is 2^-25, and only that exact value ties
		// (to even, which is zero)
		pow2 := x.mant[len(x.mant)-1] == 1<<(_W-1) && !x.mant.StickyFrom(uint(len(x.mant)-1)*_W)
		if pow2 {
			return float16.Frombits(sign), x.signedOrd(Less)
		}
		return float16.Frombits(sign | 1), x.signedOrd(Greater)
	default:
		// at or below half the smallest subnormal
		return float16.Frombits(sign), x.signedOrd(Less)
	}
}

// signedOrd flips o for a negative x, turning a magnitude direction
// into a value direction.
func (x *Float) signedOrd(o Ordering) Ordering {
	if x.neg {
		return -o
	}
	return o
}
