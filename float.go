// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bigfloat implements multi-precision binary floating-point
// numbers with correctly rounded arithmetic. Like in the GNU MPFR
// library (http://www.mpfr.org/), operands can be of mixed precision.
// The rounding mode is not specified with each operation, but with
// each operand: the rounding mode of the result operand determines the
// rounding mode of an operation, and every rounded result records an
// Ordering telling how it compares to the exact value.
package bigfloat

import (
	"fmt"
	"math"

	"github.com/dimakogan/bigfloat/internal/limbs"
)

const debugFloat = true // enable for debugging

const _W = limbs.W // word size in bits

// A Float represents a multi-precision floating point number of the
// form
//
//	sign * mantissa * 2**exponent
//
// with 0.5 <= mantissa < 1.0, and MinExp <= exponent <= MaxExp. The
// values 0, +Inf, -Inf, and NaN have an empty mantissa and a special
// exponent.
//
// Each Float value also has a precision, rounding mode, and ordering.
//
// The precision is the number of mantissa bits used to represent the
// value. The rounding mode specifies how a result should be rounded
// to fit into the mantissa bits, and the ordering describes the
// rounding error with respect to the exact result.
//
// All operations that specify a *Float for the result, usually via the
// receiver, round their result to the result's precision and according
// to its rounding mode, unless specified otherwise. If the result
// precision is 0, it is set to the precision of the argument with the
// largest precision value before any rounding takes place.
//
// The zero (uninitialized) value for a Float is ready to use and
// represents the number +0.0 of 0 bit precision.
type Float struct {
	mode RoundingMode
	ord  Ordering
	neg  bool
	mant limbs.Nat
	exp  int32
	prec uint32
}

// Internal representation details: The mantissa bits x.mant of a Float
// x are stored in the shortest slice long enough to hold x.prec bits.
// Unless x is a zero, an infinity, or NaN, x.mant is normalized such
// that the msb of x.mant == 1. Thus, if the precision is not a
// multiple of the Word size _W, x.mant[0] contains trailing zero bits.
// Zero, Inf, and NaN values have an empty mantissa and a special
// exponent.

const (
	MaxExp = math.MaxInt32     // largest supported exponent
	MinExp = math.MinInt32 + 2 // smallest supported exponent
	infExp = math.MinInt32 + 1 // exponent of ±Inf values
	nanExp = math.MinInt32     // exponent of NaN values
)

var natOne = limbs.Nat{1}

// NewFloat returns a new Float with value x rounded to prec bits
// according to the given rounding mode.
func NewFloat(x float64, prec uint, mode RoundingMode) *Float {
	var z Float
	z.prec = uint32(prec)
	z.mode = mode
	if prec > 0 {
		z.SetFloat64(x)
	}
	return &z
}

// NewInf returns a new infinite Float value with value +Inf (sign >= 0)
// or -Inf (sign < 0).
func NewInf(sign int) *Float {
	return &Float{neg: sign < 0, exp: infExp}
}

// NewNaN returns a new NaN Float value.
func NewNaN() *Float {
	return &Float{exp: nanExp}
}

// Precision returns the mantissa precision of x in bits.
// The precision may be 0 for |x| == 0 or a non-finite x.
func (x *Float) Precision() uint {
	return uint(x.prec)
}

// Ord returns the Ordering of x produced by the most recent operation.
func (x *Float) Ord() Ordering {
	return x.ord
}

// Mode returns the rounding mode of x.
func (x *Float) Mode() RoundingMode {
	return x.mode
}

// SetMode sets z's rounding mode to mode and returns z.
func (z *Float) SetMode(mode RoundingMode) *Float {
	z.mode = mode
	return z
}

// IsNaN reports whether x is a NaN.
func (x *Float) IsNaN() bool {
	return len(x.mant) == 0 && x.exp == nanExp
}

// IsInf reports whether x is an infinity, according to sign.
// If sign > 0, IsInf reports whether x is positive infinity.
// If sign < 0, IsInf reports whether x is negative infinity.
// If sign == 0, IsInf reports whether x is either infinity.
func (x *Float) IsInf(sign int) bool {
	return len(x.mant) == 0 && x.exp == infExp && (sign == 0 || x.neg == (sign < 0))
}

// isZero reports whether x is ±0.
func (x *Float) isZero() bool {
	return len(x.mant) == 0 && x.exp == 0
}

// Signbit reports whether x is negative or negative zero.
func (x *Float) Signbit() bool {
	return x.neg && !x.IsNaN()
}

// setZero sets z to ±0 with the given sign.
func (z *Float) setZero(neg bool) {
	z.neg = neg
	z.mant = z.mant[:0]
	z.exp = 0
	z.ord = Equal
}

// setInf sets z to ±Inf with the given sign.
func (z *Float) setInf(neg bool) {
	z.neg = neg
	z.mant = z.mant[:0]
	z.exp = infExp
	z.ord = Equal
}

// setNaN sets z to NaN.
func (z *Float) setNaN() {
	z.neg = false
	z.mant = z.mant[:0]
	z.exp = nanExp
	z.ord = Equal
}

// setExp sets the exponent for z. An exponent beyond MaxExp saturates
// to ±Inf, one below MinExp to ±0, with z.ord recording the direction
// of the resulting error.
func (z *Float) setExp(e int64) {
	switch {
	case e > MaxExp:
		neg := z.neg
		z.setInf(neg)
		z.ord = Greater
		if neg {
			z.ord = Less
		}
		if z.mode == Exact {
			panic("bigfloat: exponent overflow with Exact rounding")
		}
	case e < MinExp:
		neg := z.neg
		z.setZero(neg)
		z.ord = Less
		if neg {
			z.ord = Greater
		}
		if z.mode == Exact {
			panic("bigfloat: exponent underflow with Exact rounding")
		}
	default:
		z.exp = int32(e)
	}
}

// debugging support
func (x *Float) validate() {
	const msb = limbs.Word(1) << (_W - 1)
	m := len(x.mant)
	if m == 0 {
		// ±0, ±Inf, or NaN
		if x.exp != 0 && x.exp != infExp && x.exp != nanExp {
			panic(fmt.Sprintf("empty mantissa with invalid exponent %d", x.exp))
		}
		return
	}
	if x.mant[m-1]&msb == 0 {
		panic(fmt.Sprintf("msb not set in last word %#x of mantissa", x.mant[m-1]))
	}
	if x.prec == 0 {
		panic("invalid precision 0")
	}
}

// round rounds z according to z.mode to z.prec bits and sets z.ord
// accordingly. sbit must be 0 or 1 and summarizes any "sticky bit"
// information one might have before calling round. z's mantissa must
// be normalized (with the msb set) or empty.
//
// Rounding is based on two bits: the rounding bit (rbit) and the
// sticky bit (sbit). The rbit is the bit immediately below the
// mantissa bits (the "0.5"); the sbit is set if any of the bits below
// the rbit are set (the "0.25", "0.125", etc.):
//
//	rbit  sbit  => "fractional part"
//
//	0     0        == 0
//	0     1        >  0  , < 0.5
//	1     0        == 0.5
//	1     1        >  0.5, < 1.0
func (z *Float) round(sbit uint) {
	if debugFloat && sbit&^1 != 0 {
		panic(fmt.Sprintf("invalid sbit %#x", sbit))
	}

	m := uint(len(z.mant)) // mantissa length in words for current precision
	if m == 0 {
		// ±0, ±Inf, or NaN: z.ord was set by the caller
		return
	}
	z.ord = Equal

	if debugFloat {
		z.validate()
	}

	bits := m * _W                       // available mantissa bits
	n := (uint(z.prec) + (_W - 1)) / _W // mantissa length in words for desired precision

	if bits < uint(z.prec) {
		// mantissa too small => extend exactly
		zm := make(limbs.Nat, n)
		copy(zm[n-m:], z.mant)
		z.mant = zm
		m, bits = n, n*_W
	}

	var rbit uint
	if bits > uint(z.prec) {
		r := bits - uint(z.prec) - 1 // rounding bit position
		rbit = z.mant.Bit(r)
		if sbit == 0 && z.mant.StickyFrom(r) {
			sbit = 1
		}
	}
	// bits == z.prec: the discarded fraction, if any, lies entirely
	// below the rounding bit and is summarized by sbit alone.

	if rbit == 0 && sbit == 0 {
		// mantissa fits exactly => drop extra words
		if m > n {
			copy(z.mant, z.mant[m-n:])
			z.mant = z.mant[:n]
		}
		return
	}

	if z.mode == Exact {
		panic("bigfloat: inexact result with Exact rounding")
	}

	// convert ToXInf-style modes
	mode := z.mode
	switch mode {
	case Floor:
		mode = Down
		if z.neg {
			mode = Up
		}
	case Ceiling:
		mode = Up
		if z.neg {
			mode = Down
		}
	}

	// resolve Nearest, except for an exact tie
	if mode == Nearest {
		switch {
		case rbit == 0:
			mode = Down
		case sbit == 1:
			mode = Up
		}
	}

	// cut off extra words
	if m > n {
		copy(z.mant, z.mant[m-n:])
		z.mant = z.mant[:n]
	}

	t := n*_W - uint(z.prec) // 0 <= t < _W
	lsb := limbs.Word(1) << t

	if mode == Nearest {
		// tie: round to even
		mode = Down
		if z.mant[0]&lsb != 0 {
			mode = Up
		}
	}

	switch mode {
	case Down:
		z.ord = Less
	case Up:
		if limbs.AddVW(z.mant, z.mant, lsb) != 0 {
			// mantissa overflow => shift right and re-set the msb
			limbs.ShrVU(z.mant, z.mant, 1)
			z.mant[n-1] |= 1 << (_W - 1)
			if z.exp == MaxExp {
				neg := z.neg
				z.setInf(neg)
				z.ord = Greater
				if neg {
					z.ord = Less
				}
				return
			}
			z.exp++
		}
		z.ord = Greater
	}

	// zero out trailing bits in the least-significant word
	z.mant[0] &^= lsb - 1

	// z.ord was computed in magnitude terms
	if z.neg {
		z.ord = -z.ord
	}

	if debugFloat {
		z.validate()
	}
}

// Round sets z to the value of x rounded according to mode to prec
// bits and returns z.
func (z *Float) Round(x *Float, prec uint, mode RoundingMode) *Float {
	z.Set(x)
	z.prec = uint32(prec)
	z.mode = mode
	z.round(0)
	return z
}

// fnorm normalizes mantissa m by shifting it to the left such that the
// msb of the most-significant word (msw) is 1. It returns the shift
// amount. It assumes that len(m) != 0.
func fnorm(m limbs.Nat) uint {
	if debugFloat && (len(m) == 0 || m[len(m)-1] == 0) {
		panic("msw of mantissa is 0")
	}
	s := limbs.LeadingZeros(m[len(m)-1])
	if s > 0 {
		c := limbs.ShlVU(m, m, s)
		if debugFloat && c != 0 {
			panic("nlz or ShlVU incorrect")
		}
	}
	return s
}

// setMantExp sets z to the value m * 2**e for a nonzero integer m,
// normalizing the mantissa, then rounds to z.prec with the extra
// sticky bit sbit. It is the common back end of the significand
// kernels.
func (z *Float) setMantExp(m limbs.Nat, e int64, sbit uint) {
	m = m.Norm()
	if debugFloat && len(m) == 0 {
		panic("setMantExp called with 0 mantissa")
	}
	z.mant = m
	s := fnorm(z.mant)
	z.setExp(e + int64(len(m))*_W - int64(s))
	z.round(sbit)
}

// SetUint64 sets z to the (possibly rounded) value of x and returns z.
// If z's precision is 0, it is changed to 64 (and rounding will have
// no effect).
func (z *Float) SetUint64(x uint64) *Float {
	if z.prec == 0 {
		z.prec = 64
	}
	z.neg = false
	if x == 0 {
		z.setZero(false)
		return z
	}
	z.setMantExp(limbs.SetUint64(x), 0, 0)
	return z
}

// SetInt64 sets z to the (possibly rounded) value of x and returns z.
// If z's precision is 0, it is changed to 64 (and rounding will have
// no effect).
func (z *Float) SetInt64(x int64) *Float {
	u := x
	if u < 0 {
		u = -u
	}
	z.SetUint64(uint64(u))
	z.neg = x < 0
	return z
}

// SetFloat64 sets z to the (possibly rounded) value of x and returns
// z. If z's precision is 0, it is changed to 53 (and rounding will
// have no effect).
func (z *Float) SetFloat64(x float64) *Float {
	if z.prec == 0 {
		z.prec = 53
	}
	if math.IsNaN(x) {
		z.setNaN()
		return z
	}
	z.neg = math.Signbit(x) // handle -0 correctly
	if math.IsInf(x, 0) {
		neg := z.neg
		z.setInf(neg)
		return z
	}
	if x == 0 {
		z.setZero(z.neg)
		return z
	}
	// x != 0
	fmant, exp := math.Frexp(x) // get normalized mantissa
	z.setMantExp(limbs.SetUint64(1<<63|math.Float64bits(fmant)<<11), int64(exp)-64, 0)
	return z
}

// SetInt sets z to the (possibly rounded) value of x and returns z.
// If z's precision is 0, it is changed to x.BitLen() (and rounding
// will have no effect).
func (z *Float) SetInt(x *Int) *Float {
	bits := x.BitLen()
	if z.prec == 0 {
		z.prec = uint32(umax(bits, 1))
	}
	if x.Sign() == 0 {
		z.setZero(false)
		return z
	}
	z.neg = x.neg
	z.setMantExp(x.abs.Clone(), 0, 0)
	return z
}

// Set sets z to x, with the same precision as x, and returns z.
func (z *Float) Set(x *Float) *Float {
	if z != x {
		z.neg = x.neg
		z.exp = x.exp
		m := make(limbs.Nat, len(x.mant))
		copy(m, x.mant)
		z.mant = m
		z.prec = x.prec
	}
	z.ord = Equal
	return z
}

// high64 returns the top 64 mantissa bits.
func high64(x limbs.Nat) uint64 {
	if len(x) == 0 {
		return 0
	}
	return uint64(x[len(x)-1])
}

// Float64 returns the float64 value nearest to x and an Ordering
// describing its error relative to x, including the subnormal range.
func (x *Float) Float64() (float64, Ordering) {
	if x.IsNaN() {
		return math.NaN(), Equal
	}
	if x.IsInf(0) {
		sign := 1
		if x.neg {
			sign = -1
		}
		return math.Inf(sign), Equal
	}
	var s uint64
	if x.neg {
		s = 1 << 63
	}
	if len(x.mant) == 0 {
		// ±0
		return math.Float64frombits(s), Equal
	}

	e := int64(x.exp) // value in [2^(e-1), 2^e)
	switch {
	case e > 1024:
		if x.neg {
			return math.Inf(-1), Less
		}
		return math.Inf(1), Greater
	case e >= -1021:
		r := new(Float).Round(x, 53, Nearest)
		if len(r.mant) == 0 || r.exp > 1024 {
			// rounding carried into the Inf range
			if x.neg {
				return math.Inf(-1), Less
			}
			return math.Inf(1), Greater
		}
		ef := uint64(1022+r.exp) & 0x7ff
		m := high64(r.mant) >> 11 & (1<<52 - 1)
		return math.Float64frombits(s | ef<<52 | m), r.ord
	case e >= -1073:
		// subnormal range: the effective precision shrinks with the
		// exponent; the significand becomes a multiple of 2^-1074
		prec := uint(e + 1074)
		r := new(Float).Round(x, prec, Nearest)
		if int64(r.exp) >= -1021 {
			// rounding carried up to the smallest normal value
			return math.Float64frombits(s | 1<<52), r.ord
		}
		k := high64(r.mant) >> (64 - uint(int64(r.exp)+1074))
		return math.Float64frombits(s | k), r.ord
	case e == -1074:
		// between half the smallest subnormal and the smallest
		// subnormal; only exactly 2^-1075 ties, to even, which is zero
		pow2 := x.mant[len(x.mant)-1] == 1<<(_W-1) && !x.mant.StickyFrom(uint(len(x.mant)-1)*_W)
		if pow2 {
			return math.Float64frombits(s), x.signedOrd(Less)
		}
		return math.Float64frombits(s | 1), x.signedOrd(Greater)
	default:
		return math.Float64frombits(s), x.signedOrd(Less)
	}
}

// Abs sets z to |x| (the absolute value of x) and returns z.
func (z *Float) Abs(x *Float) *Float {
	z.Set(x)
	if !z.IsNaN() {
		z.neg = false
	}
	return z
}

// Neg sets z to x with its sign negated, and returns z.
func (z *Float) Neg(x *Float) *Float {
	z.Set(x)
	if !z.IsNaN() {
		z.neg = !z.neg
	}
	return z
}

// Lsh sets z to the rounded x * (1<<s) and returns z.
// If z's precision is 0, it is changed to x's precision.
func (z *Float) Lsh(x *Float, s uint, mode RoundingMode) *Float {
	if z.prec == 0 {
		z.prec = x.prec
	}
	z.Round(x, uint(z.prec), mode)
	if len(z.mant) > 0 {
		z.setExp(int64(z.exp) + int64(s))
	}
	return z
}

// Rsh sets z to the rounded x / (1<<s) and returns z.
// Precision, rounding, and ordering reporting are as for Lsh.
func (z *Float) Rsh(x *Float, s uint, mode RoundingMode) *Float {
	if z.prec == 0 {
		z.prec = x.prec
	}
	z.Round(x, uint(z.prec), mode)
	if len(z.mant) > 0 {
		z.setExp(int64(z.exp) - int64(s))
	}
	return z
}

// ucmp returns -1, 0, or 1, depending on whether |x| < |y|, |x| == |y|,
// or |x| > |y|. x and y must not be 0, an Inf, or NaN.
func (x *Float) ucmp(y *Float) int {
	if debugFloat && (len(x.mant) == 0 || len(y.mant) == 0) {
		panic("ucmp called with 0 argument")
	}

	switch {
	case x.exp < y.exp:
		return -1
	case x.exp > y.exp:
		return 1
	}
	// x.exp == y.exp

	// compare mantissas
	i := len(x.mant)
	j := len(y.mant)
	for i > 0 || j > 0 {
		var xm, ym limbs.Word
		if i > 0 {
			i--
			xm = x.mant[i]
		}
		if j > 0 {
			j--
			ym = y.mant[j]
		}
		switch {
		case xm < ym:
			return -1
		case xm > ym:
			return 1
		}
	}

	return 0
}

// Cmp compares x and y and returns:
//
//	-1 if x <  y
//	 0 if x == y (incl. -0 == 0)
//	+1 if x >  y
//
// Cmp panics if x or y is NaN.
func (x *Float) Cmp(y *Float) int {
	if x.IsNaN() || y.IsNaN() {
		panic("bigfloat: ordered comparison with NaN")
	}

	switch {
	case x.IsInf(+1):
		if y.IsInf(+1) {
			return 0
		}
		return 1
	case x.IsInf(-1):
		if y.IsInf(-1) {
			return 0
		}
		return -1
	case y.IsInf(+1):
		return -1
	case y.IsInf(-1):
		return 1
	}
	// x, y finite

	switch {
	case len(x.mant) == 0:
		// 0 cmp y == -sign(y)
		return -y.Sign()
	case len(y.mant) == 0:
		// x cmp 0 == sign(x)
		return x.Sign()
	}
	// x != 0 && y != 0

	switch {
	case x.neg == y.neg:
		r := x.ucmp(y)
		if x.neg {
			r = -r
		}
		return r
	case x.neg:
		return -1
	default:
		return 1
	}
}

// Sign returns:
//
//	-1 if x <  0
//	 0 if x == ±0 or NaN
//	+1 if x >  0
func (x *Float) Sign() int {
	if len(x.mant) == 0 {
		if x.exp == infExp {
			if x.neg {
				return -1
			}
			return 1
		}
		return 0
	}
	if x.neg {
		return -1
	}
	return 1
}

func umax(x, y uint) uint {
	if x > y {
		return x
	}
	return y
}

func umax32(x, y uint32) uint32 {
	if x > y {
		return x
	}
	return y
}

// canRoundDecide reports whether every value in the open interval
// (m-lo, m+hi), taken in units of m's last place, rounds to the same
// result at precision prec implied by t = m.BitLen() - prec, for every
// rounding mode, with the same Ordering. That holds exactly when the
// interval lies strictly inside one half-ulp cell.
func canRoundDecide(m limbs.Nat, t int64, lo, hi limbs.Nat) bool {
	if t < 2 {
		return false
	}
	half := uint(t - 1)
	r := m.LowBits(half)
	if r.Cmp(lo) <= 0 {
		return false
	}
	if r.Add(hi).Cmp(natOne.ShiftLeft(half)) >= 0 {
		return false
	}
	return true
}
