// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package limbs implements the word-level and slice-level arithmetic
// primitives that the float significand kernels are built on. Nothing
// in this package knows about floating-point semantics (sign, exponent,
// rounding); it only manipulates fixed-radix-2^W digit vectors.
package limbs

import "math/bits"

// A Word is a single limb (digit) of a multi-precision number in base 2^W.
type Word uint64

// W is the number of bits per Word.
const W = 64

// AddWW returns z1<<W + z0 = x + y + c, with c == 0 or 1 and the
// returned z1 == 0 or 1.
func AddWW(x, y, c Word) (z1, z0 Word) {
	sum, carry := bits.Add64(uint64(x), uint64(y), uint64(c))
	return Word(carry), Word(sum)
}

// SubWW returns z1<<W + z0 = x - y - c, with c == 0 or 1.
func SubWW(x, y, c Word) (z1, z0 Word) {
	diff, borrow := bits.Sub64(uint64(x), uint64(y), uint64(c))
	return Word(borrow), Word(diff)
}

// MulWW returns z1<<W + z0 = x*y, the full 128-bit product of two limbs.
func MulWW(x, y Word) (z1, z0 Word) {
	hi, lo := bits.Mul64(uint64(x), uint64(y))
	return Word(hi), Word(lo)
}

// MulAddWWW returns z1<<W + z0 = x*y + c.
func MulAddWWW(x, y, c Word) (z1, z0 Word) {
	hi, lo := bits.Mul64(uint64(x), uint64(y))
	lo, carry := bits.Add64(lo, uint64(c), 0)
	return Word(hi + carry), Word(lo)
}

// DivWW returns the quotient and remainder of (u1<<W + u0) / v.
// It panics if u1 >= v, which would overflow the Word-sized quotient.
func DivWW(u1, u0, v Word) (q, r Word) {
	if v == 0 {
		panic("limbs: DivWW division by zero")
	}
	if u1 >= v {
		panic("limbs: DivWW overflow: divisor too small for dividend")
	}
	quo, rem := bits.Div64(uint64(u1), uint64(u0), uint64(v))
	return Word(quo), Word(rem)
}

// BitLen returns the number of bits required to represent x; BitLen(0) == 0.
func BitLen(x Word) uint {
	return uint(bits.Len64(uint64(x)))
}

// LeadingZeros returns the number of leading zero bits in x, W when x == 0.
func LeadingZeros(x Word) uint {
	return uint(bits.LeadingZeros64(uint64(x)))
}
