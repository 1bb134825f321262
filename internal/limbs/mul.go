// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements multi-limb multiplication: schoolbook for short
// operands, Karatsuba above a crossover, and the wrap-around product
// mod B^n - 1 used by the block-wise (Barrett) division to fold a
// double-width product back into n limbs by chunk additions instead of
// a division.

package limbs

// karatsubaThreshold is the operand length (in limbs) at which Mul
// switches from the schoolbook loop to Karatsuba recursion.
const karatsubaThreshold = 32

// Mul returns x*y.
func (x Nat) Mul(y Nat) Nat {
	x = x.Norm()
	y = y.Norm()
	if x.IsZero() || y.IsZero() {
		return nil
	}
	if len(x) < len(y) {
		x, y = y, x
	}
	if len(y) < karatsubaThreshold {
		z := make(Nat, len(x)+len(y))
		MulVV(z, x, y)
		return z.Norm()
	}
	return karatsuba(x, y)
}

// MulTo sets z = x*y for len(z) == len(x)+len(y). It picks the same
// algorithm Mul does; z must not overlap x or y.
func MulTo(z, x, y []Word) {
	nx, ny := len(Nat(x).Norm()), len(Nat(y).Norm())
	if nx < karatsubaThreshold || ny < karatsubaThreshold {
		MulVV(z, x, y)
		return
	}
	p := Nat(x).Mul(Nat(y))
	copy(z, p)
	for i := len(p); i < len(z); i++ {
		z[i] = 0
	}
}

// karatsuba multiplies by splitting both operands at the half-length
// of the longer one:
//
//	x*y = z2*B^(2m) + (z0 + z2 - (x1-x0)*(y1-y0))*B^m + z0
//
// computed here in the additive form z1 = (x0+x1)*(y0+y1) - z0 - z2,
// which avoids signed intermediates.
func karatsuba(x, y Nat) Nat {
	m := len(x) / 2
	x0, x1 := x[:m].Norm(), Nat(x[m:]).Norm()
	var y0, y1 Nat
	if len(y) <= m {
		y0, y1 = y, nil
	} else {
		y0, y1 = y[:m].Norm(), Nat(y[m:]).Norm()
	}

	z0 := x0.Mul(y0)
	z2 := x1.Mul(y1)
	z1 := x0.Add(x1).Mul(y0.Add(y1)).Sub(z0).Sub(z2)

	z := z2.ShiftLeft(uint(m) * W).Add(z1)
	z = z.ShiftLeft(uint(m) * W).Add(z0)
	return z
}

// MulModBPowNMinus1 returns x*y mod (B^n - 1), fully reduced to a
// value below B^n - 1. Folding an m-limb value mod B^n - 1 only needs
// additions of its n-limb chunks, so the product of the two folded
// operands is the single full multiplication performed.
func MulModBPowNMinus1(x, y Nat, n int) Nat {
	xf := foldModBPowNMinus1(x, n)
	yf := foldModBPowNMinus1(y, n)
	return foldModBPowNMinus1(xf.Mul(yf), n)
}

// foldModBPowNMinus1 reduces x mod B^n - 1 by summing its n-limb
// chunks (B^n = 1 in this ring) until the result fits n limbs, then
// canonicalizes to [0, B^n-1).
func foldModBPowNMinus1(x Nat, n int) Nat {
	z := x.Norm()
	for len(z) > n {
		lo := z[:n].Norm().Clone()
		z = lo.Add(z[n:].Norm())
	}
	// z < B^n + something tiny after the loop; it may still equal or
	// exceed B^n - 1 by a small amount.
	ones := onesNat(n)
	for z.Cmp(ones) >= 0 {
		z = z.Sub(ones)
	}
	return z
}
