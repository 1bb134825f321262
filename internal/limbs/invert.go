// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the approximate reciprocal that the block-wise
// division in div.go precomputes once per divisor.

package limbs

// InvertApproxScratchLen returns the scratch length the recursion in
// InvertApprox may use for an n-limb divisor.
func InvertApproxScratchLen(n int) int { return 2 * n }

// invertBasecaseThreshold is the size (in limbs) at or below which
// InvertApprox uses the direct division instead of recursing. Any
// reasonable crossover gives the same results.
const invertBasecaseThreshold = 48

// InvertApprox computes an n-limb value i such that
//
//	d * (B^n + i) < B^(2n) <= d * (B^n + i + 1 + e),  e in {0, 1}
//
// for a normalized (top-bit-set) n-limb divisor d, and reports whether
// e == 0 is guaranteed. Small divisors are inverted by one division.
// Larger ones recurse on the top half of the divisor and then correct
// the widened half-size reciprocal: the residue B^(2n)-1 - d*(B^n + i0)
// is measured exactly and folded back as a multiple of d, so every
// return value is the exact floor((B^(2n)-1)/d) - B^n and e == 0
// always holds.
func InvertApprox(d Nat, n int) (Nat, bool) {
	d = d.Norm()
	if len(d) != n {
		panic("limbs: InvertApprox divisor length mismatch")
	}
	if LeadingZeros(d[n-1]) != 0 {
		panic("limbs: InvertApprox requires a normalized divisor")
	}

	if n <= invertBasecaseThreshold {
		return invertBasecase(d, n), true
	}

	k := (n + 1) / 2
	ih, _ := InvertApprox(d[n-k:].Clone(), k)
	i0 := ih.ShiftLeft(uint(n-k) * W)

	total := onesNat(2 * n)
	p := d.ShiftLeft(uint(n) * W).Add(d.Mul(i0))
	var i Nat
	if p.Cmp(total) > 0 {
		over := p.Sub(total)
		dec, rem := divQR(over, d, false)
		if !rem.IsZero() {
			dec = dec.AddWord(1)
		}
		i = i0.Sub(dec)
	} else {
		inc, _ := divQR(total.Sub(p), d, false)
		i = i0.Add(inc)
	}
	return padTo(i, n), true
}

// invertBasecase computes InvertApprox directly from its definition:
// i = floor((B^(2n) - d*B^n - 1) / d). The dividend is built from
// B^(2n)-1 so the leading power of two never needs to materialize.
func invertBasecase(d Nat, n int) Nat {
	num := onesNat(2 * n).Sub(d.ShiftLeft(uint(n) * W))
	q, _ := divQR(num, d, false)
	return padTo(q, n)
}

// onesNat returns the n-limb all-ones value B^n - 1.
func onesNat(n int) Nat {
	z := make(Nat, n)
	for i := range z {
		z[i] = ^Word(0)
	}
	return z
}

// padTo extends x with high zero limbs to exactly n limbs.
func padTo(x Nat, n int) Nat {
	if len(x) == n {
		return x
	}
	z := make(Nat, n)
	copy(z, x)
	return z
}
