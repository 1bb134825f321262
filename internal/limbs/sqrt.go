// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the integer square root with remainder. Large
// radicands use the recursive splitting that reduces a 4l-limb root to
// a 2l-limb root plus one division, so the cost is dominated by the
// divisions and multiplications in div.go and mul.go.

package limbs

import "math"

var natOne = Nat{1}

// SqrtRem returns s = floor(sqrt(x)) and the remainder r = x - s*s.
func (x Nat) SqrtRem() (s, r Nat) {
	x = x.Norm()
	switch len(x) {
	case 0:
		return nil, nil
	case 1:
		s0, r0 := sqrtRemWord(x[0])
		return SetUint64(uint64(s0)), SetUint64(uint64(r0))
	}

	// The recursion needs the top limb >= B/4. Shift left by an even
	// amount to normalize, then halve the shift out of the root and
	// recompute the remainder.
	c := LeadingZeros(x[len(x)-1]) / 2
	if c == 0 {
		return sqrtRec(x)
	}
	s1, _ := sqrtRec(x.ShiftLeft(2 * c))
	s = s1.ShiftRight(c)
	r = x.Sub(s.Mul(s))
	return s, r
}

// sqrtRec computes SqrtRem for len(x) >= 2 with x's top limb >= B/4.
// Split x = hi*B^(2l) + a1*B^l + a0; the root of hi gives the top half
// of the result, and one division of the remainder by 2*s1 gives the
// bottom half, off by at most one which the final adjustments repair.
func sqrtRec(x Nat) (s, r Nat) {
	n := len(x)
	if n <= 3 {
		return sqrtRemBits(x)
	}

	l := n / 4
	hi := x[2*l:].Norm()
	a1 := x[l : 2*l].Norm()
	a0 := x[:l].Norm()

	s1, r1 := sqrtRec(hi.Clone())

	q, u := r1.ShiftLeft(uint(l) * W).Add(a1).DivMod(s1.ShiftLeft(1))
	s = s1.ShiftLeft(uint(l) * W).Add(q)

	rhs := u.ShiftLeft(uint(l) * W).Add(a0)
	q2 := q.Mul(q)
	if rhs.Cmp(q2) >= 0 {
		r = rhs.Sub(q2)
	} else {
		r = rhs.Add(s.ShiftLeft(1)).Sub(q2).Sub(natOne)
		s = s.Sub(natOne)
	}
	for {
		t := s.ShiftLeft(1).AddWord(1) // 2s+1
		if r.Cmp(t) < 0 {
			break
		}
		r = r.Sub(t)
		s = s.AddWord(1)
	}
	return s, r
}

// sqrtRemBits is the bit-at-a-time restoring square root, used for
// radicands of at most three limbs.
func sqrtRemBits(x Nat) (s, r Nat) {
	nb := x.BitLen()
	if nb%2 == 1 {
		nb++
	}
	for i := nb; i > 0; i -= 2 {
		two := Word(x.Bit(i-1))<<1 | Word(x.Bit(i-2))
		r = r.ShiftLeft(2).AddWord(two)
		t := s.ShiftLeft(2).AddWord(1)
		if r.Cmp(t) >= 0 {
			r = r.Sub(t)
			s = s.ShiftLeft(1).AddWord(1)
		} else {
			s = s.ShiftLeft(1)
		}
	}
	return s, r
}

// sqrtRemWord returns floor(sqrt(x)) and the remainder for one limb.
func sqrtRemWord(x Word) (s, r Word) {
	s = Word(math.Sqrt(float64(x)))
	if s > 1<<32-1 {
		s = 1<<32 - 1
	}
	for s*s > x {
		s--
	}
	for s < 1<<32-1 && (s+1)*(s+1) <= x {
		s++
	}
	return s, x - s*s
}
