// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements multi-limb division. The quotient engine is
// built in layers: a single-limb inverse, the two-limb inverse used to
// divide a three-limb window by a two-limb divisor, schoolbook long
// division driven by that step, divide-and-conquer recursion on the
// schoolbook base, and block-wise division with a precomputed
// approximate reciprocal for very large divisors.

package limbs

const debugLimbs = true // enable consistency checks

// Algorithm crossovers, in divisor limbs. Any value in a wide range is
// correct; these only trade one loop for another.
const (
	dcDivThreshold = 64  // schoolbook -> divide-and-conquer
	muDivThreshold = 512 // divide-and-conquer -> block-wise reciprocal
)

// reciprocalWord returns floor((B^2 - 1) / d) - B for a single limb d
// with its high bit set.
func reciprocalWord(d Word) Word {
	q, _ := DivWW(^d, ^Word(0), d)
	return q
}

// TwoLimbInverse computes v = floor((B^3 - 1) / D) - B for the
// two-limb divisor D = d1*B + d0, d1's top bit set. It is called once
// per divisor and reused for every subsequent quotient limb. The
// refinement starts from the one-limb inverse of d1 and folds in d0
// with at most four decrements.
func TwoLimbInverse(d1, d0 Word) Word {
	if debugLimbs && LeadingZeros(d1) != 0 {
		panic("limbs: TwoLimbInverse requires a normalized divisor")
	}
	v := reciprocalWord(d1)
	p := d1*v + d0
	if p < d0 {
		v--
		if p >= d1 {
			v--
			p -= d1
		}
		p -= d1
	}
	t1, t0 := MulWW(d0, v)
	p += t1
	if p < t1 {
		v--
		if p > d1 || (p == d1 && t0 >= d0) {
			v--
		}
	}
	return v
}

// DivThreeByTwo divides the three-limb value (n2, n1, n0) by the
// normalized two-limb divisor (d1, d0), given dinv = TwoLimbInverse(d1, d0).
// It requires (n2, n1) < (d1, d0) and returns the one-limb quotient and
// the two-limb remainder.
func DivThreeByTwo(n2, n1, n0, d1, d0, dinv Word) (q, r1, r0 Word) {
	q, q0 := MulWW(n2, dinv)
	c, q0 := AddWW(q0, n1, 0)
	q += n2 + c

	r1 = n1 - d1*q
	b, r0 := SubWW(n0, d0, 0)
	r1 = r1 - d1 - b
	t1, t0 := MulWW(d0, q)
	b, r0 = SubWW(r0, t0, 0)
	r1 = r1 - t1 - b

	q++
	if r1 >= q0 {
		q--
		c, r0 = AddWW(r0, d0, 0)
		r1 += d1 + c
	}
	if r1 >= d1 && (r1 > d1 || r0 >= d0) {
		q++
		b, r0 = SubWW(r0, d0, 0)
		r1 = r1 - d1 - b
	}
	return
}

// divRem2 divides np by the normalized two-limb divisor (d1, d0),
// writing the len(np)-2 quotient limbs to q. It returns the quotient's
// high bit and the two-limb remainder.
func divRem2(q, np []Word, d1, d0, dinv Word) (qh, r1, r0 Word) {
	m := len(np) - 2
	r1, r0 = np[m+1], np[m]
	if r1 > d1 || (r1 == d1 && r0 >= d0) {
		qh = 1
		b, t := SubWW(r0, d0, 0)
		r0 = t
		r1 = r1 - d1 - b
	}
	for i := m - 1; i >= 0; i-- {
		q[i], r1, r0 = DivThreeByTwo(r1, r0, np[i], d1, d0, dinv)
	}
	return
}

// sbDivQR divides np (len m+n) by the normalized divisor dp
// (len n >= 3), writing the m quotient limbs to q and leaving the
// remainder in np[:n]. It returns the quotient's high bit. Each step
// estimates one quotient limb from the top three remainder limbs via
// dinv, subtracts the scaled divisor, and repairs the rare
// one-too-large estimate by adding the divisor back.
func sbDivQR(q, np, dp []Word, dinv Word) (qh Word) {
	n := len(dp)
	m := len(np) - n

	if CmpVV(np[m:m+n], dp) >= 0 {
		qh = 1
		SubVV(np[m:m+n], np[m:m+n], dp)
	}

	d1, d0 := dp[n-1], dp[n-2]
	n1 := np[m+n-1]

	for j := m - 1; j >= 0; j-- {
		var qw Word
		if n1 == d1 && np[j+n-1] == d0 {
			qw = ^Word(0)
			SubMulVVW(np[j:j+n], dp, qw)
			n1 = np[j+n-1]
		} else {
			var n0 Word
			qw, n1, n0 = DivThreeByTwo(n1, np[j+n-1], np[j+n-2], d1, d0, dinv)

			cy := SubMulVVW(np[j:j+n-2], dp[:n-2], qw)

			var cy1 Word
			if n0 < cy {
				cy1 = 1
			}
			n0 -= cy
			cy = 0
			if n1 < cy1 {
				cy = 1
			}
			n1 -= cy1
			np[j+n-2] = n0

			if cy != 0 {
				n1 += d1 + AddVV(np[j:j+n-1], np[j:j+n-1], dp[:n-1])
				qw--
			}
		}
		q[j] = qw
	}
	np[n-1] = n1
	return qh
}

// dcDivQRN divides the 2n-limb np by the normalized n-limb dp,
// writing n quotient limbs to q and leaving the remainder in np[:n].
// tp is 2n limbs of scratch. The high half of the quotient comes from
// recursing on the top limbs of dividend and divisor; the partial
// quotient times the low divisor is then subtracted before recursing
// on the low half.
func dcDivQRN(q, np, dp []Word, dinv Word, tp []Word) (qh Word) {
	n := len(dp)
	lo := n >> 1
	hi := n - lo

	if hi < dcDivThreshold {
		qh = sbDivQR(q[lo:lo+hi], np[2*lo:2*lo+2*hi], dp[lo:], dinv)
	} else {
		qh = dcDivQRN(q[lo:lo+hi], np[2*lo:2*lo+2*hi], dp[lo:], dinv, tp)
	}

	MulTo(tp[:n], q[lo:lo+hi], dp[:lo])
	cy := SubVV(np[lo:lo+n], np[lo:lo+n], tp[:n])
	if qh != 0 {
		cy += SubVV(np[n:n+lo], np[n:n+lo], dp[:lo])
	}
	for cy != 0 {
		qh -= SubVW(q[lo:lo+hi], q[lo:lo+hi], 1)
		cy -= AddVV(np[lo:lo+n], np[lo:lo+n], dp)
	}

	var ql Word
	if lo < dcDivThreshold {
		ql = sbDivQR(q[:lo], np[hi:hi+2*lo], dp[hi:], dinv)
	} else {
		ql = dcDivQRN(q[:lo], np[hi:hi+2*lo], dp[hi:], dinv, tp)
	}

	MulTo(tp[:n], dp[:hi], q[:lo])
	cy = SubVV(np[:n], np[:n], tp[:n])
	if ql != 0 {
		cy += SubVV(np[lo:lo+hi], np[lo:lo+hi], dp[:hi])
	}
	for cy != 0 {
		ql -= SubVW(q[:lo], q[:lo], 1)
		cy -= AddVV(np[:n], np[:n], dp)
	}
	if debugLimbs && ql != 0 {
		panic("limbs: dcDivQRN low quotient overflow")
	}
	return qh
}

// barrettBlock divides the 2n-limb window by the normalized n-limb dp
// using the precomputed approximate reciprocal inv (from InvertApprox).
// It writes the n quotient limbs to qb, leaves the remainder in
// window[:n], and returns the quotient's high bit (possible only
// before the window's top half has been reduced below dp).
//
// The estimate t = xhi + floor(xhi*inv / B^n) undershoots the true
// quotient by less than 6; the remainder is recovered with wrap-around
// products mod B^(n+2)-1, which is big enough to hold it exactly, and
// the final gap is closed by repeated subtraction.
func barrettBlock(qb, window, dp []Word, inv Nat) (qh Word) {
	n := len(dp)
	if CmpVV(window[n:], dp) >= 0 {
		qh = 1
		SubVV(window[n:], window[n:], dp)
	}
	xhi := Nat(window[n:]).Norm().Clone()
	t := xhi.Mul(inv).ShiftRight(uint(n) * W).Add(xhi)

	m := n + 2
	d := Nat(dp).Norm()
	p := MulModBPowNMinus1(t, d, m)
	wf := foldModBPowNMinus1(Nat(window).Norm(), m)
	var r Nat
	if wf.Cmp(p) >= 0 {
		r = wf.Sub(p)
	} else {
		r = wf.Add(onesNat(m)).Sub(p)
	}
	adjust := 0
	for r.Cmp(d) >= 0 {
		r = r.Sub(d)
		t = t.AddWord(1)
		adjust++
	}
	if debugLimbs && adjust > 8 {
		panic("limbs: barrettBlock correction out of bounds")
	}

	copy(qb, t)
	for i := len(t); i < n; i++ {
		qb[i] = 0
	}
	copy(window, r)
	for i := len(r); i < 2*n; i++ {
		window[i] = 0
	}
	return qh
}

// DivMod returns the quotient and remainder of x / y (y != 0),
// dispatching on the divisor size.
func (x Nat) DivMod(y Nat) (q, r Nat) {
	return divQR(x, y, true)
}

// divQR is DivMod with the block-wise reciprocal path optionally
// disabled; InvertApprox's own correction divisions run with it off so
// reciprocal construction never recurses through itself.
func divQR(x, y Nat, allowBarrett bool) (q, r Nat) {
	y = y.Norm()
	if y.IsZero() {
		panic("limbs: division by zero")
	}
	x = x.Norm()
	if x.Cmp(y) < 0 {
		return nil, x.Clone()
	}
	if len(y) == 1 {
		qq := make(Nat, len(x))
		rr := DivWVW(qq, 0, x, y[0])
		return qq.Norm(), SetUint64(uint64(rr))
	}

	// Shift so the divisor's top limb has its high bit set; quotient
	// digits estimated from the top limbs are then nearly exact.
	shift := LeadingZeros(y[len(y)-1])
	n := len(y)
	dp := make(Nat, n)
	ShlVU(dp, y, shift)
	np := make(Nat, len(x)+1)
	np[len(x)] = ShlVU(np[:len(x)], x, shift)

	if n == 2 {
		dinv := TwoLimbInverse(dp[1], dp[0])
		qq := make(Nat, len(np)-1)
		qh, r1, r0 := divRem2(qq[:len(np)-2], np, dp[1], dp[0], dinv)
		qq[len(np)-2] = qh
		return qq.Norm(), Nat{r0, r1}.Norm().ShiftRight(shift)
	}

	dinv := TwoLimbInverse(dp[n-1], dp[n-2])
	m := len(np) - n

	if n < dcDivThreshold || m < n {
		qq := make(Nat, m+1)
		qq[m] = sbDivQR(qq[:m], np, dp, dinv)
		return qq.Norm(), np[:n].Norm().ShiftRight(shift)
	}

	// Large divisor: walk the dividend in n-limb blocks from the top,
	// dividing a 2n-limb window per block.
	b := (m + n - 1) / n
	qp := make(Nat, b*n+1)
	xp := make(Nat, b*n+n)
	copy(xp, np)

	useBarrett := allowBarrett && n >= muDivThreshold
	var inv Nat
	var tp []Word
	if useBarrett {
		inv, _ = InvertApprox(dp.Clone(), n)
	} else {
		tp = make([]Word, 2*n)
	}

	for i := b - 1; i >= 0; i-- {
		window := xp[i*n : i*n+2*n]
		var qh Word
		if useBarrett {
			qh = barrettBlock(qp[i*n:i*n+n], window, dp, inv)
		} else {
			qh = dcDivQRN(qp[i*n:i*n+n], window, dp, dinv, tp)
		}
		if qh != 0 {
			if debugLimbs && i != b-1 {
				panic("limbs: divQR block quotient overflow")
			}
			qp[b*n] = qh
		}
	}
	return qp.Norm(), xp[:n].Norm().ShiftRight(shift)
}

// DivApprox returns an underestimate of floor(x / y) for a normalized
// divisor y: the result t satisfies t <= floor(x/y) <= t + 5. x must
// be exactly 2*len(y) limbs. One reciprocal and one half-width product
// replace the full division; callers track the 5-unit slack.
func DivApprox(x, y Nat) Nat {
	n := len(y)
	if debugLimbs {
		if len(x) != 2*n {
			panic("limbs: DivApprox dividend must be twice the divisor length")
		}
		if LeadingZeros(y[n-1]) != 0 {
			panic("limbs: DivApprox requires a normalized divisor")
		}
	}
	inv, _ := InvertApprox(y.Clone(), n)
	xhi := x[n:].Norm().Clone()
	return xhi.Mul(inv).ShiftRight(uint(n) * W).Add(xhi)
}
