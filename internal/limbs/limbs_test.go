// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package limbs

import (
	"math/big"
	"math/rand"
	"testing"
)

func toBig(x Nat) *big.Int {
	b := make([]big.Word, len(x))
	for i, w := range x {
		b[i] = big.Word(w)
	}
	return new(big.Int).SetBits(b)
}

func fromBig(b *big.Int) Nat {
	bits := b.Bits()
	z := make(Nat, len(bits))
	for i, w := range bits {
		z[i] = Word(w)
	}
	return z.Norm()
}

func randNat(rnd *rand.Rand, n int) Nat {
	z := make(Nat, n)
	for i := range z {
		z[i] = Word(rnd.Uint64())
	}
	if n > 0 && z[n-1] == 0 {
		z[n-1] = 1
	}
	return z.Norm()
}

// randNormalized returns an n-limb value with the top bit set.
func randNormalized(rnd *rand.Rand, n int) Nat {
	z := randNat(rnd, n)
	z = padTo(z, n)
	z[n-1] |= 1 << (W - 1)
	return z
}

func TestNatAddSub(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		x := randNat(rnd, 1+rnd.Intn(10))
		y := randNat(rnd, 1+rnd.Intn(10))
		if x.Cmp(y) < 0 {
			x, y = y, x
		}
		sum := toBig(x.Add(y))
		if want := new(big.Int).Add(toBig(x), toBig(y)); sum.Cmp(want) != 0 {
			t.Fatalf("Add: got %v, want %v", sum, want)
		}
		diff := toBig(x.Sub(y))
		if want := new(big.Int).Sub(toBig(x), toBig(y)); diff.Cmp(want) != 0 {
			t.Fatalf("Sub: got %v, want %v", diff, want)
		}
	}
}

func TestNatShift(t *testing.T) {
	rnd := rand.New(rand.NewSource(2))
	for i := 0; i < 200; i++ {
		x := randNat(rnd, 1+rnd.Intn(6))
		s := uint(rnd.Intn(200))
		if got, want := toBig(x.ShiftLeft(s)), new(big.Int).Lsh(toBig(x), s); got.Cmp(want) != 0 {
			t.Fatalf("ShiftLeft(%d): got %v, want %v", s, got, want)
		}
		if got, want := toBig(x.ShiftRight(s)), new(big.Int).Rsh(toBig(x), s); got.Cmp(want) != 0 {
			t.Fatalf("ShiftRight(%d): got %v, want %v", s, got, want)
		}
	}
}

func TestNatBits(t *testing.T) {
	x := Nat{0x8000000000000001, 0x3}
	if x.BitLen() != 66 {
		t.Fatalf("BitLen: got %d, want 66", x.BitLen())
	}
	if x.Bit(0) != 1 || x.Bit(1) != 0 || x.Bit(63) != 1 || x.Bit(64) != 1 || x.Bit(66) != 0 {
		t.Fatalf("Bit: unexpected values")
	}
	if !x.StickyFrom(1) {
		t.Fatalf("StickyFrom(1): got false")
	}
	if (Nat{0x8000000000000000}).StickyFrom(63) {
		t.Fatalf("StickyFrom(63) of msb-only: got true")
	}
	if got := toBig(x.LowBits(65)); got.Cmp(big.NewInt(0).SetBits([]big.Word{0x8000000000000001, 1})) != 0 {
		t.Fatalf("LowBits(65): got %v", got)
	}
}

func TestMul(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	sizes := []int{1, 2, 3, 31, 32, 33, 64, 100}
	for _, nx := range sizes {
		for _, ny := range sizes {
			x := randNat(rnd, nx)
			y := randNat(rnd, ny)
			got := toBig(x.Mul(y))
			want := new(big.Int).Mul(toBig(x), toBig(y))
			if got.Cmp(want) != 0 {
				t.Fatalf("Mul(%d,%d limbs): got %v, want %v", nx, ny, got, want)
			}
		}
	}
}

func TestMulModBPowNMinus1(t *testing.T) {
	rnd := rand.New(rand.NewSource(4))
	for i := 0; i < 100; i++ {
		n := 1 + rnd.Intn(8)
		x := randNat(rnd, 1+rnd.Intn(2*n))
		y := randNat(rnd, 1+rnd.Intn(2*n))
		got := toBig(MulModBPowNMinus1(x, y, n))
		mod := new(big.Int).Lsh(big.NewInt(1), uint(n)*W)
		mod.Sub(mod, big.NewInt(1))
		want := new(big.Int).Mul(toBig(x), toBig(y))
		want.Mod(want, mod)
		if got.Cmp(want) != 0 {
			t.Fatalf("MulModBPowNMinus1(n=%d): got %v, want %v", n, got, want)
		}
	}
}

func TestTwoLimbInverse(t *testing.T) {
	rnd := rand.New(rand.NewSource(5))
	b := new(big.Int).Lsh(big.NewInt(1), W)
	b3 := new(big.Int).Lsh(big.NewInt(1), 3*W)
	for i := 0; i < 500; i++ {
		d1 := Word(rnd.Uint64()) | 1<<(W-1)
		d0 := Word(rnd.Uint64())
		got := TwoLimbInverse(d1, d0)

		d := toBig(Nat{d0, d1})
		want := new(big.Int).Sub(b3, big.NewInt(1))
		want.Quo(want, d)
		want.Sub(want, b)
		if got != Word(want.Uint64()) {
			t.Fatalf("TwoLimbInverse(%#x, %#x): got %#x, want %#x", d1, d0, got, want)
		}
	}
}

func TestDivThreeByTwo(t *testing.T) {
	rnd := rand.New(rand.NewSource(6))
	for i := 0; i < 500; i++ {
		d1 := Word(rnd.Uint64()) | 1<<(W-1)
		d0 := Word(rnd.Uint64())
		n2 := Word(rnd.Uint64())
		n1 := Word(rnd.Uint64())
		n0 := Word(rnd.Uint64())
		// require (n2, n1) < (d1, d0)
		if n2 > d1 || (n2 == d1 && n1 >= d0) {
			n2 = d1 / 2
		}
		dinv := TwoLimbInverse(d1, d0)
		q, r1, r0 := DivThreeByTwo(n2, n1, n0, d1, d0, dinv)

		num := toBig(Nat{n0, n1, n2})
		den := toBig(Nat{d0, d1})
		wantQ, wantR := new(big.Int).QuoRem(num, den, new(big.Int))
		if q != Word(wantQ.Uint64()) || toBig(Nat{r0, r1}.Norm()).Cmp(wantR) != 0 {
			t.Fatalf("DivThreeByTwo: got q=%#x r=(%#x,%#x), want q=%v r=%v", q, r1, r0, wantQ, wantR)
		}
	}
}

func checkDivMod(t *testing.T, x, y Nat) {
	t.Helper()
	q, r := x.DivMod(y)
	wantQ, wantR := new(big.Int).QuoRem(toBig(x), toBig(y), new(big.Int))
	if toBig(q).Cmp(wantQ) != 0 || toBig(r).Cmp(wantR) != 0 {
		t.Fatalf("DivMod(%d/%d limbs): got q=%v r=%v, want q=%v r=%v",
			len(x), len(y), toBig(q), toBig(r), wantQ, wantR)
	}
}

func TestDivMod(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	// divisor sizes straddling the schoolbook and divide-and-conquer
	// crossovers
	cases := []struct{ nx, ny int }{
		{1, 1}, {2, 1}, {5, 1},
		{2, 2}, {3, 2}, {8, 2},
		{3, 3}, {4, 3}, {7, 3}, {10, 4},
		{20, 10}, {40, 33},
		{70, 65}, {130, 65}, {200, 65}, {140, 70}, {260, 65},
	}
	for _, c := range cases {
		for i := 0; i < 10; i++ {
			x := randNat(rnd, c.nx)
			y := randNat(rnd, c.ny)
			checkDivMod(t, x, y)
		}
	}

	// edge patterns: all-ones dividends, near-power divisors
	n := 66
	ones := onesNat(2 * n)
	checkDivMod(t, ones, onesNat(n))
	pow := padTo(nil, n)
	pow[n-1] = 1 << (W - 1)
	checkDivMod(t, ones, pow)
	checkDivMod(t, ones, pow.AddWord(1))
	checkDivMod(t, pow.ShiftLeft(uint(n)*W), pow.SubWord(1))

	// x < y and x == y
	x := randNat(rnd, 5)
	y := x.ShiftLeft(7).AddWord(3)
	checkDivMod(t, x, y)
	checkDivMod(t, x, x)
}

func TestDivModBarrett(t *testing.T) {
	if testing.Short() {
		t.Skip("large division in -short mode")
	}
	rnd := rand.New(rand.NewSource(8))
	// divisor above muDivThreshold exercises the block-wise
	// reciprocal path, including the Newton recursion in InvertApprox
	x := randNat(rnd, 2*muDivThreshold+57)
	y := randNat(rnd, muDivThreshold+3)
	checkDivMod(t, x, y)
}

func TestInvertApprox(t *testing.T) {
	rnd := rand.New(rand.NewSource(9))
	one := big.NewInt(1)
	for _, n := range []int{1, 2, 3, 7, 31, 48, 49, 60, 97} {
		for i := 0; i < 3; i++ {
			d := randNormalized(rnd, n)
			inv, exact := InvertApprox(d.Clone(), n)
			if len(inv) != n {
				t.Fatalf("InvertApprox(n=%d): result has %d limbs", n, len(inv))
			}

			bd := toBig(d)
			bn := new(big.Int).Lsh(one, uint(n)*W)
			b2n := new(big.Int).Lsh(one, 2*uint(n)*W)
			v := new(big.Int).Add(bn, toBig(inv))

			lo := new(big.Int).Mul(bd, v)
			if lo.Cmp(b2n) >= 0 {
				t.Fatalf("InvertApprox(n=%d): d*(B^n+i) >= B^2n", n)
			}
			hiSlack := int64(1)
			if exact {
				hiSlack = 0
			}
			hi := new(big.Int).Mul(bd, new(big.Int).Add(v, big.NewInt(1+hiSlack)))
			if hi.Cmp(b2n) < 0 {
				t.Fatalf("InvertApprox(n=%d): d*(B^n+i+1+e) < B^2n", n)
			}
		}
	}
}

func TestDivApprox(t *testing.T) {
	rnd := rand.New(rand.NewSource(10))
	for _, n := range []int{1, 2, 5, 20, 50} {
		for i := 0; i < 20; i++ {
			y := randNormalized(rnd, n)
			x := padTo(randNat(rnd, 2*n), 2*n)
			got := toBig(DivApprox(x.Clone(), y.Clone()))
			want := new(big.Int).Quo(toBig(x), toBig(y))
			diff := new(big.Int).Sub(want, got)
			if diff.Sign() < 0 || diff.Cmp(big.NewInt(5)) > 0 {
				t.Fatalf("DivApprox(n=%d): estimate off by %v", n, diff)
			}
		}
	}
}

func TestSqrtRem(t *testing.T) {
	rnd := rand.New(rand.NewSource(11))
	for _, n := range []int{1, 2, 3, 4, 5, 8, 16, 33} {
		for i := 0; i < 20; i++ {
			x := randNat(rnd, n)
			s, r := x.SqrtRem()
			bs := new(big.Int).Sqrt(toBig(x))
			if toBig(s).Cmp(bs) != 0 {
				t.Fatalf("SqrtRem(%d limbs): root %v, want %v", n, toBig(s), bs)
			}
			want := new(big.Int).Sub(toBig(x), new(big.Int).Mul(bs, bs))
			if toBig(r).Cmp(want) != 0 {
				t.Fatalf("SqrtRem(%d limbs): rem %v, want %v", n, toBig(r), want)
			}
		}
	}

	// perfect squares and their neighbors
	for i := 0; i < 50; i++ {
		v := randNat(rnd, 1+rnd.Intn(4))
		sq := v.Mul(v)
		s, r := sq.SqrtRem()
		if s.Cmp(v) != 0 || !r.IsZero() {
			t.Fatalf("SqrtRem of square: got s=%v r=%v, want s=%v r=0", toBig(s), toBig(r), toBig(v))
		}
		s, r = sq.AddWord(1).SqrtRem()
		if s.Cmp(v) != 0 || toBig(r).Cmp(big.NewInt(1)) != 0 {
			t.Fatalf("SqrtRem of square+1: got s=%v r=%v", toBig(s), toBig(r))
		}
	}

	if s, r := Nat(nil).SqrtRem(); !s.IsZero() || !r.IsZero() {
		t.Fatalf("SqrtRem(0): got %v, %v", s, r)
	}
}
