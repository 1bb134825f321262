// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigfloat

import (
	"math/big"
	"math/rand"
	"testing"
)

func TestAgmClassical(t *testing.T) {
	// agm(24, 6) at precision 100:
	// 0xd.754ab9e9f8ac5a0692360241 rounded up under Nearest,
	// one ulp lower under Floor
	x := mkFloat(t, "0x18", 0, 100)
	y := mkFloat(t, "0x6", 0, 100)

	z := &Float{prec: 100}
	z.Agm(x, y)
	want := mkFloat(t, "0xd754ab9e9f8ac5a0692360241", 96, 100)
	if z.Cmp(want) != 0 || z.Ord() != Greater {
		t.Fatalf("agm(24,6) @100 Nearest: ord %s", z.Ord())
	}

	z = &Float{prec: 100, mode: Floor}
	z.Agm(x, y)
	want = mkFloat(t, "0xd754ab9e9f8ac5a0692360240", 96, 100)
	if z.Cmp(want) != 0 || z.Ord() != Less {
		t.Fatalf("agm(24,6) @100 Floor: ord %s", z.Ord())
	}

	// agm(1, 2) at precision 10 is 0x1.750
	z = &Float{prec: 10}
	z.Agm(mkFloat(t, "0x1", 0, 10), mkFloat(t, "0x2", 0, 10))
	if z.Cmp(mkFloat(t, "0x5d4", 10, 11)) != 0 {
		v, _ := z.Float64()
		t.Fatalf("agm(1,2) @10: got %v", v)
	}
}

func TestAgmSpecials(t *testing.T) {
	inf := NewInf(1)
	ninf := NewInf(-1)
	nan := NewNaN()
	var zero Float
	nzero := new(Float).Neg(&zero)
	pos := new(Float).SetInt64(123)
	neg := new(Float).SetInt64(-123)

	check := func(x, y *Float, wantNaN, wantInf, wantZero bool) {
		t.Helper()
		z := new(Float).Agm(x, y)
		switch {
		case wantNaN:
			if !z.IsNaN() {
				t.Fatalf("agm special: expected NaN")
			}
		case wantInf:
			if !z.IsInf(1) {
				t.Fatalf("agm special: expected +Inf")
			}
		case wantZero:
			if !z.isZero() || z.Signbit() {
				t.Fatalf("agm special: expected +0")
			}
		}
		if z.Ord() != Equal {
			t.Fatalf("agm special ord %s", z.Ord())
		}
	}

	check(nan, pos, true, false, false)
	check(pos, nan, true, false, false)
	check(inf, nan, true, false, false)
	check(inf, inf, false, true, false)
	check(inf, ninf, true, false, false)
	check(ninf, ninf, true, false, false)
	check(inf, &zero, true, false, false)
	check(inf, nzero, true, false, false)
	check(&zero, inf, true, false, false)
	check(inf, pos, false, true, false)
	check(pos, inf, false, true, false)
	check(inf, neg, true, false, false)
	check(ninf, pos, true, false, false)
	check(&zero, &zero, false, false, true)
	check(&zero, nzero, false, false, true)
	check(nzero, nzero, false, false, true)
	check(&zero, pos, false, false, true)
	check(pos, nzero, false, false, true)
	check(&zero, neg, false, false, true)
	check(neg, nzero, false, false, true)
	check(neg, pos, true, false, false)
	check(pos, neg, true, false, false)
	check(neg, neg, true, false, false)
}

func TestAgmIdentity(t *testing.T) {
	rnd := rand.New(rand.NewSource(60))
	for i := 0; i < 50; i++ {
		x := new(Float).Abs(randFloat(rnd, 1+uint(rnd.Intn(80))))
		z := new(Float).Agm(x, x)
		if z.Cmp(x) != 0 || z.Ord() != Equal {
			t.Fatalf("agm(x,x) != x")
		}
	}
}

func TestAgmCommutative(t *testing.T) {
	rnd := rand.New(rand.NewSource(61))
	for i := 0; i < 30; i++ {
		x := new(Float).Abs(randFloat(rnd, 1+uint(rnd.Intn(60))))
		y := new(Float).Abs(randFloat(rnd, 1+uint(rnd.Intn(60))))
		y.setExp(int64(x.exp) + int64(rnd.Intn(21)-10))
		mode := allModes[rnd.Intn(len(allModes))]
		a := &Float{prec: 64, mode: mode}
		a.Agm(x, y)
		b := &Float{prec: 64, mode: mode}
		b.Agm(y, x)
		if !sameFloat(a, b) || a.Ord() != b.Ord() {
			t.Fatalf("agm not commutative")
		}
	}
}

func TestAgmBounds(t *testing.T) {
	rnd := rand.New(rand.NewSource(62))
	half := big.NewRat(1, 2)
	for i := 0; i < 30; i++ {
		x := new(Float).Abs(randFloat(rnd, 1+uint(rnd.Intn(60))))
		y := new(Float).Abs(randFloat(rnd, 1+uint(rnd.Intn(60))))
		y.setExp(int64(x.exp) + int64(rnd.Intn(13)-6))
		if x.Cmp(y) == 0 {
			continue
		}
		prec := uint(64)
		z := &Float{prec: uint32(prec)}
		z.Agm(x, y)

		xr, yr := toBigRat(t, x), toBigRat(t, y)
		zr := toBigRat(t, z)
		lo, hi := xr, yr
		if lo.Cmp(hi) > 0 {
			lo, hi = hi, lo
		}
		if zr.Cmp(lo) < 0 || zr.Cmp(hi) > 0 {
			t.Fatalf("agm outside [min, max]")
		}

		// arithmetic-mean bound, allowing one ulp when rounded up
		am := new(big.Rat).Add(xr, yr)
		am.Mul(am, half)
		limit := new(big.Rat).Add(am, ulpRat(z, prec))
		if zr.Cmp(limit) > 0 {
			t.Fatalf("agm above the arithmetic mean")
		}
		// geometric-mean bound: agm^2 >= x*y, with one ulp of rounding
		// slack
		gm2 := new(big.Rat).Mul(xr, yr)
		zhi := new(big.Rat).Add(zr, ulpRat(z, prec))
		zhi.Mul(zhi, zhi)
		if zhi.Cmp(gm2) < 0 {
			t.Fatalf("agm below the geometric mean")
		}
	}
}

func TestAgmOrderingWitness(t *testing.T) {
	// the ordering must match the sign of z - agm: pin it with the
	// classical value at higher precision as the reference
	x := mkFloat(t, "0x18", 0, 200)
	y := mkFloat(t, "0x6", 0, 200)
	ref := &Float{prec: 200}
	ref.Agm(x, y)
	refRat := toBigRat(t, ref)

	rnd := rand.New(rand.NewSource(63))
	for i := 0; i < 20; i++ {
		prec := 10 + uint(rnd.Intn(80))
		mode := allModes[rnd.Intn(len(allModes))]
		z := &Float{prec: uint32(prec), mode: mode}
		z.Agm(x, y)
		zr := toBigRat(t, z)
		// ref is within 2^-197 of the true value, far below an ulp here
		if c := Ordering(zr.Cmp(refRat)); c != z.Ord() {
			t.Fatalf("agm ordering %s but sign vs reference %d", z.Ord(), c)
		}
		switch mode {
		case Floor, Down:
			if z.Ord() == Greater {
				t.Fatalf("agm %s returned Greater", mode)
			}
		case Ceiling, Up:
			if z.Ord() == Less {
				t.Fatalf("agm %s returned Less", mode)
			}
		}
	}
}
