// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigfloat

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/dimakogan/bigfloat/internal/limbs"
)

func toBigInt(x *Int) *big.Int {
	z, ok := new(big.Int).SetString(x.String(), 10)
	if !ok {
		panic("bad Int.String output")
	}
	return z
}

func randInt(rnd *rand.Rand, maxBits int) *Int {
	z := new(Int)
	n := rnd.Intn(maxBits)
	for int(z.BitLen()) < n {
		z.abs = z.abs.ShiftLeft(32).AddWord(limbs.Word(rnd.Uint32()))
	}
	if rnd.Intn(2) == 1 {
		z.neg = len(z.abs) > 0
	}
	return z
}

func TestIntArith(t *testing.T) {
	rnd := rand.New(rand.NewSource(90))
	for i := 0; i < 300; i++ {
		x := randInt(rnd, 300)
		y := randInt(rnd, 300)
		bx, by := toBigInt(x), toBigInt(y)

		if got, want := toBigInt(new(Int).Add(x, y)), new(big.Int).Add(bx, by); got.Cmp(want) != 0 {
			t.Fatalf("Add: got %v, want %v", got, want)
		}
		if got, want := toBigInt(new(Int).Sub(x, y)), new(big.Int).Sub(bx, by); got.Cmp(want) != 0 {
			t.Fatalf("Sub: got %v, want %v", got, want)
		}
		if got, want := toBigInt(new(Int).Mul(x, y)), new(big.Int).Mul(bx, by); got.Cmp(want) != 0 {
			t.Fatalf("Mul: got %v, want %v", got, want)
		}
		if got, want := x.Cmp(y), bx.Cmp(by); got != want {
			t.Fatalf("Cmp: got %d, want %d", got, want)
		}
		if y.Sign() != 0 {
			q, r := new(Int).QuoRem(x, y, new(Int))
			wq, wr := new(big.Int).QuoRem(bx, by, new(big.Int))
			if toBigInt(q).Cmp(wq) != 0 || toBigInt(r).Cmp(wr) != 0 {
				t.Fatalf("QuoRem: got %v,%v want %v,%v", toBigInt(q), toBigInt(r), wq, wr)
			}
		}
		if got, want := toBigInt(GCD(x, y)), new(big.Int).GCD(nil, nil, new(big.Int).Abs(bx), new(big.Int).Abs(by)); got.Cmp(want) != 0 {
			if !(bx.Sign() == 0 || by.Sign() == 0) {
				t.Fatalf("GCD: got %v, want %v", got, want)
			}
		}
	}
}

func TestIntGCDZero(t *testing.T) {
	five := NewInt(5)
	zero := NewInt(0)
	if GCD(five, zero).String() != "5" || GCD(zero, five).String() != "5" {
		t.Fatalf("GCD with zero broken")
	}
	if GCD(zero, zero).Sign() != 0 {
		t.Fatalf("GCD(0,0) != 0")
	}
}

func TestIntStringRoundtrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(91))
	for i := 0; i < 100; i++ {
		x := randInt(rnd, 500)
		for _, base := range []int{2, 10, 16} {
			s := x.Text(base)
			z, ok := new(Int).SetString(s, base)
			if !ok || z.Cmp(x) != 0 {
				t.Fatalf("SetString(Text(%d)) roundtrip failed for %s", base, x)
			}
		}
	}
	if _, ok := new(Int).SetString("12g", 16); ok {
		t.Fatalf("SetString accepted a bad digit")
	}
	z, ok := new(Int).SetString("-0x1f", 0)
	if !ok || z.String() != "-31" {
		t.Fatalf("SetString base 0 hex: got %v", z)
	}
}
