// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements int-to-string conversion functions.

package bigfloat

import "github.com/dimakogan/bigfloat/internal/limbs"

const digits = "0123456789abcdef"

// String returns the decimal representation of x.
func (x *Int) String() string {
	return x.Text(10)
}

// Text returns the representation of x in the given base,
// for 2 <= base <= 16.
func (x *Int) Text(base int) string {
	if base < 2 || base > 16 {
		panic("bigfloat: invalid base")
	}
	if len(x.abs) == 0 {
		return "0"
	}

	// Divide out the largest power of base that fits a Word; each
	// division peels off a fixed number of digits.
	bb := limbs.Word(base)
	ndigits := 0
	bigBase := limbs.Word(1)
	for bigBase <= ^limbs.Word(0)/bb {
		bigBase *= bb
		ndigits++
	}

	var buf []byte
	m := x.abs.Clone()
	for !m.IsZero() {
		q := make(limbs.Nat, len(m))
		r := limbs.DivWVW(q, 0, m, bigBase)
		m = q.Norm()
		if m.IsZero() {
			for r != 0 {
				buf = append(buf, digits[r%bb])
				r /= bb
			}
		} else {
			for i := 0; i < ndigits; i++ {
				buf = append(buf, digits[r%bb])
				r /= bb
			}
		}
	}
	if x.neg {
		buf = append(buf, '-')
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf)
}

// SetString sets z to the value of s, interpreted in the given base,
// and returns z and a boolean indicating success. If SetString fails,
// the value of z is undefined but the returned value is nil.
//
// The base argument must be 0 or a value between 2 and 16. For base 0,
// a prefix of "0x" or "0X" selects base 16 and "0b" or "0B" base 2;
// otherwise the base is 10. A leading "-" or "+" sign is accepted.
func (z *Int) SetString(s string, base int) (*Int, bool) {
	neg := false
	switch {
	case len(s) > 0 && s[0] == '-':
		neg = true
		s = s[1:]
	case len(s) > 0 && s[0] == '+':
		s = s[1:]
	}

	if base == 0 {
		base = 10
		if len(s) > 2 && s[0] == '0' {
			switch s[1] {
			case 'x', 'X':
				base = 16
				s = s[2:]
			case 'b', 'B':
				base = 2
				s = s[2:]
			}
		}
	}
	if base < 2 || base > 16 || len(s) == 0 {
		return nil, false
	}

	var abs limbs.Nat
	for i := 0; i < len(s); i++ {
		c := s[i]
		var d int
		switch {
		case '0' <= c && c <= '9':
			d = int(c - '0')
		case 'a' <= c && c <= 'f':
			d = int(c-'a') + 10
		case 'A' <= c && c <= 'F':
			d = int(c-'A') + 10
		default:
			return nil, false
		}
		if d >= base {
			return nil, false
		}
		abs = abs.MulWord(limbs.Word(base)).AddWord(limbs.Word(d))
	}

	z.abs = abs
	z.neg = len(abs) > 0 && neg
	return z, true
}
