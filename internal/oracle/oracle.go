// Package oracle computes posit values and correctly rounded posits with
// math/big, one bit at a time. It is slow and only used to check the fast
// paths in tests.
package oracle

import (
	"math/big"

	"github.com/avdva/posit/internal/bitfield"
)

var one = big.NewRat(1, 1)

func pow2(e int) *big.Rat {
	if e >= 0 {
		return new(big.Rat).SetInt(new(big.Int).Lsh(big.NewInt(1), uint(e)))
	}
	return new(big.Rat).SetFrac(big.NewInt(1), new(big.Int).Lsh(big.NewInt(1), uint(-e)))
}

// Value returns the exact value of ui, or nil for NaR.
func Value(f bitfield.Format, ui uint32) *big.Rat {
	ui &= f.Mask()
	switch {
	case ui == 0:
		return new(big.Rat)
	case ui == f.NaR():
		return nil
	}
	neg := ui&f.NaR() != 0
	if neg {
		ui = -ui & f.Mask()
	}
	n := int(f.N) - 1
	bit := func(i int) uint32 {
		if i >= n {
			return 0
		}
		return ui >> uint(n-1-i) & 1
	}
	first := bit(0)
	run := 1
	for run < n && bit(run) == first {
		run++
	}
	k := -run
	if first == 1 {
		k = run - 1
	}
	pos := run + 1
	exp := 0
	for i := 0; i < int(f.ES); i++ {
		exp = exp<<1 | int(bit(pos))
		pos++
	}
	frac := new(big.Rat)
	for i := 1; pos < n; i, pos = i+1, pos+1 {
		if bit(pos) != 0 {
			frac.Add(frac, pow2(-i))
		}
	}
	v := frac.Add(frac, one)
	v.Mul(v, pow2(k<<f.ES+exp))
	if neg {
		v.Neg(v)
	}
	return v
}

// Nearest returns the posit nearest to r: the bit stream of r is cut after
// N-1 bits and rounded to nearest, ties to even. Magnitudes beyond the range
// saturate, and non-zero values never round to zero.
func Nearest(f bitfield.Format, r *big.Rat) uint32 {
	if r.Sign() == 0 {
		return 0
	}
	x := new(big.Rat).Abs(r)
	scale := x.Num().BitLen() - x.Denom().BitLen()
	for x.Cmp(pow2(scale)) < 0 {
		scale--
	}
	for x.Cmp(pow2(scale+1)) >= 0 {
		scale++
	}
	n := int(f.N)
	k := scale >> f.ES
	var ui uint32
	switch {
	case k >= n-2:
		ui = f.MaxPos()
	case k < -(n - 2):
		ui = f.MinPos()
	default:
		var stream []uint32
		if k >= 0 {
			for i := 0; i <= k; i++ {
				stream = append(stream, 1)
			}
			stream = append(stream, 0)
		} else {
			for i := 0; i < -k; i++ {
				stream = append(stream, 0)
			}
			stream = append(stream, 1)
		}
		exp := scale - k<<f.ES
		for i := int(f.ES) - 1; i >= 0; i-- {
			stream = append(stream, uint32(exp>>uint(i)&1))
		}
		frac := new(big.Rat).Mul(x, pow2(-scale))
		frac.Sub(frac, one)
		two := big.NewRat(2, 1)
		for len(stream) < n+1 {
			frac.Mul(frac, two)
			if frac.Cmp(one) >= 0 {
				stream = append(stream, 1)
				frac.Sub(frac, one)
			} else {
				stream = append(stream, 0)
			}
		}
		sticky := frac.Sign() != 0
		for _, b := range stream[n:] {
			sticky = sticky || b != 0
		}
		for _, b := range stream[:n-1] {
			ui = ui<<1 | b
		}
		if stream[n-1] != 0 && (sticky || ui&1 != 0) {
			ui++
		}
	}
	if r.Sign() < 0 {
		ui = -ui & f.Mask()
	}
	return ui
}

// Sqrt returns the posit nearest to the square root of r, r >= 0.
func Sqrt(f bitfield.Format, r *big.Rat) uint32 {
	x := new(big.Float).SetPrec(512).SetRat(r)
	x.Sqrt(x)
	res, _ := x.Rat(nil)
	return Nearest(f, res)
}
