// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package quire implements exact fixed-point accumulators for sums of posit
// products.
//
// A quire is a two's complement integer stored as big-endian 64-bit words,
// with an implicit binary point Point bits above the least significant bit.
// Point is chosen so that the square of the smallest positive posit is the
// least significant bit, and the register is wide enough to hold the square
// of the largest posit plus carry guard bits. Products are therefore added
// without dropping a single bit, and only ToPosit rounds.
package quire

import (
	"math/bits"

	"github.com/zeebo/errs"

	"github.com/avdva/posit/internal/bitfield"
	"github.com/avdva/posit/internal/mathutil"
)

const (
	// MaxWords is the largest quire size, in 64-bit words.
	MaxWords = 8
	// GuardBits is the least number of bits above the square of the largest
	// posit in a quire built by ForFormat. Q16E1 has as few.
	GuardBits = 14
)

// Error is the error class of the package.
var Error = errs.Class("quire")

// Layout describes the register of a quire for a posit format.
type Layout struct {
	Format bitfield.Format
	// Words is the number of 64-bit words.
	Words int
	// Point is the bit index of 2^0, counting from the least significant bit.
	Point int
}

// Standard layouts.
var (
	Q8E0  = Layout{Format: bitfield.P8E0, Words: 1, Point: 12}
	Q16E1 = Layout{Format: bitfield.P16E1, Words: 2, Point: 56}
	Q32E2 = Layout{Format: bitfield.P32E2, Words: 8, Point: 240}
)

// ForFormat returns the layout of the quire for f.
// Formats other than the standard ones get a register with
// 2*MaxScale fractional bits and at least GuardBits carry guard bits.
func ForFormat(f bitfield.Format) Layout {
	for _, l := range []Layout{Q8E0, Q16E1, Q32E2} {
		if l.Format == f {
			return l
		}
	}
	point := 2 * f.MaxScale()
	words := (2*point + 2 + GuardBits + 63) / 64
	if words > MaxWords {
		words = MaxWords
	}
	return Layout{Format: f, Words: words, Point: point}
}

// Validate checks that every product of two posits fits into the layout.
func (l Layout) Validate() error {
	if l.Words < 1 || l.Words > MaxWords {
		return Error.New("word count %d is out of range [1, %d]", l.Words, MaxWords)
	}
	maxScale := l.Format.MaxScale()
	if l.Point < 2*maxScale {
		return Error.New("point %d is below the scale of minpos^2", l.Point)
	}
	if l.Point+2*maxScale+2 > 64*l.Words {
		return Error.New("%d words cannot hold maxpos^2", l.Words)
	}
	return nil
}

// IsNaR reports whether q holds the NaR sentinel: only the top bit set.
func (l Layout) IsNaR(q []uint64) bool {
	return q[0] == 1<<63 && mathutil.IsZeroWords(q[1:])
}

// IsZero reports whether q is zero.
func (l Layout) IsZero(q []uint64) bool {
	return mathutil.IsZeroWords(q)
}

// SetNaR sets q to the NaR sentinel.
func (l Layout) SetNaR(q []uint64) {
	l.Clear(q)
	q[0] = 1 << 63
}

// Clear sets q to zero.
func (l Layout) Clear(q []uint64) {
	for i := range q {
		q[i] = 0
	}
}

// Neg negates q in place. NaR stays NaR.
func (l Layout) Neg(q []uint64) {
	if l.IsNaR(q) {
		return
	}
	mathutil.NegWords(q)
}

// AddProduct adds a*b to q exactly, or subtracts it, if sub is set.
// A NaR operand turns q into NaR, and NaR is never left.
func (l Layout) AddProduct(q []uint64, a, b uint32, sub bool) {
	f := l.Format
	switch {
	case l.IsNaR(q):
		return
	case f.IsNaR(a) || f.IsNaR(b):
		l.SetNaR(q)
		return
	case f.IsZero(a) || f.IsZero(b):
		return
	}
	negA, sa, siga := f.Unpack(a)
	negB, sb, sigb := f.Unpack(b)
	hi, lo := bits.Mul64(siga, sigb)
	var t [MaxWords]uint64
	tw := t[:len(q)]
	// hi:lo is the product scaled by 2^(2*HiddenBit).
	mathutil.PlaceWords(tw, hi, lo, sa+sb+l.Point-2*bitfield.HiddenBit)
	if negA != negB != sub {
		mathutil.NegWords(tw)
	}
	mathutil.AddWords(q, tw)
}

// AddPosit adds a to q exactly, or subtracts it, if sub is set.
func (l Layout) AddPosit(q []uint64, a uint32, sub bool) {
	l.AddProduct(q, a, l.Format.One(), sub)
}

// ToPosit rounds q to the nearest posit.
func (l Layout) ToPosit(q []uint64) uint32 {
	f := l.Format
	switch {
	case l.IsZero(q):
		return 0
	case l.IsNaR(q):
		return f.NaR()
	}
	var t [MaxWords]uint64
	tw := t[:len(q)]
	copy(tw, q)
	neg := tw[0]>>63 != 0
	if neg {
		mathutil.NegWords(tw)
	}
	lz := mathutil.LeadingZerosWords(tw)
	scale := 64*len(tw) - 1 - lz - l.Point
	frac, sticky := mathutil.BitsAfter(tw, lz+1)
	return f.Round(neg, scale, frac, sticky)
}
