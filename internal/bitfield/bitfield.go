// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package bitfield implements the posit field codec: it splits an N-bit
// pattern into sign, regime, exponent and fraction, and packs those fields
// back into a pattern with round-to-nearest, ties-to-even.
//
// All patterns are passed around as uint32 values holding the N-bit pattern
// in the low bits. Significands are uint64 values with the hidden bit at
// HiddenBit, so that any fraction of a posit up to 32 bits wide fits with
// plenty of room for guard bits.
package bitfield

import (
	"math/bits"

	"github.com/zeebo/errs"
)

// Error is the error class of the package.
var Error = errs.Class("bitfield")

const (
	// MaxBits is the widest supported posit.
	MaxBits = 32
	// MaxES is the widest supported exponent field.
	MaxES = 2
	// HiddenBit is the position of the implied leading one in a significand.
	HiddenBit = 62
)

// Format describes a posit encoding: N bits in total, ES of them for the exponent.
type Format struct {
	N  uint
	ES uint
}

// Standard formats.
var (
	P8E0  = Format{N: 8, ES: 0}
	P16E1 = Format{N: 16, ES: 1}
	P32E2 = Format{N: 32, ES: 2}
)

// NewFormat validates n and es and returns a format.
func NewFormat(n, es int) (Format, error) {
	if n < 2 || n > MaxBits {
		return Format{}, Error.New("width %d is out of range [2, %d]", n, MaxBits)
	}
	if es < 0 || es > MaxES {
		return Format{}, Error.New("exponent size %d is out of range [0, %d]", es, MaxES)
	}
	return Format{N: uint(n), ES: uint(es)}, nil
}

// MustFormat is like NewFormat, but panics on invalid arguments.
func MustFormat(n, es int) Format {
	f, err := NewFormat(n, es)
	if err != nil {
		panic(err)
	}
	return f
}

// Mask has the low N bits set.
func (f Format) Mask() uint32 {
	return uint32(1<<f.N - 1)
}

// NaR returns the "not a real" pattern: only the sign bit set.
func (f Format) NaR() uint32 {
	return 1 << (f.N - 1)
}

// MaxPos returns the pattern of the largest positive posit.
func (f Format) MaxPos() uint32 {
	return f.NaR() - 1
}

// MinPos returns the pattern of the smallest positive posit.
func (f Format) MinPos() uint32 {
	return 1
}

// One returns the pattern of 1.0.
func (f Format) One() uint32 {
	return 1 << (f.N - 2)
}

// MaxScale returns the binary scale of MaxPos, (N-2)*2^ES.
// MinPos has the scale -MaxScale.
func (f Format) MaxScale() int {
	return int(f.N-2) << f.ES
}

// IsNaR reports whether ui is the NaR pattern.
func (f Format) IsNaR(ui uint32) bool {
	return ui&f.Mask() == f.NaR()
}

// IsZero reports whether ui is zero.
func (f Format) IsZero(ui uint32) bool {
	return ui&f.Mask() == 0
}

// IsSpecial reports whether ui is zero or NaR.
func (f Format) IsSpecial(ui uint32) bool {
	return ui&(f.Mask()>>1) == 0
}

// IsNeg reports whether the sign bit of ui is set.
func (f Format) IsNeg(ui uint32) bool {
	return ui&f.NaR() != 0
}

// Neg returns the two's complement of ui. Zero and NaR are their own negations.
func (f Format) Neg(ui uint32) uint32 {
	return -ui & f.Mask()
}

// Abs returns the pattern of |ui|.
func (f Format) Abs(ui uint32) uint32 {
	if f.IsNeg(ui) {
		return f.Neg(ui)
	}
	return ui & f.Mask()
}

// Int32 sign-extends ui, so that patterns can be compared as integers.
func (f Format) Int32(ui uint32) int32 {
	sh := MaxBits - f.N
	return int32(ui<<sh) >> sh
}

// Regime returns the signed regime value k of a positive non-zero pattern,
// the length of the run of identical bits, and the bits following the regime
// terminator, left-justified. If the run consumes all of the non-sign bits,
// there is no terminator and tail is zero.
func (f Format) Regime(ui uint32) (k, run int, tail uint32) {
	x := ui << (MaxBits - f.N + 1)
	if x&(1<<31) != 0 {
		run = bits.LeadingZeros32(^x)
		k = run - 1
	} else {
		run = bits.LeadingZeros32(x)
		k = -run
	}
	return k, run, x << uint(run+1)
}

// Fields is a decoded posit.
type Fields struct {
	Neg bool
	// K is the signed regime value.
	K int
	// RegLen is the number of bits the regime occupies, including the terminator.
	RegLen int
	// Exp holds the exponent bits. Exponent bits cut off by the regime are zeros.
	Exp uint32
	// ExpLen is the number of exponent bits present in the pattern.
	ExpLen int
	// Frac holds the fraction bits, left-justified, without the hidden bit.
	Frac uint32
	// FracLen is the number of fraction bits present in the pattern.
	FracLen int
}

// Scale returns the binary scale of the value, k*2^ES + exp.
func (fl Fields) Scale(es uint) int {
	return fl.K<<es + int(fl.Exp)
}

// Decode splits ui into its fields. ui must be neither zero nor NaR.
func (f Format) Decode(ui uint32) Fields {
	ui &= f.Mask()
	var fl Fields
	if fl.Neg = f.IsNeg(ui); fl.Neg {
		ui = f.Neg(ui)
	}
	k, run, tail := f.Regime(ui)
	fl.K = k
	avail := int(f.N) - 1
	fl.RegLen = run + 1
	if fl.RegLen > avail {
		fl.RegLen = avail
	}
	avail -= fl.RegLen
	fl.ExpLen = int(f.ES)
	if fl.ExpLen > avail {
		fl.ExpLen = avail
	}
	fl.FracLen = avail - fl.ExpLen
	if f.ES > 0 {
		fl.Exp = tail >> (MaxBits - f.ES)
	}
	fl.Frac = tail << f.ES
	return fl
}

// Unpack decodes ui into a sign, a binary scale, and a significand with the
// hidden bit at HiddenBit, so that |value| = sig * 2^(scale-HiddenBit).
// ui must be neither zero nor NaR.
func (f Format) Unpack(ui uint32) (neg bool, scale int, sig uint64) {
	fl := f.Decode(ui)
	return fl.Neg, fl.Scale(f.ES), 1<<HiddenBit | uint64(fl.Frac)<<(HiddenBit-MaxBits)
}

// RegimeBits returns the regime of k, left-justified, and its length in bits,
// including the terminating bit.
// k must be in [-(N-2), N-3].
func (f Format) RegimeBits(k int) (regime uint64, reg int) {
	if k >= 0 {
		return ^uint64(0) << uint(63-k), k + 2
	}
	return 1 << uint(63+k), 1 - k
}

// Pack returns the positive pattern nearest to 1.frac * 2^scale, where frac
// holds the fraction bits left-justified and sticky reports if any bit below
// frac is set. Magnitudes out of range saturate to MaxPos and MinPos.
func (f Format) Pack(scale int, frac uint64, sticky bool) uint32 {
	k := scale >> f.ES
	n := int(f.N)
	switch {
	case k >= n-2:
		return f.MaxPos()
	case k < -(n - 2):
		return f.MinPos()
	}
	exp := uint64(scale - k<<f.ES)
	stream, used := f.RegimeBits(k)
	if f.ES > 0 {
		stream |= exp << uint(64-used-int(f.ES))
	}
	shift := uint(used) + f.ES
	stream |= frac >> shift
	if frac<<(64-shift) != 0 {
		sticky = true
	}
	keep := f.N - 1
	ui := uint32(stream >> (64 - keep))
	bitNPlusOne := stream>>(63-keep)&1 != 0
	bitsMore := sticky || stream<<(keep+1) != 0
	if bitNPlusOne && (bitsMore || ui&1 != 0) {
		ui++
	}
	return ui
}

// Round is Pack followed by applying the sign.
func (f Format) Round(neg bool, scale int, frac uint64, sticky bool) uint32 {
	ui := f.Pack(scale, frac, sticky)
	if neg {
		return f.Neg(ui)
	}
	return ui
}
