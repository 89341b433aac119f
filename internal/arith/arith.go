// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package arith implements posit arithmetic for any bitfield.Format.
//
// Every operation takes and returns N-bit patterns in the low bits of a uint32.
// Operands are decoded into a sign, a scale and a 63-bit significand, combined
// in 64 or 128-bit scratch space, and packed back with a single rounding.
package arith

import (
	"math/bits"

	"github.com/avdva/posit/internal/bitfield"
	"github.com/avdva/posit/internal/mathutil"
)

const hidden = bitfield.HiddenBit

// fracOf drops the hidden bit of a normalized significand and left-justifies the fraction.
func fracOf(sig uint64) uint64 {
	return sig << (64 - hidden)
}

// Neg returns -a.
func Neg(f bitfield.Format, a uint32) uint32 {
	return f.Neg(a)
}

// Abs returns |a|. The absolute value of NaR is NaR.
func Abs(f bitfield.Format, a uint32) uint32 {
	return f.Abs(a)
}

// Add returns a+b.
func Add(f bitfield.Format, a, b uint32) uint32 {
	a, b = a&f.Mask(), b&f.Mask()
	switch {
	case f.IsNaR(a) || f.IsNaR(b):
		return f.NaR()
	case a == 0:
		return b
	case b == 0:
		return a
	}
	neg := f.IsNeg(a)
	ua, ub := f.Abs(a), f.Abs(b)
	if neg == f.IsNeg(b) {
		return addMags(f, ua, ub, neg)
	}
	return subMags(f, ua, ub, neg)
}

// Sub returns a-b.
func Sub(f bitfield.Format, a, b uint32) uint32 {
	if f.IsNaR(b) {
		return f.NaR()
	}
	return Add(f, a, f.Neg(b))
}

// addMags adds two positive non-zero patterns.
func addMags(f bitfield.Format, ua, ub uint32, neg bool) uint32 {
	if ua < ub {
		ua, ub = ub, ua
	}
	_, sa, siga := f.Unpack(ua)
	_, sb, sigb := f.Unpack(ub)
	sigb, sticky := mathutil.ShrSticky(sigb, uint(sa-sb))
	sum := siga + sigb
	if sum>>(hidden+1) != 0 {
		sticky = sticky || sum&1 != 0
		sum >>= 1
		sa++
	}
	return f.Round(neg, sa, fracOf(sum), sticky)
}

// subMags returns ua-ub for two positive non-zero patterns. neg is the sign of ua.
func subMags(f bitfield.Format, ua, ub uint32, neg bool) uint32 {
	if ua == ub {
		return 0
	}
	if ua < ub {
		ua, ub = ub, ua
		neg = !neg
	}
	_, sa, siga := f.Unpack(ua)
	_, sb, sigb := f.Unpack(ub)
	sigb, sticky := mathutil.ShrSticky(sigb, uint(sa-sb))
	diff := siga - sigb
	if sticky {
		// the true difference is between diff-1 and diff.
		diff--
	}
	lz := bits.LeadingZeros64(diff) - (63 - hidden)
	diff <<= uint(lz)
	return f.Round(neg, sa-lz, fracOf(diff), sticky)
}

// Mul returns a*b.
func Mul(f bitfield.Format, a, b uint32) uint32 {
	a, b = a&f.Mask(), b&f.Mask()
	switch {
	case f.IsNaR(a) || f.IsNaR(b):
		return f.NaR()
	case a == 0 || b == 0:
		return 0
	}
	negA, sa, siga := f.Unpack(a)
	negB, sb, sigb := f.Unpack(b)
	scale, sig, sticky := mulSig(sa, siga, sb, sigb)
	return f.Round(negA != negB, scale, fracOf(sig), sticky)
}

// mulSig multiplies two normalized significands, returning a normalized one
// and whether any bit of the exact product was dropped.
func mulSig(sa int, siga uint64, sb int, sigb uint64) (scale int, sig uint64, sticky bool) {
	hi, lo := bits.Mul64(siga, sigb)
	scale = sa + sb
	shift := uint(hidden)
	if hi>>(2*hidden+1-64) != 0 {
		shift++
		scale++
	}
	return scale, hi<<(64-shift) | lo>>shift, lo<<(64-shift) != 0
}

// Div returns a/b. Division by zero returns NaR.
func Div(f bitfield.Format, a, b uint32) uint32 {
	a, b = a&f.Mask(), b&f.Mask()
	switch {
	case f.IsNaR(a) || f.IsNaR(b) || b == 0:
		return f.NaR()
	case a == 0:
		return 0
	}
	negA, sa, siga := f.Unpack(a)
	negB, sb, sigb := f.Unpack(b)
	scale := sa - sb
	var hi, lo uint64
	if siga < sigb {
		hi, lo = siga>>(64-hidden-1), siga<<(hidden+1)
		scale--
	} else {
		hi, lo = siga>>(64-hidden), siga<<hidden
	}
	quo, rem := bits.Div64(hi, lo, sigb)
	return f.Round(negA != negB, scale, fracOf(quo), rem != 0)
}

// Recip returns 1/a.
func Recip(f bitfield.Format, a uint32) uint32 {
	return Div(f, f.One(), a)
}

// Sqrt returns the square root of a. The square root of a negative number is NaR.
func Sqrt(f bitfield.Format, a uint32) uint32 {
	a &= f.Mask()
	switch {
	case f.IsNeg(a):
		return f.NaR()
	case a == 0:
		return 0
	}
	_, scale, sig := f.Unpack(a)
	if scale&1 != 0 {
		sig <<= 1
		scale--
	}
	// sqrt(sig * 2^hidden) has its leading bit at hidden.
	root, exact := mathutil.Sqrt128(sig>>(64-hidden), sig<<hidden)
	return f.Round(false, scale/2, fracOf(root), !exact)
}

// Convert rounds a pattern of format from to format to.
func Convert(from, to bitfield.Format, a uint32) uint32 {
	a &= from.Mask()
	if a == 0 {
		return 0
	}
	if from.IsNaR(a) {
		return to.NaR()
	}
	neg, scale, sig := from.Unpack(a)
	return to.Round(neg, scale, fracOf(sig), false)
}

// Cmp compares a and b as posits. NaR is less than any other value.
func Cmp(f bitfield.Format, a, b uint32) int {
	return mathutil.Int64Sign(int64(f.Int32(a)) - int64(f.Int32(b)))
}
