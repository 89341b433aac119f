package arith

import (
	"math/bits"

	"github.com/avdva/posit/internal/bitfield"
)

// RoundingMode selects how a value is rounded to an integer.
type RoundingMode int

const (
	// HalfEven rounds to the nearest integer, ties to even.
	HalfEven RoundingMode = iota
	// Floor rounds towards negative infinity.
	Floor
	// Ceil rounds towards positive infinity.
	Ceil
	// Trunc rounds towards zero.
	Trunc
)

// intPart splits the magnitude sig * 2^(scale-hidden) into its integer part,
// the first fractional bit, and whether any other fractional bit is set.
// scale must be less than hidden.
func intPart(scale int, sig uint64) (ip uint64, half, rest bool) {
	sh := hidden - scale
	if sh > 64 {
		return 0, false, true
	}
	if sh == 64 {
		return 0, sig>>63 != 0, sig<<1 != 0
	}
	return sig >> uint(sh), sig>>uint(sh-1)&1 != 0, sig<<uint(65-sh) != 0
}

func roundUp(mode RoundingMode, neg bool, ip uint64, half, rest bool) bool {
	switch mode {
	case HalfEven:
		return half && (rest || ip&1 != 0)
	case Floor:
		return neg && (half || rest)
	case Ceil:
		return !neg && (half || rest)
	}
	return false
}

// RoundToInt rounds a to an integral value.
func RoundToInt(f bitfield.Format, a uint32, mode RoundingMode) uint32 {
	a &= f.Mask()
	if f.IsSpecial(a) {
		return a
	}
	neg, scale, sig := f.Unpack(a)
	switch {
	case scale >= int(f.N):
		// no fraction bits are left at this scale.
		return a
	case scale < -1 && mode == HalfEven:
		// |a| < 1/2.
		return 0
	}
	ip, half, rest := intPart(scale, sig)
	if roundUp(mode, neg, ip, half, rest) {
		ip++
	}
	return fromMag(f, ip, neg)
}

// fromMag returns the posit nearest to the integer mag with the given sign.
func fromMag(f bitfield.Format, mag uint64, neg bool) uint32 {
	if mag == 0 {
		return 0
	}
	lz := bits.LeadingZeros64(mag)
	return f.Round(neg, 63-lz, mag<<uint(lz)<<1, false)
}

// toMag rounds |a| half to even to an integer. overflow is set when the result does
// not fit into 64 bits. a must be neither zero nor NaR.
func toMag(f bitfield.Format, a uint32) (mag uint64, neg, overflow bool) {
	neg, scale, sig := f.Unpack(a)
	switch {
	case scale >= 64:
		return 0, neg, true
	case scale >= hidden:
		return sig << uint(scale-hidden), neg, false
	}
	ip, half, rest := intPart(scale, sig)
	if roundUp(HalfEven, neg, ip, half, rest) {
		ip++
	}
	return ip, neg, false
}
