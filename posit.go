// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package posit implements posits, a tapered fixed-width encoding of real
// numbers, and quires, exact accumulators for sums of posit products.
//
// A posit is an N-bit two's complement integer interpreted as
//
//   sign | regime (run of equal bits + terminator) | exponent (ES bits) | fraction
//
// with value useed^k * 2^exp * 1.fraction, where useed = 2^(2^ES) and k is
// the signed run length of the regime. There are two special values: zero
// (all bits clear) and NaR, "not a real" (only the sign bit set), which
// stands for every undefined or unrepresentable result.
//
// P8E0, P16E1 and P32E2 are the standard widths. PxE1 and PxE2 are families
// of posits of any width from 2 to 32 bits, parametrized at run time.
//
// Arithmetic rounds to nearest, ties to even. Results beyond the largest
// magnitude saturate to Max, and non-zero results never round to zero.
// No operation panics: the only failure signal is NaR, which absorbs
// every operation it takes part in.
package posit

import (
	"github.com/avdva/posit/internal/bitfield"
	"github.com/avdva/posit/internal/decconv"
	"github.com/avdva/posit/internal/mathutil"
)

// Error is the error class of the package. It is only returned when parsing
// text or validating widths; arithmetic reports failures as NaR.
var Error = decconv.Error

// Category classifies a posit.
type Category int

const (
	// CategoryZero is the category of zero.
	CategoryZero Category = iota
	// CategoryNormal is the category of all the real values, except zero.
	CategoryNormal
	// CategoryNaR is the category of NaR.
	CategoryNaR
)

// String returns the name of c.
func (c Category) String() string {
	switch c {
	case CategoryZero:
		return "zero"
	case CategoryNormal:
		return "normal"
	case CategoryNaR:
		return "NaR"
	}
	return "unknown"
}

func category(zero, nar bool) Category {
	switch {
	case zero:
		return CategoryZero
	case nar:
		return CategoryNaR
	}
	return CategoryNormal
}

func cmpInt32(x, y int32) int {
	return mathutil.Int64Sign(int64(x) - int64(y))
}

// familyFormat returns the format of a family member of n bits. Zero means 32 bits.
func familyFormat(n uint8, es uint) bitfield.Format {
	if n == 0 {
		n = bitfield.MaxBits
	}
	return bitfield.Format{N: uint(n), ES: es}
}
