package posit

import (
	"github.com/avdva/posit/internal/arith"
)

// Conversions between posit formats round to nearest, ties to even, and
// saturate like any other operation. Zero and NaR map to zero and NaR.

// ToP16E1 rounds p to a P16E1.
func (p P8E0) ToP16E1() P16E1 {
	return P16E1(arith.Convert(fmtP8E0, fmtP16E1, p.ui()))
}

// ToP32E2 rounds p to a P32E2.
func (p P8E0) ToP32E2() P32E2 {
	return P32E2(arith.Convert(fmtP8E0, fmtP32E2, p.ui()))
}

// ToP8E0 rounds p to a P8E0.
func (p P16E1) ToP8E0() P8E0 {
	return P8E0(arith.Convert(fmtP16E1, fmtP8E0, p.ui()))
}

// ToP32E2 rounds p to a P32E2.
func (p P16E1) ToP32E2() P32E2 {
	return P32E2(arith.Convert(fmtP16E1, fmtP32E2, p.ui()))
}

// ToP8E0 rounds p to a P8E0.
func (p P32E2) ToP8E0() P8E0 {
	return P8E0(arith.Convert(fmtP32E2, fmtP8E0, p.ui()))
}

// ToP16E1 rounds p to a P16E1.
func (p P32E2) ToP16E1() P16E1 {
	return P16E1(arith.Convert(fmtP32E2, fmtP16E1, p.ui()))
}

// FromP8E0 rounds p to the width w.
func (w PxE1Width) FromP8E0(p P8E0) PxE1 {
	return w.wrap(arith.Convert(fmtP8E0, w.format(), p.ui()))
}

// ToP8E0 rounds p to a P8E0.
func (p PxE1) ToP8E0() P8E0 {
	return P8E0(arith.Convert(p.format(), fmtP8E0, p.low()))
}

// FromP16E1 rounds p to the width w.
func (w PxE1Width) FromP16E1(p P16E1) PxE1 {
	return w.wrap(arith.Convert(fmtP16E1, w.format(), p.ui()))
}

// ToP16E1 rounds p to a P16E1.
func (p PxE1) ToP16E1() P16E1 {
	return P16E1(arith.Convert(p.format(), fmtP16E1, p.low()))
}

// FromP32E2 rounds p to the width w.
func (w PxE1Width) FromP32E2(p P32E2) PxE1 {
	return w.wrap(arith.Convert(fmtP32E2, w.format(), p.ui()))
}

// ToP32E2 rounds p to a P32E2.
func (p PxE1) ToP32E2() P32E2 {
	return P32E2(arith.Convert(p.format(), fmtP32E2, p.low()))
}

// FromP8E0 rounds p to the width w.
func (w PxE2Width) FromP8E0(p P8E0) PxE2 {
	return w.wrap(arith.Convert(fmtP8E0, w.format(), p.ui()))
}

// ToP8E0 rounds p to a P8E0.
func (p PxE2) ToP8E0() P8E0 {
	return P8E0(arith.Convert(p.format(), fmtP8E0, p.low()))
}

// FromP16E1 rounds p to the width w.
func (w PxE2Width) FromP16E1(p P16E1) PxE2 {
	return w.wrap(arith.Convert(fmtP16E1, w.format(), p.ui()))
}

// ToP16E1 rounds p to a P16E1.
func (p PxE2) ToP16E1() P16E1 {
	return P16E1(arith.Convert(p.format(), fmtP16E1, p.low()))
}

// FromP32E2 rounds p to the width w.
func (w PxE2Width) FromP32E2(p P32E2) PxE2 {
	return w.wrap(arith.Convert(fmtP32E2, w.format(), p.ui()))
}

// ToP32E2 rounds p to a P32E2.
func (p PxE2) ToP32E2() P32E2 {
	return P32E2(arith.Convert(p.format(), fmtP32E2, p.low()))
}

// FromPxE2 rounds p to the width w.
func (w PxE1Width) FromPxE2(p PxE2) PxE1 {
	return w.wrap(arith.Convert(p.format(), w.format(), p.low()))
}

// FromPxE1 rounds p to the width w.
func (w PxE2Width) FromPxE1(p PxE1) PxE2 {
	return w.wrap(arith.Convert(p.format(), w.format(), p.low()))
}
