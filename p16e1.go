// Copyright 2020 Aleksandr Demakin. All rights reserved.

package posit

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/avdva/posit/internal/arith"
	"github.com/avdva/posit/internal/bitfield"
	"github.com/avdva/posit/internal/decconv"
)

// P16E1 is a 16-bit posit with 1 exponent bit.
//   15 14                         0
//   _|_____________________________
//   s rrrr...rr effffffffffff
type P16E1 int16

// P16E1 constants.
const (
	P16E1Zero        P16E1 = 0
	P16E1One         P16E1 = 0x4000
	P16E1NaR         P16E1 = -0x8000
	P16E1Max         P16E1 = 0x7fff  // 2^28
	P16E1Min         P16E1 = -0x7fff // -2^28
	P16E1MinPositive P16E1 = 0x0001  // 2^-28
	P16E1Epsilon     P16E1 = 0x0100  // 2^-12
)

var fmtP16E1 = bitfield.P16E1

func (p P16E1) ui() uint32 {
	return uint32(uint16(p))
}

// P16E1FromBits returns a posit with the given bit pattern.
func P16E1FromBits(ui uint16) P16E1 {
	return P16E1(ui)
}

// P16E1FromFloat64 returns the posit nearest to x.
// Infinities and NaNs become NaR, magnitudes beyond Max saturate,
// and non-zero magnitudes below MinPositive become MinPositive.
func P16E1FromFloat64(x float64) P16E1 {
	return P16E1(arith.FromFloat64(fmtP16E1, x))
}

// P16E1FromFloat32 returns the posit nearest to x.
func P16E1FromFloat32(x float32) P16E1 {
	return P16E1FromFloat64(float64(x))
}

// P16E1FromInt32 returns the posit nearest to v.
func P16E1FromInt32(v int32) P16E1 {
	return P16E1(arith.FromSigned(fmtP16E1, v))
}

// P16E1FromInt64 returns the posit nearest to v.
func P16E1FromInt64(v int64) P16E1 {
	return P16E1(arith.FromSigned(fmtP16E1, v))
}

// P16E1FromUint32 returns the posit nearest to v.
func P16E1FromUint32(v uint32) P16E1 {
	return P16E1(arith.FromUnsigned(fmtP16E1, v))
}

// P16E1FromUint64 returns the posit nearest to v.
func P16E1FromUint64(v uint64) P16E1 {
	return P16E1(arith.FromUnsigned(fmtP16E1, v))
}

// P16E1FromDecimal returns the posit nearest to d.
func P16E1FromDecimal(d decimal.Decimal) P16E1 {
	return P16E1(decconv.FromDecimal(fmtP16E1, d))
}

// ParseP16E1 returns the posit nearest to the decimal number in s.
// "NaR" parses as NaR.
func ParseP16E1(s string) (P16E1, error) {
	ui, err := decconv.Parse(fmtP16E1, s)
	return P16E1(ui), err
}

// MustParseP16E1 is like ParseP16E1, but panics on errors.
func MustParseP16E1(s string) P16E1 {
	p, err := ParseP16E1(s)
	if err != nil {
		panic(err)
	}
	return p
}

// Bits returns the bit pattern of p.
func (p P16E1) Bits() uint16 {
	return uint16(p)
}

// IsNaR reports whether p is NaR.
func (p P16E1) IsNaR() bool {
	return p == P16E1NaR
}

// IsZero reports whether p is zero.
func (p P16E1) IsZero() bool {
	return p == P16E1Zero
}

// IsNaN is the same as IsNaR.
func (p P16E1) IsNaN() bool {
	return p.IsNaR()
}

// IsInf is the same as IsNaR: NaR also stands for infinities.
func (p P16E1) IsInf() bool {
	return p.IsNaR()
}

// IsNegative reports whether p is less than zero. NaR is not negative.
func (p P16E1) IsNegative() bool {
	return p < 0 && !p.IsNaR()
}

// Category returns the category of p.
func (p P16E1) Category() Category {
	return category(p.IsZero(), p.IsNaR())
}

// Cmp compares p and other. NaR is less than any other value.
// Returns -1 if p < other, 0 if p == other, 1 if p > other.
func (p P16E1) Cmp(other P16E1) int {
	return cmpInt32(int32(p), int32(other))
}

// Neg returns -p.
func (p P16E1) Neg() P16E1 {
	return P16E1(arith.Neg(fmtP16E1, p.ui()))
}

// Abs returns |p|.
func (p P16E1) Abs() P16E1 {
	return P16E1(arith.Abs(fmtP16E1, p.ui()))
}

// Add returns p+other.
func (p P16E1) Add(other P16E1) P16E1 {
	return P16E1(arith.Add(fmtP16E1, p.ui(), other.ui()))
}

// Sub returns p-other.
func (p P16E1) Sub(other P16E1) P16E1 {
	return P16E1(arith.Sub(fmtP16E1, p.ui(), other.ui()))
}

// Mul returns p*other.
func (p P16E1) Mul(other P16E1) P16E1 {
	return P16E1(arith.Mul(fmtP16E1, p.ui(), other.ui()))
}

// Div returns p/other. Division by zero returns NaR.
func (p P16E1) Div(other P16E1) P16E1 {
	return P16E1(arith.Div(fmtP16E1, p.ui(), other.ui()))
}

// Recip returns 1/p.
func (p P16E1) Recip() P16E1 {
	return P16E1(arith.Recip(fmtP16E1, p.ui()))
}

// Sqrt returns the square root of p. The square root of a negative number is NaR.
func (p P16E1) Sqrt() P16E1 {
	return P16E1(arith.Sqrt(fmtP16E1, p.ui()))
}

// MulAdd returns p*b + c, computed with a single rounding.
func (p P16E1) MulAdd(b, c P16E1) P16E1 {
	var q Q16E1
	q.AddPosit(c)
	q.AddProduct(p, b)
	return q.ToPosit()
}

// Round returns the nearest integer, rounding ties to even.
func (p P16E1) Round() P16E1 {
	return P16E1(arith.RoundToInt(fmtP16E1, p.ui(), arith.HalfEven))
}

// Floor returns the greatest integer less than or equal to p.
func (p P16E1) Floor() P16E1 {
	return P16E1(arith.RoundToInt(fmtP16E1, p.ui(), arith.Floor))
}

// Ceil returns the least integer greater than or equal to p.
func (p P16E1) Ceil() P16E1 {
	return P16E1(arith.RoundToInt(fmtP16E1, p.ui(), arith.Ceil))
}

// Trunc returns the integer part of p.
func (p P16E1) Trunc() P16E1 {
	return P16E1(arith.RoundToInt(fmtP16E1, p.ui(), arith.Trunc))
}

// Float64 returns p as a float64. The conversion is exact, NaR becomes NaN.
func (p P16E1) Float64() float64 {
	return arith.ToFloat64(fmtP16E1, p.ui())
}

// Float32 returns the float32 nearest to p. NaR becomes NaN.
func (p P16E1) Float32() float32 {
	return float32(p.Float64())
}

// Int32 returns p rounded half to even, saturated to the int32 range.
// NaR becomes math.MinInt32.
func (p P16E1) Int32() int32 {
	return arith.ToSigned(fmtP16E1, p.ui(), int32(math.MinInt32), math.MaxInt32)
}

// Int64 returns p rounded half to even, saturated to the int64 range.
// NaR becomes math.MinInt64.
func (p P16E1) Int64() int64 {
	return arith.ToSigned(fmtP16E1, p.ui(), int64(math.MinInt64), math.MaxInt64)
}

// Uint32 returns p rounded half to even, saturated to the uint32 range.
// Negative values become zero, NaR becomes 0x8000_0000.
func (p P16E1) Uint32() uint32 {
	return arith.ToUnsigned(fmtP16E1, p.ui(), uint32(math.MaxUint32), 1<<31)
}

// Uint64 returns p rounded half to even, saturated to the uint64 range.
// Negative values become zero, NaR becomes 0x8000_0000_0000_0000.
func (p P16E1) Uint64() uint64 {
	return arith.ToUnsigned(fmtP16E1, p.ui(), uint64(math.MaxUint64), 1<<63)
}

// Decimal returns the exact decimal value of p. ok is false for NaR.
func (p P16E1) Decimal() (d decimal.Decimal, ok bool) {
	return decconv.ToDecimal(fmtP16E1, p.ui())
}

// String returns the shortest decimal representation of p, or "NaR".
func (p P16E1) String() string {
	return decconv.Format(fmtP16E1, p.ui())
}

// MarshalJSON encodes p as a JSON number. NaR is encoded as the string "NaR".
func (p P16E1) MarshalJSON() ([]byte, error) {
	return decconv.AppendJSON(nil, fmtP16E1, p.ui()), nil
}

// UnmarshalJSON decodes a JSON number or string into p.
func (p *P16E1) UnmarshalJSON(data []byte) error {
	ui, err := decconv.ParseJSON(fmtP16E1, data)
	if err != nil {
		return err
	}
	*p = P16E1(ui)
	return nil
}
