// Copyright 2020 Aleksandr Demakin. All rights reserved.

package posit

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/avdva/posit/internal/arith"
	"github.com/avdva/posit/internal/bitfield"
	"github.com/avdva/posit/internal/decconv"
)

// P8E0 is an 8-bit posit without exponent bits.
type P8E0 int8

// P8E0 constants.
const (
	P8E0Zero        P8E0 = 0
	P8E0One         P8E0 = 0x40
	P8E0NaR         P8E0 = -0x80
	P8E0Max         P8E0 = 0x7f  // 64
	P8E0Min         P8E0 = -0x7f // -64
	P8E0MinPositive P8E0 = 0x01  // 1/64
	P8E0Epsilon     P8E0 = 0x02  // 1/32
)

var fmtP8E0 = bitfield.P8E0

func (p P8E0) ui() uint32 {
	return uint32(uint8(p))
}

// P8E0FromBits returns a posit with the given bit pattern.
func P8E0FromBits(ui uint8) P8E0 {
	return P8E0(ui)
}

// P8E0FromFloat64 returns the posit nearest to x.
// Infinities and NaNs become NaR, magnitudes beyond Max saturate,
// and non-zero magnitudes below MinPositive become MinPositive.
func P8E0FromFloat64(x float64) P8E0 {
	return P8E0(arith.FromFloat64(fmtP8E0, x))
}

// P8E0FromFloat32 returns the posit nearest to x.
func P8E0FromFloat32(x float32) P8E0 {
	return P8E0FromFloat64(float64(x))
}

// P8E0FromInt32 returns the posit nearest to v.
func P8E0FromInt32(v int32) P8E0 {
	return P8E0(arith.FromSigned(fmtP8E0, v))
}

// P8E0FromInt64 returns the posit nearest to v.
func P8E0FromInt64(v int64) P8E0 {
	return P8E0(arith.FromSigned(fmtP8E0, v))
}

// P8E0FromUint32 returns the posit nearest to v.
func P8E0FromUint32(v uint32) P8E0 {
	return P8E0(arith.FromUnsigned(fmtP8E0, v))
}

// P8E0FromUint64 returns the posit nearest to v.
func P8E0FromUint64(v uint64) P8E0 {
	return P8E0(arith.FromUnsigned(fmtP8E0, v))
}

// P8E0FromDecimal returns the posit nearest to d.
func P8E0FromDecimal(d decimal.Decimal) P8E0 {
	return P8E0(decconv.FromDecimal(fmtP8E0, d))
}

// ParseP8E0 returns the posit nearest to the decimal number in s.
// "NaR" parses as NaR.
func ParseP8E0(s string) (P8E0, error) {
	ui, err := decconv.Parse(fmtP8E0, s)
	return P8E0(ui), err
}

// MustParseP8E0 is like ParseP8E0, but panics on errors.
func MustParseP8E0(s string) P8E0 {
	p, err := ParseP8E0(s)
	if err != nil {
		panic(err)
	}
	return p
}

// Bits returns the bit pattern of p.
func (p P8E0) Bits() uint8 {
	return uint8(p)
}

// IsNaR reports whether p is NaR.
func (p P8E0) IsNaR() bool {
	return p == P8E0NaR
}

// IsZero reports whether p is zero.
func (p P8E0) IsZero() bool {
	return p == P8E0Zero
}

// IsNaN is the same as IsNaR.
func (p P8E0) IsNaN() bool {
	return p.IsNaR()
}

// IsInf is the same as IsNaR: NaR also stands for infinities.
func (p P8E0) IsInf() bool {
	return p.IsNaR()
}

// IsNegative reports whether p is less than zero. NaR is not negative.
func (p P8E0) IsNegative() bool {
	return p < 0 && !p.IsNaR()
}

// Category returns the category of p.
func (p P8E0) Category() Category {
	return category(p.IsZero(), p.IsNaR())
}

// Cmp compares p and other. NaR is less than any other value.
// Returns -1 if p < other, 0 if p == other, 1 if p > other.
func (p P8E0) Cmp(other P8E0) int {
	return cmpInt32(int32(p), int32(other))
}

// Neg returns -p.
func (p P8E0) Neg() P8E0 {
	return P8E0(arith.Neg(fmtP8E0, p.ui()))
}

// Abs returns |p|.
func (p P8E0) Abs() P8E0 {
	return P8E0(arith.Abs(fmtP8E0, p.ui()))
}

// Add returns p+other.
func (p P8E0) Add(other P8E0) P8E0 {
	return P8E0(arith.Add(fmtP8E0, p.ui(), other.ui()))
}

// Sub returns p-other.
func (p P8E0) Sub(other P8E0) P8E0 {
	return P8E0(arith.Sub(fmtP8E0, p.ui(), other.ui()))
}

// Mul returns p*other.
func (p P8E0) Mul(other P8E0) P8E0 {
	return P8E0(arith.Mul(fmtP8E0, p.ui(), other.ui()))
}

// Div returns p/other. Division by zero returns NaR.
func (p P8E0) Div(other P8E0) P8E0 {
	return P8E0(arith.Div(fmtP8E0, p.ui(), other.ui()))
}

// Recip returns 1/p.
func (p P8E0) Recip() P8E0 {
	return P8E0(arith.Recip(fmtP8E0, p.ui()))
}

// Sqrt returns the square root of p. The square root of a negative number is NaR.
func (p P8E0) Sqrt() P8E0 {
	return P8E0(arith.Sqrt(fmtP8E0, p.ui()))
}

// MulAdd returns p*b + c, computed with a single rounding.
func (p P8E0) MulAdd(b, c P8E0) P8E0 {
	var q Q8E0
	q.AddPosit(c)
	q.AddProduct(p, b)
	return q.ToPosit()
}

// Round returns the nearest integer, rounding ties to even.
func (p P8E0) Round() P8E0 {
	return P8E0(arith.RoundToInt(fmtP8E0, p.ui(), arith.HalfEven))
}

// Floor returns the greatest integer less than or equal to p.
func (p P8E0) Floor() P8E0 {
	return P8E0(arith.RoundToInt(fmtP8E0, p.ui(), arith.Floor))
}

// Ceil returns the least integer greater than or equal to p.
func (p P8E0) Ceil() P8E0 {
	return P8E0(arith.RoundToInt(fmtP8E0, p.ui(), arith.Ceil))
}

// Trunc returns the integer part of p.
func (p P8E0) Trunc() P8E0 {
	return P8E0(arith.RoundToInt(fmtP8E0, p.ui(), arith.Trunc))
}

// Float64 returns p as a float64. The conversion is exact, NaR becomes NaN.
func (p P8E0) Float64() float64 {
	return arith.ToFloat64(fmtP8E0, p.ui())
}

// Float32 returns the float32 nearest to p. NaR becomes NaN.
func (p P8E0) Float32() float32 {
	return float32(p.Float64())
}

// Int32 returns p rounded half to even, saturated to the int32 range.
// NaR becomes math.MinInt32.
func (p P8E0) Int32() int32 {
	return arith.ToSigned(fmtP8E0, p.ui(), int32(math.MinInt32), math.MaxInt32)
}

// Int64 returns p rounded half to even, saturated to the int64 range.
// NaR becomes math.MinInt64.
func (p P8E0) Int64() int64 {
	return arith.ToSigned(fmtP8E0, p.ui(), int64(math.MinInt64), math.MaxInt64)
}

// Uint32 returns p rounded half to even, saturated to the uint32 range.
// Negative values become zero, NaR becomes 0x8000_0000.
func (p P8E0) Uint32() uint32 {
	return arith.ToUnsigned(fmtP8E0, p.ui(), uint32(math.MaxUint32), 1<<31)
}

// Uint64 returns p rounded half to even, saturated to the uint64 range.
// Negative values become zero, NaR becomes 0x8000_0000_0000_0000.
func (p P8E0) Uint64() uint64 {
	return arith.ToUnsigned(fmtP8E0, p.ui(), uint64(math.MaxUint64), 1<<63)
}

// Decimal returns the exact decimal value of p. ok is false for NaR.
func (p P8E0) Decimal() (d decimal.Decimal, ok bool) {
	return decconv.ToDecimal(fmtP8E0, p.ui())
}

// String returns the shortest decimal representation of p, or "NaR".
func (p P8E0) String() string {
	return decconv.Format(fmtP8E0, p.ui())
}

// MarshalJSON encodes p as a JSON number. NaR is encoded as the string "NaR".
func (p P8E0) MarshalJSON() ([]byte, error) {
	return decconv.AppendJSON(nil, fmtP8E0, p.ui()), nil
}

// UnmarshalJSON decodes a JSON number or string into p.
func (p *P8E0) UnmarshalJSON(data []byte) error {
	ui, err := decconv.ParseJSON(fmtP8E0, data)
	if err != nil {
		return err
	}
	*p = P8E0(ui)
	return nil
}
