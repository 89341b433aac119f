// Copyright 2020 Aleksandr Demakin. All rights reserved.

package posit

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/avdva/posit/internal/arith"
	"github.com/avdva/posit/internal/bitfield"
	"github.com/avdva/posit/internal/decconv"
)

// P32E2 is a 32-bit posit with 2 exponent bits.
// Ordering the values as integers orders them as numbers, NaR being the least.
//   31 30                                                        0
//   _|_____________________________________________________________
//   s rrrr...rr eeffffffffffffffffffffffffffffff
type P32E2 int32

// P32E2 constants.
const (
	P32E2Zero        P32E2 = 0
	P32E2One         P32E2 = 0x4000_0000
	P32E2NaR         P32E2 = -0x8000_0000
	P32E2Max         P32E2 = 0x7fff_ffff  // 2^120
	P32E2Min         P32E2 = -0x7fff_ffff // -2^120
	P32E2MinPositive P32E2 = 0x0000_0001  // 2^-120
	P32E2Epsilon     P32E2 = 0x00a0_0000  // 2^-27, the distance from 1.0 to the next posit
)

var fmtP32E2 = bitfield.P32E2

func (p P32E2) ui() uint32 {
	return uint32(p)
}

// P32E2FromBits returns a posit with the given bit pattern.
func P32E2FromBits(ui uint32) P32E2 {
	return P32E2(ui)
}

// P32E2FromFloat64 returns the posit nearest to x.
// Infinities and NaNs become NaR, magnitudes beyond Max saturate,
// and non-zero magnitudes below MinPositive become MinPositive.
func P32E2FromFloat64(x float64) P32E2 {
	return P32E2(arith.FromFloat64(fmtP32E2, x))
}

// P32E2FromFloat32 returns the posit nearest to x.
func P32E2FromFloat32(x float32) P32E2 {
	return P32E2FromFloat64(float64(x))
}

// P32E2FromInt32 returns the posit nearest to v.
func P32E2FromInt32(v int32) P32E2 {
	return P32E2(arith.FromSigned(fmtP32E2, v))
}

// P32E2FromInt64 returns the posit nearest to v.
func P32E2FromInt64(v int64) P32E2 {
	return P32E2(arith.FromSigned(fmtP32E2, v))
}

// P32E2FromUint32 returns the posit nearest to v.
func P32E2FromUint32(v uint32) P32E2 {
	return P32E2(arith.FromUnsigned(fmtP32E2, v))
}

// P32E2FromUint64 returns the posit nearest to v.
func P32E2FromUint64(v uint64) P32E2 {
	return P32E2(arith.FromUnsigned(fmtP32E2, v))
}

// P32E2FromDecimal returns the posit nearest to d.
func P32E2FromDecimal(d decimal.Decimal) P32E2 {
	return P32E2(decconv.FromDecimal(fmtP32E2, d))
}

// ParseP32E2 returns the posit nearest to the decimal number in s.
// "NaR" parses as NaR.
func ParseP32E2(s string) (P32E2, error) {
	ui, err := decconv.Parse(fmtP32E2, s)
	return P32E2(ui), err
}

// MustParseP32E2 is like ParseP32E2, but panics on errors.
func MustParseP32E2(s string) P32E2 {
	p, err := ParseP32E2(s)
	if err != nil {
		panic(err)
	}
	return p
}

// Bits returns the bit pattern of p.
func (p P32E2) Bits() uint32 {
	return p.ui()
}

// IsNaR reports whether p is NaR.
func (p P32E2) IsNaR() bool {
	return p == P32E2NaR
}

// IsZero reports whether p is zero.
func (p P32E2) IsZero() bool {
	return p == P32E2Zero
}

// IsNaN is the same as IsNaR.
func (p P32E2) IsNaN() bool {
	return p.IsNaR()
}

// IsInf is the same as IsNaR: NaR also stands for infinities.
func (p P32E2) IsInf() bool {
	return p.IsNaR()
}

// IsNegative reports whether p is less than zero. NaR is not negative.
func (p P32E2) IsNegative() bool {
	return p < 0 && !p.IsNaR()
}

// Category returns the category of p.
func (p P32E2) Category() Category {
	return category(p.IsZero(), p.IsNaR())
}

// Cmp compares p and other. NaR is less than any other value.
// Returns -1 if p < other, 0 if p == other, 1 if p > other.
func (p P32E2) Cmp(other P32E2) int {
	return cmpInt32(int32(p), int32(other))
}

// Neg returns -p.
func (p P32E2) Neg() P32E2 {
	return P32E2(arith.Neg(fmtP32E2, p.ui()))
}

// Abs returns |p|.
func (p P32E2) Abs() P32E2 {
	return P32E2(arith.Abs(fmtP32E2, p.ui()))
}

// Add returns p+other.
func (p P32E2) Add(other P32E2) P32E2 {
	return P32E2(arith.Add(fmtP32E2, p.ui(), other.ui()))
}

// Sub returns p-other.
func (p P32E2) Sub(other P32E2) P32E2 {
	return P32E2(arith.Sub(fmtP32E2, p.ui(), other.ui()))
}

// Mul returns p*other.
func (p P32E2) Mul(other P32E2) P32E2 {
	return P32E2(arith.Mul(fmtP32E2, p.ui(), other.ui()))
}

// Div returns p/other. Division by zero returns NaR.
func (p P32E2) Div(other P32E2) P32E2 {
	return P32E2(arith.Div(fmtP32E2, p.ui(), other.ui()))
}

// Recip returns 1/p.
func (p P32E2) Recip() P32E2 {
	return P32E2(arith.Recip(fmtP32E2, p.ui()))
}

// Sqrt returns the square root of p. The square root of a negative number is NaR.
func (p P32E2) Sqrt() P32E2 {
	return P32E2(arith.Sqrt(fmtP32E2, p.ui()))
}

// MulAdd returns p*b + c, computed with a single rounding.
func (p P32E2) MulAdd(b, c P32E2) P32E2 {
	var q Q32E2
	q.AddPosit(c)
	q.AddProduct(p, b)
	return q.ToPosit()
}

// Round returns the nearest integer, rounding ties to even.
func (p P32E2) Round() P32E2 {
	return P32E2(arith.RoundToInt(fmtP32E2, p.ui(), arith.HalfEven))
}

// Floor returns the greatest integer less than or equal to p.
func (p P32E2) Floor() P32E2 {
	return P32E2(arith.RoundToInt(fmtP32E2, p.ui(), arith.Floor))
}

// Ceil returns the least integer greater than or equal to p.
func (p P32E2) Ceil() P32E2 {
	return P32E2(arith.RoundToInt(fmtP32E2, p.ui(), arith.Ceil))
}

// Trunc returns the integer part of p.
func (p P32E2) Trunc() P32E2 {
	return P32E2(arith.RoundToInt(fmtP32E2, p.ui(), arith.Trunc))
}

// Float64 returns p as a float64. The conversion is exact, NaR becomes NaN.
func (p P32E2) Float64() float64 {
	return arith.ToFloat64(fmtP32E2, p.ui())
}

// Float32 returns the float32 nearest to p. NaR becomes NaN.
func (p P32E2) Float32() float32 {
	return float32(p.Float64())
}

// Int32 returns p rounded half to even, saturated to the int32 range.
// NaR becomes math.MinInt32.
func (p P32E2) Int32() int32 {
	return arith.ToSigned(fmtP32E2, p.ui(), int32(math.MinInt32), math.MaxInt32)
}

// Int64 returns p rounded half to even, saturated to the int64 range.
// NaR becomes math.MinInt64.
func (p P32E2) Int64() int64 {
	return arith.ToSigned(fmtP32E2, p.ui(), int64(math.MinInt64), math.MaxInt64)
}

// Uint32 returns p rounded half to even, saturated to the uint32 range.
// Negative values become zero, NaR becomes 0x8000_0000.
func (p P32E2) Uint32() uint32 {
	return arith.ToUnsigned(fmtP32E2, p.ui(), uint32(math.MaxUint32), 1<<31)
}

// Uint64 returns p rounded half to even, saturated to the uint64 range.
// Negative values become zero, NaR becomes 0x8000_0000_0000_0000.
func (p P32E2) Uint64() uint64 {
	return arith.ToUnsigned(fmtP32E2, p.ui(), uint64(math.MaxUint64), 1<<63)
}

// Decimal returns the exact decimal value of p. ok is false for NaR.
func (p P32E2) Decimal() (d decimal.Decimal, ok bool) {
	return decconv.ToDecimal(fmtP32E2, p.ui())
}

// String returns the shortest decimal representation of p, or "NaR".
func (p P32E2) String() string {
	return decconv.Format(fmtP32E2, p.ui())
}

// MarshalJSON encodes p as a JSON number. NaR is encoded as the string "NaR".
func (p P32E2) MarshalJSON() ([]byte, error) {
	return decconv.AppendJSON(nil, fmtP32E2, p.ui()), nil
}

// UnmarshalJSON decodes a JSON number or string into p.
func (p *P32E2) UnmarshalJSON(data []byte) error {
	ui, err := decconv.ParseJSON(fmtP32E2, data)
	if err != nil {
		return err
	}
	*p = P32E2(ui)
	return nil
}
