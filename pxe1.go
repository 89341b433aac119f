package posit

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/avdva/posit/internal/arith"
	"github.com/avdva/posit/internal/bitfield"
	"github.com/avdva/posit/internal/decconv"
	"github.com/avdva/posit/internal/quire"
)

// PxE1Width is a validated width of PxE1 posits.
// The zero value is the 32-bit width.
type PxE1Width struct {
	n uint8
}

// NewPxE1Width returns the width of n-bit posits with 1 exponent bit.
// n must be in [2, 32].
func NewPxE1Width(n int) (PxE1Width, error) {
	f, err := bitfield.NewFormat(n, 1)
	if err != nil {
		return PxE1Width{}, Error.Wrap(err)
	}
	return PxE1Width{n: uint8(f.N)}, nil
}

// MustPxE1Width is like NewPxE1Width, but panics on invalid widths.
func MustPxE1Width(n int) PxE1Width {
	w, err := NewPxE1Width(n)
	if err != nil {
		panic(err)
	}
	return w
}

func (w PxE1Width) format() bitfield.Format {
	return familyFormat(w.n, 1)
}

// N returns the number of bits.
func (w PxE1Width) N() int {
	return int(w.format().N)
}

func (w PxE1Width) wrap(ui uint32) PxE1 {
	f := w.format()
	return PxE1{ui: ui << (bitfield.MaxBits - f.N), n: uint8(f.N)}
}

// FromBits returns a posit with the pattern in the low N bits of ui.
func (w PxE1Width) FromBits(ui uint32) PxE1 {
	return w.wrap(ui & w.format().Mask())
}

// Zero returns zero.
func (w PxE1Width) Zero() PxE1 {
	return w.wrap(0)
}

// One returns 1.
func (w PxE1Width) One() PxE1 {
	return w.wrap(w.format().One())
}

// NaR returns NaR.
func (w PxE1Width) NaR() PxE1 {
	return w.wrap(w.format().NaR())
}

// Max returns the largest posit.
func (w PxE1Width) Max() PxE1 {
	return w.wrap(w.format().MaxPos())
}

// Min returns the most negative posit.
func (w PxE1Width) Min() PxE1 {
	f := w.format()
	return w.wrap(f.Neg(f.MaxPos()))
}

// MinPositive returns the smallest positive posit.
func (w PxE1Width) MinPositive() PxE1 {
	return w.wrap(w.format().MinPos())
}

// FromFloat64 returns the posit nearest to x.
func (w PxE1Width) FromFloat64(x float64) PxE1 {
	return w.wrap(arith.FromFloat64(w.format(), x))
}

// FromInt64 returns the posit nearest to v.
func (w PxE1Width) FromInt64(v int64) PxE1 {
	return w.wrap(arith.FromSigned(w.format(), v))
}

// FromUint64 returns the posit nearest to v.
func (w PxE1Width) FromUint64(v uint64) PxE1 {
	return w.wrap(arith.FromUnsigned(w.format(), v))
}

// FromDecimal returns the posit nearest to d.
func (w PxE1Width) FromDecimal(d decimal.Decimal) PxE1 {
	return w.wrap(decconv.FromDecimal(w.format(), d))
}

// Parse returns the posit nearest to the decimal number in s.
func (w PxE1Width) Parse(s string) (PxE1, error) {
	ui, err := decconv.Parse(w.format(), s)
	if err != nil {
		return PxE1{}, err
	}
	return w.wrap(ui), nil
}

// Quire returns an empty quire for posits of width w.
func (w PxE1Width) Quire() QxE1 {
	return QxE1{n: w.n}
}

// PxE1 is a posit with 1 exponent bit and a width from 2 to 32 bits, chosen at run time.
// The zero value is a 32-bit zero.
//
// The pattern is stored left-justified: a narrow posit padded with zero bits
// is the 32-bit posit of the same value, so values of different widths
// compare as numbers.
type PxE1 struct {
	ui uint32
	n  uint8
}

// Width returns the width of p.
func (p PxE1) Width() PxE1Width {
	return PxE1Width{n: p.n}
}

func (p PxE1) format() bitfield.Format {
	return familyFormat(p.n, 1)
}

// low returns the pattern in the low bits.
func (p PxE1) low() uint32 {
	return p.ui >> (bitfield.MaxBits - p.format().N)
}

// of returns other converted to the width of p.
func (p PxE1) of(other PxE1) uint32 {
	if p.format() == other.format() {
		return other.low()
	}
	return arith.Convert(other.format(), p.format(), other.low())
}

// Convert rounds p to the width w.
func (p PxE1) Convert(w PxE1Width) PxE1 {
	return w.wrap(arith.Convert(p.format(), w.format(), p.low()))
}

// Bits returns the pattern of p in the low N bits.
func (p PxE1) Bits() uint32 {
	return p.low()
}

// IsNaR reports whether p is NaR.
func (p PxE1) IsNaR() bool {
	return p.ui == 1<<31
}

// IsZero reports whether p is zero.
func (p PxE1) IsZero() bool {
	return p.ui == 0
}

// IsNegative reports whether p is less than zero. NaR is not negative.
func (p PxE1) IsNegative() bool {
	return int32(p.ui) < 0 && !p.IsNaR()
}

// Category returns the category of p.
func (p PxE1) Category() Category {
	return category(p.IsZero(), p.IsNaR())
}

// Cmp compares p and other, which may have different widths.
// NaR is less than any other value.
func (p PxE1) Cmp(other PxE1) int {
	return cmpInt32(int32(p.ui), int32(other.ui))
}

// Neg returns -p.
func (p PxE1) Neg() PxE1 {
	return p.Width().wrap(arith.Neg(p.format(), p.low()))
}

// Abs returns |p|.
func (p PxE1) Abs() PxE1 {
	return p.Width().wrap(arith.Abs(p.format(), p.low()))
}

// Add returns p+other, rounded to the width of p.
func (p PxE1) Add(other PxE1) PxE1 {
	return p.Width().wrap(arith.Add(p.format(), p.low(), p.of(other)))
}

// Sub returns p-other, rounded to the width of p.
func (p PxE1) Sub(other PxE1) PxE1 {
	return p.Width().wrap(arith.Sub(p.format(), p.low(), p.of(other)))
}

// Mul returns p*other, rounded to the width of p.
func (p PxE1) Mul(other PxE1) PxE1 {
	return p.Width().wrap(arith.Mul(p.format(), p.low(), p.of(other)))
}

// Div returns p/other, rounded to the width of p.
func (p PxE1) Div(other PxE1) PxE1 {
	return p.Width().wrap(arith.Div(p.format(), p.low(), p.of(other)))
}

// Recip returns 1/p.
func (p PxE1) Recip() PxE1 {
	return p.Width().wrap(arith.Recip(p.format(), p.low()))
}

// Sqrt returns the square root of p. The square root of a negative number is NaR.
func (p PxE1) Sqrt() PxE1 {
	return p.Width().wrap(arith.Sqrt(p.format(), p.low()))
}

// MulAdd returns p*b + c, computed with a single rounding to the width of p.
func (p PxE1) MulAdd(b, c PxE1) PxE1 {
	q := p.Width().Quire()
	q.AddPosit(c)
	q.AddProduct(p, b)
	return q.ToPosit()
}

// Round returns the nearest integer, rounding ties to even.
func (p PxE1) Round() PxE1 {
	return p.Width().wrap(arith.RoundToInt(p.format(), p.low(), arith.HalfEven))
}

// Floor returns the greatest integer less than or equal to p.
func (p PxE1) Floor() PxE1 {
	return p.Width().wrap(arith.RoundToInt(p.format(), p.low(), arith.Floor))
}

// Ceil returns the least integer greater than or equal to p.
func (p PxE1) Ceil() PxE1 {
	return p.Width().wrap(arith.RoundToInt(p.format(), p.low(), arith.Ceil))
}

// Trunc returns the integer part of p.
func (p PxE1) Trunc() PxE1 {
	return p.Width().wrap(arith.RoundToInt(p.format(), p.low(), arith.Trunc))
}

// Float64 returns p as a float64. NaR becomes NaN.
func (p PxE1) Float64() float64 {
	return arith.ToFloat64(p.format(), p.low())
}

// Int64 returns p rounded half to even, saturated to the int64 range.
// NaR becomes math.MinInt64.
func (p PxE1) Int64() int64 {
	return arith.ToSigned(p.format(), p.low(), int64(math.MinInt64), math.MaxInt64)
}

// Uint64 returns p rounded half to even, saturated to the uint64 range.
// Negative values become zero, NaR becomes 0x8000_0000_0000_0000.
func (p PxE1) Uint64() uint64 {
	return arith.ToUnsigned(p.format(), p.low(), uint64(math.MaxUint64), 1<<63)
}

// Decimal returns the exact decimal value of p. ok is false for NaR.
func (p PxE1) Decimal() (d decimal.Decimal, ok bool) {
	return decconv.ToDecimal(p.format(), p.low())
}

// String returns the shortest decimal representation of p, or "NaR".
func (p PxE1) String() string {
	return decconv.Format(p.format(), p.low())
}

// MarshalJSON encodes p as a JSON number. NaR is encoded as the string "NaR".
func (p PxE1) MarshalJSON() ([]byte, error) {
	return decconv.AppendJSON(nil, p.format(), p.low()), nil
}

// UnmarshalJSON decodes a JSON number or string into p, keeping the width of p.
func (p *PxE1) UnmarshalJSON(data []byte) error {
	ui, err := decconv.ParseJSON(p.format(), data)
	if err != nil {
		return err
	}
	*p = p.Width().wrap(ui)
	return nil
}

// QxE1 is the quire of PxE1: a 256-bit fixed-point register with 120
// fractional bits, enough for the products of 32-bit posits.
// Products of posits of other widths are rounded to the width of the quire first.
// The zero value is an empty quire of the 32-bit width.
type QxE1 struct {
	w [4]uint64
	n uint8
}

// QxE1FromBits returns a quire of width w with the given register words, the most significant first.
func QxE1FromBits(w PxE1Width, words [4]uint64) QxE1 {
	return QxE1{w: words, n: w.n}
}

func (q *QxE1) layout() quire.Layout {
	return quire.Layout{Format: familyFormat(q.n, 1), Words: len(q.w), Point: 120}
}

func (q *QxE1) of(p PxE1) uint32 {
	return q.Width().wrap(0).of(p)
}

// Width returns the width of the posits q accumulates.
func (q QxE1) Width() PxE1Width {
	return PxE1Width{n: q.n}
}

// Bits returns the register words, the most significant first.
func (q QxE1) Bits() [4]uint64 {
	return q.w
}

// IsNaR reports whether q is NaR.
func (q QxE1) IsNaR() bool {
	return q.layout().IsNaR(q.w[:])
}

// IsZero reports whether q is zero.
func (q QxE1) IsZero() bool {
	return q.layout().IsZero(q.w[:])
}

// AddProduct adds a*b to q without rounding.
func (q *QxE1) AddProduct(a, b PxE1) {
	q.layout().AddProduct(q.w[:], q.of(a), q.of(b), false)
}

// SubProduct subtracts a*b from q without rounding.
func (q *QxE1) SubProduct(a, b PxE1) {
	q.layout().AddProduct(q.w[:], q.of(a), q.of(b), true)
}

// AddPosit adds a to q.
func (q *QxE1) AddPosit(a PxE1) {
	q.layout().AddPosit(q.w[:], q.of(a), false)
}

// SubPosit subtracts a from q.
func (q *QxE1) SubPosit(a PxE1) {
	q.layout().AddPosit(q.w[:], q.of(a), true)
}

// Clear resets q to zero.
func (q *QxE1) Clear() {
	q.layout().Clear(q.w[:])
}

// Neg negates q in place.
func (q *QxE1) Neg() {
	q.layout().Neg(q.w[:])
}

// ToPosit rounds q to the nearest posit.
func (q QxE1) ToPosit() PxE1 {
	return q.Width().wrap(q.layout().ToPosit(q.w[:]))
}

// IntoTwoPosits splits q into a posit nearest to q and the posit nearest to the rest.
func (q QxE1) IntoTwoPosits() (PxE1, PxE1) {
	hi := q.ToPosit()
	if hi.IsNaR() {
		return hi, hi
	}
	q.SubPosit(hi)
	return hi, q.ToPosit()
}

// IntoThreePosits is like IntoTwoPosits, but splits q into three posits.
func (q QxE1) IntoThreePosits() (PxE1, PxE1, PxE1) {
	hi := q.ToPosit()
	if hi.IsNaR() {
		return hi, hi, hi
	}
	q.SubPosit(hi)
	mid, lo := q.IntoTwoPosits()
	return hi, mid, lo
}

// DotPxE1 returns the fused dot product of a and b rounded to the width w.
// Vectors of different lengths yield NaR.
func DotPxE1(w PxE1Width, a, b []PxE1) PxE1 {
	if len(a) != len(b) {
		return w.NaR()
	}
	q := w.Quire()
	for i := range a {
		q.AddProduct(a[i], b[i])
	}
	return q.ToPosit()
}
