package posit

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/avdva/posit/internal/arith"
	"github.com/avdva/posit/internal/bitfield"
	"github.com/avdva/posit/internal/decconv"
	"github.com/avdva/posit/internal/quire"
)

// PxE2Width is a validated width of PxE2 posits.
// The zero value is the 32-bit width.
type PxE2Width struct {
	n uint8
}

// NewPxE2Width returns the width of n-bit posits with 2 exponent bits.
// n must be in [2, 32].
func NewPxE2Width(n int) (PxE2Width, error) {
	f, err := bitfield.NewFormat(n, 2)
	if err != nil {
		return PxE2Width{}, Error.Wrap(err)
	}
	return PxE2Width{n: uint8(f.N)}, nil
}

// MustPxE2Width is like NewPxE2Width, but panics on invalid widths.
func MustPxE2Width(n int) PxE2Width {
	w, err := NewPxE2Width(n)
	if err != nil {
		panic(err)
	}
	return w
}

func (w PxE2Width) format() bitfield.Format {
	return familyFormat(w.n, 2)
}

// N returns the number of bits.
func (w PxE2Width) N() int {
	return int(w.format().N)
}

func (w PxE2Width) wrap(ui uint32) PxE2 {
	f := w.format()
	return PxE2{ui: ui << (bitfield.MaxBits - f.N), n: uint8(f.N)}
}

// FromBits returns a posit with the pattern in the low N bits of ui.
func (w PxE2Width) FromBits(ui uint32) PxE2 {
	return w.wrap(ui & w.format().Mask())
}

// Zero returns zero.
func (w PxE2Width) Zero() PxE2 {
	return w.wrap(0)
}

// One returns 1.
func (w PxE2Width) One() PxE2 {
	return w.wrap(w.format().One())
}

// NaR returns NaR.
func (w PxE2Width) NaR() PxE2 {
	return w.wrap(w.format().NaR())
}

// Max returns the largest posit.
func (w PxE2Width) Max() PxE2 {
	return w.wrap(w.format().MaxPos())
}

// Min returns the most negative posit.
func (w PxE2Width) Min() PxE2 {
	f := w.format()
	return w.wrap(f.Neg(f.MaxPos()))
}

// MinPositive returns the smallest positive posit.
func (w PxE2Width) MinPositive() PxE2 {
	return w.wrap(w.format().MinPos())
}

// FromFloat64 returns the posit nearest to x.
func (w PxE2Width) FromFloat64(x float64) PxE2 {
	return w.wrap(arith.FromFloat64(w.format(), x))
}

// FromInt64 returns the posit nearest to v.
func (w PxE2Width) FromInt64(v int64) PxE2 {
	return w.wrap(arith.FromSigned(w.format(), v))
}

// FromUint64 returns the posit nearest to v.
func (w PxE2Width) FromUint64(v uint64) PxE2 {
	return w.wrap(arith.FromUnsigned(w.format(), v))
}

// FromDecimal returns the posit nearest to d.
func (w PxE2Width) FromDecimal(d decimal.Decimal) PxE2 {
	return w.wrap(decconv.FromDecimal(w.format(), d))
}

// Parse returns the posit nearest to the decimal number in s.
func (w PxE2Width) Parse(s string) (PxE2, error) {
	ui, err := decconv.Parse(w.format(), s)
	if err != nil {
		return PxE2{}, err
	}
	return w.wrap(ui), nil
}

// Quire returns an empty quire for posits of width w.
func (w PxE2Width) Quire() QxE2 {
	return QxE2{n: w.n}
}

// PxE2 is a posit with 2 exponent bits and a width from 2 to 32 bits, chosen at run time.
// The zero value is a 32-bit zero.
//
// The pattern is stored left-justified: a narrow posit padded with zero bits
// is the 32-bit posit of the same value, so values of different widths
// compare as numbers.
type PxE2 struct {
	ui uint32
	n  uint8
}

// Width returns the width of p.
func (p PxE2) Width() PxE2Width {
	return PxE2Width{n: p.n}
}

func (p PxE2) format() bitfield.Format {
	return familyFormat(p.n, 2)
}

// low returns the pattern in the low bits.
func (p PxE2) low() uint32 {
	return p.ui >> (bitfield.MaxBits - p.format().N)
}

// of returns other converted to the width of p.
func (p PxE2) of(other PxE2) uint32 {
	if p.format() == other.format() {
		return other.low()
	}
	return arith.Convert(other.format(), p.format(), other.low())
}

// Convert rounds p to the width w.
func (p PxE2) Convert(w PxE2Width) PxE2 {
	return w.wrap(arith.Convert(p.format(), w.format(), p.low()))
}

// Bits returns the pattern of p in the low N bits.
func (p PxE2) Bits() uint32 {
	return p.low()
}

// IsNaR reports whether p is NaR.
func (p PxE2) IsNaR() bool {
	return p.ui == 1<<31
}

// IsZero reports whether p is zero.
func (p PxE2) IsZero() bool {
	return p.ui == 0
}

// IsNegative reports whether p is less than zero. NaR is not negative.
func (p PxE2) IsNegative() bool {
	return int32(p.ui) < 0 && !p.IsNaR()
}

// Category returns the category of p.
func (p PxE2) Category() Category {
	return category(p.IsZero(), p.IsNaR())
}

// Cmp compares p and other, which may have different widths.
// NaR is less than any other value.
func (p PxE2) Cmp(other PxE2) int {
	return cmpInt32(int32(p.ui), int32(other.ui))
}

// Neg returns -p.
func (p PxE2) Neg() PxE2 {
	return p.Width().wrap(arith.Neg(p.format(), p.low()))
}

// Abs returns |p|.
func (p PxE2) Abs() PxE2 {
	return p.Width().wrap(arith.Abs(p.format(), p.low()))
}

// Add returns p+other, rounded to the width of p.
func (p PxE2) Add(other PxE2) PxE2 {
	return p.Width().wrap(arith.Add(p.format(), p.low(), p.of(other)))
}

// Sub returns p-other, rounded to the width of p.
func (p PxE2) Sub(other PxE2) PxE2 {
	return p.Width().wrap(arith.Sub(p.format(), p.low(), p.of(other)))
}

// Mul returns p*other, rounded to the width of p.
func (p PxE2) Mul(other PxE2) PxE2 {
	return p.Width().wrap(arith.Mul(p.format(), p.low(), p.of(other)))
}

// Div returns p/other, rounded to the width of p.
func (p PxE2) Div(other PxE2) PxE2 {
	return p.Width().wrap(arith.Div(p.format(), p.low(), p.of(other)))
}

// Recip returns 1/p.
func (p PxE2) Recip() PxE2 {
	return p.Width().wrap(arith.Recip(p.format(), p.low()))
}

// Sqrt returns the square root of p. The square root of a negative number is NaR.
func (p PxE2) Sqrt() PxE2 {
	return p.Width().wrap(arith.Sqrt(p.format(), p.low()))
}

// MulAdd returns p*b + c, computed with a single rounding to the width of p.
func (p PxE2) MulAdd(b, c PxE2) PxE2 {
	q := p.Width().Quire()
	q.AddPosit(c)
	q.AddProduct(p, b)
	return q.ToPosit()
}

// Round returns the nearest integer, rounding ties to even.
func (p PxE2) Round() PxE2 {
	return p.Width().wrap(arith.RoundToInt(p.format(), p.low(), arith.HalfEven))
}

// Floor returns the greatest integer less than or equal to p.
func (p PxE2) Floor() PxE2 {
	return p.Width().wrap(arith.RoundToInt(p.format(), p.low(), arith.Floor))
}

// Ceil returns the least integer greater than or equal to p.
func (p PxE2) Ceil() PxE2 {
	return p.Width().wrap(arith.RoundToInt(p.format(), p.low(), arith.Ceil))
}

// Trunc returns the integer part of p.
func (p PxE2) Trunc() PxE2 {
	return p.Width().wrap(arith.RoundToInt(p.format(), p.low(), arith.Trunc))
}

// Float64 returns p as a float64. NaR becomes NaN.
func (p PxE2) Float64() float64 {
	return arith.ToFloat64(p.format(), p.low())
}

// Int64 returns p rounded half to even, saturated to the int64 range.
// NaR becomes math.MinInt64.
func (p PxE2) Int64() int64 {
	return arith.ToSigned(p.format(), p.low(), int64(math.MinInt64), math.MaxInt64)
}

// Uint64 returns p rounded half to even, saturated to the uint64 range.
// Negative values become zero, NaR becomes 0x8000_0000_0000_0000.
func (p PxE2) Uint64() uint64 {
	return arith.ToUnsigned(p.format(), p.low(), uint64(math.MaxUint64), 1<<63)
}

// Decimal returns the exact decimal value of p. ok is false for NaR.
func (p PxE2) Decimal() (d decimal.Decimal, ok bool) {
	return decconv.ToDecimal(p.format(), p.low())
}

// String returns the shortest decimal representation of p, or "NaR".
func (p PxE2) String() string {
	return decconv.Format(p.format(), p.low())
}

// MarshalJSON encodes p as a JSON number. NaR is encoded as the string "NaR".
func (p PxE2) MarshalJSON() ([]byte, error) {
	return decconv.AppendJSON(nil, p.format(), p.low()), nil
}

// UnmarshalJSON decodes a JSON number or string into p, keeping the width of p.
func (p *PxE2) UnmarshalJSON(data []byte) error {
	ui, err := decconv.ParseJSON(p.format(), data)
	if err != nil {
		return err
	}
	*p = p.Width().wrap(ui)
	return nil
}

// QxE2 is the quire of PxE2: a 512-bit fixed-point register with 240
// fractional bits, enough for the products of 32-bit posits.
// Products of posits of other widths are rounded to the width of the quire first.
// The zero value is an empty quire of the 32-bit width.
type QxE2 struct {
	w [8]uint64
	n uint8
}

// QxE2FromBits returns a quire of width w with the given register words, the most significant first.
func QxE2FromBits(w PxE2Width, words [8]uint64) QxE2 {
	return QxE2{w: words, n: w.n}
}

func (q *QxE2) layout() quire.Layout {
	return quire.Layout{Format: familyFormat(q.n, 2), Words: len(q.w), Point: 240}
}

func (q *QxE2) of(p PxE2) uint32 {
	return q.Width().wrap(0).of(p)
}

// Width returns the width of the posits q accumulates.
func (q QxE2) Width() PxE2Width {
	return PxE2Width{n: q.n}
}

// Bits returns the register words, the most significant first.
func (q QxE2) Bits() [8]uint64 {
	return q.w
}

// IsNaR reports whether q is NaR.
func (q QxE2) IsNaR() bool {
	return q.layout().IsNaR(q.w[:])
}

// IsZero reports whether q is zero.
func (q QxE2) IsZero() bool {
	return q.layout().IsZero(q.w[:])
}

// AddProduct adds a*b to q without rounding.
func (q *QxE2) AddProduct(a, b PxE2) {
	q.layout().AddProduct(q.w[:], q.of(a), q.of(b), false)
}

// SubProduct subtracts a*b from q without rounding.
func (q *QxE2) SubProduct(a, b PxE2) {
	q.layout().AddProduct(q.w[:], q.of(a), q.of(b), true)
}

// AddPosit adds a to q.
func (q *QxE2) AddPosit(a PxE2) {
	q.layout().AddPosit(q.w[:], q.of(a), false)
}

// SubPosit subtracts a from q.
func (q *QxE2) SubPosit(a PxE2) {
	q.layout().AddPosit(q.w[:], q.of(a), true)
}

// Clear resets q to zero.
func (q *QxE2) Clear() {
	q.layout().Clear(q.w[:])
}

// Neg negates q in place.
func (q *QxE2) Neg() {
	q.layout().Neg(q.w[:])
}

// ToPosit rounds q to the nearest posit.
func (q QxE2) ToPosit() PxE2 {
	return q.Width().wrap(q.layout().ToPosit(q.w[:]))
}

// IntoTwoPosits splits q into a posit nearest to q and the posit nearest to the rest.
func (q QxE2) IntoTwoPosits() (PxE2, PxE2) {
	hi := q.ToPosit()
	if hi.IsNaR() {
		return hi, hi
	}
	q.SubPosit(hi)
	return hi, q.ToPosit()
}

// IntoThreePosits is like IntoTwoPosits, but splits q into three posits.
func (q QxE2) IntoThreePosits() (PxE2, PxE2, PxE2) {
	hi := q.ToPosit()
	if hi.IsNaR() {
		return hi, hi, hi
	}
	q.SubPosit(hi)
	mid, lo := q.IntoTwoPosits()
	return hi, mid, lo
}

// DotPxE2 returns the fused dot product of a and b rounded to the width w.
// Vectors of different lengths yield NaR.
func DotPxE2(w PxE2Width, a, b []PxE2) PxE2 {
	if len(a) != len(b) {
		return w.NaR()
	}
	q := w.Quire()
	for i := range a {
		q.AddProduct(a[i], b[i])
	}
	return q.ToPosit()
}
