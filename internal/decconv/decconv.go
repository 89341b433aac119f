// Package decconv converts posits to and from decimal text.
package decconv

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/zeebo/errs"

	"github.com/avdva/posit/internal/arith"
	"github.com/avdva/posit/internal/bitfield"
)

// NaRString is the text form of NaR.
const NaRString = "NaR"

// Error is the error class of the package.
var Error = errs.Class("posit")

var (
	big5  = big.NewInt(5)
	big10 = big.NewInt(10)
)

// ToDecimal returns the exact decimal value of a. ok is false for NaR.
func ToDecimal(f bitfield.Format, a uint32) (d decimal.Decimal, ok bool) {
	a &= f.Mask()
	switch {
	case a == 0:
		return decimal.Zero, true
	case f.IsNaR(a):
		return decimal.Zero, false
	}
	neg, scale, sig := f.Unpack(a)
	m, e := arith.Dyadic(sig, scale)
	coef := new(big.Int).SetUint64(m)
	if neg {
		coef.Neg(coef)
	}
	if e >= 0 {
		return decimal.NewFromBigInt(coef.Lsh(coef, uint(e)), 0), true
	}
	// m * 2^e = m * 5^-e * 10^e
	coef.Mul(coef, new(big.Int).Exp(big5, big.NewInt(int64(-e)), nil))
	return decimal.NewFromBigInt(coef, int32(e)), true
}

// FromDecimal returns the posit nearest to d.
func FromDecimal(f bitfield.Format, d decimal.Decimal) uint32 {
	coef, exp := d.Coefficient(), d.Exponent()
	r := new(big.Rat)
	if exp >= 0 {
		r.SetInt(coef.Mul(coef, new(big.Int).Exp(big10, big.NewInt(int64(exp)), nil)))
	} else {
		r.SetFrac(coef, new(big.Int).Exp(big10, big.NewInt(int64(-exp)), nil))
	}
	return arith.FromRat(f, r)
}

// Parse returns the posit nearest to the decimal number in s.
// Both fixed and scientific notation are accepted, as well as "NaR".
func Parse(f bitfield.Format, s string) (uint32, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return 0, Error.New("empty input")
	}
	if strings.EqualFold(s, NaRString) {
		return f.NaR(), nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, Error.Wrap(err)
	}
	return FromDecimal(f, d), nil
}

// Format returns the shortest decimal text that converts back to a.
func Format(f bitfield.Format, a uint32) string {
	if f.IsNaR(a) {
		return NaRString
	}
	return strconv.FormatFloat(arith.ToFloat64(f, a), 'g', -1, 64)
}

// AppendJSON appends the JSON form of a: a number, or the string "NaR".
func AppendJSON(dst []byte, f bitfield.Format, a uint32) []byte {
	if f.IsNaR(a) {
		return strconv.AppendQuote(dst, NaRString)
	}
	return strconv.AppendFloat(dst, arith.ToFloat64(f, a), 'g', -1, 64)
}

// ParseJSON parses the JSON form of a posit: a number, or a quoted number or "NaR".
func ParseJSON(f bitfield.Format, data []byte) (uint32, error) {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	if s == "null" {
		return 0, Error.New("null is not a posit")
	}
	return Parse(f, s)
}
