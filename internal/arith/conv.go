package arith

import (
	"math"
	"math/big"
	"math/bits"

	"golang.org/x/exp/constraints"

	"github.com/avdva/posit/internal/bitfield"
	"github.com/avdva/posit/internal/mathutil"
)

// FromFloat64 returns the posit nearest to x. Infinities and NaNs map to NaR,
// finite values beyond the range of f saturate, and non-zero values never round to zero.
func FromFloat64(f bitfield.Format, x float64) uint32 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return f.NaR()
	}
	if x == 0 {
		return 0
	}
	b := math.Float64bits(x)
	neg := b>>63 != 0
	exp := int(b >> 52 & 0x7ff)
	mant := b & (1<<52 - 1)
	var scale int
	var sig uint64
	if exp == 0 {
		lz := bits.LeadingZeros64(mant)
		scale = 63 - lz - 1074
		sig = mant << uint(lz)
	} else {
		scale = exp - 1023
		sig = (mant | 1<<52) << 11
	}
	return f.Round(neg, scale, sig<<1, false)
}

// ToFloat64 returns a as a float64. The conversion is exact, NaR maps to NaN.
func ToFloat64(f bitfield.Format, a uint32) float64 {
	a &= f.Mask()
	switch {
	case a == 0:
		return 0
	case f.IsNaR(a):
		return math.NaN()
	}
	neg, scale, sig := f.Unpack(a)
	v := math.Ldexp(float64(sig), scale-hidden)
	if neg {
		return -v
	}
	return v
}

// FromSigned returns the posit nearest to v.
func FromSigned[T constraints.Signed](f bitfield.Format, v T) uint32 {
	x := int64(v)
	return fromMag(f, mathutil.AbsInt64(x), x < 0)
}

// FromUnsigned returns the posit nearest to v.
func FromUnsigned[T constraints.Unsigned](f bitfield.Format, v T) uint32 {
	return fromMag(f, uint64(v), false)
}

// ToSigned rounds a half to even to an integer, saturating at the bounds of T.
// NaR maps to the minimum value of T.
func ToSigned[T constraints.Signed](f bitfield.Format, a uint32, lowest, highest T) T {
	a &= f.Mask()
	switch {
	case a == 0:
		return 0
	case f.IsNaR(a):
		return lowest
	}
	mag, neg, overflow := toMag(f, a)
	if neg {
		if overflow || mag >= mathutil.AbsInt64(int64(lowest)) {
			return lowest
		}
		return -T(mag)
	}
	if overflow || mag > uint64(highest) {
		return highest
	}
	return T(mag)
}

// ToUnsigned rounds a half to even to an integer, saturating at highest.
// Negative values map to zero, NaR maps to nar.
func ToUnsigned[T constraints.Unsigned](f bitfield.Format, a uint32, highest, nar T) T {
	a &= f.Mask()
	switch {
	case a == 0:
		return 0
	case f.IsNaR(a):
		return nar
	}
	mag, neg, overflow := toMag(f, a)
	switch {
	case neg:
		return 0
	case overflow || mag > uint64(highest):
		return highest
	}
	return T(mag)
}

// FromRat returns the posit nearest to the exact rational r.
func FromRat(f bitfield.Format, r *big.Rat) uint32 {
	if r.Sign() == 0 {
		return 0
	}
	neg := r.Sign() < 0
	num := new(big.Int).Abs(r.Num())
	den := r.Denom()
	scale := num.BitLen() - den.BitLen()
	limit := f.MaxScale() + 2
	switch {
	case scale > limit:
		return f.Round(neg, limit, 0, false)
	case scale < -limit:
		return f.Round(neg, -limit, 0, false)
	}
	// num/den is in [2^(scale-1), 2^(scale+1)), find the exact scale.
	n, d := new(big.Int).Set(num), new(big.Int).Set(den)
	if scale >= 0 {
		d.Lsh(d, uint(scale))
	} else {
		n.Lsh(n, uint(-scale))
	}
	if n.Cmp(d) < 0 {
		scale--
		n.Lsh(n, 1)
	}
	// n/d is in [1, 2) now.
	n.Lsh(n, hidden)
	quo, rem := n.QuoRem(n, d, new(big.Int))
	return f.Round(neg, scale, fracOf(quo.Uint64()), rem.Sign() != 0)
}

// ToRat returns a as an exact rational number. NaR returns nil.
func ToRat(f bitfield.Format, a uint32) *big.Rat {
	a &= f.Mask()
	switch {
	case a == 0:
		return new(big.Rat)
	case f.IsNaR(a):
		return nil
	}
	neg, scale, sig := f.Unpack(a)
	m, e := Dyadic(sig, scale)
	r := new(big.Rat)
	if e >= 0 {
		r.SetInt(new(big.Int).Lsh(new(big.Int).SetUint64(m), uint(e)))
	} else {
		r.SetFrac(new(big.Int).SetUint64(m), new(big.Int).Lsh(big.NewInt(1), uint(-e)))
	}
	if neg {
		r.Neg(r)
	}
	return r
}

// Dyadic returns an odd m and e, so that sig * 2^(scale-hidden) = m * 2^e.
func Dyadic(sig uint64, scale int) (m uint64, e int) {
	tz := bits.TrailingZeros64(sig)
	return sig >> uint(tz), scale - hidden + tz
}
