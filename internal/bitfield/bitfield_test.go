package bitfield

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func value(f Format, ui uint32) float64 {
	neg, scale, sig := f.Unpack(ui)
	v := math.Ldexp(float64(sig), scale-HiddenBit)
	if neg {
		return -v
	}
	return v
}

func TestNewFormat(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		n, es int
		err   bool
	}{
		{n: 2, es: 0},
		{n: 32, es: 2},
		{n: 13, es: 1},
		{n: 1, es: 0, err: true},
		{n: 33, es: 0, err: true},
		{n: 8, es: 3, err: true},
		{n: 8, es: -1, err: true},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			f, err := NewFormat(test.n, test.es)
			if test.err {
				a.Error(err)
				a.True(Error.Has(err))
				return
			}
			a.NoError(err)
			a.Equal(uint(test.n), f.N)
			a.Equal(uint(test.es), f.ES)
		})
	}
	a.Panics(func() { MustFormat(40, 0) })
}

func TestConstants(t *testing.T) {
	a := assert.New(t)
	a.Equal(uint32(0xff), P8E0.Mask())
	a.Equal(uint32(0x80), P8E0.NaR())
	a.Equal(uint32(0x7f), P8E0.MaxPos())
	a.Equal(uint32(0x40), P8E0.One())
	a.Equal(6, P8E0.MaxScale())
	a.Equal(uint32(0xffff_ffff), P32E2.Mask())
	a.Equal(uint32(0x8000_0000), P32E2.NaR())
	a.Equal(uint32(0x4000_0000), P32E2.One())
	a.Equal(120, P32E2.MaxScale())
	a.Equal(28, P16E1.MaxScale())
	a.Equal(uint32(1), P16E1.MinPos())
}

func TestClassify(t *testing.T) {
	a := assert.New(t)
	a.True(P8E0.IsNaR(0x80))
	a.True(P8E0.IsNaR(0xff80))
	a.False(P8E0.IsNaR(0x81))
	a.True(P8E0.IsZero(0x100))
	a.True(P16E1.IsSpecial(0x8000))
	a.True(P16E1.IsSpecial(0))
	a.False(P16E1.IsSpecial(0x4000))
	a.True(P16E1.IsNeg(0xc000))
	a.Equal(uint32(0xc000), P16E1.Neg(0x4000))
	a.Equal(uint32(0x8000), P16E1.Neg(0x8000))
	a.Equal(uint32(0), P16E1.Neg(0))
	a.Equal(uint32(0x4000), P16E1.Abs(0xc000))
	a.Equal(int32(-1), P8E0.Int32(0xff))
	a.Equal(int32(-128), P8E0.Int32(0x80))
	a.Equal(int32(127), P8E0.Int32(0x7f))
	a.Equal(int32(math.MinInt32), P32E2.Int32(0x8000_0000))
}

func TestDecode(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		f     Format
		ui    uint32
		res   Fields
		value float64
	}{
		{P8E0, 0x40, Fields{K: 0, RegLen: 2, FracLen: 5}, 1},
		{P8E0, 0x13, Fields{K: -2, RegLen: 3, Frac: 0x3 << 28, FracLen: 4}, 19.0 / 64},
		{P8E0, 0x7f, Fields{K: 6, RegLen: 7}, 64},
		{P8E0, 0x01, Fields{K: -6, RegLen: 7}, 1.0 / 64},
		{P8E0, 0xc0, Fields{Neg: true, K: 0, RegLen: 2, FracLen: 5}, -1},
		{P16E1, 0x6000, Fields{K: 1, RegLen: 3, ExpLen: 1, FracLen: 11}, 4},
		{P16E1, 0x7fff, Fields{K: 14, RegLen: 15}, 1 << 28},
		{P16E1, 0x0001, Fields{K: -14, RegLen: 15}, 1.0 / (1 << 28)},
		{P32E2, 0x4f00_0000, Fields{K: 0, RegLen: 2, Exp: 1, ExpLen: 2, Frac: 0x7 << 29, FracLen: 27}, 3.75},
		{P32E2, 0x9a00_0000, Fields{Neg: true, K: 1, RegLen: 3, Exp: 1, ExpLen: 2, Frac: 1 << 31, FracLen: 26}, -48},
		{P32E2, 0x00a0_0000, Fields{K: -7, RegLen: 8, Exp: 1, ExpLen: 2, FracLen: 21}, 1.0 / (1 << 27)},
		{MustFormat(5, 2), 0x3, Fields{K: -2, RegLen: 3, Exp: 2, ExpLen: 1, FracLen: 0}, 1.0 / 64},
		{MustFormat(5, 2), 0x5, Fields{K: -1, RegLen: 2, Exp: 1, ExpLen: 2, FracLen: 0}, 1.0 / 8},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.res, test.f.Decode(test.ui))
			a.Equal(test.value, value(test.f, test.ui))
		})
	}
}

func TestRegimeBits(t *testing.T) {
	a := assert.New(t)
	r, n := P8E0.RegimeBits(0)
	a.Equal(uint64(1)<<63, r)
	a.Equal(2, n)
	r, n = P8E0.RegimeBits(2)
	a.Equal(uint64(0b111)<<61, r)
	a.Equal(4, n)
	r, n = P8E0.RegimeBits(-1)
	a.Equal(uint64(1)<<62, r)
	a.Equal(2, n)
	r, n = P8E0.RegimeBits(-3)
	a.Equal(uint64(1)<<60, r)
	a.Equal(4, n)
}

func TestPackUnpack(t *testing.T) {
	a := assert.New(t)
	formats := []Format{P8E0, P16E1, MustFormat(2, 0), MustFormat(3, 2), MustFormat(6, 1), MustFormat(11, 2), MustFormat(16, 2), MustFormat(12, 0)}
	for _, f := range formats {
		for ui := uint32(1); ui <= f.Mask(); ui++ {
			if f.IsNaR(ui) {
				continue
			}
			neg, scale, sig := f.Unpack(ui)
			if !a.Equal(ui, f.Round(neg, scale, sig<<(64-HiddenBit), false), "%v: %#x", f, ui) {
				return
			}
		}
	}
}

func TestPackMonotonic(t *testing.T) {
	a := assert.New(t)
	for _, f := range []Format{P8E0, P16E1, MustFormat(10, 2)} {
		prev := 0.0
		for ui := uint32(1); ui < f.NaR(); ui++ {
			v := value(f, ui)
			if !a.Greater(v, prev, "%v: %#x", f, ui) {
				return
			}
			prev = v
		}
	}
}

func TestPackRounding(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		f      Format
		scale  int
		frac   uint64
		sticky bool
		res    uint32
	}{
		// 1 + 1/64 is a tie between 0x40 and 0x41.
		{P8E0, 0, 1 << 58, false, 0x40},
		{P8E0, 0, 1 << 58, true, 0x41},
		{P8E0, 0, 1<<58 | 1, false, 0x41},
		// 1 + 3/64 is a tie between 0x41 and 0x42.
		{P8E0, 0, 3 << 58, false, 0x42},
		{P8E0, 0, 0, false, 0x40},
		{P8E0, 6, 0, false, 0x7f},
		{P8E0, 7, 0, false, 0x7f},
		{P8E0, 100, math.MaxUint64, true, 0x7f},
		{P8E0, -6, 0, false, 0x01},
		{P8E0, -7, 0, false, 0x01},
		{P8E0, -1000, 0, false, 0x01},
		// 0.75*2^-5 is a tie between 1/64 and 1/32.
		{P8E0, -6, 1 << 63, false, 0x02},
		{P32E2, 120, 0, false, 0x7fff_ffff},
		{P32E2, 121, 0, false, 0x7fff_ffff},
		{P32E2, -120, 0, false, 0x0000_0001},
		{P32E2, -124, 0, false, 0x0000_0001},
		{P32E2, 1, 7 << 61, false, 0x4f00_0000},
		{P16E1, 2, 0, false, 0x6000},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.res, test.f.Pack(test.scale, test.frac, test.sticky))
			if test.res != 0 {
				a.Equal(test.f.Neg(test.res), test.f.Round(true, test.scale, test.frac, test.sticky))
			}
		})
	}
}
