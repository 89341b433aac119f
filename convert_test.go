package posit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertFixed(t *testing.T) {
	a := assert.New(t)
	for i := 0; i < 1<<8; i++ {
		p := P8E0FromBits(uint8(i))
		a.Equal(p, p.ToP32E2().ToP8E0())
		a.Equal(p, p.ToP16E1().ToP8E0())
		a.Equal(0, p.ToP16E1().ToP32E2().Cmp(p.ToP32E2()))
		if !p.IsNaR() {
			a.Equal(p.Float64(), p.ToP32E2().Float64())
			a.Equal(p.Float64(), p.ToP16E1().Float64())
		}
	}
	for i := 0; i < 1<<16; i++ {
		p := P16E1FromBits(uint16(i))
		if !a.Equal(p, p.ToP32E2().ToP16E1(), "%#x", i) {
			return
		}
	}
	tenth := MustParseP32E2("0.1")
	a.Equal(P16E1FromBits(0x14cd), tenth.ToP16E1())
	a.Equal(P8E0FromBits(0x6), tenth.ToP8E0())
	a.Equal(P8E0Max, P32E2Max.ToP8E0())
	a.Equal(P8E0Min, P16E1Min.ToP8E0())
	a.Equal(P8E0MinPositive, P32E2MinPositive.ToP8E0())
	a.Equal(P16E1MinPositive.Neg(), P32E2MinPositive.Neg().ToP16E1())
	a.Equal(P16E1NaR, P32E2NaR.ToP16E1())
	a.Equal(P32E2NaR, P8E0NaR.ToP32E2())
	a.Equal(P32E2Zero, P16E1Zero.ToP32E2())
}

func TestConvertFamilies(t *testing.T) {
	a := assert.New(t)
	w16, w32 := MustPxE1Width(16), MustPxE2Width(32)
	for i := 0; i < 1<<16; i += 7 {
		p := P16E1FromBits(uint16(i))
		if !a.Equal(uint32(p.Bits()), w16.FromP16E1(p).Bits()) {
			return
		}
		a.Equal(p, w16.FromP16E1(p).ToP16E1())
		a.Equal(p.ToP32E2(), w32.FromP16E1(p).ToP32E2())
	}
	x := MustParseP32E2("3.14159")
	a.Equal(x.Bits(), w32.FromP32E2(x).Bits())
	a.Equal(x, w32.FromP32E2(x).ToP32E2())
	a.Equal(x.ToP16E1(), w16.FromP32E2(x).ToP16E1())
	a.Equal(x.ToP8E0(), w16.FromP32E2(x).ToP8E0())
	a.Equal(x.ToP8E0(), w32.FromP32E2(x).ToP8E0())

	w8 := MustPxE2Width(8)
	a.Equal(w8.FromFloat64(3.125), w8.FromP8E0(P8E0FromBits(0x69)))
	a.Equal(w8.FromFloat64(2), w8.FromP8E0(P8E0FromBits(0x60)))
	a.Equal(P8E0FromBits(0x60), w8.FromP8E0(P8E0FromBits(0x60)).ToP8E0())
	a.Equal(w8.FromFloat64(64), w8.FromP16E1(P16E1FromFloat64(64)))
	a.Equal(P16E1FromFloat64(2), w8.FromP8E0(P8E0FromBits(0x60)).ToP16E1())
	a.True(w16.FromP8E0(P8E0NaR).IsNaR())
	a.Equal(P8E0One, w16.One().ToP8E0())

	// 2^60 is the largest 32-bit E1 posit, the 16-bit E2 posit of the same value saturates.
	maxE1 := MustPxE1Width(32).Max()
	a.Equal(MustPxE2Width(16).Max(), MustPxE2Width(16).FromPxE1(maxE1))
	a.Equal(0x1p60, MustPxE2Width(32).FromPxE1(maxE1).Float64())
	a.Equal(MustPxE1Width(32).Max(), MustPxE1Width(32).FromPxE2(w32.Max()))
	a.Equal(w16.FromFloat64(1.75), w16.FromPxE2(w8.FromFloat64(1.75)))
	a.True(w16.FromPxE2(w8.NaR()).IsNaR())
	a.True(w8.FromPxE1(w16.Zero()).IsZero())
}
