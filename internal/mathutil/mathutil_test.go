package mathutil

import (
	"fmt"
	"math"
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func bigOf(z []uint64) *big.Int {
	res := new(big.Int)
	for _, w := range z {
		res.Lsh(res, 64)
		res.Or(res, new(big.Int).SetUint64(w))
	}
	return res
}

func TestSqrt128(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		hi, lo uint64
	}{
		{1 << 60, 0},
		{1<<60 + 1, 0},
		{1<<62 - 1, math.MaxUint64},
		{1 << 61, 0},
		{1 << 61, 1},
		{0x1234_5678_9abc_def0, 0x0fed_cba9_8765_4321},
		{0x2000_0000_0000_0001, 0x8000_0000_0000_0000},
	}
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		tests = append(tests, struct{ hi, lo uint64 }{1<<60 | r.Uint64()>>3, r.Uint64()})
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			x := bigOf([]uint64{test.hi, test.lo})
			root, exact := Sqrt128(test.hi, test.lo)
			expected := new(big.Int).Sqrt(x)
			a.Equal(expected.Uint64(), root)
			a.Equal(new(big.Int).Mul(expected, expected).Cmp(x) == 0, exact)
		})
	}
}

func TestSqrt128Exact(t *testing.T) {
	a := assert.New(t)
	for _, root := range []uint64{1 << 62, 1<<62 + 1, 3 << 61, 1<<63 - 1} {
		x := new(big.Int).SetUint64(root)
		x.Mul(x, x)
		hi := new(big.Int).Rsh(x, 64).Uint64()
		lo := x.Uint64()
		res, exact := Sqrt128(hi, lo)
		a.Equal(root, res)
		a.True(exact)
	}
}

func TestRecipSqrt16(t *testing.T) {
	a := assert.New(t)
	for i := uint32(0); i < 256; i++ {
		sig := 1<<31 | i<<23
		v := float64(sig) / (1 << 31)
		a.InEpsilon(65536/math.Sqrt(v), float64(RecipSqrt16(sig, true)), 2e-3, "odd %d", i)
		a.InEpsilon(65536/math.Sqrt(2*v), float64(RecipSqrt16(sig, false)), 2e-3, "even %d", i)
	}
}

func TestShrSticky(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		x      uint64
		n      uint
		res    uint64
		sticky bool
	}{
		{0b1100, 2, 0b11, false},
		{0b1101, 2, 0b11, true},
		{0b1101, 0, 0b1101, false},
		{1, 64, 0, true},
		{0, 100, 0, false},
		{math.MaxUint64, 63, 1, true},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			res, sticky := ShrSticky(test.x, test.n)
			a.Equal(test.res, res)
			a.Equal(test.sticky, sticky)
		})
	}
}

func TestShr128(t *testing.T) {
	a := assert.New(t)
	hi, lo := Shr128(1, 0, 1)
	a.Equal(uint64(0), hi)
	a.Equal(uint64(1<<63), lo)
	hi, lo = Shr128(0xf0, 0, 68)
	a.Equal(uint64(0), hi)
	a.Equal(uint64(0xf), lo)
	hi, lo = Shr128(math.MaxUint64, math.MaxUint64, 128)
	a.Zero(hi)
	a.Zero(lo)
	hi, lo = Shr128(3, 5, 0)
	a.Equal(uint64(3), hi)
	a.Equal(uint64(5), lo)
}

func TestWords(t *testing.T) {
	a := assert.New(t)
	z := []uint64{0, math.MaxUint64}
	carry := AddWords(z, []uint64{0, 1})
	a.Equal([]uint64{1, 0}, z)
	a.Zero(carry)
	carry = AddWords(z, []uint64{math.MaxUint64, 0})
	a.Equal([]uint64{0, 0}, z)
	a.Equal(uint64(1), carry)
	a.True(IsZeroWords(z))

	z = []uint64{0, 0, 5}
	NegWords(z)
	a.Equal([]uint64{math.MaxUint64, math.MaxUint64, math.MaxUint64 - 4}, z)
	NegWords(z)
	a.Equal([]uint64{0, 0, 5}, z)
	a.Equal(128+61, LeadingZerosWords(z))
	a.Equal(192, LeadingZerosWords([]uint64{0, 0, 0}))
	z = []uint64{0, 0}
	NegWords(z)
	a.True(IsZeroWords(z))
}

func TestPlaceWords(t *testing.T) {
	a := assert.New(t)
	r := rand.New(rand.NewSource(2))
	for i := 0; i < 500; i++ {
		hi, lo := r.Uint64(), r.Uint64()
		shift := r.Intn(300) - 100
		z := make([]uint64, 4)
		PlaceWords(z, hi, lo, shift)
		expected := bigOf([]uint64{hi, lo})
		if shift >= 0 {
			expected.Lsh(expected, uint(shift))
		} else {
			expected.Rsh(expected, uint(-shift))
		}
		mask := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))
		expected.And(expected, mask)
		a.Equal(0, expected.Cmp(bigOf(z)), "shift %d", shift)
	}
}

func TestBitsAfter(t *testing.T) {
	a := assert.New(t)
	z := []uint64{0x0000_0000_0000_00ff, 0xf000_0000_0000_0000, 0}
	x, sticky := BitsAfter(z, 56)
	a.Equal(uint64(0xfff0_0000_0000_0000), x)
	a.False(sticky)
	x, sticky = BitsAfter(z, 60)
	a.Equal(uint64(0xff00_0000_0000_0000), x)
	a.False(sticky)
	z[2] = 1
	_, sticky = BitsAfter(z, 56)
	a.True(sticky)
	x, sticky = BitsAfter([]uint64{1<<63 | 1, 1<<63 | 1}, 1)
	a.Equal(uint64(3), x)
	a.True(sticky)
	x, sticky = BitsAfter([]uint64{7}, 61)
	a.Equal(uint64(7<<61), x)
	a.False(sticky)
}

func TestAbsInt64(t *testing.T) {
	a := assert.New(t)
	a.Equal(uint64(5), AbsInt64(-5))
	a.Equal(uint64(5), AbsInt64(5))
	a.Equal(uint64(1<<63), AbsInt64(math.MinInt64))
	a.Equal(-1, Int64Sign(-10))
	a.Equal(0, Int64Sign(0))
	a.Equal(1, Int64Sign(math.MaxInt64))
}

func BenchmarkInt64Sign(b *testing.B) {
	var dummy int
	for i := 0; i < b.N; i++ {
		dummy += Int64Sign(int64(i)) + Int64Sign(int64(-i)) + Int64Sign(int64(i-i))
	}
	// this metric is just to prevent unwanted optimisations in calculations of `dummy.`
	b.ReportMetric(float64(dummy), "dummy_metric")
}

func BenchmarkSqrt128(b *testing.B) {
	var dummy uint64
	for i := 0; i < b.N; i++ {
		root, _ := Sqrt128(1<<60|uint64(i), uint64(i))
		dummy += root
	}
	b.ReportMetric(float64(dummy&1), "dummy_metric")
}
