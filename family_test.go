package posit

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWidths(t *testing.T) {
	a := assert.New(t)
	for _, n := range []int{-1, 0, 1, 33, 64} {
		_, err := NewPxE1Width(n)
		a.Error(err, "%d", n)
		a.True(Error.Has(err))
		_, err = NewPxE2Width(n)
		a.Error(err, "%d", n)
	}
	for n := 2; n <= 32; n++ {
		w, err := NewPxE1Width(n)
		if a.NoError(err) {
			a.Equal(n, w.N())
			a.Equal(n, w.One().Width().N())
		}
		w2, err := NewPxE2Width(n)
		if a.NoError(err) {
			a.Equal(n, w2.N())
		}
	}
	a.Panics(func() { MustPxE1Width(1) })
	a.Panics(func() { MustPxE2Width(40) })
	a.Equal(32, PxE1Width{}.N())
	a.Equal(32, PxE2Width{}.N())
}

func TestFamilyZeroValue(t *testing.T) {
	a := assert.New(t)
	var p PxE1
	a.True(p.IsZero())
	a.Equal(32, p.Width().N())
	a.Equal(1.0, p.Add(MustPxE1Width(32).One()).Float64())
	a.Equal("0", p.String())
	var q PxE2
	a.Equal(32, q.Width().N())
	a.Equal(P32E2Max.Float64(), q.Add(MustPxE2Width(32).Max()).Float64())
	var qq QxE2
	qq.AddProduct(MustPxE2Width(32).FromFloat64(1.5), MustPxE2Width(32).FromFloat64(2))
	a.Equal(3.0, qq.ToPosit().Float64())
	a.Equal(32, qq.Width().N())
}

func TestFamilyMatchesFixed(t *testing.T) {
	a := assert.New(t)
	w16, w32 := MustPxE1Width(16), MustPxE2Width(32)
	r := rand.New(rand.NewSource(5))
	for i := 0; i < 2000; i++ {
		x, y := P16E1FromBits(uint16(r.Uint32())), P16E1FromBits(uint16(r.Uint32()))
		fx, fy := w16.FromBits(uint32(x.Bits())), w16.FromBits(uint32(y.Bits()))
		a.Equal(uint32(x.Add(y).Bits()), fx.Add(fy).Bits())
		a.Equal(uint32(x.Sub(y).Bits()), fx.Sub(fy).Bits())
		a.Equal(uint32(x.Mul(y).Bits()), fx.Mul(fy).Bits())
		a.Equal(uint32(x.Div(y).Bits()), fx.Div(fy).Bits())
		a.Equal(uint32(x.Sqrt().Bits()), fx.Sqrt().Bits())
		a.Equal(uint32(x.Round().Bits()), fx.Round().Bits())
		a.Equal(x.Cmp(y), fx.Cmp(fy))
		a.Equal(x.String(), fx.String())
		a.Equal(x.Int64(), fx.Int64())

		p, q := P32E2FromBits(r.Uint32()), P32E2FromBits(r.Uint32())
		fp, fq := w32.FromBits(p.Bits()), w32.FromBits(q.Bits())
		a.Equal(p.Add(q).Bits(), fp.Add(fq).Bits())
		a.Equal(p.Mul(q).Bits(), fp.Mul(fq).Bits())
		a.Equal(p.Div(q).Bits(), fp.Div(fq).Bits())
		a.Equal(p.MulAdd(q, p).Bits(), fp.MulAdd(fq, fp).Bits())
		a.Equal(p.Floor().Bits(), fp.Floor().Bits())
		a.Equal(p.Float64(), fp.Float64())
		a.Equal(p.Uint64(), fp.Uint64())
	}
	a.Equal(uint32(P16E1Max.Bits()), w16.Max().Bits())
	a.Equal(uint32(P16E1Min.Bits()), w16.Min().Bits())
	a.Equal(uint32(P16E1MinPositive.Bits()), w16.MinPositive().Bits())
	a.Equal(uint32(P16E1NaR.Bits()), w16.NaR().Bits())
	a.Equal(P32E2Max.Bits(), w32.Max().Bits())
	a.Equal(P32E2One.Bits(), w32.One().Bits())
}

func TestFamilyScenario(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		n   int
		es  int
		exp uint32
	}{
		{n: 16, es: 1, exp: 0x8a00},
		{n: 32, es: 1, exp: 0x8a00_0000},
		{n: 32, es: 2, exp: 0x9a00_0000},
		{n: 12, es: 2, exp: 0x9a0},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			if test.es == 1 {
				w := MustPxE1Width(test.n)
				q := w.Quire()
				q.AddProduct(must(w.Parse("12.3")), must(w.Parse("0.4")))
				q.SubProduct(must(w.Parse("6.3")), must(w.Parse("8.4")))
				a.Equal(test.exp, q.ToPosit().Bits())
				a.Equal(-48.0, q.ToPosit().Float64())
				return
			}
			w := MustPxE2Width(test.n)
			q := w.Quire()
			q.AddProduct(must(w.Parse("12.3")), must(w.Parse("0.4")))
			q.SubProduct(must(w.Parse("6.3")), must(w.Parse("8.4")))
			a.Equal(test.exp, q.ToPosit().Bits())
			a.Equal(-48.0, q.ToPosit().Float64())
		})
	}
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func TestMixedWidths(t *testing.T) {
	a := assert.New(t)
	w8, w16 := MustPxE1Width(8), MustPxE1Width(16)
	x, y := w16.FromFloat64(1.5), w8.FromFloat64(0.25)
	sum := x.Add(y)
	a.Equal(16, sum.Width().N())
	a.Equal(uint32(0x4c00), sum.Bits())
	sum = y.Add(x)
	a.Equal(8, sum.Width().N())
	a.Equal(uint32(0x4c), sum.Bits())

	a.Equal(0, w8.One().Cmp(w16.One()))
	a.Equal(0, w8.FromFloat64(1.75).Cmp(w16.FromFloat64(1.75)))
	a.Equal(-1, w8.Max().Cmp(w16.FromInt64(4160)))
	a.Equal(1, w8.Max().Cmp(w16.FromInt64(4032)))
	a.Equal(-1, w8.NaR().Cmp(w16.Min()))
	a.Equal(0, w8.NaR().Cmp(w16.NaR()))
	a.True(w8.NaR().Add(w16.One()).IsNaR())
	a.True(w16.One().Mul(w8.NaR()).IsNaR())

	// widening is exact, narrowing rounds.
	for i := 0; i < 1<<8; i++ {
		p := w8.FromBits(uint32(i))
		wide := p.Convert(w16)
		a.Equal(0, p.Cmp(wide))
		a.Equal(p, wide.Convert(w8))
	}
	a.Equal(uint32(0x160), MustPxE1Width(10).FromInt64(3).Bits())
	a.Equal(uint32(0x130), MustPxE2Width(10).FromInt64(3).Bits())
}

func TestFamilyQuire(t *testing.T) {
	a := assert.New(t)
	w := MustPxE1Width(16)
	r := rand.New(rand.NewSource(6))
	for i := 0; i < 100; i++ {
		n := 1 + r.Intn(20)
		x, y := make([]P16E1, n), make([]P16E1, n)
		fx, fy := make([]PxE1, n), make([]PxE1, n)
		for j := range x {
			x[j], y[j] = P16E1FromBits(uint16(r.Uint32())), P16E1FromBits(uint16(r.Uint32()))
			if x[j].IsNaR() || y[j].IsNaR() {
				x[j], y[j] = P16E1One, P16E1One
			}
			fx[j], fy[j] = w.FromBits(uint32(x[j].Bits())), w.FromBits(uint32(y[j].Bits()))
		}
		a.Equal(uint32(DotP16E1(x, y).Bits()), DotPxE1(w, fx, fy).Bits())
	}
	a.True(DotPxE1(w, []PxE1{w.One()}, nil).IsNaR())
	a.Equal(16, DotPxE1(w, nil, nil).Width().N())

	w2 := MustPxE2Width(32)
	for i := 0; i < 100; i++ {
		n := 1 + r.Intn(20)
		x, y := make([]P32E2, n), make([]P32E2, n)
		fx, fy := make([]PxE2, n), make([]PxE2, n)
		for j := range x {
			x[j], y[j] = P32E2FromBits(r.Uint32()), P32E2FromBits(r.Uint32())
			if x[j].IsNaR() || y[j].IsNaR() {
				x[j], y[j] = P32E2One, P32E2One
			}
			fx[j], fy[j] = w2.FromBits(x[j].Bits()), w2.FromBits(y[j].Bits())
		}
		a.Equal(DotP32E2(x, y).Bits(), DotPxE2(w2, fx, fy).Bits())
	}

	q := w.Quire()
	q.AddPosit(w.One())
	q.AddPosit(w.FromFloat64(0x1p-20))
	hi, lo := q.IntoTwoPosits()
	a.Equal(w.One(), hi)
	a.Equal(w.FromFloat64(0x1p-20), lo)
	c := QxE1FromBits(w, q.Bits())
	c.Neg()
	a.Equal(-1.0, c.ToPosit().Float64())
	c.SubPosit(w.NaR())
	a.True(c.IsNaR())
	h, m, l := c.IntoThreePosits()
	a.True(h.IsNaR() && m.IsNaR() && l.IsNaR())
	c.Clear()
	a.True(c.IsZero())
	a.Equal(16, c.Width().N())
}

func TestFamilyJSON(t *testing.T) {
	a := assert.New(t)
	w := MustPxE1Width(12)
	p := w.Zero()
	a.NoError(json.Unmarshal([]byte("2.5"), &p))
	a.Equal(12, p.Width().N())
	a.Equal(uint32(0x540), p.Bits())
	data, err := json.Marshal(p)
	a.NoError(err)
	a.Equal("2.5", string(data))
	a.NoError(json.Unmarshal([]byte(`"NaR"`), &p))
	a.True(p.IsNaR())
	a.Equal(12, p.Width().N())
	data, err = json.Marshal(p)
	a.NoError(err)
	a.Equal(`"NaR"`, string(data))
	a.Error(p.UnmarshalJSON([]byte("null")))

	q := MustPxE2Width(20).Zero()
	a.NoError(q.UnmarshalJSON([]byte(`"-0.1"`)))
	a.Equal(20, q.Width().N())
	a.Equal(MustPxE2Width(20).FromFloat64(-0.1), q)

	_, err = w.Parse("x1")
	a.True(Error.Has(err))
}

func TestFamilySpecial(t *testing.T) {
	a := assert.New(t)
	for n := 2; n <= 32; n++ {
		w := MustPxE2Width(n)
		a.True(w.NaR().IsNaR())
		a.Equal(CategoryNaR, w.NaR().Category())
		a.Equal(CategoryZero, w.Zero().Category())
		a.Equal(1.0, w.One().Float64())
		a.True(w.Min().IsNegative())
		a.Equal(w.Min(), w.Max().Neg())
		a.Equal(w.Max(), w.Min().Abs())
		a.Equal(w.MinPositive(), w.FromFloat64(1e-300))
		a.Equal(w.Max(), w.FromUint64(1<<63))
		a.True(w.FromInt64(-1).Sqrt().IsNaR())
		a.Equal(w.One(), w.One().Recip())
		a.Equal(int64(1), w.One().Int64())
		d, ok := w.One().Decimal()
		a.True(ok)
		a.Equal("1", d.String())
		a.Equal(w.One(), w.FromDecimal(d))
	}
	w := MustPxE1Width(2)
	a.Equal(uint32(1), w.One().Bits())
	a.Equal(w.One(), w.Max())
	a.Equal(w.One(), w.FromFloat64(0.3))
	a.Equal(w.One(), w.FromFloat64(1e10))
	a.Equal(w.Zero(), w.One().Sub(w.One()))
	a.Equal(w.One(), w.One().Add(w.One()))
}
