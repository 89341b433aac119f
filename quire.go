// Copyright 2020 Aleksandr Demakin. All rights reserved.

package posit

import (
	"github.com/avdva/posit/internal/quire"
)

// Q8E0 is the quire of P8E0: a 64-bit fixed-point register with 12
// fractional bits. The zero value is an empty quire.
// A quire must not be used concurrently.
type Q8E0 struct {
	w [1]uint64
}

// Q8E0FromBits returns a quire with the given register words, the most significant first.
func Q8E0FromBits(w [1]uint64) Q8E0 {
	return Q8E0{w: w}
}

// Bits returns the register words, the most significant first.
func (q Q8E0) Bits() [1]uint64 {
	return q.w
}

// IsNaR reports whether q is NaR.
func (q Q8E0) IsNaR() bool {
	return quire.Q8E0.IsNaR(q.w[:])
}

// IsZero reports whether q is zero.
func (q Q8E0) IsZero() bool {
	return quire.Q8E0.IsZero(q.w[:])
}

// AddProduct adds a*b to q without rounding.
func (q *Q8E0) AddProduct(a, b P8E0) {
	quire.Q8E0.AddProduct(q.w[:], a.ui(), b.ui(), false)
}

// SubProduct subtracts a*b from q without rounding.
func (q *Q8E0) SubProduct(a, b P8E0) {
	quire.Q8E0.AddProduct(q.w[:], a.ui(), b.ui(), true)
}

// AddPosit adds a to q.
func (q *Q8E0) AddPosit(a P8E0) {
	quire.Q8E0.AddPosit(q.w[:], a.ui(), false)
}

// SubPosit subtracts a from q.
func (q *Q8E0) SubPosit(a P8E0) {
	quire.Q8E0.AddPosit(q.w[:], a.ui(), true)
}

// Clear resets q to zero.
func (q *Q8E0) Clear() {
	quire.Q8E0.Clear(q.w[:])
}

// Neg negates q in place.
func (q *Q8E0) Neg() {
	quire.Q8E0.Neg(q.w[:])
}

// ToPosit rounds q to the nearest posit.
func (q Q8E0) ToPosit() P8E0 {
	return P8E0(quire.Q8E0.ToPosit(q.w[:]))
}

// IntoTwoPosits splits q into a posit nearest to q and the posit nearest to the rest.
func (q Q8E0) IntoTwoPosits() (P8E0, P8E0) {
	hi := q.ToPosit()
	if hi.IsNaR() {
		return hi, P8E0NaR
	}
	q.SubPosit(hi)
	return hi, q.ToPosit()
}

// IntoThreePosits is like IntoTwoPosits, but splits q into three posits.
func (q Q8E0) IntoThreePosits() (P8E0, P8E0, P8E0) {
	hi := q.ToPosit()
	if hi.IsNaR() {
		return hi, P8E0NaR, P8E0NaR
	}
	q.SubPosit(hi)
	mid, lo := q.IntoTwoPosits()
	return hi, mid, lo
}

// DotP8E0 returns the fused dot product of a and b: the sum of a[i]*b[i]
// accumulated in a quire and rounded once. Vectors of different lengths yield NaR.
func DotP8E0(a, b []P8E0) P8E0 {
	if len(a) != len(b) {
		return P8E0NaR
	}
	var q Q8E0
	for i := range a {
		q.AddProduct(a[i], b[i])
	}
	return q.ToPosit()
}

// Q16E1 is the quire of P16E1: a 128-bit fixed-point register with 56
// fractional bits. The zero value is an empty quire.
// A quire must not be used concurrently.
type Q16E1 struct {
	w [2]uint64
}

// Q16E1FromBits returns a quire with the given register words, the most significant first.
func Q16E1FromBits(w [2]uint64) Q16E1 {
	return Q16E1{w: w}
}

// Bits returns the register words, the most significant first.
func (q Q16E1) Bits() [2]uint64 {
	return q.w
}

// IsNaR reports whether q is NaR.
func (q Q16E1) IsNaR() bool {
	return quire.Q16E1.IsNaR(q.w[:])
}

// IsZero reports whether q is zero.
func (q Q16E1) IsZero() bool {
	return quire.Q16E1.IsZero(q.w[:])
}

// AddProduct adds a*b to q without rounding.
func (q *Q16E1) AddProduct(a, b P16E1) {
	quire.Q16E1.AddProduct(q.w[:], a.ui(), b.ui(), false)
}

// SubProduct subtracts a*b from q without rounding.
func (q *Q16E1) SubProduct(a, b P16E1) {
	quire.Q16E1.AddProduct(q.w[:], a.ui(), b.ui(), true)
}

// AddPosit adds a to q.
func (q *Q16E1) AddPosit(a P16E1) {
	quire.Q16E1.AddPosit(q.w[:], a.ui(), false)
}

// SubPosit subtracts a from q.
func (q *Q16E1) SubPosit(a P16E1) {
	quire.Q16E1.AddPosit(q.w[:], a.ui(), true)
}

// Clear resets q to zero.
func (q *Q16E1) Clear() {
	quire.Q16E1.Clear(q.w[:])
}

// Neg negates q in place.
func (q *Q16E1) Neg() {
	quire.Q16E1.Neg(q.w[:])
}

// ToPosit rounds q to the nearest posit.
func (q Q16E1) ToPosit() P16E1 {
	return P16E1(quire.Q16E1.ToPosit(q.w[:]))
}

// IntoTwoPosits splits q into a posit nearest to q and the posit nearest to the rest.
func (q Q16E1) IntoTwoPosits() (P16E1, P16E1) {
	hi := q.ToPosit()
	if hi.IsNaR() {
		return hi, P16E1NaR
	}
	q.SubPosit(hi)
	return hi, q.ToPosit()
}

// IntoThreePosits is like IntoTwoPosits, but splits q into three posits.
func (q Q16E1) IntoThreePosits() (P16E1, P16E1, P16E1) {
	hi := q.ToPosit()
	if hi.IsNaR() {
		return hi, P16E1NaR, P16E1NaR
	}
	q.SubPosit(hi)
	mid, lo := q.IntoTwoPosits()
	return hi, mid, lo
}

// DotP16E1 returns the fused dot product of a and b: the sum of a[i]*b[i]
// accumulated in a quire and rounded once. Vectors of different lengths yield NaR.
func DotP16E1(a, b []P16E1) P16E1 {
	if len(a) != len(b) {
		return P16E1NaR
	}
	var q Q16E1
	for i := range a {
		q.AddProduct(a[i], b[i])
	}
	return q.ToPosit()
}

// Q32E2 is the quire of P32E2: a 512-bit fixed-point register with 240
// fractional bits. The zero value is an empty quire.
// A quire must not be used concurrently.
type Q32E2 struct {
	w [8]uint64
}

// Q32E2FromBits returns a quire with the given register words, the most significant first.
func Q32E2FromBits(w [8]uint64) Q32E2 {
	return Q32E2{w: w}
}

// Bits returns the register words, the most significant first.
func (q Q32E2) Bits() [8]uint64 {
	return q.w
}

// IsNaR reports whether q is NaR.
func (q Q32E2) IsNaR() bool {
	return quire.Q32E2.IsNaR(q.w[:])
}

// IsZero reports whether q is zero.
func (q Q32E2) IsZero() bool {
	return quire.Q32E2.IsZero(q.w[:])
}

// AddProduct adds a*b to q without rounding.
func (q *Q32E2) AddProduct(a, b P32E2) {
	quire.Q32E2.AddProduct(q.w[:], a.ui(), b.ui(), false)
}

// SubProduct subtracts a*b from q without rounding.
func (q *Q32E2) SubProduct(a, b P32E2) {
	quire.Q32E2.AddProduct(q.w[:], a.ui(), b.ui(), true)
}

// AddPosit adds a to q.
func (q *Q32E2) AddPosit(a P32E2) {
	quire.Q32E2.AddPosit(q.w[:], a.ui(), false)
}

// SubPosit subtracts a from q.
func (q *Q32E2) SubPosit(a P32E2) {
	quire.Q32E2.AddPosit(q.w[:], a.ui(), true)
}

// Clear resets q to zero.
func (q *Q32E2) Clear() {
	quire.Q32E2.Clear(q.w[:])
}

// Neg negates q in place.
func (q *Q32E2) Neg() {
	quire.Q32E2.Neg(q.w[:])
}

// ToPosit rounds q to the nearest posit.
func (q Q32E2) ToPosit() P32E2 {
	return P32E2(quire.Q32E2.ToPosit(q.w[:]))
}

// IntoTwoPosits splits q into a posit nearest to q and the posit nearest to the rest.
func (q Q32E2) IntoTwoPosits() (P32E2, P32E2) {
	hi := q.ToPosit()
	if hi.IsNaR() {
		return hi, P32E2NaR
	}
	q.SubPosit(hi)
	return hi, q.ToPosit()
}

// IntoThreePosits is like IntoTwoPosits, but splits q into three posits.
func (q Q32E2) IntoThreePosits() (P32E2, P32E2, P32E2) {
	hi := q.ToPosit()
	if hi.IsNaR() {
		return hi, P32E2NaR, P32E2NaR
	}
	q.SubPosit(hi)
	mid, lo := q.IntoTwoPosits()
	return hi, mid, lo
}

// DotP32E2 returns the fused dot product of a and b: the sum of a[i]*b[i]
// accumulated in a quire and rounded once. Vectors of different lengths yield NaR.
func DotP32E2(a, b []P32E2) P32E2 {
	if len(a) != len(b) {
		return P32E2NaR
	}
	var q Q32E2
	for i := range a {
		q.AddProduct(a[i], b[i])
	}
	return q.ToPosit()
}
