// Package mathutil contains wide integer helpers used as scratch space by
// posit arithmetic and quires.
package mathutil

import (
	"math/bits"
)

var (
	// approxRecipSqrt0 and approxRecipSqrt1 are a piecewise linear approximation
	// of 1/sqrt(a) for a in [1, 2). Even entries approximate 1/sqrt(2a),
	// odd entries approximate 1/sqrt(a).
	approxRecipSqrt0 = [16]uint16{
		0xb4c9, 0xffab, 0xaa7d, 0xf11c, 0xa1c5, 0xe4c7, 0x9a43, 0xda29,
		0x93b5, 0xd0e5, 0x8ded, 0xc8b7, 0x88c6, 0xc16d, 0x8424, 0xbae1,
	}
	approxRecipSqrt1 = [16]uint16{
		0xa5a5, 0xea42, 0x8c21, 0xc62d, 0x788f, 0xaa7f, 0x6928, 0x94b6,
		0x5cc7, 0x8335, 0x52a6, 0x74e2, 0x4a3e, 0x68fe, 0x432b, 0x5efd,
	}
)

// RecipSqrt16 returns an estimate of 1/sqrt(a), scaled by 2^16, where a is a
// significand with its top bit set, representing a number in [1, 2).
// If oddExp is false, the estimate is of 1/sqrt(2a).
func RecipSqrt16(a uint32, oddExp bool) uint32 {
	index := a >> 27 & 0xe
	if oddExp {
		index++
	}
	eps := a >> 12 & 0xffff
	return uint32(approxRecipSqrt0[index]) - uint32(approxRecipSqrt1[index])*eps>>20
}

// Sqrt128 returns the integer square root of the 128-bit number hi:lo, and
// whether the root is exact. The number must be in [2^124, 2^126).
func Sqrt128(hi, lo uint64) (root uint64, exact bool) {
	const maxRoot = 1<<63 - 1
	t := uint32(hi >> 30)
	var seed uint64
	if t>>31 != 0 {
		seed = uint64(t) * uint64(RecipSqrt16(t, false)) << 16
	} else {
		a := t << 1
		seed = uint64(a) * uint64(RecipSqrt16(a, true)) << 15
	}
	root = seed + seed>>6 + 1
	if root > maxRoot || !squareGE(root, hi, lo) {
		root = maxRoot
	}
	// newton iterations from above converge to the floor root.
	for {
		q, _ := bits.Div64(hi, lo, root)
		next := (root + q) >> 1
		if next >= root {
			break
		}
		root = next
	}
	sh, sl := bits.Mul64(root, root)
	return root, sh == hi && sl == lo
}

func squareGE(x, hi, lo uint64) bool {
	sh, sl := bits.Mul64(x, x)
	return sh > hi || sh == hi && sl >= lo
}

// ShrSticky returns x >> n, and whether any of the shifted out bits was set.
func ShrSticky(x uint64, n uint) (uint64, bool) {
	if n >= 64 {
		return 0, x != 0
	}
	return x >> n, x<<(64-n) != 0
}

// Shr128 returns hi:lo >> n.
func Shr128(hi, lo uint64, n uint) (uint64, uint64) {
	switch {
	case n >= 128:
		return 0, 0
	case n >= 64:
		return 0, hi >> (n - 64)
	}
	return hi >> n, lo>>n | hi<<(64-n)
}

// The functions below operate on multi-word two's complement integers stored
// as big-endian slices of words: z[0] is the most significant one.

// AddWords sets z = z + x and returns the carry out of the top word.
// len(x) must be equal to len(z).
func AddWords(z, x []uint64) (carry uint64) {
	for i := len(z) - 1; i >= 0; i-- {
		z[i], carry = bits.Add64(z[i], x[i], carry)
	}
	return carry
}

// NegWords sets z = -z.
func NegWords(z []uint64) {
	carry := uint64(1)
	for i := len(z) - 1; i >= 0; i-- {
		z[i], carry = bits.Add64(^z[i], 0, carry)
	}
}

// IsZeroWords reports whether all words of z are zero.
func IsZeroWords(z []uint64) bool {
	for _, w := range z {
		if w != 0 {
			return false
		}
	}
	return true
}

// LeadingZerosWords returns the number of leading zero bits in z.
func LeadingZerosWords(z []uint64) int {
	n := 0
	for _, w := range z {
		if w != 0 {
			return n + bits.LeadingZeros64(w)
		}
		n += 64
	}
	return n
}

// PlaceWords sets z to hi:lo * 2^shift. A negative shift drops low bits.
// Bits which do not fit into z are discarded.
func PlaceWords(z []uint64, hi, lo uint64, shift int) {
	for i := range z {
		z[i] = 0
	}
	if shift < 0 {
		hi, lo = Shr128(hi, lo, uint(-shift))
		shift = 0
	}
	q, r := shift/64, uint(shift%64)
	set := func(j int, w uint64) {
		if i := len(z) - 1 - j; i >= 0 {
			z[i] = w
		}
	}
	set(q, lo<<r)
	set(q+1, hi<<r|lo>>(64-r))
	set(q+2, hi>>(64-r))
}

// BitsAfter returns 64 bits of z starting at bit pos, counting from the most
// significant bit, and whether any bit after them is set.
func BitsAfter(z []uint64, pos int) (x uint64, sticky bool) {
	word := func(i int) uint64 {
		if i < len(z) {
			return z[i]
		}
		return 0
	}
	q, r := pos/64, uint(pos%64)
	x = word(q)<<r | word(q+1)>>(64-r)
	if word(q+1)<<r != 0 {
		return x, true
	}
	if q+2 < len(z) {
		sticky = !IsZeroWords(z[q+2:])
	}
	return x, sticky
}

// AbsInt64 returns |val| as an unsigned number. It is correct for math.MinInt64.
func AbsInt64(val int64) uint64 {
	if val < 0 {
		return -uint64(val)
	}
	return uint64(val)
}

// Int64Sign returns -1, 0, 1 for negative, zero, and positive values.
func Int64Sign(v int64) int {
	if v == 0 {
		return 0
	}
	return [...]int{1, -1}[uint64(v)>>63]
}
