package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/zeebo/errs"

	"github.com/avdva/posit"
	"github.com/avdva/posit/internal/bitfield"
)

// Error is the error class of the calculator.
var Error = errs.Class("positcalc")

// number is the method set the calculator needs from a posit type.
type number[P any] interface {
	Add(P) P
	Sub(P) P
	Mul(P) P
	Div(P) P
	Neg() P
	Abs() P
	Recip() P
	Sqrt() P
	Round() P
	Floor() P
	Ceil() P
	Trunc() P
	String() string
	Decimal() (decimal.Decimal, bool)
}

// Kind is a posit type selected with --type.
// Values are passed around as bit patterns held in the low bits of a uint32.
type Kind struct {
	Name   string
	Format bitfield.Format

	parse  func(s string) (uint32, error)
	text   func(ui uint32) string
	exact  func(ui uint32) (string, bool)
	unary  func(op string, a uint32) (uint32, bool)
	binary func(op string, a, b uint32) (uint32, bool)
	dot    func(a, b []uint32) uint32
	naive  func(a, b []uint32) uint32
}

type kindOps[P number[P]] struct {
	fromBits func(uint32) P
	bits     func(P) uint32
	parse    func(string) (P, error)
	dot      func(a, b []P) P
}

func newKind[P number[P]](name string, f bitfield.Format, o kindOps[P]) *Kind {
	vec := func(ui []uint32) []P {
		res := make([]P, len(ui))
		for i, v := range ui {
			res[i] = o.fromBits(v)
		}
		return res
	}
	return &Kind{
		Name:   name,
		Format: f,
		parse: func(s string) (uint32, error) {
			p, err := o.parse(s)
			if err != nil {
				return 0, err
			}
			return o.bits(p), nil
		},
		text: func(ui uint32) string {
			return o.fromBits(ui).String()
		},
		exact: func(ui uint32) (string, bool) {
			d, ok := o.fromBits(ui).Decimal()
			if !ok {
				return "", false
			}
			return d.String(), true
		},
		unary: func(op string, a uint32) (uint32, bool) {
			p, ok := applyUnary(op, o.fromBits(a))
			return o.bits(p), ok
		},
		binary: func(op string, a, b uint32) (uint32, bool) {
			p, ok := applyBinary(op, o.fromBits(a), o.fromBits(b))
			return o.bits(p), ok
		},
		dot: func(a, b []uint32) uint32 {
			return o.bits(o.dot(vec(a), vec(b)))
		},
		naive: func(a, b []uint32) uint32 {
			var sum P
			for i := range a {
				prod := o.fromBits(a[i]).Mul(o.fromBits(b[i]))
				if i == 0 {
					sum = prod
				} else {
					sum = sum.Add(prod)
				}
			}
			return o.bits(sum)
		},
	}
}

func applyUnary[P number[P]](op string, p P) (P, bool) {
	switch op {
	case "neg":
		return p.Neg(), true
	case "abs":
		return p.Abs(), true
	case "recip":
		return p.Recip(), true
	case "sqrt":
		return p.Sqrt(), true
	case "round":
		return p.Round(), true
	case "floor":
		return p.Floor(), true
	case "ceil":
		return p.Ceil(), true
	case "trunc":
		return p.Trunc(), true
	}
	return p, false
}

func applyBinary[P number[P]](op string, a, b P) (P, bool) {
	switch op {
	case "add", "+":
		return a.Add(b), true
	case "sub", "-":
		return a.Sub(b), true
	case "mul", "*", "x":
		return a.Mul(b), true
	case "div", "/":
		return a.Div(b), true
	}
	return a, false
}

// ParseKind returns the posit type named s: p8e0, p16e1, p32e2,
// or p<N>e1 and p<N>e2 for any N in [2, 32].
func ParseKind(s string) (*Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch name {
	case "p8e0":
		return newKind(name, bitfield.P8E0, kindOps[posit.P8E0]{
			fromBits: func(ui uint32) posit.P8E0 { return posit.P8E0FromBits(uint8(ui)) },
			bits:     func(p posit.P8E0) uint32 { return uint32(p.Bits()) },
			parse:    posit.ParseP8E0,
			dot:      posit.DotP8E0,
		}), nil
	case "p16e1":
		return newKind(name, bitfield.P16E1, kindOps[posit.P16E1]{
			fromBits: func(ui uint32) posit.P16E1 { return posit.P16E1FromBits(uint16(ui)) },
			bits:     func(p posit.P16E1) uint32 { return uint32(p.Bits()) },
			parse:    posit.ParseP16E1,
			dot:      posit.DotP16E1,
		}), nil
	case "p32e2":
		return newKind(name, bitfield.P32E2, kindOps[posit.P32E2]{
			fromBits: posit.P32E2FromBits,
			bits:     posit.P32E2.Bits,
			parse:    posit.ParseP32E2,
			dot:      posit.DotP32E2,
		}), nil
	}
	n, es, err := splitKind(name)
	if err != nil {
		return nil, err
	}
	switch es {
	case 1:
		w, err := posit.NewPxE1Width(n)
		if err != nil {
			return nil, Error.Wrap(err)
		}
		return newKind(name, bitfield.MustFormat(n, es), kindOps[posit.PxE1]{
			fromBits: w.FromBits,
			bits:     posit.PxE1.Bits,
			parse:    w.Parse,
			dot:      func(a, b []posit.PxE1) posit.PxE1 { return posit.DotPxE1(w, a, b) },
		}), nil
	case 2:
		w, err := posit.NewPxE2Width(n)
		if err != nil {
			return nil, Error.Wrap(err)
		}
		return newKind(name, bitfield.MustFormat(n, es), kindOps[posit.PxE2]{
			fromBits: w.FromBits,
			bits:     posit.PxE2.Bits,
			parse:    w.Parse,
			dot:      func(a, b []posit.PxE2) posit.PxE2 { return posit.DotPxE2(w, a, b) },
		}), nil
	}
	return nil, Error.New("unsupported type %q: exponent size must be 1 or 2 for widths other than 8", s)
}

func splitKind(name string) (n, es int, err error) {
	rest := strings.TrimPrefix(name, "p")
	i := strings.IndexByte(rest, 'e')
	if rest == name || i < 0 {
		return 0, 0, Error.New("invalid type %q: want p<N>e<ES>", name)
	}
	if n, err = strconv.Atoi(rest[:i]); err != nil {
		return 0, 0, Error.New("invalid width in type %q", name)
	}
	if es, err = strconv.Atoi(rest[i+1:]); err != nil {
		return 0, 0, Error.New("invalid exponent size in type %q", name)
	}
	return n, es, nil
}

// ParseBits parses a bit pattern in hex (0x), binary (0b), octal or decimal notation.
func (k *Kind) ParseBits(s string) (uint32, error) {
	ui, err := strconv.ParseUint(strings.TrimSpace(s), 0, 32)
	if err != nil {
		return 0, Error.Wrap(err)
	}
	if uint32(ui)&^k.Format.Mask() != 0 {
		return 0, Error.New("pattern %s does not fit into %d bits", s, k.Format.N)
	}
	return uint32(ui), nil
}

// Hex formats a pattern with as many hex digits as the width needs.
func (k *Kind) Hex(ui uint32) string {
	return fmt.Sprintf("0x%0*x", int(k.Format.N+3)/4, ui)
}
