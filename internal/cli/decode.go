package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// DecodeResult is the output of the decode command.
type DecodeResult struct {
	Type     string        `json:"type"`
	Bits     string        `json:"bits"`
	Category string        `json:"category"`
	Fields   *DecodeFields `json:"fields,omitempty"`
	Value    string        `json:"value"`
	Exact    string        `json:"exact,omitempty"`
}

// DecodeFields are the fields of a pattern other than zero and NaR.
// Bit strings are taken from the absolute value of the pattern.
type DecodeFields struct {
	Sign     int    `json:"sign"`
	Regime   string `json:"regime"`
	K        int    `json:"k"`
	Exponent string `json:"exponent"`
	Fraction string `json:"fraction"`
	Scale    int    `json:"scale"`
}

func (r DecodeResult) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "type: %s\n", r.Type)
	fmt.Fprintf(&sb, "bits: %s\n", r.Bits)
	fmt.Fprintf(&sb, "category: %s\n", r.Category)
	if fl := r.Fields; fl != nil {
		fmt.Fprintf(&sb, "sign: %d\n", fl.Sign)
		fmt.Fprintf(&sb, "regime: %s (k=%d)\n", fl.Regime, fl.K)
		fmt.Fprintf(&sb, "exponent: %s\n", orDash(fl.Exponent))
		fmt.Fprintf(&sb, "fraction: %s\n", orDash(fl.Fraction))
		fmt.Fprintf(&sb, "scale: %d\n", fl.Scale)
	}
	fmt.Fprintf(&sb, "value: %s\n", r.Value)
	if r.Exact != "" {
		fmt.Fprintf(&sb, "exact: %s\n", r.Exact)
	}
	return sb.String()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// NewDecodeCommand creates the decode command.
func NewDecodeCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "decode <pattern>",
		Short: "Split a bit pattern into posit fields",
		Long: `Decode a bit pattern, given in hex (0x), binary (0b) or decimal notation,
into sign, regime, exponent and fraction, and print its exact value.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(rootOpts, args[0], cmd)
		},
	}
}

func runDecode(opts *RootOptions, arg string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
	k, err := opts.Kind()
	if err != nil {
		return formatter.Fail(ErrCodeInput, err)
	}
	ui, err := k.ParseBits(arg)
	if err != nil {
		return formatter.Fail(ErrCodeInput, err)
	}
	formatter.VerboseLog("decoding %s as %s", k.Hex(ui), k.Name)
	return formatter.Success(k.Decode(ui))
}

// Decode returns the fields and the value of the pattern ui.
func (k *Kind) Decode(ui uint32) DecodeResult {
	f := k.Format
	res := DecodeResult{
		Type:  k.Name,
		Bits:  k.Hex(ui),
		Value: k.text(ui),
	}
	switch {
	case f.IsNaR(ui):
		res.Category = "NaR"
		return res
	case f.IsZero(ui):
		res.Category = "zero"
	default:
		res.Category = "normal"
		fl := f.Decode(ui)
		body := fmt.Sprintf("%0*b", int(f.N-1), f.Abs(ui))
		res.Fields = &DecodeFields{
			Regime:   body[:fl.RegLen],
			K:        fl.K,
			Exponent: body[fl.RegLen : fl.RegLen+fl.ExpLen],
			Fraction: body[fl.RegLen+fl.ExpLen:],
			Scale:    fl.Scale(f.ES),
		}
		if fl.Neg {
			res.Fields.Sign = 1
		}
	}
	res.Exact, _ = k.exact(ui)
	return res
}
