package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// EvalResult is the output of the eval command.
type EvalResult struct {
	Type  string `json:"type"`
	Expr  string `json:"expr"`
	Bits  string `json:"bits"`
	Value string `json:"value"`
	Exact string `json:"exact,omitempty"`
}

func (r EvalResult) String() string {
	return fmt.Sprintf("%s (%s)\n", r.Value, r.Bits)
}

// NewEvalCommand creates the eval command.
func NewEvalCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "eval <a> <op> [b]",
		Short: "Evaluate a single posit operation",
		Long: `Evaluate a unary or binary posit operation.

Binary operations: add (+), sub (-), mul (*, x), div (/).
Unary operations: neg, abs, recip, sqrt, round, floor, ceil, trunc.

A NaR result is printed and reported with exit code 1.`,
		Args:          cobra.RangeArgs(2, 3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(rootOpts, args, cmd)
		},
	}
}

func runEval(opts *RootOptions, args []string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
	k, err := opts.Kind()
	if err != nil {
		return formatter.Fail(ErrCodeInput, err)
	}
	a, err := k.parse(args[0])
	if err != nil {
		return formatter.Fail(ErrCodeInput, err)
	}
	formatter.VerboseLog("a = %s (%s)", k.text(a), k.Hex(a))
	op := strings.ToLower(args[1])
	var res uint32
	var ok bool
	if len(args) == 2 {
		res, ok = k.unary(op, a)
	} else {
		var b uint32
		if b, err = k.parse(args[2]); err != nil {
			return formatter.Fail(ErrCodeInput, err)
		}
		formatter.VerboseLog("b = %s (%s)", k.text(b), k.Hex(b))
		res, ok = k.binary(op, a, b)
	}
	if !ok {
		return formatter.Fail(ErrCodeInput, Error.New("unknown operation %q for %d operand(s)", args[1], len(args)-1))
	}
	out := EvalResult{
		Type:  k.Name,
		Expr:  strings.Join(args, " "),
		Bits:  k.Hex(res),
		Value: k.text(res),
	}
	out.Exact, _ = k.exact(res)
	if err := formatter.Success(out); err != nil {
		return err
	}
	if k.Format.IsNaR(res) {
		return NewExitError(ExitFailure, "result is NaR")
	}
	return nil
}
