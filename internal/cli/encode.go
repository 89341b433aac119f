package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// EncodeResult is the encoding of one number.
type EncodeResult struct {
	Input string `json:"input"`
	Bits  string `json:"bits"`
	Value string `json:"value"`
	Exact string `json:"exact,omitempty"`
}

// EncodeResults is the output of the encode command.
type EncodeResults struct {
	Type    string         `json:"type"`
	Results []EncodeResult `json:"results"`
}

func (r EncodeResults) String() string {
	var sb strings.Builder
	for _, res := range r.Results {
		fmt.Fprintf(&sb, "%s -> %s (%s)\n", res.Input, res.Bits, res.Value)
	}
	return sb.String()
}

// NewEncodeCommand creates the encode command.
func NewEncodeCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "encode <number>...",
		Short: "Round decimal numbers to posits",
		Long: `Encode decimal numbers, in fixed or scientific notation, as the nearest posits.
"NaR" encodes as NaR.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEncode(rootOpts, args, cmd)
		},
	}
}

func runEncode(opts *RootOptions, args []string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
	k, err := opts.Kind()
	if err != nil {
		return formatter.Fail(ErrCodeInput, err)
	}
	out := EncodeResults{Type: k.Name}
	for _, arg := range args {
		ui, err := k.parse(arg)
		if err != nil {
			return formatter.Fail(ErrCodeInput, err)
		}
		res := EncodeResult{
			Input: arg,
			Bits:  k.Hex(ui),
			Value: k.text(ui),
		}
		res.Exact, _ = k.exact(ui)
		formatter.VerboseLog("%s: exact value %s", arg, orDash(res.Exact))
		out.Results = append(out.Results, res)
	}
	return formatter.Success(out)
}
