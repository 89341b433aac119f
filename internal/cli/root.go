// Package cli implements positcalc, a command-line calculator for posits.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
	Type    string // posit type, see ParseKind
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// Kind parses the --type flag.
func (o *RootOptions) Kind() (*Kind, error) {
	return ParseKind(o.Type)
}

// NewRootCommand creates the root command of positcalc.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "positcalc",
		Short: "positcalc - posit arithmetic calculator",
		Long: `Encode, decode and compute with posits.

Results are rounded to nearest, ties to even, like every posit operation.
Dot products are accumulated exactly in a quire and rounded once.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			if _, err := opts.Kind(); err != nil {
				return WrapExitError(ExitCommandError, "invalid type", err)
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVarP(&opts.Type, "type", "t", "p32e2", "posit type (p8e0|p16e1|p32e2|p<N>e1|p<N>e2)")

	cmd.AddCommand(NewDecodeCommand(opts))
	cmd.AddCommand(NewEncodeCommand(opts))
	cmd.AddCommand(NewEvalCommand(opts))
	cmd.AddCommand(NewDotCommand(opts))

	return cmd
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
