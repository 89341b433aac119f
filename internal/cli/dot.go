package cli

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Vectors is the input of the dot command.
type Vectors struct {
	A []string `yaml:"a"`
	B []string `yaml:"b"`
}

// LoadVectors reads a YAML file with the vectors a and b.
func LoadVectors(path string) (*Vectors, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, Error.Wrap(err)
	}
	var v Vectors
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&v); err != nil {
		return nil, Error.New("failed to parse %s: %v", path, err)
	}
	if len(v.A) != len(v.B) {
		return nil, Error.New("vector lengths differ: %d and %d", len(v.A), len(v.B))
	}
	return &v, nil
}

// DotResult is the output of the dot command.
type DotResult struct {
	Type  string `json:"type"`
	Len   int    `json:"len"`
	Fused string `json:"fused"`
	Bits  string `json:"bits"`
	Exact string `json:"exact,omitempty"`
	// Naive is the sum of rounded products, rounded after every addition.
	Naive     string `json:"naive"`
	NaiveBits string `json:"naive_bits"`
}

func (r DotResult) String() string {
	return fmt.Sprintf("fused: %s (%s)\nnaive: %s (%s)\n", r.Fused, r.Bits, r.Naive, r.NaiveBits)
}

// DotOptions holds the flags of the dot command.
type DotOptions struct {
	File string
}

// NewDotCommand creates the dot command.
func NewDotCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DotOptions{}
	cmd := &cobra.Command{
		Use:   "dot --file <vectors.yaml>",
		Short: "Compute a fused dot product",
		Long: `Compute the dot product of two vectors in a quire, rounding only once.

The input file is YAML with two lists of numbers of the same length:

  a: [12.3, 6.3]
  b: [0.4, -8.4]

The result is printed along with the sum of individually rounded products.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDot(rootOpts, opts, cmd)
		},
	}
	cmd.Flags().StringVarP(&opts.File, "file", "f", "", "YAML file with vectors a and b")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func runDot(opts *RootOptions, dotOpts *DotOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
	k, err := opts.Kind()
	if err != nil {
		return formatter.Fail(ErrCodeInput, err)
	}
	v, err := LoadVectors(dotOpts.File)
	if err != nil {
		return formatter.Fail(ErrCodeFile, err)
	}
	formatter.VerboseLog("loaded %d pair(s) from %s", len(v.A), dotOpts.File)
	a, err := k.parseAll(v.A)
	if err != nil {
		return formatter.Fail(ErrCodeInput, err)
	}
	b, err := k.parseAll(v.B)
	if err != nil {
		return formatter.Fail(ErrCodeInput, err)
	}
	fused, naive := k.dot(a, b), k.naive(a, b)
	out := DotResult{
		Type:      k.Name,
		Len:       len(a),
		Fused:     k.text(fused),
		Bits:      k.Hex(fused),
		Naive:     k.text(naive),
		NaiveBits: k.Hex(naive),
	}
	out.Exact, _ = k.exact(fused)
	return formatter.Success(out)
}

func (k *Kind) parseAll(ss []string) ([]uint32, error) {
	res := make([]uint32, len(ss))
	for i, s := range ss {
		ui, err := k.parse(s)
		if err != nil {
			return nil, err
		}
		res[i] = ui
	}
	return res, nil
}
