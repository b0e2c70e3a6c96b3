package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/shabbyrobe/go-fixnum/internal/radix"
)

type convOptions struct {
	signed bool
	prefix bool
	from   int
	to     []int
}

type convResult struct {
	Base int
	Text string
}

func newConvCmd(root *rootOptions) *cobra.Command {
	var opts convOptions
	cmd := &cobra.Command{
		Use:   "conv <value>",
		Short: "Print a value in several bases",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := engineFor(root.bits)
			if err != nil {
				return err
			}
			opts.signed = root.signed
			root.log.Debug("conv", zap.Int("bits", e.bits()), zap.Ints("to", opts.to))

			results, err := e.conv(args[0], opts)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, r := range results {
				label.Fprintf(w, "%-4s", fmt.Sprintf("%d", r.Base))
				fmt.Fprintln(w, r.Text)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&opts.from, "from", 0, "base of the input, 0 to detect from a prefix")
	cmd.Flags().IntSliceVar(&opts.to, "to", []int{2, 8, 10, 16}, "bases to print")
	cmd.Flags().BoolVar(&opts.prefix, "prefix", false, "mark output with a base prefix where one exists")
	return cmd
}

func (widthEngine[W, D]) conv(v string, opts convOptions) ([]convResult, error) {
	for _, b := range opts.to {
		if _, err := radix.CheckBase(b); err != nil {
			return nil, err
		}
	}

	var text func(base int) string
	if opts.signed {
		i, err := parseInt[W](v, opts.from)
		if err != nil {
			return nil, err
		}
		text = i.Text
	} else {
		u, err := parseUint[W](v, opts.from)
		if err != nil {
			return nil, err
		}
		text = u.Text
	}

	out := make([]convResult, 0, len(opts.to))
	for _, b := range opts.to {
		s := text(b)
		if opts.prefix {
			s = withPrefix(s, b)
		}
		out = append(out, convResult{Base: b, Text: s})
	}
	return out, nil
}

// withPrefix inserts the prefix for base after any sign.
func withPrefix(s string, base int) string {
	p := radix.Prefix(base)
	if p == "" {
		return s
	}
	if rest, ok := strings.CutPrefix(s, "-"); ok {
		return "-" + p + rest
	}
	return p + s
}
