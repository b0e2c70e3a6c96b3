package main

import (
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	fixnum "github.com/shabbyrobe/go-fixnum"
)

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

type dumpOptions struct {
	signed bool
	base   int
}

// dumpRecord is what dump prints: the value in a few renderings plus the
// raw word store, word 0 first.
type dumpRecord[W fixnum.Width] struct {
	Bits      int
	Signed    bool
	Decimal   string
	Hex       string
	BitLen    int
	OnesCount int
	Words     W
}

func newDumpCmd(root *rootOptions) *cobra.Command {
	var opts dumpOptions
	cmd := &cobra.Command{
		Use:   "dump <value>",
		Short: "Show the word layout of a value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := engineFor(root.bits)
			if err != nil {
				return err
			}
			opts.signed = root.signed
			root.log.Debug("dump", zap.Int("bits", e.bits()), zap.String("value", args[0]))
			return e.dump(cmd.OutOrStdout(), args[0], opts)
		},
	}
	cmd.Flags().IntVar(&opts.base, "base", 0, "base of the input, 0 to detect from a prefix")
	return cmd
}

func (widthEngine[W, D]) dump(w io.Writer, v string, opts dumpOptions) error {
	u, err := parseUint[W](v, opts.base)
	if err != nil {
		return err
	}
	rec := dumpRecord[W]{
		Bits:      u.Bits(),
		Signed:    opts.signed,
		Decimal:   u.String(),
		Hex:       u.Text(16),
		BitLen:    u.BitLen(),
		OnesCount: u.OnesCount(),
		Words:     u.Words(),
	}
	if opts.signed {
		rec.Decimal = u.AsInt().String()
	}
	dumper.Fdump(w, rec)
	return nil
}
