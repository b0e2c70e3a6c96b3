package main

import (
	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	label = color.New(color.FgCyan)
	good  = color.New(color.FgGreen)
	bad   = color.New(color.FgRed, color.Bold)
)

type rootOptions struct {
	bits    int
	signed  bool
	verbose bool
	color   string

	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{log: zap.NewNop()}

	cmd := &cobra.Command{
		Use:   "fixcalc",
		Short: "Fixed-width integer calculator",
		Long: `fixcalc evaluates, converts and inspects fixed-width integers.

Every value is N bits wide and wraps modulo 2^N. Operands may carry a base
prefix (0x, 0o, 0b, 0n, 0d) unless a base is given explicitly.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = opts.log.Sync()
		},
	}

	pf := cmd.PersistentFlags()
	pf.IntVarP(&opts.bits, "bits", "n", 128, "width in bits")
	pf.BoolVarP(&opts.signed, "signed", "s", false, "treat values as two's complement")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "log to stderr")
	pf.StringVar(&opts.color, "color", "auto", "colorize output (auto|on|off)")

	cmd.AddCommand(
		newCalcCmd(opts),
		newConvCmd(opts),
		newDumpCmd(opts),
		newRecipCmd(opts),
		newVerifyCmd(opts),
	)
	return cmd
}

func (opts *rootOptions) setup() error {
	switch opts.color {
	case "auto":
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	default:
		return errors.Errorf("fixcalc: unsupported color mode %q (must be auto, on or off)", opts.color)
	}

	if opts.verbose {
		log, err := zap.NewDevelopment()
		if err != nil {
			return errors.Wrap(err, "fixcalc: logger")
		}
		opts.log = log
	}
	return nil
}
