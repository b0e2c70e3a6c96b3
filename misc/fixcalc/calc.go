package main

import (
	"fmt"
	"strconv"
	"strings"

	"fortio.org/safecast"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	fixnum "github.com/shabbyrobe/go-fixnum"
	"github.com/shabbyrobe/go-fixnum/internal/radix"
)

var calcOps = []string{"+", "-", "*", "/", "%", "&", "|", "^", "&^", "<<", ">>", "pow", "cmp"}

type calcOptions struct {
	signed bool
	in     int
	out    int
}

func newCalcCmd(root *rootOptions) *cobra.Command {
	var opts calcOptions
	cmd := &cobra.Command{
		Use:   "calc <a> <op> <b>",
		Short: "Evaluate a binary operation",
		Long: "Evaluate a binary operation at a fixed width. Results wrap modulo 2^N.\n\n" +
			"Operators: " + strings.Join(calcOps, " "),
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := engineFor(root.bits)
			if err != nil {
				return err
			}
			opts.signed = root.signed
			root.log.Debug("calc",
				zap.Int("bits", e.bits()),
				zap.Bool("signed", opts.signed),
				zap.Strings("args", args))

			out, err := e.calc(args[0], args[1], args[2], opts)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().IntVar(&opts.in, "base", 0, "base of the operands, 0 to detect from a prefix")
	cmd.Flags().IntVar(&opts.out, "out", 10, "base of the result")
	return cmd
}

func (widthEngine[W, D]) calc(a, op, b string, opts calcOptions) (string, error) {
	if _, err := radix.CheckBase(opts.out); err != nil {
		return "", err
	}
	if opts.signed {
		return calcInt[W](a, op, b, opts)
	}
	return calcUint[W](a, op, b, opts)
}

// shiftAmount parses the right hand side of <<, >> and pow, which is a
// count rather than an N-bit operand.
func shiftAmount[W fixnum.Width](s string, base int) (uint, error) {
	n, err := parseUint[W](s, base)
	if err != nil {
		return 0, err
	}
	if !n.IsUint64() {
		return 0, errors.Errorf("fixcalc: count %q out of range", s)
	}
	by, err := safecast.Conv[uint](n.AsUint64())
	if err != nil {
		return 0, errors.Wrapf(err, "fixcalc: count %q out of range", s)
	}
	return by, nil
}

func calcUint[W fixnum.Width](a, op, b string, opts calcOptions) (string, error) {
	x, err := parseUint[W](a, opts.in)
	if err != nil {
		return "", err
	}

	switch op {
	case "<<", ">>", "pow":
		by, err := shiftAmount[W](b, opts.in)
		if err != nil {
			return "", err
		}
		switch op {
		case "<<":
			return x.Lsh(by).Text(opts.out), nil
		case ">>":
			return x.Rsh(by).Text(opts.out), nil
		default:
			return x.Pow(by).Text(opts.out), nil
		}
	}

	y, err := parseUint[W](b, opts.in)
	if err != nil {
		return "", err
	}

	var z fixnum.Uint[W]
	switch op {
	case "+":
		z = x.Add(y)
	case "-":
		z = x.Sub(y)
	case "*":
		z = x.Mul(y)
	case "/", "%":
		q, r, err := x.TryQuoRem(y)
		if err != nil {
			return "", err
		}
		z = q
		if op == "%" {
			z = r
		}
	case "&":
		z = x.And(y)
	case "|":
		z = x.Or(y)
	case "^":
		z = x.Xor(y)
	case "&^":
		z = x.AndNot(y)
	case "cmp":
		return strconv.Itoa(x.Cmp(y)), nil
	default:
		return "", errors.Errorf("fixcalc: unknown operator %q", op)
	}
	return z.Text(opts.out), nil
}

func calcInt[W fixnum.Width](a, op, b string, opts calcOptions) (string, error) {
	x, err := parseInt[W](a, opts.in)
	if err != nil {
		return "", err
	}

	switch op {
	case "<<", ">>":
		by, err := shiftAmount[W](b, opts.in)
		if err != nil {
			return "", err
		}
		if op == "<<" {
			return x.Lsh(by).Text(opts.out), nil
		}
		return x.Rsh(by).Text(opts.out), nil
	case "pow":
		return "", errors.New("fixcalc: pow is only defined for unsigned values")
	}

	y, err := parseInt[W](b, opts.in)
	if err != nil {
		return "", err
	}

	var z fixnum.Int[W]
	switch op {
	case "+":
		z = x.Add(y)
	case "-":
		z = x.Sub(y)
	case "*":
		z = x.Mul(y)
	case "/", "%":
		q, r, err := x.TryQuoRem(y)
		if err != nil {
			return "", err
		}
		z = q
		if op == "%" {
			z = r
		}
	case "&":
		z = x.And(y)
	case "|":
		z = x.Or(y)
	case "^":
		z = x.Xor(y)
	case "&^":
		z = x.AndNot(y)
	case "cmp":
		return strconv.Itoa(x.Cmp(y)), nil
	default:
		return "", errors.Errorf("fixcalc: unknown operator %q", op)
	}
	return z.Text(opts.out), nil
}
