package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	fixnum "github.com/shabbyrobe/go-fixnum"
)

// The reciprocal finder computes the magic number compilers use to replace
// division by a constant with a multiply and a shift. Each divisor gets
// one of three treatments:
//
//	power of two:  q = n >> shift
//	plain:         q = hi(n * magic) >> shift
//	add:           t = hi(n * magic); q = ((n - t) >> 1 + t) >> shift
//
// hi(x) is the upper N bits of the 2N-bit product, which is why the
// finder only works for widths with a double-width partner.

type recipResult struct {
	Denom string
	Magic string
	Shift uint
	Add   bool
	Pow2  bool

	// Quo is set when a numerator was given.
	Quo string
}

type divider[W fixnum.Width] struct {
	magic fixnum.Uint[W]
	shift uint
	add   bool
	pow2  bool
}

func newRecipCmd(root *rootOptions) *cobra.Command {
	var base int
	var numer string
	cmd := &cobra.Command{
		Use:   "recip <denom>",
		Short: "Find the multiplicative reciprocal for unsigned division by a constant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := engineFor(root.bits)
			if err != nil {
				return err
			}
			root.log.Debug("recip", zap.Int("bits", e.bits()), zap.String("denom", args[0]))

			res, err := e.recip(args[0], numer, base)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			label.Fprint(w, "denom ")
			fmt.Fprintln(w, res.Denom)
			label.Fprint(w, "magic ")
			fmt.Fprintln(w, res.Magic)
			label.Fprint(w, "shift ")
			fmt.Fprintln(w, res.Shift)
			label.Fprint(w, "add   ")
			fmt.Fprintln(w, res.Add)
			if numer != "" {
				label.Fprint(w, "quo   ")
				fmt.Fprintln(w, res.Quo)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&base, "base", 0, "base of the input, 0 to detect from a prefix")
	cmd.Flags().StringVar(&numer, "numer", "", "also divide this numerator through the reciprocal")
	return cmd
}

func (e widthEngine[W, D]) recip(denom, numer string, base int) (res recipResult, err error) {
	if !e.double {
		return res, errors.Errorf("fixcalc: recip has no double width for %d bits", e.bits())
	}
	d, err := parseUint[W](denom, base)
	if err != nil {
		return res, err
	}
	div, err := findDivider[W, D](d)
	if err != nil {
		return res, err
	}
	res = recipResult{
		Denom: d.String(),
		Magic: "0x" + div.magic.Text(16),
		Shift: div.shift,
		Add:   div.add,
		Pow2:  div.pow2,
	}

	if numer != "" {
		n, err := parseUint[W](numer, base)
		if err != nil {
			return res, err
		}
		q := divide[W, D](div, n)
		if want := n.Quo(d); !q.Equal(want) {
			return res, errors.Errorf("fixcalc: reciprocal gave %s / %s = %s, want %s", n, d, q, want)
		}
		res.Quo = q.String()
	}
	return res, nil
}

// findDivider computes the divider for denom. D must be twice the width of
// W.
func findDivider[W, D fixnum.Width](denom fixnum.Uint[W]) (div divider[W], err error) {
	if denom.IsZero() {
		return div, errors.WithStack(fixnum.ErrDivisionByZero)
	}

	floorLog2 := uint(denom.BitLen() - 1)
	if denom.IsPow2() {
		div.shift, div.pow2 = floorLog2, true
		return div, nil
	}

	// 2^(N+floorLog2) / denom fits in N bits because denom > 2^floorLog2.
	n := uint(denom.Bits())
	proposed, rem := fixnum.UintFrom64[D](1).
		Lsh(floorLog2 + n).
		QuoRem(fixnum.ResizeUint[D](denom))

	m, r := fixnum.ResizeUint[W](proposed), fixnum.ResizeUint[W](rem)
	e := denom.Sub(r)
	if e.LessThan(fixnum.UintFrom64[W](1).Lsh(floorLog2)) {
		div.shift = floorLog2
	} else {
		// The magic needs N+1 bits; the top bit is implied by the add step.
		m = m.Add(m)
		twiceRem := r.Add(r)
		if twiceRem.GreaterOrEqualTo(denom) || twiceRem.LessThan(r) {
			m = m.Inc()
		}
		div.shift = floorLog2
		div.add = true
	}
	div.magic = m.Inc()
	return div, nil
}

// divide returns numer / denom using the divider found for denom.
func divide[W, D fixnum.Width](div divider[W], numer fixnum.Uint[W]) fixnum.Uint[W] {
	if div.pow2 {
		return numer.Rsh(div.shift)
	}
	q := mulHi[W, D](numer, div.magic)
	if div.add {
		return numer.Sub(q).Rsh(1).Add(q).Rsh(div.shift)
	}
	return q.Rsh(div.shift)
}

// mulHi returns the upper N bits of the 2N-bit product of a and b.
func mulHi[W, D fixnum.Width](a, b fixnum.Uint[W]) fixnum.Uint[W] {
	n := uint(a.Bits())
	p := fixnum.ResizeUint[D](a).Mul(fixnum.ResizeUint[D](b))
	return fixnum.ResizeUint[W](p.Rsh(n))
}
