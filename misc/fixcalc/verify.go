package main

import (
	"context"
	"math/big"
	"math/rand"
	"runtime"
	"time"

	"fortio.org/safecast"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	fixnum "github.com/shabbyrobe/go-fixnum"
)

type verifyOptions struct {
	iter   uint
	widths []int
	seed   int64
	jobs   int
}

type verifyResult struct {
	bits   int
	checks int
	err    error
}

func newVerifyCmd(root *rootOptions) *cobra.Command {
	var opts verifyOptions
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Cross-check random operations against math/big",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.seed == 0 {
				opts.seed = time.Now().UnixNano()
			}
			root.log.Info("verify",
				zap.Int64("seed", opts.seed),
				zap.Uint("iter", opts.iter),
				zap.Ints("widths", opts.widths))

			results, err := runVerify(cmd.Context(), root.log, opts)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			var failed int
			for _, r := range results {
				if r.err != nil {
					failed++
					bad.Fprintf(w, "FAIL %5d bits  %v\n", r.bits, r.err)
					continue
				}
				good.Fprintf(w, "ok   %5d bits  %d checks\n", r.bits, r.checks)
			}
			if failed > 0 {
				return errors.Errorf("fixcalc: %d of %d widths failed (seed %d)", failed, len(results), opts.seed)
			}
			return nil
		},
	}
	cmd.Flags().UintVar(&opts.iter, "iter", 1000, "iterations per width")
	cmd.Flags().IntSliceVar(&opts.widths, "widths", supportedBits, "widths to check")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "random seed, 0 for the current time")
	cmd.Flags().IntVar(&opts.jobs, "jobs", runtime.NumCPU(), "widths checked in parallel")
	return cmd
}

// runVerify checks each width on its own goroutine. A mismatch is recorded
// against its width rather than cancelling the others; only setup errors
// stop the group.
func runVerify(ctx context.Context, log *zap.Logger, opts verifyOptions) ([]verifyResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	iter, err := safecast.Conv[int](opts.iter)
	if err != nil {
		return nil, errors.Wrapf(err, "fixcalc: iter %d", opts.iter)
	}
	engines := make([]engine, len(opts.widths))
	for i, bits := range opts.widths {
		if engines[i], err = engineFor(bits); err != nil {
			return nil, err
		}
	}

	results := make([]verifyResult, len(engines))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(opts.jobs, len(engines))))

	for i, e := range engines {
		i, e := i, e
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			rng := rand.New(rand.NewSource(opts.seed + int64(e.bits())))
			checks, err := e.verify(rng, iter)
			results[i] = verifyResult{bits: e.bits(), checks: checks, err: err}
			log.Debug("verified width",
				zap.Int("bits", e.bits()),
				zap.Int("checks", checks),
				zap.Duration("took", time.Since(start)),
				zap.Error(err))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// verifyOperand returns a random value of random magnitude so that small
// divisors and short shifts get exercised as often as full-width ones.
func verifyOperand[W fixnum.Width](rng *rand.Rand) fixnum.Uint[W] {
	u := fixnum.RandUint[W](rng)
	return u.Rsh(uint(rng.Intn(u.Bits())))
}

func (e widthEngine[W, D]) verify(rng *rand.Rand, iter int) (checks int, err error) {
	bits := e.bits()
	mod := new(big.Int).Lsh(big.NewInt(1), uint(bits))

	for i := 0; i < iter; i++ {
		x, y := verifyOperand[W](rng), verifyOperand[W](rng)
		bx, by := x.AsBigInt(), y.AsBigInt()

		check := func(op string, got fixnum.Uint[W], want *big.Int) error {
			checks++
			want.Mod(want, mod)
			if got.AsBigInt().Cmp(want) != 0 {
				return errors.Errorf("%s %s %s = %s, want %s", x, op, y, got, want)
			}
			return nil
		}

		if err := check("+", x.Add(y), new(big.Int).Add(bx, by)); err != nil {
			return checks, err
		}
		if err := check("-", x.Sub(y), new(big.Int).Sub(bx, by)); err != nil {
			return checks, err
		}
		if err := check("*", x.Mul(y), new(big.Int).Mul(bx, by)); err != nil {
			return checks, err
		}

		shift := uint(rng.Intn(bits))
		if err := check("<<", x.Lsh(shift), new(big.Int).Lsh(bx, shift)); err != nil {
			return checks, err
		}
		if err := check(">>", x.Rsh(shift), new(big.Int).Rsh(bx, shift)); err != nil {
			return checks, err
		}
		if err := check("sqrt", x.Sqrt(), new(big.Int).Sqrt(bx)); err != nil {
			return checks, err
		}

		base := 2 + rng.Intn(35)
		checks++
		if back, err := fixnum.ParseUint[W](x.Text(base), base); err != nil || !back.Equal(x) {
			return checks, errors.Errorf("%s in base %d parsed back as %s (%v)", x, base, back, err)
		}

		if y.IsZero() {
			continue
		}

		q, r := x.QuoRem(y)
		bq, br := new(big.Int).QuoRem(bx, by, new(big.Int))
		if err := check("/", q, bq); err != nil {
			return checks, err
		}
		if err := check("%", r, br); err != nil {
			return checks, err
		}

		if e.double {
			div, err := findDivider[W, D](y)
			if err != nil {
				return checks, err
			}
			if err := check("recip/", divide[W, D](div, x), new(big.Int).Quo(bx, by)); err != nil {
				return checks, err
			}
		}

		// Signed truncated division of the same bit patterns.
		sx, sy := x.AsInt(), y.AsInt()
		sq, sr := sx.QuoRem(sy)
		bsq, bsr := new(big.Int).QuoRem(sx.AsBigInt(), sy.AsBigInt(), new(big.Int))
		if err := check("signed /", sq.AsUint(), bsq); err != nil {
			return checks, err
		}
		if err := check("signed %", sr.AsUint(), bsr); err != nil {
			return checks, err
		}
	}
	return checks, nil
}
