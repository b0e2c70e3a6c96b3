package main

import (
	"io"
	"math/rand"

	"github.com/pkg/errors"

	fixnum "github.com/shabbyrobe/go-fixnum"
)

// engine runs every subcommand at one width. Go cannot pass a generic
// function around uninstantiated, so each supported width gets its own
// widthEngine and the commands talk to it through this interface.
type engine interface {
	bits() int
	calc(a, op, b string, opts calcOptions) (string, error)
	conv(v string, opts convOptions) ([]convResult, error)
	dump(w io.Writer, v string, opts dumpOptions) error
	recip(denom, numer string, base int) (recipResult, error)
	verify(rng *rand.Rand, iter int) (checks int, err error)
}

// widthEngine implements engine for W. D is twice the width of W when
// double is set; recip needs it to hold the full product of two W values.
type widthEngine[W, D fixnum.Width] struct {
	double bool
}

var supportedBits = []int{32, 64, 96, 128, 192, 256, 384, 512, 1024}

func engineFor(bits int) (engine, error) {
	switch bits {
	case 32:
		return widthEngine[fixnum.W32, fixnum.W64]{double: true}, nil
	case 64:
		return widthEngine[fixnum.W64, fixnum.W128]{double: true}, nil
	case 96:
		return widthEngine[fixnum.W96, fixnum.W192]{double: true}, nil
	case 128:
		return widthEngine[fixnum.W128, fixnum.W256]{double: true}, nil
	case 192:
		return widthEngine[fixnum.W192, fixnum.W384]{double: true}, nil
	case 256:
		return widthEngine[fixnum.W256, fixnum.W512]{double: true}, nil
	case 384:
		return widthEngine[fixnum.W384, fixnum.W384]{}, nil
	case 512:
		return widthEngine[fixnum.W512, fixnum.W1024]{double: true}, nil
	case 1024:
		return widthEngine[fixnum.W1024, fixnum.W1024]{}, nil
	}
	return nil, errors.Errorf("fixcalc: unsupported width %d, want one of %v", bits, supportedBits)
}

func (widthEngine[W, D]) bits() int {
	return fixnum.Uint[W]{}.Bits()
}

func parseUint[W fixnum.Width](s string, base int) (fixnum.Uint[W], error) {
	u, err := fixnum.ParseUint[W](s, base)
	if err != nil {
		return u, errors.Wrapf(err, "fixcalc: bad operand %q", s)
	}
	return u, nil
}

func parseInt[W fixnum.Width](s string, base int) (fixnum.Int[W], error) {
	i, err := fixnum.ParseInt[W](s, base)
	if err != nil {
		return i, errors.Wrapf(err, "fixcalc: bad operand %q", s)
	}
	return i, nil
}
