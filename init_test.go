package fixnum

import (
	"flag"
	"fmt"
	"log"
	"math/big"
	"math/rand"
	"os"
	"regexp"
	"strings"
	"testing"
	"time"
)

var (
	fuzzIterations   = fuzzDefaultIterations
	fuzzOpsActive    = allFuzzOps
	fuzzWidthsActive = allFuzzWidths
	fuzzSeed         int64

	globalRNG *rand.Rand
)

func TestMain(m *testing.M) {
	var ops StringList
	var widths StringList

	flag.IntVar(&fuzzIterations, "fixnum.fuzziter", fuzzIterations, "Number of iterations to fuzz each op")
	flag.Int64Var(&fuzzSeed, "fixnum.fuzzseed", fuzzSeed, "Seed the RNG (0 == current nanotime)")
	flag.Var(&ops, "fixnum.fuzzop", "Fuzz op to run (can pass multiple times, or a comma separated list)")
	flag.Var(&widths, "fixnum.fuzzwidth", "Fuzz width (u64, i64, u128, i128, u256, i256, u512, i512) (can pass multiple)")
	flag.Parse()

	if fuzzSeed == 0 {
		fuzzSeed = time.Now().UnixNano()
	}
	globalRNG = rand.New(rand.NewSource(fuzzSeed))

	if len(ops) > 0 {
		fuzzOpsActive = nil
		for _, op := range ops {
			fuzzOpsActive = append(fuzzOpsActive, fuzzOp(op))
		}
	}

	if len(widths) > 0 {
		fuzzWidthsActive = nil
		for _, w := range widths {
			fuzzWidthsActive = append(fuzzWidthsActive, fuzzWidth(w))
		}
	}

	log.Println("rando seed:", fuzzSeed) // classic rando!
	log.Println("active ops:", fuzzOpsActive)
	log.Println("iterations:", fuzzIterations)

	code := m.Run()
	os.Exit(code)
}

var (
	big0 = big.NewInt(0)
	big1 = big.NewInt(1)

	// This specifies the maximum relative error allowed between the float64
	// version of a wide integer and the result of the same operation
	// performed by big.Float.
	//
	// Calculate like so:
	//	return math.Nextafter(1.0, 2.0) - 1.0
	//
	floatDiffLimit, _ = new(big.Float).SetString("2.220446049250313080847263336181640625e-16")
)

// wrapBig returns 1 << bits, used to simulate over/underflow.
func wrapBig(bits int) *big.Int {
	return new(big.Int).Lsh(big1, uint(bits))
}

// maxBig returns (1 << bits) - 1.
func maxBig(bits int) *big.Int {
	return new(big.Int).Sub(wrapBig(bits), big1)
}

// wrapUnsigned reduces b modulo 2^bits into [0, 2^bits).
func wrapUnsigned(b *big.Int, bits int) *big.Int {
	return new(big.Int).And(b, maxBig(bits))
}

// wrapSigned reduces b modulo 2^bits into [-2^(bits-1), 2^(bits-1)).
func wrapSigned(b *big.Int, bits int) *big.Int {
	r := wrapUnsigned(b, bits)
	if r.Bit(bits-1) == 1 {
		r.Sub(r, wrapBig(bits))
	}
	return r
}

func bigs(s string) *big.Int {
	s = strings.Replace(s, " ", "", -1)
	b, ok := new(big.Int).SetString(s, 0)
	if !ok {
		panic(fmt.Errorf("fixnum: big string %q invalid", s))
	}
	return b
}

func bigU64(u uint64) *big.Int { return new(big.Int).SetUint64(u) }

func accUintFromBigInt[W Width](b *big.Int) Uint[W] {
	u, acc := UintFromBigInt[W](b)
	if !acc {
		panic(fmt.Errorf("fixnum: inaccurate conversion to Uint in fuzz tester for %s", b))
	}
	return u
}

func accIntFromBigInt[W Width](b *big.Int) Int[W] {
	i, acc := IntFromBigInt[W](b)
	if !acc {
		panic(fmt.Errorf("fixnum: inaccurate conversion to Int in fuzz tester for %s", b))
	}
	return i
}

func u128s(s string) U128 { return accUintFromBigInt[W128](bigs(s)) }
func i128s(s string) I128 { return accIntFromBigInt[W128](bigs(s)) }

var (
	u64  = UintFrom64[W128]
	i64  = IntFrom64[W128]
	u256 = UintFrom64[W256]
)

var trimFloatPattern = regexp.MustCompile(`(\.0+$|(\.\d+[1-9])\0+$)`)

func cleanFloatStr(str string) string {
	return trimFloatPattern.ReplaceAllString(str, "$2")
}

type StringList []string

func (s StringList) Strings() []string { return s }

func (s *StringList) String() string {
	if s == nil {
		return ""
	}
	return strings.Join(*s, ",")
}

func (s *StringList) Set(v string) error {
	vs := strings.Split(v, ",")
	for _, vi := range vs {
		vi = strings.TrimSpace(vi)
		if vi != "" {
			*s = append(*s, vi)
		}
	}
	return nil
}
