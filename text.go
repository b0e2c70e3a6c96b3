package fixnum

import (
	"strconv"

	"github.com/pkg/errors"

	"github.com/shabbyrobe/go-fixnum/internal/radix"
)

// ParseUint parses s in the given base (2 to 36). If base is 0 it is
// detected from a prefix: 0x, x or # for 16, 0d or d for 10, 0o, o or @ for
// 8, 0n or n for 4 and 0b, b or ! for 2; without a prefix s is decimal.
//
// Characters that are not digits of the base are skipped, so "1_000" and
// "1,000" both parse as 1000. Values that do not fit wrap modulo 2^N. A
// leading '-' is only honoured in base 10 and yields the two's complement
// of the magnitude.
func ParseUint[W Width](s string, base int) (out Uint[W], err error) {
	if s == "" {
		return out, errors.WithStack(ErrEmpty)
	}
	neg, err := radix.Scan(s, base, func(b, d uint32) {
		out = out.Mul32(b).Add32(d)
	})
	if err != nil {
		return out, errors.Wrapf(err, "fixnum: parse %q", s)
	}
	if neg {
		out = out.Neg()
	}
	return out, nil
}

// ParseInt parses s like ParseUint. A leading '-' negates the result in base
// 10; in every other base the digits are taken as the two's complement bit
// pattern, so ParseInt("0xFF", 0) for a W32 is 255, not -1.
func ParseInt[W Width](s string, base int) (out Int[W], err error) {
	u, err := ParseUint[W](s, base)
	return u.AsInt(), err
}

// MustParseUint is ParseUint for constants; it panics on error.
func MustParseUint[W Width](s string) Uint[W] {
	u, err := ParseUint[W](s, 0)
	if err != nil {
		panic(err)
	}
	return u
}

// MustParseInt is ParseInt for constants; it panics on error.
func MustParseInt[W Width](s string) Int[W] {
	i, err := ParseInt[W](s, 0)
	if err != nil {
		panic(err)
	}
	return i
}

// appendDigits collects the digit values of u in base, least significant
// first. The worst case is N digits, in base 2.
func (u Uint[W]) appendDigits(dst []byte, base uint32) []byte {
	for !u.IsZero() {
		var d uint32
		u, d = u.QuoRem32(base)
		dst = append(dst, byte(d))
	}
	return dst
}

// AppendText appends the digits of u in base (2 to 36) to dst, using the
// upper case alphabet 0-9A-Z. It panics if base is out of range.
func (u Uint[W]) AppendText(dst []byte, base int) []byte {
	b, err := radix.CheckBase(base)
	if err != nil {
		panic(err)
	}
	digits := u.appendDigits(make([]byte, 0, len(u.w)*wordBits), b)
	return radix.Append(dst, false, digits)
}

// Text returns u in base (2 to 36). ParseUint(u.Text(b), b) == u.
func (u Uint[W]) Text(base int) string {
	return string(u.AppendText(nil, base))
}

func (u Uint[W]) String() string {
	if u.IsZero() {
		return "0"
	}
	if u.IsUint64() {
		return strconv.FormatUint(u.AsUint64(), 10)
	}
	return u.Text(10)
}

// AppendText appends i in base to dst as a '-' followed by the magnitude for
// negative numbers, in every base.
func (i Int[W]) AppendText(dst []byte, base int) []byte {
	b, err := radix.CheckBase(base)
	if err != nil {
		panic(err)
	}
	mag := i.Abs().AsUint()
	digits := mag.appendDigits(make([]byte, 0, len(i.w)*wordBits), b)
	return radix.Append(dst, i.IsNeg(), digits)
}

func (i Int[W]) Text(base int) string {
	return string(i.AppendText(nil, base))
}

func (i Int[W]) String() string {
	if i.IsInt64() {
		return strconv.FormatInt(i.AsInt64(), 10)
	}
	return i.Text(10)
}
