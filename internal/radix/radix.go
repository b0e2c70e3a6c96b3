// Package radix tokenizes and formats integer digit strings in bases 2
// through 36.
//
// It knows nothing about the integers themselves: Scan feeds digit values to
// a callback and Append renders digit values produced by the caller.
package radix

import (
	"fortio.org/safecast"
	"github.com/pkg/errors"
)

const (
	Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

	MinBase = 2
	MaxBase = 36
)

var ErrBase = errors.New("radix: base must be between 2 and 36")

// Detect inspects s for a base prefix and returns the base together with the
// rest of the string. Recognised prefixes:
//
//	0x  x  #   16
//	0d  d      10
//	0o  o  @   8
//	0n  n      4
//	0b  b  !   2
//
// Without a prefix the base is 10. Prefix letters are case-insensitive.
func Detect(s string) (base int, rest string) {
	if len(s) >= 2 && s[0] == '0' {
		if b := prefixBase(s[1]); b != 0 {
			return b, s[2:]
		}
	}
	if len(s) >= 1 {
		switch s[0] {
		case '#':
			return 16, s[1:]
		case '@':
			return 8, s[1:]
		case '!':
			return 2, s[1:]
		}
		if b := prefixBase(s[0]); b != 0 {
			return b, s[1:]
		}
	}
	return 10, s
}

func prefixBase(c byte) int {
	switch c | 0x20 {
	case 'x':
		return 16
	case 'd':
		return 10
	case 'o':
		return 8
	case 'n':
		return 4
	case 'b':
		return 2
	}
	return 0
}

// Prefix returns the canonical prefix Detect recognises for base, or "" if
// there is none.
func Prefix(base int) string {
	switch base {
	case 16:
		return "0x"
	case 10:
		return "0d"
	case 8:
		return "0o"
	case 4:
		return "0n"
	case 2:
		return "0b"
	}
	return ""
}

// Digit returns the value of c in base, and whether c is a digit of base at
// all. Letters are case-insensitive.
func Digit(c byte, base uint32) (d uint32, ok bool) {
	switch {
	case c >= '0' && c <= '9':
		d = uint32(c - '0')
	case c >= 'a' && c <= 'z':
		d = uint32(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		d = uint32(c-'A') + 10
	default:
		return 0, false
	}
	return d, d < base
}

// CheckBase returns base as a uint32, or ErrBase if it is out of range.
func CheckBase(base int) (uint32, error) {
	b, err := safecast.Conv[uint32](base)
	if err != nil || b < MinBase || b > MaxBase {
		return 0, errors.Wrapf(ErrBase, "radix: got %d", base)
	}
	return b, nil
}

// Scan walks the digits of s, calling fn with the active base and each
// digit value, most significant first.
//
// If base is 0 it is detected from a prefix, see Detect. Characters that are
// not digits of the active base are skipped. A leading '-' is reported
// through neg only when the active base is 10; otherwise it is ignored.
func Scan(s string, base int, fn func(base, digit uint32)) (neg bool, err error) {
	if len(s) > 0 && s[0] == '-' {
		neg, s = true, s[1:]
	}
	if base == 0 {
		base, s = Detect(s)
	}
	b, err := CheckBase(base)
	if err != nil {
		return false, err
	}
	if b != 10 {
		neg = false
	}

	for i := 0; i < len(s); i++ {
		if d, ok := Digit(s[i], b); ok {
			fn(b, d)
		}
	}
	return neg, nil
}

// Append renders digits, which hold digit values least significant first,
// onto dst using Alphabet. An empty digits slice renders as "0".
func Append(dst []byte, neg bool, digits []byte) []byte {
	if neg {
		dst = append(dst, '-')
	}
	if len(digits) == 0 {
		return append(dst, '0')
	}
	for i := len(digits) - 1; i >= 0; i-- {
		dst = append(dst, Alphabet[digits[i]])
	}
	return dst
}
