package fixnum

import (
	"fmt"

	"github.com/shabbyrobe/go-fixnum/internal/radix"
)

// Format implements fmt.Formatter. It supports the verbs %d, %s, %v
// (decimal), %x, %X, %o, %O and %b, the '#' flag for base prefixes, the '+'
// and ' ' sign flags and width with space or '0' padding.
func (u Uint[W]) Format(s fmt.State, c rune) {
	formatMagnitude(s, c, false, u)
}

// Format implements fmt.Formatter; see Uint.Format.
func (i Int[W]) Format(s fmt.State, c rune) {
	formatMagnitude(s, c, i.IsNeg(), i.Abs().AsUint())
}

func formatMagnitude[W Width](s fmt.State, c rune, neg bool, mag Uint[W]) {
	var base uint32
	var prefix string
	lower := false

	switch c {
	case 'd', 's', 'v':
		base = 10
	case 'x':
		base, lower = 16, true
		if s.Flag('#') {
			prefix = "0x"
		}
	case 'X':
		base = 16
		if s.Flag('#') {
			prefix = "0X"
		}
	case 'o':
		base = 8
		if s.Flag('#') {
			prefix = "0"
		}
	case 'O':
		base, prefix = 8, "0o"
	case 'b':
		base = 2
		if s.Flag('#') {
			prefix = "0b"
		}
	default:
		fmt.Fprintf(s, "%%!%c(fixnum=%s)", c, string(radix.Append(nil, neg, mag.appendDigits(nil, 10))))
		return
	}

	body := radix.Append(nil, false, mag.appendDigits(make([]byte, 0, len(mag.w)*wordBits), base))
	if lower {
		for i, ch := range body {
			if ch >= 'A' && ch <= 'Z' {
				body[i] = ch + ('a' - 'A')
			}
		}
	}
	if prefix == "0" && len(body) == 1 && body[0] == '0' {
		prefix = ""
	}

	var sign string
	if neg {
		sign = "-"
	} else if s.Flag('+') {
		sign = "+"
	} else if s.Flag(' ') {
		sign = " "
	}

	out := make([]byte, 0, len(sign)+len(prefix)+len(body))
	out = append(out, sign...)
	out = append(out, prefix...)

	if width, ok := s.Width(); ok && width > len(sign)+len(prefix)+len(body) {
		pad := width - len(sign) - len(prefix) - len(body)
		switch {
		case s.Flag('-'):
			out = append(out, body...)
			for ; pad > 0; pad-- {
				out = append(out, ' ')
			}
			s.Write(out)
			return

		case s.Flag('0'):
			for ; pad > 0; pad-- {
				out = append(out, '0')
			}

		default:
			spaces := make([]byte, pad, pad+len(out)+len(body))
			for i := range spaces {
				spaces[i] = ' '
			}
			out = append(spaces, out...)
		}
	}

	out = append(out, body...)
	s.Write(out)
}
