package fixnum

import (
	"math/bits"
)

// Uint is an unsigned integer N bits wide, where N is 32 * len(W). Uint is
// a value type; all operations return new values and overflow wraps modulo
// 2^N.
type Uint[W Width] struct {
	w W
}

func UintFrom64[W Width](v uint64) Uint[W] { return Uint[W]{w: fromUint64[W](v, 0)} }
func UintFrom32[W Width](v uint32) Uint[W] { return Uint[W]{w: fromUint64[W](uint64(v), 0)} }
func UintFrom16[W Width](v uint16) Uint[W] { return Uint[W]{w: fromUint64[W](uint64(v), 0)} }
func UintFrom8[W Width](v uint8) Uint[W]   { return Uint[W]{w: fromUint64[W](uint64(v), 0)} }

// UintFromInt64 sign extends v, so UintFromInt64(-1) has every bit set.
func UintFromInt64[W Width](v int64) Uint[W] {
	var fill uint32
	if v < 0 {
		fill = wordMax
	}
	return Uint[W]{w: fromUint64[W](uint64(v), fill)}
}

// UintFromWords creates a Uint directly from its word store, least
// significant word first.
func UintFromWords[W Width](w W) Uint[W] { return Uint[W]{w: w} }

func MaxUint[W Width]() (out Uint[W]) {
	for i := 0; i < len(out.w); i++ {
		out.w[i] = wordMax
	}
	return out
}

// Bits returns N, the width of u in bits.
func (u Uint[W]) Bits() int { return len(u.w) * wordBits }

// Size returns the number of 32-bit words in u.
func (u Uint[W]) Size() int { return len(u.w) }

// Word returns word i of u, word 0 being the least significant. Words past
// the end of the store read as 0.
func (u Uint[W]) Word(i int) uint32 {
	if i < 0 || i >= len(u.w) {
		return 0
	}
	return u.w[i]
}

// Words returns a copy of the word store.
func (u Uint[W]) Words() W { return u.w }

func (u Uint[W]) IsZero() bool {
	var zero W
	return u.w == zero
}

// AsInt relabels u as a two's complement Int of the same width. No bits
// change.
func (u Uint[W]) AsInt() Int[W] { return Int[W]{w: u.w} }

// IsInt reports whether u can be represented in an Int of the same width.
func (u Uint[W]) IsInt() bool { return u.w[len(u.w)-1]&signBit == 0 }

// AsUint64 truncates u to fit in a uint64. See IsUint64.
func (u Uint[W]) AsUint64() uint64 { return toUint64(u.w, 0) }
func (u Uint[W]) AsUint32() uint32 { return u.w[0] }
func (u Uint[W]) AsUint16() uint16 { return uint16(u.w[0]) }
func (u Uint[W]) AsUint8() uint8   { return uint8(u.w[0]) }

// AsInt64 truncates u and reinterprets the low 64 bits as an int64.
func (u Uint[W]) AsInt64() int64 { return int64(toUint64(u.w, 0)) }

// IsUint64 reports whether u can be represented as a uint64.
func (u Uint[W]) IsUint64() bool {
	for i := 2; i < len(u.w); i++ {
		if u.w[i] != 0 {
			return false
		}
	}
	return true
}

func (u Uint[W]) fitsWord() bool {
	for i := 1; i < len(u.w); i++ {
		if u.w[i] != 0 {
			return false
		}
	}
	return true
}

func (u Uint[W]) Inc() Uint[W] {
	for i := 0; i < len(u.w); i++ {
		u.w[i]++
		if u.w[i] != 0 {
			break
		}
	}
	return u
}

func (u Uint[W]) Dec() Uint[W] {
	for i := 0; i < len(u.w); i++ {
		u.w[i]--
		if u.w[i] != wordMax {
			break
		}
	}
	return u
}

func (u Uint[W]) Add(n Uint[W]) (v Uint[W]) {
	carry := false
	for i := 0; i < len(u.w); i++ {
		a := u.w[i]
		if carry {
			v.w[i] = a + n.w[i] + 1
			carry = v.w[i] <= a
		} else {
			v.w[i] = a + n.w[i]
			carry = v.w[i] < a
		}
	}
	return v
}

func (u Uint[W]) Sub(n Uint[W]) (v Uint[W]) {
	borrow := false
	for i := 0; i < len(u.w); i++ {
		a := u.w[i]
		if borrow {
			v.w[i] = a - n.w[i] - 1
			borrow = v.w[i] >= a
		} else {
			v.w[i] = a - n.w[i]
			borrow = v.w[i] > a
		}
	}
	return v
}

func (u Uint[W]) Add32(n uint32) Uint[W] {
	u.w[0] += n
	if u.w[0] >= n {
		return u
	}
	for i := 1; i < len(u.w); i++ {
		u.w[i]++
		if u.w[i] != 0 {
			break
		}
	}
	return u
}

func (u Uint[W]) Sub32(n uint32) Uint[W] {
	a := u.w[0]
	u.w[0] -= n
	if u.w[0] <= a {
		return u
	}
	for i := 1; i < len(u.w); i++ {
		u.w[i]--
		if u.w[i] != wordMax {
			break
		}
	}
	return u
}

// Neg returns the two's complement of u, i.e. 2^N - u.
func (u Uint[W]) Neg() Uint[W] {
	return u.Not().Inc()
}

func (u Uint[W]) Cmp(n Uint[W]) int {
	for i := len(u.w) - 1; i >= 0; i-- {
		if u.w[i] > n.w[i] {
			return 1
		} else if u.w[i] < n.w[i] {
			return -1
		}
	}
	return 0
}

func (u Uint[W]) Equal(n Uint[W]) bool            { return u.w == n.w }
func (u Uint[W]) GreaterThan(n Uint[W]) bool      { return u.Cmp(n) > 0 }
func (u Uint[W]) GreaterOrEqualTo(n Uint[W]) bool { return u.Cmp(n) >= 0 }
func (u Uint[W]) LessThan(n Uint[W]) bool         { return u.Cmp(n) < 0 }
func (u Uint[W]) LessOrEqualTo(n Uint[W]) bool    { return u.Cmp(n) <= 0 }

func (u Uint[W]) And(n Uint[W]) Uint[W] {
	for i := 0; i < len(u.w); i++ {
		u.w[i] &= n.w[i]
	}
	return u
}

func (u Uint[W]) AndNot(n Uint[W]) Uint[W] {
	for i := 0; i < len(u.w); i++ {
		u.w[i] &^= n.w[i]
	}
	return u
}

func (u Uint[W]) Or(n Uint[W]) Uint[W] {
	for i := 0; i < len(u.w); i++ {
		u.w[i] |= n.w[i]
	}
	return u
}

func (u Uint[W]) Xor(n Uint[W]) Uint[W] {
	for i := 0; i < len(u.w); i++ {
		u.w[i] ^= n.w[i]
	}
	return u
}

func (u Uint[W]) Not() Uint[W] {
	for i := 0; i < len(u.w); i++ {
		u.w[i] = ^u.w[i]
	}
	return u
}

// Lsh shifts u left by n bits. Shifting by N or more yields 0.
func (u Uint[W]) Lsh(n uint) (v Uint[W]) {
	if n == 0 {
		return u
	}
	nw := len(u.w)
	if n >= uint(nw*wordBits) {
		return v
	}
	ws, bs := int(n/wordBits), n%wordBits
	for i := nw - 1; i >= ws; i-- {
		x := u.w[i-ws] << bs
		if bs > 0 && i-ws-1 >= 0 {
			x |= u.w[i-ws-1] >> (wordBits - bs)
		}
		v.w[i] = x
	}
	return v
}

// Rsh shifts u right by n bits, filling with zeros. Shifting by N or more
// yields 0.
func (u Uint[W]) Rsh(n uint) (v Uint[W]) {
	if n == 0 {
		return u
	}
	nw := len(u.w)
	if n >= uint(nw*wordBits) {
		return v
	}
	ws, bs := int(n/wordBits), n%wordBits
	for i := 0; i < nw-ws; i++ {
		x := u.w[i+ws] >> bs
		if bs > 0 && i+ws+1 < nw {
			x |= u.w[i+ws+1] << (wordBits - bs)
		}
		v.w[i] = x
	}
	return v
}

// RotateRight rotates u right by n bits; n is taken modulo N.
func (u Uint[W]) RotateRight(n uint) (v Uint[W]) {
	nw := len(u.w)
	n %= uint(nw * wordBits)
	if n == 0 {
		return u
	}
	ws, bs := int(n/wordBits), n%wordBits
	for i := 0; i < nw; i++ {
		lo := u.w[(i+ws)%nw]
		hi := u.w[(i+ws+1)%nw]
		if bs == 0 {
			v.w[i] = lo
		} else {
			v.w[i] = lo>>bs | hi<<(wordBits-bs)
		}
	}
	return v
}

// RotateLeft rotates u left by n bits; n is taken modulo N.
func (u Uint[W]) RotateLeft(n uint) Uint[W] {
	nb := uint(len(u.w) * wordBits)
	return u.RotateRight(nb - n%nb)
}

// Mul returns u * n modulo 2^N using shift-and-add over the set bits of n.
func (u Uint[W]) Mul(n Uint[W]) (out Uint[W]) {
	if n.fitsWord() {
		return u.Mul32(n.w[0])
	}
	if u.fitsWord() {
		return n.Mul32(u.w[0])
	}

	shifted := u
	var pos uint
	for i := 0; i < len(n.w); i++ {
		x := n.w[i]
		for x != 0 {
			b := uint(i*wordBits + lowestBit32(x))
			shifted = shifted.Lsh(b - pos)
			pos = b
			out = out.Add(shifted)
			x &= x - 1
		}
	}
	return out
}

// Mul32 returns u * n modulo 2^N. Runs of zero bits in n are skipped with a
// single shift.
func (u Uint[W]) Mul32(n uint32) (out Uint[W]) {
	shifted := u
	for n != 0 {
		tz := uint(bits.TrailingZeros32(n))
		shifted = shifted.Lsh(tz)
		out = out.Add(shifted)
		shifted = shifted.Lsh(1)
		n >>= tz
		n >>= 1
	}
	return out
}
