package fixnum

import (
	"math/bits"
)

// Bit returns the value of the i'th bit of u. Bits outside the width read
// as 0.
func (u Uint[W]) Bit(i int) uint {
	if i < 0 || i >= len(u.w)*wordBits {
		return 0
	}
	return uint(u.w[i/wordBits]>>uint(i%wordBits)) & 1
}

// SetBit returns u with the i'th bit set to b (0 or 1). It panics if i is
// outside the width.
func (u Uint[W]) SetBit(i int, b uint) Uint[W] {
	if i < 0 || i >= len(u.w)*wordBits {
		panic("fixnum: bit index out of range")
	}
	mask := uint32(1) << uint(i%wordBits)
	if b == 0 {
		u.w[i/wordBits] &^= mask
	} else {
		u.w[i/wordBits] |= mask
	}
	return u
}

// FindHighestBitSet returns the index of the most significant set bit, or
// -1 if u is 0.
func (u Uint[W]) FindHighestBitSet() int {
	for i := len(u.w) - 1; i >= 0; i-- {
		if u.w[i] != 0 {
			return i*wordBits + highestBit32(u.w[i])
		}
	}
	return -1
}

// FindLowestBitSet returns the index of the least significant set bit, or
// -1 if u is 0.
func (u Uint[W]) FindLowestBitSet() int {
	for i := 0; i < len(u.w); i++ {
		if u.w[i] != 0 {
			return i*wordBits + lowestBit32(u.w[i])
		}
	}
	return -1
}

// BitLen returns the minimum number of bits required to represent u.
func (u Uint[W]) BitLen() int { return u.FindHighestBitSet() + 1 }

func (u Uint[W]) LeadingZeros() uint {
	return uint(len(u.w)*wordBits - u.BitLen())
}

func (u Uint[W]) TrailingZeros() uint {
	if lo := u.FindLowestBitSet(); lo >= 0 {
		return uint(lo)
	}
	return uint(len(u.w) * wordBits)
}

func (u Uint[W]) OnesCount() (n int) {
	for i := 0; i < len(u.w); i++ {
		n += bits.OnesCount32(u.w[i])
	}
	return n
}

func (u Uint[W]) IsPow2() bool {
	return !u.IsZero() && u.And(u.Dec()).IsZero()
}

// NextPow2 returns the smallest power of 2 that is >= u. 0 yields 1; values
// above the largest representable power of 2 wrap to 0.
func (u Uint[W]) NextPow2() (out Uint[W]) {
	if u.IsZero() {
		out.w[0] = 1
		return out
	}
	if u.IsPow2() {
		return u
	}
	hi := u.FindHighestBitSet() + 1
	if hi >= len(u.w)*wordBits {
		return out
	}
	return out.SetBit(hi, 1)
}

// CeilLog2 returns the smallest e such that 2^e >= u. Both 0 and 1 yield 0.
func (u Uint[W]) CeilLog2() int {
	if u.fitsWord() && u.w[0] <= 1 {
		return 0
	}
	return u.Dec().FindHighestBitSet() + 1
}
