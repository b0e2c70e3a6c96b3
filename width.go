package fixnum

// Width is the word store of a fixed-width integer. Each type in the set is
// an array of 32-bit words, word 0 being the least significant, so the bit
// width N of an integer is always 32 * len(W) and there is never a partial
// top word.
//
// Go has no const generics, so the width is carried by the array type
// instead. Any named type over one of these arrays is accepted.
type Width interface {
	~[1]uint32 | ~[2]uint32 | ~[3]uint32 | ~[4]uint32 | ~[6]uint32 |
		~[8]uint32 | ~[12]uint32 | ~[16]uint32 | ~[32]uint32
}

type (
	W32   [1]uint32
	W64   [2]uint32
	W96   [3]uint32
	W128  [4]uint32
	W192  [6]uint32
	W256  [8]uint32
	W384  [12]uint32
	W512  [16]uint32
	W1024 [32]uint32
)

type (
	U64  = Uint[W64]
	I64  = Int[W64]
	U128 = Uint[W128]
	I128 = Int[W128]
	U256 = Uint[W256]
	I256 = Int[W256]
	U512 = Uint[W512]
	I512 = Int[W512]
)

const (
	wordBits = 32
	wordMax  = 0xFFFFFFFF
	signBit  = 0x80000000
)

func wordsOf[W Width]() int {
	var w W
	return len(w)
}

func bitsOf[W Width]() int {
	return wordsOf[W]() * wordBits
}

// fromUint64 places v in the two lowest words and fills every other word
// with fill. fill is 0 for zero extension and wordMax for sign extension.
func fromUint64[W Width](v uint64, fill uint32) (w W) {
	w[0] = uint32(v)
	hi := 1
	if hi < len(w) {
		w[hi] = uint32(v >> 32)
	}
	for i := 2; i < len(w); i++ {
		w[i] = fill
	}
	return w
}

// toUint64 is the inverse of fromUint64: words missing from narrow
// stores are taken from fill.
func toUint64[W Width](w W, fill uint32) uint64 {
	hi := uint64(fill)
	if n := 1; n < len(w) {
		hi = uint64(w[n])
	}
	return hi<<32 | uint64(w[0])
}

// highestBit32 returns the index of the highest set bit of a non-zero word
// by probing 16, 8, 4, 2 and 1 bit halves.
func highestBit32(x uint32) int {
	n := 0
	if x&0xFFFF0000 != 0 {
		n += 16
		x >>= 16
	}
	if x&0xFF00 != 0 {
		n += 8
		x >>= 8
	}
	if x&0xF0 != 0 {
		n += 4
		x >>= 4
	}
	if x&0xC != 0 {
		n += 2
		x >>= 2
	}
	if x&0x2 != 0 {
		n++
	}
	return n
}

// lowestBit32 returns the index of the lowest set bit of a non-zero word.
func lowestBit32(x uint32) int {
	n := 0
	if x&0xFFFF == 0 {
		n += 16
		x >>= 16
	}
	if x&0xFF == 0 {
		n += 8
		x >>= 8
	}
	if x&0xF == 0 {
		n += 4
		x >>= 4
	}
	if x&0x3 == 0 {
		n += 2
		x >>= 2
	}
	if x&0x1 == 0 {
		n++
	}
	return n
}
