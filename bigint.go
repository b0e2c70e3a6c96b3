package fixnum

import (
	"math/big"
)

// UintFromBigInt creates a Uint from a big.Int. Negative values yield 0 and
// values that need more than N bits yield MaxUint; both set accurate to
// false.
func UintFromBigInt[W Width](v *big.Int) (out Uint[W], accurate bool) {
	if v.Sign() < 0 {
		return out, false
	}
	nb := len(out.w) * wordBits
	if v.BitLen() > nb {
		return MaxUint[W](), false
	}
	buf := make([]byte, nb/8)
	v.FillBytes(buf)
	out, _ = UintFromBigEndian[W](buf)
	return out, true
}

// IntFromBigInt creates an Int from a big.Int. Overflow clamps to MaxInt or
// MinInt and sets accurate to false.
func IntFromBigInt[W Width](v *big.Int) (out Int[W], accurate bool) {
	neg := v.Sign() < 0
	mag := new(big.Int).Abs(v)
	nb := len(out.w) * wordBits

	if mag.BitLen() > nb {
		if neg {
			return MinInt[W](), false
		}
		return MaxInt[W](), false
	}

	buf := make([]byte, nb/8)
	mag.FillBytes(buf)
	u, _ := UintFromBigEndian[W](buf)

	if !neg {
		if !u.IsInt() {
			return MaxInt[W](), false
		}
		return u.AsInt(), true
	}

	if minMag := MinInt[W]().AsUint(); u.GreaterThan(minMag) {
		return MinInt[W](), false
	}
	return u.Neg().AsInt(), true
}

// IntoBigInt copies u into b, allowing you to retain and recycle memory.
func (u Uint[W]) IntoBigInt(b *big.Int) {
	buf := make([]byte, len(u.w)*4)
	u.PutBigEndian(buf)
	b.SetBytes(buf)
}

// AsBigInt allocates a new big.Int and copies u into it.
func (u Uint[W]) AsBigInt() *big.Int {
	var b big.Int
	u.IntoBigInt(&b)
	return &b
}

func (u Uint[W]) AsBigFloat() *big.Float {
	return new(big.Float).SetInt(u.AsBigInt())
}

// IntoBigInt copies i into b, allowing you to retain and recycle memory.
func (i Int[W]) IntoBigInt(b *big.Int) {
	// Abs(MinInt) is MinInt, whose unsigned reading is the right magnitude.
	i.Abs().AsUint().IntoBigInt(b)
	if i.IsNeg() {
		b.Neg(b)
	}
}

// AsBigInt allocates a new big.Int and copies i into it.
func (i Int[W]) AsBigInt() *big.Int {
	var b big.Int
	i.IntoBigInt(&b)
	return &b
}

func (i Int[W]) AsBigFloat() *big.Float {
	return new(big.Float).SetInt(i.AsBigInt())
}
