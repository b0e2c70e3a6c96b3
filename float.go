package fixnum

import (
	"math"
)

const (
	f64MantBits = 52
	f64ExpMask  = 0x7FF
	f64Bias     = 1023

	wrapWordFloat = float64(1 << wordBits) // 2^32
)

// AsFloat64 returns the float64 closest to u, accumulated one word at a
// time from the most significant end.
func (u Uint[W]) AsFloat64() (f float64) {
	for i := len(u.w) - 1; i >= 0; i-- {
		f = f*wrapWordFloat + float64(u.w[i])
	}
	return f
}

func (u Uint[W]) AsFloat32() float32 { return float32(u.AsFloat64()) }

func (i Int[W]) AsFloat64() float64 {
	if i.IsNeg() {
		return -i.Neg().AsUint().AsFloat64()
	}
	return i.AsUint().AsFloat64()
}

func (i Int[W]) AsFloat32() float32 { return float32(i.AsFloat64()) }

// UintFromFloat64 creates a Uint from a float64. Any fractional portion is
// truncated towards zero. Bits of f at or above N are dropped and inRange
// is set to false.
//
// NaN, ±Inf and values <= -1 yield 0 with inRange set to false.
func UintFromFloat64[W Width](f float64) (out Uint[W], inRange bool) {
	if f != f || math.IsInf(f, 0) || f <= -1 {
		return out, false
	}
	if f < 1 {
		return out, true
	}
	return floatMagnitude[W](f)
}

func UintFromFloat32[W Width](f float32) (out Uint[W], inRange bool) {
	return UintFromFloat64[W](float64(f))
}

// IntFromFloat64 creates an Int from a float64. Any fractional portion is
// truncated towards zero.
//
// NaN and ±Inf yield MinInt with inRange set to false. Magnitudes outside
// the range of Int are truncated to N bits, inRange is set to false.
func IntFromFloat64[W Width](f float64) (out Int[W], inRange bool) {
	if f != f || math.IsInf(f, 0) {
		return MinInt[W](), false
	}

	neg := f < 0
	if neg {
		f = -f
	}
	if f < 1 {
		return out, true
	}

	mag, inRange := floatMagnitude[W](f)
	if !mag.IsInt() && !(neg && mag.Equal(MinInt[W]().AsUint())) {
		inRange = false
	}

	out = mag.AsInt()
	if neg {
		out = out.Neg()
	}
	return out, inRange
}

func IntFromFloat32[W Width](f float32) (out Int[W], inRange bool) {
	return IntFromFloat64[W](float64(f))
}

// floatMagnitude walks the mantissa of a finite f >= 1 from the exponent
// down to bit 0, setting each corresponding bit of the result.
func floatMagnitude[W Width](f float64) (out Uint[W], inRange bool) {
	raw := math.Float64bits(f)
	exp := int(raw>>f64MantBits&f64ExpMask) - f64Bias
	mant := raw&(1<<f64MantBits-1) | 1<<f64MantBits

	inRange = true
	nbits := len(out.w) * wordBits
	for e := exp; e >= 0; e-- {
		mbit := f64MantBits - (exp - e)
		if mbit < 0 {
			break // everything below is zero
		}
		if mant>>uint(mbit)&1 == 0 {
			continue
		}
		if e >= nbits {
			inRange = false
			continue
		}
		out.w[e/wordBits] |= 1 << uint(e%wordBits)
	}
	return out, inRange
}
