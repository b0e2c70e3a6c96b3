package fixnum

type RandSource interface {
	Uint64() uint64
}

// RandUint generates an unsigned random integer from an external source.
func RandUint[W Width](source RandSource) (out Uint[W]) {
	for i := 0; i < len(out.w); i += 2 {
		v := source.Uint64()
		out.w[i] = uint32(v)
		if i+1 < len(out.w) {
			out.w[i+1] = uint32(v >> 32)
		}
	}
	return out
}

// RandInt generates a non-negative signed random integer from an external
// source.
func RandInt[W Width](source RandSource) Int[W] {
	u := RandUint[W](source)
	u.w[len(u.w)-1] &^= signBit
	return u.AsInt()
}

// DifferenceUint subtracts the smaller of a and b from the larger.
func DifferenceUint[W Width](a, b Uint[W]) Uint[W] {
	if a.LessThan(b) {
		return b.Sub(a)
	}
	return a.Sub(b)
}

func LargerUint[W Width](a, b Uint[W]) Uint[W] {
	if b.GreaterThan(a) {
		return b
	}
	return a
}

func SmallerUint[W Width](a, b Uint[W]) Uint[W] {
	if b.LessThan(a) {
		return b
	}
	return a
}

// DifferenceInt subtracts the smaller of a and b from the larger. The
// result wraps if it does not fit in an Int.
func DifferenceInt[W Width](a, b Int[W]) Int[W] {
	if a.LessThan(b) {
		return b.Sub(a)
	}
	return a.Sub(b)
}
