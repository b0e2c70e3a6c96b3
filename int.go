package fixnum

// Int is a two's complement signed integer N bits wide. It shares its word
// store layout with Uint; AsUint and Uint.AsInt relabel a value without
// touching its bits.
type Int[W Width] struct {
	w W
}

func IntFrom64[W Width](v int64) Int[W] {
	var fill uint32
	if v < 0 {
		fill = wordMax
	}
	return Int[W]{w: fromUint64[W](uint64(v), fill)}
}

func IntFrom32[W Width](v int32) Int[W] { return IntFrom64[W](int64(v)) }
func IntFrom16[W Width](v int16) Int[W] { return IntFrom64[W](int64(v)) }
func IntFrom8[W Width](v int8) Int[W]   { return IntFrom64[W](int64(v)) }
func IntFromInt[W Width](v int) Int[W]  { return IntFrom64[W](int64(v)) }

// IntFromUint64 zero extends v. For W32, values above math.MaxInt32 come out
// negative.
func IntFromUint64[W Width](v uint64) Int[W] { return Int[W]{w: fromUint64[W](v, 0)} }

// IntFromWords creates an Int from its two's complement word store, least
// significant word first.
func IntFromWords[W Width](w W) Int[W] { return Int[W]{w: w} }

// MinInt returns -2^(N-1): only bit N-1 is set.
func MinInt[W Width]() (out Int[W]) {
	out.w[len(out.w)-1] = signBit
	return out
}

// MaxInt returns 2^(N-1) - 1.
func MaxInt[W Width]() Int[W] {
	return MinInt[W]().Dec()
}

func (i Int[W]) Bits() int { return len(i.w) * wordBits }
func (i Int[W]) Size() int { return len(i.w) }

func (i Int[W]) Word(n int) uint32 { return i.AsUint().Word(n) }
func (i Int[W]) Words() W          { return i.w }

// AsUint relabels i as a Uint of the same width. Negative numbers become
// values >= 2^(N-1).
func (i Int[W]) AsUint() Uint[W] { return Uint[W]{w: i.w} }

// IsUint reports whether i can be represented in a Uint, i.e. i >= 0.
func (i Int[W]) IsUint() bool { return !i.IsNeg() }

func (i Int[W]) IsZero() bool { return i.AsUint().IsZero() }
func (i Int[W]) IsNeg() bool  { return i.w[len(i.w)-1]&signBit != 0 }

func (i Int[W]) Sign() int {
	if i.IsNeg() {
		return -1
	} else if i.IsZero() {
		return 0
	}
	return 1
}

func (i Int[W]) fill() uint32 {
	if i.IsNeg() {
		return wordMax
	}
	return 0
}

// AsInt64 truncates i to fit in an int64; widths below 64 bits are sign
// extended. See IsInt64.
func (i Int[W]) AsInt64() int64 { return int64(toUint64(i.w, i.fill())) }
func (i Int[W]) AsInt32() int32 { return int32(i.w[0]) }

// AsUint64 returns the low 64 bits of i's two's complement representation,
// sign extended for widths below 64 bits.
func (i Int[W]) AsUint64() uint64 { return toUint64(i.w, i.fill()) }

// IsInt64 reports whether i can be represented as an int64.
func (i Int[W]) IsInt64() bool {
	return i.Equal(IntFrom64[W](i.AsInt64()))
}

func (i Int[W]) Inc() Int[W]            { return i.AsUint().Inc().AsInt() }
func (i Int[W]) Dec() Int[W]            { return i.AsUint().Dec().AsInt() }
func (i Int[W]) Add(n Int[W]) Int[W]    { return i.AsUint().Add(n.AsUint()).AsInt() }
func (i Int[W]) Sub(n Int[W]) Int[W]    { return i.AsUint().Sub(n.AsUint()).AsInt() }
func (i Int[W]) And(n Int[W]) Int[W]    { return i.AsUint().And(n.AsUint()).AsInt() }
func (i Int[W]) AndNot(n Int[W]) Int[W] { return i.AsUint().AndNot(n.AsUint()).AsInt() }
func (i Int[W]) Or(n Int[W]) Int[W]     { return i.AsUint().Or(n.AsUint()).AsInt() }
func (i Int[W]) Xor(n Int[W]) Int[W]    { return i.AsUint().Xor(n.AsUint()).AsInt() }
func (i Int[W]) Not() Int[W]            { return i.AsUint().Not().AsInt() }
func (i Int[W]) Lsh(n uint) Int[W]      { return i.AsUint().Lsh(n).AsInt() }

// Rsh is an arithmetic shift: when i is negative the vacated high bits are
// filled with ones.
func (i Int[W]) Rsh(n uint) Int[W] {
	v := i.AsUint().Rsh(n)
	if i.IsNeg() {
		nb := uint(len(i.w) * wordBits)
		if n >= nb {
			return MaxUint[W]().AsInt()
		}
		v = v.Or(MaxUint[W]().Lsh(nb - n))
	}
	return v.AsInt()
}

// Neg returns -i. MinInt has no positive counterpart, so -MinInt == MinInt.
func (i Int[W]) Neg() Int[W] {
	return i.AsUint().Neg().AsInt()
}

// Abs returns |i|. Abs(MinInt) == MinInt.
func (i Int[W]) Abs() Int[W] {
	if i.IsNeg() {
		return i.Neg()
	}
	return i
}

// Cmp compares i to n and returns:
//
//	-1 if i <  n
//	 0 if i == n
//	+1 if i >  n
//
// Flipping the sign bit of both operands maps two's complement order onto
// unsigned order.
func (i Int[W]) Cmp(n Int[W]) int {
	a, b := i.w, n.w
	top := len(a) - 1
	a[top] ^= signBit
	b[top] ^= signBit
	return Uint[W]{w: a}.Cmp(Uint[W]{w: b})
}

func (i Int[W]) Equal(n Int[W]) bool            { return i.w == n.w }
func (i Int[W]) GreaterThan(n Int[W]) bool      { return i.Cmp(n) > 0 }
func (i Int[W]) GreaterOrEqualTo(n Int[W]) bool { return i.Cmp(n) >= 0 }
func (i Int[W]) LessThan(n Int[W]) bool         { return i.Cmp(n) < 0 }
func (i Int[W]) LessOrEqualTo(n Int[W]) bool    { return i.Cmp(n) <= 0 }

// Mul returns the product of i and n. Overflow wraps, as per the Go spec.
func (i Int[W]) Mul(n Int[W]) Int[W] {
	neg := i.IsNeg() != n.IsNeg()
	p := i.Abs().AsUint().Mul(n.Abs().AsUint())
	if neg {
		p = p.Neg()
	}
	return p.AsInt()
}

// QuoRem returns the quotient q and remainder r for by != 0. If by == 0,
// QuoRem panics with ErrDivisionByZero.
//
// QuoRem implements T-division and modulus (like Go):
//
//	q = i/by      with the result truncated to zero
//	r = i - by*q
//
// so r carries the sign of i. MinInt / -1 wraps to MinInt.
func (i Int[W]) QuoRem(by Int[W]) (q, r Int[W]) {
	qNeg, rNeg := i.IsNeg() != by.IsNeg(), i.IsNeg()

	qu, ru := i.Abs().AsUint().QuoRem(by.Abs().AsUint())
	if qNeg {
		qu = qu.Neg()
	}
	if rNeg {
		ru = ru.Neg()
	}
	return qu.AsInt(), ru.AsInt()
}

// TryQuoRem is QuoRem, but division by zero is reported as
// ErrDivisionByZero instead of a panic.
func (i Int[W]) TryQuoRem(by Int[W]) (q, r Int[W], err error) {
	if by.IsZero() {
		return q, r, ErrDivisionByZero
	}
	q, r = i.QuoRem(by)
	return q, r, nil
}

func (i Int[W]) Quo(by Int[W]) (q Int[W]) {
	q, _ = i.QuoRem(by)
	return q
}

func (i Int[W]) Rem(by Int[W]) (r Int[W]) {
	_, r = i.QuoRem(by)
	return r
}
