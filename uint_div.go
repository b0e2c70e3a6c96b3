package fixnum

import (
	"math/bits"
)

// QuoRem returns the quotient q and remainder r for by != 0. If by == 0,
// QuoRem panics with ErrDivisionByZero; see TryQuoRem for a non-panicking
// version.
//
// QuoRem implements truncated division (like Go):
//
//	q = u/by      with the result truncated to zero
//	r = u - by*q
//
func (u Uint[W]) QuoRem(by Uint[W]) (q, r Uint[W]) {
	if by.IsZero() {
		panic(ErrDivisionByZero)
	}

	if by.fitsWord() {
		var r32 uint32
		q, r32 = u.QuoRem32(by.w[0])
		r.w[0] = r32
		return q, r
	}

	if cmp := u.Cmp(by); cmp < 0 {
		return q, u // it's 100% remainder
	} else if cmp == 0 {
		q.w[0] = 1 // dividend and divisor are the same
		return q, r
	}

	return quoremBin(u, by)
}

// TryQuoRem is QuoRem, but division by zero is reported as
// ErrDivisionByZero instead of a panic.
func (u Uint[W]) TryQuoRem(by Uint[W]) (q, r Uint[W], err error) {
	if by.IsZero() {
		return q, r, ErrDivisionByZero
	}
	q, r = u.QuoRem(by)
	return q, r, nil
}

// Quo returns the quotient u/by for by != 0. If by == 0, Quo panics with
// ErrDivisionByZero.
func (u Uint[W]) Quo(by Uint[W]) (q Uint[W]) {
	q, _ = u.QuoRem(by)
	return q
}

// Rem returns the remainder of u%by for by != 0. If by == 0, Rem panics
// with ErrDivisionByZero.
func (u Uint[W]) Rem(by Uint[W]) (r Uint[W]) {
	_, r = u.QuoRem(by)
	return r
}

// QuoRem32 divides u by a single word, one word at a time from the most
// significant end, carrying the remainder into the next lower word.
func (u Uint[W]) QuoRem32(by uint32) (q Uint[W], r uint32) {
	if by == 0 {
		panic(ErrDivisionByZero)
	}

	if by <= 0xFFFF {
		// Split each word in 16-bit halves; r < by keeps r<<16 inside 32 bits.
		for i := len(u.w) - 1; i >= 0; i-- {
			hi := r<<16 | u.w[i]>>16
			qhi := hi / by
			r = hi % by

			lo := r<<16 | u.w[i]&0xFFFF
			qlo := lo / by
			r = lo % by

			q.w[i] = qhi<<16 | qlo
		}
		return q, r
	}

	for i := len(u.w) - 1; i >= 0; i-- {
		q.w[i], r = bits.Div32(r, u.w[i], by)
	}
	return q, r
}

// quoremBin is restoring long division. It expects u > by > 0.
func quoremBin[W Width](u, by Uint[W]) (q, r Uint[W]) {
	shift := u.FindHighestBitSet() - by.FindHighestBitSet()
	by = by.Lsh(uint(shift))

	for i := shift; i >= 0; i-- {
		if !u.LessThan(by) {
			u = u.Sub(by)
			q.w[i/wordBits] |= 1 << uint(i%wordBits)
		}
		by = by.Rsh(1)
	}

	return q, u
}
