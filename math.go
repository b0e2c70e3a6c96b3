package fixnum

// Sqrt returns floor(sqrt(u)).
func (u Uint[W]) Sqrt() Uint[W] {
	if u.IsZero() {
		return u
	}

	// The seed is never below the root, so Newton descends until the
	// correction drops below 1.
	x := u.Rsh(uint(u.FindHighestBitSet() / 2))
	for {
		y := x.Add(u.Quo(x)).Rsh(1)
		if !y.LessThan(x) {
			break
		}
		x = y
	}

	// x*x > u, written so that nothing wraps.
	for x.GreaterThan(u.Quo(x)) {
		x = x.Dec()
	}
	for {
		n := x.Inc()
		if n.IsZero() || n.GreaterThan(u.Quo(n)) {
			break
		}
		x = n
	}
	return x
}

// Cbrt returns floor(cbrt(u)).
func (u Uint[W]) Cbrt() Uint[W] {
	if u.IsZero() {
		return u
	}

	x := u.Rsh(uint(u.FindHighestBitSet() / 2))
	for {
		// y = (2x + u/x²) / 3
		y := x.Lsh(1).Add(u.Quo(x).Quo(x))
		y, _ = y.QuoRem32(3)
		if !y.LessThan(x) {
			break
		}
		x = y
	}

	for x.GreaterThan(u.Quo(x).Quo(x)) {
		x = x.Dec()
	}
	for {
		n := x.Inc()
		if n.IsZero() || n.GreaterThan(u.Quo(n).Quo(n)) {
			break
		}
		x = n
	}
	return x
}

// Pow returns u**e modulo 2^N.
func (u Uint[W]) Pow(e uint) (out Uint[W]) {
	out.w[0] = 1
	for e > 0 {
		if e&1 != 0 {
			out = out.Mul(u)
		}
		e >>= 1
		if e > 0 {
			u = u.Mul(u)
		}
	}
	return out
}

// PowMod returns u**e mod m. It panics with ErrDivisionByZero if m == 0.
//
// The modular products are formed by doubling and adding, so no
// intermediate value ever needs more than N bits.
func (u Uint[W]) PowMod(e, m Uint[W]) (out Uint[W]) {
	if m.IsZero() {
		panic(ErrDivisionByZero)
	}

	out.w[0] = 1
	out = out.Rem(m)
	base := u.Rem(m)

	for i := 0; i <= e.FindHighestBitSet(); i++ {
		if e.Bit(i) != 0 {
			out = mulMod(out, base, m)
		}
		base = mulMod(base, base, m)
	}
	return out
}

// addMod returns (a + b) mod m for a, b < m.
func addMod[W Width](a, b, m Uint[W]) Uint[W] {
	s := a.Add(b)
	if s.LessThan(a) || !s.LessThan(m) {
		s = s.Sub(m)
	}
	return s
}

// mulMod returns (a * b) mod m for a, b < m.
func mulMod[W Width](a, b, m Uint[W]) (r Uint[W]) {
	for i := b.FindHighestBitSet(); i >= 0; i-- {
		r = addMod(r, r, m)
		if b.Bit(i) != 0 {
			r = addMod(r, a, m)
		}
	}
	return r
}

// UintFactorial returns n! modulo 2^N.
func UintFactorial[W Width](n uint32) (out Uint[W]) {
	out.w[0] = 1
	for ; n > 1; n-- {
		out = out.Mul32(n)
	}
	return out
}
