package fixnum

// ResizeUint converts u to a Uint of a different width. Widening zero
// extends; narrowing keeps the low words and silently drops the rest.
func ResizeUint[D, S Width](u Uint[S]) (out Uint[D]) {
	n := min(len(out.w), len(u.w))
	for i := 0; i < n; i++ {
		out.w[i] = u.w[i]
	}
	return out
}

// ResizeInt converts i to an Int of a different width. Widening sign
// extends; narrowing truncates, so the result may change sign.
func ResizeInt[D, S Width](i Int[S]) (out Int[D]) {
	fill := i.fill()
	n := min(len(out.w), len(i.w))
	for j := 0; j < n; j++ {
		out.w[j] = i.w[j]
	}
	for j := n; j < len(out.w); j++ {
		out.w[j] = fill
	}
	return out
}
