/*
Package fixnum provides fixed-width unsigned (Uint) and signed (Int) integers
wider than the native machine words: 64, 96, 128, 192, 256, 384, 512 or 1024
bits, or any other multiple of 32 listed in Width.

The width is part of the type, so a Uint[W128] and a Uint[W256] can never be
mixed by accident. Uint and Int are value types; all operations return new
values and overflow wraps modulo 2^N, like Go's own integers. Values never
allocate.

Simple example:

	u1 := fixnum.UintFrom64[fixnum.W128](math.MaxUint64)
	u2 := fixnum.UintFrom64[fixnum.W128](math.MaxUint64)
	fmt.Println(u1.Mul(u2))
	// Output: 340282366920938463426481119284349108225

Uint and Int can be created from a variety of sources:

	UintFrom64[W](v uint64) Uint[W]
	UintFromInt64[W](v int64) Uint[W]
	UintFromWords(w W) Uint[W]
	UintFromBytes[W](b []byte) Uint[W]
	ParseUint[W](s string, base int) (Uint[W], error)
	UintFromBigInt[W](v *big.Int) (out Uint[W], accurate bool)
	UintFromFloat64[W](f float64) (out Uint[W], inRange bool)

Both are bit-identical views over the same word store; Uint.AsInt and
Int.AsUint relabel a value without changing it. ResizeUint and ResizeInt move
values between widths, zero or sign extending when widening and truncating
when narrowing.

Division by zero panics with ErrDivisionByZero; TryQuoRem reports it as an
error instead.

Uint and Int support the following formatting and marshalling interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler
	- encoding.BinaryMarshaler
	- encoding.BinaryUnmarshaler
	- msgpack.CustomEncoder
	- msgpack.CustomDecoder

*/
package fixnum
