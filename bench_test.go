package fixnum

import (
	"fmt"
	"math/big"
	"testing"
)

var (
	BenchBigIntResult *big.Int
	BenchBoolResult   bool
	BenchFloatResult  float64
	BenchStringResult string
	BenchU128Result   U128
	BenchI128Result   I128
	BenchU512Result   U512
	BenchUint64Result uint64

	BenchUint641, BenchUint642 uint64 = 12093749018, 18927348917
)

func BenchmarkUint64Mul(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchUint64Result = BenchUint641 * BenchUint642
	}
}

func BenchmarkUint64Div(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchUint64Result = BenchUint642 / BenchUint641
	}
}

func BenchmarkU128Add(b *testing.B) {
	u := u128s("0xFFFFFFFFFFFFFFFF")
	for i := 0; i < b.N; i++ {
		BenchU128Result = u.Add(u)
	}
}

func BenchmarkU128Mul(b *testing.B) {
	for _, tc := range []struct{ a, b U128 }{
		{u64(12093749018), u64(3)},
		{u64(12093749018), u64(18927348917)},
		{u128s("0xFEDCBA9876543210FEDCBA98"), u128s("0x76543210FEDCBA98")},
	} {
		b.Run(fmt.Sprintf("%s*%s", tc.a, tc.b), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchU128Result = tc.a.Mul(tc.b)
			}
		})
	}
}

func BenchmarkU128QuoRem(b *testing.B) {
	for _, tc := range []struct{ a, b U128 }{
		{MaxUint[W128](), u64(10)},
		{MaxUint[W128](), u64(0x12345678)},
		{MaxUint[W128](), u128s("0x1234567890ABCDEF")},
		{MaxUint[W128](), u128s("0x1234567890ABCDEF1234567890ABCDEF")},
	} {
		b.Run(fmt.Sprintf("%s/%s", tc.a, tc.b), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchU128Result, _ = tc.a.QuoRem(tc.b)
			}
		})
	}
}

func BenchmarkU128Lsh(b *testing.B) {
	for _, by := range []uint{1, 31, 32, 64, 100} {
		b.Run(fmt.Sprintf("%d", by), func(b *testing.B) {
			u := MaxUint[W128]()
			for i := 0; i < b.N; i++ {
				BenchU128Result = u.Lsh(by)
			}
		})
	}
}

func BenchmarkU128LessThan(b *testing.B) {
	x, y := u128s("0x1234567890ABCDEF1234567890ABCDEF"), u128s("0x1234567890ABCDEF1234567890ABCDEE")
	for i := 0; i < b.N; i++ {
		BenchBoolResult = x.LessThan(y)
	}
}

func BenchmarkU128String(b *testing.B) {
	for _, u := range []U128{u64(0), u64(1 << 60), MaxUint[W128]()} {
		b.Run(fmt.Sprintf("%x", u), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchStringResult = u.String()
			}
		})
	}
}

func BenchmarkU128AsFloat(b *testing.B) {
	u := u128s("0x1234567890ABCDEF1234567890ABCDEF")
	for i := 0; i < b.N; i++ {
		BenchFloatResult = u.AsFloat64()
	}
}

func BenchmarkU128FromFloat(b *testing.B) {
	for _, f := range []float64{1, 1 << 53, 1e30} {
		b.Run(fmt.Sprintf("%g", f), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchU128Result, _ = UintFromFloat64[W128](f)
			}
		})
	}
}

func BenchmarkU128AsBigInt(b *testing.B) {
	u := MaxUint[W128]()
	for i := 0; i < b.N; i++ {
		BenchBigIntResult = u.AsBigInt()
	}
}

func BenchmarkI128Sub(b *testing.B) {
	sub := i64(1)
	for _, iv := range []I128{i64(1), i128s("0x10000000000000000"), MaxInt[W128]()} {
		b.Run(fmt.Sprintf("%s", iv), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchI128Result = iv.Sub(sub)
			}
		})
	}
}

func BenchmarkI128QuoRem(b *testing.B) {
	x, y := i128s("-0x1234567890ABCDEF1234567890ABCDEF"), i128s("0x1234567890ABCDEF")
	for i := 0; i < b.N; i++ {
		BenchI128Result, _ = x.QuoRem(y)
	}
}

func BenchmarkU512Mul(b *testing.B) {
	x := MaxUint[W512]().Rsh(256)
	for i := 0; i < b.N; i++ {
		BenchU512Result = x.Mul(x)
	}
}

func BenchmarkU512Sqrt(b *testing.B) {
	x := MaxUint[W512]()
	for i := 0; i < b.N; i++ {
		BenchU512Result = x.Sqrt()
	}
}

func BenchmarkBigIntMul(b *testing.B) {
	var max big.Int
	max.SetUint64(maxUint64)

	for i := 0; i < b.N; i++ {
		var dest big.Int
		dest.Mul(&dest, &max)
		BenchBigIntResult = &dest
	}
}

const maxUint64 = 1<<64 - 1
