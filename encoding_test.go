package fixnum

import (
	"encoding/json"
	"testing"

	"github.com/pkg/errors"
	"github.com/shabbyrobe/golib/assert"
	"github.com/vmihailenco/msgpack/v5"
)

func TestUintMarshalJSON(t *testing.T) {
	tt := assert.WrapTB(t)
	bts := make([]byte, 16)

	for i := 0; i < 5000; i++ {
		u := randU128(bts)

		bts, err := json.Marshal(u)
		tt.MustOK(err)

		var result U128
		tt.MustOK(json.Unmarshal(bts, &result))
		tt.MustAssert(result.Equal(u))
	}
}

func TestIntMarshalJSON(t *testing.T) {
	tt := assert.WrapTB(t)
	bts := make([]byte, 16)

	for i := 0; i < 5000; i++ {
		n := randI128(bts)

		bts, err := json.Marshal(n)
		tt.MustOK(err)

		var result I128
		tt.MustOK(json.Unmarshal(bts, &result))
		tt.MustAssert(result.Equal(n))
	}
}

func TestJSONForms(t *testing.T) {
	tt := assert.WrapTB(t)

	type doc struct {
		U U256 `json:"u"`
		I I128 `json:"i"`
	}

	out, err := json.Marshal(doc{U: u256(12345), I: i64(-6789)})
	tt.MustOK(err)
	tt.MustEqual(`{"u":"12345","i":"-6789"}`, string(out))

	var in doc
	tt.MustOK(json.Unmarshal([]byte(`{"u":"0xFF","i":-12}`), &in))
	tt.MustEqual(u256(255), in.U)
	tt.MustEqual(i64(-12), in.I)

	var u U128
	tt.MustAssert(json.Unmarshal([]byte(`"12`), &u) != nil)
	tt.MustAssert(errors.Cause(u.UnmarshalJSON([]byte(`""`))) == ErrEmpty)
}

func TestText(t *testing.T) {
	tt := assert.WrapTB(t)

	txt, err := MaxUint[W128]().MarshalText()
	tt.MustOK(err)
	tt.MustEqual("340282366920938463463374607431768211455", string(txt))

	var u U128
	tt.MustOK(u.UnmarshalText(txt))
	tt.MustEqual(MaxUint[W128](), u)

	var i I128
	tt.MustOK(i.UnmarshalText([]byte("-170141183460469231731687303715884105728")))
	tt.MustEqual(MinInt[W128](), i)
}

func TestBinary(t *testing.T) {
	tt := assert.WrapTB(t)

	bin, err := u64(0x0102).MarshalBinary()
	tt.MustOK(err)
	tt.MustEqual(16, len(bin))
	tt.MustEqual(byte(0x01), bin[14])
	tt.MustEqual(byte(0x02), bin[15])

	var u U128
	tt.MustOK(u.UnmarshalBinary(bin))
	tt.MustEqual(u64(0x0102), u)
	tt.MustAssert(errors.Cause(u.UnmarshalBinary(bin[:8])) == ErrBinaryLength)

	bin, err = i64(-2).MarshalBinary()
	tt.MustOK(err)
	var i I128
	tt.MustOK(i.UnmarshalBinary(bin))
	tt.MustEqual(i64(-2), i)
}

func TestMsgpack(t *testing.T) {
	tt := assert.WrapTB(t)

	type record struct {
		Balance U256
		Delta   I128
		Note    string
	}

	in := record{
		Balance: MaxUint[W256]().Rsh(3),
		Delta:   MinInt[W128]().Inc(),
		Note:    "ok",
	}
	bts, err := msgpack.Marshal(&in)
	tt.MustOK(err)

	var out record
	tt.MustOK(msgpack.Unmarshal(bts, &out))
	tt.MustEqual(in, out)

	// A value of the wrong width is rejected rather than silently resized.
	bts, err = msgpack.Marshal(u64(7))
	tt.MustOK(err)
	var wide U256
	err = msgpack.Unmarshal(bts, &wide)
	tt.MustAssert(errors.Cause(err) == ErrBinaryLength)

	bts, err = msgpack.Marshal("not binary")
	tt.MustOK(err)
	tt.MustAssert(msgpack.Unmarshal(bts, &wide) != nil)
}
