package fixnum

import (
	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"
)

var (
	_ msgpack.CustomEncoder = U128{}
	_ msgpack.CustomDecoder = (*U128)(nil)
	_ msgpack.CustomEncoder = I128{}
	_ msgpack.CustomDecoder = (*I128)(nil)
)

func (u Uint[W]) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

func (u *Uint[W]) UnmarshalText(bts []byte) (err error) {
	v, err := ParseUint[W](string(bts), 0)
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func (u Uint[W]) MarshalJSON() ([]byte, error) {
	return []byte(`"` + u.String() + `"`), nil
}

func (u *Uint[W]) UnmarshalJSON(bts []byte) (err error) {
	bts, err = unquoteJSON(bts)
	if err != nil {
		return err
	}
	return u.UnmarshalText(bts)
}

// MarshalBinary encodes u as N/8 bytes, most significant first.
func (u Uint[W]) MarshalBinary() ([]byte, error) {
	b := make([]byte, len(u.w)*4)
	u.PutBigEndian(b)
	return b, nil
}

func (u *Uint[W]) UnmarshalBinary(b []byte) (err error) {
	v, err := UintFromBigEndian[W](b)
	if err != nil {
		return err
	}
	*u = v
	return nil
}

// EncodeMsgpack writes u as a msgpack bin holding its big-endian bytes.
func (u Uint[W]) EncodeMsgpack(enc *msgpack.Encoder) error {
	b, _ := u.MarshalBinary()
	return enc.EncodeBytes(b)
}

func (u *Uint[W]) DecodeMsgpack(dec *msgpack.Decoder) error {
	b, err := dec.DecodeBytes()
	if err != nil {
		return errors.Wrap(err, "fixnum: msgpack")
	}
	return u.UnmarshalBinary(b)
}

func (i Int[W]) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

func (i *Int[W]) UnmarshalText(bts []byte) (err error) {
	v, err := ParseInt[W](string(bts), 0)
	if err != nil {
		return err
	}
	*i = v
	return nil
}

func (i Int[W]) MarshalJSON() ([]byte, error) {
	return []byte(`"` + i.String() + `"`), nil
}

func (i *Int[W]) UnmarshalJSON(bts []byte) (err error) {
	bts, err = unquoteJSON(bts)
	if err != nil {
		return err
	}
	return i.UnmarshalText(bts)
}

// MarshalBinary encodes the two's complement bits of i as N/8 bytes, most
// significant first.
func (i Int[W]) MarshalBinary() ([]byte, error) {
	return i.AsUint().MarshalBinary()
}

func (i *Int[W]) UnmarshalBinary(b []byte) (err error) {
	v, err := UintFromBigEndian[W](b)
	if err != nil {
		return err
	}
	*i = v.AsInt()
	return nil
}

func (i Int[W]) EncodeMsgpack(enc *msgpack.Encoder) error {
	return i.AsUint().EncodeMsgpack(enc)
}

func (i *Int[W]) DecodeMsgpack(dec *msgpack.Decoder) error {
	var u Uint[W]
	if err := u.DecodeMsgpack(dec); err != nil {
		return err
	}
	*i = u.AsInt()
	return nil
}

func unquoteJSON(bts []byte) ([]byte, error) {
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return nil, errors.Errorf("fixnum: invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}
	return bts, nil
}
