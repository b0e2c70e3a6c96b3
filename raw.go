package fixnum

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// UintFromBytes creates a Uint from bytes ordered least significant first.
// Short input is zero extended; bytes past the width are dropped.
func UintFromBytes[W Width](b []byte) (out Uint[W]) {
	n := min(len(b), len(out.w)*4)
	for i := 0; i < n; i++ {
		out.w[i/4] |= uint32(b[i]) << (8 * uint(i%4))
	}
	return out
}

// UintFromUint16s creates a Uint from 16-bit elements ordered least
// significant first.
func UintFromUint16s[W Width](s []uint16) (out Uint[W]) {
	n := min(len(s), len(out.w)*2)
	for i := 0; i < n; i++ {
		out.w[i/2] |= uint32(s[i]) << (16 * uint(i%2))
	}
	return out
}

// UintFromUint64s creates a Uint from 64-bit elements ordered least
// significant first. For W32 and W96 the excess high half is dropped.
func UintFromUint64s[W Width](s []uint64) (out Uint[W]) {
	for i := 0; i < len(s); i++ {
		lo, hi := 2*i, 2*i+1
		if lo >= len(out.w) {
			break
		}
		out.w[lo] = uint32(s[i])
		if hi < len(out.w) {
			out.w[hi] = uint32(s[i] >> 32)
		}
	}
	return out
}

// Bytes returns the N/8 bytes of u, least significant first.
func (u Uint[W]) Bytes() []byte {
	b := make([]byte, len(u.w)*4)
	u.PutLittleEndian(b)
	return b
}

// Uint16s returns the N/16 16-bit elements of u, least significant first.
func (u Uint[W]) Uint16s() []uint16 {
	s := make([]uint16, len(u.w)*2)
	for i := 0; i < len(u.w); i++ {
		s[2*i] = uint16(u.w[i])
		s[2*i+1] = uint16(u.w[i] >> 16)
	}
	return s
}

// Uint64s returns u as 64-bit elements, least significant first. Widths
// that are not a multiple of 64 get a zero extended final element.
func (u Uint[W]) Uint64s() []uint64 {
	s := make([]uint64, (len(u.w)+1)/2)
	for i := 0; i < len(u.w); i++ {
		s[i/2] |= uint64(u.w[i]) << (32 * uint(i%2))
	}
	return s
}

// PutLittleEndian writes the N/8 bytes of u into b, least significant byte
// first. It panics if b is too short.
func (u Uint[W]) PutLittleEndian(b []byte) {
	_ = b[len(u.w)*4-1]
	for i := 0; i < len(u.w); i++ {
		binary.LittleEndian.PutUint32(b[i*4:], u.w[i])
	}
}

// PutBigEndian writes the N/8 bytes of u into b, most significant byte
// first. It panics if b is too short.
func (u Uint[W]) PutBigEndian(b []byte) {
	nw := len(u.w)
	_ = b[nw*4-1]
	for i := 0; i < nw; i++ {
		binary.BigEndian.PutUint32(b[i*4:], u.w[nw-1-i])
	}
}

// UintFromLittleEndian reads exactly N/8 bytes, least significant first.
func UintFromLittleEndian[W Width](b []byte) (out Uint[W], err error) {
	if len(b) != len(out.w)*4 {
		return out, errors.Wrapf(ErrBinaryLength, "fixnum: expected %d bytes, found %d", len(out.w)*4, len(b))
	}
	for i := 0; i < len(out.w); i++ {
		out.w[i] = binary.LittleEndian.Uint32(b[i*4:])
	}
	return out, nil
}

// UintFromBigEndian reads exactly N/8 bytes, most significant first.
func UintFromBigEndian[W Width](b []byte) (out Uint[W], err error) {
	nw := len(out.w)
	if len(b) != nw*4 {
		return out, errors.Wrapf(ErrBinaryLength, "fixnum: expected %d bytes, found %d", nw*4, len(b))
	}
	for i := 0; i < nw; i++ {
		out.w[nw-1-i] = binary.BigEndian.Uint32(b[i*4:])
	}
	return out, nil
}

func IntFromBytes[W Width](b []byte) Int[W] { return UintFromBytes[W](b).AsInt() }
func (i Int[W]) Bytes() []byte             { return i.AsUint().Bytes() }
