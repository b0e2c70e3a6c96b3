package fixnum

import (
	"github.com/pkg/errors"

	"github.com/shabbyrobe/go-fixnum/internal/radix"
)

var (
	// ErrDivisionByZero is the panic value of QuoRem, Quo, Rem and PowMod
	// when the divisor is zero, and the error returned by TryQuoRem.
	ErrDivisionByZero = errors.New("fixnum: division by zero")

	ErrEmpty        = errors.New("fixnum: empty string")
	ErrBinaryLength = errors.New("fixnum: binary length does not match width")

	// ErrBase is returned when a base outside 2..36 is requested.
	ErrBase = radix.ErrBase
)
