package obfuscate

import (
	"github.com/pkg/errors"
	"github.com/xitonix/xgrid/bitstring"
	"github.com/xitonix/xgrid/grid"
	"github.com/xitonix/xgrid/text"
)

var (
	// ErrEncoding is returned when a character cannot be represented as an 8-bit code point
	ErrEncoding = text.ErrEncoding
	// ErrMalformedBinary is returned when the binary input contains symbols other than '0' and '1'
	ErrMalformedBinary = bitstring.ErrMalformed
	// ErrInvalidParameter is returned when the number of columns does not describe a valid grid
	ErrInvalidParameter = grid.ErrInvalidColumns
	// ErrChecksumMismatch is returned when the decrypted content does not match the envelope's checksum
	ErrChecksumMismatch = errors.New("decrypted content does not match the checksum")
	// ErrInvalidEnvelope is returned when the input of a Decoder is not a valid envelope
	ErrInvalidEnvelope = errors.New("invalid envelope")

	// ErrOperationInProgress is the result of any invalid operation on an entity which is already being processed
	ErrOperationInProgress = errors.New("the operation is in progress")
)
