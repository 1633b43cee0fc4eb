package obfuscate

import (
	"github.com/pkg/errors"
	"github.com/xitonix/xgrid/bitstring"
	"github.com/xitonix/xgrid/grid"
	"github.com/xitonix/xgrid/shift"
	"github.com/xitonix/xgrid/text"
)

// Ciphertext is the result of an encryption and everything needed to reverse it.
type Ciphertext struct {
	// Binary the binary encoding of the shifted, transposed text
	Binary bitstring.String
	// Key the number of set bits in the binary encoding of the plaintext, also the shift amount
	Key int
	// Columns the grid width, always equal to the plaintext length
	Columns int
}

// Decrypt reverses the encryption which produced c
func (c *Ciphertext) Decrypt() (string, error) {
	return Decrypt(string(c.Binary), c.Key, c.Columns)
}

// Encrypt encrypts a string whose runes are all in [0,255].
// It fails with ErrEncoding if any rune is out of range.
func Encrypt(plain string) (*Ciphertext, error) {
	t, err := text.FromString(plain)
	if err != nil {
		return nil, err
	}
	return EncryptText(t)
}

// EncryptText binary encodes the text to derive the key, transposes it over a grid as wide
// as the text itself, shifts every code point by the key and binary encodes the result.
func EncryptText(plain text.Text) (*Ciphertext, error) {
	key := bitstring.CountOnes(bitstring.Encode(plain))
	columns := len(plain)

	transposed, err := grid.TransposeColumns(plain, columns)
	if err != nil {
		return nil, err
	}

	transposed, err = grid.TransposeRows(transposed, columns)
	if err != nil {
		return nil, err
	}

	return &Ciphertext{
		Binary:  bitstring.Encode(shift.Apply(transposed, key)),
		Key:     key,
		Columns: columns,
	}, nil
}

// Decrypt decrypts a binary string produced by Encrypt and renders the result as a string.
func Decrypt(binary string, key, columns int) (string, error) {
	t, err := DecryptText(bitstring.String(binary), key, columns)
	if err != nil {
		return "", err
	}
	return t.String(), nil
}

// DecryptText reverses EncryptText in the opposite order.
//
// The result may carry trailing space padding which is never stripped.
// An empty binary string with zero columns is the encryption of the empty text.
func DecryptText(binary bitstring.String, key, columns int) (text.Text, error) {
	shifted, err := bitstring.Decode(binary)
	if err != nil {
		return nil, err
	}

	if columns < 0 || (columns == 0 && len(shifted) > 0) {
		return nil, errors.Wrapf(ErrInvalidParameter, "%d columns", columns)
	}

	transposed, err := grid.ReverseTransposeRows(shift.Reverse(shifted, key), columns)
	if err != nil {
		return nil, err
	}

	return grid.ReverseTransposeColumns(transposed, columns)
}
