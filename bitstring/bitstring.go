// Package bitstring implements the functionality for encoding and decoding text to and from
// fixed width, 8 symbols per character, binary digit strings.
package bitstring

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/xitonix/xgrid/text"
)

// Width the number of binary symbols per code point
const Width = 8

// ErrMalformed is returned when a binary string contains symbols other than '0' and '1'
var ErrMalformed = errors.New("malformed binary string")

// String is a sequence of '0' and '1' symbols.
type String string

// Encode emits every code point as a zero padded, big-endian, 8 symbol binary number.
func Encode(t text.Text) String {
	var sb strings.Builder
	sb.Grow(len(t) * Width)
	for _, c := range t {
		for bit := Width - 1; bit >= 0; bit-- {
			if c&(1<<uint(bit)) != 0 {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
	}
	return String(sb.String())
}

// Decode parses consecutive 8 symbol chunks into code points.
// A trailing chunk shorter than 8 symbols is dropped.
func Decode(s String) (text.Text, error) {
	if err := Validate(s); err != nil {
		return nil, err
	}

	t := make(text.Text, len(s)/Width)
	for i := range t {
		var c byte
		for _, symbol := range []byte(s[i*Width : (i+1)*Width]) {
			c = c<<1 | (symbol - '0')
		}
		t[i] = c
	}
	return t, nil
}

// Validate returns ErrMalformed if s contains anything but '0' and '1'
func Validate(s String) error {
	for i := 0; i < len(s); i++ {
		if s[i] != '0' && s[i] != '1' {
			return errors.Wrapf(ErrMalformed, "unexpected symbol %q at position %d", s[i], i)
		}
	}
	return nil
}

// CountOnes returns the number of '1' symbols
func CountOnes(s String) int {
	return strings.Count(string(s), "1")
}
