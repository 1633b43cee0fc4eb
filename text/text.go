// Package text defines the single byte text model shared by the cipher stages.
package text

import (
	"strings"

	"github.com/pkg/errors"
)

// MaxCodePoint the largest code point a Text can hold
const MaxCodePoint = 255

// ErrEncoding is returned when a character cannot be represented as an 8-bit code point
var ErrEncoding = errors.New("character cannot be represented as an 8-bit code point")

// Text is an ordered sequence of code points in [0,255], one byte per code point.
type Text []byte

// FromString converts a string into Text, one code point per rune.
// Runes above 255 are rejected rather than wrapped. Invalid UTF-8 sequences decode
// to the replacement rune and are rejected for the same reason.
func FromString(s string) (Text, error) {
	t := make(Text, 0, len(s))
	position := 0
	for _, r := range s {
		if r < 0 || r > MaxCodePoint {
			return nil, errors.Wrapf(ErrEncoding, "%q (U+%04X) at position %d", r, r, position)
		}
		t = append(t, byte(r))
		position++
	}
	return t, nil
}

// FromBytes copies raw bytes into a Text. Every byte is a valid code point.
func FromBytes(b []byte) Text {
	t := make(Text, len(b))
	copy(t, b)
	return t
}

// String renders the code points as runes, so FromString(t.String()) returns t.
func (t Text) String() string {
	var sb strings.Builder
	sb.Grow(len(t))
	for _, c := range t {
		sb.WriteRune(rune(c))
	}
	return sb.String()
}

// Bytes returns the code points as raw bytes
func (t Text) Bytes() []byte {
	return []byte(t)
}
