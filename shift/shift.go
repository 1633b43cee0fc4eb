// Package shift implements the additive, modulo 256 shift applied to every code point.
package shift

import "github.com/xitonix/xgrid/text"

// Normalize returns key modulo 256 using floored division, so negative keys wrap to a non-negative shift.
func Normalize(key int) byte {
	return byte(((key % 256) + 256) % 256)
}

// Apply adds key to every code point, modulo 256.
func Apply(t text.Text, key int) text.Text {
	k := Normalize(key)
	out := make(text.Text, len(t))
	for i, c := range t {
		out[i] = c + k
	}
	return out
}

// Reverse subtracts key from every code point, modulo 256.
func Reverse(t text.Text, key int) text.Text {
	k := Normalize(key)
	out := make(text.Text, len(t))
	for i, c := range t {
		out[i] = c - k
	}
	return out
}
