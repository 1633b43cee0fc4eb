package text

import (
	"bytes"
	"testing"

	"github.com/xitonix/xgrid/assert"
)

func TestFromString(t *testing.T) {
	testCases := []struct {
		title         string
		input         string
		expected      Text
		expectedError error
	}{
		{
			title:    "empty_input_is_valid",
			input:    "",
			expected: Text{},
		},
		{
			title:    "ascii_input",
			input:    "AB",
			expected: Text{65, 66},
		},
		{
			title:    "latin1_runes_map_to_a_single_code_point",
			input:    "éÿ",
			expected: Text{0xe9, 0xff},
		},
		{
			title:    "control_characters_are_valid",
			input:    "\x00\t\n",
			expected: Text{0, 9, 10},
		},
		{
			title:         "runes_above_255_must_be_rejected",
			input:         "a€",
			expectedError: ErrEncoding,
		},
		{
			title:         "invalid_utf8_must_be_rejected",
			input:         string([]byte{0xff}),
			expectedError: ErrEncoding,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.title, func(t *testing.T) {
			actual, err := FromString(tc.input)
			if !assert.ErrorIs(t, tc.expectedError, err, assert.Fields{"input": tc.input}) {
				return
			}
			if !bytes.Equal(tc.expected, actual) {
				t.Errorf("expected %v, actual %v", tc.expected, actual)
			}
		})
	}
}

func TestStringRoundTrip(t *testing.T) {
	all := make(Text, MaxCodePoint+1)
	for i := range all {
		all[i] = byte(i)
	}

	s := all.String()
	actual, err := FromString(s)
	if !assert.Errors(t, false, err, nil) {
		return
	}
	if !bytes.Equal(all, actual) {
		t.Error("rendering every code point as a string must be reversible")
	}
}

func TestFromBytesCopiesTheInput(t *testing.T) {
	raw := []byte("abc")
	tx := FromBytes(raw)
	raw[0] = 'z'
	if tx[0] != 'a' {
		t.Errorf("expected the Text to be detached from the input slice, got %q", tx.String())
	}
}
