package obfuscate

import (
	"bytes"
	"sync"
	"testing"

	"github.com/NebulousLabs/fastrand"
	"github.com/xitonix/xgrid/assert"
	"github.com/xitonix/xgrid/bitstring"
	"github.com/xitonix/xgrid/text"
)

func TestEncrypt(t *testing.T) {
	testCases := []struct {
		title           string
		input           string
		expectedBinary  bitstring.String
		expectedKey     int
		expectedColumns int
		expectedError   error
	}{
		{
			title:           "empty_input_produces_an_empty_ciphertext",
			input:           "",
			expectedBinary:  "",
			expectedKey:     0,
			expectedColumns: 0,
		},
		{
			title:           "two_characters",
			input:           "AB",
			expectedBinary:  "0100010101000110",
			expectedKey:     4,
			expectedColumns: 2,
		},
		{
			title:           "single_space",
			input:           " ",
			expectedBinary:  "00100001",
			expectedKey:     1,
			expectedColumns: 1,
		},
		{
			title:           "shift_wraps_around_255",
			input:           "ÿ",
			expectedBinary:  "00000111",
			expectedKey:     8,
			expectedColumns: 1,
		},
		{
			title:         "runes_above_255_must_be_rejected",
			input:         "AB€",
			expectedError: ErrEncoding,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.title, func(t *testing.T) {
			actual, err := Encrypt(tc.input)
			if !assert.ErrorIs(t, tc.expectedError, err, assert.Fields{"input": tc.input}) {
				return
			}
			if actual.Binary != tc.expectedBinary {
				t.Errorf("expected binary '%s', actual '%s'", tc.expectedBinary, actual.Binary)
			}
			if actual.Key != tc.expectedKey {
				t.Errorf("expected key %d, actual %d", tc.expectedKey, actual.Key)
			}
			if actual.Columns != tc.expectedColumns {
				t.Errorf("expected %d columns, actual %d", tc.expectedColumns, actual.Columns)
			}
		})
	}
}

func TestDecrypt(t *testing.T) {
	testCases := []struct {
		title         string
		binary        string
		key           int
		columns       int
		expected      string
		expectedError error
	}{
		{
			title:    "two_characters",
			binary:   "0100010101000110",
			key:      4,
			columns:  2,
			expected: "AB",
		},
		{
			title:    "empty_binary_with_zero_columns_is_the_empty_text",
			binary:   "",
			key:      0,
			columns:  0,
			expected: "",
		},
		{
			title:    "trailing_fragment_is_dropped",
			binary:   "0100010101000110101",
			key:      4,
			columns:  2,
			expected: "AB",
		},
		{
			title:    "keys_are_taken_modulo_256",
			binary:   "0100010101000110",
			key:      256 + 4,
			columns:  2,
			expected: "AB",
		},
		{
			title:         "non_binary_symbols_are_malformed",
			binary:        "010201",
			key:           3,
			columns:       2,
			expectedError: ErrMalformedBinary,
		},
		{
			title:         "malformed_binary_is_reported_before_invalid_columns",
			binary:        "0102",
			key:           3,
			columns:       -1,
			expectedError: ErrMalformedBinary,
		},
		{
			title:         "zero_columns_must_be_rejected",
			binary:        "0100010101000110",
			key:           4,
			columns:       0,
			expectedError: ErrInvalidParameter,
		},
		{
			title:         "negative_columns_must_be_rejected",
			binary:        "0100010101000110",
			key:           4,
			columns:       -2,
			expectedError: ErrInvalidParameter,
		},
		{
			title:         "columns_longer_than_the_decoded_text_must_be_rejected",
			binary:        "0100010101000110",
			key:           4,
			columns:       3,
			expectedError: ErrInvalidParameter,
		},
		{
			title:         "negative_columns_with_empty_binary_must_be_rejected",
			binary:        "",
			columns:       -1,
			expectedError: ErrInvalidParameter,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.title, func(t *testing.T) {
			fields := assert.Fields{"binary": tc.binary, "key": tc.key, "columns": tc.columns}
			actual, err := Decrypt(tc.binary, tc.key, tc.columns)
			if !assert.ErrorIs(t, tc.expectedError, err, fields) {
				return
			}
			if actual != tc.expected {
				t.Errorf("expected '%s', actual '%s' (%s)", tc.expected, actual, fields.String())
			}
		})
	}
}

func TestDecryptWithADifferentGridWidth(t *testing.T) {
	// two rows of two columns: the row buckets interleave the halves
	c, err := EncryptText(text.Text("ABCD"))
	if !assert.Errors(t, false, err, nil) {
		return
	}
	actual, err := DecryptText(c.Binary, c.Key, 2)
	if !assert.Errors(t, false, err, nil) {
		return
	}
	if string(actual) != "ACBD" {
		t.Errorf("expected 'ACBD', actual '%s'", string(actual))
	}
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	inputs := []string{"a", "AB", "hello world", "   ", "trailing ", "\x00\x01\x02", "héllo ÿ"}
	for i := 0; i < 50; i++ {
		inputs = append(inputs, text.FromBytes(fastrand.Bytes(1+fastrand.Intn(128))).String())
	}

	for _, input := range inputs {
		c, err := Encrypt(input)
		if !assert.Errors(t, false, err, assert.Fields{"input": input}) {
			continue
		}
		if c.Columns != len([]rune(input)) {
			t.Errorf("expected the number of columns to be the text length %d, actual %d", len([]rune(input)), c.Columns)
		}

		actual, err := c.Decrypt()
		if !assert.Errors(t, false, err, assert.Fields{"input": input}) {
			continue
		}
		if actual != input {
			t.Errorf("round trip failed. expected %q, actual %q", input, actual)
		}
	}
}

func TestKeyIsTheOnesCountOfThePlaintext(t *testing.T) {
	for i := 0; i < 50; i++ {
		input := text.FromBytes(fastrand.Bytes(1 + fastrand.Intn(64)))
		c, err := EncryptText(input)
		if !assert.Errors(t, false, err, nil) {
			return
		}
		if expected := bitstring.CountOnes(bitstring.Encode(input)); c.Key != expected {
			t.Errorf("expected key %d, actual %d", expected, c.Key)
		}
	}
}

func TestConcurrentUse(t *testing.T) {
	input := text.FromBytes(fastrand.Bytes(256))
	wg := &sync.WaitGroup{}
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c, err := EncryptText(input)
			if err != nil {
				t.Errorf("failed to encrypt: %v", err)
				return
			}
			actual, err := DecryptText(c.Binary, c.Key, c.Columns)
			if err != nil {
				t.Errorf("failed to decrypt: %v", err)
				return
			}
			if !bytes.Equal(input, actual) {
				t.Error("decrypted result does not match the input")
			}
		}()
	}
	wg.Wait()
}
