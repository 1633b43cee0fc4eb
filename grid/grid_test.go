package grid

import (
	"bytes"
	"testing"

	"github.com/NebulousLabs/fastrand"
	"github.com/xitonix/xgrid/assert"
	"github.com/xitonix/xgrid/text"
)

type transposeFunc func(text.Text, int) (text.Text, error)

type gridTestCase struct {
	title         string
	input         string
	columns       int
	expected      string
	expectedError error
}

func runGridTestCases(t *testing.T, op transposeFunc, testCases []gridTestCase) {
	t.Helper()
	for _, tc := range testCases {
		t.Run(tc.title, func(t *testing.T) {
			actual, err := op(text.Text(tc.input), tc.columns)
			fields := assert.Fields{"input": tc.input, "columns": tc.columns}
			if !assert.ErrorIs(t, tc.expectedError, err, fields) {
				return
			}
			if string(actual) != tc.expected {
				t.Errorf("expected '%s', actual '%s' (%s)", tc.expected, string(actual), fields.String())
			}
		})
	}
}

func TestRows(t *testing.T) {
	testCases := []struct {
		length, columns, expected int
	}{
		{length: 0, columns: 3, expected: 0},
		{length: 6, columns: 3, expected: 2},
		{length: 7, columns: 3, expected: 3},
		{length: 2, columns: 2, expected: 1},
		{length: 5, columns: 0, expected: 0},
	}
	for _, tc := range testCases {
		if actual := Rows(tc.length, tc.columns); actual != tc.expected {
			t.Errorf("Rows(%d, %d): expected %d, actual %d", tc.length, tc.columns, tc.expected, actual)
		}
	}
}

func TestTransposeColumns(t *testing.T) {
	runGridTestCases(t, TransposeColumns, []gridTestCase{
		{title: "empty_input_with_zero_columns", input: "", columns: 0, expected: ""},
		{title: "empty_input_with_any_columns", input: "", columns: 4, expected: ""},
		{title: "columns_equal_to_length_is_a_no_op", input: "AB", columns: 2, expected: "AB"},
		{title: "single_column_is_a_no_op", input: "abc", columns: 1, expected: "abc"},
		{title: "full_grid", input: "abcdef", columns: 2, expected: "acebdf"},
		{title: "full_grid_three_columns", input: "abcdef", columns: 3, expected: "adbecf"},
		{title: "partial_grid_is_padded_with_spaces", input: "abcde", columns: 2, expected: "acebd "},
		{title: "zero_columns_must_be_rejected", input: "abc", columns: 0, expectedError: ErrInvalidColumns},
		{title: "negative_columns_must_be_rejected", input: "abc", columns: -1, expectedError: ErrInvalidColumns},
		{title: "columns_longer_than_text_must_be_rejected", input: "abc", columns: 4, expectedError: ErrInvalidColumns},
	})
}

func TestTransposeRows(t *testing.T) {
	runGridTestCases(t, TransposeRows, []gridTestCase{
		{title: "empty_input", input: "", columns: 0, expected: ""},
		{title: "full_grid_is_a_no_op", input: "abcdef", columns: 3, expected: "abcdef"},
		{title: "partial_grid_is_padded_with_spaces", input: "abcde", columns: 2, expected: "abcde "},
		{title: "columns_equal_to_length_is_a_no_op", input: "AB", columns: 2, expected: "AB"},
		{title: "zero_columns_must_be_rejected", input: "abc", columns: 0, expectedError: ErrInvalidColumns},
		{title: "columns_longer_than_text_must_be_rejected", input: "ab", columns: 3, expectedError: ErrInvalidColumns},
	})
}

func TestReverseTransposeRows(t *testing.T) {
	runGridTestCases(t, ReverseTransposeRows, []gridTestCase{
		{title: "empty_input", input: "", columns: 0, expected: ""},
		{title: "one_row", input: "abc", columns: 3, expected: "abc"},
		{title: "as_many_rows_as_columns", input: "abcd", columns: 2, expected: "abcd"},
		{title: "fewer_rows_than_columns", input: "abcde", columns: 3, expected: "abcde"},
		{title: "more_rows_than_columns_must_be_rejected", input: "abcdef", columns: 2, expectedError: ErrInvalidColumns},
		{title: "zero_columns_must_be_rejected", input: "abc", columns: 0, expectedError: ErrInvalidColumns},
		{title: "columns_longer_than_text_must_be_rejected", input: "ab", columns: 3, expectedError: ErrInvalidColumns},
	})
}

func TestReverseTransposeColumns(t *testing.T) {
	runGridTestCases(t, ReverseTransposeColumns, []gridTestCase{
		{title: "empty_input", input: "", columns: 0, expected: ""},
		{title: "one_row_is_a_no_op", input: "AB", columns: 2, expected: "AB"},
		{title: "reverses_a_full_grid", input: "acebdf", columns: 2, expected: "abcdef"},
		{title: "reverses_a_full_grid_three_columns", input: "adbecf", columns: 3, expected: "abcdef"},
		{title: "padding_is_kept", input: "acebd ", columns: 2, expected: "abcde "},
		{title: "partial_grid", input: "abcde", columns: 2, expected: "adbec"},
		{title: "negative_columns_must_be_rejected", input: "abc", columns: -2, expectedError: ErrInvalidColumns},
		{title: "columns_longer_than_text_must_be_rejected", input: "ab", columns: 5, expectedError: ErrInvalidColumns},
	})
}

func TestRoundTripWithColumnsEqualToLength(t *testing.T) {
	for i := 0; i < 100; i++ {
		input := text.FromBytes(fastrand.Bytes(1 + fastrand.Intn(40)))
		columns := len(input)

		actual, err := chain(input, columns, TransposeColumns, TransposeRows, ReverseTransposeRows, ReverseTransposeColumns)
		if !assert.Errors(t, false, err, assert.Fields{"input": input}) {
			return
		}
		if !bytes.Equal(input, actual) {
			t.Errorf("round trip failed. expected %v, actual %v", input, actual)
		}
	}
}

func TestRoundTripOnAFullGrid(t *testing.T) {
	actual, err := chain(text.Text("abcdef"), 3, TransposeColumns, TransposeRows, ReverseTransposeRows, ReverseTransposeColumns)
	if !assert.Errors(t, false, err, nil) {
		return
	}
	if string(actual) != "abcdef" {
		t.Errorf("expected 'abcdef', actual '%s'", string(actual))
	}
}

func chain(t text.Text, columns int, ops ...transposeFunc) (text.Text, error) {
	var err error
	for _, op := range ops {
		t, err = op(t, columns)
		if err != nil {
			return nil, err
		}
	}
	return t, nil
}
