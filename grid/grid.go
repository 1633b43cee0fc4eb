// Package grid rearranges text over a rectangular, space padded grid.
//
// The grid has a fixed number of columns and as many rows as needed to hold the text.
// Forward operations pad the text on the right with spaces until it fills the grid.
// Reverse operations never strip the padding.
//
// The reverse operations are only the exact inverse of the forward ones when the number
// of columns equals the length of the text being transposed.
package grid

import (
	"github.com/pkg/errors"
	"github.com/xitonix/xgrid/text"
)

// Padding the character used to fill the trailing cells of the grid
const Padding = ' '

// ErrInvalidColumns is returned when the number of columns cannot describe a grid for the text
var ErrInvalidColumns = errors.New("invalid number of columns")

// Rows returns the number of rows needed to lay out length characters over the given columns.
func Rows(length, columns int) int {
	if columns <= 0 {
		return 0
	}
	return (length + columns - 1) / columns
}

// TransposeColumns reads the padded grid column by column.
//
// For every column index i, the characters at i, i+columns, i+2*columns, ... are emitted.
func TransposeColumns(t text.Text, columns int) (text.Text, error) {
	if len(t) == 0 {
		return text.Text{}, nil
	}
	if err := validate(len(t), columns); err != nil {
		return nil, err
	}

	padded := pad(t, Rows(len(t), columns)*columns)
	out := make(text.Text, 0, len(padded))
	for i := 0; i < columns; i++ {
		for j := i; j < len(padded); j += columns {
			out = append(out, padded[j])
		}
	}
	return out, nil
}

// TransposeRows re-chunks the padded grid into rows of the given width and joins them in order.
func TransposeRows(t text.Text, columns int) (text.Text, error) {
	if len(t) == 0 {
		return text.Text{}, nil
	}
	if err := validate(len(t), columns); err != nil {
		return nil, err
	}

	rows := Rows(len(t), columns)
	padded := pad(t, rows*columns)
	out := make(text.Text, 0, len(padded))
	for r := 0; r < rows; r++ {
		out = append(out, padded[r*columns:(r+1)*columns]...)
	}
	return out, nil
}

// ReverseTransposeRows collects the characters into one bucket per column, character i
// going to bucket i/columns, and joins the buckets in order.
//
// A grid with more rows than columns has no bucket for its trailing rows and is rejected.
func ReverseTransposeRows(t text.Text, columns int) (text.Text, error) {
	if len(t) == 0 {
		return text.Text{}, nil
	}
	if err := validate(len(t), columns); err != nil {
		return nil, err
	}

	rows := Rows(len(t), columns)
	if rows > columns {
		return nil, errors.Wrapf(ErrInvalidColumns, "%d rows cannot be redistributed over %d columns", rows, columns)
	}

	buckets := make([]text.Text, columns)
	for i, c := range t {
		buckets[i/columns] = append(buckets[i/columns], c)
	}
	return join(buckets, len(t)), nil
}

// ReverseTransposeColumns collects the characters into one bucket per row, character i
// going to bucket i%rows, and joins the buckets in order.
func ReverseTransposeColumns(t text.Text, columns int) (text.Text, error) {
	if len(t) == 0 {
		return text.Text{}, nil
	}
	if err := validate(len(t), columns); err != nil {
		return nil, err
	}

	rows := Rows(len(t), columns)
	buckets := make([]text.Text, rows)
	for i, c := range t {
		buckets[i%rows] = append(buckets[i%rows], c)
	}
	return join(buckets, len(t)), nil
}

func validate(length, columns int) error {
	if columns <= 0 {
		return errors.Wrapf(ErrInvalidColumns, "%d columns", columns)
	}
	if columns > length {
		return errors.Wrapf(ErrInvalidColumns, "%d columns for %d characters", columns, length)
	}
	return nil
}

func pad(t text.Text, length int) text.Text {
	padded := make(text.Text, length)
	n := copy(padded, t)
	for i := n; i < length; i++ {
		padded[i] = Padding
	}
	return padded
}

func join(buckets []text.Text, size int) text.Text {
	out := make(text.Text, 0, size)
	for _, b := range buckets {
		out = append(out, b...)
	}
	return out
}
