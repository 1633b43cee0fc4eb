package obfuscate

import (
	"context"
	"io"

	"github.com/xitonix/xgrid/text"
)

// Encoder is the type that encrypts an io.Reader into an envelope written to one or more io.Writer outputs
type Encoder struct {
	name       string
	input      io.Reader
	output     io.Writer
	bufferSize int
}

// NewEncoder creates a new Encoder object.
// name is stored in the envelope and can be empty.
func NewEncoder(bufferSize int, name string, input io.Reader, outputs ...io.Writer) *Encoder {
	if bufferSize <= 0 {
		bufferSize = defaultBufferSize
	}

	return &Encoder{
		name:       name,
		input:      input,
		output:     io.MultiWriter(outputs...),
		bufferSize: bufferSize,
	}
}

// Encode encrypts the io.Reader into the specified io.Writer outputs.
func (e *Encoder) Encode() (Status, error) {
	return e.EncodeContext(context.Background())
}

// EncodeContext encrypts the io.Reader into the specified io.Writer outputs and receives cancellation signal on the context parameter.
// Nothing is written to the outputs if the context gets cancelled before the envelope is ready.
func (e *Encoder) EncodeContext(ctx context.Context) (Status, error) {
	data, status, err := readAll(ctx, e.input, e.bufferSize)
	if status != Completed {
		return status, err
	}

	envelope, err := Seal(e.name, text.FromBytes(data))
	if err != nil {
		return Failed, err
	}

	encoded, err := envelope.Marshal()
	if err != nil {
		return Failed, err
	}

	return writeAll(ctx, e.output, encoded)
}
