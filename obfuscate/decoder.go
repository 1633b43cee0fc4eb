package obfuscate

import (
	"context"
	"io"
)

// Decoder is the type that decrypts an envelope read from an io.Reader into one or more io.Writer outputs
type Decoder struct {
	input      io.Reader
	output     io.Writer
	bufferSize int
}

// NewDecoder creates a new Decoder object
func NewDecoder(bufferSize int, input io.Reader, outputs ...io.Writer) *Decoder {
	if bufferSize <= 0 {
		bufferSize = defaultBufferSize
	}

	return &Decoder{
		input:      input,
		output:     io.MultiWriter(outputs...),
		bufferSize: bufferSize,
	}
}

// Decode decrypts the envelope into the specified Writer(s).
//
// It returns an error if the input is not a valid envelope or the decrypted content
// does not match the envelope's checksum.
func (d *Decoder) Decode() (Status, error) {
	return d.DecodeContext(context.Background())
}

// DecodeContext decrypts the envelope into the specified Writer(s) and receives cancellation signal on the context parameter.
func (d *Decoder) DecodeContext(ctx context.Context) (Status, error) {
	data, status, err := readAll(ctx, d.input, d.bufferSize)
	if status != Completed {
		return status, err
	}

	envelope, err := UnmarshalEnvelope(data)
	if err != nil {
		return Failed, err
	}

	plain, err := envelope.Open()
	if err != nil {
		return Failed, err
	}

	return writeAll(ctx, d.output, plain.Bytes())
}
