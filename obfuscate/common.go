package obfuscate

import (
	"context"
	"io"
)

// None represents an empty struct{}
type None struct{}

const defaultBufferSize = 1024

// readAll reads the input in bufferSize chunks until EOF or until the context gets cancelled.
func readAll(ctx context.Context, input io.Reader, bufferSize int) ([]byte, Status, error) {
	var data []byte
	buffer := make([]byte, bufferSize)
	for {
		if ctx.Err() != nil {
			return nil, Cancelled, nil
		}
		count, err := input.Read(buffer)
		if count > 0 {
			data = append(data, buffer[:count]...)
		}
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, Failed, err
		}
	}
	return data, Completed, nil
}

func writeAll(ctx context.Context, output io.Writer, data []byte) (Status, error) {
	if ctx.Err() != nil {
		return Cancelled, nil
	}
	if _, err := output.Write(data); err != nil {
		return Failed, err
	}
	return Completed, nil
}
