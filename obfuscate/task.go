package obfuscate

import (
	"io"
	"sync"
)

// Operation represents the operation which needs to be done by a Task
type Operation int8

const (
	// Encode encryption mode
	Encode Operation = iota
	// Decode decryption mode
	Decode
)

func (o Operation) String() string {
	switch o {
	case Encode:
		return "encode"
	case Decode:
		return "decode"
	}
	return "unknown"
}

// Task is a unit of encryption/decryption work
type Task struct {
	name  string
	mode  Operation
	input io.Reader

	status Status

	mux        sync.Mutex
	inProgress bool
	outputs    []io.Writer
}

// NewTask creates a new Task object.
// The name is stored in the envelope when encoding.
func NewTask(name string, mode Operation, input io.Reader, output io.Writer) *Task {
	return &Task{
		name:    name,
		mode:    mode,
		input:   input,
		outputs: []io.Writer{output},
		status:  Queued,
	}
}

// Name returns the name of the task
func (t *Task) Name() string {
	return t.name
}

// Mode returns the operation of the task
func (t *Task) Mode() Operation {
	return t.mode
}

// AddOutput adds a new new output to the Task
// Calling this function on an in-progress Task will return ErrOperationInProgress error
func (t *Task) AddOutput(output io.Writer) error {
	t.mux.Lock()
	defer t.mux.Unlock()
	if t.inProgress {
		return ErrOperationInProgress
	}
	t.outputs = append(t.outputs, output)
	return nil
}

// CloseInput closes the input Reader.
// If the reader is not a io.Closer, calling this function will have no effect
// Calling this function on an in-progress Task will return ErrOperationInProgress error
func (t *Task) CloseInput() error {
	t.mux.Lock()
	defer t.mux.Unlock()
	if t.inProgress {
		return ErrOperationInProgress
	}
	input, ok := t.input.(io.Closer)
	if ok && input != nil {
		return input.Close()
	}
	return nil
}

// CloseOutputs closes all the output Writers.
// If the output is not a io.Closer, calling this function will have no effect
// Calling this function on an in-progress Task will return ErrOperationInProgress error
func (t *Task) CloseOutputs() error {
	t.mux.Lock()
	defer t.mux.Unlock()
	if t.inProgress {
		return ErrOperationInProgress
	}
	for _, out := range t.outputs {
		output, ok := out.(io.Closer)
		if ok && output != nil {
			err := output.Close()
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// Status returns the current status of the task
func (t *Task) Status() Status {
	t.mux.Lock()
	defer t.mux.Unlock()
	return t.status
}

func (t *Task) markAsInProgress() []io.Writer {
	t.mux.Lock()
	defer t.mux.Unlock()
	t.inProgress = true
	t.status = InProgress
	return t.outputs
}

func (t *Task) markAsComplete(status Status) {
	t.mux.Lock()
	defer t.mux.Unlock()
	t.status = status
	t.inProgress = false
}
