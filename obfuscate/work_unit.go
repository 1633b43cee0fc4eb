package obfuscate

import "github.com/google/uuid"

// CallbackFunc is a callback function which will get called by the engine once
// the processing of a work unit has been finished
type CallbackFunc func(*WorkUnit)

// MetadataMap arbitrary values attached to a work unit by its producer
type MetadataMap map[string]interface{}

// WorkUnit is a unit of encryption/decryption work
type WorkUnit struct {
	// ID unique identifier of the work unit
	ID string
	// Task the task to process
	Task *Task
	// Metadata the producer's data, untouched by the engine
	Metadata MetadataMap
	// Error the error details of a failed Task
	Error error

	callback CallbackFunc
}

// NewWorkUnit creates a new work unit
func NewWorkUnit(t *Task, c CallbackFunc) *WorkUnit {
	return &WorkUnit{
		ID:       uuid.NewString(),
		Task:     t,
		Metadata: make(MetadataMap),
		callback: c,
	}
}

func (w *WorkUnit) callBack() {
	if w.callback != nil {
		w.callback(w)
	}
}
