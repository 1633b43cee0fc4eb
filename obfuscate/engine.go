package obfuscate

import (
	"context"
	"sync"

	"github.com/xitonix/xgrid/logging"
)

// Engine is a pool of workers encrypting and decrypting the work units
// received from a Tap.
type Engine struct {
	stream  *stream
	log     logging.Logger
	wg      *sync.WaitGroup
	cancel  context.CancelFunc
	workers uint16

	//to prevent multiple go routines to run Start and Stop at the same time
	mux       sync.Mutex
	isRunning bool
	stopped   bool
}

// NewEngine creates a new engine with the specified number of workers.
// A nil logger discards the log entries.
func NewEngine(workers uint16, log logging.Logger, tap Tap) *Engine {
	if workers == 0 {
		workers = 1
	}
	if log == nil {
		log = logging.Nop()
	}
	return &Engine{
		stream:  newStream(workers, tap, log),
		log:     log,
		wg:      &sync.WaitGroup{},
		workers: workers,
	}
}

// Start starts the workers and opens the tap. Once you are finished with the engine, you need to
// call the Stop function. It's safe to call this method on a running engine.
// A stopped engine cannot be restarted.
func (e *Engine) Start() {
	e.mux.Lock()
	defer e.mux.Unlock()

	if e.isRunning || e.stopped {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	e.cancel = cancel

	for i := uint16(0); i < e.workers; i++ {
		e.wg.Add(1)
		go e.monitorStream(ctx)
	}
	e.stream.open()
	e.isRunning = true
	e.log.Debugf("the engine has been started with %d worker(s)", e.workers)
}

// Stop closes the tap, cancels the in-flight tasks and releases the resources.
// It's safe to call this function on a stopped engine
func (e *Engine) Stop() {
	e.mux.Lock()
	defer e.mux.Unlock()

	if !e.isRunning {
		return
	}
	e.stream.shutdown()
	e.cancel()
	e.wg.Wait()
	e.isRunning = false
	e.stopped = true
	e.log.Debug("the engine has been stopped")
}

// IsON returns true if the engine is running
func (e *Engine) IsON() bool {
	e.mux.Lock()
	defer e.mux.Unlock()
	return e.isRunning
}

func (e *Engine) monitorStream(ctx context.Context) {
	defer e.wg.Done()
	for {
		select {
		case wu, more := <-e.stream.tube:
			if !more {
				return
			}
			e.log.Debugf("%s task '%s' picked up (%s)", wu.Task.mode, wu.Task.name, wu.ID)
			wu.Error = processTask(ctx, wu.Task)
			if wu.Error != nil {
				e.log.Errorf("%s task '%s' failed (%s): %v", wu.Task.mode, wu.Task.name, wu.ID, wu.Error)
			} else {
				e.log.Debugf("%s task '%s' %s (%s)", wu.Task.mode, wu.Task.name, wu.Task.Status(), wu.ID)
			}
			wu.callBack()
		case <-ctx.Done():
			// the tube has already been closed by the stream
			for wu := range e.stream.tube {
				wu.Task.markAsComplete(Cancelled)
				wu.callBack()
			}
			return
		}
	}
}

func processTask(ctx context.Context, task *Task) error {
	outputs := task.markAsInProgress()
	var status Status
	var err error
	if task.mode == Encode {
		encoder := NewEncoder(defaultBufferSize, task.name, task.input, outputs...)
		status, err = encoder.EncodeContext(ctx)
	} else {
		decoder := NewDecoder(defaultBufferSize, task.input, outputs...)
		status, err = decoder.DecodeContext(ctx)
	}
	task.markAsComplete(status)
	return err
}
