package obfuscate

import (
	"sync"

	"github.com/xitonix/xgrid/logging"
)

// stream moves the work units from a tap into the tube the engine's workers read from.
type stream struct {
	tube WorkList
	tap  Tap
	log  logging.Logger

	wg   *sync.WaitGroup
	done chan None

	// to prevent multiple go routines to run shutdown and open at the same time
	mux    sync.Mutex
	isOpen bool
	closed bool
}

func newStream(bufferSize uint16, tap Tap, log logging.Logger) *stream {
	return &stream{
		tube: make(WorkList, bufferSize),
		done: make(chan None),
		wg:   &sync.WaitGroup{},
		tap:  tap,
		log:  log,
	}
}

func (s *stream) consumeTap() {
	defer s.wg.Done()
	requests := s.tap.Requests()
	for {
		select {
		case <-s.done:
			return
		case w, more := <-requests:
			if !more {
				return
			}
			s.forward(w)
		}
	}
}

// forward hands the work unit over to the workers. Units which cannot be delivered
// because the stream is shutting down are called back as cancelled.
func (s *stream) forward(w *WorkUnit) {
	select {
	case s.tube <- w:
	case <-s.done:
		s.log.Warningf("work unit %s dropped by the shutting down stream", w.ID)
		w.Task.markAsComplete(Cancelled)
		w.callBack()
	}
}

func (s *stream) shutdown() {
	s.mux.Lock()
	defer s.mux.Unlock()

	if !s.isOpen || s.closed {
		return
	}

	if s.tap.IsOpen() {
		s.tap.Close()
	}
	close(s.done)
	s.wg.Wait()
	close(s.tube)
	s.isOpen = false
	s.closed = true
}

func (s *stream) open() {
	s.mux.Lock()
	defer s.mux.Unlock()

	if s.isOpen || s.closed {
		return
	}

	s.wg.Add(1)
	go s.consumeTap()
	if !s.tap.IsOpen() {
		s.tap.Open()
	}
	s.isOpen = true
}
