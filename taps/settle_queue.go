package taps

import (
	"os"
	"sync"
	"time"
)

type fileMonitor struct {
	path       string
	fi         os.FileInfo
	lastUpdate time.Time
}

// settleQueue holds the files which are still being written to. A file
// becomes ready once it has not been touched for the settle delay.
type settleQueue struct {
	mux      sync.Mutex
	delay    time.Duration
	monitors map[string]*fileMonitor
}

func newSettleQueue(delay time.Duration) *settleQueue {
	return &settleQueue{
		delay:    delay,
		monitors: make(map[string]*fileMonitor),
	}
}

// addOrUpdate queues the file or resets its timer if it has already been queued.
// Directories and the files which no longer exist are ignored.
func (q *settleQueue) addOrUpdate(path string) error {
	f, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if f.IsDir() {
		return nil
	}

	q.mux.Lock()
	defer q.mux.Unlock()
	if m, ok := q.monitors[path]; ok {
		m.fi = f
		m.lastUpdate = time.Now()
		return nil
	}
	q.monitors[path] = &fileMonitor{
		path:       path,
		fi:         f,
		lastUpdate: time.Now(),
	}
	return nil
}

// popReady removes and returns the files which have settled.
func (q *settleQueue) popReady(now time.Time) []*fileMonitor {
	q.mux.Lock()
	defer q.mux.Unlock()
	var ready []*fileMonitor
	for path, m := range q.monitors {
		if now.Sub(m.lastUpdate) >= q.delay {
			ready = append(ready, m)
			delete(q.monitors, path)
		}
	}
	return ready
}

func (q *settleQueue) len() int {
	q.mux.Lock()
	defer q.mux.Unlock()
	return len(q.monitors)
}
