package taps

import (
	"io/fs"
	"path/filepath"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/rjeczalik/notify"
)

const (
	// DefaultSettleDelay the time a file must stay untouched before the directory watcher processes it
	DefaultSettleDelay  = 2 * time.Second
	settleCheckInterval = 100 * time.Millisecond
)

// DirectoryWatcherTap is a tap which subscribes to the filesystem events of the
// source directory (and all its sub-directories) and encodes (or decodes) the new
// files into the target directory once they have settled.
type DirectoryWatcherTap struct {
	*fileTap
	fsEvents chan notify.EventInfo
	queue    *settleQueue
	wg       sync.WaitGroup

	//to prevent multiple go routines to run Open and Close at the same time
	mux     sync.Mutex
	stopped bool
}

// NewDirectoryWatcherTap creates a new instance of the event based directory watcher tap.
//
// Options.SettleDelay defaults to DefaultSettleDelay.
//
// If you have enabled error notification or progress report in the options, you need to make sure
// that you read off the Errors and Progress channels, otherwise the tap will get blocked.
func NewDirectoryWatcherTap(source, target string, opts Options) (*DirectoryWatcherTap, error) {
	if opts.SettleDelay <= 0 {
		opts.SettleDelay = DefaultSettleDelay
	}
	ft, err := newFileTap(source, target, opts)
	if err != nil {
		return nil, err
	}

	return &DirectoryWatcherTap{
		fileTap:  ft,
		fsEvents: make(chan notify.EventInfo, 100),
		queue:    newSettleQueue(opts.SettleDelay),
	}, nil
}

// Open starts the directory watcher on the source directory.
// You SHOULD NOT call this method explicitly when you use the tap with an Engine object.
// Starting the engine will take care of opening the tap.
func (d *DirectoryWatcherTap) Open() {
	d.mux.Lock()
	defer d.mux.Unlock()

	if d.stopped || d.IsOpen() {
		return
	}

	if err := notify.Watch(filepath.Join(d.source, "..."), d.fsEvents, notify.Create, notify.Write); err != nil {
		d.Logger.Errorf("Failed to watch '%s': %s", d.source, err)
		return
	}
	d.isOpen.Store(true)

	d.wg.Add(1)
	go d.startDirectoryWatcher()
	d.Logger.Infof("Watching '%s'", d.source)
}

// Close stops the filesystem watcher and releases the resources.
// NOTE: You don't need to explicitly call this function when you are using the tap
// with an Engine
func (d *DirectoryWatcherTap) Close() {
	d.mux.Lock()
	defer d.mux.Unlock()

	if d.stopped || !d.IsOpen() {
		return
	}
	d.isOpen.Store(false)
	d.stopped = true
	notify.Stop(d.fsEvents)
	close(d.done)
	d.wg.Wait()
	d.shutdown()
	d.Logger.Infof("Stopped watching '%s'", d.source)
}

func (d *DirectoryWatcherTap) startDirectoryWatcher() {
	defer d.wg.Done()

	d.processExistingFiles()

	ticker := time.NewTicker(settleCheckInterval)
	defer ticker.Stop()
	for {
		select {
		case <-d.done:
			return
		case ei := <-d.fsEvents:
			if err := d.queue.addOrUpdate(ei.Path()); err != nil {
				d.reportError(errors.Wrapf(err, "failed to stat '%s'", ei.Path()))
			}
		case now := <-ticker.C:
			for _, m := range d.queue.popReady(now) {
				d.dispatchWorkUnit(m.path, m.fi)
				if !d.IsOpen() {
					return
				}
			}
		}
	}
}

func (d *DirectoryWatcherTap) processExistingFiles() {
	err := filepath.WalkDir(d.source, func(path string, entry fs.DirEntry, err error) error {
		if !d.IsOpen() {
			return filepath.SkipAll
		}
		if err != nil {
			return err
		}
		if entry.IsDir() {
			if path != d.source && isHidden(entry.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		info, err := entry.Info()
		if err != nil {
			return err
		}
		d.dispatchWorkUnit(path, info)
		return nil
	})

	if err != nil {
		d.reportError(errors.Wrapf(err, "failed to process the existing files in '%s'", d.source))
	}
}
