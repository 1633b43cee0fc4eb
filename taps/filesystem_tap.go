package taps

import (
	"os"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/radovskyb/watcher"
)

// DefaultPollingInterval the polling frequency used when no valid interval has been provided
const DefaultPollingInterval = time.Second

// FilesystemTap is a tap which polls the source directory for newly created files
// and encodes (or decodes) them into the target directory.
type FilesystemTap struct {
	*fileTap
	watcher  *watcher.Watcher
	interval time.Duration
	wg       sync.WaitGroup

	//to prevent multiple go routines to run Open and Close at the same time
	mux     sync.Mutex
	stopped bool
}

// NewFilesystemTap creates a new instance of the polling filesystem tap.
// You can feed this tap to an Engine object to automate your obfuscation tasks.
//
// "pollingInterval" is the frequency of checking the "source" directory for newly created files.
//
// "source" and "target" are the paths to source and destination directories. They will get created
// by the tap if they don't already exist. The target directory cannot live inside the source.
//
// If you have enabled error notification or progress report in the options, you need to make sure
// that you read off the Errors and Progress channels, otherwise the tap will get blocked.
func NewFilesystemTap(source, target string, pollingInterval time.Duration, opts Options) (*FilesystemTap, error) {
	ft, err := newFileTap(source, target, opts)
	if err != nil {
		return nil, err
	}

	if pollingInterval <= 0 {
		pollingInterval = DefaultPollingInterval
	}

	w := watcher.New()
	w.FilterOps(watcher.Create)
	w.IgnoreHiddenFiles(true)

	if err := w.AddRecursive(ft.source); err != nil {
		return nil, errors.Wrap(err, "failed to watch the source directory")
	}

	return &FilesystemTap{
		fileTap:  ft,
		watcher:  w,
		interval: pollingInterval,
	}, nil
}

// Open starts the filesystem watcher on the source directory.
// The files which already exist in the source directory get processed first.
func (f *FilesystemTap) Open() {
	f.mux.Lock()
	defer f.mux.Unlock()

	if f.stopped || f.IsOpen() {
		return
	}
	f.isOpen.Store(true)

	f.wg.Add(1)
	go f.startDirectoryWatcher()
	// blocks until the watcher is running, so that Close will always be able to stop it
	f.watcher.Wait()

	existing := f.watcher.WatchedFiles()
	f.wg.Add(1)
	go f.monitorSourceDirectory(existing)
	f.Logger.Infof("Polling '%s' every %v", f.source, f.interval)
}

// Close stops the filesystem watcher and releases the resources.
// NOTE: You don't need to explicitly call this function when you are using this tap
// with an Engine. The engine will take care of it
func (f *FilesystemTap) Close() {
	f.mux.Lock()
	defer f.mux.Unlock()

	if f.stopped || !f.IsOpen() {
		return
	}
	f.isOpen.Store(false)
	f.stopped = true
	close(f.done)
	f.watcher.Close()
	f.wg.Wait()
	f.shutdown()
	f.Logger.Infof("Stopped polling '%s'", f.source)
}

func (f *FilesystemTap) startDirectoryWatcher() {
	defer f.wg.Done()
	if err := f.watcher.Start(f.interval); err != nil {
		f.reportError(errors.Wrap(err, "filesystem watcher"))
	}
}

func (f *FilesystemTap) monitorSourceDirectory(existing map[string]os.FileInfo) {
	defer f.wg.Done()

	for path, file := range existing {
		if path == f.source {
			continue
		}
		f.dispatchWorkUnit(path, file)
	}

	for {
		select {
		case event := <-f.watcher.Event:
			if !f.settle() {
				return
			}
			f.dispatchWorkUnit(event.Path, event.FileInfo)
		case err := <-f.watcher.Error:
			f.reportError(err)
		case <-f.watcher.Closed:
			return
		case <-f.done:
			return
		}
	}
}

// settle gives the writer of a newly created file some time to finish.
// It returns false if the tap gets closed in the meantime.
func (f *FilesystemTap) settle() bool {
	if f.SettleDelay <= 0 {
		return true
	}
	select {
	case <-time.After(f.SettleDelay):
		return true
	case <-f.done:
		return false
	}
}
