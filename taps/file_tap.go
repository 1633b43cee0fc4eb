package taps

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"github.com/xitonix/xgrid/logging"
	"github.com/xitonix/xgrid/obfuscate"
)

const (
	outputMetadataKey     = "output"
	inputMetadataKey      = "input"
	outputFullMetadataKey = "output_full_path"
	inputFullMetadataKey  = "input_full_path"
)

// File a file processed by a tap
type File struct {
	Name, Path string
}

// Result represents the progress details of a task
type Result struct {
	// Status the status of the operation
	Status obfuscate.Status

	// Error the error details of a failed task
	Error error

	Input, Output File
}

// Options the behaviour shared by the filesystem taps
type Options struct {
	// Mode Encode turns every new file into an envelope, Decode turns envelopes back into plain files
	Mode obfuscate.Operation
	// NotifyErrors enables the Errors channel. Make sure you read off the channel once enabled.
	NotifyErrors bool
	// ReportProgress enables the Progress channel. Make sure you read off the channel once enabled.
	ReportProgress bool
	// DeleteCompleted removes the input files which have been processed successfully
	DeleteCompleted bool
	// SettleDelay how long a file must stay untouched before it gets processed
	SettleDelay time.Duration
	// Logger defaults to a no-op logger
	Logger logging.Logger
}

// fileTap is what the filesystem taps have in common: the directories, the work list,
// the notification channels and the dispatching of files to the engine.
type fileTap struct {
	Options
	source, target string
	pipe           obfuscate.WorkList
	errors         chan error
	progress       chan *Result
	done           chan obfuscate.None
	isOpen         atomic.Bool

	// to prevent the notification channels from being closed while a report is in flight
	reportMux sync.RWMutex
	closed    bool
}

func newFileTap(source, target string, opts Options) (*fileTap, error) {
	src, err := createDirIfNotExist(source)
	if err != nil {
		return nil, err
	}

	tg, err := createDirIfNotExist(target)
	if err != nil {
		return nil, err
	}

	if rel, err := filepath.Rel(src, tg); err == nil && !strings.HasPrefix(rel, "..") {
		return nil, errors.Wrapf(ErrNestedTarget, "source: %s, target: %s", src, tg)
	}

	if opts.Logger == nil {
		opts.Logger = logging.Nop()
	}

	return &fileTap{
		Options:  opts,
		source:   src,
		target:   tg,
		pipe:     make(obfuscate.WorkList),
		errors:   make(chan error),
		progress: make(chan *Result),
		done:     make(chan obfuscate.None),
	}, nil
}

// Errors returns a read-only channel on which you will receive the failure notifications.
//
// In order to receive the errors on the channel, you need to turn error notifications On by setting
// Options.NotifyErrors to true.
func (f *fileTap) Errors() <-chan error {
	return f.errors
}

// Progress returns a read-only channel on which you will receive the progress report.
//
// In order to receive progress report on the channel, you need to turn it On by setting
// Options.ReportProgress to true.
func (f *fileTap) Progress() <-chan *Result {
	return f.progress
}

// Requests returns the work list channel from which the engine will receive the requests.
func (f *fileTap) Requests() obfuscate.WorkList {
	return f.pipe
}

// IsOpen returns true if the tap is open
func (f *fileTap) IsOpen() bool {
	return f.isOpen.Load()
}

// shutdown must only be called once the tap's go routines have returned.
func (f *fileTap) shutdown() {
	close(f.pipe)

	f.reportMux.Lock()
	defer f.reportMux.Unlock()
	f.closed = true
	close(f.errors)
	close(f.progress)
}

func (f *fileTap) reportError(err error) {
	f.Logger.Warning(err)
	f.reportMux.RLock()
	defer f.reportMux.RUnlock()
	if f.closed || !f.NotifyErrors {
		return
	}
	select {
	case f.errors <- err:
	case <-f.done:
	}
}

func (f *fileTap) reportProgress(r *Result) {
	f.reportMux.RLock()
	defer f.reportMux.RUnlock()
	if f.closed || !f.ReportProgress {
		return
	}
	select {
	case f.progress <- r:
	case <-f.done:
	}
}

// outputName returns the name of the file the input will be turned into.
// False means the file must be ignored.
func (f *fileTap) outputName(name string) (string, bool) {
	if isHidden(name) {
		return "", false
	}
	if f.Mode == obfuscate.Encode {
		return name + obfuscate.EnvelopeExtension, true
	}
	if !strings.HasSuffix(name, obfuscate.EnvelopeExtension) || name == obfuscate.EnvelopeExtension {
		return "", false
	}
	return strings.TrimSuffix(name, obfuscate.EnvelopeExtension), true
}

func (f *fileTap) openInputFile(path string) (*os.File, string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, path, err
	}
	input, err := os.Open(abs)
	return input, abs, err
}

func (f *fileTap) createOutputFile(name, inputFullPath string) (*os.File, string, error) {
	subDir, err := filepath.Rel(f.source, filepath.Dir(inputFullPath))
	if err != nil {
		return nil, name, err
	}
	abs, err := createDirIfNotExist(filepath.Join(f.target, subDir))
	if err != nil {
		return nil, name, err
	}
	abs = filepath.Join(abs, name)
	output, err := os.Create(abs)
	return output, abs, err
}

func (f *fileTap) dispatchWorkUnit(path string, file os.FileInfo) {
	if !f.IsOpen() || file == nil || file.IsDir() {
		return
	}

	name := file.Name()
	outName, ok := f.outputName(name)
	if !ok {
		return
	}

	input, inputFullPath, err := f.openInputFile(path)
	if err != nil {
		f.reportError(errors.Wrapf(err, "failed to open '%s'", path))
		return
	}

	output, outputFullPath, err := f.createOutputFile(outName, inputFullPath)
	if err != nil {
		input.Close()
		f.reportError(errors.Wrapf(err, "failed to create '%s'", outputFullPath))
		return
	}

	t := obfuscate.NewTask(name, f.Mode, input, output)
	w := obfuscate.NewWorkUnit(t, f.whenDone)
	w.Metadata[inputMetadataKey] = name
	w.Metadata[outputMetadataKey] = outName
	w.Metadata[inputFullMetadataKey] = inputFullPath
	w.Metadata[outputFullMetadataKey] = outputFullPath

	in, out := parseMetadata(w.Metadata)
	f.reportProgress(&Result{
		Status: t.Status(),
		Input:  in,
		Output: out,
	})

	select {
	case f.pipe <- w:
		f.Logger.Debugf("'%s' dispatched as %s (%s)", inputFullPath, w.ID, f.Mode)
	case <-f.done:
		input.Close()
		output.Close()
		os.Remove(outputFullPath)
	}
}

// whenDone is a callback method which will get called by the engine once the
// processing of a task has been finished
func (f *fileTap) whenDone(w *obfuscate.WorkUnit) {
	input, output := parseMetadata(w.Metadata)

	if err := w.Task.CloseInput(); err != nil {
		f.reportError(errors.Wrapf(err, "failed to close '%s'", input.Name))
	}
	if err := w.Task.CloseOutputs(); err != nil {
		f.reportError(errors.Wrapf(err, "failed to close '%s'", output.Name))
	}

	status := w.Task.Status()
	if status != obfuscate.Completed {
		if err := os.Remove(output.Path); err != nil && !os.IsNotExist(err) {
			f.reportError(errors.Wrapf(err, "failed to remove '%s'", output.Name))
		}
	}

	if f.DeleteCompleted && status == obfuscate.Completed {
		if err := os.Remove(input.Path); err != nil {
			f.reportError(errors.Wrapf(err, "failed to remove '%s'", input.Name))
		} else {
			f.removeEmptyParents(filepath.Dir(input.Path))
		}
	}

	if w.Error != nil {
		f.reportError(errors.Wrapf(w.Error, "failed to %s '%s'", f.Mode, input.Name))
	}

	f.reportProgress(&Result{
		Status: status,
		Error:  w.Error,
		Input:  input,
		Output: output,
	})
}

// removeEmptyParents removes the empty directories between dir and the source directory
func (f *fileTap) removeEmptyParents(dir string) {
	for dir != f.source && strings.HasPrefix(dir, f.source) && isDirEmpty(dir) {
		if err := os.Remove(dir); err != nil {
			if !os.IsNotExist(err) {
				f.reportError(errors.Wrapf(err, "failed to remove the '%s' directory", dir))
			}
			return
		}
		dir = filepath.Dir(dir)
	}
}

func parseMetadata(metadata obfuscate.MetadataMap) (File, File) {
	return File{
			Name: metadata[inputMetadataKey].(string),
			Path: metadata[inputFullMetadataKey].(string),
		},
		File{
			Name: metadata[outputMetadataKey].(string),
			Path: metadata[outputFullMetadataKey].(string),
		}
}

func createDirIfNotExist(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return dir, err
	}
	f, err := os.Stat(abs)
	if os.IsNotExist(err) {
		return abs, os.MkdirAll(abs, os.ModePerm)
	}
	if err != nil {
		return abs, err
	}
	if !f.IsDir() {
		return abs, ErrInvalidDirectory
	}
	return abs, nil
}

func isDirEmpty(name string) bool {
	entries, err := os.ReadDir(name)
	if err != nil {
		return false
	}
	return len(entries) == 0
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
