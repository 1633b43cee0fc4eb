// Package mocks provides io test doubles for the obfuscate package
package mocks

import "errors"

// ErrFailed the error returned by the failing doubles
var ErrFailed = errors.New("mocked failure")

type WriteCloser struct {
	IsClosed bool
}

func (o *WriteCloser) Write(p []byte) (n int, err error) {
	return len(p), nil
}

func (o *WriteCloser) Close() error {
	o.IsClosed = true
	return nil
}

type ReadCloser struct {
	IsClosed bool
}

func (o *ReadCloser) Read(p []byte) (n int, err error) {
	return 0, nil
}

func (o *ReadCloser) Close() error {
	o.IsClosed = true
	return nil
}

// FailingReader fails on the first read
type FailingReader struct{}

func (f *FailingReader) Read(p []byte) (n int, err error) {
	return 0, ErrFailed
}

// FailingWriter fails on every write
type FailingWriter struct{}

func (f *FailingWriter) Write(p []byte) (n int, err error) {
	return 0, ErrFailed
}
