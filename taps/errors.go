package taps

import "errors"

var (
	// ErrInvalidDirectory raised if the specified path is not a valid path to a directory
	ErrInvalidDirectory = errors.New("the specified path is not a directory")
	// ErrNestedTarget raised if the target directory is the source directory or lives inside it
	ErrNestedTarget = errors.New("the target directory cannot be inside the source directory")
)
