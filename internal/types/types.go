// Package types contains shared types and error definitions for exp.
package types

import (
	"errors"
	"fmt"
)

// Sentinel errors for exp operations
var (
	ErrUsage          = errors.New("invalid usage")
	ErrNotInspectable = errors.New("path is not in the Windows filesystem")
	ErrUnsupportedOS  = errors.New("unsupported operating system")
	ErrLaunchFailed   = errors.New("failed to launch explorer")
	ErrDataRead       = errors.New("data read failed")
	ErrDataWrite      = errors.New("data write failed")
)

// PathError represents a path operation error with context
type PathError struct {
	Op   string
	Path string
	Err  error
	Help string
}

func (e *PathError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PathError) Unwrap() error {
	return e.Err
}

// IsUsage checks if the error indicates a caller-contract violation
func IsUsage(err error) bool {
	return errors.Is(err, ErrUsage)
}

// IsNotInspectable checks if the error indicates the path cannot be shown in Explorer
func IsNotInspectable(err error) bool {
	return errors.Is(err, ErrNotInspectable)
}

// NewPathError creates a new PathError
func NewPathError(op, path string, err error, help string) *PathError {
	return &PathError{Op: op, Path: path, Err: err, Help: help}
}
