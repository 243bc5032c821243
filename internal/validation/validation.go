// Package validation provides input validation functions for exp.
package validation

import (
	"errors"
	"strings"
)

var (
	ErrEmptyInput    = errors.New("input is empty")
	ErrPathTooLong   = errors.New("path exceeds maximum length")
	ErrControlChars  = errors.New("path contains control characters")
	ErrNotAbsolute   = errors.New("path is not absolute")
	ErrTrailingSpace = errors.New("path has leading or trailing whitespace")
)

const MaxPathLength = 4096

// ValidateInputPath checks a raw command-line path argument before resolution.
func ValidateInputPath(path string) error {
	if path == "" {
		return ErrEmptyInput
	}
	if len(path) > MaxPathLength {
		return ErrPathTooLong
	}
	for _, r := range path {
		if r < 32 || r == 127 {
			return ErrControlChars
		}
	}
	return nil
}

// ValidateResolvedPath checks a path after absolute resolution.
func ValidateResolvedPath(path string) error {
	if err := ValidateInputPath(path); err != nil {
		return err
	}
	if !strings.HasPrefix(path, "/") {
		return ErrNotAbsolute
	}
	if path != strings.TrimSpace(path) {
		return ErrTrailingSpace
	}
	return nil
}
