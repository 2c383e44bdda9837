package cmd

import (
	"errors"
	"fmt"

	"prae/pkg/core"
)

// Exit codes
const (
	ExitFailure   = 1 // usage errors, walk and decode failures
	ExitArchiveIO = 2 // the archive file itself could not be read or written
)

// ExitError signals a non-zero exit code without forcing os.Exit in RunE handlers.
type ExitError struct {
	Code int
	Err  error
}

// Error returns the error message for ExitError.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// Unwrap returns the underlying error, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// exitError attaches the exit code matching err
func exitError(err error) error {
	if err == nil {
		return nil
	}
	var ioErr *core.ArchiveIOError
	if errors.As(err, &ioErr) {
		return &ExitError{Code: ExitArchiveIO, Err: err}
	}
	return &ExitError{Code: ExitFailure, Err: err}
}
