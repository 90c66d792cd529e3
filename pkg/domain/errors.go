package domain

import (
	"context"
	"errors"
	"fmt"
)

// ErrInvalidName is returned when an environment name is empty.
var ErrInvalidName = errors.New("invalid environment name")

// ErrInterpreterNotFound is returned when the interpreter executable is not on the search path.
var ErrInterpreterNotFound = errors.New("interpreter not found")

// ErrProcessFailed is returned when the interpreter exits with a non-zero status.
var ErrProcessFailed = errors.New("process failed")

// ErrEnvironmentNotFound is returned when the named environment does not exist.
var ErrEnvironmentNotFound = errors.New("environment not found")

// ErrDeletionCancelled is returned when the user declines the delete confirmation.
var ErrDeletionCancelled = errors.New("deletion cancelled")

// ErrRemoveFailed is returned when the environment tree could not be removed.
var ErrRemoveFailed = errors.New("remove failed")

// ErrScanFailed is returned when the working directory could not be read.
var ErrScanFailed = errors.New("scan failed")

// ProcessError carries the outcome of a failed interpreter run.
type ProcessError struct {
	Command  string
	ExitCode int
	Stderr   string
}

func (e *ProcessError) Error() string {
	return fmt.Sprintf("%s exited with status %d", e.Command, e.ExitCode)
}

// Unwrap lets errors.Is match ErrProcessFailed.
func (e *ProcessError) Unwrap() error {
	return ErrProcessFailed
}

// Exit codes used when strict exit reporting is enabled.
const (
	ExitOK          = 0
	ExitUnexpected  = 1
	ExitInvalidName = 2
	ExitInterpreter = 3
	ExitProcess     = 4
	ExitNotFound    = 5
	ExitFilesystem  = 6
	ExitInterrupted = 130
)

// ExitCode maps an operation error to a process exit status.
// A declined confirmation is a user decision, not a failure.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrDeletionCancelled):
		return ExitOK
	case errors.Is(err, context.Canceled):
		return ExitInterrupted
	case errors.Is(err, ErrInvalidName):
		return ExitInvalidName
	case errors.Is(err, ErrInterpreterNotFound):
		return ExitInterpreter
	case errors.Is(err, ErrProcessFailed):
		return ExitProcess
	case errors.Is(err, ErrEnvironmentNotFound):
		return ExitNotFound
	case errors.Is(err, ErrRemoveFailed), errors.Is(err, ErrScanFailed):
		return ExitFilesystem
	default:
		return ExitUnexpected
	}
}
