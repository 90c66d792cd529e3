package domain

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitOK},
		{"cancelled by user", ErrDeletionCancelled, ExitOK},
		{"interrupted", fmt.Errorf("confirm: %w", context.Canceled), ExitInterrupted},
		{"invalid name", ErrInvalidName, ExitInvalidName},
		{"interpreter missing", fmt.Errorf("run python3: %w", ErrInterpreterNotFound), ExitInterpreter},
		{"process failure", &ProcessError{Command: "python3", ExitCode: 1}, ExitProcess},
		{"not found", ErrEnvironmentNotFound, ExitNotFound},
		{"remove failed", fmt.Errorf("%w: permission denied", ErrRemoveFailed), ExitFilesystem},
		{"scan failed", ErrScanFailed, ExitFilesystem},
		{"unexpected", errors.New("boom"), ExitUnexpected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}

func TestProcessError(t *testing.T) {
	err := &ProcessError{Command: "python3", ExitCode: 2, Stderr: "boom"}

	assert.ErrorIs(t, err, ErrProcessFailed)
	assert.Equal(t, "python3 exited with status 2", err.Error())

	var pe *ProcessError
	wrapped := fmt.Errorf("create env: %w", err)
	if assert.ErrorAs(t, wrapped, &pe) {
		assert.Equal(t, "boom", pe.Stderr)
	}
}
