package ports

import (
	"context"

	"github.com/aretw0/venvctl/pkg/domain"
)

// ProcessRunner executes external commands on behalf of the manager.
type ProcessRunner interface {
	// Run executes the command and waits for it to finish.
	// A non-zero exit status is reported through ProcessResult.ExitCode, not as an error.
	// Returns domain.ErrInterpreterNotFound if the executable is not on the search path.
	Run(ctx context.Context, cmd domain.Command) (domain.ProcessResult, error)
}
