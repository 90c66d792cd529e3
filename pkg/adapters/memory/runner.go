package memory

import (
	"context"
	"sync"

	"github.com/aretw0/venvctl/pkg/domain"
)

// RunFunc produces the outcome of a fake process run.
type RunFunc func(ctx context.Context, cmd domain.Command) (domain.ProcessResult, error)

// Runner implements ports.ProcessRunner without spawning processes.
// It records every command it receives. Safe for concurrent use.
type Runner struct {
	fn    RunFunc
	calls []domain.Command
	mu    sync.Mutex
}

// NewRunner creates a fake runner that delegates to fn.
// A nil fn makes every run succeed with empty output.
func NewRunner(fn RunFunc) *Runner {
	if fn == nil {
		fn = func(context.Context, domain.Command) (domain.ProcessResult, error) {
			return domain.ProcessResult{}, nil
		}
	}
	return &Runner{fn: fn}
}

// Run records the command and returns the scripted outcome.
func (r *Runner) Run(ctx context.Context, cmd domain.Command) (domain.ProcessResult, error) {
	r.mu.Lock()
	r.calls = append(r.calls, domain.Command{
		Name: cmd.Name,
		Args: append([]string(nil), cmd.Args...),
		Dir:  cmd.Dir,
	})
	r.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return domain.ProcessResult{}, err
	}
	return r.fn(ctx, cmd)
}

// Calls returns a copy of the recorded commands.
func (r *Runner) Calls() []domain.Command {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.Command, len(r.calls))
	copy(out, r.calls)
	return out
}
