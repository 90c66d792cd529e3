package process

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os/exec"
	"strings"

	"github.com/aretw0/venvctl/pkg/domain"
)

// Runner implements ports.ProcessRunner on top of os/exec.
type Runner struct {
	baseDir string
	env     []string
	logger  *slog.Logger
}

// RunnerOption configures the runner.
type RunnerOption func(*Runner)

// WithBaseDir sets the working directory used when a Command has no Dir.
func WithBaseDir(dir string) RunnerOption {
	return func(r *Runner) {
		r.baseDir = dir
	}
}

// WithEnv appends KEY=VALUE pairs to the inherited environment of every process.
func WithEnv(env map[string]string) RunnerOption {
	return func(r *Runner) {
		for k, v := range env {
			r.env = append(r.env, fmt.Sprintf("%s=%s", k, v))
		}
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) RunnerOption {
	return func(r *Runner) {
		r.logger = logger
	}
}

// NewRunner creates a new Process Runner.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{
		logger: slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)})),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes the command and captures stdout and stderr.
func (r *Runner) Run(ctx context.Context, c domain.Command) (domain.ProcessResult, error) {
	// Resolve first so a missing executable is distinguishable from a failing one.
	path, err := exec.LookPath(c.Name)
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) || errors.Is(err, exec.ErrDot) {
			return domain.ProcessResult{}, fmt.Errorf("%s: %w", c.Name, domain.ErrInterpreterNotFound)
		}
		return domain.ProcessResult{}, fmt.Errorf("resolve %s: %w", c.Name, err)
	}

	cmd := exec.CommandContext(ctx, path, c.Args...)
	cmd.Dir = c.Dir
	if cmd.Dir == "" {
		cmd.Dir = r.baseDir
	}
	if len(r.env) > 0 {
		cmd.Env = append(cmd.Environ(), r.env...)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	r.logger.Debug("Process Start", "command", c.Name, "args", strings.Join(c.Args, " "), "dir", cmd.Dir)

	err = cmd.Run()

	result := domain.ProcessResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return result, fmt.Errorf("run %s: %w", c.Name, ctxErr)
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			r.logger.Debug("Process Exit", "command", c.Name, "code", result.ExitCode)
			return result, nil
		}
		return result, fmt.Errorf("run %s: %w", c.Name, err)
	}

	r.logger.Debug("Process Exit", "command", c.Name, "code", 0)
	return result, nil
}
