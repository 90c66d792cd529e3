package venvctl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"math"
	"os"
	"path/filepath"

	"github.com/aretw0/venvctl/pkg/adapters/process"
	"github.com/aretw0/venvctl/pkg/adapters/prompt"
	"github.com/aretw0/venvctl/pkg/domain"
	"github.com/aretw0/venvctl/pkg/ports"
)

// Version is the release of the venvctl library and CLI.
const Version = "0.1.0"

// DefaultInterpreter is the executable asked to create environments.
const DefaultInterpreter = "python3"

// Manager lists, creates and deletes virtual environments under one directory.
// It never prints; every outcome is returned to the caller.
type Manager struct {
	dir         string
	interpreter string
	venvArgs    []string
	layout      domain.Layout
	runner      ports.ProcessRunner
	confirmer   ports.Confirmer
	logger      *slog.Logger
	removeAll   func(string) error
}

// Option defines a functional option for configuring the Manager.
type Option func(*Manager)

// WithDir sets the working directory scanned and written by the manager (default ".").
func WithDir(dir string) Option {
	return func(m *Manager) {
		m.dir = dir
	}
}

// WithInterpreter sets the executable used to create environments (default "python3").
func WithInterpreter(name string) Option {
	return func(m *Manager) {
		m.interpreter = name
	}
}

// WithVenvArgs appends extra arguments after `-m venv <name>`, e.g. "--without-pip".
func WithVenvArgs(args ...string) Option {
	return func(m *Manager) {
		m.venvArgs = append(m.venvArgs, args...)
	}
}

// WithLayout overrides where the activation marker is expected.
func WithLayout(l domain.Layout) Option {
	return func(m *Manager) {
		m.layout = l
	}
}

// WithRunner injects the process runner used by Create.
func WithRunner(r ports.ProcessRunner) Option {
	return func(m *Manager) {
		m.runner = r
	}
}

// WithConfirmer injects the confirmation provider used by Delete.
func WithConfirmer(c ports.Confirmer) Option {
	return func(m *Manager) {
		m.confirmer = c
	}
}

// WithLogger sets a custom structured logger for the manager.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// New creates a Manager. Without options it works on the current directory,
// runs python3 through os/exec and asks for confirmation on stdin.
func New(opts ...Option) *Manager {
	m := &Manager{
		dir:         ".",
		interpreter: DefaultInterpreter,
		layout:      domain.DefaultLayout(),
		removeAll:   os.RemoveAll,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.logger == nil {
		m.logger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)}))
	}
	if m.runner == nil {
		m.runner = process.NewRunner(process.WithBaseDir(m.dir), process.WithLogger(m.logger))
	}
	if m.confirmer == nil {
		m.confirmer = prompt.NewTextConfirmer(os.Stdin, os.Stdout)
	}
	return m
}

// Dir returns the working directory of the manager.
func (m *Manager) Dir() string { return m.dir }

// Interpreter returns the executable used by Create.
func (m *Manager) Interpreter() string { return m.interpreter }

// Layout returns the activation marker layout.
func (m *Manager) Layout() domain.Layout { return m.layout }

// List returns the direct subdirectories of the working directory that hold
// an activation marker, sorted by name.
func (m *Manager) List(ctx context.Context) ([]domain.Environment, error) {
	entries, err := os.ReadDir(m.dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrScanFailed, err)
	}

	envs := []domain.Environment{}
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		env := domain.NewEnvironment(m.dir, entry.Name(), m.layout)
		// Stat follows symlinks, so a link to an environment is listed too.
		info, err := os.Stat(env.Path)
		if err != nil || !info.IsDir() {
			continue
		}
		if _, err := os.Stat(env.Activate); err != nil {
			m.logger.Debug("Skip Directory", "name", env.Name, "reason", "no activation script")
			continue
		}
		envs = append(envs, env)
	}

	m.logger.Debug("Scan Complete", "dir", m.dir, "found", len(envs))
	return envs, nil
}

// Create runs `<interpreter> -m venv <name>` in the working directory.
// A non-zero exit is returned as *domain.ProcessError.
func (m *Manager) Create(ctx context.Context, name string) (domain.Environment, error) {
	if name == "" {
		return domain.Environment{}, domain.ErrInvalidName
	}

	args := append([]string{"-m", "venv", name}, m.venvArgs...)
	m.logger.Debug("Create Environment", "name", name, "interpreter", m.interpreter)

	result, err := m.runner.Run(ctx, domain.Command{
		Name: m.interpreter,
		Args: args,
		Dir:  m.dir,
	})
	if err != nil {
		return domain.Environment{}, fmt.Errorf("create %s: %w", name, err)
	}
	if !result.Success() {
		return domain.Environment{}, &domain.ProcessError{
			Command:  m.interpreter,
			ExitCode: result.ExitCode,
			Stderr:   result.Stderr,
		}
	}

	return domain.NewEnvironment(m.dir, name, m.layout), nil
}

// Delete removes the named environment after the confirmer approves.
// It returns domain.ErrEnvironmentNotFound without prompting when nothing
// exists at that path (a dangling symlink included), and
// domain.ErrDeletionCancelled when the user declines. Symlinks are never
// followed for removal.
func (m *Manager) Delete(ctx context.Context, name string) error {
	if name == "" {
		return domain.ErrInvalidName
	}

	path := filepath.Join(m.dir, name)
	info, err := os.Lstat(path)
	if err == nil && info.Mode()&fs.ModeSymlink != 0 {
		// A link only exists if its target does.
		_, err = os.Stat(path)
	}
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%s: %w", name, domain.ErrEnvironmentNotFound)
		}
		return fmt.Errorf("%w: %v", domain.ErrRemoveFailed, err)
	}

	ok, err := m.confirmer.Confirm(ctx, DeletePrompt(name))
	if err != nil {
		return fmt.Errorf("confirm delete %s: %w", name, err)
	}
	if !ok {
		m.logger.Debug("Delete Declined", "name", name)
		return domain.ErrDeletionCancelled
	}

	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", domain.ErrRemoveFailed, path)
	}
	if err := m.removeAll(path); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrRemoveFailed, err)
	}

	m.logger.Debug("Delete Environment", "name", name, "path", path)
	return nil
}

// DeletePrompt is the question asked before an environment is removed.
func DeletePrompt(name string) string {
	return fmt.Sprintf("Are you sure you want to delete the virtual environment '%s'? (y/n): ", name)
}
