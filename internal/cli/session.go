package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/venvctl"
	"github.com/aretw0/venvctl/internal/config"
	"github.com/aretw0/venvctl/internal/logging"
	"github.com/aretw0/venvctl/internal/presentation/tui"
	"github.com/aretw0/venvctl/pkg/adapters/process"
	"github.com/aretw0/venvctl/pkg/adapters/prompt"
	"github.com/aretw0/venvctl/pkg/domain"
	"github.com/aretw0/venvctl/pkg/ports"
)

// Session is one command-line invocation: a manager plus where to print.
// Its methods print every outcome and only return an error in strict mode.
type Session struct {
	manager *venvctl.Manager
	out     io.Writer
	theme   tui.Theme
	logger  *slog.Logger
	strict  bool
	layout  domain.Layout
	python  string
}

// SessionOption configures a Session.
type SessionOption func(*sessionSetup)

type sessionSetup struct {
	out       io.Writer
	in        io.Reader
	logger    *slog.Logger
	runner    ports.ProcessRunner
	confirmer ports.Confirmer
	theme     *tui.Theme
}

// WithOutput sets where messages are printed (default os.Stdout).
func WithOutput(w io.Writer) SessionOption {
	return func(s *sessionSetup) { s.out = w }
}

// WithInput sets where the delete confirmation is read from (default os.Stdin).
func WithInput(r io.Reader) SessionOption {
	return func(s *sessionSetup) { s.in = r }
}

// WithLogger overrides the logger derived from the config.
func WithLogger(logger *slog.Logger) SessionOption {
	return func(s *sessionSetup) { s.logger = logger }
}

// WithRunner overrides the os/exec process runner.
func WithRunner(r ports.ProcessRunner) SessionOption {
	return func(s *sessionSetup) { s.runner = r }
}

// WithConfirmer overrides the terminal confirmer.
func WithConfirmer(c ports.Confirmer) SessionOption {
	return func(s *sessionSetup) { s.confirmer = c }
}

// WithTheme overrides the terminal-detected theme.
func WithTheme(t tui.Theme) SessionOption {
	return func(s *sessionSetup) { s.theme = &t }
}

// NewSession wires a manager from cfg.
func NewSession(cfg config.Config, opts ...SessionOption) *Session {
	setup := sessionSetup{
		out: os.Stdout,
		in:  os.Stdin,
	}
	for _, opt := range opts {
		opt(&setup)
	}
	if setup.logger == nil {
		setup.logger = logging.ForDebug(cfg.Debug)
	}
	if setup.runner == nil {
		setup.runner = process.NewRunner(
			process.WithBaseDir(cfg.Dir),
			process.WithEnv(cfg.Env),
			process.WithLogger(setup.logger),
		)
	}
	if setup.confirmer == nil {
		setup.confirmer = prompt.NewTextConfirmer(setup.in, setup.out)
	}
	theme := tui.NewTheme(setup.out)
	if setup.theme != nil {
		theme = *setup.theme
	}

	m := venvctl.New(
		venvctl.WithDir(cfg.Dir),
		venvctl.WithInterpreter(cfg.Python),
		venvctl.WithVenvArgs(cfg.VenvArgs...),
		venvctl.WithLayout(cfg.Layout),
		venvctl.WithRunner(setup.runner),
		venvctl.WithConfirmer(setup.confirmer),
		venvctl.WithLogger(setup.logger),
	)

	return &Session{
		manager: m,
		out:     setup.out,
		theme:   theme,
		logger:  setup.logger,
		strict:  cfg.StrictExit,
		layout:  cfg.Layout,
		python:  cfg.Python,
	}
}

func (s *Session) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

func (s *Session) println(args ...any) {
	fmt.Fprintln(s.out, args...)
}

// finish swallows err unless strict exit codes were requested.
func (s *Session) finish(op string, err error) error {
	if err == nil {
		return nil
	}
	s.logger.Debug("Operation Failed", "op", op, "error", err)
	if !s.strict {
		return nil
	}
	code := domain.ExitCode(err)
	if code == domain.ExitOK {
		return nil
	}
	return &ExitError{Code: code, Err: err}
}
