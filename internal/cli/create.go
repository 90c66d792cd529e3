package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/aretw0/venvctl/pkg/domain"
)

// Create makes a new environment and reports the outcome.
func (s *Session) Create(ctx context.Context, name string) error {
	s.printf("Creating virtual environment '%s'...\n", name)

	_, err := s.manager.Create(ctx, name)

	var pe *domain.ProcessError
	switch {
	case err == nil:
		s.printf("Successfully created virtual environment '%s'.\n", name)
		s.printf("To activate, run: '%s'\n", s.layout.Hint(name))
	case errors.Is(err, domain.ErrInterpreterNotFound):
		s.printf("%s '%s' command not found. Make sure Python 3 is installed and in your PATH.\n", s.theme.Error("Error:"), s.python)
	case errors.As(err, &pe):
		s.printf("%s %s\n", s.theme.Error("Error creating environment:"), strings.TrimRight(pe.Stderr, "\r\n"))
		s.printf("Failed to create '%s'. Please check for existing directories with the same name.\n", name)
	case errors.Is(err, domain.ErrInvalidName):
		s.printf("%s environment name must not be empty.\n", s.theme.Error("Error:"))
	case errors.Is(err, context.Canceled):
		s.printf("%s creation of '%s' was interrupted.\n", s.theme.Warn("Interrupted:"), name)
	default:
		s.printf("%s %v\n", s.theme.Error("An unexpected error occurred:"), err)
	}

	return s.finish("create", err)
}
