package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/aretw0/venvctl/pkg/domain"
)

// Delete removes an environment after asking for confirmation.
func (s *Session) Delete(ctx context.Context, name string) error {
	err := s.manager.Delete(ctx, name)

	switch {
	case err == nil:
		s.printf("Successfully deleted virtual environment '%s'.\n", name)
	case errors.Is(err, domain.ErrEnvironmentNotFound):
		s.printf("%s Virtual environment '%s' does not exist.\n", s.theme.Error("Error:"), name)
	case errors.Is(err, domain.ErrDeletionCancelled), errors.Is(err, context.Canceled):
		s.println(s.theme.Warn("Deletion cancelled."))
	case errors.Is(err, domain.ErrRemoveFailed):
		s.printf("%s Failed to delete directory '%s': %s\n", s.theme.Error("Error:"), name, removeReason(err))
	case errors.Is(err, domain.ErrInvalidName):
		s.printf("%s environment name must not be empty.\n", s.theme.Error("Error:"))
	default:
		s.printf("%s %v\n", s.theme.Error("An unexpected error occurred:"), err)
	}

	return s.finish("delete", err)
}

// removeReason strips the sentinel prefix so only the OS message is shown.
func removeReason(err error) string {
	return strings.TrimPrefix(err.Error(), domain.ErrRemoveFailed.Error()+": ")
}
