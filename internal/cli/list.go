package cli

import (
	"context"

	"github.com/aretw0/venvctl/internal/presentation/tui"
	"github.com/goccy/go-json"
)

// List prints the environments found in the working directory.
func (s *Session) List(ctx context.Context, jsonMode bool) error {
	envs, err := s.manager.List(ctx)

	if jsonMode {
		if err != nil {
			s.printf("%s %v\n", s.theme.Error("Error:"), err)
			return s.finish("list", err)
		}
		enc := json.NewEncoder(s.out)
		enc.SetIndent("", "  ")
		return s.finish("list", enc.Encode(envs))
	}

	s.println("Listing virtual environments in the current directory:")
	if err != nil {
		s.printf("%s %v\n", s.theme.Error("Error:"), err)
		return s.finish("list", err)
	}

	for _, env := range envs {
		s.printf("%s %s\n", s.theme.OK(tui.MarkOK), s.theme.Name(env.Name))
	}
	if len(envs) == 0 {
		s.println("No virtual environments found.")
	}
	s.printf("\nTo activate an environment, use: '%s'\n", s.layout.Hint("<env_name>"))
	return nil
}
