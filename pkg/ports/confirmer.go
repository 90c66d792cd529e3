package ports

import "context"

// Confirmer asks the user for permission to proceed.
type Confirmer interface {
	// Confirm presents the prompt and reports whether the answer was affirmative.
	// Returns ctx.Err() if the context ends while waiting for an answer.
	Confirm(ctx context.Context, prompt string) (bool, error)
}
