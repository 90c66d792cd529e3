package memory

import (
	"context"
	"sync"

	"github.com/aretw0/venvctl/pkg/domain"
)

// Confirmer implements ports.Confirmer with scripted answers.
// Answers are consumed in order; once exhausted every prompt is declined.
type Confirmer struct {
	answers []string
	prompts []string
	mu      sync.Mutex
}

// NewConfirmer creates a confirmer that replies with the given answers.
func NewConfirmer(answers ...string) *Confirmer {
	return &Confirmer{answers: answers}
}

// Confirm records the prompt and replies with the next scripted answer.
func (c *Confirmer) Confirm(ctx context.Context, prompt string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.prompts = append(c.prompts, prompt)
	if len(c.answers) == 0 {
		return false, nil
	}
	answer := c.answers[0]
	c.answers = c.answers[1:]
	return domain.IsAffirmative(answer), nil
}

// Prompts returns the prompts shown so far.
func (c *Confirmer) Prompts() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.prompts...)
}
