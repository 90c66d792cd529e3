// Package prompt asks the user questions on a text terminal.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/venvctl/pkg/domain"
)

// TextConfirmer implements ports.Confirmer over a line-oriented reader.
type TextConfirmer struct {
	Reader *bufio.Reader
	Writer io.Writer
}

// NewTextConfirmer creates a confirmer reading answers from r and writing prompts to w.
// Nil arguments default to os.Stdin and os.Stdout.
func NewTextConfirmer(r io.Reader, w io.Writer) *TextConfirmer {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	return &TextConfirmer{
		Reader: bufio.NewReader(r),
		Writer: w,
	}
}

type line struct {
	text string
	err  error
}

// Confirm writes the prompt and waits for one line of input.
// EOF counts as a negative answer. The read runs on its own goroutine so a
// cancelled context unblocks the caller even while the terminal is idle.
func (c *TextConfirmer) Confirm(ctx context.Context, prompt string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	fmt.Fprint(c.Writer, prompt)

	ch := make(chan line, 1)
	go func() {
		text, err := c.Reader.ReadString('\n')
		ch <- line{text: text, err: err}
	}()

	select {
	case <-ctx.Done():
		// Keep the prompt line from running into the next message.
		fmt.Fprintln(c.Writer)
		return false, ctx.Err()
	case l := <-ch:
		if l.err != nil && !errors.Is(l.err, io.EOF) {
			return false, fmt.Errorf("read confirmation: %w", l.err)
		}
		if errors.Is(l.err, io.EOF) && l.text == "" {
			fmt.Fprintln(c.Writer)
		}
		return domain.IsAffirmative(l.text), nil
	}
}
