// Package session runs the plain line-oriented assistant loop: read a
// command line, dispatch it against the book, print the replies.
package session

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/smileynet/rolodex/internal/book"
	"github.com/smileynet/rolodex/internal/command"
)

// DefaultPrompt is printed before each command read.
const DefaultPrompt = "Enter a command: "

// Session owns the command loop state: one book, one registry, one
// input/output pair. Commands run to completion one at a time.
type Session struct {
	book   *book.Book
	reg    *command.Registry
	in     io.Reader
	out    io.Writer
	prompt string
	banner string
}

// Option configures a Session.
type Option func(*Session)

// WithPrompt overrides the command prompt text.
func WithPrompt(prompt string) Option {
	return func(s *Session) { s.prompt = prompt }
}

// WithBanner sets the welcome banner printed before the first prompt.
func WithBanner(banner string) Option {
	return func(s *Session) { s.banner = banner }
}

// New creates a Session reading commands from in and writing replies to out.
func New(bk *book.Book, reg *command.Registry, in io.Reader, out io.Writer, opts ...Option) *Session {
	s := &Session{
		book:   bk,
		reg:    reg,
		in:     in,
		out:    out,
		prompt: DefaultPrompt,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run executes the command loop until close/exit, end of input, or context
// cancellation. Blank lines are skipped; the first token selects the
// command case-insensitively and the rest become positional arguments.
func (s *Session) Run(ctx context.Context) error {
	if s.banner != "" {
		_, _ = fmt.Fprintln(s.out, s.banner)
	}

	sc := bufio.NewScanner(s.in)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		_, _ = fmt.Fprint(s.out, s.prompt)
		if !sc.Scan() {
			break
		}

		tokens := strings.Fields(sc.Text())
		if len(tokens) == 0 {
			continue
		}

		name := strings.ToLower(tokens[0])
		if name == "close" || name == "exit" {
			_, _ = fmt.Fprintln(s.out, command.ReplyGoodbye)
			return nil
		}

		for _, line := range s.reg.Dispatch(name, tokens[1:], s.book) {
			_, _ = fmt.Fprintln(s.out, line)
		}
	}
	return sc.Err()
}
