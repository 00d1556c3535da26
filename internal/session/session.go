// Package session runs the interactive task menu over a line-oriented reader
package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/thenoetrevino/tarefas/internal/cli/styles"
	"github.com/thenoetrevino/tarefas/internal/render"
	taskservice "github.com/thenoetrevino/tarefas/internal/services/task"
)

const menu = `1 - Create task
2 - List tasks
3 - Edit task
4 - Complete task
5 - Delete task
6 - Summary / kanban
7 - Search tasks
8 - Show task
0 - Quit`

// Session is one interactive run of the menu
type Session struct {
	svc taskservice.Service
	in  *bufio.Scanner
	out io.Writer
	log *slog.Logger

	maxAttempts   int
	markdownStyle string
	width         int
}

// Option configures a Session
type Option func(*Session)

// WithMaxAttempts bounds re-prompting on invalid input; 0 means unbounded
func WithMaxAttempts(n int) Option {
	return func(s *Session) {
		if n >= 0 {
			s.maxAttempts = n
		}
	}
}

// WithMarkdownStyle selects the glamour style used by "Show task"
func WithMarkdownStyle(style string) Option {
	return func(s *Session) {
		s.markdownStyle = style
	}
}

// WithWidth sets the word-wrap width for task details
func WithWidth(width int) Option {
	return func(s *Session) {
		if width > 0 {
			s.width = width
		}
	}
}

// WithLogger sets the logger used for storage failures
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		s.log = logger
	}
}

// New creates a session reading answers from in and writing to out
func New(svc taskservice.Service, in io.Reader, out io.Writer, opts ...Option) *Session {
	s := &Session{
		svc:           svc,
		in:            bufio.NewScanner(in),
		out:           out,
		log:           slog.Default(),
		markdownStyle: "auto",
		width:         render.DefaultWidth,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run shows the menu until the user quits or the input ends.
// Failed operations are reported and the menu is shown again.
func (s *Session) Run(ctx context.Context) error {
	actions := map[string]func(context.Context) error{
		"1": s.create,
		"2": s.list,
		"3": s.edit,
		"4": s.complete,
		"5": s.remove,
		"6": s.summary,
		"7": s.search,
		"8": s.show,
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprintln(s.out)
		fmt.Fprintln(s.out, styles.Title("==== Task Manager ===="))
		fmt.Fprintln(s.out, menu)

		choice, err := s.readLine("Choose an option: ")
		if err != nil {
			return s.inputErr()
		}

		if choice == "0" {
			fmt.Fprintln(s.out, "Bye!")
			return nil
		}

		action, ok := actions[choice]
		if !ok {
			s.warn("Invalid option.")
			continue
		}

		if err := s.handle(action(ctx)); err != nil {
			if errors.Is(err, errInputClosed) {
				return s.inputErr()
			}
			return err
		}
	}
}

// inputErr is nil when the input simply ended
func (s *Session) inputErr() error {
	if err := s.in.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}

// handle reports the outcome of one operation. Only a closed input or a
// broken reader stops the session.
func (s *Session) handle(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, errInputClosed):
		return err
	case errors.Is(err, errTooManyAttempts):
		s.warn("Too many invalid attempts. Operation cancelled.")
		return nil
	case taskservice.IsValidation(err):
		s.fail(err.Error())
		return nil
	case errors.Is(err, context.Canceled):
		return err
	default:
		s.log.Error("session operation failed", "error", err)
		s.fail(err.Error())
		return nil
	}
}

func (s *Session) say(msg string) {
	fmt.Fprintln(s.out, msg)
}

func (s *Session) ok(msg string) {
	fmt.Fprintln(s.out, styles.Success(msg))
}

func (s *Session) warn(msg string) {
	fmt.Fprintln(s.out, styles.Warning(msg))
}

func (s *Session) fail(msg string) {
	fmt.Fprintln(s.out, styles.Error("Error: "+msg))
}
