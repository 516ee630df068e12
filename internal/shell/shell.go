package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-shellwords"
	"github.com/vvka-141/fsnav/internal/services"
	"github.com/vvka-141/fsnav/pkg/fsnav"
)

// DefaultMaxReadFailures is how many consecutive read errors end the loop.
const DefaultMaxReadFailures = 3

// LineReader reads one line of user input after showing a prompt.
// io.EOF ends the session.
type LineReader interface {
	ReadLine(prompt string) (string, error)
}

// Option customizes a Shell.
type Option func(*Shell)

// WithPromptWidth sets the longest working directory shown verbatim in the prompt.
func WithPromptWidth(width int) Option {
	return func(s *Shell) {
		s.promptWidth = width
	}
}

// WithMaxReadFailures sets how many consecutive read errors end the loop.
func WithMaxReadFailures(n int) Option {
	return func(s *Shell) {
		if n > 0 {
			s.maxReadFailures = n
		}
	}
}

// Shell is the interactive command loop.
// Command output goes to out; errors, warnings and help go to errOut.
// Thread-Safety: NOT safe for concurrent use; one command runs at a time.
type Shell struct {
	session  *services.Session
	explorer *services.Explorer
	manager  *services.Manager
	reader   LineReader
	out      io.Writer
	errOut   io.Writer
	logger   fsnav.Logger

	promptWidth     int
	maxReadFailures int
}

// New creates a Shell.
// Panics if any dependency is nil.
func New(
	session *services.Session,
	explorer *services.Explorer,
	manager *services.Manager,
	reader LineReader,
	out, errOut io.Writer,
	logger fsnav.Logger,
	opts ...Option,
) *Shell {
	if session == nil {
		panic("session cannot be nil")
	}
	if explorer == nil {
		panic("explorer cannot be nil")
	}
	if manager == nil {
		panic("manager cannot be nil")
	}
	if reader == nil {
		panic("reader cannot be nil")
	}
	if out == nil || errOut == nil {
		panic("writers cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}

	s := &Shell{
		session:         session,
		explorer:        explorer,
		manager:         manager,
		reader:          reader,
		out:             out,
		errOut:          errOut,
		logger:          logger,
		promptWidth:     fsnav.DefaultPromptMaxWidth,
		maxReadFailures: DefaultMaxReadFailures,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run reads and executes commands until exit, end of input, ctx
// cancellation or too many consecutive read failures.
// Only the last case and cancellation return an error.
func (s *Shell) Run(ctx context.Context) error {
	s.logger.Verbose("Shell session %s started in %s", s.session.ID(), s.session.Cwd())

	failures := 0
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, err := s.reader.ReadLine(RenderPrompt(s.session.Cwd(), s.promptWidth))
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(s.out)
				s.logger.Verbose("Shell session %s reached end of input", s.session.ID())
				return nil
			}

			failures++
			fmt.Fprintf(s.errOut, "Error: Failed to read input: %v\n", err)
			if failures >= s.maxReadFailures {
				return fmt.Errorf("giving up after %d consecutive read failures: %w", failures, err)
			}
			continue
		}
		failures = 0

		if strings.TrimSpace(line) == "" {
			continue
		}

		if s.Execute(ctx, line) {
			return nil
		}
		fmt.Fprintln(s.out)
	}
}

// Execute runs a single command line and reports whether the shell should exit.
// Failures are printed, never returned.
func (s *Shell) Execute(ctx context.Context, line string) (exit bool) {
	tokens, err := tokenize(line)
	if err != nil {
		fmt.Fprintf(s.errOut, "Error: %s\n", describe(err))
		return false
	}
	if len(tokens) == 0 {
		return false
	}

	command, args := tokens[0], tokens[1:]
	s.logger.Verbose("Session %s executing %q with %d argument(s)", s.session.ID(), command, len(args))

	switch command {
	case "exit", "quit":
		fmt.Fprintln(s.out, "Goodbye!")
		return true
	case "help":
		fmt.Fprint(s.errOut, HelpText)
		return false
	}

	if err := s.dispatch(ctx, command, args); err != nil {
		fmt.Fprintf(s.errOut, "Error: %s\n", describe(err))
	}
	return false
}

func (s *Shell) dispatch(ctx context.Context, command string, args []string) error {
	arg := strings.Join(args, " ")

	switch command {
	case "cd":
		dir, err := s.session.ChangeDirectory(arg)
		if err != nil {
			return err
		}
		fmt.Fprintf(s.out, "Changed directory to: %s\n", dir)

	case "pwd":
		fmt.Fprintln(s.out, s.session.Cwd())

	case "display":
		if arg == "" {
			return usageError("display command requires a <directory> argument")
		}
		_, err := s.explorer.Display(arg)
		return err

	case "search":
		if arg == "" {
			return usageError("search command requires a <directory> argument")
		}
		term, err := s.reader.ReadLine("Enter search term: ")
		if err != nil {
			return fmt.Errorf("failed to read search term: %w", err)
		}
		_, err = s.explorer.Search(arg, strings.TrimRight(term, "\r"))
		return err

	case "mkdir", "touch":
		if arg == "" {
			return usageError(fmt.Sprintf("%s command requires a <path> argument", command))
		}
		path, err := s.manager.Create(arg, command == "mkdir")
		if err != nil {
			return err
		}
		if command == "mkdir" {
			fmt.Fprintf(s.out, "Created directory: %s\n", path)
		} else {
			fmt.Fprintf(s.out, "Created file: %s\n", path)
		}

	case "rm":
		if arg == "" {
			return usageError("rm command requires a <path> argument")
		}
		result, err := s.manager.Delete(ctx, arg)
		if err != nil {
			return err
		}
		if result.IsDir {
			fmt.Fprintf(s.out, "Deleted directory and %d contained items: %s\n", result.ContainedItems, result.Path)
		} else {
			fmt.Fprintf(s.out, "Deleted file: %s\n", result.Path)
		}

	case "mv":
		if len(args) < 2 {
			return usageError("mv command requires two arguments: <old_path> <new_path>")
		}
		result, err := s.manager.Rename(ctx, args[0], strings.Join(args[1:], " "))
		if err != nil {
			return err
		}
		fmt.Fprintf(s.out, "Renamed '%s' to '%s'\n", result.From, result.To)

	default:
		fmt.Fprint(s.errOut, HelpText)
	}
	return nil
}

// tokenize splits a command line with shell quoting rules.
// Environment variables and backticks are left alone.
func tokenize(line string) ([]string, error) {
	parser := shellwords.NewParser()
	parser.ParseEnv = false
	parser.ParseBacktick = false

	tokens, err := parser.Parse(line)
	if err != nil {
		return nil, usageError(fmt.Sprintf("Invalid command line: %v", err))
	}
	// The parser stops at an unquoted ; & | < or >
	if parser.Position >= 0 {
		return nil, usageError("Invalid command line: quote paths containing ';', '&', '|', '<' or '>'")
	}
	return tokens, nil
}
