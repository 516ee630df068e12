package tui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/vvka-141/fsnav/internal/tui/components"
)

// LineReader reads one line of user input after showing a prompt.
// io.EOF reports the end of input.
type LineReader interface {
	ReadLine(prompt string) (string, error)
}

// PlainLineReader reads newline-terminated lines, for piped input and
// terminals where the line editor is disabled.
type PlainLineReader struct {
	mu     sync.Mutex
	reader *bufio.Reader
	out    io.Writer
}

// NewPlainLineReader creates a reader that writes prompts to out.
func NewPlainLineReader(in io.Reader, out io.Writer) *PlainLineReader {
	return &PlainLineReader{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// ReadLine implements LineReader.
// A final line without a newline is returned before io.EOF.
func (r *PlainLineReader) ReadLine(prompt string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	fmt.Fprint(r.out, prompt)

	line, err := r.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// InteractiveLineReader reads lines through a bubbletea line editor with
// history and tab completion.
type InteractiveLineReader struct {
	mu        sync.Mutex
	in        io.Reader
	out       io.Writer
	keys      components.LineInputKeys
	completer components.Completer
	history   []string
}

// NewInteractiveLineReader creates a line editor reader.
// completer may be nil to disable completion.
func NewInteractiveLineReader(in io.Reader, out io.Writer, completer components.Completer) *InteractiveLineReader {
	return &InteractiveLineReader{
		in:        in,
		out:       out,
		keys:      DefaultLineKeys(),
		completer: completer,
	}
}

// ReadLine implements LineReader.
// Ctrl+C discards the line and yields an empty one; Ctrl+D on an empty line yields io.EOF.
func (r *InteractiveLineReader) ReadLine(prompt string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	model := components.NewLineInput(prompt, r.keys).
		WithPromptStyle(PromptStyle).
		WithHistory(r.history)
	if r.completer != nil {
		r.completer.Reset()
		model = model.WithCompleter(r.completer)
	}

	program := tea.NewProgram(model, tea.WithInput(r.in), tea.WithOutput(r.out))
	final, err := program.Run()
	if err != nil {
		return "", fmt.Errorf("line editor failed: %w", err)
	}

	result, ok := final.(components.LineInput)
	if !ok {
		return "", fmt.Errorf("line editor returned unexpected model %T", final)
	}

	line, err := result.Result()
	if errors.Is(err, components.ErrCanceled) {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(line) != "" {
		r.history = append(r.history, line)
	}
	return line, nil
}

var (
	_ LineReader = (*PlainLineReader)(nil)
	_ LineReader = (*InteractiveLineReader)(nil)
)
