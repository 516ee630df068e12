package components

import (
	"errors"
	"io"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrCanceled is returned by LineInput.Result when the user abandoned the line.
var ErrCanceled = errors.New("input canceled")

// LineInputKeys are the bindings a LineInput reacts to.
type LineInputKeys struct {
	Submit      key.Binding
	Complete    key.Binding
	Cancel      key.Binding
	EndOfInput  key.Binding
	HistoryPrev key.Binding
	HistoryNext key.Binding
}

// LineInput is a single-line editor with a prompt, history and tab completion.
// It runs as its own bubbletea program for every line read.
type LineInput struct {
	prompt     string
	input      textinput.Model
	keys       LineInputKeys
	completer  Completer
	history    []string
	historyPos int
	draft      string

	submitted bool
	canceled  bool
	eof       bool

	promptStyle lipgloss.Style
}

// NewLineInput creates a focused line editor.
func NewLineInput(prompt string, keys LineInputKeys) LineInput {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 4096
	ti.Focus()

	return LineInput{
		prompt:      prompt,
		input:       ti,
		keys:        keys,
		promptStyle: lipgloss.NewStyle(),
	}
}

// WithCompleter enables Tab completion.
func (l LineInput) WithCompleter(c Completer) LineInput {
	l.completer = c
	return l
}

// WithHistory makes earlier lines reachable with the history keys.
func (l LineInput) WithHistory(history []string) LineInput {
	l.history = history
	l.historyPos = len(history)
	return l
}

// WithPromptStyle sets how the prompt is rendered while editing.
func (l LineInput) WithPromptStyle(style lipgloss.Style) LineInput {
	l.promptStyle = style
	return l
}

// WithValue sets the initial value.
func (l LineInput) WithValue(value string) LineInput {
	l.input.SetValue(value)
	l.input.CursorEnd()
	return l
}

// Init implements tea.Model.
func (l LineInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (l LineInput) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		l.input, cmd = l.input.Update(msg)
		return l, cmd
	}

	switch {
	case key.Matches(keyMsg, l.keys.Submit):
		l.submitted = true
		return l, tea.Quit

	case key.Matches(keyMsg, l.keys.Cancel):
		l.canceled = true
		return l, tea.Quit

	case key.Matches(keyMsg, l.keys.EndOfInput):
		if l.input.Value() == "" {
			l.eof = true
			return l, tea.Quit
		}
		return l, nil

	case key.Matches(keyMsg, l.keys.Complete):
		if l.completer != nil {
			l.input.SetValue(l.completer.Complete(l.input.Value()))
			l.input.CursorEnd()
		}
		return l, nil

	case key.Matches(keyMsg, l.keys.HistoryPrev):
		l.recall(-1)
		return l, nil

	case key.Matches(keyMsg, l.keys.HistoryNext):
		l.recall(1)
		return l, nil
	}

	if l.completer != nil {
		l.completer.Reset()
	}
	var cmd tea.Cmd
	l.input, cmd = l.input.Update(msg)
	return l, cmd
}

func (l *LineInput) recall(delta int) {
	if len(l.history) == 0 {
		return
	}
	if l.historyPos == len(l.history) {
		l.draft = l.input.Value()
	}

	pos := l.historyPos + delta
	if pos < 0 || pos > len(l.history) {
		return
	}
	l.historyPos = pos

	if pos == len(l.history) {
		l.input.SetValue(l.draft)
	} else {
		l.input.SetValue(l.history[pos])
	}
	l.input.CursorEnd()
}

// View implements tea.Model.
func (l LineInput) View() string {
	if l.done() {
		// Leave the finished line on screen
		return l.promptStyle.Render(l.prompt) + l.input.Value() + "\n"
	}
	return l.promptStyle.Render(l.prompt) + l.input.View()
}

func (l LineInput) done() bool {
	return l.submitted || l.canceled || l.eof
}

// Value returns the current value.
func (l LineInput) Value() string {
	return l.input.Value()
}

// Result reports how editing ended: the submitted line, io.EOF when the
// user ended input on an empty line, or ErrCanceled.
func (l LineInput) Result() (string, error) {
	switch {
	case l.eof:
		return "", io.EOF
	case l.canceled:
		return "", ErrCanceled
	}
	return l.input.Value(), nil
}
