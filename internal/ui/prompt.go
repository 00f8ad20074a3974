package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// emptyAllowance is how many empty submissions a single Input call accepts
// before it gives up and returns ExitInput.
const emptyAllowance = 2

// Prompt reads one line at a time with a styled placeholder. It implements
// Input; each call runs its own inline program so streamed output above it
// stays in the scrollback.
type Prompt struct {
	placeholder string
	opts        []tea.ProgramOption
}

// PromptOption customizes a Prompt.
type PromptOption func(*Prompt)

// WithPlaceholder replaces the default placeholder text.
func WithPlaceholder(text string) PromptOption {
	return func(p *Prompt) { p.placeholder = text }
}

// WithProgramOptions forwards options to the underlying program, mainly so
// tests can redirect input and output.
func WithProgramOptions(opts ...tea.ProgramOption) PromptOption {
	return func(p *Prompt) { p.opts = append(p.opts, opts...) }
}

// NewPrompt returns a line prompt ready for Input calls.
func NewPrompt(opts ...PromptOption) *Prompt {
	p := &Prompt{placeholder: "Type here"}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Input blocks until the user submits a non-empty line. Two consecutive
// empty submissions end the exchange with the ExitInput sentinel instead.
func (p *Prompt) Input() (Entry, error) {
	program := tea.NewProgram(newPromptModel(p.placeholder), p.opts...)
	final, err := program.Run()
	if err != nil {
		return Entry{}, fmt.Errorf("prompt: %w", err)
	}
	m, ok := final.(promptModel)
	if !ok {
		return Entry{}, errors.New("prompt: unexpected final model")
	}
	if m.canceled {
		return Entry{}, ErrCanceled
	}
	return entryFromLine(m.value), nil
}

func entryFromLine(line string) Entry {
	return Entry{Content: line, Words: len(strings.Fields(line))}
}

type promptModel struct {
	input    textinput.Model
	patience int
	value    string
	done     bool
	canceled bool
}

func newPromptModel(placeholder string) promptModel {
	ti := textinput.New()
	ti.Prompt = ">> "
	ti.Placeholder = placeholder
	ti.Focus()
	ti.CharLimit = 280
	ti.Width = 60
	ti.PromptStyle = promptMarkerStyle
	ti.TextStyle = typedStyle
	ti.PlaceholderStyle = placeholderStyle

	return promptModel{input: ti, patience: emptyAllowance}
}

func (m promptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC:
			m.canceled = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m promptModel) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	if line == "" {
		m.patience--
		if m.patience <= 0 {
			m.value = ExitInput
			m.done = true
			return m, tea.Quit
		}
		return m, nil
	}
	m.value = line
	m.done = true
	return m, tea.Quit
}

func (m promptModel) View() string {
	return m.input.View() + "\n"
}

var (
	promptMarkerStyle = lipgloss.NewStyle().Bold(true)
	typedStyle        = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffffff"))
	placeholderStyle  = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("#888888"))
)
