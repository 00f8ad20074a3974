// Package menu implements the two-option mode selector shown at startup.
package menu

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"jotdown/internal/ui"
)

// Choice is the mode picked from the selector.
type Choice int

const (
	ChoiceNote Choice = iota
	ChoiceChat
)

func (c Choice) String() string {
	switch c {
	case ChoiceNote:
		return "note"
	case ChoiceChat:
		return "chat"
	default:
		return fmt.Sprintf("choice(%d)", int(c))
	}
}

var labels = []string{"NOTE", "CHAT"}

// Select runs the selector and blocks until the user confirms a mode.
func Select(opts ...tea.ProgramOption) (Choice, error) {
	program := tea.NewProgram(newModel(), opts...)
	final, err := program.Run()
	if err != nil {
		return 0, fmt.Errorf("menu: %w", err)
	}
	m, ok := final.(model)
	if !ok {
		return 0, errors.New("menu: unexpected final model")
	}
	if !m.chosen {
		return 0, ui.ErrCanceled
	}
	return Choice(m.position), nil
}

type model struct {
	position int
	chosen   bool
}

func newModel() model {
	return model{}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyRight:
		m.position = cycle(m.position, 1)
	case tea.KeyLeft:
		m.position = cycle(m.position, -1)
	case tea.KeyEnter:
		m.chosen = true
		return m, tea.Quit
	}
	return m, nil
}

// cycle moves pos around the option ring. Go's % keeps the sign of the
// dividend, so stepping left from 0 needs normalizing to stay non-negative.
func cycle(pos, delta int) int {
	p := (pos + delta) % len(labels)
	if p < 0 {
		p += len(labels)
	}
	return p
}

func (m model) View() string {
	row := ""
	for i, label := range labels {
		if i > 0 {
			row += "  "
		}
		if i == m.position {
			row += selectedStyle.Render(label)
		} else {
			row += optionStyle.Render(label)
		}
	}
	return boxStyle.Render(row) + "\n"
}

var (
	boxStyle      = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	optionStyle   = lipgloss.NewStyle()
)
