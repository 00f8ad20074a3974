package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wrap"
)

const affirmNotice = "Target words reached! Exit by pressing ESC"

// View lays the screen out the way the classic editor did: a blank top
// row, the counter with the status message beside it, two spacer rows,
// then the text area.
func (m *model) View() string {
	rows := []string{
		"",
		m.statusRow(),
		"",
		"",
		m.textArea(),
	}
	if m.phase == phaseSaving {
		rows = append(rows, savingStyle.Render(m.spin.View()+" saving"))
	}
	return strings.Join(rows, "\n") + "\n"
}

func (m *model) statusRow() string {
	counter := fmt.Sprintf("%03d/%03d words", m.session.Words(), m.session.Target())
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		counterStyle.Render(counter),
		messageStyle.Render(m.message()),
	)
}

// message picks what the status pane shows this tick. The affirmative
// notice wins once the tally has passed the target; the decaying escape
// hint shows only while a confirmation is in progress; the starting hint
// disappears with the first keystroke.
func (m *model) message() string {
	s := m.session
	switch {
	case m.phase == phaseSaving:
		return ""
	case s.Exceeded():
		return affirmStyle.Render(affirmNotice)
	case s.Confirming():
		warn := warnStyle.Render(fmt.Sprintf("%d more words to write", s.Remaining()))
		hint := hintStyle.Render(fmt.Sprintf("Press ESC %d times to exit", s.EscapesLeft()))
		return warn + "\n" + hint
	case !s.Started():
		return hintStyle.Render(fmt.Sprintf("Press ESC %d times to exit", s.EscapesLeft()))
	default:
		return ""
	}
}

// textArea hard-wraps the echoed text at the pane width, the way a bare
// terminal region would, and keeps only the last rows once the pane fills.
func (m *model) textArea() string {
	area := wrap.String(m.session.Echo(), m.paneWidth())
	if m.phase == phaseTyping {
		area += m.caret.View()
	}
	lines := strings.Split(area, "\n")
	if len(lines) > m.cfg.Height {
		lines = lines[len(lines)-m.cfg.Height:]
	}
	return textStyle.Render(strings.Join(lines, "\n"))
}

func (m *model) paneWidth() int {
	w := m.cfg.Width
	if m.winWidth > 0 && m.winWidth-4 < w {
		w = m.winWidth - 4
	}
	if w < 1 {
		w = 1
	}
	return w
}

var (
	counterStyle = lipgloss.NewStyle().Width(20).MarginLeft(2)
	messageStyle = lipgloss.NewStyle().MarginLeft(3)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	affirmStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	hintStyle    = lipgloss.NewStyle().Faint(true)
	textStyle    = lipgloss.NewStyle().MarginLeft(2)
	savingStyle  = lipgloss.NewStyle().MarginLeft(2)
)
