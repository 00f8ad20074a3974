package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"jotdown/internal/ui"
)

// Opener adapts the full-screen editor to the shared input capability so
// callers can hold it and the line prompt behind the same interface.
type Opener struct {
	Config  Config
	Options []tea.ProgramOption
}

// Input runs one editing session and surfaces its result as an entry.
func (o Opener) Input() (ui.Entry, error) {
	res, err := Run(o.Config, o.Options...)
	if err != nil {
		return ui.Entry{}, err
	}
	return ui.Entry{Content: res.Content, Words: res.Words}, nil
}
