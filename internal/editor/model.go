package editor

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"jotdown/internal/ui"
)

// Text area defaults, in terminal cells.
const (
	DefaultWidth  = 100
	DefaultHeight = 15
)

// savingRounds is how many full passes of the spinner cycle play once a
// session ends, before the editor hands the result back.
const savingRounds = 2

// savingFrames is the fixed glyph cycle of the saving animation.
var savingFrames = []string{"⣾", "⣷", "⣯", "⣟", "⡿", "⢿", "⣻", "⣽"}

// Config shapes one editor run.
type Config struct {
	TargetWords int
	Width       int
	Height      int
}

// Run opens the editor and blocks until the session ends, the saving
// animation has played, and the program has restored the terminal.
func Run(cfg Config, opts ...tea.ProgramOption) (Result, error) {
	program := tea.NewProgram(newModel(cfg), opts...)
	final, err := program.Run()
	if err != nil {
		return Result{}, fmt.Errorf("editor: %w", err)
	}
	m, ok := final.(*model)
	if !ok {
		return Result{}, errors.New("editor: unexpected final model")
	}
	if m.canceled {
		return Result{}, ui.ErrCanceled
	}
	return m.session.Result(), nil
}

type phase int

const (
	phaseTyping phase = iota
	phaseSaving
)

type model struct {
	session  *Session
	cfg      Config
	caret    cursor.Model
	spin     spinner.Model
	phase    phase
	ticks    int
	winWidth int
	canceled bool
}

func newModel(cfg Config) *model {
	if cfg.TargetWords <= 0 {
		cfg.TargetWords = DefaultTargetWords
	}
	if cfg.Width <= 0 {
		cfg.Width = DefaultWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = DefaultHeight
	}

	caret := cursor.New()
	caret.SetChar(" ")
	caret.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Spinner{Frames: savingFrames, FPS: time.Second / 10}

	return &model{
		session: NewSession(cfg.TargetWords),
		cfg:     cfg,
		caret:   caret,
		spin:    spin,
	}
}

func (m *model) Init() tea.Cmd {
	return cursor.Blink
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.winWidth = msg.Width
		return m, nil
	case spinner.TickMsg:
		if m.phase != phaseSaving {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		m.ticks++
		// The first tick arrives immediately and only bootstraps the
		// cycle; the animation shows rounds*8 frames for one interval
		// each before the program quits.
		if m.ticks > savingRounds*len(savingFrames) {
			return m, tea.Quit
		}
		return m, cmd
	}

	var cmd tea.Cmd
	m.caret, cmd = m.caret.Update(msg)
	return m, cmd
}

func (m *model) handleKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Type == tea.KeyCtrlC {
		m.canceled = true
		return m, tea.Quit
	}
	if m.phase == phaseSaving {
		return m, nil
	}

	codes, ok := decodeKey(key)
	if !ok {
		m.session.FeedOther()
		return m, nil
	}
	for _, k := range codes {
		if m.session.Feed(k) {
			return m.beginSaving()
		}
	}
	return m, nil
}

// beginSaving switches to the spinner phase; the saving animation always
// plays to the end of its fixed cycle before the program quits.
func (m *model) beginSaving() (tea.Model, tea.Cmd) {
	m.phase = phaseSaving
	m.caret.Blur()
	return m, m.spin.Tick
}
