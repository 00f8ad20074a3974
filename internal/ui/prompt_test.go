package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func press(t *testing.T, m promptModel, msg tea.Msg) (promptModel, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	next, ok := updated.(promptModel)
	if !ok {
		t.Fatalf("Update returned %T, want promptModel", updated)
	}
	return next, cmd
}

func typeLine(t *testing.T, m promptModel, line string) promptModel {
	t.Helper()
	next, _ := press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(line)})
	return next
}

func TestPromptReturnsTypedLine(t *testing.T) {
	t.Parallel()

	m := newPromptModel("Type here")
	m = typeLine(t, m, "dear diary")
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if !m.done {
		t.Fatalf("expected prompt to finish after a non-empty submit")
	}
	if m.value != "dear diary" {
		t.Fatalf("value = %q, want %q", m.value, "dear diary")
	}
	assertQuit(t, cmd)
}

func TestPromptGivesUpAfterTwoEmptySubmissions(t *testing.T) {
	t.Parallel()

	m := newPromptModel("Type here")

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.done {
		t.Fatalf("prompt finished after a single empty submit")
	}
	if cmd != nil {
		t.Fatalf("expected no command after the first empty submit")
	}

	m, cmd = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.done {
		t.Fatalf("expected prompt to give up after two empty submits")
	}
	if m.value != ExitInput {
		t.Fatalf("value = %q, want %q", m.value, ExitInput)
	}
	assertQuit(t, cmd)
}

func TestPromptRecoversAfterOneEmptySubmission(t *testing.T) {
	t.Parallel()

	m := newPromptModel("Type here")
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = typeLine(t, m, "still here")
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.value != "still here" {
		t.Fatalf("value = %q, want %q", m.value, "still here")
	}
}

func TestPromptCancelsOnCtrlC(t *testing.T) {
	t.Parallel()

	m := newPromptModel("Type here")
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})

	if !m.canceled {
		t.Fatalf("expected canceled flag after ctrl+c")
	}
	assertQuit(t, cmd)
}

func TestPromptViewShowsPlaceholderUntilTyped(t *testing.T) {
	t.Parallel()

	m := newPromptModel("Type here")
	if view := m.View(); !strings.Contains(view, "Type here") {
		t.Fatalf("expected placeholder in view, got %q", view)
	}

	m = typeLine(t, m, "hello")
	if view := m.View(); !strings.Contains(view, "hello") {
		t.Fatalf("expected typed text in view, got %q", view)
	}
}

func TestEntryFromLineCountsFields(t *testing.T) {
	cases := []struct {
		name  string
		line  string
		words int
	}{
		{name: "plain", line: "three small words", words: 3},
		{name: "extra spaces", line: "  spread   out  ", words: 2},
		{name: "empty", line: "", words: 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			entry := entryFromLine(tc.line)
			if entry.Content != tc.line {
				t.Fatalf("content = %q, want %q", entry.Content, tc.line)
			}
			if entry.Words != tc.words {
				t.Fatalf("words = %d, want %d", entry.Words, tc.words)
			}
		})
	}
}

func assertQuit(t *testing.T, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		t.Fatalf("expected a quit command, got nil")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg, got %T", cmd())
	}
}
