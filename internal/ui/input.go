// Package ui holds the pieces shared by every way jotdown talks to the
// user: the single input capability implemented by both the line prompt and
// the full-screen editor, and the typewriter streamer used for output.
package ui

import "errors"

// ErrCanceled is returned when the user abandons an interactive element,
// typically with ctrl+c.
var ErrCanceled = errors.New("input canceled")

// ExitInput is the sentinel content signalling that the user is done.
// The prompt produces it on its own after two consecutive empty
// submissions; typing it verbatim has the same effect.
const ExitInput = "exit!"

// Entry is one piece of captured user text plus its heuristic word tally.
type Entry struct {
	Content string
	Words   int
}

// Input is the one capability shared by every input variant. The line
// prompt and the full-screen editor both satisfy it with unrelated
// internals; callers hold the interface and never the concrete type.
type Input interface {
	Input() (Entry, error)
}
