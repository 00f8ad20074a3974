// Package editor implements the constrained note editor: a full-screen
// capture loop that holds the user to a word target and requires repeated
// escape presses to leave early.
package editor

import "unicode"

const (
	// DefaultTargetWords is the word tally a session must reach before a
	// single escape press ends it.
	DefaultTargetWords = 20

	// escapeAllowance is how many uninterrupted escape presses force an
	// exit below the target.
	escapeAllowance = 3
)

// Result is the immutable outcome of a finished session.
type Result struct {
	Content string
	Words   int
}

// Session is the live state of one editing pass: the captured text, the
// heuristic word tally, and the decaying escape-confirmation counter. It is
// pure state fed one decoded keystroke code at a time; rendering lives in
// the surrounding model.
//
// Two quirks are kept on purpose because users have learned them: a space
// keystroke bumps the tally twice (once as the space case, once as generic
// whitespace), and an escape press that does not end the session is
// recorded in the content even though it is never echoed.
type Session struct {
	buf     []rune
	words   int
	target  int
	escapes int
	keys    int
	done    bool
}

// NewSession starts a session against the given word target.
func NewSession(target int) *Session {
	if target <= 0 {
		target = DefaultTargetWords
	}
	return &Session{target: target, escapes: escapeAllowance}
}

// Feed processes one keystroke code and reports whether the session ended.
// The word tally and the escape counter always update before anything is
// appended, so the terminating escape never reaches the content.
func (s *Session) Feed(k rune) bool {
	if s.done {
		return true
	}
	s.keys++

	if k == ' ' {
		s.words++
	}
	if k == keyEscape {
		s.escapes--
		if s.words >= s.target || s.escapes == 0 {
			s.done = true
			return true
		}
	} else {
		s.escapes = escapeAllowance
	}
	if k != keyDelete {
		s.buf = append(s.buf, k)
	}
	if unicode.IsSpace(k) {
		s.words++
	}
	return false
}

// FeedOther registers a keystroke outside the character alphabet, such as
// an arrow key. Like any non-escape key it cancels an escape confirmation
// in progress; it contributes nothing to the content or the tally.
func (s *Session) FeedOther() {
	if s.done {
		return
	}
	s.keys++
	s.escapes = escapeAllowance
}

// Done reports whether a terminal state was reached.
func (s *Session) Done() bool { return s.done }

// Started reports whether any keystroke has been processed yet.
func (s *Session) Started() bool { return s.keys > 0 }

// Words returns the heuristic word tally. It counts whitespace keystrokes
// as they happen and is never recounted from the content.
func (s *Session) Words() int { return s.words }

// Target returns the immutable word goal.
func (s *Session) Target() int { return s.target }

// Remaining returns how many tallied words are still missing.
func (s *Session) Remaining() int { return s.target - s.words }

// EscapesLeft returns how many more uninterrupted escape presses would
// force an exit.
func (s *Session) EscapesLeft() int { return s.escapes }

// Confirming reports whether an escape confirmation is in progress, that
// is, the last keystroke was an escape that did not end the session.
func (s *Session) Confirming() bool { return s.escapes < escapeAllowance && !s.done }

// Exceeded reports whether the tally has passed the target strictly; the
// affirmative notice shows only then, not when the target is merely met.
func (s *Session) Exceeded() bool { return s.words > s.target }

// Content returns the captured text, control codes included.
func (s *Session) Content() string { return string(s.buf) }

// Echo returns the text as it appears on screen: escape codes are part of
// the content but are never drawn.
func (s *Session) Echo() string {
	out := make([]rune, 0, len(s.buf))
	for _, r := range s.buf {
		if r == keyEscape {
			continue
		}
		out = append(out, r)
	}
	return string(out)
}

// Result freezes the outcome of the session.
func (s *Session) Result() Result {
	return Result{Content: string(s.buf), Words: s.words}
}
