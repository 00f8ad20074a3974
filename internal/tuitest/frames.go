package tuitest

import (
	"regexp"
	"strings"
)

// Frame is one full-screen render between two erase-display sequences.
type Frame struct {
	Seq  int
	Raw  string
	Text string // ANSI stripped, lines right-trimmed
}

var (
	wipeSeq = regexp.MustCompile(`\x1b\[[0-9;]*J`)
	csiSeq  = regexp.MustCompile(`\x1b\[[0-9;?]*[A-Za-z]`)
	oscSeq  = regexp.MustCompile(`\x1b\][^\x07]*(\x07|\x1b\\)`)
)

func splitFrames(raw []byte) []Frame {
	flat := strings.ReplaceAll(string(raw), "\r", "")
	parts := wipeSeq.Split(flat, -1)
	frames := make([]Frame, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimPrefix(strings.Trim(part, "\x00"), "\x1b[H")
		text := tidy(scrub(part))
		if strings.TrimSpace(text) == "" {
			continue
		}
		frames = append(frames, Frame{Seq: len(frames), Raw: part, Text: text})
	}
	if len(frames) == 0 {
		if text := tidy(scrub(flat)); strings.TrimSpace(text) != "" {
			frames = append(frames, Frame{Raw: flat, Text: text})
		}
	}
	return frames
}

// Last returns the final rendered frame. The second value is false when
// the run produced no visible output.
func (t *Transcript) Last() (Frame, bool) {
	if t == nil || len(t.Frames) == 0 {
		return Frame{}, false
	}
	return t.Frames[len(t.Frames)-1], true
}

// Seen reports whether any frame's text contains sub.
func (t *Transcript) Seen(sub string) bool {
	for _, f := range t.Frames {
		if strings.Contains(f.Text, sub) {
			return true
		}
	}
	return false
}

// Text joins every frame's text, oldest first, for coarse assertions and
// failure dumps.
func (t *Transcript) Text() string {
	parts := make([]string, len(t.Frames))
	for i, f := range t.Frames {
		parts[i] = f.Text
	}
	return strings.Join(parts, "\n---\n")
}

func scrub(s string) string {
	s = oscSeq.ReplaceAllString(s, "")
	s = csiSeq.ReplaceAllString(s, "")
	return strings.Map(func(r rune) rune {
		if r == 0x0e || r == 0x0f {
			return -1
		}
		return r
	}, s)
}

func tidy(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}
