package ui

import (
	"fmt"
	"io"
	"time"
)

const (
	defaultChunkSize = 3
	defaultDelay     = 100 * time.Millisecond
)

// Streamer prints text a few characters at a time with a short pause
// between chunks, like a typewriter. Chunks are measured in runes so
// multibyte text never splits mid-character.
type Streamer struct {
	Out       io.Writer
	ChunkSize int
	Delay     time.Duration
}

// NewStreamer returns a Streamer with the stock pacing.
func NewStreamer(out io.Writer) *Streamer {
	return &Streamer{Out: out, ChunkSize: defaultChunkSize, Delay: defaultDelay}
}

// Print writes msg chunk by chunk, then a trailing newline. A zero Delay
// makes it immediate.
func (s *Streamer) Print(msg string) {
	size := s.ChunkSize
	if size <= 0 {
		size = defaultChunkSize
	}
	runes := []rune(msg)
	for start := 0; start < len(runes); start += size {
		end := start + size
		if end > len(runes) {
			end = len(runes)
		}
		fmt.Fprint(s.Out, string(runes[start:end]))
		if s.Delay > 0 {
			time.Sleep(s.Delay)
		}
	}
	fmt.Fprintln(s.Out)
}

// Printf formats and streams one line.
func (s *Streamer) Printf(format string, args ...any) {
	s.Print(fmt.Sprintf(format, args...))
}
