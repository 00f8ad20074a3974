package ui

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"
)

type writeRecorder struct {
	writes []string
}

func (w *writeRecorder) Write(p []byte) (int, error) {
	w.writes = append(w.writes, string(p))
	return len(p), nil
}

func TestStreamerChunksInOrder(t *testing.T) {
	t.Parallel()

	rec := &writeRecorder{}
	s := &Streamer{Out: rec, ChunkSize: 3}
	s.Print("abcdefgh")

	want := []string{"abc", "def", "gh", "\n"}
	if len(rec.writes) != len(want) {
		t.Fatalf("writes = %#v, want %#v", rec.writes, want)
	}
	for i, chunk := range want {
		if rec.writes[i] != chunk {
			t.Fatalf("write %d = %q, want %q", i, rec.writes[i], chunk)
		}
	}
}

func TestStreamerKeepsMultibyteRunesWhole(t *testing.T) {
	t.Parallel()

	rec := &writeRecorder{}
	s := &Streamer{Out: rec, ChunkSize: 2}
	s.Print("héllo wörld ⣾⣷")

	var rebuilt strings.Builder
	for i, chunk := range rec.writes {
		if !utf8.ValidString(chunk) {
			t.Fatalf("write %d is not valid UTF-8: %q", i, chunk)
		}
		rebuilt.WriteString(chunk)
	}
	if got := rebuilt.String(); got != "héllo wörld ⣾⣷\n" {
		t.Fatalf("streamed output = %q", got)
	}
}

func TestStreamerEmptyMessageStillEndsLine(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s := &Streamer{Out: &buf}
	s.Print("")

	if got := buf.String(); got != "\n" {
		t.Fatalf("output = %q, want newline only", got)
	}
}

func TestNewStreamerDefaults(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s := NewStreamer(&buf)
	if s.ChunkSize != defaultChunkSize {
		t.Fatalf("chunk size = %d, want %d", s.ChunkSize, defaultChunkSize)
	}
	if s.Delay != defaultDelay {
		t.Fatalf("delay = %s, want %s", s.Delay, defaultDelay)
	}
}

func TestStreamerPrintf(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s := &Streamer{Out: &buf}
	s.Printf("wrote %d words", 7)

	if got := buf.String(); got != "wrote 7 words\n" {
		t.Fatalf("output = %q", got)
	}
}
