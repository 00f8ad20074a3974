package tuitest

import (
	"bytes"
	"io"
)

// Terminal capability probes the TUI runtime sends on startup, with the
// answers a plain xterm would give. Without them the program blocks
// waiting on reports a real terminal emulator produces.
var probeTable = []struct {
	query  []byte
	answer []byte
}{
	{[]byte("\x1b[6n"), []byte("\x1b[1;1R")},
	{[]byte("\x1b]10;?\x07"), []byte("\x1b]10;rgb:cccc/cccc/cccc\x07")},
	{[]byte("\x1b]10;?\x1b\\"), []byte("\x1b]10;rgb:cccc/cccc/cccc\x1b\\")},
	{[]byte("\x1b]11;?\x07"), []byte("\x1b]11;rgb:0000/0000/0000\x07")},
	{[]byte("\x1b]11;?\x1b\\"), []byte("\x1b]11;rgb:0000/0000/0000\x1b\\")},
}

type probeAnswerer struct {
	w    io.Writer
	tail []byte
}

func newProbeAnswerer(w io.Writer) *probeAnswerer {
	return &probeAnswerer{w: w}
}

// Feed scans program output for probes and answers each occurrence once.
// A short tail is kept between calls so probes split across reads still
// match.
func (pa *probeAnswerer) Feed(chunk []byte) {
	pa.tail = append(pa.tail, chunk...)
	for answered := true; answered; {
		answered = false
		for _, probe := range probeTable {
			if idx := bytes.Index(pa.tail, probe.query); idx >= 0 {
				pa.tail = pa.tail[idx+len(probe.query):]
				_, _ = pa.w.Write(probe.answer)
				answered = true
			}
		}
	}
	if len(pa.tail) > 256 {
		pa.tail = pa.tail[len(pa.tail)-64:]
	}
}
