// Package tuitest drives a compiled binary inside a pseudo terminal and
// records what it draws, so end-to-end tests can assert on rendered text.
package tuitest

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/creack/pty"
)

const (
	defaultCols     = 100
	defaultRows     = 30
	defaultDeadline = 10 * time.Second
)

// Action is one scripted user interaction: wait, then type.
type Action struct {
	Wait time.Duration
	Keys []byte
}

// Config describes one scripted run.
type Config struct {
	Command     []string // argv; Command[0] is the binary
	Dir         string
	Env         []string // appended to the inherited environment
	Cols        int
	Rows        int
	Script      []Action
	Deadline    time.Duration
	OKExitCodes []int // exit codes besides 0 that count as success
}

// Transcript is everything the program wrote during one run.
type Transcript struct {
	Raw    []byte
	Frames []Frame
	Took   time.Duration
}

// Play runs the command in a PTY, types the script, and waits for a clean
// exit before handing back the captured output.
func Play(ctx context.Context, cfg Config) (*Transcript, error) {
	if len(cfg.Command) == 0 {
		return nil, errors.New("tuitest: empty command")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	deadline := cfg.Deadline
	if deadline <= 0 {
		deadline = defaultDeadline
	}
	ctx, cancel := context.WithTimeout(ctx, deadline)
	defer cancel()

	cmd := exec.CommandContext(ctx, cfg.Command[0], cfg.Command[1:]...)
	cmd.Dir = cfg.Dir
	cmd.Env = runEnv(cfg.Env)

	size := &pty.Winsize{
		Cols: uint16(pick(cfg.Cols, defaultCols)),
		Rows: uint16(pick(cfg.Rows, defaultRows)),
	}
	ptmx, err := pty.StartWithSize(cmd, size)
	if err != nil {
		return nil, fmt.Errorf("tuitest: start %s: %w", cfg.Command[0], err)
	}
	defer func() { _ = ptmx.Close() }()

	rec := newRecorder(ptmx)
	go rec.drain(ptmx)

	began := time.Now()
	for _, action := range cfg.Script {
		if action.Wait > 0 {
			select {
			case <-ctx.Done():
				return nil, fmt.Errorf("tuitest: script cut short: %w", ctx.Err())
			case <-time.After(action.Wait):
			}
		}
		if len(action.Keys) == 0 {
			continue
		}
		if _, err := ptmx.Write(action.Keys); err != nil {
			return nil, fmt.Errorf("tuitest: type %q: %w", action.Keys, err)
		}
	}

	exited := make(chan error, 1)
	go func() { exited <- cmd.Wait() }()

	select {
	case err := <-exited:
		if err != nil && !exitAllowed(err, cfg.OKExitCodes) {
			return nil, fmt.Errorf("tuitest: program failed: %w", err)
		}
	case <-ctx.Done():
		return nil, fmt.Errorf("tuitest: program still running: %w", ctx.Err())
	}

	// Closing the PTY unblocks the drain goroutine.
	_ = ptmx.Close()
	rec.wait()

	raw := rec.bytes()
	return &Transcript{Raw: raw, Frames: splitFrames(raw), Took: time.Since(began)}, nil
}

// recorder captures program output while answering terminal probes inline.
type recorder struct {
	probes *probeAnswerer
	out    bytes.Buffer
	done   chan struct{}
}

func newRecorder(w io.Writer) *recorder {
	return &recorder{probes: newProbeAnswerer(w), done: make(chan struct{})}
}

func (rec *recorder) drain(r io.Reader) {
	defer close(rec.done)
	buf := make([]byte, 4096)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			rec.probes.Feed(buf[:n])
			rec.out.Write(buf[:n])
		}
		if err != nil {
			return
		}
	}
}

func (rec *recorder) wait() { <-rec.done }

// bytes must only be called after wait.
func (rec *recorder) bytes() []byte { return rec.out.Bytes() }

func exitAllowed(err error, ok []int) bool {
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return false
	}
	for _, code := range ok {
		if exitErr.ExitCode() == code {
			return true
		}
	}
	return false
}

func runEnv(extra []string) []string {
	env := append(os.Environ(), extra...)
	for _, kv := range env {
		if strings.HasPrefix(kv, "TERM=") {
			return env
		}
	}
	return append(env, "TERM=xterm-256color")
}

func pick(v, fallback int) int {
	if v <= 0 {
		return fallback
	}
	return v
}

// Canned key sequences for scripts.
var (
	KeyEnter = []byte{'\r'}
	KeyEsc   = []byte{27}
	KeyCtrlC = []byte{3}
	KeySpace = []byte{' '}
	KeyLeft  = []byte("\x1b[D")
	KeyRight = []byte("\x1b[C")
)

// Type spells out a string as one action's key bytes.
func Type(s string) []byte { return []byte(s) }
