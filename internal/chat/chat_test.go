package chat

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"jotdown/internal/llm"
	"jotdown/internal/ui"
)

type step struct {
	entry ui.Entry
	err   error
}

// scriptedPrompt plays back a fixed sequence of Input results, then keeps
// returning the exit sentinel so a test can never hang the loop.
type scriptedPrompt struct {
	steps []step
}

func (p *scriptedPrompt) Input() (ui.Entry, error) {
	if len(p.steps) == 0 {
		return ui.Entry{Content: ui.ExitInput}, nil
	}
	next := p.steps[0]
	p.steps = p.steps[1:]
	return next.entry, next.err
}

func say(lines ...string) *scriptedPrompt {
	p := &scriptedPrompt{}
	for _, line := range lines {
		p.steps = append(p.steps, step{entry: ui.Entry{Content: line, Words: len(strings.Fields(line))}})
	}
	return p
}

// recordingClient returns canned replies and records what it was asked.
type recordingClient struct {
	reply    string
	err      error
	messages []string
	depths   []int
}

func (c *recordingClient) Reply(_ context.Context, history []llm.Exchange, message string) (string, error) {
	c.messages = append(c.messages, message)
	c.depths = append(c.depths, len(history))
	if c.err != nil {
		return "", c.err
	}
	return c.reply, nil
}

func (c *recordingClient) Name() string { return "Test Companion" }

func run(t *testing.T, prompt ui.Input, client llm.Client) string {
	t.Helper()
	var buf bytes.Buffer
	err := Run(Config{Prompt: prompt, Client: client, Stream: &ui.Streamer{Out: &buf}})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	return buf.String()
}

func TestRunEndsOnExitSentinel(t *testing.T) {
	client := &recordingClient{reply: "hello"}
	out := run(t, say(), client)

	if !strings.Contains(out, "Take care") {
		t.Fatalf("farewell missing from output:\n%s", out)
	}
	if len(client.messages) != 0 {
		t.Fatalf("client was asked %v; the sentinel should end the loop first", client.messages)
	}
}

func TestRunGreetsWithCompanionName(t *testing.T) {
	out := run(t, say(), &recordingClient{})

	if !strings.Contains(out, "Test Companion") {
		t.Fatalf("greeting does not name the companion:\n%s", out)
	}
	if !strings.Contains(out, ui.ExitInput) {
		t.Fatalf("greeting does not explain how to leave:\n%s", out)
	}
}

func TestRunStreamsReplies(t *testing.T) {
	client := &recordingClient{reply: "That sounds heavy. What part stays with you?"}
	out := run(t, say("rough day at work"), client)

	if !strings.Contains(out, "That sounds heavy.") {
		t.Fatalf("reply missing from output:\n%s", out)
	}
	if len(client.messages) != 1 || client.messages[0] != "rough day at work" {
		t.Fatalf("client asked %v, want the typed line", client.messages)
	}
}

func TestRunCarriesHistoryForward(t *testing.T) {
	client := &recordingClient{reply: "go on"}
	run(t, say("first thing", "second thing"), client)

	if len(client.depths) != 2 {
		t.Fatalf("client got %d calls, want 2", len(client.depths))
	}
	if client.depths[0] != 0 || client.depths[1] != 1 {
		t.Fatalf("history depths = %v, want [0 1]", client.depths)
	}
}

func TestRunKeepsGoingAfterCompanionError(t *testing.T) {
	client := &recordingClient{err: errors.New("connection refused")}
	out := run(t, say("hello"), client)

	if !strings.Contains(out, "unreachable") || !strings.Contains(out, "connection refused") {
		t.Fatalf("companion error not reported:\n%s", out)
	}
	if !strings.Contains(out, "Take care") {
		t.Fatalf("loop did not survive the companion error:\n%s", out)
	}
}

func TestRunWithoutClientExplains(t *testing.T) {
	out := run(t, say("hello"), nil)

	if !strings.Contains(out, "No companion is configured") {
		t.Fatalf("nil client hint missing:\n%s", out)
	}
	if !strings.Contains(out, "Take care") {
		t.Fatalf("loop did not keep accepting input:\n%s", out)
	}
}

func TestRunListsIdeasLocally(t *testing.T) {
	client := &recordingClient{}
	out := run(t, say("ideas"), client)

	if !strings.Contains(out, "Small win") {
		t.Fatalf("ideas listing missing a known topic:\n%s", out)
	}
	if len(client.messages) != 0 {
		t.Fatalf("ideas should be answered locally, client asked %v", client.messages)
	}
}

func TestRunSkipsWhitespaceOnlyLines(t *testing.T) {
	client := &recordingClient{}
	run(t, say("   "), client)

	if len(client.messages) != 0 {
		t.Fatalf("whitespace line reached the client: %v", client.messages)
	}
}

func TestRunWrapsLongReplies(t *testing.T) {
	first := strings.Repeat("a", 50)
	second := strings.Repeat("b", 50)
	client := &recordingClient{reply: first + " " + second}
	out := run(t, say("hello"), client)

	if !strings.Contains(out, first+"\n"+second) {
		t.Fatalf("long reply was not wrapped:\n%s", out)
	}
}

func TestRunStopsQuietlyWhenPromptCanceled(t *testing.T) {
	prompt := &scriptedPrompt{steps: []step{{err: ui.ErrCanceled}}}
	var buf bytes.Buffer
	if err := Run(Config{Prompt: prompt, Stream: &ui.Streamer{Out: &buf}}); err != nil {
		t.Fatalf("Run() error = %v, want nil on cancel", err)
	}
	if strings.Contains(buf.String(), "Take care") {
		t.Fatalf("cancel should not stream a farewell:\n%s", buf.String())
	}
}

func TestRunSurfacesPromptFailure(t *testing.T) {
	prompt := &scriptedPrompt{steps: []step{{err: errors.New("tty gone")}}}
	var buf bytes.Buffer
	err := Run(Config{Prompt: prompt, Stream: &ui.Streamer{Out: &buf}})
	if err == nil || !strings.Contains(err.Error(), "tty gone") {
		t.Fatalf("Run() error = %v, want the prompt failure", err)
	}
}

func TestRunRejectsMissingWiring(t *testing.T) {
	if err := Run(Config{}); err == nil {
		t.Fatal("Run() with no prompt or stream should fail")
	}
}
