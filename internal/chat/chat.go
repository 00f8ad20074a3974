// Package chat runs the conversational mode: a styled line prompt, a
// companion reply, and a typewriter echo.
package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/muesli/reflow/wordwrap"

	"jotdown/internal/guide"
	"jotdown/internal/llm"
	"jotdown/internal/ui"
)

// replyWidth wraps companion replies before the typewriter prints them.
const replyWidth = 76

// replyTimeout bounds one full companion round trip.
const replyTimeout = 90 * time.Second

// Config wires the chat loop together. Client may be nil; the loop then
// tells the user how to get a companion instead of answering.
type Config struct {
	Prompt ui.Input
	Client llm.Client
	Stream *ui.Streamer
}

// Run reads lines until the user leaves. Companion failures are printed
// and the loop keeps going; only a broken prompt ends it with an error.
func Run(cfg Config) error {
	if cfg.Prompt == nil || cfg.Stream == nil {
		return errors.New("chat requires a prompt and a stream")
	}

	greet(cfg)

	var history []llm.Exchange
	for {
		entry, err := cfg.Prompt.Input()
		if errors.Is(err, ui.ErrCanceled) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read chat input: %w", err)
		}
		if entry.Content == ui.ExitInput {
			cfg.Stream.Print("Take care. Your words stay with you.")
			return nil
		}

		line := strings.TrimSpace(entry.Content)
		switch {
		case line == "":
			continue
		case strings.EqualFold(line, "ideas"):
			listTopics(cfg.Stream)
			continue
		}

		if cfg.Client == nil {
			cfg.Stream.Print("No companion is configured. Start Ollama (or set OPENAI_API_KEY) and reopen chat.")
			continue
		}

		reply, err := ask(cfg.Client, history, line)
		if err != nil {
			cfg.Stream.Printf("The companion is unreachable: %v", err)
			continue
		}
		cfg.Stream.Print(wordwrap.String(reply, replyWidth))
		history = append(history, llm.Exchange{You: line, Reply: reply})
	}
}

func ask(client llm.Client, history []llm.Exchange, message string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), replyTimeout)
	defer cancel()
	return client.Reply(ctx, history, message)
}

func greet(cfg Config) {
	if cfg.Client != nil {
		cfg.Stream.Printf("You're chatting with %s. Two empty lines or %q end the session.", cfg.Client.Name(), ui.ExitInput)
	} else {
		cfg.Stream.Printf("Chat mode. Two empty lines or %q end the session.", ui.ExitInput)
	}
	cfg.Stream.Printf("Stuck? Type \"ideas\" for prompts. Today's: %s.", guide.ForDay(time.Now()).Title)
}

func listTopics(stream *ui.Streamer) {
	for _, topic := range guide.Topics() {
		stream.Printf("%s: %s", topic.Title, topic.Description)
	}
}
