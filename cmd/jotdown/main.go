package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"jotdown/internal/chat"
	"jotdown/internal/editor"
	"jotdown/internal/llm"
	"jotdown/internal/menu"
	"jotdown/internal/ui"
)

func main() {
	targetWords := flag.Int("target-words", editor.DefaultTargetWords, "minimum words before the editor lets a note end")
	width := flag.Int("width", editor.DefaultWidth, "editor text pane width in cells")
	height := flag.Int("height", editor.DefaultHeight, "editor text pane height in rows")
	noAltScreen := flag.Bool("no-alt-screen", false, "disable the alternate screen buffer")
	plain := flag.Bool("plain", false, "print results immediately instead of the typewriter effect")
	model := flag.String("model", "", "override the companion model (eg. llama3.2:latest)")
	endpoint := flag.String("endpoint", "", "custom companion host (eg. http://localhost:11434)")
	flag.Parse()

	if *targetWords <= 0 {
		fmt.Println("target-words must be positive")
		os.Exit(1)
	}

	if os.Getenv("JOTDOWN_DEBUG") != "" {
		f, err := tea.LogToFile("jotdown-debug.log", "jotdown")
		if err != nil {
			fmt.Println("debug log disabled:", err)
		} else {
			defer f.Close()
		}
	}

	opts := []tea.ProgramOption{}
	if !*noAltScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	stream := ui.NewStreamer(os.Stdout)
	if *plain {
		stream.Delay = 0
	}

	choice, err := menu.Select(opts...)
	if err != nil {
		exit(err)
	}

	switch choice {
	case menu.ChoiceNote:
		err = runNote(stream, editor.Config{
			TargetWords: *targetWords,
			Width:       *width,
			Height:      *height,
		}, opts)
	case menu.ChoiceChat:
		err = runChat(stream, *model, *endpoint)
	}
	if err != nil {
		exit(err)
	}
}

// runNote captures one note through the shared input capability and echoes
// it back once the editor has released the terminal.
func runNote(stream *ui.Streamer, cfg editor.Config, opts []tea.ProgramOption) error {
	var input ui.Input = editor.Opener{Config: cfg, Options: opts}
	entry, err := input.Input()
	if err != nil {
		return err
	}
	stream.Printf("Saved. %d words this session.", entry.Words)
	if text := printable(entry.Content); strings.TrimSpace(text) != "" {
		stream.Print(text)
	}
	return nil
}

// runChat keeps going with a nil client so the loop itself can explain how
// to get a companion running.
func runChat(stream *ui.Streamer, model, endpoint string) error {
	client, err := llm.NewFromEnv(llm.Config{Model: model, Endpoint: endpoint})
	if err != nil {
		fmt.Println("companion disabled:", err)
		client = nil
	}
	return chat.Run(chat.Config{
		Prompt: ui.NewPrompt(),
		Client: client,
		Stream: stream,
	})
}

// printable drops the control codes the editor keeps in its raw buffer so
// the echoed note stays clean.
func printable(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\n' || r == '\t':
			return r
		case r < 32 || r == 127:
			return -1
		}
		return r
	}, s)
}

func exit(err error) {
	if errors.Is(err, ui.ErrCanceled) {
		os.Exit(0)
	}
	fmt.Println("program error:", err)
	os.Exit(1)
}
