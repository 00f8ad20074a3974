package llm

import "strings"

const systemInstruction = "You are a warm, attentive journaling companion. " +
	"Respond to the writer in a few plain sentences. Ask at most one gentle " +
	"follow-up question, and never lecture."

func clipText(text string, limit int) string {
	text = strings.TrimSpace(text)
	if limit <= 0 || len(text) <= limit {
		return text
	}
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}

func buildChatPrompt(history []Exchange, message string) string {
	var b strings.Builder
	b.WriteString(systemInstruction)
	b.WriteString("\n\n")
	if ctx := historyContext(history, maxHistoryChars); ctx != "" {
		b.WriteString("Conversation so far:\n")
		b.WriteString(ctx)
		b.WriteString("\n")
	}
	b.WriteString("Writer: ")
	b.WriteString(clipText(message, maxMessageChars))
	b.WriteString("\nCompanion:")
	return b.String()
}

// historyContext replays the most recent exchanges that fit the character
// budget, oldest first so the model reads the conversation in order.
func historyContext(history []Exchange, budget int) string {
	if len(history) == 0 {
		return ""
	}
	turns := make([]string, 0, len(history))
	used := 0
	for i := len(history) - 1; i >= 0; i-- {
		turn := "Writer: " + history[i].You + "\nCompanion: " + history[i].Reply + "\n"
		if used+len(turn) > budget {
			break
		}
		used += len(turn)
		turns = append(turns, turn)
	}

	var b strings.Builder
	for i := len(turns) - 1; i >= 0; i-- {
		b.WriteString(turns[i])
	}
	return b.String()
}

// lastExchanges returns up to n most recent turns, for backends that take
// structured messages instead of a flat prompt.
func lastExchanges(history []Exchange, n int) []Exchange {
	if len(history) <= n {
		return history
	}
	return history[len(history)-n:]
}
