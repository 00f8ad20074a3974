package editor

import tea "github.com/charmbracelet/bubbletea"

// Keystrokes travel through the session as plain character codes, the same
// alphabet a raw terminal read would produce.
const (
	keyEscape rune = 27
	keyDelete rune = 127
)

// decodeKey lowers a key message to session codes. Multi-rune messages
// (pasted text) are fed character by character. The second result is false
// for keys that carry no character at all, such as arrows.
func decodeKey(msg tea.KeyMsg) ([]rune, bool) {
	switch msg.Type {
	case tea.KeyEsc:
		return []rune{keyEscape}, true
	case tea.KeyBackspace:
		return []rune{keyDelete}, true
	case tea.KeyEnter:
		return []rune{'\n'}, true
	case tea.KeyTab:
		return []rune{'\t'}, true
	case tea.KeySpace:
		return []rune{' '}, true
	case tea.KeyRunes:
		return msg.Runes, true
	default:
		return nil, false
	}
}
