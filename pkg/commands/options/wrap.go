package options

import "strings"

// Wrap80 re-flows flag help text at the conventional 80 columns.
func Wrap80(text string) string {
	return Wrap(text, 80)
}

// Wrap breaks text into lines no wider than width, greedily, splitting
// on spaces only. A single word longer than width gets its own line.
func Wrap(text string, width int) string {
	words := strings.Fields(strings.TrimSpace(text))
	if len(words) == 0 {
		return text
	}
	wrapped := words[0]
	count := width - len(wrapped)
	for _, word := range words[1:] {
		if len(word)+1 > count {
			wrapped += "\n" + word
			count = width - len(word)
		} else {
			wrapped += " " + word
			count -= 1 + len(word)
		}
	}
	return wrapped
}
