package session

import "github.com/manifoldco/promptui"

// TerminalConfirmer resolves confirmations through an interactive
// terminal prompt. Any error (including ctrl-c) counts as a no.
type TerminalConfirmer struct{}

func (TerminalConfirmer) Confirm(prompt string) bool {
	p := promptui.Prompt{
		Label:     prompt,
		IsConfirm: true,
	}
	if _, err := p.Run(); err != nil {
		return false
	}
	return true
}
