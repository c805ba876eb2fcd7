// Package confirm renders a yes/no modal used to guard discarding
// unsaved edits.
package confirm

import (
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"github.com/puertosur/arribo/pkg/tui/events"
	"github.com/puertosur/arribo/pkg/tui/theme"
)

// Model is the confirmation modal.
type Model struct {
	id     events.ComponentID
	theme  theme.Theme
	prompt string
}

// NewModel constructs a modal asking the given question.
func NewModel(prompt string) *Model {
	return &Model{
		id:     events.ComponentID("confirm"),
		theme:  theme.Default(),
		prompt: prompt,
	}
}

// ID returns the component identifier used in emitted events.
func (m *Model) ID() events.ComponentID { return m.id }

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update answers on y/n. Esc counts as a no.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "y", "s", "enter":
		return m, events.ConfirmResultCmd(m.id, true)
	case "n", "esc":
		return m, events.ConfirmResultCmd(m.id, false)
	}
	return m, nil
}

// View renders the centered modal box.
func (m *Model) View() string {
	t := m.theme.Modal
	body := lipgloss.JoinVertical(lipgloss.Left,
		t.Title.Render(m.prompt),
		"",
		t.Body.Render("s/enter para descartar • n/esc para seguir editando"),
	)
	return t.Frame.Render(body)
}
