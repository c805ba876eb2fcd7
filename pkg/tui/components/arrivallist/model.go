// Package arrivallist renders the arrivals as a navigable list, newest
// first.
package arrivallist

import (
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"github.com/puertosur/arribo/pkg/arrival"
	"github.com/puertosur/arribo/pkg/tui/events"
	"github.com/puertosur/arribo/pkg/tui/theme"
)

// Model is the arrival list component.
type Model struct {
	id      events.ComponentID
	theme   theme.Theme
	focused bool

	rows   []arrival.Event
	cursor int
	height int
}

// NewModel constructs an empty list.
func NewModel() *Model {
	return &Model{
		id:     events.ComponentID("arrivallist"),
		theme:  theme.Default(),
		height: 10,
	}
}

// ID returns the component identifier used in emitted events.
func (m *Model) ID() events.ComponentID { return m.id }

// SetEvents replaces the listed arrivals. Order is normalized to
// newest first and the cursor resets when it falls off the end.
func (m *Model) SetEvents(evs []arrival.Event) {
	rows := make([]arrival.Event, len(evs))
	copy(rows, evs)
	arrival.SortEvents(rows)
	m.rows = rows
	if m.cursor >= len(m.rows) {
		m.cursor = 0
	}
}

// SetHeight bounds how many rows are rendered.
func (m *Model) SetHeight(height int) {
	if height < 1 {
		height = 1
	}
	m.height = height
}

// Focus and Blur toggle keyboard handling.
func (m *Model) Focus() { m.focused = true }
func (m *Model) Blur()  { m.focused = false }

// Highlighted returns the arrival under the cursor.
func (m *Model) Highlighted() (events.ArrivalRef, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return events.ArrivalRef{}, false
	}
	e := m.rows[m.cursor]
	return events.ArrivalRef{
		BL:    e.ID,
		Title: e.DisplayTitle(),
		Date:  e.Date,
		Port:  e.Port,
	}, true
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update processes Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || !m.focused {
		return m, nil
	}

	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
			return m, m.highlightCmd()
		}
	case "down", "j":
		if m.cursor < len(m.rows)-1 {
			m.cursor++
			return m, m.highlightCmd()
		}
	case "home", "g":
		m.cursor = 0
		return m, m.highlightCmd()
	case "end", "G":
		if len(m.rows) > 0 {
			m.cursor = len(m.rows) - 1
			return m, m.highlightCmd()
		}
	case "enter":
		if ref, ok := m.Highlighted(); ok {
			return m, events.ArrivalSelectCmd(m.id, ref)
		}
	}
	return m, nil
}

// highlightCmd announces the arrival now under the cursor.
func (m *Model) highlightCmd() tea.Cmd {
	ref, ok := m.Highlighted()
	if !ok {
		return nil
	}
	return events.ArrivalHighlightCmd(m.id, ref)
}

// View renders the visible window of rows around the cursor.
func (m *Model) View() string {
	t := m.theme.List

	lines := []string{t.Title.Render("Llegadas")}
	if len(m.rows) == 0 {
		lines = append(lines, t.Empty.Render(" ninguna"))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	start, end := m.window()
	for i := start; i < end; i++ {
		e := m.rows[i]
		date := e.Date
		if date == "" {
			date = "          "
		}
		row := t.Meta.Render(date) + "  " + e.DisplayTitle()
		if e.Port != "" {
			row += t.Meta.Render("  " + e.Port)
		}
		if i == m.cursor && m.focused {
			row = t.Selected.Render("> ") + row
		} else {
			row = "  " + row
		}
		lines = append(lines, row)
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *Model) window() (int, int) {
	visible := m.height - 1
	if visible < 1 {
		visible = 1
	}
	start := 0
	if m.cursor >= visible {
		start = m.cursor - visible + 1
	}
	end := start + visible
	if end > len(m.rows) {
		end = len(m.rows)
	}
	return start, end
}
