// Package monthgrid renders a Monday-first month of arrival days and
// lets the user walk the days with the keyboard.
package monthgrid

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"github.com/puertosur/arribo/pkg/arrival"
	"github.com/puertosur/arribo/pkg/calendar"
	"github.com/puertosur/arribo/pkg/tui/events"
	"github.com/puertosur/arribo/pkg/tui/theme"
)

var weekdays = []string{"Lu", "Ma", "Mi", "Ju", "Vi", "Sa", "Do"}

// Model is the month calendar component.
type Model struct {
	id      events.ComponentID
	theme   theme.Theme
	focused bool

	year   int
	month  time.Month
	events []arrival.Event

	cells  []calendar.Cell
	cursor int
}

// NewModel constructs a grid showing the given month.
func NewModel(year int, month time.Month) *Model {
	m := &Model{
		id:    events.ComponentID("monthgrid"),
		theme: theme.Default(),
		year:  year,
		month: month,
	}
	m.rebuild()
	return m
}

// ID returns the component identifier used in emitted events.
func (m *Model) ID() events.ComponentID { return m.id }

// Year and Month report the displayed month.
func (m *Model) Year() int         { return m.year }
func (m *Model) Month() time.Month { return m.month }

// SetEvents replaces the arrivals placed on the grid.
func (m *Model) SetEvents(evs []arrival.Event) {
	m.events = evs
	m.rebuild()
}

// SetMonth jumps the grid to another month.
func (m *Model) SetMonth(year int, month time.Month) {
	m.year = year
	m.month = month
	m.rebuild()
}

// Focus and Blur toggle keyboard handling.
func (m *Model) Focus() { m.focused = true }
func (m *Model) Blur()  { m.focused = false }

// Cursor returns the date under the cursor.
func (m *Model) Cursor() time.Time {
	if m.cursor < 0 || m.cursor >= len(m.cells) {
		return time.Time{}
	}
	return m.cells[m.cursor].Date
}

// CursorEvents returns the arrivals on the day under the cursor.
func (m *Model) CursorEvents() []arrival.Event {
	if m.cursor < 0 || m.cursor >= len(m.cells) {
		return nil
	}
	return m.cells[m.cursor].Events
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
	case "left", "h":
		m.moveCursor(-1)
	case "right", "l":
		m.moveCursor(1)
	case "up", "k":
		m.moveCursor(-7)
	case "down", "j":
		m.moveCursor(7)
	case "pgup", "[":
		m.year, m.month = calendar.PrevMonth(m.year, m.month)
		m.rebuild()
	case "pgdown", "]":
		m.year, m.month = calendar.NextMonth(m.year, m.month)
		m.rebuild()
	case "t":
		now := time.Now()
		m.year, m.month = now.Year(), now.Month()
		m.rebuild()
	case "enter":
		if evs := m.CursorEvents(); len(evs) > 0 {
			e := evs[0]
			return m, events.ArrivalSelectCmd(m.id, events.ArrivalRef{
				BL:    e.ID,
				Title: e.DisplayTitle(),
				Date:  e.Date,
				Port:  e.Port,
			})
		}
	}
	return m, nil
}

// View renders the grid with the events of the cursor day listed below.
func (m *Model) View() string {
	t := m.theme.Grid

	lines := []string{
		t.Title.Render(calendar.Title(m.year, m.month)),
		t.Weekdays.Render(strings.Join(weekdays, " ")),
	}

	var row strings.Builder
	for i, c := range m.cells {
		style := t.Day
		switch {
		case !c.InMonth:
			style = t.DayOut
		case len(c.Events) > 0:
			style = t.DayBusy
		}
		cell := style.Render(pad2(c.Date.Day()))
		if i == m.cursor && m.focused {
			cell = t.Cursor.Render(pad2(c.Date.Day()))
		}
		row.WriteString(cell)
		if (i+1)%7 == 0 {
			lines = append(lines, row.String())
			row.Reset()
		} else {
			row.WriteString(" ")
		}
	}

	if evs := m.CursorEvents(); len(evs) == 0 {
		lines = append(lines, t.DayOut.Render("·"))
	} else {
		for _, e := range evs {
			lines = append(lines, t.DayBusy.Render("• ")+e.DisplayTitle())
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *Model) moveCursor(delta int) {
	next := m.cursor + delta
	if next < 0 || next >= len(m.cells) {
		return
	}
	m.cursor = next
}

func (m *Model) rebuild() {
	m.cells = calendar.Grid(m.year, m.month, m.events)
	m.cursor = m.defaultCursor()
}

// defaultCursor lands on today when the month is current, otherwise on
// the first day of the month.
func (m *Model) defaultCursor() int {
	now := time.Now()
	for i, c := range m.cells {
		if !c.InMonth {
			continue
		}
		if c.Date.Year() == now.Year() && c.Date.Month() == now.Month() && c.Date.Day() == now.Day() {
			return i
		}
	}
	for i, c := range m.cells {
		if c.InMonth {
			return i
		}
	}
	return 0
}

func pad2(day int) string {
	return fmt.Sprintf("%2d", day)
}
