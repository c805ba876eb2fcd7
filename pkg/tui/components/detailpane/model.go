// Package detailpane shows one arrival with its line items and hosts
// the inline edit form.
package detailpane

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"github.com/puertosur/arribo/pkg/arrival"
	"github.com/puertosur/arribo/pkg/client"
	"github.com/puertosur/arribo/pkg/tui/events"
	"github.com/puertosur/arribo/pkg/tui/theme"
)

type focusField int

const (
	fieldDate focusField = iota
	fieldPort
	fieldNotes
	fieldItems // item inputs follow, four per row
)

type itemRow struct {
	code        textinput.Model
	description textinput.Model
	meters      textinput.Model
	rolls       textinput.Model
}

// Model is the detail pane component.
type Model struct {
	id      events.ComponentID
	theme   theme.Theme
	focused bool

	detail arrival.Detail
	loaded bool

	editing bool
	focus   int
	date    textinput.Model
	port    textinput.Model
	notes   textinput.Model
	items   []itemRow

	seed client.SavePayload
}

// NewModel constructs an empty detail pane.
func NewModel() *Model {
	return &Model{
		id:    events.ComponentID("detailpane"),
		theme: theme.Default(),
	}
}

// ID returns the component identifier used in emitted events.
func (m *Model) ID() events.ComponentID { return m.id }

// Focus and Blur toggle keyboard handling.
func (m *Model) Focus() { m.focused = true; m.syncInputFocus() }
func (m *Model) Blur()  { m.focused = false; m.syncInputFocus() }

// Editing reports whether the edit form is active.
func (m *Model) Editing() bool { return m.editing }

// BL returns the shown bill of lading, or "".
func (m *Model) BL() string {
	if !m.loaded {
		return ""
	}
	return m.detail.BL
}

// SetDetail replaces the shown arrival and leaves edit mode.
func (m *Model) SetDetail(d arrival.Detail) {
	m.detail = d
	m.loaded = true
	m.editing = false
	m.items = nil
}

// Clear empties the pane.
func (m *Model) Clear() {
	m.detail = arrival.Detail{}
	m.loaded = false
	m.editing = false
	m.items = nil
}

// BeginEdit seeds the edit buffers from the shown arrival. Numeric
// buffers use plain local notation without grouping so they parse back
// to the same values.
func (m *Model) BeginEdit() tea.Cmd {
	if !m.loaded || m.editing {
		return nil
	}
	m.editing = true
	m.focus = 0

	m.date = newInput("2024-03-01", m.detail.Date)
	m.port = newInput("Puerto", m.detail.Port)
	m.notes = newInput("Notas", m.detail.Notes)

	m.items = make([]itemRow, 0, len(m.detail.Items)+1)
	for _, it := range m.detail.Items {
		m.items = append(m.items, itemRow{
			code:        newInput("Código", it.Code),
			description: newInput("Descripción", it.Description),
			meters:      newInput("0", arrival.StripGrouping(arrival.FormatNumber(it.Meters))),
			rolls:       newInput("0", strconv.Itoa(it.Rolls)),
		})
	}
	m.items = append(m.items, blankRow())

	m.seed = m.payload()
	return m.syncInputFocus()
}

// CancelEdit drops the buffers and returns to view mode.
func (m *Model) CancelEdit() {
	m.editing = false
	m.items = nil
}

// Dirty reports whether the buffers differ from the values they were
// seeded with.
func (m *Model) Dirty() bool {
	if !m.editing {
		return false
	}
	return !payloadEqual(m.payload(), m.seed)
}

// Payload returns the save request built from the current buffers.
func (m *Model) Payload() client.SavePayload {
	return m.payload()
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update processes Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if !m.focused || !m.editing {
		return m, nil
	}

	switch key.String() {
	case "tab":
		m.advanceFocus(1)
		return m, m.syncInputFocus()
	case "shift+tab":
		m.advanceFocus(-1)
		return m, m.syncInputFocus()
	case "ctrl+n":
		m.items = append(m.items, blankRow())
		return m, nil
	}

	var cmd tea.Cmd
	if in := m.focusedInput(); in != nil {
		*in, cmd = in.Update(msg)
	}
	return m, cmd
}

// View renders either the read-only detail or the edit form.
func (m *Model) View() string {
	t := m.theme.Detail

	if !m.loaded {
		return t.Frame.Render(m.theme.List.Empty.Render("Selecciona una llegada"))
	}
	if m.editing {
		return t.Frame.Render(m.viewEdit())
	}
	return t.Frame.Render(m.viewRead())
}

func (m *Model) viewRead() string {
	t := m.theme.Detail

	lines := []string{t.Title.Render(m.detail.BL)}
	if meta := arrival.MetaLine(m.detail); meta != "" {
		lines = append(lines, t.Meta.Render(meta))
	}
	lines = append(lines, "")

	if len(m.detail.Items) == 0 {
		lines = append(lines, m.theme.List.Empty.Render(" sin partidas"))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	lines = append(lines, t.Header.Render(itemLine("CODIGO", "DESCRIPCION", "METROS", "ROLLOS")))
	for _, it := range m.detail.Items {
		lines = append(lines, itemLine(it.Code, it.Description,
			arrival.FormatNumber(it.Meters), arrival.FormatCount(it.Rolls)))
	}
	meters, rolls := arrival.Totals(m.detail.Items)
	lines = append(lines, t.Total.Render(itemLine("", "TOTAL",
		arrival.FormatNumber(meters), arrival.FormatCount(rolls))))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *Model) viewEdit() string {
	t := m.theme.Detail

	title := m.detail.BL
	if m.Dirty() {
		title += t.Dirty.Render(" *")
	}
	lines := []string{t.Title.Render(title)}

	lines = append(lines,
		t.Label.Render("Fecha:  ")+m.date.View(),
		t.Label.Render("Puerto: ")+m.port.View(),
		t.Label.Render("Notas:  ")+m.notes.View(),
		"",
		t.Header.Render(itemLine("CODIGO", "DESCRIPCION", "METROS", "ROLLOS")),
	)
	for _, row := range m.items {
		lines = append(lines, itemLine(row.code.View(), row.description.View(),
			row.meters.View(), row.rolls.View()))
	}
	lines = append(lines, "", m.theme.Footer.Help.Render("tab campo • ctrl+n partida • ctrl+s guardar • esc cancelar"))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *Model) payload() client.SavePayload {
	inputs := make([]arrival.ItemInput, 0, len(m.items))
	for _, row := range m.items {
		inputs = append(inputs, arrival.ItemInput{
			Code:        row.code.Value(),
			Description: row.description.Value(),
			Meters:      row.meters.Value(),
			Rolls:       row.rolls.Value(),
		})
	}
	return client.NewSavePayload(
		strings.TrimSpace(m.port.Value()),
		strings.TrimSpace(m.notes.Value()),
		strings.TrimSpace(m.date.Value()),
		arrival.BuildItems(inputs),
	)
}

func (m *Model) fieldCount() int {
	return int(fieldItems) + len(m.items)*4
}

func (m *Model) advanceFocus(delta int) {
	count := m.fieldCount()
	if count == 0 {
		return
	}
	m.focus = (m.focus + count + delta) % count
}

func (m *Model) focusedInput() *textinput.Model {
	switch focusField(m.focus) {
	case fieldDate:
		return &m.date
	case fieldPort:
		return &m.port
	case fieldNotes:
		return &m.notes
	}
	idx := m.focus - int(fieldItems)
	row := idx / 4
	if row < 0 || row >= len(m.items) {
		return nil
	}
	switch idx % 4 {
	case 0:
		return &m.items[row].code
	case 1:
		return &m.items[row].description
	case 2:
		return &m.items[row].meters
	default:
		return &m.items[row].rolls
	}
}

func (m *Model) syncInputFocus() tea.Cmd {
	if !m.editing {
		return nil
	}
	all := []*textinput.Model{&m.date, &m.port, &m.notes}
	for i := range m.items {
		all = append(all, &m.items[i].code, &m.items[i].description,
			&m.items[i].meters, &m.items[i].rolls)
	}
	var cmd tea.Cmd
	for i, in := range all {
		if m.focused && i == m.focus {
			cmd = in.Focus()
		} else {
			in.Blur()
		}
	}
	return cmd
}

func newInput(placeholder, value string) textinput.Model {
	in := textinput.New()
	in.Prompt = ""
	in.Placeholder = placeholder
	in.SetValue(value)
	return in
}

func blankRow() itemRow {
	return itemRow{
		code:        newInput("Código", ""),
		description: newInput("Descripción", ""),
		meters:      newInput("0", ""),
		rolls:       newInput("0", ""),
	}
}

func itemLine(code, description, meters, rolls string) string {
	return padRight(code, 10) + " " + padRight(description, 28) + " " +
		padLeft(meters, 10) + " " + padLeft(rolls, 8)
}

func padRight(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

func padLeft(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return strings.Repeat(" ", width-w) + s
	}
	return s
}

func payloadEqual(a, b client.SavePayload) bool {
	if a.Port != b.Port || a.Notes != b.Notes {
		return false
	}
	if (a.Date == nil) != (b.Date == nil) {
		return false
	}
	if a.Date != nil && *a.Date != *b.Date {
		return false
	}
	if len(a.Items) != len(b.Items) {
		return false
	}
	for i := range a.Items {
		if a.Items[i] != b.Items[i] {
			return false
		}
	}
	return true
}
