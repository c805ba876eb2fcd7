// Package app composes the TUI: month grid and arrival list on the
// left, the detail pane with its inline edit form on the right, and a
// status bar at the bottom.
package app

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/truncate"

	"github.com/puertosur/arribo/pkg/client"
	"github.com/puertosur/arribo/pkg/session"
	"github.com/puertosur/arribo/pkg/tui/components/arrivallist"
	"github.com/puertosur/arribo/pkg/tui/components/confirm"
	"github.com/puertosur/arribo/pkg/tui/components/detailpane"
	"github.com/puertosur/arribo/pkg/tui/components/monthgrid"
	"github.com/puertosur/arribo/pkg/tui/events"
	"github.com/puertosur/arribo/pkg/tui/theme"
)

type focusArea int

const (
	focusGrid focusArea = iota
	focusList
	focusDetail
)

const appID = events.ComponentID("app")

// Model is the root TUI model.
type Model struct {
	client *client.Client
	sess   *session.Session
	theme  theme.Theme

	width  int
	height int

	grid   *monthgrid.Model
	list   *arrivallist.Model
	detail *detailpane.Model
	focus  focusArea

	modal   *confirm.Model
	pending func() tea.Cmd

	loadSeq   int
	detailSeq int

	status    string
	statusErr error
}

// New constructs the root model bound to the given backend client.
func New(c *client.Client) *Model {
	now := time.Now()
	m := &Model{
		client: c,
		theme:  theme.Default(),
		grid:   monthgrid.NewModel(now.Year(), now.Month()),
		list:   arrivallist.NewModel(),
		detail: detailpane.NewModel(),
		status: "Listo",
	}
	m.sess = session.New(m)
	m.grid.Focus()
	return m
}

// Run launches the Bubble Tea program.
func Run(c *client.Client) error {
	p := tea.NewProgram(New(c), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// WarnOnUnload implements session.UnloadWarner. Quit keys consult the
// session state directly, so there is nothing to toggle here.
func (m *Model) WarnOnUnload(active bool) {}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.loadEvents()
}

// Update routes Bubble Tea messages to composed components.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// An open modal captures all keys.
	if m.modal != nil {
		if _, ok := msg.(tea.KeyMsg); ok {
			_, cmd := m.modal.Update(msg)
			return m, cmd
		}
	}

	var cmds []tea.Cmd

	switch v := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = v.Width
		m.height = v.Height
		m.list.SetHeight(maxInt(3, m.height-14))

	case tea.KeyMsg:
		if cmd, handled := m.handleKey(v); handled {
			return m, cmd
		}

	case events.EventsLoadedMsg:
		if v.Seq != m.loadSeq {
			break // superseded by a newer request
		}
		if v.Err != nil {
			m.statusErr = v.Err
			break
		}
		m.statusErr = nil
		m.status = fmt.Sprintf("%d llegadas", len(v.Events))
		m.grid.SetEvents(v.Events)
		m.list.SetEvents(v.Events)

	case events.DetailLoadedMsg:
		if v.Seq != m.detailSeq {
			break // superseded by a newer selection
		}
		if v.Err != nil {
			m.statusErr = v.Err
			break
		}
		m.statusErr = nil
		m.detail.SetDetail(v.Detail)
		m.status = v.BL

	case events.SavedMsg:
		if v.Err != nil {
			m.statusErr = v.Err
			break
		}
		m.statusErr = nil
		m.status = "guardado " + v.BL
		m.sess.EndEdit()
		cmds = append(cmds, m.loadDetail(v.BL), m.loadEvents())

	case events.ArrivalHighlightMsg:
		if !m.sess.Editing() {
			m.status = v.Arrival.Label()
		}

	case events.ArrivalSelectMsg:
		if cmd := m.selectArrival(v.Arrival.BL); cmd != nil {
			cmds = append(cmds, cmd)
		}

	case events.EditRequestMsg:
		if v.BL != "" && !m.sess.Editing() {
			m.sess.BeginEdit(v.BL)
			m.setFocus(focusDetail)
			if cmd := m.detail.BeginEdit(); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}

	case events.ConfirmResultMsg:
		m.modal = nil
		if v.Accepted {
			m.sess.Guard(acceptAll{})
			m.detail.CancelEdit()
			if m.pending != nil {
				if cmd := m.pending(); cmd != nil {
					cmds = append(cmds, cmd)
				}
			}
		}
		m.pending = nil
	}

	for _, c := range []interface {
		Update(tea.Msg) (tea.Model, tea.Cmd)
	}{m.grid, m.list, m.detail} {
		if _, cmd := c.Update(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	if len(cmds) == 0 {
		return m, nil
	}
	return m, tea.Batch(cmds...)
}

// View renders the composed UI.
func (m *Model) View() (string, *tea.Cursor) {
	if m.modal != nil {
		return m.modal.View(), nil
	}

	left := lipgloss.JoinVertical(lipgloss.Left, m.grid.View(), "", m.list.View())
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", m.detail.View())

	return lipgloss.JoinVertical(lipgloss.Left, body, m.footer()), nil
}

func (m *Model) handleKey(key tea.KeyMsg) (tea.Cmd, bool) {
	switch key.String() {
	case "ctrl+c", "q":
		if key.String() == "q" && m.editingInput() {
			return nil, false // plain letter belongs to the input
		}
		if m.sess.Editing() {
			return m.guard(func() tea.Cmd { return tea.Quit }), true
		}
		return tea.Quit, true

	case "tab":
		if m.sess.Editing() {
			return nil, false // tab cycles edit fields
		}
		m.cycleFocus()
		return nil, true

	case "r":
		if m.editingInput() {
			return nil, false
		}
		return m.loadEvents(), true

	case "e":
		if m.editingInput() {
			return nil, false
		}
		if bl := m.detail.BL(); bl != "" && !m.sess.Editing() {
			return events.EditRequestCmd(appID, bl), true
		}
		return nil, true

	case "ctrl+s":
		if m.sess.Editing() {
			return m.save(), true
		}
		return nil, true

	case "esc":
		if m.sess.Editing() {
			bl := m.detail.BL()
			m.sess.Cancel()
			m.detail.CancelEdit()
			m.status = "edición cancelada"
			// Re-fetch so discarded input is replaced by server state.
			return m.loadDetail(bl), true
		}
		return nil, true
	}
	return nil, false
}

func (m *Model) selectArrival(bl string) tea.Cmd {
	load := m.loadDetailPending(bl)
	if m.sess.Editing() {
		return m.guard(load)
	}
	m.sess.Select(bl)
	return load()
}

// guard opens the discard modal and parks the navigation until the
// user answers.
func (m *Model) guard(next func() tea.Cmd) tea.Cmd {
	m.modal = confirm.NewModel(session.DiscardPrompt)
	m.pending = next
	return nil
}

// loadDetailPending defers the sequence bump until the navigation is
// actually allowed to proceed.
func (m *Model) loadDetailPending(bl string) func() tea.Cmd {
	return func() tea.Cmd {
		m.sess.Select(bl)
		return m.loadDetail(bl)
	}
}

func (m *Model) loadEvents() tea.Cmd {
	m.loadSeq++
	seq := m.loadSeq
	c := m.client
	return func() tea.Msg {
		evs, err := c.LoadEvents(context.Background())
		return events.EventsLoadedMsg{Seq: seq, Events: evs, Err: err}
	}
}

func (m *Model) loadDetail(bl string) tea.Cmd {
	m.detailSeq++
	seq := m.detailSeq
	c := m.client
	return func() tea.Msg {
		d, err := c.GetArrival(context.Background(), bl)
		return events.DetailLoadedMsg{Seq: seq, BL: bl, Detail: d, Err: err}
	}
}

func (m *Model) save() tea.Cmd {
	bl := m.detail.BL()
	payload := m.detail.Payload()
	c := m.client
	return func() tea.Msg {
		err := c.SaveArrival(context.Background(), bl, payload)
		return events.SavedMsg{BL: bl, Err: err}
	}
}

func (m *Model) cycleFocus() {
	switch m.focus {
	case focusGrid:
		m.setFocus(focusList)
	case focusList:
		m.setFocus(focusDetail)
	default:
		m.setFocus(focusGrid)
	}
}

func (m *Model) setFocus(area focusArea) {
	m.focus = area
	m.grid.Blur()
	m.list.Blur()
	m.detail.Blur()
	switch area {
	case focusGrid:
		m.grid.Focus()
	case focusList:
		m.list.Focus()
	case focusDetail:
		m.detail.Focus()
	}
}

// editingInput reports whether plain letter keys belong to an edit
// buffer rather than to global shortcuts.
func (m *Model) editingInput() bool {
	return m.sess.Editing() && m.focus == focusDetail
}

func (m *Model) footer() string {
	t := m.theme.Footer

	help := "tab panel • enter abrir • e editar • r recargar • q salir"
	if m.sess.Editing() {
		help = "tab campo • ctrl+s guardar • esc cancelar"
	}

	status := m.status
	style := t.Status
	if m.statusErr != nil {
		status = m.statusErr.Error()
		style = t.Error
	}
	if m.width > 0 {
		status = truncate.String(status, uint(maxInt(1, m.width)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, t.Help.Render(help), style.Render(status))
}

// acceptAll answers every confirmation with yes. The modal already
// collected the real answer.
type acceptAll struct{}

func (acceptAll) Confirm(string) bool { return true }

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
