// Package events defines the typed messages exchanged between TUI
// components and the root model.
package events

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea/v2"

	"github.com/puertosur/arribo/pkg/arrival"
)

// ComponentID uniquely identifies a component instance emitting events.
type ComponentID string

// ArrivalRef captures the metadata required to identify an arrival in
// cross-component events.
type ArrivalRef struct {
	BL    string
	Title string
	Date  string
	Port  string
}

// Label returns a human-friendly identifier for the arrival.
func (r ArrivalRef) Label() string {
	if r.Title != "" {
		return r.Title
	}
	return r.BL
}

// ArrivalHighlightMsg is emitted when an arrival is highlighted
// (focused) within navigation components.
type ArrivalHighlightMsg struct {
	Component ComponentID
	Arrival   ArrivalRef
}

// Describe renders the highlight in a human-friendly format for logs.
func (m ArrivalHighlightMsg) Describe() string {
	return fmt.Sprintf(`bl:%q date:%q`, m.Arrival.Label(), m.Arrival.Date)
}

// ArrivalHighlightCmd wraps ArrivalHighlightMsg in a tea.Cmd.
func ArrivalHighlightCmd(component ComponentID, ref ArrivalRef) tea.Cmd {
	return func() tea.Msg {
		return ArrivalHighlightMsg{Component: component, Arrival: ref}
	}
}

// ArrivalSelectMsg is emitted when the user activates a highlighted
// arrival (e.g. presses Enter).
type ArrivalSelectMsg struct {
	Component ComponentID
	Arrival   ArrivalRef
}

// Describe renders the selection in a human-friendly format for logs.
func (m ArrivalSelectMsg) Describe() string {
	return fmt.Sprintf(`bl:%q date:%q`, m.Arrival.Label(), m.Arrival.Date)
}

// ArrivalSelectCmd wraps ArrivalSelectMsg in a tea.Cmd.
func ArrivalSelectCmd(component ComponentID, ref ArrivalRef) tea.Cmd {
	return func() tea.Msg {
		return ArrivalSelectMsg{Component: component, Arrival: ref}
	}
}

// EventsLoadedMsg carries the result of a calendar fetch. Seq ties the
// response to the request that started it; stale responses are dropped
// by the root model.
type EventsLoadedMsg struct {
	Seq    int
	Events []arrival.Event
	Err    error
}

// Describe renders the load result for logs.
func (m EventsLoadedMsg) Describe() string {
	if m.Err != nil {
		return fmt.Sprintf(`seq:%d err:%q`, m.Seq, m.Err)
	}
	return fmt.Sprintf(`seq:%d events:%d`, m.Seq, len(m.Events))
}

// DetailLoadedMsg carries the result of an arrival detail fetch.
type DetailLoadedMsg struct {
	Seq    int
	BL     string
	Detail arrival.Detail
	Err    error
}

// Describe renders the load result for logs.
func (m DetailLoadedMsg) Describe() string {
	if m.Err != nil {
		return fmt.Sprintf(`seq:%d bl:%q err:%q`, m.Seq, m.BL, m.Err)
	}
	return fmt.Sprintf(`seq:%d bl:%q items:%d`, m.Seq, m.BL, len(m.Detail.Items))
}

// SavedMsg announces the outcome of a save request.
type SavedMsg struct {
	Seq int
	BL  string
	Err error
}

// Describe renders the save outcome for logs.
func (m SavedMsg) Describe() string {
	if m.Err != nil {
		return fmt.Sprintf(`bl:%q err:%q`, m.BL, m.Err)
	}
	return fmt.Sprintf(`bl:%q saved`, m.BL)
}

// EditRequestMsg asks the root model to put the detail pane in edit
// mode for the given arrival.
type EditRequestMsg struct {
	Component ComponentID
	BL        string
}

// Describe renders the edit request for logs.
func (m EditRequestMsg) Describe() string {
	return fmt.Sprintf(`component:%q bl:%q`, m.Component, m.BL)
}

// EditRequestCmd wraps EditRequestMsg in a tea.Cmd.
func EditRequestCmd(component ComponentID, bl string) tea.Cmd {
	return func() tea.Msg {
		return EditRequestMsg{Component: component, BL: bl}
	}
}

// ConfirmResultMsg reports the answer given to a confirmation modal.
type ConfirmResultMsg struct {
	Component ComponentID
	Accepted  bool
}

// Describe renders the confirmation answer for logs.
func (m ConfirmResultMsg) Describe() string {
	return fmt.Sprintf(`component:%q accepted:%t`, m.Component, m.Accepted)
}

// ConfirmResultCmd wraps ConfirmResultMsg in a tea.Cmd.
func ConfirmResultCmd(component ComponentID, accepted bool) tea.Cmd {
	return func() tea.Msg {
		return ConfirmResultMsg{Component: component, Accepted: accepted}
	}
}
