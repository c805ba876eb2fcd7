package app

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/muesli/reflow/ansi"

	"github.com/puertosur/arribo/pkg/arrival"
	"github.com/puertosur/arribo/pkg/tui/events"
)

func stripANSIString(s string) string {
	var b strings.Builder
	ansiSeq := false
	for _, r := range s {
		if r == ansi.Marker {
			ansiSeq = true
			continue
		}
		if ansiSeq {
			if ansi.IsTerminator(r) {
				ansiSeq = false
			}
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func loadedDetail(m *Model) {
	m.detail.SetDetail(arrival.Detail{
		BL:   "BL1",
		Date: "2024-03-01",
		Port: "Valparaíso",
	})
}

func beginEdit(t *testing.T, m *Model) {
	t.Helper()
	loadedDetail(m)
	_, cmd := m.Update(tea.KeyPressMsg{Text: "e", Code: 'e'})
	if cmd == nil {
		t.Fatal("pressing e should request an edit")
	}
	m.Update(cmd())
	if !m.sess.Editing() {
		t.Fatal("expected edit mode after pressing e")
	}
}

func TestStaleEventsResponseIsDropped(t *testing.T) {
	m := New(nil)
	m.loadEvents() // seq 1
	m.loadEvents() // seq 2, supersedes 1

	stale := []arrival.Event{{ID: "STALE", Title: "STALE", Date: "2024-01-01"}}
	m.Update(events.EventsLoadedMsg{Seq: 1, Events: stale})
	if _, ok := m.list.Highlighted(); ok {
		t.Fatal("stale response must not populate the list")
	}

	fresh := []arrival.Event{{ID: "FRESH", Title: "FRESH", Date: "2024-02-01"}}
	m.Update(events.EventsLoadedMsg{Seq: 2, Events: fresh})
	ref, ok := m.list.Highlighted()
	if !ok || ref.BL != "FRESH" {
		t.Fatalf("current response not applied, highlighted %v", ref)
	}
}

func TestStaleDetailResponseIsDropped(t *testing.T) {
	m := New(nil)
	m.loadDetail("A") // seq 1
	m.loadDetail("B") // seq 2

	m.Update(events.DetailLoadedMsg{Seq: 1, BL: "A", Detail: arrival.Detail{BL: "A"}})
	if got := m.detail.BL(); got != "" {
		t.Fatalf("stale detail applied: %q", got)
	}

	m.Update(events.DetailLoadedMsg{Seq: 2, BL: "B", Detail: arrival.Detail{BL: "B"}})
	if got := m.detail.BL(); got != "B" {
		t.Fatalf("detail = %q, want B", got)
	}
}

func TestQuitWhileEditingNeedsConfirmation(t *testing.T) {
	m := New(nil)
	beginEdit(t, m)

	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd != nil {
		t.Fatal("quit must be parked behind the confirmation modal")
	}
	if m.modal == nil {
		t.Fatal("expected the discard modal to open")
	}

	m.Update(events.ConfirmResultMsg{Accepted: false})
	if m.modal != nil {
		t.Fatal("declining should close the modal")
	}
	if !m.sess.Editing() {
		t.Fatal("declining must keep the edit alive")
	}
}

func TestQuitConfirmedDiscardsAndQuits(t *testing.T) {
	m := New(nil)
	beginEdit(t, m)

	m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	_, cmd := m.Update(events.ConfirmResultMsg{Accepted: true})
	if m.sess.Editing() {
		t.Fatal("accepting must discard the edit")
	}
	if cmd == nil {
		t.Fatal("accepting must release the parked quit")
	}
}

func TestSelectWhileEditingIsGuarded(t *testing.T) {
	m := New(nil)
	beginEdit(t, m)

	m.Update(events.ArrivalSelectMsg{Arrival: events.ArrivalRef{BL: "BL2"}})
	if m.modal == nil {
		t.Fatal("selecting another arrival should open the modal")
	}
	if m.sess.Subject() != "BL1" {
		t.Fatalf("subject changed before confirmation: %q", m.sess.Subject())
	}

	_, cmd := m.Update(events.ConfirmResultMsg{Accepted: true})
	if cmd == nil {
		t.Fatal("accepting should start the parked detail load")
	}
	if m.sess.Subject() != "BL2" {
		t.Fatalf("subject = %q, want BL2", m.sess.Subject())
	}
}

func TestEscapeCancelsEditWithoutModal(t *testing.T) {
	m := New(nil)
	beginEdit(t, m)

	m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if m.sess.Editing() {
		t.Fatal("esc is the explicit cancel, no confirmation expected")
	}
	if m.modal != nil {
		t.Fatal("esc must not open the modal")
	}
}

func TestSaveSuccessEndsEditAndReloads(t *testing.T) {
	m := New(nil)
	beginEdit(t, m)

	_, cmd := m.Update(events.SavedMsg{BL: "BL1"})
	if m.sess.Editing() {
		t.Fatal("successful save must end the edit")
	}
	if cmd == nil {
		t.Fatal("successful save should reload detail and events")
	}
	if !strings.Contains(m.status, "BL1") {
		t.Fatalf("status = %q", m.status)
	}
}

func TestSaveFailureKeepsEditing(t *testing.T) {
	m := New(nil)
	beginEdit(t, m)

	m.Update(events.SavedMsg{BL: "BL1", Err: errors.New("puerto inválido")})
	if !m.sess.Editing() {
		t.Fatal("failed save must keep the edit so inputs are not lost")
	}
	if m.statusErr == nil {
		t.Fatal("failed save should surface the error")
	}
}

func TestEditRequestIgnoredWhileEditing(t *testing.T) {
	m := New(nil)
	beginEdit(t, m)

	m.Update(events.EditRequestMsg{BL: "BL2"})
	if m.sess.Subject() != "BL1" {
		t.Fatalf("subject = %q, a second edit request must not steal the session", m.sess.Subject())
	}
}

func TestHighlightShowsInStatus(t *testing.T) {
	m := New(nil)
	m.Update(events.ArrivalHighlightMsg{Arrival: events.ArrivalRef{BL: "BL9", Title: "BL9", Date: "2024-03-09"}})
	if m.status != "BL9" {
		t.Fatalf("status = %q, want the highlighted arrival", m.status)
	}

	beginEdit(t, m)
	m.Update(events.ArrivalHighlightMsg{Arrival: events.ArrivalRef{BL: "BL2", Title: "BL2"}})
	if m.status == "BL2" {
		t.Fatal("highlights must not clobber the status while editing")
	}
}

func TestFooterTruncatesLongErrors(t *testing.T) {
	m := New(nil)
	m.width = 24
	m.statusErr = errors.New(strings.Repeat("x", 200))

	for _, line := range strings.Split(stripANSIString(m.footer()), "\n") {
		if len([]rune(line)) > 80 {
			t.Fatalf("footer line too long (%d runes): %q", len([]rune(line)), line)
		}
	}
	if !strings.Contains(stripANSIString(m.footer()), "x") {
		t.Fatal("error text missing from footer")
	}
}
