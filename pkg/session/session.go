// Package session tracks whether a detail view is in view mode or
// edit mode and mediates unsaved-change confirmation before any
// navigation. Exactly one arrival may be in edit mode at a time.
package session

// Confirmer asks the user whether unsaved edits may be discarded. The
// CLI answers through a prompt, the TUI through a modal overlay, and
// tests through deterministic fakes.
type Confirmer interface {
	Confirm(prompt string) bool
}

// UnloadWarner is toggled whenever edit mode starts or ends so the
// host surface can intercept teardown (quit keys, window close) while
// edits are pending.
type UnloadWarner interface {
	WarnOnUnload(active bool)
}

// DiscardPrompt is the question put to the user before edits are
// thrown away.
const DiscardPrompt = "Tienes cambios sin guardar. ¿Deseas salir de la edición?"

// Session is the edit-mode state machine. The zero value is viewing
// with no subject.
type Session struct {
	editing bool
	subject string
	warner  UnloadWarner
}

// New returns a viewing session. warner may be nil.
func New(warner UnloadWarner) *Session {
	return &Session{warner: warner}
}

// Editing reports whether an edit is in progress.
func (s *Session) Editing() bool { return s.editing }

// Subject returns the identifier being viewed or edited.
func (s *Session) Subject() string { return s.subject }

// Select switches the viewed subject. Callers must Guard first when an
// edit may be active; selecting while editing is a programming error
// and is ignored.
func (s *Session) Select(id string) {
	if s.editing {
		return
	}
	s.subject = id
}

// BeginEdit enters edit mode for the given subject.
func (s *Session) BeginEdit(id string) {
	s.editing = true
	s.subject = id
	s.warn()
}

// EndEdit leaves edit mode after a successful save. The subject stays
// selected.
func (s *Session) EndEdit() {
	s.editing = false
	s.warn()
}

// Cancel leaves edit mode discarding edits. Cancel is the explicit
// discard action, so no confirmation is involved.
func (s *Session) Cancel() {
	s.editing = false
	s.warn()
}

// Guard resolves a navigation attempt. When no edit is active it
// proceeds immediately. Otherwise the confirmer decides: accepting the
// discard ends the edit and lets the navigation continue; declining
// keeps the edit (and its unsaved inputs) untouched and reports false.
func (s *Session) Guard(c Confirmer) bool {
	if !s.editing {
		return true
	}
	if c == nil || !c.Confirm(DiscardPrompt) {
		return false
	}
	s.editing = false
	s.warn()
	return true
}

func (s *Session) warn() {
	if s.warner != nil {
		s.warner.WarnOnUnload(s.editing)
	}
}
