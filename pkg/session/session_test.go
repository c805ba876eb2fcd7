package session

import "testing"

type fakeConfirmer struct {
	answer bool
	asked  int
	prompt string
}

func (f *fakeConfirmer) Confirm(prompt string) bool {
	f.asked++
	f.prompt = prompt
	return f.answer
}

type fakeWarner struct {
	active  bool
	toggles int
}

func (f *fakeWarner) WarnOnUnload(active bool) {
	f.active = active
	f.toggles++
}

func TestSelectWhileViewing(t *testing.T) {
	s := New(nil)
	s.Select("BL1")
	s.Select("BL2")
	if s.Editing() || s.Subject() != "BL2" {
		t.Fatalf("state = editing:%v subject:%q", s.Editing(), s.Subject())
	}
}

func TestGuardWithoutEditProceeds(t *testing.T) {
	s := New(nil)
	c := &fakeConfirmer{}
	if !s.Guard(c) {
		t.Fatal("viewing session must not block navigation")
	}
	if c.asked != 0 {
		t.Fatal("no confirmation should be requested while viewing")
	}
}

func TestGuardDeclinedKeepsEdit(t *testing.T) {
	s := New(nil)
	s.Select("BL1")
	s.BeginEdit("BL1")

	c := &fakeConfirmer{answer: false}
	if s.Guard(c) {
		t.Fatal("declined confirmation must abort navigation")
	}
	if !s.Editing() || s.Subject() != "BL1" {
		t.Fatalf("edit state lost: editing:%v subject:%q", s.Editing(), s.Subject())
	}
	if c.asked != 1 || c.prompt != DiscardPrompt {
		t.Fatalf("confirmer saw %d asks, prompt %q", c.asked, c.prompt)
	}
}

func TestGuardAcceptedDiscards(t *testing.T) {
	s := New(nil)
	s.BeginEdit("BL1")

	if !s.Guard(&fakeConfirmer{answer: true}) {
		t.Fatal("accepted confirmation must let navigation proceed")
	}
	if s.Editing() {
		t.Fatal("edit mode should end after accepted discard")
	}
}

func TestSelectIgnoredWhileEditing(t *testing.T) {
	s := New(nil)
	s.BeginEdit("BL1")
	s.Select("BL2")
	if s.Subject() != "BL1" {
		t.Fatalf("subject changed under an active edit: %q", s.Subject())
	}
}

func TestCancelNeedsNoConfirmation(t *testing.T) {
	s := New(nil)
	s.BeginEdit("BL1")
	s.Cancel()
	if s.Editing() {
		t.Fatal("cancel must always leave edit mode")
	}
}

func TestSaveSuccessEndsEdit(t *testing.T) {
	s := New(nil)
	s.BeginEdit("BL1")
	s.EndEdit()
	if s.Editing() || s.Subject() != "BL1" {
		t.Fatalf("state after save = editing:%v subject:%q", s.Editing(), s.Subject())
	}
}

func TestUnloadWarnerFollowsTransitions(t *testing.T) {
	w := &fakeWarner{}
	s := New(w)

	s.BeginEdit("BL1")
	if !w.active {
		t.Fatal("warner should be armed while editing")
	}
	s.Guard(&fakeConfirmer{answer: true})
	if w.active {
		t.Fatal("warner should disarm once the edit is discarded")
	}
	if w.toggles != 2 {
		t.Fatalf("warner toggled %d times, want 2", w.toggles)
	}
}
