package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kmdapp/kmd/internal/config"
	"github.com/kmdapp/kmd/internal/provider"
)

func newTestSpotlight() *Spotlight {
	return NewSpotlight(config.Default())
}

func keyMsg(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func TestSpotlightStartsVisible(t *testing.T) {
	s := newTestSpotlight()
	if !s.Visible() {
		t.Error("surface should start visible")
	}
	if s.Pending() {
		t.Error("surface should start idle")
	}
}

func TestEscHidesAndCancels(t *testing.T) {
	s := newTestSpotlight()
	s.pending = true // as if a request were in flight

	model, _ := s.Update(keyMsg(tea.KeyEsc))
	s = model.(*Spotlight)

	if s.Visible() {
		t.Error("Esc should hide the surface")
	}
	if s.Pending() {
		t.Error("hiding should clear the pending state")
	}
	if s.dispatcher.Busy() {
		t.Error("hiding should cancel the in-flight request")
	}
}

func TestHiddenSurfaceKeys(t *testing.T) {
	s := newTestSpotlight()
	model, _ := s.Update(keyMsg(tea.KeyEsc))
	s = model.(*Spotlight)

	// 's' shows the surface again
	model, _ = s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	s = model.(*Spotlight)
	if !s.Visible() {
		t.Error("'s' should reveal the surface")
	}

	// 'q' from the tray line quits
	model, _ = s.Update(keyMsg(tea.KeyEsc))
	s = model.(*Spotlight)
	_, cmd := s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("'q' should produce a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("'q' should quit the program")
	}
}

func TestToggleKeyHidesAndShows(t *testing.T) {
	s := newTestSpotlight()

	// default combo ctrl+shift+space arrives as ctrl+@ in most terminals
	model, _ := s.Update(keyMsg(tea.KeyCtrlAt))
	s = model.(*Spotlight)
	if s.Visible() {
		t.Error("toggle should hide a visible surface")
	}

	model, _ = s.Update(keyMsg(tea.KeyCtrlAt))
	s = model.(*Spotlight)
	if !s.Visible() {
		t.Error("toggle should reveal a hidden surface")
	}
}

func TestKillPhraseQuits(t *testing.T) {
	s := newTestSpotlight()
	s.input.SetValue("exit")

	_, cmd := s.Update(keyMsg(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("kill phrase should produce a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("kill phrase should quit the program")
	}
	if s.Pending() {
		t.Error("kill phrase must not start a request")
	}
}

func TestEmptySubmitIsNoOp(t *testing.T) {
	s := newTestSpotlight()
	s.input.SetValue("   ")

	model, _ := s.Update(keyMsg(tea.KeyEnter))
	s = model.(*Spotlight)
	if s.Pending() {
		t.Error("blank input must not start a request")
	}
}

func TestFailedResultRendersSentinel(t *testing.T) {
	s := newTestSpotlight()
	s.pending = true
	s.input.Blur()

	failed := provider.Result{
		Err: &provider.Error{
			Kind:     provider.ConnectionUnavailable,
			Provider: "ollama",
			Message:  "Ollama not running. Start with 'ollama serve'",
		},
	}
	model, _ := s.Update(resultMsg(failed))
	s = model.(*Spotlight)

	if s.Pending() {
		t.Error("result delivery should clear the pending state")
	}
	view := s.View()
	if !strings.Contains(view, provider.ErrorSentinel) {
		t.Errorf("view does not render the error sentinel:\n%s", view)
	}
	if !strings.Contains(view, "ollama serve") {
		t.Errorf("view does not render the failure message:\n%s", view)
	}
}

func TestHiddenViewShowsTrayLine(t *testing.T) {
	s := newTestSpotlight()
	model, _ := s.Update(keyMsg(tea.KeyEsc))
	s = model.(*Spotlight)

	view := s.View()
	if !strings.Contains(view, "quit") {
		t.Errorf("tray line is missing its menu:\n%s", view)
	}
}
