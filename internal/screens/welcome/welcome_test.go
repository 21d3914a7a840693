package welcome

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/psen/funcquest/internal/router"
	"github.com/psen/funcquest/internal/screen"
)

// stubScreen is a minimal screen implementation for testing.
type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "home" }
func (s *stubScreen) Title() string                           { return "Home" }

func newTestWelcome() (*WelcomeScreen, *[]string) {
	var names []string
	factory := func(player string) screen.Screen {
		names = append(names, player)
		return &stubScreen{}
	}
	return New(factory), &names
}

func typeName(w *WelcomeScreen, name string) {
	var s screen.Screen = w
	for _, r := range name {
		s, _ = s.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func TestEnterWithoutNameDoesNotTransition(t *testing.T) {
	w, names := newTestWelcome()

	_, cmd := w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Error("empty name should not produce a command")
	}
	if len(*names) != 0 {
		t.Errorf("factory should not be called, got %v", *names)
	}
}

func TestEnterWithNameEmitsReplace(t *testing.T) {
	w, names := newTestWelcome()

	typeName(w, "ada")
	_, cmd := w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command after entering a name")
	}

	msg := cmd()
	replaceMsg, ok := msg.(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", msg)
	}
	if replaceMsg.Screen == nil {
		t.Error("replace screen should not be nil")
	}
	if len(*names) != 1 || (*names)[0] != "ada" {
		t.Errorf("factory calls = %v, want [ada]", *names)
	}
}

func TestNameIsTrimmed(t *testing.T) {
	w, names := newTestWelcome()

	typeName(w, "  ada ")
	w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if len(*names) != 1 || (*names)[0] != "ada" {
		t.Errorf("factory calls = %v, want [ada]", *names)
	}
}

func TestFactoryCalledOnce(t *testing.T) {
	w, names := newTestWelcome()

	typeName(w, "ada")
	w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	_, cmd := w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Error("second enter should not produce a command")
	}
	if len(*names) != 1 {
		t.Errorf("factory should be called exactly once, got %d", len(*names))
	}
}

func TestTitleEmpty(t *testing.T) {
	w, _ := newTestWelcome()
	if w.Title() != "" {
		t.Errorf("expected empty title, got %q", w.Title())
	}
}
