// Package welcome shows the splash screen and asks for a player name
// before handing off to the home screen.
package welcome

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/psen/funcquest/internal/router"
	"github.com/psen/funcquest/internal/screen"
	"github.com/psen/funcquest/internal/ui/components"
	"github.com/psen/funcquest/internal/ui/theme"
)

const maxNameLen = 20

// WelcomeScreen collects the player name and transitions to the screen
// produced by the home factory.
type WelcomeScreen struct {
	homeFactory  func(player string) screen.Screen
	input        components.TextInput
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen. homeFactory receives the entered name.
func New(homeFactory func(player string) screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		homeFactory: homeFactory,
		input:       components.NewTextInput("your name", maxNameLen),
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return w.input.Init()
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		name := strings.TrimSpace(w.input.Value())
		if name == "" {
			w.input.Submit(false)
			return w, nil
		}
		return w, w.transition(name)
	}

	var cmd tea.Cmd
	w.input, cmd = w.input.Update(msg)
	return w, cmd
}

func (w *WelcomeScreen) transition(name string) tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	homeScreen := w.homeFactory(name)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: homeScreen}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, RenderBanner(width))
	sections = append(sections, "")

	tagline := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render("Asymptotes, holes, and intercepts — how well do you know your graphs?")
	sections = append(sections, tagline, "", "")

	prompt := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("Who's playing?")
	sections = append(sections, prompt)
	sections = append(sections, w.input.View())

	sections = append(sections, "")
	hint := theme.Hint.Render("type a name and press Enter")
	sections = append(sections, hint)

	content := strings.Join(sections, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
