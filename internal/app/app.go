// Package app owns the root Bubble Tea model: the header/footer frame,
// global key handling, and the wiring of shared services into screens.
package app

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/sirupsen/logrus"

	"github.com/psen/funcquest/internal/achievements"
	"github.com/psen/funcquest/internal/game"
	"github.com/psen/funcquest/internal/leaderboard"
	"github.com/psen/funcquest/internal/ratfunc"
	"github.com/psen/funcquest/internal/router"
	"github.com/psen/funcquest/internal/scoring"
	"github.com/psen/funcquest/internal/screen"
	"github.com/psen/funcquest/internal/screens/home"
	"github.com/psen/funcquest/internal/screens/welcome"
	"github.com/psen/funcquest/internal/store"
	"github.com/psen/funcquest/internal/ui/layout"
)

// playerState is the per-run player context, filled in once the welcome
// screen collects a name.
type playerState struct {
	name  string
	stats *achievements.PlayerStats
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	player *playerState
	width  int
	height int
}

// newAppModel wires shared services and opens on the welcome screen.
func newAppModel(events store.EventRepo, lb *leaderboard.Manager) AppModel {
	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	dealer := game.NewDealer(rng)
	player := &playerState{stats: achievements.NewPlayerStats()}

	welcomeScreen := welcome.New(func(name string) screen.Screen {
		player.name = name
		player.stats = seedStats(events, name)
		return home.New(dealer, rng, events, lb, name, player.stats)
	})

	return AppModel{
		router: router.New(welcomeScreen),
		player: player,
	}
}

// seedStats primes a fresh PlayerStats from persisted answer history so
// levels and badge progress carry across sessions.
func seedStats(events store.EventRepo, player string) *achievements.PlayerStats {
	stats := achievements.NewPlayerStats()
	if events == nil {
		return stats
	}

	ctx := context.Background()
	sum, err := events.Summary(ctx, player)
	if err != nil {
		logrus.WithError(err).Warn("failed to load player history")
		return stats
	}
	stats.TotalQuestions = sum.TotalAnswers
	stats.TotalCorrect = sum.TotalCorrect
	stats.TotalScore = sum.TotalScore
	stats.TotalTime = time.Duration(sum.AvgTimeMS*float64(sum.TotalAnswers)) * time.Millisecond

	if byKind, err := events.ByKind(ctx, player); err == nil {
		for _, ks := range byKind {
			kind := ratfunc.FeatureKind(ks.Kind)
			stats.QuestionsByKind[kind] += ks.Total
			stats.CorrectByKind[kind] += ks.Correct
			switch kind {
			case ratfunc.KindVerticalAsymptotes, ratfunc.KindHorizontalAsymptote:
				stats.AsymptotesCorrect += ks.Correct
			case ratfunc.KindXIntercepts:
				stats.InterceptsCorrect += ks.Correct
			case ratfunc.KindHoles:
				stats.HolesCorrect += ks.Correct
			}
		}
	}

	stats.CurrentLevel = scoring.LevelFromScore(stats.TotalScore)
	stats.Reconcile()
	return stats
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	score, level := 0, 1
	if m.player != nil && m.player.stats != nil {
		score = m.player.stats.TotalScore
		level = m.player.stats.CurrentLevel
	}
	header := layout.RenderHeader(title, score, level, m.width)

	var footerHints []layout.KeyHint
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	}
	if footerHints == nil {
		if m.router.Depth() > 1 {
			footerHints = []layout.KeyHint{
				{Key: "Esc", Description: "Back"},
				{Key: "Ctrl+C", Description: "Quit"},
			}
		} else {
			footerHints = []layout.KeyHint{
				{Key: "↑↓", Description: "Navigate"},
				{Key: "Enter", Description: "Select"},
				{Key: "Ctrl+C", Description: "Quit"},
			}
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program with the given backing services.
func Run(events store.EventRepo, lb *leaderboard.Manager) error {
	p := tea.NewProgram(newAppModel(events, lb))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
