// Package home is the mode-select hub shown after the welcome screen.
package home

import (
	"fmt"
	"math/rand/v2"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/psen/funcquest/internal/achievements"
	"github.com/psen/funcquest/internal/game"
	"github.com/psen/funcquest/internal/leaderboard"
	"github.com/psen/funcquest/internal/router"
	"github.com/psen/funcquest/internal/screen"
	"github.com/psen/funcquest/internal/screens/achievementsview"
	"github.com/psen/funcquest/internal/screens/leaderboardview"
	"github.com/psen/funcquest/internal/screens/multiplayer"
	"github.com/psen/funcquest/internal/screens/practice"
	"github.com/psen/funcquest/internal/screens/timed"
	"github.com/psen/funcquest/internal/store"
	"github.com/psen/funcquest/internal/ui/components"
	"github.com/psen/funcquest/internal/ui/theme"
)

// HomeScreen is the main mode-select screen.
type HomeScreen struct {
	menu   components.Menu
	player string
	stats  *achievements.PlayerStats
	lb     *leaderboard.Manager
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a HomeScreen wired to the shared services.
func New(dealer *game.Dealer, rng *rand.Rand, events store.EventRepo, lb *leaderboard.Manager, player string, stats *achievements.PlayerStats) *HomeScreen {
	items := []components.MenuItem{
		{Label: "PRACTICE", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: practice.New(dealer, events, lb, player, stats),
				}
			}
		}},
		{Label: "TIMED CHALLENGE", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: timed.New(dealer, rng, events, lb, player, stats),
				}
			}
		}},
		{Label: "MULTIPLAYER", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: multiplayer.New(dealer, rng, events, lb, player, stats),
				}
			}
		}},
		{Label: "LEADERBOARD", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: leaderboardview.New(lb, player),
				}
			}
		}},
		{Label: "ACHIEVEMENTS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: achievementsview.New(stats),
				}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:   components.NewMenu(items),
		player: player,
		stats:  stats,
		lb:     lb,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	greeting := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render(fmt.Sprintf("Welcome back, %s!", h.player))

	statsCard := components.Card(h.renderStats(), cw)
	menuCard := components.HighlightCard(h.menu.View(), cw)

	content := strings.Join([]string{greeting, "", statsCard, "", menuCard}, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) renderStats() string {
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	accent := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)

	score := h.stats.TotalScore
	level := h.stats.CurrentLevel

	rankStr := "unranked"
	if h.lb != nil {
		if rank, ok := h.lb.Rank(h.player); ok {
			rankStr = fmt.Sprintf("#%d", rank)
		}
	}

	return dim.Render("Score ") + accent.Render(fmt.Sprintf("%d", score)) +
		dim.Render("   Level ") + accent.Render(fmt.Sprintf("%d", level)) +
		dim.Render("   Rank ") + accent.Render(rankStr)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
