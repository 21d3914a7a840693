// Package leaderboardview renders the standings table and the viewing
// player's recent history.
package leaderboardview

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/psen/funcquest/internal/leaderboard"
	"github.com/psen/funcquest/internal/screen"
	"github.com/psen/funcquest/internal/ui/components"
	"github.com/psen/funcquest/internal/ui/theme"
)

const topCount = 10

// LeaderboardScreen shows the board and the player's own standing.
type LeaderboardScreen struct {
	lb     *leaderboard.Manager
	player string
}

var _ screen.Screen = (*LeaderboardScreen)(nil)

// New creates the leaderboard screen.
func New(lb *leaderboard.Manager, player string) *LeaderboardScreen {
	return &LeaderboardScreen{lb: lb, player: player}
}

func (s *LeaderboardScreen) Init() tea.Cmd {
	return nil
}

func (s *LeaderboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return s, nil
}

func (s *LeaderboardScreen) Title() string {
	return "Leaderboard"
}

func (s *LeaderboardScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	entries := s.lb.Top(topCount)

	var lines []string
	header := fmt.Sprintf("    %-15s %8s %6s %6s %7s", "Player", "Score", "Games", "Best", "Level")
	lines = append(lines, lipgloss.NewStyle().Foreground(theme.TextDim).Render(header))

	if len(entries) == 0 {
		lines = append(lines, "", theme.Hint.Render("No games recorded yet — go play!"))
	}

	for i, e := range entries {
		row := fmt.Sprintf("%2d. %-15s %8d %6d %6d %7d",
			i+1, e.PlayerName, e.TotalScore, e.GamesPlayed, e.BestScore, e.MaxLevel)
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if e.PlayerName == s.player {
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		lines = append(lines, style.Render(row))
	}

	board := components.Card(strings.Join(lines, "\n"), cw)

	sections := []string{board}
	if own := s.renderOwnStats(cw); own != "" {
		sections = append(sections, "", own)
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *LeaderboardScreen) renderOwnStats(cw int) string {
	stats, ok := s.lb.Stats(s.player)
	if !ok {
		return ""
	}

	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	accent := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)

	line := dim.Render("Your last "+fmt.Sprintf("%d", stats.RecentGames)+" games:  avg ") +
		accent.Render(fmt.Sprintf("%.0f", stats.RecentAvg)) +
		dim.Render("  best ") +
		accent.Render(fmt.Sprintf("%d", stats.RecentBest))

	return components.Card(line, cw)
}
