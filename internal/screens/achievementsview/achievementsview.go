// Package achievementsview lists every achievement with its earned
// state and the player's lifetime counters.
package achievementsview

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/psen/funcquest/internal/achievements"
	"github.com/psen/funcquest/internal/screen"
	"github.com/psen/funcquest/internal/ui/components"
	"github.com/psen/funcquest/internal/ui/theme"
)

// AchievementsScreen shows the badge wall.
type AchievementsScreen struct {
	stats *achievements.PlayerStats
}

var _ screen.Screen = (*AchievementsScreen)(nil)

// New creates the achievements screen.
func New(stats *achievements.PlayerStats) *AchievementsScreen {
	return &AchievementsScreen{stats: stats}
}

func (s *AchievementsScreen) Init() tea.Cmd {
	return nil
}

func (s *AchievementsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return s, nil
}

func (s *AchievementsScreen) Title() string {
	return "Achievements"
}

func (s *AchievementsScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var lines []string
	earned := 0
	for _, a := range achievements.All() {
		if s.stats.Earned[a.ID] {
			earned++
			lines = append(lines, theme.Correct.Render(
				fmt.Sprintf("%s  %-20s %s  (+%d)", a.Icon, a.Name, a.Description, a.Points)))
		} else {
			lines = append(lines, lipgloss.NewStyle().Foreground(theme.TextDim).Render(
				fmt.Sprintf("🔒  %-20s %s  (+%d)", a.Name, a.Description, a.Points)))
		}
	}

	heading := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
		Render(fmt.Sprintf("Earned %d of %d", earned, len(achievements.All())))

	counters := lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		fmt.Sprintf("answered %d · correct %d · best streak %d · quick answers %d",
			s.stats.TotalQuestions, s.stats.TotalCorrect, s.stats.MaxStreak, s.stats.QuickAnswers))

	content := heading + "\n\n" +
		components.Card(strings.Join(lines, "\n"), cw) + "\n\n" + counters

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
