// Package practice is the endless practice mode screen: pick a
// difficulty and a feature focus, then answer questions until you stop.
package practice

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/sirupsen/logrus"

	"github.com/psen/funcquest/internal/achievements"
	"github.com/psen/funcquest/internal/game"
	"github.com/psen/funcquest/internal/leaderboard"
	"github.com/psen/funcquest/internal/ratfunc"
	"github.com/psen/funcquest/internal/screen"
	"github.com/psen/funcquest/internal/store"
	"github.com/psen/funcquest/internal/ui/components"
	"github.com/psen/funcquest/internal/ui/layout"
	"github.com/psen/funcquest/internal/ui/theme"
)

type phase int

const (
	phaseDifficulty phase = iota
	phaseKind
	phaseQuestion
	phaseFeedback
	phaseSummary
)

// feedback holds the outcome of the last answer for the feedback view.
type feedback struct {
	result game.Result
	chosen string
}

// PracticeScreen runs the endless practice loop.
type PracticeScreen struct {
	dealer *game.Dealer
	events store.EventRepo
	lb     *leaderboard.Manager
	player string
	stats  *achievements.PlayerStats

	phase      phase
	difficulty int
	kind       ratfunc.FeatureKind

	diffMenu components.Menu
	kindMenu components.Menu

	run           *game.Practice
	choice        components.MultiChoice
	questionStart time.Time
	last          feedback
	recorded      bool
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)

// New creates a practice screen in the difficulty-select phase.
func New(dealer *game.Dealer, events store.EventRepo, lb *leaderboard.Manager, player string, stats *achievements.PlayerStats) *PracticeScreen {
	s := &PracticeScreen{
		dealer: dealer,
		events: events,
		lb:     lb,
		player: player,
		stats:  stats,
	}
	s.diffMenu = components.NewMenu(difficultyItems(s))
	s.kindMenu = components.NewMenu(kindItems(s))
	return s
}

var difficultyLabels = []string{
	"1 — Linear warm-up",
	"2 — Two factors",
	"3 — Cubics appear",
	"4 — Crowded graphs",
	"5 — Full chaos",
}

func difficultyItems(s *PracticeScreen) []components.MenuItem {
	items := make([]components.MenuItem, 0, len(difficultyLabels))
	for i, label := range difficultyLabels {
		level := i + 1
		items = append(items, components.MenuItem{
			Label: label,
			Action: func() tea.Cmd {
				s.difficulty = level
				s.phase = phaseKind
				return nil
			},
		})
	}
	return items
}

func kindItems(s *PracticeScreen) []components.MenuItem {
	kinds := []ratfunc.FeatureKind{
		ratfunc.KindRandom,
		ratfunc.KindVerticalAsymptotes,
		ratfunc.KindHorizontalAsymptote,
		ratfunc.KindXIntercepts,
		ratfunc.KindHoles,
	}
	items := make([]components.MenuItem, 0, len(kinds))
	for _, k := range kinds {
		kind := k
		items = append(items, components.MenuItem{
			Label: kind.DisplayName(),
			Action: func() tea.Cmd {
				s.kind = kind
				s.startRun()
				return nil
			},
		})
	}
	return items
}

func (s *PracticeScreen) startRun() {
	s.run = game.NewPractice(s.dealer, s.player, s.difficulty, s.kind, s.stats)
	s.nextQuestion()
}

func (s *PracticeScreen) nextQuestion() {
	round := s.run.Current()
	s.choice = components.NewMultiChoice(
		round.Question.Prompt,
		round.Question.Choices,
		correctIndex(round),
	)
	s.questionStart = time.Now()
	s.phase = phaseQuestion
}

func correctIndex(round game.Round) int {
	for i, c := range round.Question.Choices {
		if c == round.Question.Answer {
			return i
		}
	}
	return 0
}

func (s *PracticeScreen) Init() tea.Cmd {
	return nil
}

func (s *PracticeScreen) Title() string {
	return "Practice"
}

func (s *PracticeScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseQuestion:
		return []layout.KeyHint{
			{Key: "1-4/Enter", Description: "Answer"},
			{Key: "E", Description: "End run"},
			{Key: "Esc", Description: "Back"},
		}
	case phaseFeedback:
		return []layout.KeyHint{
			{Key: "any key", Description: "Next question"},
			{Key: "E", Description: "End run"},
		}
	case phaseSummary:
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back to menu"},
		}
	default:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Esc", Description: "Back"},
		}
	}
}

func (s *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch s.phase {
	case phaseDifficulty:
		var cmd tea.Cmd
		s.diffMenu, cmd = s.diffMenu.Update(msg)
		return s, cmd

	case phaseKind:
		var cmd tea.Cmd
		s.kindMenu, cmd = s.kindMenu.Update(msg)
		return s, cmd

	case phaseQuestion:
		if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "e" {
			s.finishRun()
			return s, nil
		}
		var cmd tea.Cmd
		s.choice, cmd = s.choice.Update(msg)
		if s.choice.Submitted {
			return s, s.submit()
		}
		return s, cmd

	case phaseFeedback:
		if kmsg, ok := msg.(tea.KeyMsg); ok {
			if kmsg.String() == "e" {
				s.finishRun()
				return s, nil
			}
			s.nextQuestion()
		}
		return s, nil
	}

	return s, nil
}

// submit scores the chosen answer and persists the attempt.
func (s *PracticeScreen) submit() tea.Cmd {
	chosen := s.choice.Chosen()
	timeTaken := time.Since(s.questionStart)
	round := s.run.Current()

	res := s.run.Submit(chosen, timeTaken)
	s.last = feedback{result: res, chosen: chosen}
	s.phase = phaseFeedback

	return appendEvent(s.events, store.AnswerEvent{
		Player:     s.player,
		Mode:       "practice",
		Kind:       string(round.Question.Kind),
		Difficulty: round.Difficulty,
		Correct:    res.Correct,
		TimeTaken:  timeTaken,
		Score:      res.Points,
	})
}

// appendEvent persists one answer in the background; failures are
// logged, never surfaced mid-game.
func appendEvent(events store.EventRepo, ev store.AnswerEvent) tea.Cmd {
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		if err := events.Append(context.Background(), ev); err != nil {
			logrus.WithError(err).Warn("failed to persist answer")
		}
		return nil
	}
}

// finishRun records the run on the leaderboard and shows the summary.
func (s *PracticeScreen) finishRun() {
	if !s.recorded && s.lb != nil && s.run != nil && s.run.Answered > 0 {
		s.lb.UpdateScore(s.player, s.run.Score, s.stats.CurrentLevel, "practice")
		s.recorded = true
	}
	s.phase = phaseSummary
}

func (s *PracticeScreen) View(width, height int) string {
	switch s.phase {
	case phaseDifficulty:
		return s.renderMenuPhase(width, height, "Pick a difficulty", s.diffMenu)
	case phaseKind:
		return s.renderMenuPhase(width, height, "What do you want to drill?", s.kindMenu)
	case phaseQuestion:
		return s.renderQuestion(width, height)
	case phaseFeedback:
		return s.renderFeedback(width, height)
	default:
		return s.renderSummary(width, height)
	}
}

func (s *PracticeScreen) renderMenuPhase(width, height int, title string, menu components.Menu) string {
	cw := components.ContentWidth(width)
	heading := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(title)
	content := heading + "\n\n" + components.HighlightCard(menu.View(), cw)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *PracticeScreen) renderQuestion(width, height int) string {
	var b strings.Builder

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s · difficulty %d", s.kind.DisplayName(), s.difficulty))

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Q %d   ✓ %d   streak %d   %d pts",
			s.run.Answered+1, s.run.Correct, s.run.Streak, s.run.Score))

	b.WriteString(infoLine(infoLeft, infoRight, width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(s.choice.View()))

	return b.String()
}

func (s *PracticeScreen) renderFeedback(width, height int) string {
	return renderResult(s.last, width, height)
}

func (s *PracticeScreen) renderSummary(width, height int) string {
	cw := components.ContentWidth(width)

	heading := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("Run complete!")

	var lines []string
	if s.run != nil {
		lines = append(lines,
			fmt.Sprintf("Questions   %d", s.run.Answered),
			fmt.Sprintf("Correct     %d (%.0f%%)", s.run.Correct, s.run.Accuracy()*100),
			fmt.Sprintf("Score       %d", s.run.Score),
		)
	}
	body := lipgloss.NewStyle().Foreground(theme.Text).Render(strings.Join(lines, "\n"))

	content := heading + "\n\n" + components.Card(body, cw)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// infoLine lays out a left and right fragment across the width.
func infoLine(left, right string, width int) string {
	pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if pad < 1 {
		return left
	}
	return left + strings.Repeat(" ", pad) + right
}

// renderResult shows the outcome card shared by the feedback phases.
func renderResult(f feedback, width, height int) string {
	cw := components.ContentWidth(width)

	var headline string
	if f.result.Correct {
		headline = theme.Correct.Render(fmt.Sprintf("Correct!  +%d points", f.result.Points))
	} else {
		headline = theme.Incorrect.Render("Not quite.") + "\n" +
			lipgloss.NewStyle().Foreground(theme.Text).Render("Answer: "+f.result.Answer)
	}

	explanation := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Width(cw - 6).
		Render(f.result.Explanation)

	sections := []string{headline, "", explanation}

	for _, a := range f.result.Unlocked {
		sections = append(sections, "",
			lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).
				Render(fmt.Sprintf("%s  Achievement: %s  (+%d)", a.Icon, a.Name, a.Points)))
	}

	content := components.Card(strings.Join(sections, "\n"), cw)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
