// Package timed is the race-the-clock mode screen: blitz, sprint, or
// marathon, with a fixed question set and a countdown.
package timed

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/sirupsen/logrus"

	"github.com/psen/funcquest/internal/achievements"
	"github.com/psen/funcquest/internal/game"
	"github.com/psen/funcquest/internal/leaderboard"
	"github.com/psen/funcquest/internal/screen"
	"github.com/psen/funcquest/internal/store"
	"github.com/psen/funcquest/internal/ui/components"
	"github.com/psen/funcquest/internal/ui/layout"
	"github.com/psen/funcquest/internal/ui/theme"
)

type phase int

const (
	phaseVariant phase = iota
	phaseQuestion
	phaseFeedback
	phaseSummary
)

// tickMsg drives the countdown refresh.
type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

var variantBlurbs = map[game.TimedVariant]string{
	game.Blitz:    "30 seconds, 5 questions",
	game.Sprint:   "1 minute, 10 questions, ramping difficulty",
	game.Marathon: "5 minutes, 25 questions, the full climb",
}

// TimedScreen runs one timed challenge.
type TimedScreen struct {
	dealer *game.Dealer
	rng    *rand.Rand
	events store.EventRepo
	lb     *leaderboard.Manager
	player string
	stats  *achievements.PlayerStats

	phase       phase
	variantMenu components.Menu

	run           *game.TimedChallenge
	choice        components.MultiChoice
	questionStart time.Time
	last          game.Result
	now           time.Time
	recorded      bool
}

var _ screen.Screen = (*TimedScreen)(nil)
var _ screen.KeyHintProvider = (*TimedScreen)(nil)

// New creates a timed screen in the variant-select phase.
func New(dealer *game.Dealer, rng *rand.Rand, events store.EventRepo, lb *leaderboard.Manager, player string, stats *achievements.PlayerStats) *TimedScreen {
	s := &TimedScreen{
		dealer: dealer,
		rng:    rng,
		events: events,
		lb:     lb,
		player: player,
		stats:  stats,
	}

	var items []components.MenuItem
	for _, v := range game.TimedVariants() {
		variant := v
		items = append(items, components.MenuItem{
			Label: fmt.Sprintf("%-9s %s", strings.ToUpper(string(variant)), variantBlurbs[variant]),
			Action: func() tea.Cmd {
				return s.startRun(variant)
			},
		})
	}
	s.variantMenu = components.NewMenu(items)
	return s
}

func (s *TimedScreen) startRun(variant game.TimedVariant) tea.Cmd {
	run, err := game.NewTimedChallenge(s.dealer, s.rng, variant, s.player, s.stats)
	if err != nil {
		logrus.WithError(err).Error("failed to start timed challenge")
		return nil
	}
	s.run = run
	s.now = time.Now()
	s.run.Start(s.now)
	s.nextQuestion()
	return tick()
}

func (s *TimedScreen) nextQuestion() {
	round, ok := s.run.Current()
	if !ok {
		s.finish()
		return
	}
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

func (s *TimedScreen) Init() tea.Cmd {
	return nil
}

func (s *TimedScreen) Title() string {
	return "Timed Challenge"
}

func (s *TimedScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseQuestion:
		return []layout.KeyHint{
			{Key: "1-4/Enter", Description: "Answer"},
			{Key: "Esc", Description: "Abandon"},
		}
	case phaseFeedback:
		return []layout.KeyHint{
			{Key: "any key", Description: "Next question"},
		}
	case phaseSummary:
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back to menu"},
		}
	default:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Start"},
			{Key: "Esc", Description: "Back"},
		}
	}
}

func (s *TimedScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if t, ok := msg.(tickMsg); ok {
		if s.run == nil || s.phase == phaseSummary {
			return s, nil
		}
		s.now = time.Time(t)
		if s.run.Expired(s.now) {
			s.finish()
			return s, nil
		}
		return s, tick()
	}

	switch s.phase {
	case phaseVariant:
		var cmd tea.Cmd
		s.variantMenu, cmd = s.variantMenu.Update(msg)
		return s, cmd

	case phaseQuestion:
		var cmd tea.Cmd
		s.choice, cmd = s.choice.Update(msg)
		if s.choice.Submitted {
			return s, s.submit()
		}
		return s, cmd

	case phaseFeedback:
		if _, ok := msg.(tea.KeyMsg); ok {
			s.nextQuestion()
		}
		return s, nil
	}

	return s, nil
}

func (s *TimedScreen) submit() tea.Cmd {
	chosen := s.choice.Chosen()
	timeTaken := time.Since(s.questionStart)
	round, _ := s.run.Current()

	res, ok := s.run.Submit(chosen, timeTaken)
	if !ok {
		s.finish()
		return nil
	}
	s.last = res
	s.phase = phaseFeedback

	var cmd tea.Cmd
	if s.events != nil {
		ev := store.AnswerEvent{
			Player:     s.player,
			Mode:       "timed:" + string(s.run.Variant),
			Kind:       string(round.Question.Kind),
			Difficulty: round.Difficulty,
			Correct:    res.Correct,
			TimeTaken:  timeTaken,
			Score:      res.Points,
		}
		cmd = func() tea.Msg {
			if err := s.events.Append(context.Background(), ev); err != nil {
				logrus.WithError(err).Warn("failed to persist answer")
			}
			return nil
		}
	}

	if s.run.Done(time.Now()) {
		s.finish()
	}
	return cmd
}

func (s *TimedScreen) finish() {
	if !s.recorded && s.lb != nil && s.run != nil && s.run.Answered > 0 {
		s.lb.UpdateScore(s.player, s.run.Score, s.stats.CurrentLevel, "timed:"+string(s.run.Variant))
		s.recorded = true
	}
	s.phase = phaseSummary
}

func (s *TimedScreen) View(width, height int) string {
	switch s.phase {
	case phaseVariant:
		cw := components.ContentWidth(width)
		heading := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Pick your pace")
		content := heading + "\n\n" + components.HighlightCard(s.variantMenu.View(), cw)
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)

	case phaseQuestion, phaseFeedback:
		return s.renderChallenge(width, height)

	default:
		return s.renderSummary(width, height)
	}
}

func (s *TimedScreen) renderChallenge(width, height int) string {
	var b strings.Builder

	answered, total := s.run.Progress()
	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s", strings.ToUpper(string(s.run.Variant))))
	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Q %d/%d   ✓ %d   %d pts", answered+1, total, s.run.Correct, s.run.Score))

	pad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if pad < 1 {
		pad = 1
	}
	b.WriteString(infoLeft + strings.Repeat(" ", pad) + infoRight)
	b.WriteString("\n")

	timer := components.NewTimerBar(s.run.Remaining(s.now), s.run.Config.Duration, width-4)
	b.WriteString("  " + timer.View())
	b.WriteString("\n\n")

	if s.phase == phaseFeedback {
		b.WriteString(renderFeedbackInline(s.last, width))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render(s.choice.View()))
	}

	return b.String()
}

func renderFeedbackInline(res game.Result, width int) string {
	var headline string
	if res.Correct {
		headline = theme.Correct.Render(fmt.Sprintf("Correct!  +%d points", res.Points))
	} else {
		headline = theme.Incorrect.Render("Wrong — answer: " + res.Answer)
	}

	sections := []string{headline}
	for _, a := range res.Unlocked {
		sections = append(sections,
			lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).
				Render(fmt.Sprintf("%s  Achievement: %s  (+%d)", a.Icon, a.Name, a.Points)))
	}
	sections = append(sections, "", theme.Hint.Render("press any key for the next question"))

	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(strings.Join(sections, "\n"))
}

func (s *TimedScreen) renderSummary(width, height int) string {
	cw := components.ContentWidth(width)

	heading := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("Time!")

	var lines []string
	if s.run != nil {
		answered, total := s.run.Progress()
		lines = append(lines,
			fmt.Sprintf("Variant      %s", s.run.Variant),
			fmt.Sprintf("Questions    %d of %d", answered, total),
			fmt.Sprintf("Correct      %d (%.0f%%)", s.run.Correct, s.run.Accuracy()*100),
			fmt.Sprintf("Best streak  %d", s.run.BestStreak),
			fmt.Sprintf("Score        %d", s.run.Score),
		)
	}
	body := lipgloss.NewStyle().Foreground(theme.Text).Render(strings.Join(lines, "\n"))

	content := heading + "\n\n" + components.Card(body, cw)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
