// Package multiplayer is the simulated-room mode screen: the player
// races a handful of bot opponents through a shared question set.
package multiplayer

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
	phasePlaying
	phaseResults
)

// tickMsg drives opponent simulation and the countdown.
type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

var variantBlurbs = map[game.RoomVariant]string{
	game.Quick:    "2 minutes, 8 questions",
	game.Standard: "5 minutes, 15 questions",
	game.Expert:   "10 minutes, 20 questions",
}

// MultiplayerScreen runs one simulated room.
type MultiplayerScreen struct {
	dealer *game.Dealer
	rng    *rand.Rand
	events store.EventRepo
	lb     *leaderboard.Manager
	player string
	stats  *achievements.PlayerStats

	phase       phase
	variantMenu components.Menu

	room          *game.Room
	choice        components.MultiChoice
	questionStart time.Time
	last          *game.Result
	now           time.Time
	recorded      bool
}

var _ screen.Screen = (*MultiplayerScreen)(nil)
var _ screen.KeyHintProvider = (*MultiplayerScreen)(nil)

// New creates a multiplayer screen in the variant-select phase.
func New(dealer *game.Dealer, rng *rand.Rand, events store.EventRepo, lb *leaderboard.Manager, player string, stats *achievements.PlayerStats) *MultiplayerScreen {
	s := &MultiplayerScreen{
		dealer: dealer,
		rng:    rng,
		events: events,
		lb:     lb,
		player: player,
		stats:  stats,
	}

	var items []components.MenuItem
	for _, v := range game.RoomVariants() {
		variant := v
		items = append(items, components.MenuItem{
			Label: fmt.Sprintf("%-9s %s", strings.ToUpper(string(variant)), variantBlurbs[variant]),
			Action: func() tea.Cmd {
				return s.startRoom(variant)
			},
		})
	}
	s.variantMenu = components.NewMenu(items)
	return s
}

func (s *MultiplayerScreen) startRoom(variant game.RoomVariant) tea.Cmd {
	room, err := game.NewRoom(s.dealer, s.rng, variant, s.player)
	if err != nil {
		logrus.WithError(err).Error("failed to open room")
		return nil
	}
	s.room = room
	s.now = time.Now()
	s.room.Start(s.now)
	s.nextQuestion()
	s.phase = phasePlaying
	return tick()
}

func (s *MultiplayerScreen) nextQuestion() {
	round, ok := s.room.Current()
	if !ok {
		return // waiting for opponents or timer
	}
	s.choice = components.NewMultiChoice(
		round.Question.Prompt,
		round.Question.Choices,
		correctIndex(round),
	)
	s.questionStart = time.Now()
	s.last = nil
}

func correctIndex(round game.Round) int {
	for i, c := range round.Question.Choices {
		if c == round.Question.Answer {
			return i
		}
	}
	return 0
}

func (s *MultiplayerScreen) Init() tea.Cmd {
	return nil
}

func (s *MultiplayerScreen) Title() string {
	return "Multiplayer"
}

func (s *MultiplayerScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phasePlaying:
		return []layout.KeyHint{
			{Key: "1-4/Enter", Description: "Answer"},
			{Key: "Esc", Description: "Leave room"},
		}
	case phaseResults:
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back to menu"},
		}
	default:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Join"},
			{Key: "Esc", Description: "Back"},
		}
	}
}

func (s *MultiplayerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if t, ok := msg.(tickMsg); ok {
		if s.room == nil || s.phase == phaseResults {
			return s, nil
		}
		s.now = time.Time(t)
		s.room.Refresh(s.now)
		if s.room.Done(s.now) {
			s.finish()
			return s, nil
		}
		// The human may have been waiting in feedback while a next
		// question exists; stay put until they dismiss it.
		return s, tick()
	}

	switch s.phase {
	case phaseVariant:
		var cmd tea.Cmd
		s.variantMenu, cmd = s.variantMenu.Update(msg)
		return s, cmd

	case phasePlaying:
		if s.last != nil {
			if _, ok := msg.(tea.KeyMsg); ok {
				s.nextQuestion()
			}
			return s, nil
		}
		var cmd tea.Cmd
		s.choice, cmd = s.choice.Update(msg)
		if s.choice.Submitted {
			return s, s.submit()
		}
		return s, cmd
	}

	return s, nil
}

func (s *MultiplayerScreen) submit() tea.Cmd {
	chosen := s.choice.Chosen()
	timeTaken := time.Since(s.questionStart)
	round, _ := s.room.Current()

	res, ok := s.room.Submit(chosen, timeTaken)
	if !ok {
		return nil
	}
	s.last = &res

	if s.stats != nil {
		s.stats.Record(round.Question.Kind, res.Correct, timeTaken, res.Points)
	}

	var cmd tea.Cmd
	if s.events != nil {
		ev := store.AnswerEvent{
			Player:     s.player,
			Mode:       "multiplayer:" + string(s.room.Variant),
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
	return cmd
}

func (s *MultiplayerScreen) finish() {
	human := s.room.Human()
	if !s.recorded && s.lb != nil && human.Answered > 0 {
		s.lb.UpdateScore(s.player, human.Score, s.stats.CurrentLevel, "multiplayer:"+string(s.room.Variant))
		s.recorded = true
	}
	s.phase = phaseResults
}

func (s *MultiplayerScreen) View(width, height int) string {
	switch s.phase {
	case phaseVariant:
		cw := components.ContentWidth(width)
		heading := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Join a room")
		content := heading + "\n\n" + components.HighlightCard(s.variantMenu.View(), cw)
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)

	case phasePlaying:
		return s.renderRoom(width, height)

	default:
		return s.renderResults(width, height)
	}
}

func (s *MultiplayerScreen) renderRoom(width, height int) string {
	var b strings.Builder

	answered, total := s.room.Progress()
	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s · %s", s.room.ID, strings.ToUpper(string(s.room.Variant))))
	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Q %d/%d", min(answered+1, total), total))

	pad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if pad < 1 {
		pad = 1
	}
	b.WriteString(infoLeft + strings.Repeat(" ", pad) + infoRight)
	b.WriteString("\n")

	timer := components.NewTimerBar(s.room.Remaining(s.now), s.room.Config.Duration, width-4)
	b.WriteString("  " + timer.View())
	b.WriteString("\n\n")

	var main string
	switch {
	case s.last != nil:
		main = renderFeedbackInline(*s.last, width*2/3)
	default:
		if _, ok := s.room.Current(); ok {
			main = s.choice.View()
		} else {
			main = theme.Hint.Render("All done — waiting for the others to finish...")
		}
	}

	left := lipgloss.NewStyle().
		Width(width * 2 / 3).
		Render(main)
	right := s.renderStandings(width - width*2/3 - 2)

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right))
	return b.String()
}

func (s *MultiplayerScreen) renderStandings(width int) string {
	var lines []string
	lines = append(lines, lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Standings"))
	lines = append(lines, "")

	_, total := s.room.Progress()
	for i, p := range s.room.Standings() {
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if p.Name == s.player {
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		lines = append(lines, style.Render(
			fmt.Sprintf("%d. %-15s %5d  (%d/%d)", i+1, p.Name, p.Score, p.Answered, total)))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(width).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}

func renderFeedbackInline(res game.Result, width int) string {
	var headline string
	if res.Correct {
		headline = theme.Correct.Render(fmt.Sprintf("Correct!  +%d points", res.Points))
	} else {
		headline = theme.Incorrect.Render("Wrong — answer: " + res.Answer)
	}

	sections := []string{headline, "", theme.Hint.Render("press any key to continue")}

	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(strings.Join(sections, "\n"))
}

func (s *MultiplayerScreen) renderResults(width, height int) string {
	cw := components.ContentWidth(width)

	heading := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("Final standings")

	var lines []string
	_, total := s.room.Progress()
	for i, p := range s.room.Standings() {
		marker := "  "
		if i == 0 {
			marker = "♛ "
		}
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if p.Name == s.player {
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		lines = append(lines, style.Render(
			fmt.Sprintf("%s%d. %-15s %5d pts  %d/%d correct", marker, i+1, p.Name, p.Score, p.Correct, total)))
	}
	body := strings.Join(lines, "\n")

	content := heading + "\n\n" + components.Card(body, cw)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
