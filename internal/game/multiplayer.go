package game

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"time"

	"github.com/psen/funcquest/internal/ratfunc"
	"github.com/psen/funcquest/internal/scoring"
)

// RoomVariant identifies one of the multiplayer room formats.
type RoomVariant string

const (
	Quick    RoomVariant = "quick"
	Standard RoomVariant = "standard"
	Expert   RoomVariant = "expert"
)

// RoomConfig is the time limit and question count of a room variant.
type RoomConfig struct {
	Duration  time.Duration
	Questions int
}

var roomConfigs = map[RoomVariant]RoomConfig{
	Quick:    {Duration: 120 * time.Second, Questions: 8},
	Standard: {Duration: 300 * time.Second, Questions: 15},
	Expert:   {Duration: 600 * time.Second, Questions: 20},
}

// RoomConfigFor returns the config for a room variant.
func RoomConfigFor(v RoomVariant) (RoomConfig, bool) {
	cfg, ok := roomConfigs[v]
	return cfg, ok
}

// RoomVariants lists the variants in menu order.
func RoomVariants() []RoomVariant {
	return []RoomVariant{Quick, Standard, Expert}
}

// MaxPlayers caps room size, the human included.
const MaxPlayers = 4

// aiNames is the opponent pool. Rooms are filled from a shuffled copy.
var aiNames = []string{"MathBot", "GraphGuru", "AsymptoteAce", "FunctionFinder"}

// aiAnswerChance is the probability an idle opponent answers its current
// question on a given refresh.
const aiAnswerChance = 0.3

// Player is one room participant, human or simulated.
type Player struct {
	Name     string
	AI       bool
	Score    int
	Correct  int
	Answered int

	index  int
	streak int
}

// Finished reports whether the player has answered every question.
func (p *Player) Finished(total int) bool {
	return p.index >= total
}

// Room is a simulated multiplayer match: every participant works through
// the same question sequence, opponents answering on a timer-driven
// random schedule.
type Room struct {
	ID      string
	Variant RoomVariant
	Config  RoomConfig

	rounds    []Round
	players   []*Player
	human     *Player
	rng       *rand.Rand
	startedAt time.Time
}

// roomDifficulty ramps difficulty in thirds: 1-2, then 2-4, then 3-5.
func roomDifficulty(i, total int, rng *rand.Rand) int {
	switch {
	case i < total/3:
		return 1 + rng.IntN(2)
	case i < 2*total/3:
		return 2 + rng.IntN(3)
	default:
		return 3 + rng.IntN(3)
	}
}

// NewRoom creates a room, pre-generates its questions, and seats the
// human plus 1-3 simulated opponents.
func NewRoom(dealer *Dealer, rng *rand.Rand, variant RoomVariant, humanName string) (*Room, error) {
	cfg, ok := roomConfigs[variant]
	if !ok {
		return nil, fmt.Errorf("unknown room variant %q", variant)
	}

	rounds := make([]Round, cfg.Questions)
	for i := range rounds {
		rounds[i] = dealer.Deal(roomDifficulty(i, cfg.Questions, rng), ratfunc.KindRandom)
	}

	human := &Player{Name: humanName}
	players := []*Player{human}

	names := make([]string, len(aiNames))
	copy(names, aiNames)
	rng.Shuffle(len(names), func(i, j int) { names[i], names[j] = names[j], names[i] })
	for _, name := range names[:1+rng.IntN(MaxPlayers-1)] {
		players = append(players, &Player{Name: name, AI: true})
	}

	return &Room{
		ID:      fmt.Sprintf("ROOM%04d", rng.IntN(10000)),
		Variant: variant,
		Config:  cfg,
		rounds:  rounds,
		players: players,
		human:   human,
		rng:     rng,
	}, nil
}

// Start begins the match clock.
func (r *Room) Start(now time.Time) {
	r.startedAt = now
}

// Remaining returns the time left, never negative.
func (r *Room) Remaining(now time.Time) time.Duration {
	left := r.Config.Duration - now.Sub(r.startedAt)
	if left < 0 {
		return 0
	}
	return left
}

// Done reports whether the match is over: timer expired or everyone
// finished.
func (r *Room) Done(now time.Time) bool {
	if now.Sub(r.startedAt) >= r.Config.Duration {
		return true
	}
	for _, p := range r.players {
		if !p.Finished(len(r.rounds)) {
			return false
		}
	}
	return true
}

// Current returns the human's round awaiting an answer, false if done.
func (r *Room) Current() (Round, bool) {
	if r.human.Finished(len(r.rounds)) {
		return Round{}, false
	}
	return r.rounds[r.human.index], true
}

// Progress returns the human's answered-of-total.
func (r *Room) Progress() (answered, total int) {
	return r.human.index, len(r.rounds)
}

// Submit scores the human's answer for their current question.
func (r *Room) Submit(choice string, timeTaken time.Duration) (Result, bool) {
	round, ok := r.Current()
	if !ok {
		return Result{}, false
	}
	res := r.record(r.human, round, choice, timeTaken)
	return res, true
}

// Refresh advances the simulated opponents. Each idle opponent answers
// its current question with probability aiAnswerChance, getting it right
// per an accuracy that degrades with difficulty and taking a uniform
// 3-15 seconds.
func (r *Room) Refresh(now time.Time) {
	if now.Sub(r.startedAt) >= r.Config.Duration {
		return
	}
	for _, p := range r.players {
		if !p.AI || p.Finished(len(r.rounds)) {
			continue
		}
		if r.rng.Float64() >= aiAnswerChance {
			continue
		}
		round := r.rounds[p.index]
		choice := r.aiChoice(round)
		timeTaken := time.Duration(3+r.rng.Float64()*12) * time.Second
		r.record(p, round, choice, timeTaken)
	}
}

// aiChoice picks the correct answer with probability
// max(0.4, 1 - 0.15*difficulty), otherwise a random distractor.
func (r *Room) aiChoice(round Round) string {
	accuracy := 1 - 0.15*float64(round.Difficulty)
	if accuracy < 0.4 {
		accuracy = 0.4
	}
	if r.rng.Float64() < accuracy {
		return round.Question.Answer
	}
	var wrong []string
	for _, c := range round.Question.Choices {
		if c != round.Question.Answer {
			wrong = append(wrong, c)
		}
	}
	if len(wrong) == 0 {
		return round.Question.Answer
	}
	return wrong[r.rng.IntN(len(wrong))]
}

func (r *Room) record(p *Player, round Round, choice string, timeTaken time.Duration) Result {
	correct := round.Question.IsCorrect(choice)
	p.index++
	p.Answered++
	if correct {
		p.Correct++
		p.streak++
	} else {
		p.streak = 0
	}

	points := scoring.Score(correct, round.Difficulty, timeTaken, p.streak)
	p.Score += points

	return Result{
		Correct:     correct,
		Points:      points,
		Answer:      round.Question.Answer,
		Explanation: round.Question.Explanation,
		Streak:      p.streak,
	}
}

// Standings returns the players sorted by score, names breaking ties.
func (r *Room) Standings() []*Player {
	out := make([]*Player, len(r.players))
	copy(out, r.players)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Human returns the human participant.
func (r *Room) Human() *Player {
	return r.human
}
