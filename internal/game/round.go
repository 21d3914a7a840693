// Package game implements the three play modes: endless practice, timed
// challenges, and simulated multiplayer rooms. All modes share the same
// question pipeline: generate a rational function, analyze its features,
// build a multiple-choice question.
package game

import (
	"math/rand/v2"

	"github.com/psen/funcquest/internal/ratfunc"
)

// Round bundles one generated question with the function it was asked about.
type Round struct {
	Spec       ratfunc.FuncSpec
	Features   ratfunc.FeatureSet
	Question   ratfunc.Question
	Difficulty int
}

// Dealer produces rounds. It owns the generator and the rng so all modes
// draw from the same randomness source.
type Dealer struct {
	gen *ratfunc.Generator
	rng *rand.Rand
}

// NewDealer creates a Dealer backed by the given rng.
func NewDealer(rng *rand.Rand) *Dealer {
	return &Dealer{gen: ratfunc.NewGenerator(rng), rng: rng}
}

// Deal generates a round at the given difficulty asking about kind.
// Difficulty is clamped to the valid range; KindRandom picks a feature
// uniformly.
func (d *Dealer) Deal(difficulty int, kind ratfunc.FeatureKind) Round {
	difficulty = ratfunc.ClampDifficulty(difficulty)
	spec := d.gen.Generate(difficulty)
	features := ratfunc.Analyze(spec)
	q := ratfunc.BuildQuestion(d.rng, spec, features, kind)
	return Round{
		Spec:       spec,
		Features:   features,
		Question:   q,
		Difficulty: difficulty,
	}
}
