package ratfunc

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// FeatureKind names one askable feature of a rational function.
type FeatureKind string

const (
	KindVerticalAsymptotes  FeatureKind = "vertical_asymptotes"
	KindHorizontalAsymptote FeatureKind = "horizontal_asymptote"
	KindXIntercepts         FeatureKind = "x_intercepts"
	KindHoles               FeatureKind = "holes"

	// KindRandom is a sentinel asking the builder to pick a kind
	// uniformly. Unrecognized kinds are treated the same way.
	KindRandom FeatureKind = "random"
)

// askableKinds are the kinds BuildQuestion can dispatch to.
var askableKinds = []FeatureKind{
	KindVerticalAsymptotes,
	KindHorizontalAsymptote,
	KindXIntercepts,
	KindHoles,
}

// DisplayName returns a human-readable label for the kind.
func (k FeatureKind) DisplayName() string {
	switch k {
	case KindVerticalAsymptotes:
		return "Vertical Asymptotes"
	case KindHorizontalAsymptote:
		return "Horizontal Asymptote"
	case KindXIntercepts:
		return "X-Intercepts"
	case KindHoles:
		return "Holes"
	default:
		return "Random"
	}
}

// NoneAnswer is the canonical marker for an empty or undefined feature.
const NoneAnswer = "None"

// Question is a rendered multiple-choice question. Exactly one of the
// four Choices equals Answer; order carries no information.
type Question struct {
	Kind        FeatureKind
	Prompt      string
	Choices     []string
	Answer      string
	Explanation string
}

// IsCorrect reports whether the given choice string is the answer.
func (q *Question) IsCorrect(choice string) bool {
	return choice == q.Answer
}

// BuildQuestion turns one feature of an analyzed function into a
// four-choice question. kind may be one of the four feature kinds or
// KindRandom; anything else is normalized to a random kind. The builder
// has no failure mode: distractor collisions are resampled until the
// uniqueness invariant holds, which the bounded value domains guarantee
// terminates.
func BuildQuestion(rng *rand.Rand, spec FuncSpec, features FeatureSet, kind FeatureKind) Question {
	switch kind {
	case KindVerticalAsymptotes, KindHorizontalAsymptote, KindXIntercepts, KindHoles:
	default:
		kind = askableKinds[rng.IntN(len(askableKinds))]
	}

	switch kind {
	case KindVerticalAsymptotes:
		return buildSetQuestion(rng, kind, features.VerticalAsymptotes,
			fmt.Sprintf("What are the vertical asymptotes of f(x) = %s?", spec.Text),
			"Vertical asymptotes occur where the denominator equals zero but the numerator doesn't.")
	case KindXIntercepts:
		return buildSetQuestion(rng, kind, features.XIntercepts,
			fmt.Sprintf("What are the x-intercepts of f(x) = %s?", spec.Text),
			"X-intercepts occur where the numerator equals zero but the denominator doesn't.")
	case KindHoles:
		return buildSetQuestion(rng, kind, features.Holes,
			fmt.Sprintf("Where are the holes in f(x) = %s?", spec.Text),
			"Holes occur where both numerator and denominator equal zero.")
	default:
		return buildHorizontalQuestion(rng, spec, features.HorizontalAsymptote)
	}
}

// buildSetQuestion builds a question whose answer is a set of x values.
// Distractors are single-element sets of integers in [-5, 5] that avoid
// the correct values and each other; when the correct set is empty the
// distractors are the fixed [-1], [0], [1] so there is always a
// non-degenerate wrong-answer set.
func buildSetQuestion(rng *rand.Rand, kind FeatureKind, values []Rat, prompt, explanation string) Question {
	correct := formatSet(values)

	var wrong []string
	if len(values) == 0 {
		wrong = []string{"[-1]", "[0]", "[1]"}
	} else {
		taken := make(map[string]bool, 4)
		taken[correct] = true
		inCorrect := make(map[Rat]bool, len(values))
		for _, v := range values {
			inCorrect[v] = true
		}
		for len(wrong) < 3 {
			w := IntRat(int64(rng.IntN(2*rootRange+1) - rootRange))
			s := "[" + w.String() + "]"
			if inCorrect[w] || taken[s] {
				continue
			}
			taken[s] = true
			wrong = append(wrong, s)
		}
	}

	return assemble(rng, kind, prompt, correct, wrong, explanation)
}

// buildHorizontalQuestion builds the horizontal-asymptote question,
// whose answer is a single value rather than a set. Distractors are
// correct ± k for k in [-3, 3]; a missing asymptote gets the fixed
// 0, 1, -1 distractors.
func buildHorizontalQuestion(rng *rand.Rand, spec FuncSpec, value *Rat) Question {
	prompt := fmt.Sprintf("What is the horizontal asymptote of f(x) = %s?", spec.Text)
	explanation := "Horizontal asymptotes depend on the degrees of numerator and denominator."

	if value == nil {
		return assemble(rng, KindHorizontalAsymptote, prompt, NoneAnswer, []string{"0", "1", "-1"}, explanation)
	}

	correct := value.String()
	taken := map[string]bool{correct: true}
	var wrong []string
	for len(wrong) < 3 {
		w := value.AddInt(int64(rng.IntN(7) - 3))
		s := w.String()
		if taken[s] {
			continue
		}
		taken[s] = true
		wrong = append(wrong, s)
	}

	return assemble(rng, KindHorizontalAsymptote, prompt, correct, wrong, explanation)
}

// assemble shuffles the correct answer in among the distractors.
func assemble(rng *rand.Rand, kind FeatureKind, prompt, correct string, wrong []string, explanation string) Question {
	choices := make([]string, 0, 4)
	choices = append(choices, correct)
	choices = append(choices, wrong...)
	rng.Shuffle(len(choices), func(i, j int) {
		choices[i], choices[j] = choices[j], choices[i]
	})

	return Question{
		Kind:        kind,
		Prompt:      prompt,
		Choices:     choices,
		Answer:      correct,
		Explanation: explanation,
	}
}

// formatSet renders values as their literal list, "[2, 3]", even when
// single-valued. The empty set renders as the None marker.
func formatSet(values []Rat) string {
	if len(values) == 0 {
		return NoneAnswer
	}
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = v.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
