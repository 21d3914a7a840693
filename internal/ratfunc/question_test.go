package ratfunc

import (
	"sort"
	"strconv"
	"testing"
)

func TestBuildQuestionInvariants(t *testing.T) {
	rng := testRNG(21)
	gen := NewGenerator(rng)

	for i := 0; i < 1000; i++ {
		spec := gen.Generate(1 + i%5)
		fs := Analyze(spec)
		q := BuildQuestion(rng, spec, fs, KindRandom)

		if len(q.Choices) != 4 {
			t.Fatalf("got %d choices, want 4", len(q.Choices))
		}

		seen := make(map[string]bool, 4)
		matches := 0
		for _, c := range q.Choices {
			if seen[c] {
				t.Fatalf("duplicate choice %q in %v", c, q.Choices)
			}
			seen[c] = true
			if c == q.Answer {
				matches++
			}
		}
		if matches != 1 {
			t.Fatalf("answer %q appears %d times in %v", q.Answer, matches, q.Choices)
		}
		if q.Prompt == "" || q.Explanation == "" {
			t.Fatal("prompt and explanation must be non-empty")
		}
	}
}

func TestBuildQuestionEmptySetDistractors(t *testing.T) {
	// x / (x^2 + 1) has no vertical asymptotes, so the correct answer is
	// None and the distractors are the fixed [-1], [0], [1] set.
	spec := NewFuncSpec(Monomial(1, 1), PolyFromCoeffs(1, 0, 1))
	fs := Analyze(spec)
	q := BuildQuestion(testRNG(5), spec, fs, KindVerticalAsymptotes)

	if q.Answer != NoneAnswer {
		t.Fatalf("answer = %q, want None", q.Answer)
	}
	var wrong []string
	for _, c := range q.Choices {
		if c != NoneAnswer {
			wrong = append(wrong, c)
		}
	}
	sort.Strings(wrong)
	want := []string{"[-1]", "[0]", "[1]"}
	for i := range want {
		if wrong[i] != want[i] {
			t.Fatalf("distractors = %v, want %v", wrong, want)
		}
	}
}

func TestBuildQuestionNoHorizontalAsymptote(t *testing.T) {
	// x^2 / (x - 1) diverges: HA answer is None with fixed distractors.
	spec := NewFuncSpec(Monomial(1, 2), Linear(1))
	fs := Analyze(spec)
	q := BuildQuestion(testRNG(6), spec, fs, KindHorizontalAsymptote)

	if q.Answer != NoneAnswer {
		t.Fatalf("answer = %q, want None", q.Answer)
	}
	var wrong []string
	for _, c := range q.Choices {
		if c != NoneAnswer {
			wrong = append(wrong, c)
		}
	}
	sort.Strings(wrong)
	want := []string{"-1", "0", "1"}
	for i := range want {
		if wrong[i] != want[i] {
			t.Fatalf("distractors = %v, want %v", wrong, want)
		}
	}
}

func TestBuildQuestionDistractorsAvoidCorrectValues(t *testing.T) {
	// Asymptotes at 1 and 2: no distractor may be [1] or [2].
	spec := NewFuncSpec(ConstPoly(1), Linear(1).Mul(Linear(2)))
	fs := Analyze(spec)

	rng := testRNG(8)
	for i := 0; i < 200; i++ {
		q := BuildQuestion(rng, spec, fs, KindVerticalAsymptotes)
		if q.Answer != "[1, 2]" {
			t.Fatalf("answer = %q, want [1, 2]", q.Answer)
		}
		for _, c := range q.Choices {
			if c == "[1]" || c == "[2]" {
				t.Fatalf("distractor %q collides with a correct value", c)
			}
		}
	}
}

func TestBuildQuestionHorizontalDistractorsNearCorrect(t *testing.T) {
	// Equal degrees with leading ratio 3: distractors are 3 ± [-3,3].
	spec := NewFuncSpec(Monomial(3, 1), Linear(5))
	fs := Analyze(spec)

	rng := testRNG(9)
	for i := 0; i < 200; i++ {
		q := BuildQuestion(rng, spec, fs, KindHorizontalAsymptote)
		if q.Answer != "3" {
			t.Fatalf("answer = %q, want 3", q.Answer)
		}
		for _, c := range q.Choices {
			if c == q.Answer {
				continue
			}
			v, err := strconv.ParseInt(c, 10, 64)
			if err != nil {
				t.Fatalf("non-integer distractor %q", c)
			}
			if v < 0 || v > 6 {
				t.Fatalf("distractor %q outside correct ± 3", c)
			}
		}
	}
}

func TestBuildQuestionUnknownKindDispatchesRandomly(t *testing.T) {
	spec := NewFuncSpec(Linear(2), Linear(3))
	fs := Analyze(spec)

	kinds := make(map[FeatureKind]bool)
	rng := testRNG(10)
	for i := 0; i < 200; i++ {
		q := BuildQuestion(rng, spec, fs, FeatureKind("bogus"))
		kinds[q.Kind] = true
	}
	if len(kinds) != len(askableKinds) {
		t.Errorf("random dispatch hit %d kinds over 200 draws, want %d", len(kinds), len(askableKinds))
	}
}
