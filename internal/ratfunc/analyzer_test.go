package ratfunc

import (
	"reflect"
	"testing"
)

func ratSet(values ...int64) []Rat {
	if len(values) == 0 {
		return nil
	}
	out := make([]Rat, len(values))
	for i, v := range values {
		out[i] = IntRat(v)
	}
	return out
}

func TestAnalyzeHoleAndAsymptote(t *testing.T) {
	// f(x) = (x - 2) / ((x - 2)(x - 3)): hole at 2, asymptote at 3.
	spec := NewFuncSpec(Linear(2), Linear(2).Mul(Linear(3)))
	fs := Analyze(spec)

	if !reflect.DeepEqual(fs.Holes, ratSet(2)) {
		t.Errorf("holes = %v, want [2]", fs.Holes)
	}
	if !reflect.DeepEqual(fs.VerticalAsymptotes, ratSet(3)) {
		t.Errorf("vertical asymptotes = %v, want [3]", fs.VerticalAsymptotes)
	}
	if len(fs.XIntercepts) != 0 {
		t.Errorf("x-intercepts = %v, want none", fs.XIntercepts)
	}
	if fs.HorizontalAsymptote == nil || *fs.HorizontalAsymptote != IntRat(0) {
		t.Errorf("horizontal asymptote = %v, want 0", fs.HorizontalAsymptote)
	}
	// Simplified form is 1/(x - 3), so f(0) = -1/3.
	if fs.YIntercept == nil || *fs.YIntercept != NewRat(-1, 3) {
		t.Errorf("y-intercept = %v, want -1/3", fs.YIntercept)
	}
}

func TestAnalyzeNoRealDenominatorRoots(t *testing.T) {
	// f(x) = 2x^2 / (x^2 + 1): no vertical asymptotes, HA at 2.
	spec := NewFuncSpec(Monomial(2, 2), PolyFromCoeffs(1, 0, 1))
	fs := Analyze(spec)

	if len(fs.VerticalAsymptotes) != 0 {
		t.Errorf("vertical asymptotes = %v, want none", fs.VerticalAsymptotes)
	}
	if fs.HorizontalAsymptote == nil || *fs.HorizontalAsymptote != IntRat(2) {
		t.Errorf("horizontal asymptote = %v, want 2", fs.HorizontalAsymptote)
	}
	if !reflect.DeepEqual(fs.XIntercepts, ratSet(0)) {
		t.Errorf("x-intercepts = %v, want [0]", fs.XIntercepts)
	}
	if fs.YIntercept == nil || *fs.YIntercept != IntRat(0) {
		t.Errorf("y-intercept = %v, want 0", fs.YIntercept)
	}
}

func TestAnalyzeDivergingFunction(t *testing.T) {
	// f(x) = (x - 1)(x + 1) / (x - 4): numerator degree wins, no HA.
	spec := NewFuncSpec(Linear(1).Mul(Linear(-1)), Linear(4))
	fs := Analyze(spec)
	if fs.HorizontalAsymptote != nil {
		t.Errorf("horizontal asymptote = %v, want none", fs.HorizontalAsymptote)
	}
}

func TestAnalyzeYInterceptUndefinedAtPole(t *testing.T) {
	// f(x) = (x - 1) / x: pole at 0, so no y-intercept.
	spec := NewFuncSpec(Linear(1), Monomial(1, 1))
	fs := Analyze(spec)
	if fs.YIntercept != nil {
		t.Errorf("y-intercept = %v, want undefined", fs.YIntercept)
	}
	if !reflect.DeepEqual(fs.VerticalAsymptotes, ratSet(0)) {
		t.Errorf("vertical asymptotes = %v, want [0]", fs.VerticalAsymptotes)
	}
}

func TestAnalyzeInjectedHoleClassification(t *testing.T) {
	gen := NewGenerator(testRNG(11))
	for i := 0; i < 500; i++ {
		base := gen.Generate(3)
		hole := Linear(gen.randRoot())
		spec := NewFuncSpec(base.Num.Mul(hole), base.Den.Mul(hole))
		fs := Analyze(spec)

		root := IntRat(-hole.Coeff(0))
		found := false
		for _, h := range fs.Holes {
			if h == root {
				found = true
			}
		}
		if !found {
			t.Fatalf("shared root %s not classified as hole (spec %s)", root, spec.Text)
		}
		for _, va := range fs.VerticalAsymptotes {
			if va == root {
				t.Fatalf("shared root %s also reported as vertical asymptote", root)
			}
		}
		for _, xi := range fs.XIntercepts {
			if xi == root {
				t.Fatalf("shared root %s also reported as x-intercept", root)
			}
		}
	}
}

func TestAnalyzeFeatureSetsDisjoint(t *testing.T) {
	gen := NewGenerator(testRNG(13))
	for difficulty := 1; difficulty <= 5; difficulty++ {
		for i := 0; i < 200; i++ {
			fs := Analyze(gen.Generate(difficulty))

			holes := make(map[Rat]bool)
			for _, h := range fs.Holes {
				holes[h] = true
			}
			for _, va := range fs.VerticalAsymptotes {
				if holes[va] {
					t.Fatalf("value %s is both hole and vertical asymptote", va)
				}
			}
			for _, xi := range fs.XIntercepts {
				if holes[xi] {
					t.Fatalf("value %s is both hole and x-intercept", xi)
				}
			}
		}
	}
}

func TestAnalyzeIdempotent(t *testing.T) {
	gen := NewGenerator(testRNG(17))
	for i := 0; i < 100; i++ {
		spec := gen.Generate(4)
		a := Analyze(spec)
		b := Analyze(spec)
		if !reflect.DeepEqual(a, b) {
			t.Fatalf("analysis not idempotent for %s: %+v vs %+v", spec.Text, a, b)
		}
	}
}
