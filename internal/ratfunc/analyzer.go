package ratfunc

// FeatureSet holds the derived features of a rational function. Slices
// are sorted ascending and treated as read-only after Analyze returns.
type FeatureSet struct {
	// VerticalAsymptotes are denominator roots that are not holes.
	VerticalAsymptotes []Rat

	// Holes are roots of both numerator and denominator of the
	// unsimplified function (removable singularities).
	Holes []Rat

	// XIntercepts are numerator roots that are not holes.
	XIntercepts []Rat

	// HorizontalAsymptote is the limiting value as x grows without
	// bound, nil when the function diverges.
	HorizontalAsymptote *Rat

	// YIntercept is the simplified function's value at x = 0, nil when
	// x = 0 is a pole.
	YIntercept *Rat
}

// Analyze derives the feature set of spec. It is deterministic — the
// same spec always yields the same features — and never fails: any
// feature that cannot be derived degrades to its empty/none form.
//
// Classification rule: a denominator root that is also a numerator root
// of the unsimplified function is a hole; otherwise it is a vertical
// asymptote. Membership is exact equality over rationals, never a
// tolerance check.
func Analyze(spec FuncSpec) FeatureSet {
	var fs FeatureSet

	denRoots := spec.Den.RationalRoots()
	numRoots := spec.Num.RationalRoots()

	holes := make(map[Rat]bool)
	for _, r := range denRoots {
		if spec.Num.IsRoot(r) {
			holes[r] = true
			fs.Holes = append(fs.Holes, r)
		} else {
			fs.VerticalAsymptotes = append(fs.VerticalAsymptotes, r)
		}
	}

	for _, r := range numRoots {
		if !holes[r] {
			fs.XIntercepts = append(fs.XIntercepts, r)
		}
	}

	fs.HorizontalAsymptote = horizontalAsymptote(spec.Num, spec.Den)
	fs.YIntercept = yIntercept(spec)

	return fs
}

// horizontalAsymptote applies the closed-form degree rule: below-degree
// numerators limit to 0, equal degrees limit to the ratio of leading
// coefficients, and a higher-degree numerator diverges (nil). This
// replaces a symbolic limit computation entirely, so there is no
// indeterminate case to fall back from.
func horizontalAsymptote(num, den Poly) *Rat {
	if num.IsZero() {
		zero := IntRat(0)
		return &zero
	}
	switch {
	case num.Degree() < den.Degree():
		zero := IntRat(0)
		return &zero
	case num.Degree() == den.Degree():
		r := NewRat(num.Lead(), den.Lead())
		return &r
	default:
		return nil
	}
}

// yIntercept evaluates the simplified quotient at x = 0. When 0 is
// still a pole after cancellation the intercept is undefined (nil),
// not an error.
func yIntercept(spec FuncSpec) *Rat {
	num, den := spec.SimpleNum, spec.SimpleDen
	if den.IsZero() {
		num, den = spec.Num, spec.Den
	}
	if den.IsZero() || den.Coeff(0) == 0 {
		return nil
	}
	y := NewRat(num.Coeff(0), den.Coeff(0))
	return &y
}
