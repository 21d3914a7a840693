package ratfunc

import (
	"math/rand/v2"
)

// rootRange bounds the integer roots and monomial coefficients of
// generated factors: uniform in [-5, 5].
const rootRange = 5

// FuncSpec is a generated rational function. Num and Den are the
// pre-simplification polynomials — feature analysis works on these,
// because the hole feature depends on the shared root existing before
// cancellation. SimpleNum/SimpleDen form the cancelled quotient used
// for display and for the y-intercept. Immutable once built.
type FuncSpec struct {
	Num Poly
	Den Poly

	SimpleNum Poly
	SimpleDen Poly

	// Text is the plain-text rendering of the simplified function.
	Text string

	// LaTeX is the typeset rendering. Presentation only; it carries no
	// semantic weight.
	LaTeX string
}

// Generator builds random rational functions. The random source is
// injected so callers (and tests) control determinism; a Generator is
// a pure function of its rng.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a Generator drawing from rng.
func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// Generate builds a rational function for the given difficulty level.
// Out-of-range difficulties use the level 1 configuration. Degenerate
// draws (zero denominator) are re-rolled, never surfaced: Generate
// always succeeds.
func (g *Generator) Generate(difficulty int) FuncSpec {
	cfg := ConfigFor(difficulty)

	num := g.buildPolynomial(cfg.MaxDegree, cfg.MaxFactors)
	den := g.buildPolynomial(cfg.MaxDegree, cfg.MaxFactors)
	for den.IsZero() {
		den = g.buildPolynomial(cfg.MaxDegree, cfg.MaxFactors)
	}

	// A shared linear factor in both polynomials is the only mechanism
	// that produces holes: the hole root always cancels exactly.
	if g.rng.Float64() < cfg.HoleProb {
		hole := Linear(g.randRoot())
		num = num.Mul(hole)
		den = den.Mul(hole)
	}

	return NewFuncSpec(num, den)
}

// buildPolynomial constructs a product of linear factors, topped up
// with a monomial term when the drawn degree exceeds the factor count.
func (g *Generator) buildPolynomial(maxDegree, maxFactors int) Poly {
	degree := 1 + g.rng.IntN(maxDegree)
	factorMax := maxFactors
	if degree < factorMax {
		factorMax = degree
	}
	factors := 1 + g.rng.IntN(factorMax)

	p := ConstPoly(1)
	for i := 0; i < factors; i++ {
		p = p.Mul(Linear(g.randRoot()))
	}

	if remaining := degree - factors; remaining > 0 {
		coeff := g.randRoot()
		for coeff == 0 {
			coeff = g.randRoot()
		}
		p = p.Mul(Monomial(coeff, remaining))
	}

	return p
}

// randRoot draws a uniform integer in [-rootRange, rootRange].
func (g *Generator) randRoot() int64 {
	return int64(g.rng.IntN(2*rootRange+1) - rootRange)
}

// NewFuncSpec assembles a FuncSpec from pre-simplification polynomials,
// cancelling the quotient exactly and rendering the display forms.
// Exported so tests and callers can build specs from known polynomials.
func NewFuncSpec(num, den Poly) FuncSpec {
	sn, sd := simplify(num, den)
	return FuncSpec{
		Num:       num,
		Den:       den,
		SimpleNum: sn,
		SimpleDen: sd,
		Text:      renderQuotient(sn, sd),
		LaTeX:     renderQuotientLaTeX(sn, sd),
	}
}

// simplify cancels the quotient num/den exactly: shared integer roots
// are deflated out of both sides (this covers injected hole factors and
// shared powers of x), and the common content of the coefficients is
// divided away. No numeric approximation is involved.
func simplify(num, den Poly) (Poly, Poly) {
	if num.IsZero() || den.IsZero() {
		return num, den
	}

	for _, r := range num.RationalRoots() {
		if !r.IsInt() {
			continue
		}
		for num.IsRoot(r) && den.IsRoot(r) && den.Degree() >= 1 {
			num = num.Deflate(r.Num)
			den = den.Deflate(r.Num)
			if num.IsZero() {
				return num, den
			}
		}
	}

	if g := gcd(num.Content(), den.Content()); g > 1 {
		num = num.DivConst(g)
		den = den.DivConst(g)
	}

	// Keep the denominator's leading coefficient positive so the
	// rendered form is canonical.
	if den.Lead() < 0 {
		num = negate(num)
		den = negate(den)
	}

	return num, den
}

func negate(p Poly) Poly {
	out := make([]int64, p.Degree()+1)
	for i := range out {
		out[i] = -p.Coeff(i)
	}
	return PolyFromCoeffs(out...)
}
