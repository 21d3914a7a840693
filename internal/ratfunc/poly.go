package ratfunc

import (
	"math/big"
	"sort"
)

// Poly is a polynomial with exact int64 coefficients.
// coeffs[i] holds the coefficient of x^i; the slice carries no trailing
// zeros, so the zero polynomial is the empty slice. Values are immutable
// once built: every operation returns a fresh Poly.
//
// The generator only ever builds products of linear factors times a
// monomial, but nothing here assumes that shape — Analyze accepts any
// integer-coefficient polynomial.
type Poly struct {
	coeffs []int64
}

// PolyFromCoeffs builds a polynomial from coefficients in ascending
// power order: PolyFromCoeffs(6, -5, 1) is x^2 - 5x + 6.
func PolyFromCoeffs(coeffs ...int64) Poly {
	c := make([]int64, len(coeffs))
	copy(c, coeffs)
	return Poly{coeffs: trim(c)}
}

// ConstPoly returns the constant polynomial c.
func ConstPoly(c int64) Poly {
	return PolyFromCoeffs(c)
}

// Linear returns the factor (x - a).
func Linear(a int64) Poly {
	return PolyFromCoeffs(-a, 1)
}

// Monomial returns c * x^k.
func Monomial(c int64, k int) Poly {
	if c == 0 {
		return Poly{}
	}
	coeffs := make([]int64, k+1)
	coeffs[k] = c
	return Poly{coeffs: coeffs}
}

// IsZero reports whether p is the zero polynomial.
func (p Poly) IsZero() bool {
	return len(p.coeffs) == 0
}

// Degree returns the degree of p, or -1 for the zero polynomial.
func (p Poly) Degree() int {
	return len(p.coeffs) - 1
}

// Coeff returns the coefficient of x^i (zero beyond the degree).
func (p Poly) Coeff(i int) int64 {
	if i < 0 || i >= len(p.coeffs) {
		return 0
	}
	return p.coeffs[i]
}

// Lead returns the leading coefficient, or 0 for the zero polynomial.
func (p Poly) Lead() int64 {
	if p.IsZero() {
		return 0
	}
	return p.coeffs[len(p.coeffs)-1]
}

// Mul returns the product p * q.
func (p Poly) Mul(q Poly) Poly {
	if p.IsZero() || q.IsZero() {
		return Poly{}
	}
	out := make([]int64, len(p.coeffs)+len(q.coeffs)-1)
	for i, a := range p.coeffs {
		for j, b := range q.coeffs {
			out[i+j] += a * b
		}
	}
	return Poly{coeffs: trim(out)}
}

// EvalRat evaluates p at the rational point r exactly.
// Intermediate products use big.Int so that large divisor candidates
// from the root search cannot overflow.
func (p Poly) EvalRat(r Rat) Rat {
	if p.IsZero() {
		return IntRat(0)
	}
	// Horner over num/den: value = sum c_i * num^i * den^(n-i), all over den^n.
	num := big.NewInt(r.Num)
	acc := new(big.Int)
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		acc.Mul(acc, num)
		term := new(big.Int).SetInt64(p.coeffs[i])
		for j := 0; j < len(p.coeffs)-1-i; j++ {
			term.Mul(term, big.NewInt(r.Den))
		}
		acc.Add(acc, term)
	}
	den := new(big.Int).Exp(big.NewInt(r.Den), big.NewInt(int64(len(p.coeffs)-1)), nil)
	q := new(big.Rat).SetFrac(acc, den)
	// Coefficients and roots in this domain stay far below int64 range.
	return NewRat(q.Num().Int64(), q.Denom().Int64())
}

// IsRoot reports whether r is an exact root of p.
func (p Poly) IsRoot(r Rat) bool {
	if p.IsZero() {
		return true
	}
	return p.EvalRat(r).Num == 0
}

// RationalRoots returns the distinct rational roots of p in ascending
// order, found with the rational root theorem: every rational root
// num/den has num dividing the trailing nonzero coefficient and den
// dividing the leading coefficient. Membership tests are exact — no
// floating point is involved at any step.
//
// Real irrational roots are not reported; by construction the generator
// never produces them, and a hand-built denominator like x^2 + 1 simply
// has no rational (or real) roots at all.
func (p Poly) RationalRoots() []Rat {
	if p.IsZero() || p.Degree() == 0 {
		return nil
	}

	// Strip the x^m factor first: a zero trailing coefficient means
	// x = 0 is a root, and the divisor candidates come from the first
	// nonzero coefficient.
	low := 0
	for low < len(p.coeffs) && p.coeffs[low] == 0 {
		low++
	}

	roots := make(map[Rat]bool)
	if low > 0 {
		roots[IntRat(0)] = true
	}

	trailing := abs(p.coeffs[low])
	leading := abs(p.Lead())
	for _, num := range divisors(trailing) {
		for _, den := range divisors(leading) {
			cand := NewRat(num, den)
			if p.IsRoot(cand) {
				roots[cand] = true
			}
			neg := NewRat(-num, den)
			if p.IsRoot(neg) {
				roots[neg] = true
			}
		}
	}

	out := make([]Rat, 0, len(roots))
	for r := range roots {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Cmp(out[j]) < 0 })
	return out
}

// Deflate divides p by (x - r) for an integer root r, returning the
// quotient. The division is exact when r is a root; callers must check
// IsRoot first.
func (p Poly) Deflate(r int64) Poly {
	if p.Degree() < 1 {
		return Poly{}
	}
	out := make([]int64, len(p.coeffs)-1)
	carry := int64(0)
	for i := len(p.coeffs) - 1; i >= 1; i-- {
		carry = p.coeffs[i] + carry*r
		out[i-1] = carry
	}
	return Poly{coeffs: trim(out)}
}

// Content returns the gcd of all coefficients (1 for the zero polynomial).
func (p Poly) Content() int64 {
	g := int64(0)
	for _, c := range p.coeffs {
		g = gcd(g, abs(c))
	}
	if g == 0 {
		return 1
	}
	return g
}

// DivConst returns p with every coefficient divided by d.
// d must divide the content exactly.
func (p Poly) DivConst(d int64) Poly {
	out := make([]int64, len(p.coeffs))
	for i, c := range p.coeffs {
		out[i] = c / d
	}
	return Poly{coeffs: trim(out)}
}

// divisors returns the positive divisors of n (n > 0).
func divisors(n int64) []int64 {
	var out []int64
	for d := int64(1); d*d <= n; d++ {
		if n%d == 0 {
			out = append(out, d)
			if d != n/d {
				out = append(out, n/d)
			}
		}
	}
	return out
}

// trim drops trailing zero coefficients.
func trim(coeffs []int64) []int64 {
	for len(coeffs) > 0 && coeffs[len(coeffs)-1] == 0 {
		coeffs = coeffs[:len(coeffs)-1]
	}
	return coeffs
}
