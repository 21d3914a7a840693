package ratfunc

import (
	"fmt"
	"strings"
)

// renderPoly renders expanded coefficients as plain text, highest power
// first: "x^2 - 5x + 6", "2x^3", "-4". The zero polynomial renders "0".
func renderPoly(p Poly) string {
	if p.IsZero() {
		return "0"
	}

	var b strings.Builder
	first := true
	for i := p.Degree(); i >= 0; i-- {
		c := p.Coeff(i)
		if c == 0 {
			continue
		}
		if first {
			if c < 0 {
				b.WriteString("-")
			}
		} else {
			if c < 0 {
				b.WriteString(" - ")
			} else {
				b.WriteString(" + ")
			}
		}
		writeTerm(&b, abs(c), i, false)
		first = false
	}
	return b.String()
}

// renderPolyLaTeX is renderPoly with LaTeX exponents: "x^{2} - 5x + 6".
func renderPolyLaTeX(p Poly) string {
	if p.IsZero() {
		return "0"
	}

	var b strings.Builder
	first := true
	for i := p.Degree(); i >= 0; i-- {
		c := p.Coeff(i)
		if c == 0 {
			continue
		}
		if first {
			if c < 0 {
				b.WriteString("-")
			}
		} else {
			if c < 0 {
				b.WriteString(" - ")
			} else {
				b.WriteString(" + ")
			}
		}
		writeTerm(&b, abs(c), i, true)
		first = false
	}
	return b.String()
}

// writeTerm writes one |coeff|·x^power term, eliding unit coefficients
// and unit powers the usual way.
func writeTerm(b *strings.Builder, coeff int64, power int, latex bool) {
	switch {
	case power == 0:
		fmt.Fprintf(b, "%d", coeff)
	case coeff == 1:
		b.WriteString("x")
	default:
		fmt.Fprintf(b, "%dx", coeff)
	}
	if power >= 2 {
		if latex {
			fmt.Fprintf(b, "^{%d}", power)
		} else {
			fmt.Fprintf(b, "^%d", power)
		}
	}
}

// renderQuotient renders the simplified quotient in plain text.
// A constant denominator of 1 is elided; multi-term polynomials are
// parenthesized so the division reads unambiguously.
func renderQuotient(num, den Poly) string {
	n := renderPoly(num)
	if den.Degree() == 0 && den.Coeff(0) == 1 {
		return n
	}
	d := renderPoly(den)
	return wrap(n, num) + "/" + wrap(d, den)
}

// renderQuotientLaTeX renders the simplified quotient as \frac{...}{...}.
func renderQuotientLaTeX(num, den Poly) string {
	n := renderPolyLaTeX(num)
	if den.Degree() == 0 && den.Coeff(0) == 1 {
		return n
	}
	return fmt.Sprintf(`\frac{%s}{%s}`, n, renderPolyLaTeX(den))
}

// wrap parenthesizes a rendered polynomial when it has more than one term.
func wrap(s string, p Poly) string {
	terms := 0
	for i := 0; i <= p.Degree(); i++ {
		if p.Coeff(i) != 0 {
			terms++
		}
	}
	if terms > 1 || strings.HasPrefix(s, "-") {
		return "(" + s + ")"
	}
	return s
}
