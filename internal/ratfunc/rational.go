package ratfunc

import (
	"fmt"
	"strconv"
)

// Rat is an exact rational number with int64 numerator and denominator.
// It is always stored normalized: lowest terms, denominator positive.
// The zero value is not valid; use NewRat or IntRat.
type Rat struct {
	Num int64
	Den int64
}

// IntRat returns the rational n/1.
func IntRat(n int64) Rat {
	return Rat{Num: n, Den: 1}
}

// NewRat returns num/den reduced to lowest terms with a positive denominator.
// Panics if den is zero; callers are expected to guard division by zero
// themselves (a zero denominator is a domain error, not an arithmetic one).
func NewRat(num, den int64) Rat {
	if den == 0 {
		panic("ratfunc: zero denominator")
	}
	if den < 0 {
		num = -num
		den = -den
	}
	g := gcd(abs(num), den)
	return Rat{Num: num / g, Den: den / g}
}

// AddInt returns r + n.
func (r Rat) AddInt(n int64) Rat {
	return NewRat(r.Num+n*r.Den, r.Den)
}

// IsInt reports whether r is an integer.
func (r Rat) IsInt() bool {
	return r.Den == 1
}

// Cmp compares r and s, returning -1, 0, or +1.
func (r Rat) Cmp(s Rat) int {
	// Denominators are positive, so cross multiplication preserves order.
	a := r.Num * s.Den
	b := s.Num * r.Den
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// String renders the canonical form: "2", "-7", or "300/7".
func (r Rat) String() string {
	if r.Den == 1 {
		return strconv.FormatInt(r.Num, 10)
	}
	return fmt.Sprintf("%d/%d", r.Num, r.Den)
}

// gcd returns the greatest common divisor of a and b.
// Both a and b must be non-negative. gcd(0, 0) returns 1 so that
// callers can divide by the result unconditionally.
func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	if a == 0 {
		return 1
	}
	return a
}

// abs returns the absolute value of n.
func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
