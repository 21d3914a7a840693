package ratfunc

import "testing"

func TestMulExpandsFactors(t *testing.T) {
	// (x - 2)(x - 3) = x^2 - 5x + 6
	p := Linear(2).Mul(Linear(3))
	want := []int64{6, -5, 1}
	if p.Degree() != 2 {
		t.Fatalf("degree = %d, want 2", p.Degree())
	}
	for i, w := range want {
		if got := p.Coeff(i); got != w {
			t.Errorf("coeff[%d] = %d, want %d", i, got, w)
		}
	}
}

func TestMulZero(t *testing.T) {
	p := Linear(1).Mul(Poly{})
	if !p.IsZero() {
		t.Error("product with zero polynomial should be zero")
	}
	if p.Degree() != -1 {
		t.Errorf("zero polynomial degree = %d, want -1", p.Degree())
	}
}

func TestRationalRoots(t *testing.T) {
	tests := []struct {
		name string
		p    Poly
		want []Rat
	}{
		{"two integer roots", Linear(2).Mul(Linear(3)), []Rat{IntRat(2), IntRat(3)}},
		{"negative root", Linear(-4), []Rat{IntRat(-4)}},
		{"no real roots", PolyFromCoeffs(1, 0, 1), nil}, // x^2 + 1
		{"fractional root", PolyFromCoeffs(-1, 2), []Rat{NewRat(1, 2)}},
		{"zero root from monomial", Monomial(2, 2), []Rat{IntRat(0)}},
		{"mixed", Monomial(3, 1).Mul(Linear(5)), []Rat{IntRat(0), IntRat(5)}},
		{"repeated root reported once", Linear(1).Mul(Linear(1)), []Rat{IntRat(1)}},
		{"constant", ConstPoly(7), nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.p.RationalRoots()
			if len(got) != len(tc.want) {
				t.Fatalf("roots = %v, want %v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("roots = %v, want %v", got, tc.want)
					break
				}
			}
		})
	}
}

func TestDeflate(t *testing.T) {
	// (x - 2)(x - 3) deflated at 2 leaves (x - 3).
	p := Linear(2).Mul(Linear(3)).Deflate(2)
	if p.Degree() != 1 || p.Coeff(1) != 1 || p.Coeff(0) != -3 {
		t.Errorf("deflated poly = %+v, want x - 3", p)
	}
}

func TestEvalRat(t *testing.T) {
	p := Linear(2).Mul(Linear(3)) // x^2 - 5x + 6

	tests := []struct {
		x    Rat
		want Rat
	}{
		{IntRat(0), IntRat(6)},
		{IntRat(2), IntRat(0)},
		{IntRat(3), IntRat(0)},
		{IntRat(-1), IntRat(12)},
		{NewRat(1, 2), NewRat(15, 4)},
	}

	for _, tc := range tests {
		if got := p.EvalRat(tc.x); got != tc.want {
			t.Errorf("p(%s) = %s, want %s", tc.x, got, tc.want)
		}
	}
}

func TestContentAndDivConst(t *testing.T) {
	p := Monomial(4, 1).Mul(Linear(-2)) // 4x^2 + 8x
	if g := p.Content(); g != 4 {
		t.Fatalf("content = %d, want 4", g)
	}
	q := p.DivConst(4)
	if q.Coeff(2) != 1 || q.Coeff(1) != 2 {
		t.Errorf("divided poly = %+v, want x^2 + 2x", q)
	}
}
