package ratfunc

import "testing"

func TestNewRatNormalizes(t *testing.T) {
	tests := []struct {
		num, den int64
		want     string
	}{
		{1, 2, "1/2"},
		{2, 4, "1/2"},
		{-2, 6, "-1/3"},
		{2, -6, "-1/3"},
		{-2, -6, "1/3"},
		{4, 2, "2"},
		{0, 5, "0"},
		{-7, 1, "-7"},
	}

	for _, tc := range tests {
		if got := NewRat(tc.num, tc.den).String(); got != tc.want {
			t.Errorf("NewRat(%d, %d) = %q, want %q", tc.num, tc.den, got, tc.want)
		}
	}
}

func TestRatCmp(t *testing.T) {
	if NewRat(1, 3).Cmp(NewRat(1, 2)) != -1 {
		t.Error("1/3 should compare below 1/2")
	}
	if NewRat(2, 4).Cmp(NewRat(1, 2)) != 0 {
		t.Error("2/4 should equal 1/2")
	}
	if IntRat(1).Cmp(NewRat(-5, 2)) != 1 {
		t.Error("1 should compare above -5/2")
	}
}

func TestRatAddInt(t *testing.T) {
	if got := NewRat(1, 2).AddInt(-2).String(); got != "-3/2" {
		t.Errorf("1/2 - 2 = %q, want -3/2", got)
	}
	if got := IntRat(3).AddInt(3).String(); got != "6" {
		t.Errorf("3 + 3 = %q, want 6", got)
	}
}
