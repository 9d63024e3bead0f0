package services

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/stat/distuv"
)

func TestExpectedLeadTimeDays(t *testing.T) {
	cases := []struct {
		point float64
		want  float64
	}{
		{0, 0},
		{10.0, 13.29},
		{1, 1.329},
		{100, 132.9},
	}

	for _, c := range cases {
		got := ExpectedLeadTimeDays(c.point)
		if math.Abs(got-c.want) > 1e-9 {
			t.Errorf("ExpectedLeadTimeDays(%v) = %v, want %v", c.point, got, c.want)
		}
	}
}

func TestExpectedLeadTimeDaysClampsNegative(t *testing.T) {
	if got := ExpectedLeadTimeDays(-5); got != 0 {
		t.Fatalf("negative point estimate should clamp to 0, got %v", got)
	}
}

func TestExpectedLeadTimeDaysMonotonic(t *testing.T) {
	prev := ExpectedLeadTimeDays(0)
	for p := 0.5; p <= 50; p += 0.5 {
		cur := ExpectedLeadTimeDays(p)
		if cur <= prev {
			t.Fatalf("not monotonic at p=%v: %v <= %v", p, cur, prev)
		}
		prev = cur
	}
}

// The 1.645 constant is the one-sided 95% z-score; keep it honest against
// the actual normal quantile.
func TestZUpper95MatchesNormalQuantile(t *testing.T) {
	q := distuv.Normal{Mu: 0, Sigma: 1}.Quantile(0.95)
	if math.Abs(zUpper95-q) > 1e-3 {
		t.Fatalf("zUpper95 = %v, normal 95%% quantile = %v", zUpper95, q)
	}
}
