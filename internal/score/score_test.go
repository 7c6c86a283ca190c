package score

import (
	"math/rand"
	"testing"

	"git.lost.host/meutraa/groove/internal/judge"
)

func TestApplyCombo(t *testing.T) {
	var s Score
	for _, tier := range []judge.Tier{judge.PGreat, judge.Great, judge.Good} {
		s.Apply(tier)
	}
	if s.CurrentCombo != 3 || s.MaxCombo != 3 {
		t.Fatalf("combo %d max %d", s.CurrentCombo, s.MaxCombo)
	}
	s.Apply(judge.Bad)
	if s.CurrentCombo != 0 || s.MaxCombo != 3 {
		t.Fatalf("after bad: combo %d max %d", s.CurrentCombo, s.MaxCombo)
	}
	s.Apply(judge.PGreat)
	s.Apply(judge.Poor)
	if s.CurrentCombo != 0 || s.MaxCombo != 3 {
		t.Fatalf("after poor: combo %d max %d", s.CurrentCombo, s.MaxCombo)
	}
	if s.PGreat != 2 || s.Great != 1 || s.Good != 1 || s.Bad != 1 || s.Poor != 1 || s.Judged() != 6 {
		t.Errorf("counts %+v", s)
	}
}

func TestMaxComboMonotonic(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	var s Score
	last := 0
	for i := 0; i < 5000; i++ {
		tier := judge.Tiers[r.Intn(len(judge.Tiers))]
		s.Apply(tier)
		if s.MaxCombo < last || s.MaxCombo < s.CurrentCombo {
			t.Fatalf("step %d: max %d last %d current %d", i, s.MaxCombo, last, s.CurrentCombo)
		}
		if tier.BreaksCombo() && s.CurrentCombo != 0 {
			t.Fatalf("step %d: %v left combo at %d", i, tier, s.CurrentCombo)
		}
		last = s.MaxCombo
	}
}

func TestCount(t *testing.T) {
	s := Score{PGreat: 5, Great: 4, Good: 3, Bad: 2, Poor: 1}
	for i, tier := range judge.Tiers {
		if s.Count(tier) != 5-i {
			t.Errorf("%v count %d", tier, s.Count(tier))
		}
	}
}

func TestExScore(t *testing.T) {
	s := Score{PGreat: 10}
	ex, maxEx := ExScore(s), MaxExScore(10)
	if ex != 20 || maxEx != 20 || ExScoreRate(ex, maxEx) != 100 {
		t.Errorf("ex %d max %d rate %v", ex, maxEx, ExScoreRate(ex, maxEx))
	}
	s = Score{PGreat: 3, Great: 2, Good: 4}
	if ExScore(s) != 8 {
		t.Errorf("ex %d", ExScore(s))
	}
}

func TestExScoreRateBounds(t *testing.T) {
	tests := []struct {
		ex, max int
		rate    float64
	}{
		{0, 0, 0},
		{5, 0, 0},
		{0, 20, 0},
		{10, 20, 50},
		{40, 20, 100},
	}
	for _, test := range tests {
		if rate := ExScoreRate(test.ex, test.max); rate != test.rate {
			t.Errorf("ExScoreRate(%d, %d) = %v, expected %v", test.ex, test.max, rate, test.rate)
		}
	}
}

func TestAccuracy(t *testing.T) {
	s := Score{PGreat: 2, Great: 3, Good: 1, Bad: 2, Poor: 1}
	if a := Accuracy(s, 9); a != 67 {
		t.Errorf("accuracy %d", a)
	}
	if a := Accuracy(s, 0); a != 0 {
		t.Errorf("accuracy with no notes %d", a)
	}
}
