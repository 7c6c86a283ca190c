package score

import (
	"math"

	"git.lost.host/meutraa/groove/internal/judge"
)

// Score counts judgements and tracks combo for a single play.
type Score struct {
	PGreat, Great, Good, Bad, Poor int
	CurrentCombo, MaxCombo         int
}

// Apply records a judgement. MaxCombo never decreases and is never below CurrentCombo.
func (s *Score) Apply(tier judge.Tier) {
	switch tier {
	case judge.PGreat:
		s.PGreat++
	case judge.Great:
		s.Great++
	case judge.Good:
		s.Good++
	case judge.Bad:
		s.Bad++
	case judge.Poor:
		s.Poor++
	default:
		return
	}
	if tier.BreaksCombo() {
		s.CurrentCombo = 0
		return
	}
	s.CurrentCombo++
	if s.CurrentCombo > s.MaxCombo {
		s.MaxCombo = s.CurrentCombo
	}
}

func (s Score) Count(tier judge.Tier) int {
	switch tier {
	case judge.PGreat:
		return s.PGreat
	case judge.Great:
		return s.Great
	case judge.Good:
		return s.Good
	case judge.Bad:
		return s.Bad
	case judge.Poor:
		return s.Poor
	}
	return 0
}

// Judged is the number of judgements recorded, misses included.
func (s Score) Judged() int {
	return s.PGreat + s.Great + s.Good + s.Bad + s.Poor
}

func ExScore(s Score) int {
	return judge.PGreat.ExPoints()*s.PGreat + judge.Great.ExPoints()*s.Great
}

func MaxExScore(totalNotes int) int {
	if totalNotes < 0 {
		return 0
	}
	return judge.PGreat.ExPoints() * totalNotes
}

// ExScoreRate is the EX score as a percentage of the maximum, 0 for an empty chart.
func ExScoreRate(ex, maxEx int) float64 {
	if maxEx <= 0 {
		return 0
	}
	return math.Max(0, math.Min(100, 100*float64(ex)/float64(maxEx)))
}

// Accuracy is the share of notes hit inside the Good window, rounded to a whole percent.
func Accuracy(s Score, totalNotes int) int {
	if totalNotes <= 0 {
		return 0
	}
	hits := s.PGreat + s.Great + s.Good
	return int(math.Round(math.Min(100, 100*float64(hits)/float64(totalNotes))))
}
