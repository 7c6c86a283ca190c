package score

import (
	"testing"

	"git.lost.host/meutraa/groove/internal/gauge"
)

var gradeTests = map[float64]Grade{
	100:   AAA,
	88.89: AAA,
	88.88: AA,
	77.78: AA,
	70:    A,
	60:    B,
	50:    C,
	40:    D,
	25:    E,
	22.22: F,
	0:     F,
}

func TestGradeFromRate(t *testing.T) {
	for rate, expected := range gradeTests {
		if g := GradeFromRate(rate); g != expected {
			t.Errorf("GradeFromRate(%v) = %v, expected %v", rate, g, expected)
		}
	}
}

func TestClearLamp(t *testing.T) {
	tests := []struct {
		name   string
		status gauge.Status
		kind   gauge.Type
		score  Score
		total  int
		lamp   Lamp
	}{
		{"failed wins", gauge.Failed, gauge.Normal, Score{PGreat: 10, MaxCombo: 10}, 10, Failed},
		{"all pgreat", gauge.Clear, gauge.Normal, Score{PGreat: 10, MaxCombo: 10}, 10, Perfect},
		{"pgreat and great", gauge.Clear, gauge.Hard, Score{PGreat: 6, Great: 4, MaxCombo: 10}, 10, Perfect},
		{"good breaks perfect", gauge.Clear, gauge.Normal, Score{PGreat: 9, Good: 1, MaxCombo: 10}, 10, FullCombo},
		{"one bad", gauge.Clear, gauge.Normal, Score{PGreat: 9, Bad: 1, MaxCombo: 5}, 10, Clear},
		{"easy", gauge.Clear, gauge.Easy, Score{PGreat: 9, Poor: 1, MaxCombo: 9}, 10, EasyClear},
		{"hard", gauge.Clear, gauge.Hard, Score{PGreat: 9, Poor: 1, MaxCombo: 9}, 10, HardClear},
		{"hazard", gauge.Clear, gauge.Hazard, Score{PGreat: 9, Good: 1, MaxCombo: 4}, 10, HardClear},
		{"exhard", gauge.Clear, gauge.ExHard, Score{PGreat: 9, Poor: 1, MaxCombo: 9}, 10, ExHardClear},
		{"empty chart", gauge.Clear, gauge.Hard, Score{}, 0, HardClear},
		{"empty chart normal", gauge.Clear, gauge.Normal, Score{}, 0, Clear},
		{"empty chart exhard", gauge.Clear, gauge.ExHard, Score{}, 0, ExHardClear},
	}
	for _, test := range tests {
		if lamp := ClearLamp(test.status, test.kind, test.score, test.total); lamp != test.lamp {
			t.Errorf("%s: lamp %v, expected %v", test.name, lamp, test.lamp)
		}
	}
}
