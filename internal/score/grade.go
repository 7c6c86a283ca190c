package score

import "git.lost.host/meutraa/groove/internal/gauge"

// Grade is the letter rank derived from the EX score rate.
type Grade uint8

const (
	F Grade = iota
	E
	D
	C
	B
	A
	AA
	AAA
)

var gradeNames = [...]string{"F", "E", "D", "C", "B", "A", "AA", "AAA"}

func (g Grade) String() string {
	if int(g) < len(gradeNames) {
		return gradeNames[g]
	}
	return "?"
}

// Rates are in ninths of the maximum EX score, highest first.
var gradeTable = []struct {
	grade Grade
	rate  float64
}{
	{AAA, 800.0 / 9},
	{AA, 700.0 / 9},
	{A, 600.0 / 9},
	{B, 500.0 / 9},
	{C, 400.0 / 9},
	{D, 300.0 / 9},
	{E, 200.0 / 9},
}

func GradeFromRate(rate float64) Grade {
	for _, row := range gradeTable {
		if rate >= row.rate {
			return row.grade
		}
	}
	return F
}

// Lamp is the categorical result of a finished play.
type Lamp uint8

const (
	NoPlay Lamp = iota
	Failed
	EasyClear
	Clear
	HardClear
	ExHardClear
	FullCombo
	Perfect
)

var lampNames = [...]string{
	"NO PLAY", "FAILED", "EASY CLEAR", "CLEAR", "HARD CLEAR", "EX-HARD CLEAR", "FULL COMBO", "PERFECT",
}

func (l Lamp) String() string {
	if int(l) < len(lampNames) {
		return lampNames[l]
	}
	return "UNKNOWN"
}

// ClearLamp resolves the lamp; the first matching rule wins.
func ClearLamp(status gauge.Status, kind gauge.Type, s Score, totalNotes int) Lamp {
	switch {
	case status == gauge.Failed:
		return Failed
	case totalNotes > 0 && s.Good == 0 && s.Bad == 0 && s.Poor == 0 && s.PGreat+s.Great == totalNotes:
		return Perfect
	case totalNotes > 0 && s.MaxCombo == totalNotes:
		return FullCombo
	}
	switch kind {
	case gauge.ExHard:
		return ExHardClear
	case gauge.Hard, gauge.Hazard:
		return HardClear
	case gauge.Easy:
		return EasyClear
	}
	return Clear
}
