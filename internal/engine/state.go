package engine

import (
	"time"

	"git.lost.host/meutraa/groove/internal/gauge"
	"git.lost.host/meutraa/groove/internal/judge"
	"git.lost.host/meutraa/groove/internal/score"
)

type Phase uint8

const (
	NotStarted Phase = iota
	Playing
	Failed
	Finished
)

var phaseNames = [...]string{"not started", "playing", "failed", "finished"}

func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "unknown"
}

// State is a read-only snapshot. Mutating it has no effect on the engine.
type State struct {
	Phase        Phase
	Score        score.Score
	ExScore      int
	MaxExScore   int
	ExScoreRate  float64
	Grade        score.Grade
	Gauge        gauge.Type
	GaugeValue   float64
	GreenNumbers []judge.GreenNumber
	Hispeed      float64
	Lamp         score.Lamp
	TotalNotes   int
	SongTime     time.Duration
}

func (s State) Playing() bool {
	return s.Phase == Playing
}

func (s State) Failed() bool {
	return s.Phase == Failed
}

// Summary is the end of play result handed to the host.
type Summary struct {
	Status      gauge.Status
	Lamp        score.Lamp
	ExScore     int
	MaxExScore  int
	ExScoreRate float64
	Grade       score.Grade
	Score       score.Score
	TotalNotes  int
	Gauge       gauge.Type
	GaugeValue  float64
}

// Accuracy is the share of notes hit inside the Good window, as the economy expects it.
func (s Summary) Accuracy() int {
	return score.Accuracy(s.Score, s.TotalNotes)
}
