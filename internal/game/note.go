package game

import (
	"time"

	"git.lost.host/meutraa/groove/internal/judge"
	"github.com/google/uuid"
)

// Scheduled is a note as the chart defines it. It never changes once built.
type Scheduled struct {
	Lane  int
	Denom int           // The beat length, as a denominator, 1 = 1/4 beat
	Time  time.Duration // The time the note should be hit, from song start
}

// Note is the live copy of a Scheduled note held by the playfield.
// The engine only ever marks it judged.
type Note struct {
	ID    uuid.UUID
	Lane  int
	Denom int
	Time  time.Duration

	// This is state
	Hit         bool          // Judged, either by a hit or a miss
	Missed      bool          // Scrolled past the catch window unhit
	Judgement   judge.Tier    // Valid once Hit
	TimingError time.Duration // Hit time minus Time, zero for misses
}

func Live(s Scheduled) *Note {
	return &Note{
		ID:    uuid.New(),
		Lane:  s.Lane,
		Denom: s.Denom,
		Time:  s.Time,
	}
}

func (n *Note) Judged() bool {
	return n.Hit
}
