package game

import (
	"math/rand"
	"time"
)

const (
	beatsPerBar = 4
	slotsPerBar = 8 // eighth notes
)

// Pattern builds a deterministic chart of bars at a fixed tempo. The first
// bar is left empty so the player can find the beat.
func Pattern(d Difficulty, bpm float64, bars int, seed int64) *Chart {
	chart := &Chart{BPM: bpm, Difficulty: d}
	if bpm <= 0 || bars <= 0 || d.Lanes == 0 {
		return chart
	}

	secondsPerBeat := 60.0 / bpm
	secondsPerSlot := secondsPerBeat * beatsPerBar / slotsPerBar
	at := func(slot int) time.Duration {
		return time.Duration(float64(slot) * secondsPerSlot * float64(time.Second))
	}

	r := rand.New(rand.NewSource(seed))
	lastLane := -1
	for bar := 0; bar <= bars; bar++ {
		for i := 0; i < slotsPerBar; i++ {
			slot := bar*slotsPerBar + i
			denom := 4
			if i == 0 {
				denom = 1
			}
			if i%2 == 0 {
				chart.Measures = append(chart.Measures, Measure{Denom: denom, Time: at(slot)})
			}
			if bar == 0 {
				continue
			}

			// Downbeats always carry a note, offbeats only at higher densities
			chance := d.Density
			if i%2 == 1 {
				chance *= 0.5
			}
			if i%4 == 0 {
				chance = 1
			}
			if r.Float64() >= chance {
				continue
			}

			lane := r.Intn(int(d.Lanes))
			if lane == lastLane && d.Lanes > 1 {
				lane = (lane + 1 + r.Intn(int(d.Lanes)-1)) % int(d.Lanes)
			}
			lastLane = lane

			noteDenom := 1
			if i%2 == 1 {
				noteDenom = 2
			}
			chart.Notes = append(chart.Notes, Scheduled{
				Lane:  lane,
				Denom: noteDenom,
				Time:  at(slot),
			})
		}
	}
	return chart
}
