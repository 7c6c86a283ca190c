package history

import (
	"sort"

	"git.lost.host/meutraa/groove/internal/engine"
	"git.lost.host/meutraa/groove/internal/game"
)

// Replay scores an input log against a chart with a fresh engine. Misses are
// resolved before each press exactly as the live host does, so a replay of a
// recorded play reproduces its summary. The log keeps only per lane times, so
// presses on different lanes stamped with the same time are replayed in lane
// order, which may differ from the order they were read in.
func Replay(chart *game.Chart, inputs []Input, opts engine.Options) engine.Summary {
	chart.Reset()
	defer chart.Reset()

	clock := &engine.ManualClock{}
	e := engine.New(len(chart.Notes), opts)
	e.Start(chart.BPM, clock)
	catch := e.Windows().Catch()

	// The playfield in a replay holds every note from the start
	chart.Spawn(0, chart.Length())
	active, _, _ := chart.Active()

	ins := make([]Input, len(inputs))
	copy(ins, inputs)
	sortInputs(ins)

	for _, in := range ins {
		clock.Set(in.Time)
		for _, note := range chart.Expired(in.Time, catch) {
			e.HandleMissedNote(note)
		}
		e.HandleLaneHitAt(in.Lane, active, in.Time)
	}
	end := chart.Length() + catch + 1
	clock.Set(end)
	for _, note := range chart.Expired(end, catch) {
		e.HandleMissedNote(note)
	}
	return e.End()
}

// sortInputs orders presses by time, keeping the given order of ties.
func sortInputs(ins []Input) {
	sort.SliceStable(ins, func(i, j int) bool { return ins[i].Time < ins[j].Time })
}
