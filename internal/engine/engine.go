// Package engine judges a play session: it owns the score, the groove gauge,
// the hispeed setting and the per lane timing feedback, and is driven by the
// host's input events and frame ticks on a single goroutine.
package engine

import (
	"math"
	"time"

	"git.lost.host/meutraa/groove/internal/game"
	"git.lost.host/meutraa/groove/internal/gauge"
	"git.lost.host/meutraa/groove/internal/hispeed"
	"git.lost.host/meutraa/groove/internal/judge"
	"git.lost.host/meutraa/groove/internal/score"
)

const DefaultLanes = 4

type Options struct {
	Lanes   int
	Gauge   gauge.Type
	Windows judge.Windows
	Fade    time.Duration

	// Now is the display clock used to fade green numbers. It never takes part in judging.
	Now func() time.Time
}

func (o Options) withDefaults() Options {
	if o.Lanes <= 0 {
		o.Lanes = DefaultLanes
	}
	if len(o.Windows) == 0 {
		o.Windows = judge.DefaultWindows
	}
	if o.Fade <= 0 {
		o.Fade = judge.DefaultFade
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// Engine is not safe for concurrent use; the host serialises ticks and input.
type Engine struct {
	opts       Options
	totalNotes int

	phase  Phase
	ended  bool
	bpm    float64
	clock  Clock
	origin time.Duration

	score   score.Score
	gauge   *gauge.Gauge
	hispeed *hispeed.Controller
	greens  []judge.GreenNumber
	summary Summary
}

func New(totalNotes int, opts Options) *Engine {
	opts = opts.withDefaults()
	if totalNotes < 0 {
		totalNotes = 0
	}
	return &Engine{
		opts:       opts,
		totalNotes: totalNotes,
		gauge:      gauge.New(opts.Gauge, totalNotes),
		hispeed:    hispeed.New(),
		greens:     make([]judge.GreenNumber, opts.Lanes),
	}
}

// Start records the clock's current reading as song time zero.
func (e *Engine) Start(bpm float64, clock Clock) {
	if e.phase != NotStarted || nil == clock {
		return
	}
	e.bpm = bpm
	e.clock = clock
	e.origin = clock.Now()
	e.phase = Playing
}

// SongTime is the audio clock relative to Start.
func (e *Engine) SongTime() time.Duration {
	if nil == e.clock {
		return 0
	}
	return e.clock.Now() - e.origin
}

// HandleLaneHit judges a press on lane at the current audio time.
func (e *Engine) HandleLaneHit(lane int, notes []*game.Note) (judge.Result, bool) {
	return e.HandleLaneHitAt(lane, notes, e.SongTime())
}

// HandleLaneHitAt judges a press on lane that happened at song time at. It picks
// the unjudged note in the lane closest to at; presses with no note in reach
// consume nothing.
func (e *Engine) HandleLaneHitAt(lane int, notes []*game.Note, at time.Duration) (judge.Result, bool) {
	if e.phase != Playing || lane < 0 || lane >= e.opts.Lanes {
		return judge.Result{}, false
	}

	var closest *game.Note
	distance := time.Duration(math.MaxInt64)
	for _, note := range notes {
		if nil == note || note.Hit || note.Lane != lane {
			continue
		}
		d := note.Time - at
		if d < 0 {
			d = -d
		}
		if d < distance {
			distance = d
			closest = note
		}
	}
	if nil == closest {
		return judge.Result{}, false
	}

	res, ok := e.opts.Windows.Classify(at - closest.Time)
	if !ok {
		return judge.Result{}, false
	}

	closest.Hit = true
	closest.Judgement = res.Tier
	closest.TimingError = res.Offset

	e.apply(res.Tier)
	e.greens[lane] = judge.NewGreenNumber(res.Offset, e.opts.Now())
	return res, true
}

// HandleMissedNote judges a note that scrolled past the catch window as Poor.
func (e *Engine) HandleMissedNote(note *game.Note) {
	if e.phase != Playing || nil == note || note.Hit {
		return
	}
	note.Hit = true
	note.Missed = true
	note.Judgement = judge.Poor
	note.TimingError = 0
	e.apply(judge.Poor)
}

func (e *Engine) apply(tier judge.Tier) {
	e.score.Apply(tier)
	e.gauge.Update(tier)
	if e.gauge.Failed() {
		e.phase = Failed
	}
}

// UpdateGreenNumbers advances the fade of every lane's timing readout.
func (e *Engine) UpdateGreenNumbers() {
	if e.ended {
		return
	}
	now := e.opts.Now()
	for i, gn := range e.greens {
		e.greens[i] = gn.Update(now, e.opts.Fade)
	}
}

func (e *Engine) SetHispeed(m float64) {
	if e.ended {
		return
	}
	e.hispeed.Set(m)
}

// AdjustHispeed steps the multiplier by delta, within the controller's limits.
func (e *Engine) AdjustHispeed(delta float64) {
	if e.ended {
		return
	}
	e.hispeed.Adjust(delta)
}

func (e *Engine) Hispeed() float64 {
	return e.hispeed.Multiplier()
}

// NoteSpeed is the scroll speed in pixels per second at the session tempo.
func (e *Engine) NoteSpeed() float64 {
	return e.hispeed.NoteSpeed(e.bpm)
}

// LeadTime is how far ahead of its hit time a note must be shown.
func (e *Engine) LeadTime() time.Duration {
	return e.hispeed.LeadTime(e.bpm)
}

// Position maps a frame-interpolated time until hit onto pixels above the hit line.
func (e *Engine) Position(untilHit time.Duration) float64 {
	return e.hispeed.Position(untilHit, e.bpm)
}

func (e *Engine) Windows() judge.Windows {
	return e.opts.Windows
}

func (e *Engine) Lanes() int {
	return e.opts.Lanes
}

func (e *Engine) Phase() Phase {
	return e.phase
}

// End finishes the session and resolves the clear lamp. Further calls return
// the same summary and the engine no longer changes.
func (e *Engine) End() Summary {
	if e.ended {
		return e.summary
	}
	e.ended = true

	status := e.gauge.FinalJudge()
	lamp := score.ClearLamp(status, e.gauge.Type(), e.score, e.totalNotes)
	switch e.phase {
	case NotStarted:
		status, lamp = gauge.Failed, score.NoPlay
		e.phase = Finished
	case Playing:
		e.phase = Finished
	}

	ex, maxEx := score.ExScore(e.score), score.MaxExScore(e.totalNotes)
	rate := score.ExScoreRate(ex, maxEx)
	e.summary = Summary{
		Status:      status,
		Lamp:        lamp,
		ExScore:     ex,
		MaxExScore:  maxEx,
		ExScoreRate: rate,
		Grade:       score.GradeFromRate(rate),
		Score:       e.score,
		TotalNotes:  e.totalNotes,
		Gauge:       e.gauge.Type(),
		GaugeValue:  e.gauge.Value(),
	}
	return e.summary
}

func (e *Engine) State() State {
	ex, maxEx := score.ExScore(e.score), score.MaxExScore(e.totalNotes)
	rate := score.ExScoreRate(ex, maxEx)
	greens := make([]judge.GreenNumber, len(e.greens))
	copy(greens, e.greens)

	lamp := score.NoPlay
	if e.ended {
		lamp = e.summary.Lamp
	}
	return State{
		Phase:        e.phase,
		Score:        e.score,
		ExScore:      ex,
		MaxExScore:   maxEx,
		ExScoreRate:  rate,
		Grade:        score.GradeFromRate(rate),
		Gauge:        e.gauge.Type(),
		GaugeValue:   e.gauge.Value(),
		GreenNumbers: greens,
		Hispeed:      e.hispeed.Multiplier(),
		Lamp:         lamp,
		TotalNotes:   e.totalNotes,
		SongTime:     e.SongTime(),
	}
}
