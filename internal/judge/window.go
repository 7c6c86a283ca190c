package judge

import (
	"fmt"
	"math"
	"time"
)

type Window struct {
	Tier Tier
	Time time.Duration // inclusive bound on |offset|
}

// Windows is an ordered classification table, narrowest first.
// The last window is the outer catch window: offsets beyond it are not judgements.
type Windows []Window

var DefaultWindows = Windows{
	{Tier: PGreat, Time: 20 * time.Millisecond},
	{Tier: Great, Time: 60 * time.Millisecond},
	{Tier: Good, Time: 150 * time.Millisecond},
	{Tier: Bad, Time: 280 * time.Millisecond},
	{Tier: Poor, Time: 300 * time.Millisecond},
}

// Result is a classified hit. Offset is hit time minus note time,
// so a negative offset is an early (fast) hit.
type Result struct {
	Tier   Tier
	Offset time.Duration
}

func (r Result) OffsetMs() float64 {
	return float64(r.Offset) / float64(time.Millisecond)
}

func (r Result) Fast() bool {
	return r.Offset < 0
}

func abs(x time.Duration) time.Duration {
	if x < 0 {
		return -x
	}
	return x
}

// Classify maps a signed offset onto the first window that contains it.
// ok is false when the offset lies outside the catch window.
func (ws Windows) Classify(offset time.Duration) (Result, bool) {
	d := abs(offset)
	for _, w := range ws {
		if d <= w.Time {
			return Result{Tier: w.Tier, Offset: offset}, true
		}
	}
	return Result{}, false
}

// Catch returns the outer window bound, or 0 for an empty table.
func (ws Windows) Catch() time.Duration {
	if len(ws) == 0 {
		return 0
	}
	return ws[len(ws)-1].Time
}

// Window returns the bound configured for a tier.
func (ws Windows) Window(t Tier) (time.Duration, bool) {
	for _, w := range ws {
		if w.Tier == t {
			return w.Time, true
		}
	}
	return 0, false
}

// Validate checks that every tier appears once, in order, with strictly growing bounds.
func (ws Windows) Validate() error {
	if len(ws) != len(Tiers) {
		return fmt.Errorf("expected %d judgement windows, got %d", len(Tiers), len(ws))
	}
	var last time.Duration
	for i, w := range ws {
		if w.Tier != Tiers[i] {
			return fmt.Errorf("window %d is %v, expected %v", i, w.Tier, Tiers[i])
		}
		if w.Time <= last {
			return fmt.Errorf("%v window %v must be wider than %v", w.Tier, w.Time, last)
		}
		last = w.Time
	}
	return nil
}

// FormatOffset renders an offset as signed whole milliseconds, e.g. "-12".
func FormatOffset(offset time.Duration) string {
	ms := int64(math.Round(float64(offset) / float64(time.Millisecond)))
	if ms < 0 {
		return fmt.Sprintf("-%d", -ms)
	}
	return fmt.Sprintf("+%d", ms)
}
