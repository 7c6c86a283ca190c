package judge

import (
	"math"
	"time"
)

const DefaultFade = 500 * time.Millisecond

// GreenNumber is the transient fast/slow readout shown on a lane after a hit.
type GreenNumber struct {
	Show    bool
	Value   int64 // |offset| in whole ms
	Fast    bool
	Opacity float64
	Spawn   time.Time
}

func NewGreenNumber(offset time.Duration, now time.Time) GreenNumber {
	return GreenNumber{
		Show:    true,
		Value:   int64(math.Round(float64(abs(offset)) / float64(time.Millisecond))),
		Fast:    offset < 0,
		Opacity: 1,
		Spawn:   now,
	}
}

// Update fades the number linearly to zero over fade, hiding it once fully transparent.
func (gn GreenNumber) Update(now time.Time, fade time.Duration) GreenNumber {
	if !gn.Show {
		return gn
	}
	opacity := 0.0
	if fade > 0 {
		opacity = 1 - float64(now.Sub(gn.Spawn))/float64(fade)
	}
	gn.Opacity = math.Max(0, math.Min(1, opacity))
	gn.Show = gn.Opacity > 0
	return gn
}
