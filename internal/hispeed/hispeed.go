package hispeed

import (
	"math"
	"time"
)

const (
	MinMultiplier = 0.5
	MaxMultiplier = 10.0

	MinDistance     = 100.0
	MaxDistance     = 1000.0
	DefaultDistance = 300.0
)

// Presets are the multipliers offered as one-touch choices.
var Presets = []float64{0.5, 1.0, 1.5, 2.0, 3.0}

// Controller converts a visual scroll multiplier into note speed and lead time.
// It only affects when a note becomes visible, never when it is judged.
type Controller struct {
	multiplier float64
	distance   float64 // pixels from spawn to the hit line
}

func New() *Controller {
	return &Controller{multiplier: 1, distance: DefaultDistance}
}

func (c *Controller) Set(m float64) {
	if math.IsNaN(m) {
		return
	}
	c.multiplier = math.Max(MinMultiplier, math.Min(MaxMultiplier, m))
}

func (c *Controller) Adjust(delta float64) {
	c.Set(c.multiplier + delta)
}

func (c *Controller) Multiplier() float64 {
	return c.multiplier
}

func (c *Controller) SetDistance(px float64) {
	if math.IsNaN(px) {
		return
	}
	c.distance = math.Max(MinDistance, math.Min(MaxDistance, px))
}

func (c *Controller) Distance() float64 {
	return c.distance
}

// NoteSpeed is the scroll speed in pixels per second.
func (c *Controller) NoteSpeed(bpm float64) float64 {
	if bpm <= 0 {
		return 0
	}
	return bpm / 60 * c.distance * c.multiplier
}

// LeadTime is how long before its hit time a note must spawn to travel Distance.
func (c *Controller) LeadTime(bpm float64) time.Duration {
	speed := c.NoteSpeed(bpm)
	if speed <= 0 {
		return 0
	}
	return time.Duration(c.distance / speed * float64(time.Second))
}

// Position returns the pixels between a note and the hit line for a
// frame-interpolated time until the hit. Negative values are past the line.
func (c *Controller) Position(untilHit time.Duration, bpm float64) float64 {
	return c.NoteSpeed(bpm) * untilHit.Seconds()
}
