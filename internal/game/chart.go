package game

import (
	"time"
)

// Chart is an ordered, immutable note sequence plus the sliding window of
// live notes currently on the playfield.
type Chart struct {
	BPM        float64
	Difficulty Difficulty
	Notes      []Scheduled
	Measures   []Measure

	active  []*Note
	spawned int
}

// Active returns the live notes and the range of Notes that has been spawned.
func (c *Chart) Active() ([]*Note, int, int) {
	return c.active, c.spawned - len(c.active), c.spawned
}

// Spawn makes every note due within lead of now live, in chart order, and returns them.
func (c *Chart) Spawn(now, lead time.Duration) []*Note {
	start := len(c.active)
	for c.spawned < len(c.Notes) && c.Notes[c.spawned].Time-now <= lead {
		c.active = append(c.active, Live(c.Notes[c.spawned]))
		c.spawned++
	}
	return c.active[start:]
}

// Expired returns the unjudged live notes whose catch window closed before now.
func (c *Chart) Expired(now, catch time.Duration) []*Note {
	expired := []*Note{}
	for _, note := range c.active {
		if note.Time+catch >= now {
			// active is time ordered, nothing later can be expired
			break
		}
		if !note.Judged() {
			expired = append(expired, note)
		}
	}
	return expired
}

// Prune drops judged notes that are more than keep behind now.
func (c *Chart) Prune(now, keep time.Duration) {
	n := 0
	for n < len(c.active) && c.active[n].Judged() && c.active[n].Time+keep < now {
		n++
	}
	c.active = c.active[n:]
}

// Done reports whether every note has been spawned and judged.
func (c *Chart) Done() bool {
	if c.spawned < len(c.Notes) {
		return false
	}
	for _, note := range c.active {
		if !note.Judged() {
			return false
		}
	}
	return true
}

// Reset clears all live state so the chart can be played again.
func (c *Chart) Reset() {
	c.active = nil
	c.spawned = 0
}

// Length is the hit time of the last note.
func (c *Chart) Length() time.Duration {
	if len(c.Notes) == 0 {
		return 0
	}
	return c.Notes[len(c.Notes)-1].Time
}
