package audio

import (
	"fmt"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

// StreamClock reads song time from the position of a playing stream. The
// speaker advances the position a buffer at a time, so readings between
// buffers are interpolated with the wall clock, capped at one buffer and never
// going backwards.
type StreamClock struct {
	streamer beep.StreamSeeker
	sr       beep.SampleRate
	buffer   time.Duration

	lock, unlock func()
	wall         func() time.Time

	lastPos  int
	lastWall time.Time
	last     time.Duration
}

func NewStreamClock(s beep.StreamSeeker, sr beep.SampleRate, buffer time.Duration) *StreamClock {
	return &StreamClock{
		streamer: s,
		sr:       sr,
		buffer:   buffer,
		lock:     speaker.Lock,
		unlock:   speaker.Unlock,
		wall:     time.Now,
		lastPos:  -1,
	}
}

func (c *StreamClock) Now() time.Duration {
	c.lock()
	pos := c.streamer.Position()
	c.unlock()

	wall := c.wall()
	if pos != c.lastPos {
		c.lastPos = pos
		c.lastWall = wall
	}
	since := wall.Sub(c.lastWall)
	if since > c.buffer {
		since = c.buffer
	}
	if pos >= c.streamer.Len() {
		since = 0
	}
	now := c.sr.D(pos) + since
	if now < c.last {
		now = c.last
	}
	c.last = now
	return now
}

// Play starts the speaker and plays s, returning a clock that follows it.
func Play(s beep.StreamSeeker, sr beep.SampleRate) (*StreamClock, error) {
	buffer := time.Second / 60
	if err := speaker.Init(sr, sr.N(buffer)); nil != err {
		return nil, fmt.Errorf("unable to initialise speaker: %w", err)
	}
	clock := NewStreamClock(s, sr, buffer)
	speaker.Play(s)
	return clock, nil
}
