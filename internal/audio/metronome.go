package audio

import (
	"errors"
	"math"
	"time"

	"github.com/faiface/beep"
)

const (
	clickLength = 30 * time.Millisecond
	clickVolume = 0.4
	beatFreq    = 1000.0
	barFreq     = 1500.0
	beatsPerBar = 4
)

// Metronome synthesises a click on every beat, accenting the first beat of each bar.
type Metronome struct {
	sr     beep.SampleRate
	beat   float64 // samples per beat
	click  int
	length int
	pos    int
}

func NewMetronome(sr beep.SampleRate, bpm float64, length time.Duration) *Metronome {
	m := &Metronome{
		sr:     sr,
		click:  sr.N(clickLength),
		length: sr.N(length),
	}
	if bpm > 0 {
		m.beat = float64(sr) * 60 / bpm
	}
	return m
}

// sample returns the mono value at position p.
func (m *Metronome) sample(p int) float64 {
	if m.beat <= 0 {
		return 0
	}
	n := int(float64(p) / m.beat)
	phase := p - int(math.Ceil(float64(n)*m.beat))
	if phase < 0 || phase >= m.click {
		return 0
	}
	freq := beatFreq
	if n%beatsPerBar == 0 {
		freq = barFreq
	}
	env := 1 - float64(phase)/float64(m.click)
	return clickVolume * env * math.Sin(2*math.Pi*freq*float64(phase)/float64(m.sr))
}

func (m *Metronome) Stream(samples [][2]float64) (n int, ok bool) {
	if m.pos >= m.length {
		return 0, false
	}
	for i := range samples {
		if m.pos >= m.length {
			return i, true
		}
		v := m.sample(m.pos)
		samples[i][0], samples[i][1] = v, v
		m.pos++
	}
	return len(samples), true
}

func (m *Metronome) Err() error {
	return nil
}

func (m *Metronome) Len() int {
	return m.length
}

func (m *Metronome) Position() int {
	return m.pos
}

func (m *Metronome) Seek(p int) error {
	if p < 0 || p > m.length {
		return errors.New("metronome seek out of range")
	}
	m.pos = p
	return nil
}
