// Package gauge implements the groove gauge: a bounded life bar that turns each
// judgement into a delta and decides whether a play clears or fails.
package gauge

import (
	"fmt"
	"math"
	"strings"

	"git.lost.host/meutraa/groove/internal/judge"
)

type Type uint8

const (
	Normal Type = iota
	Easy
	Hard
	ExHard
	Hazard
)

var typeNames = map[Type]string{
	Easy:   "easy",
	Normal: "normal",
	Hard:   "hard",
	ExHard: "exhard",
	Hazard: "hazard",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "unknown"
}

// Hard reports whether the type belongs to the survival family, which starts
// full and fails the moment it empties.
func (t Type) Hard() bool {
	return t == Hard || t == ExHard || t == Hazard
}

func ParseType(s string) (Type, error) {
	for t, name := range typeNames {
		if strings.EqualFold(s, name) {
			return t, nil
		}
	}
	return Normal, fmt.Errorf("unknown gauge type %q", s)
}

const (
	Min = 0.0
	Max = 100.0

	// total is the amount a Normal-family gauge gains over a whole chart of PGreats.
	total = 160.0
)

// Rule holds a gauge type's constants. Gains for the Normal family are fractions
// of total per note; Hard-family gains are flat.
type Rule struct {
	Initial float64
	Clear   float64
	Scaled  bool
	Gain    [len(judge.Tiers)]float64
}

var Rules = map[Type]Rule{
	Easy: {
		Initial: 20, Clear: 80, Scaled: true,
		Gain: [...]float64{1.2, 1.2, 0.6, -1.6, -4.8},
	},
	Normal: {
		Initial: 20, Clear: 80, Scaled: true,
		Gain: [...]float64{1, 1, 0.5, -2, -6},
	},
	Hard: {
		Initial: 100,
		Gain:    [...]float64{0.16, 0.16, 0, -5, -9},
	},
	ExHard: {
		Initial: 100,
		Gain:    [...]float64{0.16, 0.16, 0, -10, -18},
	},
	Hazard: {
		Initial: 100,
		Gain:    [...]float64{0, 0, 0, -Max, -Max},
	},
}

type Status uint8

const (
	Clear Status = iota
	Failed
)

func (s Status) String() string {
	if s == Failed {
		return "failed"
	}
	return "clear"
}

type Gauge struct {
	kind   Type
	rule   Rule
	notes  int
	value  float64
	failed bool
}

// New returns a gauge for a chart of notes judgements. Unknown types fall back to Normal.
func New(t Type, notes int) *Gauge {
	rule, ok := Rules[t]
	if !ok {
		t, rule = Normal, Rules[Normal]
	}
	return &Gauge{
		kind:  t,
		rule:  rule,
		notes: notes,
		value: rule.Initial,
	}
}

// Delta is the signed change a judgement applies before clamping.
func (g *Gauge) Delta(tier judge.Tier) float64 {
	if int(tier) >= len(g.rule.Gain) {
		return 0
	}
	d := g.rule.Gain[tier]
	if g.rule.Scaled && d > 0 {
		if g.notes <= 0 {
			return 0
		}
		d *= total / float64(g.notes)
	}
	return d
}

// Update applies a judgement. A failed gauge never moves again.
func (g *Gauge) Update(tier judge.Tier) {
	if g.failed {
		return
	}
	g.value = clamp(g.value + g.Delta(tier))
	if g.failedLive(tier) {
		g.failed = true
	}
}

func (g *Gauge) failedLive(tier judge.Tier) bool {
	switch {
	case g.kind == Hazard:
		return tier.BreaksCombo() || g.value <= Min
	case g.kind.Hard():
		return g.value <= Min
	}
	return false
}

func clamp(v float64) float64 {
	return math.Max(Min, math.Min(Max, v))
}

func (g *Gauge) Value() float64 {
	return g.value
}

func (g *Gauge) Type() Type {
	return g.kind
}

// Failed reports a live failure; only the Hard family ever fails mid-song.
func (g *Gauge) Failed() bool {
	return g.failed
}

// FinalJudge decides the play once the song is over.
func (g *Gauge) FinalJudge() Status {
	if g.kind.Hard() {
		if g.failed {
			return Failed
		}
		return Clear
	}
	if g.value >= g.rule.Clear {
		return Clear
	}
	return Failed
}
