package judge

import "image/color"

// Tier is a judgement bucket, ordered by severity.
type Tier uint8

const (
	PGreat Tier = iota
	Great
	Good
	Bad
	Poor
)

// Tiers lists every tier from the narrowest window to the widest.
var Tiers = [...]Tier{PGreat, Great, Good, Bad, Poor}

var tierNames = [...]string{"PGREAT", "GREAT", "GOOD", "BAD", "POOR"}

var tierColors = [...]color.RGBA{
	{255, 215, 0, 255},  // gold
	{74, 255, 136, 255}, // green
	{74, 158, 255, 255}, // blue
	{255, 136, 74, 255}, // orange
	{255, 74, 74, 255},  // red
}

func (t Tier) String() string {
	if int(t) < len(tierNames) {
		return tierNames[t]
	}
	return "UNKNOWN"
}

func (t Tier) Color() color.RGBA {
	if int(t) < len(tierColors) {
		return tierColors[t]
	}
	return color.RGBA{255, 255, 255, 255}
}

// BreaksCombo reports whether the tier resets the current combo.
func (t Tier) BreaksCombo() bool {
	return t >= Bad
}

// ExPoints is the tier's EX score weight.
func (t Tier) ExPoints() int {
	switch t {
	case PGreat:
		return 2
	case Great:
		return 1
	}
	return 0
}
