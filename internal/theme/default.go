package theme

import (
	"fmt"
	"image/color"

	"git.lost.host/meutraa/groove/internal/gauge"
	"git.lost.host/meutraa/groove/internal/judge"
)

type DefaultTheme struct {
}

func (t *DefaultTheme) RenderNote(lane int, denom int) string {
	c := t.NoteColor(denom)
	return fmt.Sprintf("\033[38;2;%v;%v;%vm%v\033[0m", c.R, c.G, c.B, noteSym)
}

func (t *DefaultTheme) RenderHitField(lane int) string {
	return barSym
}

func (t *DefaultTheme) NoteColor(denom int) color.RGBA {
	col, ok := noteColors[denom]
	if !ok {
		return noteColors[-1]
	}
	return col
}

func (t *DefaultTheme) JudgementColor(tier judge.Tier) color.RGBA {
	return tier.Color()
}

// GaugeColor shows the clear zone in green for the Normal family and fades
// the Hard family from red to dark red as it drains.
func (t *DefaultTheme) GaugeColor(kind gauge.Type, value float64) color.RGBA {
	if kind.Hard() {
		switch {
		case value > 50:
			return color.RGBA{255, 74, 74, 255}
		case value > 25:
			return color.RGBA{255, 136, 74, 255}
		}
		return color.RGBA{139, 0, 0, 255}
	}
	switch {
	case value >= 80:
		return color.RGBA{74, 255, 136, 255}
	case value >= 50:
		return color.RGBA{255, 213, 74, 255}
	}
	return color.RGBA{255, 74, 74, 255}
}

const (
	noteSym = "⬤"
	barSym  = "─"
)

var noteColors = map[int]color.RGBA{
	1:  {236, 30, 0, 255},    // 1/4 red
	2:  {0, 118, 236, 255},   // 1/8 blue
	3:  {106, 0, 236, 255},   // 1/12 purple
	4:  {236, 195, 0, 255},   // 1/16 yellow
	6:  {236, 0, 106, 255},   // 1/24 pink
	8:  {236, 128, 0, 255},   // 1/32 orange
	12: {173, 236, 236, 255}, // 1/48 light blue
	16: {0, 236, 128, 255},   // 1/64 green
	-1: {255, 255, 255, 255}, // other white
}
