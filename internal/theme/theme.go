package theme

import (
	"image/color"

	"git.lost.host/meutraa/groove/internal/gauge"
	"git.lost.host/meutraa/groove/internal/judge"
)

type Theme interface {
	RenderNote(lane int, denom int) string
	RenderHitField(lane int) string
	NoteColor(denom int) color.RGBA
	JudgementColor(tier judge.Tier) color.RGBA
	GaugeColor(kind gauge.Type, value float64) color.RGBA
}
