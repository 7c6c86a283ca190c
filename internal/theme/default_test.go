package theme

import (
	"testing"

	"git.lost.host/meutraa/groove/internal/gauge"
)

func TestGaugeColor(t *testing.T) {
	th := &DefaultTheme{}
	if th.GaugeColor(gauge.Normal, 85) == th.GaugeColor(gauge.Normal, 40) {
		t.Error("clear zone has the same colour as the fail zone")
	}
	if th.GaugeColor(gauge.Hard, 90) == th.GaugeColor(gauge.Hard, 10) {
		t.Error("hard gauge does not darken")
	}
}

func TestNoteColorFallback(t *testing.T) {
	th := &DefaultTheme{}
	if th.NoteColor(7) != noteColors[-1] {
		t.Error("unknown denominator is not white")
	}
	if th.NoteColor(1) != noteColors[1] {
		t.Error("quarter note colour")
	}
}
