package main

import (
	"fmt"
	"image/color"
	"math"
	"strings"
	"time"

	"git.lost.host/meutraa/groove/internal/config"
	"git.lost.host/meutraa/groove/internal/engine"
	"git.lost.host/meutraa/groove/internal/game"
	"git.lost.host/meutraa/groove/internal/hispeed"
	"git.lost.host/meutraa/groove/internal/history"
	"git.lost.host/meutraa/groove/internal/input"
	"git.lost.host/meutraa/groove/internal/judge"
	"git.lost.host/meutraa/groove/internal/render"
	"git.lost.host/meutraa/groove/internal/theme"
	"github.com/google/uuid"
)

const (
	columnSpacing = 4
	gaugeWidth    = 50
	hispeedStep   = 0.5
	outroTime     = time.Second
)

type Program struct {
	Config   *config.Config
	Renderer render.Renderer
	Theme    theme.Theme
	Engine   *engine.Engine
	Chart    *game.Chart

	rows, columns int
	hitRow        int
	middle        int
	laneCols      []int
	sideCol       int

	catch    time.Duration
	drawn    map[uuid.UUID]int // Row each live note was last drawn at
	measures map[int]int       // Row each measure line was last drawn at
	inputs   []history.Input
}

func NewProgram(c *config.Config, r render.Renderer, th theme.Theme, e *engine.Engine, chart *game.Chart, columns, rows int) *Program {
	p := &Program{
		Config:   c,
		Renderer: r,
		Theme:    th,
		Engine:   e,
		Chart:    chart,
		catch:    e.Windows().Catch(),
		drawn:    map[uuid.UUID]int{},
		measures: map[int]int{},
		inputs:   []history.Input{},
	}
	p.Resize(columns, rows)
	return p
}

func (p *Program) Resize(columns, rows int) {
	p.columns, p.rows = columns, rows
	p.middle = columns >> 1
	p.hitRow = rows - int(p.Config.BarRow)

	lanes := p.Engine.Lanes()
	p.laneCols = make([]int, lanes)
	for i := range p.laneCols {
		p.laneCols[i] = p.middle + (2*i-lanes+1)*columnSpacing
	}
	p.sideCol = p.laneCols[0] - 36
	if p.sideCol < 2 {
		p.sideCol = 2
	}
}

// now is the song time presses are judged against.
func (p *Program) now() time.Duration {
	return p.Engine.SongTime() + p.Config.Offset
}

// expire judges every note whose catch window closed before at as missed.
func (p *Program) expire(at time.Duration) {
	for _, note := range p.Chart.Expired(at, p.catch) {
		p.Engine.HandleMissedNote(note)
	}
}

// Update spawns due notes, judges the presses read since the last frame and
// resolves misses. It returns false once the play is over.
func (p *Program) Update(keys *input.Keyboard) bool {
	// Spawning at least a catch window ahead keeps every note a press could
	// reach on the playfield, whatever the hispeed.
	lead := p.Engine.LeadTime()
	if lead < p.catch {
		lead = p.catch
	}
	p.Chart.Spawn(p.now(), lead)

	for _, ev := range keys.Poll(p.now) {
		switch ev.Action {
		case input.Quit:
			return false
		case input.Faster:
			p.Engine.AdjustHispeed(hispeedStep)
		case input.Slower:
			p.Engine.AdjustHispeed(-hispeedStep)
		case input.Press:
			p.expire(ev.Time)
			p.inputs = append(p.inputs, history.Input{Lane: ev.Lane, Time: ev.Time})
			active, _, _ := p.Chart.Active()
			res, ok := p.Engine.HandleLaneHitAt(ev.Lane, active, ev.Time)
			if !ok {
				continue
			}
			name := fmt.Sprintf("%-6v", res.Tier)
			p.Renderer.AddDecoration(p.middle-3, p.rows>>1, colored(p.Theme.JudgementColor(res.Tier), name), 30)
		}
	}

	now := p.now()
	p.expire(now)
	p.Engine.UpdateGreenNumbers()

	if p.Engine.Phase() == engine.Failed {
		return false
	}
	return !p.Chart.Done() || now < p.Chart.Length()+p.catch+outroTime
}

func colored(c color.RGBA, s string) string {
	return fmt.Sprintf("\033[38;2;%v;%v;%vm%v\033[0m", c.R, c.G, c.B, s)
}

func (p *Program) row(untilHit time.Duration) int {
	scale := float64(p.hitRow-1) / hispeed.DefaultDistance
	return p.hitRow - int(math.Round(p.Engine.Position(untilHit)*scale))
}

func (p *Program) Render() {
	now := p.now()
	active, _, _ := p.Chart.Active()

	// Clear every note drawn last frame before anything is redrawn
	for _, note := range active {
		if row, ok := p.drawn[note.ID]; ok {
			p.Renderer.Fill(row, p.laneCols[note.Lane], " ")
			delete(p.drawn, note.ID)
		}
	}

	p.RenderMeasures(now)

	for lane, col := range p.laneCols {
		p.Renderer.Fill(p.hitRow, col, p.Theme.RenderHitField(lane))
	}

	for _, note := range active {
		if note.Judged() {
			continue
		}
		row := p.row(note.Time - now)
		if row <= 0 || row > p.rows {
			continue
		}
		p.Renderer.Fill(row, p.laneCols[note.Lane], p.Theme.RenderNote(note.Lane, note.Denom))
		p.drawn[note.ID] = row
	}

	// Judged notes can only leave the playfield once they have been cleared
	p.Chart.Prune(now, p.catch)

	p.RenderGreenNumbers()
	p.RenderStatic()
}

// RenderMeasures draws bar and beat lines across the lanes behind the notes.
func (p *Program) RenderMeasures(now time.Duration) {
	left := p.laneCols[0] - 1
	width := p.laneCols[len(p.laneCols)-1] - left + 2
	for i, row := range p.measures {
		p.Renderer.Fill(row, left, strings.Repeat(" ", width))
		delete(p.measures, i)
	}

	lead := p.Engine.LeadTime()
	for i, m := range p.Chart.Measures {
		if m.Time-now > lead {
			break
		}
		row := p.row(m.Time - now)
		if row <= 0 || row >= p.hitRow {
			continue
		}
		c := color.RGBA{64, 64, 64, 255}
		if m.Denom == 1 {
			c = color.RGBA{128, 128, 128, 255}
		}
		p.Renderer.FillColor(row, left, c, strings.Repeat("╌", width))
		p.measures[i] = row
	}
}

// RenderResult shows the final lamp and grade over the playfield until a key is pressed.
func (p *Program) RenderResult(s engine.Summary) {
	row := p.rows >> 1
	p.Renderer.Fill(row-1, p.middle-12, fmt.Sprintf("%-24s", fmt.Sprintf("%v  %v", s.Lamp, s.Grade)))
	p.Renderer.Fill(row, p.middle-12, fmt.Sprintf("%-24s", fmt.Sprintf("EX %v / %v", s.ExScore, s.MaxExScore)))
	p.Renderer.Fill(row+1, p.middle-12, fmt.Sprintf("%-24s", "press any key"))
}

func (p *Program) RenderGreenNumbers() {
	state := p.Engine.State()
	for lane, gn := range state.GreenNumbers {
		col := p.laneCols[lane] - 1
		if !gn.Show {
			p.Renderer.Fill(p.hitRow+1, col, "    ")
			continue
		}
		c := color.RGBA{255, 74, 74, 255} // slow
		if gn.Fast {
			c = color.RGBA{74, 136, 255, 255}
		}
		c.R = uint8(float64(c.R) * gn.Opacity)
		c.G = uint8(float64(c.G) * gn.Opacity)
		c.B = uint8(float64(c.B) * gn.Opacity)
		offset := time.Duration(gn.Value) * time.Millisecond
		if gn.Fast {
			offset = -offset
		}
		p.Renderer.FillColor(p.hitRow+1, col, c, fmt.Sprintf("%-4s", judge.FormatOffset(offset)))
	}
}

func (p *Program) RenderStatic() {
	state := p.Engine.State()

	filled := int(math.Round(state.GaugeValue / 100 * gaugeWidth))
	p.Renderer.FillColor(2, p.sideCol, p.Theme.GaugeColor(state.Gauge, state.GaugeValue),
		strings.Repeat("█", filled)+strings.Repeat("░", gaugeWidth-filled))
	p.Renderer.Fill(3, p.sideCol, fmt.Sprintf("%7v gauge:  %5.1f%%", state.Gauge, state.GaugeValue))

	p.Renderer.Fill(10, p.sideCol, fmt.Sprintf("   EX score:  %6v / %v", state.ExScore, state.MaxExScore))
	p.Renderer.Fill(11, p.sideCol, fmt.Sprintf("       Rate:  %6.2f%%", state.ExScoreRate))
	p.Renderer.Fill(12, p.sideCol, fmt.Sprintf("      Grade:  %6v", state.Grade))
	p.Renderer.Fill(13, p.sideCol, fmt.Sprintf("      Combo:  %6v", state.Score.CurrentCombo))
	p.Renderer.Fill(14, p.sideCol, fmt.Sprintf("  Max combo:  %6v", state.Score.MaxCombo))
	p.Renderer.Fill(15, p.sideCol, fmt.Sprintf("      Notes:  %6v", state.TotalNotes))
	p.Renderer.Fill(16, p.sideCol, fmt.Sprintf("    Hispeed:  %6.1fx", state.Hispeed))
	for i, tier := range judge.Tiers {
		p.Renderer.FillColor(18+i, p.sideCol, p.Theme.JudgementColor(tier),
			fmt.Sprintf("%11v:  %6v", tier, state.Score.Count(tier)))
	}
}
