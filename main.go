package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"git.lost.host/meutraa/groove/internal/audio"
	"git.lost.host/meutraa/groove/internal/config"
	"git.lost.host/meutraa/groove/internal/engine"
	"git.lost.host/meutraa/groove/internal/game"
	"git.lost.host/meutraa/groove/internal/history"
	"git.lost.host/meutraa/groove/internal/input"
	"git.lost.host/meutraa/groove/internal/render"
	"git.lost.host/meutraa/groove/internal/theme"
	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

func main() {
	if err := run(os.Args[1:]); nil != err {
		log.Fatalln(err)
	}
}

func openStore(ctx context.Context, c *config.Config) (history.Store, error) {
	if c.DatabaseURL != "" {
		return history.OpenPostgres(ctx, c.DatabaseURL)
	}
	return history.OpenSQLite(ctx, c.DB)
}

func run(args []string) error {
	c, err := config.Parse(args)
	if nil != err {
		return err
	}

	chart := game.Pattern(c.Difficulty, c.BPM, c.Bars, c.Seed)
	if len(chart.Notes) == 0 {
		return errors.New("generated chart has no notes")
	}

	ctx := context.Background()
	store, err := openStore(ctx, c)
	if nil != err {
		return err
	}
	defer func() {
		if err := store.Close(); nil != err {
			log.Println("unable to close score store", err)
		}
	}()

	records, err := store.Load(ctx, history.Sum(chart))
	if nil != err {
		return err
	}
	best := history.Best(records)

	opts := engine.Options{
		Lanes:   int(c.Difficulty.Lanes),
		Gauge:   c.Gauge,
		Windows: c.Windows,
		Fade:    c.Fade,
	}

	if c.Replay {
		if nil == best {
			return errors.New("no stored play of this chart to replay")
		}
		opts.Gauge = best.Summary.Gauge
		if nil != best.Windows {
			opts.Windows = best.Windows
		}
		log.Printf("Replaying play %v from %v\n", best.ID, best.PlayedAt.Format(time.RFC822))
		printSummary(history.Replay(chart, best.Inputs, opts))
		return nil
	}

	summary, inputs, speed, err := play(c, chart, opts)
	if nil != err {
		return err
	}

	record := history.NewRecord(chart, speed, opts.Windows, summary, inputs)
	if err := store.Save(ctx, record); nil != err {
		return err
	}

	printSummary(summary)
	if nil != best {
		fmt.Printf("Previous best: %v EX (%v)\n", best.Summary.ExScore, best.Summary.Lamp)
	}
	return nil
}

func play(c *config.Config, chart *game.Chart, opts engine.Options) (engine.Summary, []history.Input, float64, error) {
	// Ensure our Default implementations are used as interfaces
	var r render.Renderer = &render.DefaultRenderer{}
	var th theme.Theme = &theme.DefaultTheme{}

	columns, rows, err := r.Size()
	if nil != err {
		return engine.Summary{}, nil, 0, fmt.Errorf("unable to get terminal size: %w", err)
	}

	keys, err := input.Open(c.Keys)
	if nil != err {
		return engine.Summary{}, nil, 0, err
	}
	defer func() {
		if err := keys.Close(); nil != err {
			log.Println("unable to close keyboard", err)
		}
	}()

	// Clear the screen and hide the cursor
	if err := r.Init(); nil != err {
		return engine.Summary{}, nil, 0, err
	}
	defer func() {
		// Restore the terminal state
		if err := r.Deinit(); nil != err {
			log.Println("unable to restore terminal", err)
		}
	}()

	time.Sleep(c.Delay)

	metronome := audio.NewMetronome(sampleRate, chart.BPM, chart.Length()+2*time.Second)
	clock, err := audio.Play(metronome, sampleRate)
	if nil != err {
		return engine.Summary{}, nil, 0, err
	}
	defer speaker.Clear()

	e := engine.New(len(chart.Notes), opts)
	e.Start(chart.BPM, clock)
	e.SetHispeed(c.Hispeed)

	p := NewProgram(c, r, th, e, chart, columns, rows)
	r.Clear()
	r.RenderLoop(c.FramePeriod, func() bool {
		cont := p.Update(keys)
		p.Render()
		return cont
	})

	summary := e.End()
	r.RenderLoop(0, func() bool {
		p.RenderResult(summary)
		return false
	})
	keys.Wait()

	return summary, p.inputs, e.Hispeed(), nil
}

func printSummary(s engine.Summary) {
	fmt.Printf("%v  %v  %v\n", s.Lamp, s.Grade, s.Status)
	fmt.Printf("EX score %v / %v (%.2f%%)\n", s.ExScore, s.MaxExScore, s.ExScoreRate)
	fmt.Printf("PGREAT %v  GREAT %v  GOOD %v  BAD %v  POOR %v  MAX COMBO %v\n",
		s.Score.PGreat, s.Score.Great, s.Score.Good, s.Score.Bad, s.Score.Poor, s.Score.MaxCombo)
	fmt.Printf("%v gauge %.1f%%  accuracy %v%%\n", s.Gauge, s.GaugeValue, s.Accuracy())
}
