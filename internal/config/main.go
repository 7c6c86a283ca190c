package config

import (
	"fmt"
	"sort"
	"time"

	"git.lost.host/meutraa/groove/internal/game"
	"git.lost.host/meutraa/groove/internal/gauge"
	"git.lost.host/meutraa/groove/internal/hispeed"
	"git.lost.host/meutraa/groove/internal/judge"
	"gopkg.in/alecthomas/kingpin.v2"
)

const Version = "0.3.0"

type Config struct {
	BPM         float64
	Bars        int
	Seed        int64
	Difficulty  game.Difficulty
	Gauge       gauge.Type
	Hispeed     float64
	Keys        []rune
	Windows     judge.Windows
	Fade        time.Duration
	Offset      time.Duration // Added to every press before judging
	Delay       time.Duration
	FramePeriod time.Duration
	BarRow      uint
	DB          string
	DatabaseURL string
	Replay      bool
}

func difficultyNames() []string {
	names := []string{}
	for name := range game.Difficulties {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Parse reads the command line. Exit on --help and --version is left to kingpin.
func Parse(args []string) (*Config, error) {
	app := kingpin.New("groove", "Terminal rhythm game with beatoraja style judging.")
	app.Version(Version)

	var (
		bpm         = app.Flag("bpm", "Chart tempo").Default("150").Short('b').Float64()
		bars        = app.Flag("bars", "Chart length in bars").Default("16").Int()
		seed        = app.Flag("seed", "Chart pattern seed").Default("1").Int64()
		difficulty  = app.Flag("difficulty", "Chart density").Default("normal").Short('D').Enum(difficultyNames()...)
		gaugeType   = app.Flag("gauge", "Groove gauge type").Default("normal").Short('g').Enum("easy", "normal", "hard", "exhard", "hazard")
		speed       = app.Flag("hispeed", "Note scroll multiplier").Default("1.0").Short('s').Float64()
		keys        = app.Flag("keys", "Keys for each lane, left to right").Default("dfjk").Short('k').String()
		fade        = app.Flag("fade", "Timing readout fade time").Default("500ms").Duration()
		offset      = app.Flag("offset", "Global offset").Default("0ms").Short('o').Duration()
		delay       = app.Flag("delay", "Start delay").Default("1.5s").Short('d').Duration()
		framePeriod = app.Flag("frame-period", "Render frame period").Default("1ms").Short('p').Duration()
		barRow      = app.Flag("bar-row", "Console rows between hit bar and bottom").Default("4").Uint()
		db          = app.Flag("db", "SQLite score database").Default("./scores.db").String()
		databaseURL = app.Flag("database-url", "Postgres URL, used instead of --db when set").Envar("GROOVE_DATABASE_URL").String()
		replay      = app.Flag("replay", "Replay the best stored play of this chart instead of playing").Bool()
		windows     = [...]*time.Duration{
			app.Flag("window-pgreat", "PGREAT window").Default("20ms").Duration(),
			app.Flag("window-great", "GREAT window").Default("60ms").Duration(),
			app.Flag("window-good", "GOOD window").Default("150ms").Duration(),
			app.Flag("window-bad", "BAD window").Default("280ms").Duration(),
			app.Flag("window-poor", "POOR window, presses outside it are ignored").Default("300ms").Duration(),
		}
	)

	if _, err := app.Parse(args); nil != err {
		return nil, err
	}

	c := &Config{
		BPM:         *bpm,
		Bars:        *bars,
		Seed:        *seed,
		Difficulty:  game.Difficulties[*difficulty],
		Hispeed:     *speed,
		Keys:        []rune(*keys),
		Fade:        *fade,
		Offset:      *offset,
		Delay:       *delay,
		FramePeriod: *framePeriod,
		BarRow:      *barRow,
		DB:          *db,
		DatabaseURL: *databaseURL,
		Replay:      *replay,
	}

	var err error
	if c.Gauge, err = gauge.ParseType(*gaugeType); nil != err {
		return nil, err
	}
	for i, w := range windows {
		c.Windows = append(c.Windows, judge.Window{Tier: judge.Tiers[i], Time: *w})
	}
	if err := c.Windows.Validate(); nil != err {
		return nil, fmt.Errorf("invalid judgement windows: %w", err)
	}
	if c.BPM <= 0 {
		return nil, fmt.Errorf("bpm must be positive, got %v", c.BPM)
	}
	if c.Bars <= 0 {
		return nil, fmt.Errorf("bars must be positive, got %v", c.Bars)
	}
	if len(c.Keys) < int(c.Difficulty.Lanes) {
		return nil, fmt.Errorf("%d keys given for %d lanes", len(c.Keys), c.Difficulty.Lanes)
	}
	if c.Hispeed < hispeed.MinMultiplier || c.Hispeed > hispeed.MaxMultiplier {
		return nil, fmt.Errorf("hispeed must be between %v and %v", hispeed.MinMultiplier, hispeed.MaxMultiplier)
	}
	c.Keys = c.Keys[:c.Difficulty.Lanes]
	return c, nil
}
