// Package history persists finished plays and their raw input logs so a play
// can be re-scored later.
package history

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"git.lost.host/meutraa/groove/internal/engine"
	"git.lost.host/meutraa/groove/internal/game"
	"git.lost.host/meutraa/groove/internal/gauge"
	"git.lost.host/meutraa/groove/internal/judge"
	"git.lost.host/meutraa/groove/internal/score"
	"github.com/google/uuid"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

type Store interface {
	Save(ctx context.Context, r *Record) error
	// Load returns every play of the chart with the given sum, oldest first.
	Load(ctx context.Context, sum string) ([]Record, error)
	Close() error
}

// Input is a single lane press stamped with audio clock song time.
type Input struct {
	Lane int
	Time time.Duration
}

type Record struct {
	ID       uuid.UUID
	Sum      string
	BPM      float64
	Hispeed  float64
	Windows  judge.Windows // The windows the play was judged with, nil for older records
	Summary  engine.Summary
	Inputs   []Input
	PlayedAt time.Time
}

func NewRecord(chart *game.Chart, hispeed float64, windows judge.Windows, summary engine.Summary, inputs []Input) *Record {
	return &Record{
		ID:       uuid.New(),
		Sum:      Sum(chart),
		BPM:      chart.BPM,
		Hispeed:  hispeed,
		Windows:  windows,
		Summary:  summary,
		Inputs:   inputs,
		PlayedAt: time.Now(),
	}
}

// Sum identifies a chart by its note content.
func Sum(c *game.Chart) string {
	h := sha256.New()
	h.Write([]byte(strconv.FormatFloat(c.BPM, 'f', -1, 64)))
	for _, n := range c.Notes {
		fmt.Fprintf(h, ";%d:%d", n.Lane, n.Time)
	}
	return base64.StdEncoding.EncodeToString(h.Sum(nil))
}

type InputsCompact struct {
	Lane  int
	Times []time.Duration
}

func compactInputs(inputs []Input) []InputsCompact {
	laneCount := 0
	for _, i := range inputs {
		if i.Lane+1 > laneCount {
			laneCount = i.Lane + 1
		}
	}
	ins := make([]InputsCompact, laneCount)
	for l := range ins {
		ins[l].Lane = l
		ins[l].Times = []time.Duration{}
	}
	for _, i := range inputs {
		if i.Lane < 0 {
			continue
		}
		ins[i.Lane].Times = append(ins[i.Lane].Times, i.Time)
	}
	return ins
}

func uncompactInputs(inputs []InputsCompact) []Input {
	ins := []Input{}
	for _, i := range inputs {
		for _, t := range i.Times {
			ins = append(ins, Input{Lane: i.Lane, Time: t})
		}
	}
	return ins
}

type field struct {
	path  string
	value interface{}
}

// summaryFields are the paths of the stored summary document.
func summaryFields(s engine.Summary) []field {
	return []field{
		{"status", int(s.Status)},
		{"lamp", int(s.Lamp)},
		{"exScore", s.ExScore},
		{"maxExScore", s.MaxExScore},
		{"exScoreRate", s.ExScoreRate},
		{"grade", int(s.Grade)},
		{"accuracy", s.Accuracy()},
		{"totalNotes", s.TotalNotes},
		{"gauge", int(s.Gauge)},
		{"gaugeValue", s.GaugeValue},
		{"score.pgreat", s.Score.PGreat},
		{"score.great", s.Score.Great},
		{"score.good", s.Score.Good},
		{"score.bad", s.Score.Bad},
		{"score.poor", s.Score.Poor},
		{"score.combo", s.Score.CurrentCombo},
		{"score.maxCombo", s.Score.MaxCombo},
	}
}

func encodeSummary(s engine.Summary) ([]byte, error) {
	doc := []byte("{}")
	for _, f := range summaryFields(s) {
		var err error
		if doc, err = sjson.SetBytes(doc, f.path, f.value); nil != err {
			return nil, fmt.Errorf("unable to set %v: %w", f.path, err)
		}
	}
	return doc, nil
}

func decodeSummary(data []byte) (engine.Summary, error) {
	if !gjson.ValidBytes(data) {
		return engine.Summary{}, errors.New("invalid summary document")
	}
	doc := gjson.ParseBytes(data)
	return engine.Summary{
		Status:      gauge.Status(doc.Get("status").Uint()),
		Lamp:        score.Lamp(doc.Get("lamp").Uint()),
		ExScore:     int(doc.Get("exScore").Int()),
		MaxExScore:  int(doc.Get("maxExScore").Int()),
		ExScoreRate: doc.Get("exScoreRate").Float(),
		Grade:       score.Grade(doc.Get("grade").Uint()),
		TotalNotes:  int(doc.Get("totalNotes").Int()),
		Gauge:       gauge.Type(doc.Get("gauge").Uint()),
		GaugeValue:  doc.Get("gaugeValue").Float(),
		Score: score.Score{
			PGreat:       int(doc.Get("score.pgreat").Int()),
			Great:        int(doc.Get("score.great").Int()),
			Good:         int(doc.Get("score.good").Int()),
			Bad:          int(doc.Get("score.bad").Int()),
			Poor:         int(doc.Get("score.poor").Int()),
			CurrentCombo: int(doc.Get("score.combo").Int()),
			MaxCombo:     int(doc.Get("score.maxCombo").Int()),
		},
	}, nil
}

func windowPath(t judge.Tier) string {
	return "windows." + strings.ToLower(t.String())
}

// encodeWindows adds the window table to a summary document, in nanoseconds.
func encodeWindows(doc []byte, ws judge.Windows) ([]byte, error) {
	for _, tier := range judge.Tiers {
		bound, ok := ws.Window(tier)
		if !ok {
			continue
		}
		var err error
		if doc, err = sjson.SetBytes(doc, windowPath(tier), int64(bound)); nil != err {
			return nil, fmt.Errorf("unable to set %v: %w", windowPath(tier), err)
		}
	}
	return doc, nil
}

// decodeWindows reads the window table back, returning nil when the document has none.
func decodeWindows(doc []byte) (judge.Windows, error) {
	var ws judge.Windows
	for _, tier := range judge.Tiers {
		bound := gjson.GetBytes(doc, windowPath(tier))
		if !bound.Exists() {
			continue
		}
		ws = append(ws, judge.Window{Tier: tier, Time: time.Duration(bound.Int())})
	}
	if nil == ws {
		return nil, nil
	}
	if err := ws.Validate(); nil != err {
		return nil, fmt.Errorf("invalid stored windows: %w", err)
	}
	return ws, nil
}

func encodeRecord(r *Record) (summary, inputs []byte, err error) {
	summary, err = encodeSummary(r.Summary)
	if nil != err {
		return nil, nil, fmt.Errorf("unable to marshal summary: %w", err)
	}
	if summary, err = encodeWindows(summary, r.Windows); nil != err {
		return nil, nil, err
	}
	inputs, err = json.Marshal(compactInputs(r.Inputs))
	if nil != err {
		return nil, nil, fmt.Errorf("unable to marshal inputs: %w", err)
	}
	return summary, inputs, nil
}

func decodeRecord(r *Record, summary, inputs []byte) error {
	s, err := decodeSummary(summary)
	if nil != err {
		return err
	}
	ws, err := decodeWindows(summary)
	if nil != err {
		return err
	}
	var ins []InputsCompact
	if err := json.Unmarshal(inputs, &ins); nil != err {
		return fmt.Errorf("unable to unmarshal input history: %w", err)
	}
	r.Summary = s
	r.Windows = ws
	r.Inputs = uncompactInputs(ins)
	return nil
}

// Best returns the record with the highest EX score, or nil.
func Best(records []Record) *Record {
	var best *Record
	for i := range records {
		if nil == best || records[i].Summary.ExScore > best.Summary.ExScore {
			best = &records[i]
		}
	}
	return best
}
