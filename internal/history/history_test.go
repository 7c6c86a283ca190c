package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"git.lost.host/meutraa/groove/internal/engine"
	"git.lost.host/meutraa/groove/internal/game"
	"git.lost.host/meutraa/groove/internal/gauge"
	"git.lost.host/meutraa/groove/internal/judge"
	"git.lost.host/meutraa/groove/internal/score"
	"git.lost.host/meutraa/groove/internal/testdata"
	"github.com/tidwall/gjson"
)

// perfectInputs presses every note of the chart at offset from its hit time.
func perfectInputs(chart *game.Chart, offset time.Duration) []Input {
	ins := []Input{}
	for _, n := range chart.Notes {
		ins = append(ins, Input{Lane: n.Lane, Time: n.Time + offset})
	}
	return ins
}

func TestReplay(t *testing.T) {
	chart, err := testdata.GetChart()
	if nil != err {
		t.Fatal(err)
	}
	opts := engine.Options{Lanes: int(chart.Difficulty.Lanes)}

	summary := Replay(chart, perfectInputs(chart, 5*time.Millisecond), opts)
	if summary.Lamp != score.Perfect || summary.ExScore != 2*len(chart.Notes) {
		t.Errorf("perfect replay %+v", summary)
	}

	// Drop the last three presses and add a stray one well before the chart
	ins := perfectInputs(chart, 40*time.Millisecond)
	ins = append(ins[:len(ins)-3], Input{Lane: 2, Time: 100 * time.Millisecond})
	summary = Replay(chart, ins, opts)
	if summary.Score.Great != len(chart.Notes)-3 || summary.Score.Poor != 3 || summary.Score.Judged() != len(chart.Notes) {
		t.Errorf("partial replay %+v", summary.Score)
	}
	if again := Replay(chart, ins, opts); again != summary {
		t.Errorf("replay is not deterministic: %+v vs %+v", again, summary)
	}
}

func TestReplayHardFail(t *testing.T) {
	chart, err := testdata.GetChart()
	if nil != err {
		t.Fatal(err)
	}
	summary := Replay(chart, nil, engine.Options{Gauge: gauge.Hazard})
	if summary.Status != gauge.Failed || summary.Lamp != score.Failed || summary.Score.Poor != 1 {
		t.Errorf("summary %+v", summary)
	}
}

func TestSum(t *testing.T) {
	a, _ := testdata.GetChart()
	b, _ := testdata.GetChart()
	if Sum(a) != Sum(b) {
		t.Error("equal charts have different sums")
	}
	b.Notes[3].Lane = 0
	if Sum(a) == Sum(b) {
		t.Error("different charts share a sum")
	}
}

func TestSQLiteStore(t *testing.T) {
	ctx := context.Background()
	store, err := OpenSQLite(ctx, filepath.Join(t.TempDir(), "scores.db"))
	if nil != err {
		t.Fatal(err)
	}
	defer store.Close()

	chart, err := testdata.GetChart()
	if nil != err {
		t.Fatal(err)
	}
	ins := perfectInputs(chart, -30*time.Millisecond)
	summary := Replay(chart, ins, engine.Options{Gauge: gauge.Hard})

	first := NewRecord(chart, 1.5, judge.DefaultWindows, summary, ins)
	if err := store.Save(ctx, first); nil != err {
		t.Fatal(err)
	}
	worse := Replay(chart, ins[:5], engine.Options{})
	if err := store.Save(ctx, NewRecord(chart, 1, nil, worse, ins[:5])); nil != err {
		t.Fatal(err)
	}

	records, err := store.Load(ctx, Sum(chart))
	if nil != err {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Fatalf("loaded %d records", len(records))
	}
	got := records[0]
	if got.ID != first.ID || got.Hispeed != 1.5 || got.BPM != chart.BPM || got.Summary != summary {
		t.Errorf("loaded %+v, saved %+v", got, first)
	}
	if len(got.Inputs) != len(ins) {
		t.Errorf("loaded %d inputs, saved %d", len(got.Inputs), len(ins))
	}
	if replayed := Replay(chart, got.Inputs, engine.Options{Gauge: gauge.Hard}); replayed != summary {
		t.Errorf("stored inputs replay to %+v, expected %+v", replayed, summary)
	}
	if best := Best(records); nil == best || best.ID != first.ID {
		t.Errorf("best %+v", best)
	}

	if none, err := store.Load(ctx, "missing"); nil != err || len(none) != 0 {
		t.Errorf("load of unknown sum: %v %v", none, err)
	}
}

func TestSummaryDocument(t *testing.T) {
	chart, err := testdata.GetChart()
	if nil != err {
		t.Fatal(err)
	}
	summary := Replay(chart, perfectInputs(chart, 0), engine.Options{})
	doc, err := encodeSummary(summary)
	if nil != err {
		t.Fatal(err)
	}
	if gjson.GetBytes(doc, "score.pgreat").Int() != int64(len(chart.Notes)) ||
		gjson.GetBytes(doc, "accuracy").Int() != 100 ||
		gjson.GetBytes(doc, "lamp").Int() != int64(score.Perfect) {
		t.Errorf("document %s", doc)
	}
	decoded, err := decodeSummary(doc)
	if nil != err || decoded != summary {
		t.Errorf("decoded %+v (%v), expected %+v", decoded, err, summary)
	}
	if _, err := decodeSummary([]byte("{")); nil == err {
		t.Error("truncated document decoded")
	}
}

func TestStoredWindowsReplay(t *testing.T) {
	ctx := context.Background()
	store, err := OpenSQLite(ctx, filepath.Join(t.TempDir(), "scores.db"))
	if nil != err {
		t.Fatal(err)
	}
	defer store.Close()

	chart, err := testdata.GetChart()
	if nil != err {
		t.Fatal(err)
	}
	ins := perfectInputs(chart, 40*time.Millisecond)
	played := Replay(chart, ins, engine.Options{Windows: judge.DefaultWindows})
	if err := store.Save(ctx, NewRecord(chart, 1, judge.DefaultWindows, played, ins)); nil != err {
		t.Fatal(err)
	}

	records, err := store.Load(ctx, Sum(chart))
	if nil != err || len(records) != 1 {
		t.Fatalf("loaded %d records: %v", len(records), err)
	}
	stored := records[0]
	if len(stored.Windows) != len(judge.DefaultWindows) {
		t.Fatalf("stored windows %v", stored.Windows)
	}
	for i, w := range stored.Windows {
		if w != judge.DefaultWindows[i] {
			t.Errorf("window %d is %+v, expected %+v", i, w, judge.DefaultWindows[i])
		}
	}

	wider := judge.Windows{
		{Tier: judge.PGreat, Time: 50 * time.Millisecond},
		{Tier: judge.Great, Time: 60 * time.Millisecond},
		{Tier: judge.Good, Time: 150 * time.Millisecond},
		{Tier: judge.Bad, Time: 280 * time.Millisecond},
		{Tier: judge.Poor, Time: 300 * time.Millisecond},
	}
	if Replay(chart, stored.Inputs, engine.Options{Windows: wider}) == played {
		t.Fatal("wider windows scored the same, the play does not tell them apart")
	}
	if replayed := Replay(chart, stored.Inputs, engine.Options{Windows: stored.Windows}); replayed != stored.Summary {
		t.Errorf("replayed %+v, stored %+v", replayed, stored.Summary)
	}
}

func TestDecodeWindowsMissing(t *testing.T) {
	ws, err := decodeWindows([]byte(`{"exScore": 3}`))
	if nil != err || nil != ws {
		t.Errorf("windows %v err %v from a document without windows", ws, err)
	}
	if _, err := decodeWindows([]byte(`{"windows": {"pgreat": 90, "great": 10}}`)); nil == err {
		t.Error("a partial window table was accepted")
	}
}
