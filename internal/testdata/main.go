package testdata

import (
	"encoding/json"

	"git.lost.host/meutraa/groove/internal/game"
)

// GetChart returns a fresh copy of a short four lane chart at 120 BPM.
// Times are nanoseconds from song start.
func GetChart() (*game.Chart, error) {
	var chart game.Chart
	if err := json.Unmarshal([]byte(data), &chart); nil != err {
		return nil, err
	}
	return &chart, nil
}

const data = `{
  "BPM": 120,
  "Difficulty": {"Name": "normal", "Lanes": 4, "Density": 0.5},
  "Notes": [
    {"Lane": 0, "Denom": 1, "Time": 2000000000},
    {"Lane": 1, "Denom": 2, "Time": 2250000000},
    {"Lane": 2, "Denom": 1, "Time": 2500000000},
    {"Lane": 3, "Denom": 2, "Time": 2750000000},
    {"Lane": 0, "Denom": 1, "Time": 3000000000},
    {"Lane": 0, "Denom": 1, "Time": 3500000000},
    {"Lane": 1, "Denom": 1, "Time": 4000000000},
    {"Lane": 3, "Denom": 2, "Time": 4250000000},
    {"Lane": 2, "Denom": 1, "Time": 4500000000},
    {"Lane": 1, "Denom": 1, "Time": 5000000000}
  ]
}`
