package game

import (
	"time"
)

type Measure struct {
	Denom int           // 1 for a bar line, 4 for a beat line
	Time  time.Duration // When the line crosses the hit bar
}
