package input

import (
	"fmt"
	"log"
	"time"

	"github.com/eiannone/keyboard"
)

type Action uint8

const (
	Press Action = iota
	Quit
	Faster
	Slower
	Ignore
)

type Event struct {
	Action Action
	Lane   int           // Valid for Press
	Time   time.Duration // Song time the event was read at
}

// Translate maps a key to an event given the lane keys, left to right.
func Translate(lanes []rune, key keyboard.KeyEvent) Event {
	switch key.Key {
	case keyboard.KeyEsc, keyboard.KeyCtrlC:
		return Event{Action: Quit}
	case keyboard.KeyArrowUp:
		return Event{Action: Faster}
	case keyboard.KeyArrowDown:
		return Event{Action: Slower}
	case keyboard.KeySpace:
		key.Rune = ' '
	}
	for i, r := range lanes {
		if key.Rune == r {
			return Event{Action: Press, Lane: i}
		}
	}
	switch key.Rune {
	case '+', '=':
		return Event{Action: Faster}
	case '-', '_':
		return Event{Action: Slower}
	}
	return Event{Action: Ignore}
}

type Keyboard struct {
	lanes []rune
	keys  <-chan keyboard.KeyEvent
}

func Open(lanes []rune) (*Keyboard, error) {
	keys, err := keyboard.GetKeys(128)
	if nil != err {
		return nil, fmt.Errorf("unable to open keyboard: %w", err)
	}
	return &Keyboard{lanes: lanes, keys: keys}, nil
}

func (k *Keyboard) Close() error {
	return keyboard.Close()
}

// Poll drains the key events that arrived since the last call without blocking,
// stamping each with the song time at which it was read.
func (k *Keyboard) Poll(now func() time.Duration) []Event {
	events := []Event{}
	for n := len(k.keys); n > 0; n-- {
		key := <-k.keys
		if nil != key.Err {
			log.Println("unable to read key", key.Err)
			continue
		}
		ev := Translate(k.lanes, key)
		if ev.Action == Ignore {
			continue
		}
		ev.Time = now()
		events = append(events, ev)
	}
	return events
}

// Wait blocks for the next key press.
func (k *Keyboard) Wait() {
	<-k.keys
}
