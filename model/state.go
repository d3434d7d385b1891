package model

import (
	"fmt"
	"strings"
)

const DefaultBrush = '#'

type Position struct {
	X int
	Y int
}

func (p Position) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

type Button byte

const (
	Left Button = 1 << iota
	Middle
	Right
)

var allButtons = []Button{Left, Middle, Right}

func (b Button) String() string {
	switch b {
	case Left:
		return "Left"
	case Middle:
		return "Middle"
	case Right:
		return "Right"
	}
	return fmt.Sprintf("Button(%d)", byte(b))
}

// Buttons is a set over Left, Middle and Right. Its numeric value is the
// status line bitmask: Left=1, Middle=2, Right=4.
type Buttons byte

func NewButtons(buttons ...Button) Buttons {
	var set Buttons
	for _, b := range buttons {
		set = set.With(b)
	}
	return set
}

func (set Buttons) Has(b Button) bool {
	return set&Buttons(b) != 0
}

func (set Buttons) With(b Button) Buttons {
	return set | Buttons(b)
}

func (set Buttons) Without(b Button) Buttons {
	return set &^ Buttons(b)
}

func (set Buttons) Mask() byte {
	return byte(set)
}

func (set Buttons) String() string {
	names := make([]string, 0, len(allButtons))
	for _, b := range allButtons {
		if set.Has(b) {
			names = append(names, b.String())
		}
	}
	return "{" + strings.Join(names, ",") + "}"
}

// State is the painting session. Counters wrap around at 2^64.
type State struct {
	Cursor      Position
	Buttons     Buttons
	Brush       rune
	Loops       uint64
	Keys        uint64
	MouseEvents uint64
	Running     bool
}

func NewState(brush rune) State {
	return State{
		Brush:   brush,
		Running: true,
	}
}

func (s *State) String() string {
	return fmt.Sprintf("State{Cursor: %v, Buttons: %v, Brush: %q, Loops: %d, Keys: %d, MouseEvents: %d, Running: %v}",
		s.Cursor, s.Buttons, s.Brush, s.Loops, s.Keys, s.MouseEvents, s.Running)
}
