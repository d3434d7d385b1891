package model

import (
	"fmt"
)

type Event interface {
	event()
}

type Key struct {
	Code rune
}

func (Key) event() {}

func (k Key) String() string {
	return fmt.Sprintf("Key{Code: %q}", k.Code)
}

type MouseBatch struct {
	Records []MouseRecord
}

func (MouseBatch) event() {}

type MouseRecord struct {
	Pos   Position
	Flags MouseFlags
}

func (r MouseRecord) String() string {
	return fmt.Sprintf("Mouse{Pos: %v, Flags: %v}", r.Pos, r.Flags)
}

// MouseFlags holds button transitions. A record with no flags is a plain motion.
type MouseFlags uint16

const (
	Button1Pressed MouseFlags = 1 << iota
	Button1Released
	Button2Pressed
	Button2Released
	Button3Pressed
	Button3Released
)

var flagNames = []string{
	"Button1Pressed",
	"Button1Released",
	"Button2Pressed",
	"Button2Released",
	"Button3Pressed",
	"Button3Released",
}

func (f MouseFlags) String() string {
	if f == 0 {
		return "Motion"
	}
	result := ""
	for i, name := range flagNames {
		if f&(1<<i) == 0 {
			continue
		}
		if result != "" {
			result += "|"
		}
		result += name
	}
	return result
}

// Pressed and Released return the flags reporting a transition of the given button.
func Pressed(b Button) MouseFlags {
	switch b {
	case Left:
		return Button1Pressed
	case Middle:
		return Button2Pressed
	case Right:
		return Button3Pressed
	}
	return 0
}

func Released(b Button) MouseFlags {
	switch b {
	case Left:
		return Button1Released
	case Middle:
		return Button2Released
	case Right:
		return Button3Released
	}
	return 0
}
