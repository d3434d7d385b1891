package device

import (
	"errors"
)

// Device is the terminal surface the renderer draws on.
type Device interface {
	Size() Size
	Text(runes []rune, pos Position) int
	ClearToEOL(pos Position)
	ShowCursor(pos Position)
	Show()
}

type Position struct {
	X int
	Y int
}

type Size struct {
	Width  int
	Height int
}

var (
	ErrInit             = errors.New("failed to initialize terminal")
	ErrMouseUnsupported = errors.New("terminal does not support mouse events")
	ErrTeardown         = errors.New("failed to restore terminal")
)
