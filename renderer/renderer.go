package renderer

import (
	"fmt"
	"ncpaint/device"
	"ncpaint/model"

	"github.com/mattn/go-runewidth"
)

type Command interface {
	command()
}

type SetCell struct {
	Pos   device.Position
	Glyph []rune
}

func (SetCell) command() {}

// StatusLine writes Text at the start of Line and clears the rest of it.
type StatusLine struct {
	Line int
	Text string
}

func (StatusLine) command() {}

type MoveCursor struct {
	Pos device.Position
}

func (MoveCursor) command() {}

type Flush struct{}

func (Flush) command() {}

var eraser = []rune{' '}

// Render decides what to draw for a reduced state. It does not touch the terminal.
func Render(s *model.State, change model.Change, size device.Size) []Command {
	cmds := make([]Command, 0, 4)
	pos := device.Position{X: s.Cursor.X, Y: s.Cursor.Y}

	if !change.Quit {
		if s.Buttons.Has(model.Left) {
			cmds = append(cmds, SetCell{Pos: pos, Glyph: Glyph(s.Brush)})
		} else if s.Buttons.Has(model.Right) {
			cmds = append(cmds, SetCell{Pos: pos, Glyph: eraser})
		}
	}

	cmds = append(cmds,
		StatusLine{Line: size.Height - 1, Text: fitWidth(Status(s, size), size.Width)},
		MoveCursor{Pos: pos},
		Flush{},
	)
	return cmds
}

func Status(s *model.State, size device.Size) string {
	return fmt.Sprintf("[%dx%d]:%d,%d | L: %d Ch: %d M: %d [0x%02x]",
		size.Width, size.Height, s.Cursor.X, s.Cursor.Y, s.Loops,
		s.Keys, s.MouseEvents, s.Buttons.Mask())
}

// Glyph returns the runes a brush occupies on screen. Control codes are shown
// in caret notation.
func Glyph(brush rune) []rune {
	switch {
	case brush >= 0 && brush < 0x20:
		return []rune{'^', brush + '@'}
	case brush == 0x7f:
		return []rune{'^', '?'}
	}
	return []rune{brush}
}

func fitWidth(text string, width int) string {
	if width < 1 {
		return ""
	}
	return runewidth.Truncate(text, width, "…")
}

func Draw(dev device.Device, cmds []Command) {
	for _, cmd := range cmds {
		switch cmd := cmd.(type) {
		case SetCell:
			dev.Text(cmd.Glyph, cmd.Pos)

		case StatusLine:
			if cmd.Line < 0 {
				continue
			}
			width := dev.Text([]rune(cmd.Text), device.Position{X: 0, Y: cmd.Line})
			dev.ClearToEOL(device.Position{X: width, Y: cmd.Line})

		case MoveCursor:
			dev.ShowCursor(cmd.Pos)

		case Flush:
			dev.Show()
		}
	}
}
