package tcell

import (
	"ncpaint/model"

	"github.com/gdamore/tcell/v2"
)

// tcell reports which buttons are down; the reducer wants transitions.
var buttonMasks = []struct {
	mask   tcell.ButtonMask
	button model.Button
}{
	{tcell.ButtonPrimary, model.Left},
	{tcell.ButtonMiddle, model.Middle},
	{tcell.ButtonSecondary, model.Right},
}

const primaryButtons = tcell.ButtonPrimary | tcell.ButtonMiddle | tcell.ButtonSecondary

const wheelButtons = tcell.WheelUp | tcell.WheelDown | tcell.WheelLeft | tcell.WheelRight

func transitions(before, after tcell.ButtonMask) model.MouseFlags {
	var flags model.MouseFlags
	for _, b := range buttonMasks {
		wasDown, isDown := before&b.mask != 0, after&b.mask != 0
		if !wasDown && isDown {
			flags |= model.Pressed(b.button)
		} else if wasDown && !isDown {
			flags |= model.Released(b.button)
		}
	}
	return flags
}

// keyCode turns a key event into the code used as a brush: the rune for
// printable keys, the tcell key value for everything else.
func keyCode(key *tcell.EventKey) rune {
	if key.Key() == tcell.KeyRune {
		return key.Rune()
	}
	return rune(key.Key())
}

type inEvent struct {
	key   model.Key
	mouse model.MouseRecord
	isKey bool
}

func isMouse(e inEvent) bool {
	return !e.isKey
}
