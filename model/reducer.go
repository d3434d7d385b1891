package model

const DefaultQuitKey = 'q'

type Reducer struct {
	QuitKey rune
}

func NewReducer() Reducer {
	return Reducer{QuitKey: DefaultQuitKey}
}

// Change tells the renderer what a reduction did.
type Change struct {
	Moved          bool
	Cursor         Position
	ButtonsChanged bool
	Buttons        Buttons
	Quit           bool
}

func (c Change) IsEmpty() bool {
	return !c.Moved && !c.ButtonsChanged && !c.Quit
}

// Reduce folds one input notification into the state.
// Every call counts as one loop, whatever the notification.
func (r Reducer) Reduce(s *State, event Event) Change {
	s.Loops++

	switch event := event.(type) {
	case Key:
		return r.key(s, event)

	case MouseBatch:
		return r.mouse(s, event)
	}
	return Change{}
}

func (r Reducer) key(s *State, key Key) Change {
	s.Keys++

	if key.Code == r.QuitKey {
		s.Running = false
		return Change{Quit: true}
	}

	s.Brush = key.Code
	return Change{}
}

// mouse applies a burst of records. Within one batch the first record wins:
// the cursor takes the position of the first record, and each button takes the
// transition from the first record that mentions it.
func (r Reducer) mouse(s *State, batch MouseBatch) Change {
	cursor, buttons := s.Cursor, s.Buttons
	moved := false
	var resolved Buttons

	for _, record := range batch.Records {
		s.MouseEvents++

		if !moved {
			s.Cursor = record.Pos
			moved = true
		}

		for _, b := range allButtons {
			if resolved.Has(b) {
				continue
			}
			if record.Flags&Pressed(b) != 0 {
				s.Buttons = s.Buttons.With(b)
				resolved = resolved.With(b)
			} else if record.Flags&Released(b) != 0 {
				s.Buttons = s.Buttons.Without(b)
				resolved = resolved.With(b)
			}
		}
	}

	change := Change{Cursor: s.Cursor, Buttons: s.Buttons}
	change.Moved = s.Cursor != cursor
	change.ButtonsChanged = s.Buttons != buttons
	return change
}
