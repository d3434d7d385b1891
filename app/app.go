package app

import (
	"ncpaint/device"
	"ncpaint/model"
	"ncpaint/renderer"

	"github.com/charmbracelet/log"
)

// Input delivers terminal input one notification at a time. Next blocks.
type Input interface {
	Next() model.Event
}

type Options struct {
	Brush   rune
	QuitKey rune
}

func DefaultOptions() Options {
	return Options{Brush: model.DefaultBrush, QuitKey: model.DefaultQuitKey}
}

// Run paints until the quit key is pressed and returns the final session.
// Nothing is read from input once the session has stopped.
func Run(input Input, dev device.Device, opts Options) model.State {
	state := model.NewState(opts.Brush)
	reducer := model.Reducer{QuitKey: opts.QuitKey}

	renderer.Draw(dev, renderer.Render(&state, model.Change{}, dev.Size()))

	for state.Running {
		event := input.Next()
		change := reducer.Reduce(&state, event)
		if !change.IsEmpty() {
			log.Debug("reduced", "change", change, "state", &state)
		}
		renderer.Draw(dev, renderer.Render(&state, change, dev.Size()))
	}

	log.Info("stopped", "loops", state.Loops, "keys", state.Keys, "mouse", state.MouseEvents)
	return state
}
