package tcell

import (
	"fmt"
	"ncpaint/device"
	"ncpaint/lifecycle"
	"ncpaint/model"
	"ncpaint/stream"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

type tcellDevice struct {
	screen   tcell.Screen
	lc       *lifecycle.Lifecycle
	inEvents *stream.Stream[inEvent]
	buttons  tcell.ButtonMask
}

var defStyle = tcell.StyleDefault.Background(tcell.ColorReset).Foreground(tcell.ColorReset)

// NewDevice puts the terminal into raw mode with full mouse motion reporting.
func NewDevice() (*tcellDevice, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", device.ErrInit, err)
	}
	return newDevice(screen)
}

func newDevice(screen tcell.Screen) (*tcellDevice, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("%w: %w", device.ErrInit, err)
	}
	if !screen.HasMouse() {
		screen.Fini()
		return nil, device.ErrMouseUnsupported
	}
	screen.SetStyle(defStyle)
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.Clear()

	d := &tcellDevice{
		screen:   screen,
		lc:       lifecycle.New(),
		inEvents: stream.NewStream[inEvent]("terminal input"),
	}
	d.lc.Go(d.poll)

	return d, nil
}

func (d *tcellDevice) poll() {
	for !d.lc.ShouldStop() {
		event := d.screen.PollEvent()
		if event == nil {
			return
		}
		d.handleEvent(event)
	}
}

func (d *tcellDevice) handleEvent(event tcell.Event) {
	switch ev := event.(type) {
	case *tcell.EventKey:
		code := keyCode(ev)
		log.Debug("key", "name", ev.Name(), "code", code)
		d.inEvents.Push(inEvent{key: model.Key{Code: code}, isKey: true})

	case *tcell.EventMouse:
		buttons := ev.Buttons()
		// Wheel events carry no button state; a drag continues through them.
		if buttons&wheelButtons != 0 && buttons&primaryButtons == 0 {
			return
		}
		flags := transitions(d.buttons, buttons&primaryButtons)
		d.buttons = buttons & primaryButtons
		x, y := ev.Position()
		record := model.MouseRecord{Pos: model.Position{X: x, Y: y}, Flags: flags}
		log.Debug("mouse", "record", record)
		d.inEvents.Push(inEvent{mouse: record})

	case *tcell.EventResize:
		d.screen.Sync()
		w, h := ev.Size()
		log.Debug("resize", "cols", w, "lines", h)
	}
}

// Next blocks until there is input. Mouse records queued back to back are
// returned together as one batch.
func (d *tcellDevice) Next() model.Event {
	first := d.inEvents.Pull()
	if first.isKey {
		return first.key
	}
	rest := d.inEvents.PullWhile(isMouse)
	records := make([]model.MouseRecord, 0, len(rest)+1)
	records = append(records, first.mouse)
	for _, e := range rest {
		records = append(records, e.mouse)
	}
	return model.MouseBatch{Records: records}
}

func (d *tcellDevice) Size() device.Size {
	w, h := d.screen.Size()
	return device.Size{Width: w, Height: h}
}

func (d *tcellDevice) Text(runes []rune, pos device.Position) int {
	x := pos.X
	for _, r := range runes {
		d.screen.SetContent(x, pos.Y, r, nil, defStyle)
		x += runewidth.RuneWidth(r)
	}
	return x - pos.X
}

func (d *tcellDevice) ClearToEOL(pos device.Position) {
	w, _ := d.screen.Size()
	for x := pos.X; x < w; x++ {
		d.screen.SetContent(x, pos.Y, ' ', nil, defStyle)
	}
}

func (d *tcellDevice) ShowCursor(pos device.Position) {
	d.screen.ShowCursor(pos.X, pos.Y)
}

func (d *tcellDevice) Show() {
	d.screen.Show()
}

// Stop restores the terminal and waits for the input poller to exit.
func (d *tcellDevice) Stop() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", device.ErrTeardown, r)
		}
	}()

	d.screen.Fini()
	d.lc.Stop()
	return nil
}
