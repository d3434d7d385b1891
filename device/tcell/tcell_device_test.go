package tcell

import (
	"errors"
	"ncpaint/device"
	"ncpaint/model"
	"ncpaint/renderer"
	"ncpaint/stream"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

// mouseScreen is a simulation screen that claims mouse support.
type mouseScreen struct {
	tcell.SimulationScreen
}

func (mouseScreen) HasMouse() bool {
	return true
}

func newTestDevice(t *testing.T) (*tcellDevice, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	d, err := newDevice(mouseScreen{sim})
	if err != nil {
		t.Fatalf("newDevice: %v", err)
	}
	return d, sim
}

// waitQueued waits until the poller has moved n events into the input stream.
func waitQueued(t *testing.T, d *tcellDevice, n int) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for d.inEvents.Len() < n {
		if time.Now().After(deadline) {
			t.Fatalf("expected %d queued events, got %d", n, d.inEvents.Len())
		}
		time.Sleep(time.Millisecond)
	}
}

func TestMouseUnsupported(t *testing.T) {
	_, err := newDevice(tcell.NewSimulationScreen("UTF-8"))
	if !errors.Is(err, device.ErrMouseUnsupported) {
		t.Errorf("expected ErrMouseUnsupported, got %v", err)
	}
}

func TestInitFailure(t *testing.T) {
	_, err := newDevice(mouseScreen{tcell.NewSimulationScreen("no-such-charset")})
	if !errors.Is(err, device.ErrInit) {
		t.Errorf("expected ErrInit, got %v", err)
	}
}

func TestTransitions(t *testing.T) {
	cases := []struct {
		before, after tcell.ButtonMask
		flags         model.MouseFlags
	}{
		{tcell.ButtonNone, tcell.ButtonNone, 0},
		{tcell.ButtonNone, tcell.ButtonPrimary, model.Button1Pressed},
		{tcell.ButtonPrimary, tcell.ButtonPrimary, 0},
		{tcell.ButtonPrimary, tcell.ButtonNone, model.Button1Released},
		{tcell.ButtonNone, tcell.ButtonMiddle, model.Button2Pressed},
		{tcell.ButtonNone, tcell.ButtonSecondary, model.Button3Pressed},
		{tcell.ButtonPrimary, tcell.ButtonSecondary, model.Button1Released | model.Button3Pressed},
	}
	for _, c := range cases {
		if got := transitions(c.before, c.after); got != c.flags {
			t.Errorf("transitions(%v, %v): expected %v, got %v", c.before, c.after, c.flags, got)
		}
	}
}

func TestKeyCodes(t *testing.T) {
	cases := []struct {
		key  tcell.Key
		r    rune
		code rune
	}{
		{tcell.KeyRune, 'x', 'x'},
		{tcell.KeyRune, 0x01, 0x01},
		{tcell.KeyEscape, 0, 0x1b},
		{tcell.KeyUp, 0, rune(tcell.KeyUp)},
	}
	for _, c := range cases {
		if got := keyCode(tcell.NewEventKey(c.key, c.r, tcell.ModNone)); got != c.code {
			t.Errorf("keyCode(%v, %q): expected %q, got %q", c.key, c.r, c.code, got)
		}
	}
}

func TestNextBatchesMouseRecords(t *testing.T) {
	d, sim := newTestDevice(t)
	defer d.Stop()

	sim.InjectMouse(1, 1, tcell.ButtonPrimary, tcell.ModNone)
	sim.InjectMouse(2, 1, tcell.ButtonPrimary, tcell.ModNone)
	sim.InjectMouse(3, 1, tcell.ButtonNone, tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	sim.InjectMouse(4, 4, tcell.ButtonSecondary, tcell.ModNone)
	waitQueued(t, d, 5)

	batch, ok := d.Next().(model.MouseBatch)
	if !ok {
		t.Fatal("expected a mouse batch")
	}
	expected := []model.MouseRecord{
		{Pos: model.Position{X: 1, Y: 1}, Flags: model.Button1Pressed},
		{Pos: model.Position{X: 2, Y: 1}},
		{Pos: model.Position{X: 3, Y: 1}, Flags: model.Button1Released},
	}
	if len(batch.Records) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, batch.Records)
	}
	for i := range expected {
		if batch.Records[i] != expected[i] {
			t.Errorf("record %d: expected %v, got %v", i, expected[i], batch.Records[i])
		}
	}

	if key := d.Next(); key != (model.Key{Code: 'x'}) {
		t.Errorf("expected key 'x', got %v", key)
	}

	batch = d.Next().(model.MouseBatch)
	if len(batch.Records) != 1 || batch.Records[0].Flags != model.Button3Pressed {
		t.Errorf("unexpected batch %v", batch.Records)
	}
}

func TestWheelIgnored(t *testing.T) {
	d, sim := newTestDevice(t)
	defer d.Stop()

	sim.InjectMouse(1, 1, tcell.WheelUp, tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'k', tcell.ModNone)
	waitQueued(t, d, 1)

	if key := d.Next(); key != (model.Key{Code: 'k'}) {
		t.Errorf("expected key 'k', got %v", key)
	}
}

func TestWheelDuringDragKeepsButton(t *testing.T) {
	d := &tcellDevice{inEvents: stream.NewStream[inEvent]("test")}

	d.handleEvent(tcell.NewEventMouse(1, 1, tcell.ButtonPrimary, tcell.ModNone))
	d.handleEvent(tcell.NewEventMouse(1, 1, tcell.WheelUp, tcell.ModNone))
	d.handleEvent(tcell.NewEventMouse(2, 1, tcell.ButtonPrimary, tcell.ModNone))

	batch := d.Next().(model.MouseBatch)
	expected := []model.MouseRecord{
		{Pos: model.Position{X: 1, Y: 1}, Flags: model.Button1Pressed},
		{Pos: model.Position{X: 2, Y: 1}},
	}
	if len(batch.Records) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, batch.Records)
	}
	for i := range expected {
		if batch.Records[i] != expected[i] {
			t.Errorf("record %d: expected %v, got %v", i, expected[i], batch.Records[i])
		}
	}

	s := model.NewState(model.DefaultBrush)
	model.NewReducer().Reduce(&s, batch)
	if !s.Buttons.Has(model.Left) {
		t.Errorf("expected Left to stay down, got %v", s.Buttons)
	}
}

func TestDrawOnScreen(t *testing.T) {
	d, sim := newTestDevice(t)
	defer d.Stop()

	s := model.NewState(model.DefaultBrush)
	s.Cursor = model.Position{X: 5, Y: 3}
	s.Buttons = model.NewButtons(model.Left)
	renderer.Draw(d, renderer.Render(&s, model.Change{}, d.Size()))

	cells, w, h := sim.GetContents()
	if w != 80 || h != 25 {
		t.Fatalf("unexpected screen size %dx%d", w, h)
	}
	if got := string(cells[3*w+5].Runes); got != "#" {
		t.Errorf("expected '#' at 5,3, got %q", got)
	}
	status := ""
	for x := 0; x < 6; x++ {
		status += string(cells[(h-1)*w+x].Runes)
	}
	if status != "[80x25" {
		t.Errorf("unexpected status line start %q", status)
	}
	if x, y, _ := sim.GetCursor(); x != 5 || y != 3 {
		t.Errorf("expected cursor at 5,3, got %d,%d", x, y)
	}
}

func TestStopWaitsForPoller(t *testing.T) {
	d, _ := newTestDevice(t)
	if err := d.Stop(); err != nil {
		t.Errorf("Stop: %v", err)
	}
	if !d.lc.ShouldStop() {
		t.Error("poller was not told to stop")
	}
}
