package input

import (
	"reflect"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/breakout/parameter"
)

// fakeCommander records issued commands
type fakeCommander struct {
	drags   []float64
	resizes [][2]float64
	resets  int
	toggles int
}

func (f *fakeCommander) Resize(w, h float64)  { f.resizes = append(f.resizes, [2]float64{w, h}) }
func (f *fakeCommander) DragPaddle(d float64) { f.drags = append(f.drags, d) }
func (f *fakeCommander) Reset()               { f.resets++ }
func (f *fakeCommander) TogglePause()         { f.toggles++ }

func newTestHandler() (*Handler, *fakeCommander) {
	cmd := &fakeCommander{}
	return NewHandler(cmd, parameter.CellWidth, parameter.CellHeight, parameter.PaddleKeyStep), cmd
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestHandlerQuitKeys(t *testing.T) {
	quits := []tcell.Event{
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl),
		key('q'),
	}
	for _, ev := range quits {
		h, _ := newTestHandler()
		if h.HandleEvent(ev) {
			t.Errorf("Expected %v to quit", ev)
		}
	}

	h, _ := newTestHandler()
	if !h.HandleEvent(key('z')) {
		t.Error("Expected unbound key to keep running")
	}
}

func TestHandlerKeyCommands(t *testing.T) {
	h, cmd := newTestHandler()

	h.HandleEvent(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))
	h.HandleEvent(key('l'))
	h.HandleEvent(key('r'))
	h.HandleEvent(key('p'))
	h.HandleEvent(key(' '))

	want := []float64{-parameter.PaddleKeyStep, parameter.PaddleKeyStep}
	if !reflect.DeepEqual(cmd.drags, want) {
		t.Errorf("Expected drags %v, got %v", want, cmd.drags)
	}
	if cmd.resets != 1 {
		t.Errorf("Expected 1 reset, got %d", cmd.resets)
	}
	if cmd.toggles != 2 {
		t.Errorf("Expected 2 pause toggles, got %d", cmd.toggles)
	}
}

func TestHandlerMouseDragDeltas(t *testing.T) {
	h, cmd := newTestHandler()

	h.HandleEvent(tcell.NewEventMouse(10, 5, tcell.Button1, tcell.ModNone))
	h.HandleEvent(tcell.NewEventMouse(13, 5, tcell.Button1, tcell.ModNone))
	h.HandleEvent(tcell.NewEventMouse(13, 6, tcell.Button1, tcell.ModNone))
	h.HandleEvent(tcell.NewEventMouse(11, 6, tcell.ButtonNone, tcell.ModNone))

	// Motion without a held button is ignored
	h.HandleEvent(tcell.NewEventMouse(30, 6, tcell.ButtonNone, tcell.ModNone))

	want := []float64{3 * parameter.CellWidth, -2 * parameter.CellWidth}
	if !reflect.DeepEqual(cmd.drags, want) {
		t.Errorf("Expected drags %v, got %v", want, cmd.drags)
	}
}

func TestHandlerResize(t *testing.T) {
	h, cmd := newTestHandler()
	var gotCols, gotRows int
	h.OnResize = func(cols, rows int) { gotCols, gotRows = cols, rows }

	h.HandleEvent(tcell.NewEventResize(80, 24))

	if len(cmd.resizes) != 1 {
		t.Fatalf("Expected 1 resize, got %d", len(cmd.resizes))
	}
	want := [2]float64{80 * parameter.CellWidth, 23 * parameter.CellHeight}
	if cmd.resizes[0] != want {
		t.Errorf("Expected play area %v, got %v", want, cmd.resizes[0])
	}
	if gotCols != 80 || gotRows != 24 {
		t.Errorf("Expected OnResize(80, 24), got (%d, %d)", gotCols, gotRows)
	}
}

func TestMachineDragLifecycle(t *testing.T) {
	m := NewMachine()

	steps := []struct {
		ev   tcell.Event
		want IntentType
	}{
		{tcell.NewEventMouse(1, 1, tcell.Button1, tcell.ModNone), IntentDragStart},
		{tcell.NewEventMouse(2, 1, tcell.Button1, tcell.ModNone), IntentDrag},
		{tcell.NewEventMouse(3, 1, tcell.ButtonNone, tcell.ModNone), IntentDragEnd},
	}
	for i, s := range steps {
		got := m.Process(s.ev)
		if got == nil || got.Type != s.want {
			t.Fatalf("step %d: expected intent %d, got %+v", i, s.want, got)
		}
	}
	if m.Dragging() {
		t.Error("Expected drag to end on release")
	}
	if got := m.Process(tcell.NewEventMouse(4, 1, tcell.ButtonNone, tcell.ModNone)); got != nil {
		t.Errorf("Expected hover to produce no intent, got %+v", got)
	}
}
