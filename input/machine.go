package input

import "github.com/gdamore/tcell/v2"

// Machine is the input state machine
// Parses tcell events into semantic Intents, tracking the held mouse button across events
type Machine struct {
	keyTable *KeyTable
	dragging bool
}

// NewMachine creates a new input machine
func NewMachine() *Machine {
	return &Machine{
		keyTable: DefaultKeyTable(),
	}
}

// Reset clears drag state
func (m *Machine) Reset() {
	m.dragging = false
}

// Dragging reports whether the left button is held
func (m *Machine) Dragging() bool {
	return m.dragging
}

// Process parses a terminal event and returns an Intent
// Returns nil for events with no binding
func (m *Machine) Process(ev tcell.Event) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if t := m.keyTable.Lookup(ev); t != IntentNone {
			return &Intent{Type: t}
		}
	case *tcell.EventMouse:
		return m.processMouse(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		return &Intent{Type: IntentResize, X: w, Y: h}
	}
	return nil
}

func (m *Machine) processMouse(ev *tcell.EventMouse) *Intent {
	x, y := ev.Position()
	held := ev.Buttons()&tcell.Button1 != 0

	switch {
	case held && !m.dragging:
		m.dragging = true
		return &Intent{Type: IntentDragStart, X: x, Y: y}
	case held:
		return &Intent{Type: IntentDrag, X: x, Y: y}
	case m.dragging:
		m.dragging = false
		return &Intent{Type: IntentDragEnd, X: x, Y: y}
	}
	// Motion without a button
	return nil
}
