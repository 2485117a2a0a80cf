package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/breakout/render"
)

// Commander accepts the game commands input produces, satisfied by *engine.Game
type Commander interface {
	Resize(width, height float64)
	DragPaddle(delta float64)
	Reset()
	TogglePause()
}

// Handler turns terminal events into game commands
// Pointer drags become paddle deltas in play-area pixels
type Handler struct {
	machine *Machine
	cmd     Commander

	cellW, cellH float64
	keyStep      float64

	lastX int

	// OnResize runs after a resize command is queued, hosts resize their renderer here
	OnResize func(cols, rows int)
}

// NewHandler creates a handler that scales cells by cellW x cellH pixels
func NewHandler(cmd Commander, cellW, cellH, keyStep float64) *Handler {
	return &Handler{
		machine: NewMachine(),
		cmd:     cmd,
		cellW:   cellW,
		cellH:   cellH,
		keyStep: keyStep,
	}
}

// HandleEvent processes one terminal event, returns false to quit
func (h *Handler) HandleEvent(ev tcell.Event) bool {
	intent := h.machine.Process(ev)
	if intent == nil {
		return true
	}

	switch intent.Type {
	case IntentQuit:
		return false
	case IntentResize:
		h.resize(intent.X, intent.Y)
	case IntentPaddleLeft:
		h.cmd.DragPaddle(-h.keyStep)
	case IntentPaddleRight:
		h.cmd.DragPaddle(h.keyStep)
	case IntentDragStart:
		h.lastX = intent.X
	case IntentDrag, IntentDragEnd:
		if dx := intent.X - h.lastX; dx != 0 {
			h.cmd.DragPaddle(float64(dx) * h.cellW)
		}
		h.lastX = intent.X
	case IntentReset:
		h.cmd.Reset()
	case IntentTogglePause:
		h.cmd.TogglePause()
	}
	return true
}

// Resize queues the play area for a cols x rows terminal
func (h *Handler) Resize(cols, rows int) {
	h.resize(cols, rows)
}

func (h *Handler) resize(cols, rows int) {
	w, ht := render.NewLayout(cols, rows, h.cellW, h.cellH).PlayArea()
	h.cmd.Resize(w, ht)
	if h.OnResize != nil {
		h.OnResize(cols, rows)
	}
}
