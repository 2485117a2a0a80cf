package engine

import (
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/breakout/event"
	"github.com/lixenwraith/breakout/physics"
)

// Game owns the simulation and is its single writer
// Input goroutines push commands; only the scheduler goroutine drains them and steps the world.
// Readers (renderers, spectators) load the last published snapshot without locking
type Game struct {
	mu    sync.Mutex
	world *physics.World
	clock *PausableClock

	// Input -> engine
	commands *event.EventQueue
	cmdBuf   []event.GameEvent

	// Engine -> listeners
	outcomes *event.EventQueue
	router   *event.Router

	snapshot atomic.Pointer[physics.Snapshot]

	// Wakes an idle scheduler when a command arrives
	wake chan struct{}
}

// NewGame creates an unmeasured game on the given clock, ticks are no-ops until Resize
func NewGame(profile physics.Profile, clock *PausableClock) *Game {
	outcomes := event.NewEventQueue()
	g := &Game{
		world:    physics.NewWorld(profile),
		clock:    clock,
		commands: event.NewEventQueue(),
		cmdBuf:   make([]event.GameEvent, 0, 16),
		outcomes: outcomes,
		router:   event.NewRouter(outcomes),
		wake:     make(chan struct{}, 1),
	}
	g.publishLocked()
	return g
}

// Resize queues a play-area measurement, safe to redeliver
func (g *Game) Resize(width, height float64) {
	g.push(event.EventResize, event.ResizePayload{Width: width, Height: height})
}

// DragPaddle queues a horizontal paddle move
func (g *Game) DragPaddle(delta float64) {
	g.push(event.EventPaddleDrag, event.PaddleDragPayload{Delta: delta})
}

// Reset queues a restart of the match
func (g *Game) Reset() { g.push(event.EventReset, nil) }

// Pause queues freezing of game time
func (g *Game) Pause() { g.push(event.EventPause, nil) }

// Resume queues unfreezing of game time
func (g *Game) Resume() { g.push(event.EventResume, nil) }

// TogglePause queues a pause flip, resolved against the state at drain time
func (g *Game) TogglePause() { g.push(event.EventTogglePause, nil) }

func (g *Game) push(t event.EventType, payload any) {
	g.commands.Emit(t, payload, 0)
	select {
	case g.wake <- struct{}{}:
	default:
	}
}

// Wake returns the channel signaled on every queued command
func (g *Game) Wake() <-chan struct{} {
	return g.wake
}

// Router returns the outcome router, register handlers before the scheduler starts
func (g *Game) Router() *event.Router {
	return g.router
}

// Snapshot returns the last published state, never nil
func (g *Game) Snapshot() *physics.Snapshot {
	return g.snapshot.Load()
}

// Playing reports whether the scheduler should keep ticking
func (g *Game) Playing() bool {
	s := g.snapshot.Load()
	return s.State == physics.StatePlaying && !s.Paused
}

// applyCommands drains queued commands into the world
// Scheduler goroutine only. Returns the number applied and whether a reset happened
func (g *Game) applyCommands() (int, bool) {
	g.cmdBuf = g.commands.ConsumeInto(g.cmdBuf[:0])
	n := len(g.cmdBuf)
	if n == 0 {
		return 0, false
	}

	reset := false
	g.mu.Lock()
	for _, ev := range g.cmdBuf {
		switch ev.Type {
		case event.EventResize:
			if p, ok := ev.Payload.(event.ResizePayload); ok {
				g.world.Resize(p.Width, p.Height)
			}
		case event.EventPaddleDrag:
			if p, ok := ev.Payload.(event.PaddleDragPayload); ok {
				g.world.MovePaddle(p.Delta)
			}
		case event.EventReset:
			g.world.Reset()
			g.clock.Resume()
			reset = true
			g.outcomes.Emit(event.EventGameReset, nil, 0)
		case event.EventPause:
			g.clock.Pause()
		case event.EventResume:
			g.clock.Resume()
		case event.EventTogglePause:
			if !g.clock.Pause() {
				g.clock.Resume()
			}
		}
	}
	g.publishLocked()
	g.mu.Unlock()

	clear(g.cmdBuf)
	g.router.DispatchAll()
	return n, reset
}

// step advances the world one tick and routes its outcomes
// Scheduler goroutine only. Returns false when the tick was a no-op
func (g *Game) step() bool {
	g.mu.Lock()
	res := g.world.Step()
	if res.Ran {
		g.emitOutcomes(res)
		g.publishLocked()
	}
	g.mu.Unlock()

	if res.Ran {
		g.router.DispatchAll()
	}
	return res.Ran
}

func (g *Game) emitOutcomes(res physics.StepResult) {
	tick := g.world.Tick()
	if res.Contacts&physics.ContactWall != 0 {
		g.outcomes.Emit(event.EventWallHit, nil, tick)
	}
	if res.Contacts&physics.ContactCeiling != 0 {
		g.outcomes.Emit(event.EventCeilingHit, nil, tick)
	}
	if res.Contacts&physics.ContactPaddle != 0 {
		g.outcomes.Emit(event.EventPaddleHit, nil, tick)
	}
	for _, idx := range res.Bricks {
		br := g.world.Brick(idx)
		g.outcomes.Emit(event.EventBrickDestroyed, event.BrickPayload{
			Index:  idx,
			Row:    br.Row,
			Column: br.Column,
		}, tick)
	}

	if !res.Changed {
		return
	}
	summary := event.OutcomePayload{
		Score:     g.world.Destroyed(),
		Remaining: g.world.BrickCount() - g.world.Destroyed(),
		Ticks:     tick,
	}
	switch res.State {
	case physics.StateWon:
		g.outcomes.Emit(event.EventGameWon, summary, tick)
	case physics.StateLost:
		g.outcomes.Emit(event.EventGameLost, summary, tick)
	}
}

// publishLocked stores a fresh snapshot, caller holds mu (or owns g exclusively)
func (g *Game) publishLocked() {
	s := g.world.Snapshot()
	s.Paused = g.clock.IsPaused()
	g.snapshot.Store(s)
}
