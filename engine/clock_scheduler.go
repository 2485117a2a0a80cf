package engine

import (
	"context"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/breakout/core"
	"github.com/lixenwraith/breakout/parameter"
)

// ClockScheduler runs game logic on a fixed tick
// Handles pause-aware scheduling without busy-wait
type ClockScheduler struct {
	game  *Game
	clock *PausableClock

	// Tick configuration
	tickInterval     time.Duration
	nextTickDeadline time.Time // Next tick deadline for drift correction

	// Tick counter for debugging and metrics
	tickCount atomic.Uint64
	mu        sync.Mutex

	// Control channels
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool

	// Send signal that a new snapshot is published
	updateDone chan struct{}
}

// NewClockScheduler creates a new clock scheduler with specified tick interval
// Returns the updateDone channel hosts wait on before redrawing
func NewClockScheduler(game *Game, clock *PausableClock, tickInterval time.Duration) (*ClockScheduler, <-chan struct{}) {
	if tickInterval <= 0 {
		tickInterval = parameter.GameUpdateInterval
	}
	updateDone := make(chan struct{}, 1)

	cs := &ClockScheduler{
		game:             game,
		clock:            clock,
		tickInterval:     tickInterval,
		nextTickDeadline: clock.Now().Add(tickInterval),
		stopChan:         make(chan struct{}),
		updateDone:       updateDone,
	}
	return cs, updateDone
}

// Start begins the scheduler loop in a crash-safe goroutine
func (cs *ClockScheduler) Start(ctx context.Context) {
	if !cs.running.CompareAndSwap(false, true) {
		return
	}
	cs.wg.Add(1)
	core.Go(func() {
		cs.schedulerLoop(ctx)
	})
}

// Stop halts the scheduler loop and waits for it to exit, safe to call repeatedly
func (cs *ClockScheduler) Stop() {
	cs.stopOnce.Do(func() {
		close(cs.stopChan)
	})
	if cs.running.Load() {
		cs.wg.Wait()
	}
}

// TickCount returns the number of ticks that advanced the world
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}

// TickInterval returns the fixed timestep
func (cs *ClockScheduler) TickInterval() time.Duration {
	return cs.tickInterval
}

// Pump drains commands and runs every tick whose deadline has passed on the game clock
// Falling more than MaxTicksBehind intervals behind drops the backlog and resyncs
func (cs *ClockScheduler) Pump() int {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	applied, reset := cs.game.applyCommands()
	if reset {
		cs.nextTickDeadline = cs.clock.Now().Add(cs.tickInterval)
	}

	ran := 0
	if !cs.clock.IsPaused() {
		now := cs.clock.Now()
		for !now.Before(cs.nextTickDeadline) {
			if cs.game.step() {
				ran++
				cs.tickCount.Add(1)
			}
			cs.nextTickDeadline = cs.nextTickDeadline.Add(cs.tickInterval)

			if now.Sub(cs.nextTickDeadline) > cs.tickInterval*parameter.MaxTicksBehind {
				cs.nextTickDeadline = now.Add(cs.tickInterval)
			}
		}
	}

	if applied > 0 || ran > 0 {
		cs.signalUpdate()
	}
	return ran
}

// RunTicks drains commands then steps up to n ticks without consulting the clock
// Stops early when paused or when the match ends
func (cs *ClockScheduler) RunTicks(n int) int {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	applied, _ := cs.game.applyCommands()

	ran := 0
	for ran < n && !cs.clock.IsPaused() && cs.game.step() {
		ran++
		cs.tickCount.Add(1)
	}

	if applied > 0 || ran > 0 {
		cs.signalUpdate()
	}
	return ran
}

func (cs *ClockScheduler) resync() {
	cs.mu.Lock()
	cs.nextTickDeadline = cs.clock.Now().Add(cs.tickInterval)
	cs.mu.Unlock()
}

func (cs *ClockScheduler) untilNextTick() time.Duration {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return cs.nextTickDeadline.Sub(cs.clock.Now())
}

// signalUpdate is non-blocking, a pending signal already covers this update
func (cs *ClockScheduler) signalUpdate() {
	select {
	case cs.updateDone <- struct{}{}:
	default:
	}
}

// schedulerLoop sleeps until the next deadline or a command
// Paused or finished games park on the wake channel so Reset and Resume still get through
func (cs *ClockScheduler) schedulerLoop(ctx context.Context) {
	defer cs.wg.Done()
	defer log.Printf("scheduler: stopped after %d ticks", cs.TickCount())

	cs.resync()

	timer := time.NewTimer(cs.tickInterval)
	defer timer.Stop()

	for {
		select {
		case <-cs.stopChan:
			return
		case <-ctx.Done():
			return
		default:
		}

		cs.Pump()

		if !cs.game.Playing() {
			select {
			case <-cs.game.Wake():
				cs.resync()
			case <-cs.stopChan:
				return
			case <-ctx.Done():
				return
			}
			continue
		}

		sleep := cs.untilNextTick()
		if sleep <= 0 {
			continue
		}

		if !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
		timer.Reset(sleep)

		select {
		case <-timer.C:
		case <-cs.game.Wake():
		case <-cs.stopChan:
			return
		case <-ctx.Done():
			return
		}
	}
}
