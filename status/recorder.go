package status

import (
	"sync/atomic"

	"github.com/lixenwraith/breakout/event"
)

// Recorder counts routed outcome events into a Registry
type Recorder struct {
	reg *Registry

	wall, ceiling, paddle, bricks *atomic.Int64
	won, lost, resets, best       *atomic.Int64
	winRate                       *AtomicFloat
}

// NewRecorder caches the counters it writes, so HandleEvent never takes a lock
func NewRecorder(reg *Registry) *Recorder {
	return &Recorder{
		reg:     reg,
		wall:    reg.Ints.Get(KeyWallHits),
		ceiling: reg.Ints.Get(KeyCeilingHits),
		paddle:  reg.Ints.Get(KeyPaddleHits),
		bricks:  reg.Ints.Get(KeyBricks),
		won:     reg.Ints.Get(KeyWon),
		lost:    reg.Ints.Get(KeyLost),
		resets:  reg.Ints.Get(KeyResets),
		best:    reg.Ints.Get(KeyBestScore),
		winRate: reg.Floats.Get(KeyWinRate),
	}
}

func (r *Recorder) Registry() *Registry { return r.reg }

func (r *Recorder) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventWallHit,
		event.EventCeilingHit,
		event.EventPaddleHit,
		event.EventBrickDestroyed,
		event.EventGameWon,
		event.EventGameLost,
		event.EventGameReset,
	}
}

func (r *Recorder) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventWallHit:
		r.wall.Add(1)
	case event.EventCeilingHit:
		r.ceiling.Add(1)
	case event.EventPaddleHit:
		r.paddle.Add(1)
	case event.EventBrickDestroyed:
		r.bricks.Add(1)
	case event.EventGameWon:
		r.won.Add(1)
		r.finish(ev)
	case event.EventGameLost:
		r.lost.Add(1)
		r.finish(ev)
	case event.EventGameReset:
		r.resets.Add(1)
	}
}

func (r *Recorder) finish(ev event.GameEvent) {
	if p, ok := ev.Payload.(event.OutcomePayload); ok && int64(p.Score) > r.best.Load() {
		r.best.Store(int64(p.Score))
	}
	won, lost := r.won.Load(), r.lost.Load()
	r.winRate.Set(float64(won) / float64(won+lost))
}
