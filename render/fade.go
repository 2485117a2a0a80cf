package render

import (
	"sync"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/lixenwraith/breakout/event"
)

// FadeTracker animates destroyed bricks out instead of removing them in one frame
// Registered on the game router; Update and Alpha are called by the frame loop
type FadeTracker struct {
	mu       sync.Mutex
	duration float32
	tweens   map[int]*gween.Tween
	alpha    map[int]float32
}

// NewFadeTracker creates a tracker whose fades last seconds
func NewFadeTracker(seconds float32) *FadeTracker {
	return &FadeTracker{
		duration: seconds,
		tweens:   make(map[int]*gween.Tween),
		alpha:    make(map[int]float32),
	}
}

func (f *FadeTracker) EventTypes() []event.EventType {
	return []event.EventType{event.EventBrickDestroyed, event.EventGameReset}
}

func (f *FadeTracker) HandleEvent(ev event.GameEvent) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch ev.Type {
	case event.EventBrickDestroyed:
		p, ok := ev.Payload.(event.BrickPayload)
		if !ok {
			return
		}
		f.tweens[p.Index] = gween.New(1, 0, f.duration, ease.OutQuad)
		f.alpha[p.Index] = 1
	case event.EventGameReset:
		clear(f.tweens)
		clear(f.alpha)
	}
}

// Update advances every running fade by dt seconds
func (f *FadeTracker) Update(dt float32) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, tw := range f.tweens {
		v, done := tw.Update(dt)
		if done {
			delete(f.tweens, i)
			v = 0
		}
		f.alpha[i] = v
	}
}

// Alpha is the opacity of brick i: 1 while standing, the tween value while fading, 0 after
func (f *FadeTracker) Alpha(i int, destroyed bool) float32 {
	if !destroyed {
		return 1
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.alpha[i]
}

// Active reports how many fades are still running
func (f *FadeTracker) Active() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.tweens)
}
