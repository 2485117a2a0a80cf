package engine

import (
	"time"

	"github.com/lixenwraith/breakout/parameter"
	"github.com/lixenwraith/breakout/physics"
)

// NewTestGame wires a game and scheduler on a mock clock for deterministic tests
// A positive size is queued as the first Resize and applies on the first Pump or RunTicks
func NewTestGame(profile physics.Profile, width, height float64) (*Game, *ClockScheduler, *MockTimeProvider) {
	mock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	clock := NewPausableClock(mock)
	game := NewGame(profile, clock)
	cs, _ := NewClockScheduler(game, clock, parameter.GameUpdateInterval)
	if width > 0 && height > 0 {
		game.Resize(width, height)
	}
	return game, cs, mock
}
