package parameter

import "time"

// Game Loop & Engine Timing
const (
	// GameUpdateInterval is the physics tick interval (~60 Hz)
	GameUpdateInterval = 16 * time.Millisecond

	// FrameUpdateInterval is the terminal redraw interval, independent of physics ticks
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxTicksBehind is how many tick intervals the scheduler may lag before dropping the backlog
	MaxTicksBehind = 2

	// HeadlessMaxTicks bounds a headless run (~10 minutes of game time at 60 Hz)
	HeadlessMaxTicks = 36000
)

// Event Queue Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 2048

	// EventBufferMask is the bitmask for fast modulo operations (2048 - 1)
	EventBufferMask = 2047
)
