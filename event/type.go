package event

// EventType represents the type of game event
type EventType int

const (
	// === Command Events (input -> engine) ===

	// EventResize delivers a play-area measurement, may repeat
	// Trigger: host layout / terminal resize
	// Consumer: Game | Payload: ResizePayload
	EventResize EventType = iota

	// EventPaddleDrag moves the paddle by a horizontal delta
	// Trigger: drag gesture, arrow keys, autopilot
	// Consumer: Game | Payload: PaddleDragPayload
	EventPaddleDrag

	// EventReset restarts the match
	// Trigger: reset key | Payload: nil
	EventReset

	// EventPause freezes game time
	// Trigger: pause key | Payload: nil
	EventPause

	// EventResume unfreezes game time
	// Trigger: pause key | Payload: nil
	EventResume

	// EventTogglePause flips pause state at apply time
	// Trigger: pause key | Payload: nil
	EventTogglePause

	// === Outcome Events (engine -> listeners) ===

	// EventWallHit signals a side wall bounce
	// Consumer: audio | Payload: nil
	EventWallHit EventType = iota + 100 // Offset keeps commands and outcomes apart

	// EventCeilingHit signals a top wall bounce
	// Consumer: audio | Payload: nil
	EventCeilingHit

	// EventPaddleHit signals the paddle returned the ball
	// Consumer: audio | Payload: nil
	EventPaddleHit

	// EventBrickDestroyed signals a brick was broken
	// Consumer: audio, stats | Payload: BrickPayload
	EventBrickDestroyed

	// EventGameWon signals every brick is gone
	// Consumer: audio, log | Payload: OutcomePayload
	EventGameWon

	// EventGameLost signals the ball passed the paddle
	// Consumer: audio, log | Payload: OutcomePayload
	EventGameLost

	// EventGameReset signals a reset was applied
	// Consumer: log | Payload: nil
	EventGameReset
)

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type    EventType
	Payload any
	Tick    uint64
}
