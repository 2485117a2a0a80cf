package event

var typeToName = map[EventType]string{
	EventResize:         "Resize",
	EventPaddleDrag:     "PaddleDrag",
	EventReset:          "Reset",
	EventPause:          "Pause",
	EventResume:         "Resume",
	EventTogglePause:    "TogglePause",
	EventWallHit:        "WallHit",
	EventCeilingHit:     "CeilingHit",
	EventPaddleHit:      "PaddleHit",
	EventBrickDestroyed: "BrickDestroyed",
	EventGameWon:        "GameWon",
	EventGameLost:       "GameLost",
	EventGameReset:      "GameReset",
}

// String returns the registered event name
func (t EventType) String() string {
	if name, ok := typeToName[t]; ok {
		return name
	}
	return "Unknown"
}

// IsCommand reports whether the event flows from input to the engine
func (t EventType) IsCommand() bool {
	return t >= EventResize && t <= EventTogglePause
}
