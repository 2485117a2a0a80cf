package parameter

import "time"

// Terminal cell to play-area pixel scale
const (
	CellWidth  = 16.0
	CellHeight = 32.0

	// BottomMargin reserves the status bar row
	BottomMargin = 1
)

// Glyphs
const (
	BallGlyph   = '●'
	PaddleGlyph = '▀'
	BrickGlyph  = '█'
)

// Status Bar
const (
	StatusHelpText = "[←/→ drag] move  [r] reset  [p] pause  [q] quit"
	WonText        = " CLEARED! press r to play again "
	LostText       = " BALL LOST - press r to retry "
	PausedText     = " PAUSED "
)

// Spectator streaming
const (
	SpectatorBroadcastHz = 30
	SpectatorWriteWait   = 2 * time.Second
	SpectatorAddr        = ":8080"
)

// Logging
const (
	LogDir      = "logs"
	LogFileName = "breakout.log"
	MaxLogSize  = 10 * 1024 * 1024
)

// GUI host
const (
	WindowWidth   = 640
	WindowHeight  = 720
	WindowTitle   = "Breakout"
	BrickFadeSecs = 0.3
)
