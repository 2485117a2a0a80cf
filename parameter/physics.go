package parameter

// Ball defaults, in play-area pixels
const (
	BallRadius = 15.0

	// BallSpeedX and BallSpeedY are per-tick displacements at reset, ball starts moving up and right
	BallSpeedX = 4.0
	BallSpeedY = -4.0
)

// Paddle defaults
const (
	PaddleWidth  = 160.0
	PaddleHeight = 20.0

	// PaddleMargin is the gap between the paddle band and the play area bottom
	PaddleMargin = 20.0

	// PaddleKeyStep is the drag delta applied per arrow key press
	PaddleKeyStep = 24.0

	// AutopilotMaxStep caps the per-tick paddle delta of the autopilot
	AutopilotMaxStep = 12.0
)

// Brick grid defaults
const (
	BrickRows    = 5
	BrickColumns = 7
	BrickHeight  = 40.0
	BrickGap     = 8.0

	// BrickTopOffset is the distance from the play area top to the first brick row
	BrickTopOffset = 80.0
)

// Headless play area
const (
	HeadlessWidth  = 640.0
	HeadlessHeight = 720.0
)
