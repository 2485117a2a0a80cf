package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit   // q, Esc, Ctrl+C
	IntentResize // Terminal resize event

	// Paddle
	IntentPaddleLeft  // Left, h, a
	IntentPaddleRight // Right, l, d
	IntentDragStart   // Left button press
	IntentDrag        // Left button motion while held
	IntentDragEnd     // Left button release

	// Match control
	IntentReset       // r
	IntentTogglePause // p, Space
)

// Intent is a parsed input action
// X and Y carry the cell position for mouse intents and the screen size for resize
type Intent struct {
	Type IntentType
	X, Y int
}
