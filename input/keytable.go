package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Esc)
	SpecialKeys map[tcell.Key]IntentType

	// Rune bindings
	Runes map[rune]IntentType
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]IntentType{
			tcell.KeyEscape: IntentQuit,
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyCtrlQ:  IntentQuit,
			tcell.KeyLeft:   IntentPaddleLeft,
			tcell.KeyRight:  IntentPaddleRight,
		},
		Runes: map[rune]IntentType{
			'q': IntentQuit,
			'h': IntentPaddleLeft,
			'a': IntentPaddleLeft,
			'l': IntentPaddleRight,
			'd': IntentPaddleRight,
			'r': IntentReset,
			'R': IntentReset,
			'p': IntentTogglePause,
			' ': IntentTogglePause,
		},
	}
}

// Lookup returns the intent bound to a key event, IntentNone when unbound
func (kt *KeyTable) Lookup(ev *tcell.EventKey) IntentType {
	if ev.Key() == tcell.KeyRune {
		return kt.Runes[ev.Rune()]
	}
	return kt.SpecialKeys[ev.Key()]
}
