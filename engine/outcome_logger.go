package engine

import (
	"log"

	"github.com/lixenwraith/breakout/event"
)

// OutcomeLogger writes match lifecycle events to the debug log
type OutcomeLogger struct{}

func (OutcomeLogger) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGameWon,
		event.EventGameLost,
		event.EventGameReset,
	}
}

func (OutcomeLogger) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameWon, event.EventGameLost:
		if p, ok := ev.Payload.(event.OutcomePayload); ok {
			log.Printf("game: %s at tick %d, score %d, remaining %d", ev.Type, p.Ticks, p.Score, p.Remaining)
			return
		}
		log.Printf("game: %s at tick %d", ev.Type, ev.Tick)
	case event.EventGameReset:
		log.Printf("game: reset")
	}
}
