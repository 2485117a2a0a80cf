package audio

import "github.com/lixenwraith/breakout/event"

// Player is the effect surface the handler drives
type Player interface {
	PlayWall()
	PlayPaddle()
	PlayBrick()
	PlayLost()
	PlayWon()
}

// SoundHandler maps game outcomes to effects
type SoundHandler struct {
	player Player
}

func NewSoundHandler(player Player) *SoundHandler {
	return &SoundHandler{player: player}
}

func (h *SoundHandler) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventWallHit,
		event.EventCeilingHit,
		event.EventPaddleHit,
		event.EventBrickDestroyed,
		event.EventGameWon,
		event.EventGameLost,
	}
}

func (h *SoundHandler) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventWallHit, event.EventCeilingHit:
		h.player.PlayWall()
	case event.EventPaddleHit:
		h.player.PlayPaddle()
	case event.EventBrickDestroyed:
		h.player.PlayBrick()
	case event.EventGameWon:
		h.player.PlayWon()
	case event.EventGameLost:
		h.player.PlayLost()
	}
}
