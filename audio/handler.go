package audio

import (
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/events"
)

// Player is the playback surface the event handler drives
type Player interface {
	Play(st SoundType)
}

// EventHandler maps game events to sound effects
type EventHandler struct {
	player Player
}

// NewEventHandler creates a handler for the given player
func NewEventHandler(p Player) *EventHandler {
	return &EventHandler{player: p}
}

// EventTypes returns the events that produce sound
func (h *EventHandler) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventRewardConsumed,
		events.EventCollision,
		events.EventBoardFull,
		events.EventPaused,
		events.EventResumed,
	}
}

// HandleEvent plays the effect for one event
func (h *EventHandler) HandleEvent(_ *engine.GameState, ev events.GameEvent) {
	switch ev.Type {
	case events.EventRewardConsumed:
		h.player.Play(SoundEat)
	case events.EventCollision, events.EventBoardFull:
		h.player.Play(SoundCrash)
	case events.EventPaused:
		h.player.Play(SoundPause)
	case events.EventResumed:
		h.player.Play(SoundResume)
	}
}

var _ events.Handler[*engine.GameState] = (*EventHandler)(nil)
