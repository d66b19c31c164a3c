package system

import (
	"github.com/milk9111/windowhop/audio"
	"github.com/milk9111/windowhop/ecs"
)

// CuePlayer starts a sound and returns without waiting for it.
type CuePlayer interface {
	Play(audio.Cue)
}

type AudioSystem struct {
	player CuePlayer
}

func NewAudioSystem(player CuePlayer) *AudioSystem {
	return &AudioSystem{player: player}
}

func (a *AudioSystem) Update(w *ecs.World) error {
	if w == nil || a.player == nil {
		return nil
	}
	for _, ev := range w.Events().Items() {
		if ev.Type != ecs.EventCue {
			continue
		}
		if c, ok := ev.Data.(audio.Cue); ok {
			a.player.Play(c)
		}
	}
	return nil
}
