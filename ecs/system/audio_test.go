package system

import (
	"testing"

	"github.com/milk9111/windowhop/audio"
	"github.com/milk9111/windowhop/ecs"
)

func TestAudioSystemPlaysCues(t *testing.T) {
	w := ecs.NewWorld(4, nil)
	rec := &recordingPlayer{}
	q := w.Events()
	q.Push(ecs.Event{Type: ecs.EventCue, Data: audio.CueJump})
	q.Push(ecs.Event{Type: ecs.EventRespawn, Data: ecs.Entity(0)})
	q.Push(ecs.Event{Type: ecs.EventCue, Data: audio.CueDeath})
	q.Push(ecs.Event{Type: ecs.EventCue, Data: "not a cue"})

	if err := NewAudioSystem(rec).Update(w); err != nil {
		t.Fatalf("update: %v", err)
	}
	if len(rec.played) != 2 || rec.played[0] != audio.CueJump || rec.played[1] != audio.CueDeath {
		t.Fatalf("unexpected cues played: %v", rec.played)
	}
}

func TestAudioSystemWithoutPlayer(t *testing.T) {
	w := ecs.NewWorld(4, nil)
	w.Events().Push(ecs.Event{Type: ecs.EventCue, Data: audio.CueJump})
	if err := NewAudioSystem(nil).Update(w); err != nil {
		t.Fatalf("update: %v", err)
	}
}
