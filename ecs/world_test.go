package ecs

import (
	"errors"
	"testing"
)

type recordingSystem struct {
	name  string
	calls *[]string
	err   error
}

func (s recordingSystem) Update(w *World) error {
	*s.calls = append(*s.calls, s.name)
	return s.err
}

func TestWorldUpdateOrder(t *testing.T) {
	w := NewWorld(4, nil)
	var calls []string
	w.AddSystem(recordingSystem{name: "a", calls: &calls})
	w.AddSystem(nil)
	w.AddSystem(recordingSystem{name: "b", calls: &calls})

	e, err := w.CreateEntity(TagPlatform)
	if err != nil {
		t.Fatal(err)
	}
	if w.Registry().Count(TagPlatform) != 0 {
		t.Fatalf("entity should not be visible before the first update")
	}
	if err := w.Update(); err != nil {
		t.Fatal(err)
	}
	if len(calls) != 2 || calls[0] != "a" || calls[1] != "b" {
		t.Fatalf("unexpected call order %v", calls)
	}
	if w.Registry().Count(TagPlatform) != 1 || w.Registry().View(TagPlatform)[0] != e {
		t.Fatalf("update must reconcile before systems run")
	}
	if w.Frame() != 1 {
		t.Fatalf("expected frame 1, got %d", w.Frame())
	}
}

func TestWorldUpdatePropagatesError(t *testing.T) {
	w := NewWorld(1, nil)
	var calls []string
	w.AddSystem(recordingSystem{name: "fail", calls: &calls, err: ErrCapacityExhausted})
	w.AddSystem(recordingSystem{name: "after", calls: &calls})

	err := w.Update()
	if !errors.Is(err, ErrCapacityExhausted) {
		t.Fatalf("expected wrapped ErrCapacityExhausted, got %v", err)
	}
	if len(calls) != 1 {
		t.Fatalf("systems after a failure must not run, got %v", calls)
	}
}

func TestWorldEventsFlushedPerFrame(t *testing.T) {
	w := NewWorld(1, nil)
	w.Events().Push(Event{Type: EventRespawn, Data: Entity(0)})
	if len(w.Events().Items()) != 1 {
		t.Fatalf("expected one queued event")
	}
	if err := w.Update(); err != nil {
		t.Fatal(err)
	}
	if len(w.Events().Items()) != 0 {
		t.Fatalf("events must be flushed at the end of the frame")
	}
}

func TestWorldHandlesStartInvalid(t *testing.T) {
	w := NewWorld(1, nil)
	if w.Player().Valid() || w.Goal().Valid() {
		t.Fatalf("player and goal handles should start invalid")
	}
}

func TestEventQueueDrain(t *testing.T) {
	var q EventQueue
	q.Push(Event{Type: EventCue})
	q.Push(Event{Type: EventGrounded})
	got := q.Drain()
	if len(got) != 2 || got[0].Type != EventCue {
		t.Fatalf("unexpected drain result %v", got)
	}
	if q.Drain() != nil {
		t.Fatalf("queue should be empty after drain")
	}
}

func TestTagString(t *testing.T) {
	if TagPlatform.String() != "platform" || Tag(99).String() != "tag(99)" {
		t.Fatalf("unexpected tag names %q %q", TagPlatform, Tag(99))
	}
	if InvalidEntity.String() != "invalid" || Entity(7).String() != "7" {
		t.Fatalf("unexpected entity strings")
	}
}
