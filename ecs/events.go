package ecs

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

const (
	// EventCue carries an audio.Cue to play.
	EventCue = "cue"
	// EventGrounded carries the Entity that landed this frame.
	EventGrounded = "grounded"
	// EventRespawn carries the Entity that was reset to the spawn point.
	EventRespawn = "respawn"
	// EventLevelLoaded carries the loaded level index.
	EventLevelLoaded = "level_loaded"
)

// EventQueue is a simple FIFO queue cleared at the end of every frame.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Items returns the events pushed this frame without consuming them.
func (q *EventQueue) Items() []Event {
	if q == nil {
		return nil
	}
	return q.items
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = q.items[:0]
}
