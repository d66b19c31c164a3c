package system

import (
	"github.com/milk9111/windowhop/ecs"
	"github.com/milk9111/windowhop/ecs/component"
	"github.com/milk9111/windowhop/input"
)

// InputSource yields the button edges observed since the previous poll.
type InputSource interface {
	Poll() []input.Event
}

// InputSystem applies this frame's edges to every player's Input. Last
// frame's Pressed/Released pulses are cleared first.
type InputSystem struct {
	source InputSource
}

func NewInputSystem(source InputSource) *InputSystem {
	return &InputSystem{source: source}
}

func (s *InputSystem) Update(w *ecs.World) error {
	if w == nil {
		return nil
	}

	var events []input.Event
	if s.source != nil {
		events = s.source.Poll()
	}

	store := w.Store()
	for _, e := range w.Registry().View(ecs.TagPlayer) {
		if !store.Active(e) {
			continue
		}
		in, ok := store.Input(e)
		if !ok {
			continue
		}
		in.ClearEdges()
		for _, ev := range events {
			b := button(in, ev.Button)
			if b == nil {
				continue
			}
			if ev.Down {
				b.Press()
			} else {
				b.Release()
			}
		}
	}
	return nil
}

func button(in *component.Input, b input.Button) *component.Button {
	switch b {
	case input.ButtonUp:
		return &in.Up
	case input.ButtonDown:
		return &in.Down
	case input.ButtonLeft:
		return &in.Left
	case input.ButtonRight:
		return &in.Right
	case input.ButtonSpace:
		return &in.Space
	}
	return nil
}
