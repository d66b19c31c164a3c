// Package input turns ebiten keyboard edges into button events for the
// simulation.
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type Button uint8

const (
	ButtonUp Button = iota
	ButtonDown
	ButtonLeft
	ButtonRight
	ButtonSpace
)

func (b Button) String() string {
	switch b {
	case ButtonUp:
		return "up"
	case ButtonDown:
		return "down"
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	case ButtonSpace:
		return "space"
	}
	return "unknown"
}

// Event is one press (Down) or release edge.
type Event struct {
	Button Button
	Down   bool
}

var keyMap = map[ebiten.Key]Button{
	ebiten.KeyArrowUp:    ButtonUp,
	ebiten.KeyW:          ButtonUp,
	ebiten.KeyArrowDown:  ButtonDown,
	ebiten.KeyS:          ButtonDown,
	ebiten.KeyArrowLeft:  ButtonLeft,
	ebiten.KeyA:          ButtonLeft,
	ebiten.KeyArrowRight: ButtonRight,
	ebiten.KeyD:          ButtonRight,
	ebiten.KeySpace:      ButtonSpace,
}

// ButtonForKey reports the button bound to key.
func ButtonForKey(key ebiten.Key) (Button, bool) {
	b, ok := keyMap[key]
	return b, ok
}

// Keyboard polls ebiten for this tick's key edges. It must be polled from
// the game's Update.
type Keyboard struct {
	keys   []ebiten.Key
	events []Event
}

func NewKeyboard() *Keyboard {
	return &Keyboard{}
}

// Poll returns presses before releases. The slice is reused by the next call.
func (k *Keyboard) Poll() []Event {
	k.events = k.events[:0]
	k.keys = inpututil.AppendJustPressedKeys(k.keys[:0])
	k.events = appendEvents(k.events, k.keys, true)
	k.keys = inpututil.AppendJustReleasedKeys(k.keys[:0])
	k.events = appendEvents(k.events, k.keys, false)
	return k.events
}

func appendEvents(events []Event, keys []ebiten.Key, down bool) []Event {
	for _, key := range keys {
		b, ok := ButtonForKey(key)
		if !ok {
			continue
		}
		events = append(events, Event{Button: b, Down: down})
	}
	return events
}

// Script replays a fixed sequence of per-frame events. Frames past the end
// produce nothing.
type Script struct {
	Frames [][]Event
	next   int
}

func (s *Script) Poll() []Event {
	if s == nil || s.next >= len(s.Frames) {
		return nil
	}
	out := s.Frames[s.next]
	s.next++
	return out
}
