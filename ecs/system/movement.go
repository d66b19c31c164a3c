package system

import (
	"math"

	"github.com/milk9111/windowhop/audio"
	"github.com/milk9111/windowhop/common"
	"github.com/milk9111/windowhop/ecs"
	"github.com/milk9111/windowhop/ecs/component"
	"github.com/milk9111/windowhop/ecs/entity"
	"github.com/milk9111/windowhop/prefabs"
	"go.uber.org/zap"
)

// MovementSystem drives the player from its input and jump timers:
// gravity, ground and wall jumps, fall cancel, horizontal steering,
// integration and fall-out respawn. Timers tick at the end of the frame.
type MovementSystem struct {
	spec         *prefabs.PlayerSpec
	screenHeight float64
}

func NewMovementSystem(spec *prefabs.PlayerSpec, screenHeight float64) *MovementSystem {
	return &MovementSystem{spec: spec, screenHeight: screenHeight}
}

// SetSpec swaps the tuning, e.g. after a prefab reload.
func (s *MovementSystem) SetSpec(spec *prefabs.PlayerSpec) {
	s.spec = spec
}

func (s *MovementSystem) Update(w *ecs.World) error {
	if w == nil || s.spec == nil {
		return nil
	}
	store := w.Store()
	for _, e := range w.Registry().View(ecs.TagPlayer) {
		if !store.Active(e) {
			continue
		}
		t, ok := store.Transform(e)
		if !ok {
			continue
		}
		in, ok := store.Input(e)
		if !ok {
			continue
		}
		m, ok := store.Movement(e)
		if !ok {
			continue
		}
		if err := s.step(w, e, t, in, m); err != nil {
			return err
		}
	}
	return nil
}

func (s *MovementSystem) step(w *ecs.World, e ecs.Entity, t *component.Transform, in *component.Input, m *component.Movement) error {
	spec := s.spec

	if in.Space.Pressed {
		m.JumpInputTimer = spec.JumpBufferFrames
	}

	t.Acceleration.Y = spec.Gravity

	if m.JumpInputTimer > 0 {
		switch {
		case m.GroundedTimer > 0:
			t.Velocity.Y = spec.JumpVelocity
			m.GroundedTimer = 0
			m.JumpInputTimer = 0
			emitCue(w, audio.CueJump)
		case m.WallContactTimer != 0:
			t.Velocity.Y = spec.WallJumpVelocity
			t.Velocity.X = t.MaxSpeed * -float64(common.SignInt(m.WallContactTimer))
			m.WallContactTimer = 0
			m.GroundedTimer = 0
			m.JumpInputTimer = 0
			m.WallJumpPhysics = true
			emitCue(w, audio.CueJump)
		}
	}

	if in.Space.Released && t.Velocity.Y < 0 {
		t.Velocity.Y /= spec.FallCancelDivisor
	}

	inputX := float64(in.AxisX())
	if !m.WallJumpPhysics {
		scale := spec.DecelScale
		if inputX != 0 {
			scale = spec.AccelScale
		}
		t.Acceleration.X = (inputX*t.MaxSpeed - t.Velocity.X) * scale
	} else {
		t.Acceleration.X = 0
		t.Velocity.X += inputX * spec.WallJumpNudge
		if math.Abs(t.Velocity.X) > t.MaxSpeed {
			t.Velocity.X = t.MaxSpeed * common.Sign(t.Velocity.X)
		}
	}

	t.Update()

	if t.Position.Y > s.screenHeight-t.HalfSize.Y {
		if spec.DeathMarkerFrames > 0 {
			if _, err := entity.NewDeathMarker(w, t.Position, t.Size, spec.DeathMarkerFrames); err != nil {
				return err
			}
		}
		w.Logger().Info("player fell out of the level", zap.Float64("x", t.Position.X))
		Respawn(w, e)
		emitCue(w, audio.CueDeath)
	}

	m.Tick()
	return nil
}

func emitCue(w *ecs.World, c audio.Cue) {
	w.Events().Push(ecs.Event{Type: ecs.EventCue, Data: c})
}
