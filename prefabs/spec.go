package prefabs

import (
	"errors"
	"fmt"

	"github.com/jakecoffman/cp"
	"gopkg.in/yaml.v3"
)

const (
	PlayerFile = "player.yaml"
	GoalFile   = "goal.yaml"
)

var ErrInvalidSpec = errors.New("prefabs: invalid spec")

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type VectorSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func (v VectorSpec) Vector() cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}

// PlayerSpec tunes the player's movement. Velocities are pixels per frame,
// timers are frames.
type PlayerSpec struct {
	Name              string     `yaml:"name"`
	Size              VectorSpec `yaml:"size"`
	MaxSpeed          float64    `yaml:"max_speed"`
	Gravity           float64    `yaml:"gravity"`
	JumpVelocity      float64    `yaml:"jump_velocity"`
	WallJumpVelocity  float64    `yaml:"wall_jump_velocity"`
	JumpBufferFrames  int        `yaml:"jump_buffer_frames"`
	GroundedFrames    int        `yaml:"grounded_frames"`
	WallContactFrames int        `yaml:"wall_contact_frames"`
	AccelScale        float64    `yaml:"accel_scale"`
	DecelScale        float64    `yaml:"decel_scale"`
	WallJumpNudge     float64    `yaml:"wall_jump_nudge"`
	FallCancelDivisor float64    `yaml:"fall_cancel_divisor"`
	DeathMarkerFrames int        `yaml:"death_marker_frames"`
}

func (s *PlayerSpec) Validate() error {
	switch {
	case s.Size.X <= 0 || s.Size.Y <= 0:
		return fmt.Errorf("%w: player size %gx%g", ErrInvalidSpec, s.Size.X, s.Size.Y)
	case s.MaxSpeed < 0:
		return fmt.Errorf("%w: negative max_speed", ErrInvalidSpec)
	case s.FallCancelDivisor == 0:
		return fmt.Errorf("%w: fall_cancel_divisor must be non-zero", ErrInvalidSpec)
	case s.JumpBufferFrames < 0 || s.GroundedFrames < 0 || s.WallContactFrames < 0 || s.DeathMarkerFrames < 0:
		return fmt.Errorf("%w: negative frame count", ErrInvalidSpec)
	}
	return nil
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec](PlayerFile)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", PlayerFile, err)
	}
	return &spec, nil
}

type GoalSpec struct {
	Name string     `yaml:"name"`
	Size VectorSpec `yaml:"size"`
}

func LoadGoalSpec() (*GoalSpec, error) {
	spec, err := LoadSpec[GoalSpec](GoalFile)
	if err != nil {
		return nil, err
	}
	if spec.Size.X <= 0 || spec.Size.Y <= 0 {
		return nil, fmt.Errorf("prefabs: %s: %w: goal size %gx%g", GoalFile, ErrInvalidSpec, spec.Size.X, spec.Size.Y)
	}
	return &spec, nil
}
