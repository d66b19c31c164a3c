package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/windowhop/common"
	"github.com/milk9111/windowhop/ecs"
	"github.com/milk9111/windowhop/ecs/component"
	"github.com/milk9111/windowhop/prefabs"
)

// AABB is an axis-aligned box given by centre and half size.
type AABB struct {
	Position cp.Vector
	HalfSize cp.Vector
}

// Overlap is the per-axis penetration depth of two boxes. A positive
// component means the boxes intersect along that axis.
func Overlap(aPos, aHalf, bPos, bHalf cp.Vector) cp.Vector {
	return aHalf.Add(bHalf).Sub(common.AbsVec(aPos.Sub(bPos)))
}

// Resolution is the correction computed against a set of solids. Each axis
// holds the value written by the last solid that chose that axis.
type Resolution struct {
	Adjust    cp.Vector
	AdjustedX bool
	AdjustedY bool
}

// ResolvePlatforms pushes a box at pos (prev last frame) out of solids. For
// every intersecting solid exactly one axis is corrected: y if the box
// already overlapped it on x last frame, x if it already overlapped on y,
// otherwise whichever current overlap is smaller. The correction points away
// from the solid's centre.
func ResolvePlatforms(pos, prev, half cp.Vector, solids []AABB) Resolution {
	var r Resolution
	for _, s := range solids {
		overlap := Overlap(pos, half, s.Position, s.HalfSize)
		if overlap.X <= 0 || overlap.Y <= 0 {
			continue
		}
		prevOverlap := Overlap(prev, half, s.Position, s.HalfSize)

		sign := cp.Vector{X: -1, Y: -1}
		if s.Position.X < pos.X {
			sign.X = 1
		}
		if s.Position.Y < pos.Y {
			sign.Y = 1
		}

		switch {
		case prevOverlap.X > 0:
			r.setY(overlap.Y * sign.Y)
		case prevOverlap.Y > 0:
			r.setX(overlap.X * sign.X)
		case overlap.X > overlap.Y:
			r.setY(overlap.Y * sign.Y)
		default:
			r.setX(overlap.X * sign.X)
		}
	}
	return r
}

func (r *Resolution) setX(v float64) {
	r.Adjust.X = v
	r.AdjustedX = true
}

func (r *Resolution) setY(v float64) {
	r.Adjust.Y = v
	r.AdjustedY = true
}

// CollisionSystem corrects the player against every platform and arms the
// grounded and wall-contact timers.
type CollisionSystem struct {
	spec   *prefabs.PlayerSpec
	solids []AABB
}

func NewCollisionSystem(spec *prefabs.PlayerSpec) *CollisionSystem {
	return &CollisionSystem{spec: spec}
}

func (s *CollisionSystem) SetSpec(spec *prefabs.PlayerSpec) {
	s.spec = spec
}

func (s *CollisionSystem) Update(w *ecs.World) error {
	if w == nil || s.spec == nil {
		return nil
	}

	s.solids = s.solids[:0]
	ecs.EachTransform(w, ecs.TagPlatform, func(_ ecs.Entity, t *component.Transform) {
		s.solids = append(s.solids, AABB{Position: t.Position, HalfSize: t.HalfSize})
	})

	store := w.Store()
	ecs.EachTransform(w, ecs.TagPlayer, func(e ecs.Entity, t *component.Transform) {
		m, ok := store.Movement(e)
		if !ok {
			return
		}

		wasGrounded := t.Grounded
		t.Grounded = false

		r := ResolvePlatforms(t.Position, t.PrevPosition, t.HalfSize, s.solids)
		t.Position = t.Position.Add(r.Adjust)

		if r.AdjustedY {
			if t.Velocity.Y > 0 {
				t.Grounded = true
				m.GroundedTimer = s.spec.GroundedFrames
				m.WallJumpPhysics = false
				if !wasGrounded {
					w.Events().Push(ecs.Event{Type: ecs.EventGrounded, Data: e})
				}
			}
			t.Velocity.Y = 0
		}
		if r.AdjustedX {
			t.Velocity.X = 0
			m.WallContactTimer = s.spec.WallContactFrames * -int(common.Sign(r.Adjust.X))
		}
	})
	return nil
}
