package component

import "github.com/jakecoffman/cp"

// Transform is the spatial state of an entity. Position is the box centre.
type Transform struct {
	Position     cp.Vector
	PrevPosition cp.Vector
	Velocity     cp.Vector
	Acceleration cp.Vector
	Size         cp.Vector
	HalfSize     cp.Vector
	MaxSpeed     float64
	Scale        float64
	Grounded     bool
}

// SetSize sets Size and keeps HalfSize in step.
func (t *Transform) SetSize(size cp.Vector) {
	t.Size = size
	t.HalfSize = size.Mult(0.5)
}

// Update integrates one frame of motion.
func (t *Transform) Update() {
	t.PrevPosition = t.Position
	t.Velocity = t.Velocity.Add(t.Acceleration)
	t.Position = t.Position.Add(t.Velocity)
}

// Teleport moves the entity without leaving a trail of previous-frame overlap.
func (t *Transform) Teleport(pos cp.Vector) {
	t.Position = pos
	t.PrevPosition = pos
	t.Velocity = cp.Vector{}
}

// Reset zeroes the record. Scale defaults to 1.
func (t *Transform) Reset() {
	*t = Transform{Scale: 1}
}
