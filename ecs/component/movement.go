package component

// Movement holds the player's jump timers. All counters are in frames and
// tick toward zero once per frame.
type Movement struct {
	// JumpInputTimer is armed by a jump press and consumed by an executed jump.
	JumpInputTimer int
	// GroundedTimer is armed by landing on a solid.
	GroundedTimer int
	// WallContactTimer is signed: its sign is the side the wall is on.
	WallContactTimer int
	// WallJumpPhysics replaces normal horizontal acceleration until landing.
	WallJumpPhysics bool
}

// Tick advances every timer one frame toward zero.
func (m *Movement) Tick() {
	if m.JumpInputTimer > 0 {
		m.JumpInputTimer--
	}
	if m.GroundedTimer > 0 {
		m.GroundedTimer--
	}
	switch {
	case m.WallContactTimer > 0:
		m.WallContactTimer--
	case m.WallContactTimer < 0:
		m.WallContactTimer++
	}
}

func (m *Movement) Reset() {
	*m = Movement{}
}
