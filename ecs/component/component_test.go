package component

import (
	"testing"

	"github.com/jakecoffman/cp"
)

func TestResetRestoresDefaults(t *testing.T) {
	tr := Transform{
		Position:     cp.Vector{X: 1, Y: 2},
		PrevPosition: cp.Vector{X: 3, Y: 4},
		Velocity:     cp.Vector{X: 5, Y: 6},
		Acceleration: cp.Vector{X: 7, Y: 8},
		MaxSpeed:     15,
		Scale:        3,
		Grounded:     true,
	}
	tr.SetSize(cp.Vector{X: 10, Y: 20})
	tr.Reset()
	if tr != (Transform{Scale: 1}) {
		t.Fatalf("transform not reset: %+v", tr)
	}

	in := Input{}
	in.Space.Press()
	in.Left.Press()
	in.Reset()
	if in != (Input{}) {
		t.Fatalf("input not reset: %+v", in)
	}

	lt := Lifetime{}
	lt.Start(30)
	lt.Reset()
	if lt != (Lifetime{}) {
		t.Fatalf("lifetime not reset: %+v", lt)
	}

	mv := Movement{JumpInputTimer: 3, GroundedTimer: 2, WallContactTimer: -4, WallJumpPhysics: true}
	mv.Reset()
	if mv != (Movement{}) {
		t.Fatalf("movement not reset: %+v", mv)
	}
}

func TestTransformSetSizeAndUpdate(t *testing.T) {
	var tr Transform
	tr.Reset()
	tr.SetSize(cp.Vector{X: 25, Y: 50})
	if tr.HalfSize != (cp.Vector{X: 12.5, Y: 25}) {
		t.Fatalf("unexpected half size %v", tr.HalfSize)
	}

	tr.Position = cp.Vector{X: 10, Y: 10}
	tr.Velocity = cp.Vector{X: 1, Y: 0}
	tr.Acceleration = cp.Vector{X: 0, Y: 2}
	tr.Update()
	if tr.PrevPosition != (cp.Vector{X: 10, Y: 10}) {
		t.Fatalf("prev position should hold pre-step position, got %v", tr.PrevPosition)
	}
	if tr.Velocity != (cp.Vector{X: 1, Y: 2}) {
		t.Fatalf("unexpected velocity %v", tr.Velocity)
	}
	if tr.Position != (cp.Vector{X: 11, Y: 12}) {
		t.Fatalf("unexpected position %v", tr.Position)
	}
}

func TestButtonEdges(t *testing.T) {
	var b Button
	b.Press()
	if !b.Pressed || !b.Held || b.Released {
		t.Fatalf("unexpected state after press: %+v", b)
	}
	b.ClearEdges()
	b.Press()
	if b.Pressed {
		t.Fatalf("repeat press while held must not pulse Pressed")
	}
	b.Release()
	if b.Held || !b.Released {
		t.Fatalf("unexpected state after release: %+v", b)
	}
	b.ClearEdges()
	if b != (Button{}) {
		t.Fatalf("expected idle button, got %+v", b)
	}
}

func TestInputAxisX(t *testing.T) {
	cases := []struct {
		name        string
		left, right bool
		want        int
	}{
		{"none", false, false, 0},
		{"left", true, false, -1},
		{"right", false, true, 1},
		{"both", true, true, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			in := Input{}
			in.Left.Held = c.left
			in.Right.Held = c.right
			if got := in.AxisX(); got != c.want {
				t.Fatalf("AxisX = %d, want %d", got, c.want)
			}
		})
	}
}

func TestMovementTick(t *testing.T) {
	m := Movement{JumpInputTimer: 1, GroundedTimer: 0, WallContactTimer: -2}
	m.Tick()
	if m.JumpInputTimer != 0 || m.GroundedTimer != 0 || m.WallContactTimer != -1 {
		t.Fatalf("unexpected timers after tick: %+v", m)
	}
	m.WallContactTimer = 3
	m.Tick()
	m.Tick()
	m.Tick()
	m.Tick()
	if m.WallContactTimer != 0 {
		t.Fatalf("wall timer should clamp at zero, got %d", m.WallContactTimer)
	}
}

func TestLifetimePercent(t *testing.T) {
	var l Lifetime
	l.Start(10)
	l.Remaining = 4
	if got := l.PercentRemaining(); got != 0.4 {
		t.Fatalf("PercentRemaining = %v", got)
	}
	if got := l.PercentElapsed(); got != 0.6 {
		t.Fatalf("PercentElapsed = %v", got)
	}
}
