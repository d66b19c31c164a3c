package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/windowhop/audio"
	"github.com/milk9111/windowhop/ecs"
	"github.com/milk9111/windowhop/ecs/entity"
	"github.com/milk9111/windowhop/input"
	"github.com/milk9111/windowhop/prefabs"
	"go.uber.org/zap"
)

const testScreenHeight = 1080

func testSpec() *prefabs.PlayerSpec {
	return &prefabs.PlayerSpec{
		Name:              "player",
		Size:              prefabs.VectorSpec{X: 24, Y: 50},
		MaxSpeed:          15,
		Gravity:           2.4525,
		JumpVelocity:      -30,
		WallJumpVelocity:  -40,
		JumpBufferFrames:  6,
		GroundedFrames:    6,
		WallContactFrames: 10,
		AccelScale:        0.2,
		DecelScale:        0.5,
		WallJumpNudge:     1,
		FallCancelDivisor: 3,
		DeathMarkerFrames: 45,
	}
}

func newPlayerWorld(t *testing.T, pos cp.Vector) (*ecs.World, ecs.Entity) {
	t.Helper()
	w := ecs.NewWorld(64, zap.NewNop())
	e, err := entity.NewPlayer(w, testSpec(), pos)
	if err != nil {
		t.Fatalf("new player: %v", err)
	}
	w.Registry().Reconcile()
	return w, e
}

func addPlatform(t *testing.T, w *ecs.World, pos, size cp.Vector) ecs.Entity {
	t.Helper()
	e, err := w.CreateEntity(ecs.TagPlatform)
	if err != nil {
		t.Fatalf("platform: %v", err)
	}
	tr := w.Store().AddTransform(e)
	tr.SetSize(size)
	tr.Teleport(pos)
	return e
}

func cues(w *ecs.World) []audio.Cue {
	var out []audio.Cue
	for _, ev := range w.Events().Items() {
		if c, ok := ev.Data.(audio.Cue); ok && ev.Type == ecs.EventCue {
			out = append(out, c)
		}
	}
	return out
}

func hasEvent(w *ecs.World, typ string) bool {
	for _, ev := range w.Events().Items() {
		if ev.Type == typ {
			return true
		}
	}
	return false
}

type recordingPlayer struct {
	played []audio.Cue
}

func (p *recordingPlayer) Play(c audio.Cue) {
	p.played = append(p.played, c)
}

// queueSource hands out whatever was queued since the last poll.
type queueSource struct {
	events []input.Event
}

func (q *queueSource) Poll() []input.Event {
	out := q.events
	q.events = nil
	return out
}

func near(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}
