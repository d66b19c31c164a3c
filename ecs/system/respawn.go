package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/windowhop/ecs"
	"go.uber.org/zap"
)

// Respawn puts e back on the world spawn point at rest and clears its jump
// timers and wall-jump physics. It reports false if e has no transform.
func Respawn(w *ecs.World, e ecs.Entity) bool {
	if w == nil || !e.Valid() || !w.Store().Active(e) {
		return false
	}
	store := w.Store()
	t, ok := store.Transform(e)
	if !ok {
		return false
	}

	t.Teleport(w.SpawnPoint())
	t.Acceleration = cp.Vector{}
	t.Grounded = false

	if m, ok := store.Movement(e); ok {
		m.Reset()
	}

	w.Events().Push(ecs.Event{Type: ecs.EventRespawn, Data: e})
	w.Logger().Debug("respawn",
		zap.Stringer("entity", e),
		zap.Float64("x", t.Position.X),
		zap.Float64("y", t.Position.Y),
	)
	return true
}
