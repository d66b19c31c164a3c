package system

import (
	"github.com/milk9111/windowhop/ecs"
	"github.com/milk9111/windowhop/ecs/component"
)

// LifetimeSystem counts every Lifetime down one frame and destroys the
// entity once it runs out.
type LifetimeSystem struct{}

func NewLifetimeSystem() *LifetimeSystem {
	return &LifetimeSystem{}
}

func (s *LifetimeSystem) Update(w *ecs.World) error {
	if w == nil {
		return nil
	}

	ecs.EachLifetime(w, func(e ecs.Entity, l *component.Lifetime) {
		l.Remaining--
		if l.Remaining > 0 {
			return
		}
		w.DestroyEntity(e)
	})
	return nil
}
