package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/windowhop/ecs"
	"github.com/milk9111/windowhop/levels"
)

func NewPlatform(w *ecs.World, r levels.Rect) (ecs.Entity, error) {
	e, err := w.CreateEntity(ecs.TagPlatform)
	if err != nil {
		return ecs.InvalidEntity, fmt.Errorf("platform: %w", err)
	}

	t := w.Store().AddTransform(e)
	t.SetSize(r.Size())
	t.Teleport(r.Position())
	return e, nil
}

// LoadLevelToWorld creates one platform per level rectangle. Existing
// platforms are left alone.
func LoadLevelToWorld(w *ecs.World, lvl *levels.Level) error {
	for i, r := range lvl.Platforms {
		if _, err := NewPlatform(w, r); err != nil {
			return fmt.Errorf("level %q platform %d: %w", lvl.Name, i, err)
		}
	}
	return nil
}

// NewDeathMarker leaves a fading box where the player fell out of the level.
func NewDeathMarker(w *ecs.World, pos, size cp.Vector, frames int) (ecs.Entity, error) {
	e, err := w.CreateEntity(ecs.TagNone)
	if err != nil {
		return ecs.InvalidEntity, fmt.Errorf("death marker: %w", err)
	}

	store := w.Store()
	t := store.AddTransform(e)
	t.SetSize(size)
	t.Teleport(pos)
	store.AddLifetime(e).Start(float64(frames))
	return e, nil
}
