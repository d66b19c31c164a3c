package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/windowhop/ecs"
	"github.com/milk9111/windowhop/prefabs"
)

// NewPlayer creates the player at pos and records it as the world's player.
func NewPlayer(w *ecs.World, spec *prefabs.PlayerSpec, pos cp.Vector) (ecs.Entity, error) {
	e, err := w.CreateEntity(ecs.TagPlayer)
	if err != nil {
		return ecs.InvalidEntity, fmt.Errorf("player: %w", err)
	}

	store := w.Store()
	t := store.AddTransform(e)
	t.SetSize(spec.Size.Vector())
	t.MaxSpeed = spec.MaxSpeed
	t.Teleport(pos)

	store.AddInput(e)
	store.AddMovement(e)

	w.SetPlayer(e)
	return e, nil
}

// ApplyPlayerSpec copies size and speed from a reloaded spec onto the player.
func ApplyPlayerSpec(w *ecs.World, e ecs.Entity, spec *prefabs.PlayerSpec) bool {
	t, ok := w.Store().Transform(e)
	if !ok {
		return false
	}
	t.SetSize(spec.Size.Vector())
	t.MaxSpeed = spec.MaxSpeed
	return true
}
