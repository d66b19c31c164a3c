package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/windowhop/ecs"
	"github.com/milk9111/windowhop/prefabs"
)

func NewGoal(w *ecs.World, spec *prefabs.GoalSpec, pos cp.Vector) (ecs.Entity, error) {
	e, err := w.CreateEntity(ecs.TagGoal)
	if err != nil {
		return ecs.InvalidEntity, fmt.Errorf("goal: %w", err)
	}

	t := w.Store().AddTransform(e)
	t.SetSize(spec.Size.Vector())
	t.Teleport(pos)

	w.SetGoal(e)
	return e, nil
}

func ApplyGoalSpec(w *ecs.World, e ecs.Entity, spec *prefabs.GoalSpec) bool {
	t, ok := w.Store().Transform(e)
	if !ok {
		return false
	}
	t.SetSize(spec.Size.Vector())
	return true
}
