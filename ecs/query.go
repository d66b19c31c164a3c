package ecs

import "github.com/milk9111/windowhop/ecs/component"

// EachTransform calls fn for every entity in tag's view that is still active
// and carries a transform. Entities without one are skipped.
func EachTransform(w *World, tag Tag, fn func(Entity, *component.Transform)) {
	if w == nil {
		return
	}
	for _, e := range w.registry.View(tag) {
		if !w.store.Active(e) {
			continue
		}
		t, ok := w.store.Transform(e)
		if !ok {
			continue
		}
		fn(e, t)
	}
}

// EachLifetime calls fn for every visible active entity holding a lifetime.
func EachLifetime(w *World, fn func(Entity, *component.Lifetime)) {
	if w == nil {
		return
	}
	for _, e := range w.registry.Entities() {
		if !w.store.Active(e) {
			continue
		}
		l, ok := w.store.Lifetime(e)
		if !ok {
			continue
		}
		fn(e, l)
	}
}
