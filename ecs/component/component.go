// Package component holds the per-entity records stored by ecs.Store.
//
// Records live in fixed arrays and are reused in place when a slot gets a new
// occupant, so every Reset must return all fields to their defaults.
package component

// Resetter is implemented by every component record.
type Resetter interface {
	Reset()
}
