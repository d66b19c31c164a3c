package ecs

import (
	"github.com/jakecoffman/cp"
	"go.uber.org/zap"
)

// World owns the component store, the entity registry, the frame's events and
// the system order. It is single-threaded: one frame runs to completion
// before the next starts.
type World struct {
	store     *Store
	registry  *Registry
	scheduler *Scheduler
	events    EventQueue
	log       *zap.Logger

	player Entity
	goal   Entity
	spawn  cp.Vector
	frame  uint64
}

// NewWorld creates a world whose store holds capacity entities.
func NewWorld(capacity int, log *zap.Logger) *World {
	if log == nil {
		log = zap.NewNop()
	}
	store := NewStore(capacity)
	return &World{
		store:     store,
		registry:  NewRegistry(store),
		scheduler: NewScheduler(),
		log:       log,
		player:    InvalidEntity,
		goal:      InvalidEntity,
	}
}

func (w *World) Store() *Store {
	return w.store
}

func (w *World) Registry() *Registry {
	return w.registry
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

func (w *World) Logger() *zap.Logger {
	return w.log
}

// CreateEntity allocates an entity that becomes visible next Reconcile.
func (w *World) CreateEntity(tag Tag) (Entity, error) {
	return w.registry.AddEntity(tag)
}

// DestroyEntity deactivates e immediately; views catch up next Reconcile.
func (w *World) DestroyEntity(e Entity) {
	w.registry.Destroy(e)
}

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System) {
	if s == nil {
		return
	}
	w.scheduler.Add(s)
}

// Update reconciles the registry and runs all systems once.
func (w *World) Update() error {
	if w == nil {
		return nil
	}
	w.registry.Reconcile()
	if err := w.scheduler.Update(w); err != nil {
		return err
	}
	w.events.flush()
	w.frame++
	return nil
}

// Frame is the number of completed updates.
func (w *World) Frame() uint64 {
	return w.frame
}

func (w *World) Player() Entity {
	return w.player
}

func (w *World) SetPlayer(e Entity) {
	w.player = e
}

func (w *World) Goal() Entity {
	return w.goal
}

func (w *World) SetGoal(e Entity) {
	w.goal = e
}

// SpawnPoint is where the player reappears after a respawn.
func (w *World) SpawnPoint() cp.Vector {
	return w.spawn
}

func (w *World) SetSpawnPoint(p cp.Vector) {
	w.spawn = p
}
