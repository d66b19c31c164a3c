package ecs

import (
	"errors"
	"fmt"

	"github.com/milk9111/windowhop/ecs/component"
)

var (
	ErrCapacityExhausted = errors.New("ecs: entity capacity exhausted")
	ErrEntityNotActive   = errors.New("ecs: entity not active")
)

// column is one component kind laid out over every slot. added tracks which
// slots received the kind since their last allocation.
type column[T any, P interface {
	*T
	component.Resetter
}] struct {
	data  []T
	added []bool
}

func newColumn[T any, P interface {
	*T
	component.Resetter
}](capacity int) column[T, P] {
	c := column[T, P]{
		data:  make([]T, capacity),
		added: make([]bool, capacity),
	}
	for i := range c.data {
		P(&c.data[i]).Reset()
	}
	return c
}

func (c *column[T, P]) get(e Entity) (*T, bool) {
	if !c.added[e] {
		return nil, false
	}
	return &c.data[e], true
}

// add resets the record in place; leftovers from a previous occupant are
// wiped here and nowhere else.
func (c *column[T, P]) add(e Entity) *T {
	v := &c.data[e]
	P(v).Reset()
	c.added[e] = true
	return v
}

func (c *column[T, P]) forget(e Entity) {
	c.added[e] = false
}

// Store is a fixed-capacity structure-of-arrays holding every component kind
// plus per-slot activity and tags. It never grows after construction.
type Store struct {
	capacity int
	active   []bool
	tags     []Tag
	gens     []uint32

	transforms column[component.Transform, *component.Transform]
	inputs     column[component.Input, *component.Input]
	lifetimes  column[component.Lifetime, *component.Lifetime]
	movements  column[component.Movement, *component.Movement]
}

// NewStore allocates every array once at the given capacity.
func NewStore(capacity int) *Store {
	if capacity < 0 {
		capacity = 0
	}
	return &Store{
		capacity:   capacity,
		active:     make([]bool, capacity),
		tags:       make([]Tag, capacity),
		gens:       make([]uint32, capacity),
		transforms: newColumn[component.Transform](capacity),
		inputs:     newColumn[component.Input](capacity),
		lifetimes:  newColumn[component.Lifetime](capacity),
		movements:  newColumn[component.Movement](capacity),
	}
}

// Allocate claims the lowest-index inactive slot for tag. Component data is
// left untouched; only the per-kind added flags are cleared.
func (s *Store) Allocate(tag Tag) (Entity, error) {
	for i, on := range s.active {
		if on {
			continue
		}
		e := Entity(i)
		s.active[i] = true
		s.tags[i] = tag
		s.gens[i]++
		s.transforms.forget(e)
		s.inputs.forget(e)
		s.lifetimes.forget(e)
		s.movements.forget(e)
		return e, nil
	}
	return InvalidEntity, fmt.Errorf("%w: capacity %d", ErrCapacityExhausted, s.capacity)
}

// Deactivate releases the slot. Component data stays until the next add.
func (s *Store) Deactivate(e Entity) {
	s.active[e] = false
}

func (s *Store) Active(e Entity) bool {
	return s.active[e]
}

func (s *Store) Tag(e Entity) Tag {
	return s.tags[e]
}

// Generation counts how many times the slot has been allocated. The registry
// uses it to tell a reused slot apart from the occupant it listed earlier.
func (s *Store) Generation(e Entity) uint32 {
	return s.gens[e]
}

func (s *Store) Capacity() int {
	return s.capacity
}

// ActiveCount scans the whole store.
func (s *Store) ActiveCount() int {
	n := 0
	for _, on := range s.active {
		if on {
			n++
		}
	}
	return n
}

// Transform returns the transform of e if one was added.
func (s *Store) Transform(e Entity) (*component.Transform, bool) {
	return s.transforms.get(e)
}

// AddTransform resets e's transform to defaults and returns it.
func (s *Store) AddTransform(e Entity) *component.Transform {
	return s.transforms.add(e)
}

func (s *Store) Input(e Entity) (*component.Input, bool) {
	return s.inputs.get(e)
}

func (s *Store) AddInput(e Entity) *component.Input {
	return s.inputs.add(e)
}

func (s *Store) Lifetime(e Entity) (*component.Lifetime, bool) {
	return s.lifetimes.get(e)
}

func (s *Store) AddLifetime(e Entity) *component.Lifetime {
	return s.lifetimes.add(e)
}

func (s *Store) Movement(e Entity) (*component.Movement, bool) {
	return s.movements.get(e)
}

func (s *Store) AddMovement(e Entity) *component.Movement {
	return s.movements.add(e)
}
