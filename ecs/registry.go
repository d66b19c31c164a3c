package ecs

// view is an ordered entity list with the slot generation each entry was
// listed under.
type view struct {
	entities []Entity
	gens     []uint32
}

func (v *view) add(e Entity, gen uint32) {
	v.entities = append(v.entities, e)
	v.gens = append(v.gens, gen)
}

// retain compacts in place, keeping order, dropping entries whose slot is
// inactive or has been reallocated since.
func (v *view) retain(s *Store) {
	k := 0
	for i, e := range v.entities {
		if !s.Active(e) || s.Generation(e) != v.gens[i] {
			continue
		}
		v.entities[k] = e
		v.gens[k] = v.gens[i]
		k++
	}
	v.entities = v.entities[:k]
	v.gens = v.gens[:k]
}

type pendingEntity struct {
	entity Entity
	tag    Tag
	gen    uint32
}

// Registry is the canonical list of live entities plus one view per tag.
//
// Additions are allocated in the Store at once but only become visible at the
// next Reconcile. Destroyed entities stay in their views until that same
// pass, so a view never changes while a system is iterating it.
type Registry struct {
	store    *Store
	entities view
	views    [tagCount]view
	pending  []pendingEntity
}

func NewRegistry(store *Store) *Registry {
	return &Registry{store: store}
}

// AddEntity allocates a slot for tag and queues it for the next Reconcile.
func (r *Registry) AddEntity(tag Tag) (Entity, error) {
	e, err := r.store.Allocate(tag)
	if err != nil {
		return InvalidEntity, err
	}
	r.pending = append(r.pending, pendingEntity{entity: e, tag: tag, gen: r.store.Generation(e)})
	return e, nil
}

// Destroy deactivates e in the store. Views drop it on the next Reconcile.
func (r *Registry) Destroy(e Entity) {
	r.store.Deactivate(e)
}

// Reconcile publishes pending additions and compacts out dead entities.
func (r *Registry) Reconcile() {
	for _, p := range r.pending {
		r.entities.add(p.entity, p.gen)
		if p.tag < tagCount {
			r.views[p.tag].add(p.entity, p.gen)
		}
	}
	r.pending = r.pending[:0]

	r.entities.retain(r.store)
	for t := range r.views {
		r.views[t].retain(r.store)
	}
}

// View returns the entities tagged tag in insertion order. The slice is owned
// by the registry and valid until the next Reconcile.
func (r *Registry) View(tag Tag) []Entity {
	if tag >= tagCount {
		return nil
	}
	return r.views[tag].entities
}

func (r *Registry) Count(tag Tag) int {
	return len(r.View(tag))
}

// Entities returns the canonical list of every visible entity.
func (r *Registry) Entities() []Entity {
	return r.entities.entities
}

// Pending reports how many additions await the next Reconcile.
func (r *Registry) Pending() int {
	return len(r.pending)
}
