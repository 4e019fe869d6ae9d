/*
Package sim
File: world.go
Description:
    The entity/component registry. Stores components per entity and keeps a
    reverse index per component kind so multi-kind queries do not scan every
    entity. All operations on unknown entities are silent no-ops: a stale id
    held by a system mid-frame must never crash the loop.
*/

package sim

import "sort"

// EntityID identifies a bundle of components. Ids start at 1, strictly
// increase, and are never recycled.
type EntityID uint64

// World owns every component record. It is not safe for concurrent use; the
// game loop is the only writer and runs systems strictly sequentially.
type World struct {
	nextID   EntityID
	entities map[EntityID]map[Kind]Component
	index    map[Kind]map[EntityID]struct{}
}

func NewWorld() *World {
	return &World{
		entities: make(map[EntityID]map[Kind]Component),
		index:    make(map[Kind]map[EntityID]struct{}),
	}
}

// CreateEntity registers a new live entity with an empty component map.
func (w *World) CreateEntity() EntityID {
	w.nextID++
	id := w.nextID
	w.entities[id] = make(map[Kind]Component)
	return id
}

// AddComponent attaches c to the entity. Unknown entities are ignored.
// Re-adding a kind replaces the previous component; the index entry for the
// old component is dropped before the new one is recorded so the reverse
// index never holds a stale reference.
func (w *World) AddComponent(id EntityID, c Component) {
	comps, ok := w.entities[id]
	if !ok {
		return
	}
	kind := c.Kind()
	if _, replaced := comps[kind]; replaced {
		delete(w.index[kind], id)
	}
	comps[kind] = c
	bucket := w.index[kind]
	if bucket == nil {
		bucket = make(map[EntityID]struct{})
		w.index[kind] = bucket
	}
	bucket[id] = struct{}{}
}

// RemoveComponent detaches the given kind. No-op if the entity or the
// component is absent.
func (w *World) RemoveComponent(id EntityID, kind Kind) {
	comps, ok := w.entities[id]
	if !ok {
		return
	}
	if _, has := comps[kind]; !has {
		return
	}
	delete(comps, kind)
	delete(w.index[kind], id)
}

// Component returns the entity's component of the given kind, or nil.
func (w *World) Component(id EntityID, kind Kind) Component {
	comps, ok := w.entities[id]
	if !ok {
		return nil
	}
	return comps[kind]
}

// HasComponent reports whether the entity holds a component of the kind.
func (w *World) HasComponent(id EntityID, kind Kind) bool {
	comps, ok := w.entities[id]
	if !ok {
		return false
	}
	_, has := comps[kind]
	return has
}

// EntitiesWith returns every live entity holding ALL listed kinds, in
// ascending id order (creation order) so collision resolution is
// reproducible run to run. The candidate set is seeded from the first kind's
// index; remaining kinds are checked by direct lookup. An empty kind list
// returns all live entities.
func (w *World) EntitiesWith(kinds ...Kind) []EntityID {
	var ids []EntityID
	if len(kinds) == 0 {
		ids = make([]EntityID, 0, len(w.entities))
		for id := range w.entities {
			ids = append(ids, id)
		}
	} else {
		seed := w.index[kinds[0]]
		ids = make([]EntityID, 0, len(seed))
		for id := range seed {
			match := true
			for _, kind := range kinds[1:] {
				if _, has := w.entities[id][kind]; !has {
					match = false
					break
				}
			}
			if match {
				ids = append(ids, id)
			}
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// ForEachEntity invokes fn for every entity matching the kind list.
func (w *World) ForEachEntity(kinds []Kind, fn func(EntityID)) {
	for _, id := range w.EntitiesWith(kinds...) {
		fn(id)
	}
}

// RemoveEntity scrubs the entity from every index it participates in and
// drops its component map. Idempotent.
func (w *World) RemoveEntity(id EntityID) {
	comps, ok := w.entities[id]
	if !ok {
		return
	}
	for kind := range comps {
		delete(w.index[kind], id)
	}
	delete(w.entities, id)
}

// Typed accessors. They save the systems a type assertion per lookup and
// return ok=false when the entity or component is absent.

func (w *World) PositionOf(id EntityID) (*Position, bool) {
	p, ok := w.Component(id, KindPosition).(*Position)
	return p, ok
}

func (w *World) VelocityOf(id EntityID) (*Velocity, bool) {
	v, ok := w.Component(id, KindVelocity).(*Velocity)
	return v, ok
}

func (w *World) FuelOf(id EntityID) (*Fuel, bool) {
	f, ok := w.Component(id, KindFuel).(*Fuel)
	return f, ok
}

func (w *World) SpriteOf(id EntityID) (*Sprite, bool) {
	s, ok := w.Component(id, KindSprite).(*Sprite)
	return s, ok
}

func (w *World) CapsuleOf(id EntityID) (*DataCapsule, bool) {
	c, ok := w.Component(id, KindDataCapsule).(*DataCapsule)
	return c, ok
}
