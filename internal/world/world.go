// Package world is an in-memory host: it owns players, mobs and thrown
// weapons and builds the combat events a real server would deliver.
package world

import (
	"sync"

	"github.com/google/uuid"

	"github.com/ArmaRealms/ToolStats/internal/domain"
)

// World tracks spawned entities by identifier
type World struct {
	mu       sync.RWMutex
	entities map[uuid.UUID]domain.Entity
}

// New creates an empty world
func New() *World {
	return &World{entities: make(map[uuid.UUID]domain.Entity)}
}

// SpawnPlayer adds a player with full health and an empty inventory
func (w *World) SpawnPlayer(name string, mode domain.GameMode) *Player {
	p := &Player{
		base:     base{id: uuid.New(), valid: true},
		name:     name,
		mode:     mode,
		health:   DefaultPlayerHealth,
		contents: NewInventory(),
	}
	w.add(p)
	return p
}

// SpawnMob adds a mob of the given kind and health
func (w *World) SpawnMob(kind string, health float64) *Mob {
	m := &Mob{base: base{id: uuid.New(), valid: true}, kind: kind, health: health}
	w.add(m)
	return m
}

// SpawnObject adds a non-living entity
func (w *World) SpawnObject(kind string) *Object {
	o := &Object{base: base{id: uuid.New(), valid: true}, kind: kind}
	w.add(o)
	return o
}

// SpawnThrownWeapon launches a copy of item. thrower may be nil.
func (w *World) SpawnThrownWeapon(item domain.Item, thrower *Player) *ThrownWeapon {
	t := &ThrownWeapon{base: base{id: uuid.New(), valid: true}, item: item.Clone(), thrower: thrower}
	w.add(t)
	return t
}

// Entity looks up a live entity
func (w *World) Entity(id uuid.UUID) (domain.Entity, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	e, ok := w.entities[id]
	return e, ok
}

// Remove despawns an entity. References held elsewhere report Valid() == false.
func (w *World) Remove(id uuid.UUID) bool {
	w.mu.Lock()
	e, ok := w.entities[id]
	delete(w.entities, id)
	w.mu.Unlock()

	if !ok {
		return false
	}
	if inv, ok := e.(interface{ invalidate() }); ok {
		inv.invalidate()
	}
	return true
}

// Len returns the number of live entities
func (w *World) Len() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.entities)
}

func (w *World) add(e domain.Entity) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.entities[e.ID()] = e
}
