// internal/entity/field.go
package entity

import (
	"sort"

	"go-merge-defense/internal/component"
	"go-merge-defense/internal/event"
	"go-merge-defense/internal/types"
)

// Field holds the enemies currently alive. It is the Spawner and EnemyCounter of the wave system.
type Field struct {
	enemies         map[types.EntityID]*component.Enemy
	ids             *Allocator
	health          int
	lifetime        float64
	eventDispatcher *event.Dispatcher
}

// NewField creates an empty field. Spawned enemies get health hit points and leak
// after lifetime seconds; a zero lifetime keeps them until killed.
func NewField(health int, lifetime float64, eventDispatcher *event.Dispatcher) *Field {
	return &Field{
		enemies:         make(map[types.EntityID]*component.Enemy),
		ids:             NewAllocator(),
		health:          health,
		lifetime:        lifetime,
		eventDispatcher: eventDispatcher,
	}
}

// SpawnOne adds one enemy and dispatches event.EnemySpawned.
func (f *Field) SpawnOne() {
	id := f.ids.NewEntity()
	f.enemies[id] = &component.Enemy{
		ID:       id,
		Health:   f.health,
		Lifetime: f.lifetime,
	}
	f.eventDispatcher.Dispatch(event.Event{Type: event.EnemySpawned, Data: id})
}

func (f *Field) ActiveEnemies() int {
	return len(f.enemies)
}

// Update ages every enemy and removes the ones whose lifetime ran out.
func (f *Field) Update(deltaTime float64) {
	for _, id := range f.IDs() {
		// A leak listener may already have removed it.
		enemy, ok := f.enemies[id]
		if !ok {
			continue
		}
		enemy.TimeAlive += deltaTime
		if enemy.Lifetime > 0 && enemy.TimeAlive >= enemy.Lifetime {
			delete(f.enemies, id)
			f.eventDispatcher.Dispatch(event.Event{Type: event.EnemyLeaked, Data: id})
		}
	}
}

// Damage lowers an enemy's health and kills it at zero. Returns true if it died.
func (f *Field) Damage(id types.EntityID, amount int) bool {
	enemy, ok := f.enemies[id]
	if !ok {
		return false
	}
	enemy.Health -= amount
	if enemy.Health > 0 {
		return false
	}
	return f.Kill(id)
}

// Kill removes an enemy and dispatches event.EnemyKilled.
func (f *Field) Kill(id types.EntityID) bool {
	if _, ok := f.enemies[id]; !ok {
		return false
	}
	delete(f.enemies, id)
	f.eventDispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: id})
	return true
}

// Oldest returns the enemy spawned first among the living.
func (f *Field) Oldest() (types.EntityID, bool) {
	ids := f.IDs()
	if len(ids) == 0 {
		return 0, false
	}
	return ids[0], true
}

// IDs returns the living enemy ids in spawn order.
func (f *Field) IDs() []types.EntityID {
	ids := make([]types.EntityID, 0, len(f.enemies))
	for id := range f.enemies {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Get returns a copy of an enemy.
func (f *Field) Get(id types.EntityID) (component.Enemy, bool) {
	enemy, ok := f.enemies[id]
	if !ok {
		return component.Enemy{}, false
	}
	return *enemy, true
}

// Clear removes every enemy without dispatching events.
func (f *Field) Clear() {
	f.enemies = make(map[types.EntityID]*component.Enemy)
}
