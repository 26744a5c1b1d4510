// internal/interfaces/collaborators.go
package interfaces

import (
	"go-merge-defense/internal/component"

	"github.com/google/uuid"
)

// Spawner produces one enemy per call. Placement and visuals are its business.
type Spawner interface {
	SpawnOne()
}

// EnemyCounter reports how many enemies are currently alive on the field.
type EnemyCounter interface {
	ActiveEnemies() int
}

// Inventory holds the player's items in enumeration order.
// Add must notify listeners with an event.ItemAdded.
type Inventory interface {
	Add(item component.Item)
	Remove(id uuid.UUID) bool
	ItemsByTag(tag string) []component.Item
}

// LockProvider tells whether inventory changes must be deferred.
type LockProvider interface {
	IsLocked() bool
}

// BoardPresence removes an item's placement from the board.
type BoardPresence interface {
	Clear(id uuid.UUID)
}

// Wallet is the player's gold balance as seen by the market.
type Wallet interface {
	CheckGold(amount int) bool
	RemoveGold(amount int)
	GetPlayerLevel() int
}
