// internal/event/types.go
package event

import "go-merge-defense/internal/component"

const (
	WaveStarted EventType = "WaveStarted" // spawning began, Data: WavePayload
	WaveEnded   EventType = "WaveEnded"   // spawn quota reached, Data: WavePayload
	RoundEnded  EventType = "RoundEnded"  // quota reached and field empty, Data: WavePayload

	Upgraded     EventType = "Upgraded"     // Data: UpgradePayload
	MergeSkipped EventType = "MergeSkipped" // no yield configured, Data: MergeSkippedPayload

	ItemAdded   EventType = "ItemAdded"   // Data: component.Item
	ItemRemoved EventType = "ItemRemoved" // Data: component.Item

	EnemySpawned EventType = "EnemySpawned" // Data: types.EntityID
	EnemyKilled  EventType = "EnemyKilled"  // Data: types.EntityID
	EnemyLeaked  EventType = "EnemyLeaked"  // lifetime ran out, Data: types.EntityID

	GoldChanged EventType = "GoldChanged" // Data: int (new balance)
	LevelUp     EventType = "LevelUp"     // Data: int (new level)

	MarketRenewed EventType = "MarketRenewed"
	ProductBought EventType = "ProductBought" // Data: component.MarketSlot

	BoardLocked   EventType = "BoardLocked"
	BoardUnlocked EventType = "BoardUnlocked"

	PhaseChanged EventType = "PhaseChanged" // Data: component.GamePhase
	GameWon      EventType = "GameWon"      // Data: WavePayload
)

// WavePayload accompanies the wave lifecycle events.
type WavePayload struct {
	WaveNumber int
}

// UpgradePayload describes one completed merge.
type UpgradePayload struct {
	Tag      string
	Yield    component.Item
	Consumed []component.Item
}

// MergeSkippedPayload reports a merge that could not happen because the tag has no yield.
type MergeSkippedPayload struct {
	Tag        string
	GroupSize  int
	Suggestion string // closest configured tag, empty if none is close
}
