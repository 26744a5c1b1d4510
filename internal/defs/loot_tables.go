// internal/defs/loot_tables.go
package defs

// LootEntry is one row of a loot table: a product tag and its relative weight.
type LootEntry struct {
	Tag    string `json:"tag"`
	Weight int    `json:"weight"`
}

// LootTable lists the products the market may roll for players of at least PlayerLevel.
type LootTable struct {
	PlayerLevel int         `json:"player_level"`
	Entries     []LootEntry `json:"entries"`
}
