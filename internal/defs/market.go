// internal/defs/market.go
package defs

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// MarketProduct is an item the shop can offer, with its price and rarity.
type MarketProduct struct {
	Template ItemTemplate `json:"template"`
	Rarity   int          `json:"rarity"`
	Price    int          `json:"price"`
}

// MarketCatalog holds every product and the loot tables used to roll them.
type MarketCatalog struct {
	Products   []MarketProduct `json:"products"`
	LootTables []LootTable     `json:"loot_tables"`
}

// Product looks a product up by its template tag.
func (c *MarketCatalog) Product(tag string) (MarketProduct, bool) {
	for _, p := range c.Products {
		if p.Template.Tag == tag {
			return p, true
		}
	}
	return MarketProduct{}, false
}

// TableFor returns the entries of the loot table with the highest PlayerLevel not above level.
// Below every table's level the lowest table is used.
func (c *MarketCatalog) TableFor(level int) []LootEntry {
	if len(c.LootTables) == 0 {
		return nil
	}
	var best *LootTable
	for i := range c.LootTables {
		table := &c.LootTables[i]
		if table.PlayerLevel <= level && (best == nil || table.PlayerLevel > best.PlayerLevel) {
			best = table
		}
	}
	if best == nil {
		best = &c.LootTables[0]
		for i := range c.LootTables {
			if c.LootTables[i].PlayerLevel < best.PlayerLevel {
				best = &c.LootTables[i]
			}
		}
	}
	return best.Entries
}

// LoadMarketCatalog reads and checks the market catalog file.
func LoadMarketCatalog(path string) (*MarketCatalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read market catalog file: %w", err)
	}
	return ParseMarketCatalog(raw)
}

// ParseMarketCatalog decodes a catalog and checks every loot entry names a known product.
func ParseMarketCatalog(raw []byte) (*MarketCatalog, error) {
	var c MarketCatalog
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal market catalog: %w", err)
	}
	if len(c.Products) == 0 {
		return nil, fmt.Errorf("market catalog has no products")
	}
	for _, table := range c.LootTables {
		for _, entry := range table.Entries {
			if _, ok := c.Product(entry.Tag); !ok {
				return nil, fmt.Errorf("loot table for level %d: unknown product %q", table.PlayerLevel, entry.Tag)
			}
			if entry.Weight < 0 {
				return nil, fmt.Errorf("loot table for level %d: negative weight for %q", table.PlayerLevel, entry.Tag)
			}
		}
	}
	sort.SliceStable(c.LootTables, func(i, j int) bool {
		return c.LootTables[i].PlayerLevel < c.LootTables[j].PlayerLevel
	})
	return &c, nil
}
