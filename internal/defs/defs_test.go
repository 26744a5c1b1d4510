package defs

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestParseUpgradeLinks(t *testing.T) {
	table, err := ParseUpgradeLinks([]byte(`[
	  {"source_tag": "ARCHER_1", "yield": {"tag": "ARCHER_2", "name": "Archer II", "tier": 2}},
	  {"source_tag": "ARCHER_1", "yield": {"tag": "ARCHER_X", "tier": 9}},
	  {"source_tag": "MAGE_1", "yield": {"tag": "MAGE_2", "tier": 2}}
	]`))
	if err != nil {
		t.Fatalf("ParseUpgradeLinks: %v", err)
	}
	if table.Len() != 3 {
		t.Fatalf("Expected 3 links, got %d", table.Len())
	}

	yield, ok := table.GetYieldFor("ARCHER_1")
	if !ok || yield.Tag != "ARCHER_2" || yield.Tier != 2 || yield.DisplayName() != "Archer II" {
		t.Errorf("Expected the first ARCHER_1 link to win, got %+v", yield)
	}
	mage, _ := table.GetYieldFor("MAGE_1")
	if mage.DisplayName() != "MAGE_2" {
		t.Errorf("Expected the display name to fall back to the tag, got %q", mage.DisplayName())
	}
	if _, ok := table.GetYieldFor("MAGE_2"); ok {
		t.Error("MAGE_2 has no link")
	}
}

func TestParseUpgradeLinks_Rejects(t *testing.T) {
	cases := map[string]string{
		"not json":        `[{`,
		"not an array":    `{"source_tag": "A"}`,
		"missing yield":   `[{"source_tag": "A"}]`,
		"empty source":    `[{"source_tag": "", "yield": {"tag": "B", "tier": 2}}]`,
		"zero tier":       `[{"source_tag": "A", "yield": {"tag": "B", "tier": 0}}]`,
		"fractional tier": `[{"source_tag": "A", "yield": {"tag": "B", "tier": 1.5}}]`,
		"self link":       `[{"source_tag": "A", "yield": {"tag": "A", "tier": 2}}]`,
	}
	for name, raw := range cases {
		if _, err := ParseUpgradeLinks([]byte(raw)); err == nil {
			t.Errorf("%s: expected an error", name)
		}
	}
}

func TestUpgradeTable_Suggest(t *testing.T) {
	table := NewUpgradeTable([]UpgradeLink{
		{SourceTag: "ARCHER_1", Yield: ItemTemplate{Tag: "ARCHER_2", Tier: 2}},
		{SourceTag: "CANNON_1", Yield: ItemTemplate{Tag: "CANNON_2", Tier: 2}},
	})

	if s, ok := table.Suggest("ARCHR_1"); !ok || s != "ARCHER_1" {
		t.Errorf("Expected ARCHER_1, got %q", s)
	}
	if s, ok := table.Suggest("canon_1"); ok {
		t.Errorf("Expected no suggestion for a distant tag, got %q", s)
	}
	if _, ok := table.Suggest("ARCHER_1"); ok {
		t.Error("An exact match is not a suggestion")
	}

	var nilTable *UpgradeTable
	if _, ok := nilTable.GetYieldFor("A"); ok {
		t.Error("A nil table has no links")
	}
	if nilTable.Len() != 0 || nilTable.Links() != nil {
		t.Error("A nil table is empty")
	}
}

func TestParseTuning_OverlaysDefaults(t *testing.T) {
	tuning, err := ParseTuning([]byte("wave:\n  units_increment: 7\n  spawn_interval: 500ms\nmarket:\n  seed: 42\n"))
	if err != nil {
		t.Fatalf("ParseTuning: %v", err)
	}
	defaults := DefaultTuning()
	if tuning.Wave.UnitsIncrement != 7 {
		t.Errorf("Expected increment 7, got %d", tuning.Wave.UnitsIncrement)
	}
	if tuning.Wave.SpawnInterval != 500*time.Millisecond {
		t.Errorf("Expected 500ms, got %s", tuning.Wave.SpawnInterval)
	}
	if tuning.Wave.BaseUnits != defaults.Wave.BaseUnits {
		t.Errorf("Expected the default base units, got %d", tuning.Wave.BaseUnits)
	}
	if tuning.Market.Seed != 42 || tuning.Market.Slots != defaults.Market.Slots {
		t.Errorf("Unexpected market tuning %+v", tuning.Market)
	}
	if tuning.Economy != defaults.Economy {
		t.Errorf("Expected the default economy, got %+v", tuning.Economy)
	}
}

func TestParseTuning_Rejects(t *testing.T) {
	cases := map[string]string{
		"malformed":          "wave: [",
		"negative increment": "wave:\n  units_increment: -1\n",
		"zero interval":      "wave:\n  spawn_interval: 0s\n",
		"zero health":        "enemy:\n  health: 0\n",
		"no market slots":    "market:\n  slots: 0\n",
		"max level zero":     "economy:\n  max_level: 0\n",
	}
	for name, raw := range cases {
		if _, err := ParseTuning([]byte(raw)); err == nil {
			t.Errorf("%s: expected an error", name)
		} else if !strings.HasPrefix(err.Error(), "tuning.yaml:") {
			t.Errorf("%s: expected the error to name the file, got %v", name, err)
		}
	}
}

func TestDefaultTuningIsValid(t *testing.T) {
	if err := DefaultTuning().Validate(); err != nil {
		t.Fatalf("DefaultTuning: %v", err)
	}
}

const testCatalog = `{
  "products": [
    {"template": {"tag": "A", "tier": 1}, "rarity": 1, "price": 1},
    {"template": {"tag": "B", "tier": 1}, "rarity": 2, "price": 2}
  ],
  "loot_tables": [
    {"player_level": 3, "entries": [{"tag": "B", "weight": 1}]},
    {"player_level": 2, "entries": [{"tag": "A", "weight": 1}, {"tag": "B", "weight": 1}]}
  ]
}`

func TestMarketCatalog_TableFor(t *testing.T) {
	catalog, err := ParseMarketCatalog([]byte(testCatalog))
	if err != nil {
		t.Fatalf("ParseMarketCatalog: %v", err)
	}
	if catalog.LootTables[0].PlayerLevel != 2 {
		t.Fatalf("Expected tables sorted by level, got %+v", catalog.LootTables)
	}

	cases := []struct {
		level   int
		entries int
	}{
		{1, 2}, // below every table: lowest one
		{2, 2},
		{3, 1},
		{9, 1},
	}
	for _, c := range cases {
		if got := len(catalog.TableFor(c.level)); got != c.entries {
			t.Errorf("level %d: expected %d entries, got %d", c.level, c.entries, got)
		}
	}

	if p, ok := catalog.Product("B"); !ok || p.Price != 2 {
		t.Errorf("Expected product B at price 2, got %+v", p)
	}
	if (&MarketCatalog{}).TableFor(1) != nil {
		t.Error("Expected no entries without loot tables")
	}
}

func TestParseMarketCatalog_Rejects(t *testing.T) {
	cases := map[string]string{
		"no products":     `{"products": [], "loot_tables": []}`,
		"unknown product": `{"products": [{"template": {"tag": "A", "tier": 1}, "price": 1}], "loot_tables": [{"player_level": 1, "entries": [{"tag": "Z", "weight": 1}]}]}`,
		"negative weight": `{"products": [{"template": {"tag": "A", "tier": 1}, "price": 1}], "loot_tables": [{"player_level": 1, "entries": [{"tag": "A", "weight": -1}]}]}`,
	}
	for name, raw := range cases {
		if _, err := ParseMarketCatalog([]byte(raw)); err == nil {
			t.Errorf("%s: expected an error", name)
		}
	}
}

func TestLoadDefinitions_ShippedConfigs(t *testing.T) {
	d, err := LoadDefinitions(filepath.Join("..", "..", "configs"))
	if err != nil {
		t.Fatalf("LoadDefinitions: %v", err)
	}
	if d.Links.Len() == 0 || len(d.Market.Products) == 0 {
		t.Fatalf("Expected links and products, got %d and %d", d.Links.Len(), len(d.Market.Products))
	}
	if d.Tuning.Wave.SpawnInterval != time.Second {
		t.Errorf("Expected a 1s spawn interval, got %s", d.Tuning.Wave.SpawnInterval)
	}
}

func TestLoadDefinitions_MissingFiles(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadDefinitions(dir); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Expected a missing links file error, got %v", err)
	}

	writeFile(t, filepath.Join(dir, UpgradeLinksFile), `[{"source_tag": "A", "yield": {"tag": "A2", "tier": 2}}]`)
	writeFile(t, filepath.Join(dir, MarketFile), testCatalog)

	d, err := LoadDefinitions(dir)
	if err != nil {
		t.Fatalf("LoadDefinitions: %v", err)
	}
	if d.Tuning != DefaultTuning() {
		t.Errorf("Expected default tuning without %s", TuningFile)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
