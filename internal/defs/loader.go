// internal/defs/loader.go
package defs

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

const (
	TuningFile       = "tuning.yaml"
	UpgradeLinksFile = "upgrade_links.json"
	MarketFile       = "market.json"
)

// Definitions bundles everything loaded from a config directory.
type Definitions struct {
	Tuning Tuning
	Links  *UpgradeTable
	Market *MarketCatalog
}

// LoadDefinitions reads the three config files from dir.
// A missing tuning.yaml falls back to DefaultTuning; the other two files are required.
func LoadDefinitions(dir string) (*Definitions, error) {
	tuning, err := LoadTuning(filepath.Join(dir, TuningFile))
	if errors.Is(err, os.ErrNotExist) {
		log.Printf("No %s in %s, using defaults", TuningFile, dir)
		tuning, err = DefaultTuning(), nil
	}
	if err != nil {
		return nil, err
	}

	links, err := LoadUpgradeLinks(filepath.Join(dir, UpgradeLinksFile))
	if err != nil {
		return nil, err
	}

	market, err := LoadMarketCatalog(filepath.Join(dir, MarketFile))
	if err != nil {
		return nil, err
	}

	// Products with no upgrade link still sell; they just never merge.
	for _, p := range market.Products {
		if _, ok := links.GetYieldFor(p.Template.Tag); !ok {
			log.Printf("Warning: product %q has no upgrade link", p.Template.Tag)
		}
	}

	log.Printf("Loaded %d upgrade links and %d market products", links.Len(), len(market.Products))
	if tuning.Market.Slots > 0 && len(market.LootTables) == 0 {
		return nil, fmt.Errorf("%s: no loot tables", MarketFile)
	}
	return &Definitions{Tuning: tuning, Links: links, Market: market}, nil
}
