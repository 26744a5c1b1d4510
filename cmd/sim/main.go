// cmd/sim/main.go
//
// sim runs the round loop headless at a fixed step with a simple buying bot,
// optionally journaling every event.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"

	"go-merge-defense/internal/app"
	"go-merge-defense/internal/component"
	"go-merge-defense/internal/config"
	"go-merge-defense/internal/defs"
	"go-merge-defense/internal/event"
	"go-merge-defense/internal/journal"
	"go-merge-defense/internal/system"
)

func main() {
	configDir := flag.String("config", "configs", "directory with tuning.yaml, upgrade_links.json and market.json")
	waves := flag.Int("waves", 5, "number of waves to play")
	step := flag.Float64("step", config.FixedStep, "fixed time step in seconds")
	seed := flag.Int64("seed", 1, "market seed, 0 seeds from the clock")
	drag := flag.Bool("drag", false, "lock the board while shopping so merges are deferred")
	journalPath := flag.String("journal", "", "write a zstd event journal to this file")
	maxTime := flag.Float64("max-time", 3600, "give up after this many simulated seconds")
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("sim: ")

	definitions, err := defs.LoadDefinitions(*configDir)
	if err != nil {
		log.Fatal(err)
	}
	definitions.Tuning.Market.Seed = *seed
	game := app.NewGame(definitions)

	var w *journal.Writer
	if *journalPath != "" {
		w, err = journal.Create(*journalPath, game.GetGameTime)
		if err != nil {
			log.Fatal(err)
		}
		game.EventDispatcher.Subscribe(event.Any, w)
	}

	recorder := &event.Recorder{}
	game.EventDispatcher.Subscribe(event.Any, recorder)

	if err := run(game, *waves, *step, *maxTime, *drag); err != nil {
		log.Print(err)
	}

	if w != nil {
		if err := w.Close(); err != nil {
			log.Fatal(err)
		}
		records, err := journal.ReadAll(*journalPath)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("journal: %d records in %s\n", len(records), *journalPath)
		summary := journal.Summary(records)
		types := make([]string, 0, len(summary))
		for t := range summary {
			types = append(types, t)
		}
		sort.Strings(types)
		for _, t := range types {
			fmt.Printf("  %-14s %d\n", t, summary[t])
		}
	}
	printSummary(game, recorder)
}

func run(game *app.Game, waves int, step, maxTime float64, drag bool) error {
	defense := app.NewAutoDefense(2.0, 1)
	for game.GetGameTime() < maxTime {
		switch game.StateSystem.Current() {
		case component.WonPhase:
			return nil
		case component.MarketPhase:
			if game.GetWaveNumber() >= waves {
				return nil
			}
			shop(game, drag)
			if err := game.HandleIndicatorClick(); err != nil {
				if errors.Is(err, system.ErrGameWon) {
					return nil
				}
				return err
			}
		}
		game.Update(step)
		defense.Update(game, step)
	}
	return fmt.Errorf("gave up after %.0f simulated seconds at wave %d", maxTime, game.GetWaveNumber())
}

// shop buys the cheapest offers the player can afford.
func shop(game *app.Game, drag bool) {
	if drag {
		game.BeginDrag()
		defer game.EndDrag()
	}
	slots := game.MarketSystem.Slots()
	sort.SliceStable(slots, func(i, j int) bool { return slots[i].Price < slots[j].Price })
	for _, slot := range slots {
		if !slot.Enabled {
			continue
		}
		item, err := game.BuyProduct(slot.Index)
		if errors.Is(err, system.ErrNotEnoughGold) {
			break
		}
		if err != nil {
			continue
		}
		if free, ok := game.Board.FreeSlot(); ok {
			_ = game.PlaceItem(item.ID, free)
		}
	}
}

func printSummary(game *app.Game, recorder *event.Recorder) {
	player := game.PlayerSystem.State()
	fmt.Fprintf(os.Stdout, "waves: %d  phase: %s  time: %.1fs\n", game.GetWaveNumber(), game.StateSystem.Current(), game.GetGameTime())
	fmt.Fprintf(os.Stdout, "market seed: %d\n", game.Loot.Seed())
	fmt.Fprintf(os.Stdout, "gold: %d  level: %d  items: %d  power: %d\n", player.Gold, player.Level, game.Inventory.Len(), game.Power())
	for _, t := range []event.EventType{
		event.WaveStarted, event.WaveEnded, event.RoundEnded, event.Upgraded, event.MergeSkipped,
		event.EnemySpawned, event.EnemyKilled, event.EnemyLeaked, event.ProductBought,
	} {
		fmt.Fprintf(os.Stdout, "  %-14s %d\n", t, recorder.Count(t))
	}
}
