package system

import (
	"errors"
	"testing"

	"go-merge-defense/internal/component"
	"go-merge-defense/internal/defs"
	"go-merge-defense/internal/entity"
	"go-merge-defense/internal/event"
	"go-merge-defense/internal/utils"
)

func testEconomy() defs.EconomyTuning {
	return defs.EconomyTuning{
		StartingGold:    10,
		KillReward:      1,
		RoundReward:     5,
		RerollCost:      1,
		LevelUpBaseCost: 2,
		MaxLevel:        3,
	}
}

func TestPlayerSystem_Rewards(t *testing.T) {
	dispatcher := event.NewDispatcher()
	ps := NewPlayerSystem(testEconomy(), dispatcher)

	dispatcher.Dispatch(event.Event{Type: event.EnemyKilled})
	dispatcher.Dispatch(event.Event{Type: event.EnemyKilled})
	dispatcher.Dispatch(event.Event{Type: event.RoundEnded, Data: event.WavePayload{WaveNumber: 1}})

	if got := ps.GetPlayerGold(); got != 17 {
		t.Errorf("Expected 17 gold, got %d", got)
	}
	if ps.GetPlayerLevel() != 1 {
		t.Errorf("Expected level 1, got %d", ps.GetPlayerLevel())
	}
}

func TestPlayerSystem_GainLevel(t *testing.T) {
	dispatcher := event.NewDispatcher()
	recorder := &event.Recorder{}
	dispatcher.Subscribe(event.LevelUp, recorder)
	ps := NewPlayerSystem(testEconomy(), dispatcher)

	if err := ps.GainLevel(4); err != nil {
		t.Fatalf("GainLevel: %v", err)
	}
	if ps.GetPlayerLevel() != 2 || ps.GetPlayerGold() != 6 {
		t.Fatalf("Expected level 2 with 6 gold, got %+v", ps.State())
	}
	if err := ps.GainLevel(100); !errors.Is(err, ErrNotEnoughGold) {
		t.Fatalf("Expected ErrNotEnoughGold, got %v", err)
	}
	if ps.GetPlayerGold() != 6 {
		t.Errorf("Gold changed on a failed purchase: %d", ps.GetPlayerGold())
	}
	if err := ps.GainLevel(1); err != nil {
		t.Fatalf("GainLevel: %v", err)
	}
	if err := ps.GainLevel(1); !errors.Is(err, ErrMaxLevel) {
		t.Fatalf("Expected ErrMaxLevel, got %v", err)
	}
	if recorder.Count(event.LevelUp) != 2 {
		t.Errorf("Expected 2 LevelUp events, got %d", recorder.Count(event.LevelUp))
	}
}

type marketFixture struct {
	dispatcher *event.Dispatcher
	recorder   *event.Recorder
	player     *PlayerSystem
	inventory  *entity.Inventory
	market     *MarketSystem
}

func newMarketFixture(t *testing.T) *marketFixture {
	t.Helper()
	catalog, err := defs.ParseMarketCatalog([]byte(`{
	  "products": [
	    {"template": {"tag": "ARCHER_1", "name": "Archer", "tier": 1}, "rarity": 1, "price": 3},
	    {"template": {"tag": "MAGE_1", "name": "Mage", "tier": 1}, "rarity": 3, "price": 4}
	  ],
	  "loot_tables": [
	    {"player_level": 2, "entries": [{"tag": "MAGE_1", "weight": 1}]},
	    {"player_level": 1, "entries": [{"tag": "ARCHER_1", "weight": 1}]}
	  ]
	}`))
	if err != nil {
		t.Fatalf("ParseMarketCatalog: %v", err)
	}

	tuning := defs.DefaultTuning()
	tuning.Economy = testEconomy()
	tuning.Market.Slots = 3

	dispatcher := event.NewDispatcher()
	f := &marketFixture{dispatcher: dispatcher, recorder: &event.Recorder{}}
	dispatcher.Subscribe(event.Any, f.recorder)
	f.player = NewPlayerSystem(tuning.Economy, dispatcher)
	f.inventory = entity.NewInventory(dispatcher)
	f.market = NewMarketSystem(catalog, tuning, utils.NewLootRoller(7), f.player, f.player, f.inventory, dispatcher)
	f.market.Renew()
	return f
}

func TestMarketSystem_RenewUsesPlayerLevel(t *testing.T) {
	f := newMarketFixture(t)
	for _, slot := range f.market.Slots() {
		if !slot.Enabled || slot.Tag != "ARCHER_1" || slot.Price != 3 {
			t.Fatalf("Unexpected level 1 offer %+v", slot)
		}
	}

	f.player.AddOneLevel()
	f.market.Renew()
	for _, slot := range f.market.Slots() {
		if slot.Tag != "MAGE_1" {
			t.Fatalf("Expected level 2 offers to be MAGE_1, got %+v", slot)
		}
	}
	if f.recorder.Count(event.MarketRenewed) != 2 {
		t.Errorf("Expected 2 MarketRenewed events, got %d", f.recorder.Count(event.MarketRenewed))
	}
}

func TestMarketSystem_Buy(t *testing.T) {
	f := newMarketFixture(t)

	item, err := f.market.Buy(0)
	if err != nil {
		t.Fatalf("Buy: %v", err)
	}
	if item.Tag != "ARCHER_1" || item.Name != "Archer" || item.Tier != 1 {
		t.Errorf("Unexpected item %+v", item)
	}
	if !f.inventory.Contains(item.ID) {
		t.Error("Bought item not in inventory")
	}
	if f.player.GetPlayerGold() != 7 {
		t.Errorf("Expected 7 gold, got %d", f.player.GetPlayerGold())
	}
	if f.market.Slots()[0].Enabled {
		t.Error("Expected the slot to be disabled after buying")
	}
	if _, err := f.market.Buy(0); !errors.Is(err, ErrSlotUnavailable) {
		t.Errorf("Expected ErrSlotUnavailable, got %v", err)
	}
	if _, err := f.market.Buy(99); !errors.Is(err, ErrSlotUnavailable) {
		t.Errorf("Expected ErrSlotUnavailable for an out of range slot, got %v", err)
	}

	f.player.RemoveGold(5)
	if _, err := f.market.Buy(2); !errors.Is(err, ErrNotEnoughGold) {
		t.Fatalf("Expected ErrNotEnoughGold with 2 gold, got %v", err)
	}
	if !f.market.Slots()[2].Enabled {
		t.Error("A failed purchase must leave the slot enabled")
	}
	if f.recorder.Count(event.ProductBought) != 1 {
		t.Errorf("Expected 1 ProductBought event, got %d", f.recorder.Count(event.ProductBought))
	}
}

func TestMarketSystem_Reroll(t *testing.T) {
	f := newMarketFixture(t)
	_, _ = f.market.Buy(0)

	if err := f.market.Reroll(); err != nil {
		t.Fatalf("Reroll: %v", err)
	}
	if f.player.GetPlayerGold() != 6 {
		t.Errorf("Expected 6 gold after reroll, got %d", f.player.GetPlayerGold())
	}
	if !f.market.Slots()[0].Enabled {
		t.Error("Expected the reroll to refill every slot")
	}

	f.player.RemoveGold(f.player.GetPlayerGold())
	if err := f.market.Reroll(); !errors.Is(err, ErrNotEnoughGold) {
		t.Errorf("Expected ErrNotEnoughGold, got %v", err)
	}
}

func TestMarketSystem_BuyLevelCostGrows(t *testing.T) {
	f := newMarketFixture(t)

	if err := f.market.BuyLevel(); err != nil {
		t.Fatalf("BuyLevel: %v", err)
	}
	if f.market.LevelUpCost() != 3 || f.player.GetPlayerGold() != 8 {
		t.Fatalf("Expected next cost 3 and 8 gold, got %d and %d", f.market.LevelUpCost(), f.player.GetPlayerGold())
	}
	if err := f.market.BuyLevel(); err != nil {
		t.Fatalf("BuyLevel: %v", err)
	}
	if err := f.market.BuyLevel(); !errors.Is(err, ErrMaxLevel) {
		t.Fatalf("Expected ErrMaxLevel, got %v", err)
	}
	if f.market.LevelUpCost() != 4 {
		t.Errorf("A rejected purchase must not raise the cost, got %d", f.market.LevelUpCost())
	}
}

type stubContext struct {
	wave     int
	started  int
	renewed  int
	cleared  int
	startErr error
}

func (c *stubContext) StartWave() error {
	if c.startErr != nil {
		return c.startErr
	}
	c.started++
	c.wave++
	return nil
}
func (c *stubContext) RenewMarket()       { c.renewed++ }
func (c *stubContext) ClearEnemies()      { c.cleared++ }
func (c *stubContext) GetWaveNumber() int { return c.wave }

func TestStateSystem_RoundLoop(t *testing.T) {
	dispatcher := event.NewDispatcher()
	recorder := &event.Recorder{}
	dispatcher.Subscribe(event.PhaseChanged, recorder)
	ctx := &stubContext{}
	ss := NewStateSystem(ctx, 0, dispatcher)

	if ss.Current() != component.MarketPhase {
		t.Fatalf("Expected to start in the market, got %s", ss.Current())
	}
	if err := ss.SwitchToWavePhase(); err != nil {
		t.Fatalf("SwitchToWavePhase: %v", err)
	}
	if ss.Current() != component.WavePhase || ctx.started != 1 {
		t.Fatalf("Expected a started wave, got phase %s and %d starts", ss.Current(), ctx.started)
	}
	if err := ss.SwitchToWavePhase(); !errors.Is(err, ErrWaveInProgress) {
		t.Errorf("Expected ErrWaveInProgress, got %v", err)
	}

	dispatcher.Dispatch(event.Event{Type: event.RoundEnded, Data: event.WavePayload{WaveNumber: 1}})
	if ss.Current() != component.MarketPhase {
		t.Fatalf("Expected the market after the round, got %s", ss.Current())
	}
	if ctx.renewed != 1 || ctx.cleared != 1 {
		t.Errorf("Expected the market renewed and the field cleared once, got %d and %d", ctx.renewed, ctx.cleared)
	}
	if recorder.Count(event.PhaseChanged) != 2 {
		t.Errorf("Expected 2 PhaseChanged events, got %d", recorder.Count(event.PhaseChanged))
	}
}

func TestStateSystem_FailedStartStaysInMarket(t *testing.T) {
	dispatcher := event.NewDispatcher()
	ctx := &stubContext{startErr: ErrWaveInProgress}
	ss := NewStateSystem(ctx, 0, dispatcher)

	if err := ss.SwitchToWavePhase(); !errors.Is(err, ErrWaveInProgress) {
		t.Fatalf("Expected the context error, got %v", err)
	}
	if ss.Current() != component.MarketPhase {
		t.Errorf("Expected to stay in the market, got %s", ss.Current())
	}
}

func TestStateSystem_GameWon(t *testing.T) {
	dispatcher := event.NewDispatcher()
	recorder := &event.Recorder{}
	dispatcher.Subscribe(event.GameWon, recorder)
	ctx := &stubContext{}
	ss := NewStateSystem(ctx, 2, dispatcher)

	for wave := 1; wave <= 2; wave++ {
		if err := ss.SwitchToWavePhase(); err != nil {
			t.Fatalf("wave %d: %v", wave, err)
		}
		dispatcher.Dispatch(event.Event{Type: event.RoundEnded, Data: event.WavePayload{WaveNumber: wave}})
	}

	if ss.Current() != component.WonPhase {
		t.Fatalf("Expected the won phase, got %s", ss.Current())
	}
	if recorder.Count(event.GameWon) != 1 {
		t.Errorf("Expected 1 GameWon, got %d", recorder.Count(event.GameWon))
	}
	if ctx.renewed != 1 {
		t.Errorf("Expected the market renewed only after wave 1, got %d", ctx.renewed)
	}
	if err := ss.SwitchToWavePhase(); !errors.Is(err, ErrGameWon) {
		t.Errorf("Expected ErrGameWon, got %v", err)
	}
}
