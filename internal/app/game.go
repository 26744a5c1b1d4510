// internal/app/game.go
package app

import (
	"errors"

	"go-merge-defense/internal/component"
	"go-merge-defense/internal/defs"
	"go-merge-defense/internal/entity"
	"go-merge-defense/internal/event"
	"go-merge-defense/internal/system"
	"go-merge-defense/internal/types"
	"go-merge-defense/internal/utils"

	"github.com/google/uuid"
)

var (
	ErrMarketClosed = errors.New("market is closed during a wave")
	ErrUnknownItem  = errors.New("item not in inventory")
)

// speedSteps are the multipliers cycled by HandleSpeedClick.
var speedSteps = []float64{1, 2, 4}

// Game wires the collaborators and systems of one play session.
type Game struct {
	Defs            *defs.Definitions
	EventDispatcher *event.Dispatcher
	Inventory       *entity.Inventory
	Board           *entity.Board
	Field           *entity.Field
	WaveSystem      *system.WaveSystem
	MergeSystem     *system.MergeSystem
	PlayerSystem    *system.PlayerSystem
	MarketSystem    *system.MarketSystem
	StateSystem     *system.StateSystem
	Loot            *utils.LootRoller
	SpeedMultiplier float64

	gameTime   float64
	isPaused   bool
	speedIndex int
}

// NewGame builds a session from loaded definitions and opens the market.
func NewGame(d *defs.Definitions) *Game {
	if d == nil || d.Links == nil || d.Market == nil {
		panic("definitions cannot be nil")
	}

	eventDispatcher := event.NewDispatcher()
	tuning := d.Tuning
	g := &Game{
		Defs:            d,
		EventDispatcher: eventDispatcher,
		Loot:            utils.NewLootRoller(tuning.Market.Seed),
		SpeedMultiplier: speedSteps[0],
	}

	g.Inventory = entity.NewInventory(eventDispatcher)
	g.Board = entity.NewBoard(tuning.Board.Slots, eventDispatcher)
	g.Field = entity.NewField(tuning.Enemy.Health, tuning.Enemy.Lifetime.Seconds(), eventDispatcher)

	// Subscription order matters: the round reward is paid before the market is renewed.
	g.PlayerSystem = system.NewPlayerSystem(tuning.Economy, eventDispatcher)
	g.WaveSystem = system.NewWaveSystem(tuning.Wave, g.Field, g.Field, eventDispatcher)
	g.MergeSystem = system.NewMergeSystem(g.Inventory, g.Board, g.Board, d.Links, eventDispatcher)
	g.MarketSystem = system.NewMarketSystem(d.Market, tuning, g.Loot, g.PlayerSystem, g.PlayerSystem, g.Inventory, eventDispatcher)
	g.StateSystem = system.NewStateSystem(g, tuning.Wave.MaxWaves, eventDispatcher)

	g.MarketSystem.Renew()
	return g
}

// Update advances the simulation by deltaTime seconds of real time.
func (g *Game) Update(deltaTime float64) {
	if g.isPaused {
		return
	}
	dt := deltaTime * g.SpeedMultiplier
	g.gameTime += dt

	g.Field.Update(dt)
	g.WaveSystem.Tick(dt)
}

// --- GameContext ---

// StartWave implements interfaces.GameContext.
func (g *Game) StartWave() error {
	return g.WaveSystem.StartWave()
}

// RenewMarket implements interfaces.GameContext.
func (g *Game) RenewMarket() {
	g.MarketSystem.Renew()
}

// ClearEnemies implements interfaces.GameContext.
func (g *Game) ClearEnemies() {
	g.Field.Clear()
}

// GetWaveNumber implements interfaces.GameContext.
func (g *Game) GetWaveNumber() int {
	return g.WaveSystem.GetWaveNumber()
}

// --- Player actions ---

// HandleIndicatorClick leaves the market and starts the next wave.
func (g *Game) HandleIndicatorClick() error {
	return g.StateSystem.SwitchToWavePhase()
}

// BuyProduct buys the offer in slot. Only possible while the market is open.
func (g *Game) BuyProduct(slot int) (component.Item, error) {
	if g.StateSystem.Current() != component.MarketPhase {
		return component.Item{}, ErrMarketClosed
	}
	return g.MarketSystem.Buy(slot)
}

func (g *Game) RerollMarket() error {
	if g.StateSystem.Current() != component.MarketPhase {
		return ErrMarketClosed
	}
	return g.MarketSystem.Reroll()
}

func (g *Game) BuyPlayerLevel() error {
	if g.StateSystem.Current() != component.MarketPhase {
		return ErrMarketClosed
	}
	return g.MarketSystem.BuyLevel()
}

// BeginDrag locks the board; merges are deferred until EndDrag.
func (g *Game) BeginDrag() {
	g.Board.Lock()
}

// EndDrag unlocks the board. The merge system replays deferred adds on the unlock event.
func (g *Game) EndDrag() {
	g.Board.Unlock()
}

// PlaceItem puts an inventory item on a board slot.
func (g *Game) PlaceItem(id uuid.UUID, slot int) error {
	if !g.Inventory.Contains(id) {
		return ErrUnknownItem
	}
	return g.Board.Place(id, slot)
}

// DiscardItem removes an item from the inventory and the board.
func (g *Game) DiscardItem(id uuid.UUID) error {
	if !g.Inventory.Remove(id) {
		return ErrUnknownItem
	}
	return nil
}

// KillEnemy removes a live enemy as killed.
func (g *Game) KillEnemy(id types.EntityID) bool {
	return g.Field.Kill(id)
}

func (g *Game) HandleSpeedClick() {
	g.speedIndex = (g.speedIndex + 1) % len(speedSteps)
	g.SpeedMultiplier = speedSteps[g.speedIndex]
}

func (g *Game) HandlePauseClick() {
	g.isPaused = !g.isPaused
}

func (g *Game) IsPaused() bool {
	return g.isPaused
}

func (g *Game) GetGameTime() float64 {
	return g.gameTime
}

// Power sums the tiers of every inventory item.
func (g *Game) Power() int {
	power := 0
	for _, item := range g.Inventory.Items() {
		power += item.Tier
	}
	return power
}
