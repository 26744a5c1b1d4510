// internal/state/game_state.go
package state

import (
	"errors"
	"log"

	"go-merge-defense/internal/app"
	"go-merge-defense/internal/component"
	"go-merge-defense/internal/config"
	"go-merge-defense/internal/event"
	"go-merge-defense/internal/system"
	"go-merge-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

var slotKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4, ebiten.KeyDigit5,
	ebiten.KeyDigit6, ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

// GameState is the play screen: keyboard input, simulation update and HUD.
type GameState struct {
	sm            *StateMachine
	game          *app.Game
	defense       *app.AutoDefense
	fontFace      font.Face
	hud           *ui.HUD
	indicator     *ui.StateIndicator
	waveIndicator *ui.WaveIndicator
	upgradeBook   *ui.UpgradeBook
	eventLog      *ui.EventLog
	won           bool
}

func NewGameState(sm *StateMachine, game *app.Game) *GameState {
	face := basicfont.Face7x13
	gs := &GameState{
		sm:       sm,
		game:     game,
		defense:  app.NewAutoDefense(2.0, 1),
		fontFace: face,
		hud:      ui.NewHUD(face),
		indicator: ui.NewStateIndicator(
			float32(config.ScreenWidth-40), 40, 16,
		),
		waveIndicator: ui.NewWaveIndicator(config.ScreenWidth-40, 80, face, config.TextLightColor),
		upgradeBook: ui.NewUpgradeBook(
			float32(config.ScreenWidth)/2, 60,
			float32(config.ScreenWidth)/2-20, float32(config.ScreenHeight)-120,
			face, game.Defs.Links.Links(),
		),
		eventLog: ui.NewEventLog(6),
	}
	return gs
}

func (gs *GameState) Enter() {
	gs.game.EventDispatcher.Subscribe(event.Any, gs.eventLog)
	gs.game.EventDispatcher.Subscribe(event.GameWon, gs)
}

func (gs *GameState) Exit() {
	gs.game.EventDispatcher.Unsubscribe(event.Any, gs.eventLog)
	gs.game.EventDispatcher.Unsubscribe(event.GameWon, gs)
}

// OnEvent switches to the summary screen once the last wave is cleared.
func (gs *GameState) OnEvent(e event.Event) {
	if e.Type == event.GameWon {
		gs.won = true
	}
}

func (gs *GameState) Update(deltaTime float64) {
	gs.handleInput()
	gs.game.Update(deltaTime)
	gs.defense.Update(gs.game, deltaTime)
	if gs.won {
		gs.sm.SetState(NewWonState(gs.game, gs.fontFace))
	}
}

func (gs *GameState) handleInput() {
	// Holding D is the drag: the board stays locked until the key is released.
	dragging := ebiten.IsKeyPressed(ebiten.KeyD)
	if dragging && !gs.game.Board.IsLocked() {
		gs.game.BeginDrag()
	} else if !dragging && gs.game.Board.IsLocked() {
		gs.game.EndDrag()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		gs.startWave()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if x, y := ebiten.CursorPosition(); gs.indicator.IsClicked(x, y) {
			gs.startWave()
		}
	}
	for i, key := range slotKeys {
		if inpututil.IsKeyJustPressed(key) {
			if item, err := gs.game.BuyProduct(i); err != nil {
				log.Printf("Buy slot %d: %v", i+1, err)
			} else if slot, ok := gs.game.Board.FreeSlot(); ok {
				_ = gs.game.PlaceItem(item.ID, slot)
			}
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := gs.game.RerollMarket(); err != nil {
			log.Printf("Reroll: %v", err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		if err := gs.game.BuyPlayerLevel(); err != nil {
			log.Printf("Level up: %v", err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyU) {
		gs.upgradeBook.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		gs.game.HandleSpeedClick()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		gs.game.HandlePauseClick()
	}
}

func (gs *GameState) startWave() {
	gs.indicator.HandleClick()
	if err := gs.game.HandleIndicatorClick(); err != nil && !errors.Is(err, system.ErrWaveInProgress) {
		log.Printf("Start wave: %v", err)
	}
}

func (gs *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)

	phase := gs.game.StateSystem.Current()
	phaseColor := config.BuildStateColor
	if phase == component.WavePhase {
		phaseColor = config.WaveStateColor
	}
	gs.indicator.Draw(screen, phaseColor)
	gs.waveIndicator.Draw(screen, gs.game.GetWaveNumber())

	counts := gs.game.Inventory.CountByTag()
	gs.hud.Draw(screen, ui.HUDData{
		Phase:        phase,
		Wave:         gs.game.WaveSystem.State(),
		Player:       gs.game.PlayerSystem.State(),
		Slots:        gs.game.MarketSystem.Slots(),
		Counts:       counts,
		Enemies:      gs.game.Field.ActiveEnemies(),
		BoardLocked:  gs.game.Board.IsLocked(),
		Speed:        gs.game.SpeedMultiplier,
		Paused:       gs.game.IsPaused(),
		LevelUpCost:  gs.game.MarketSystem.LevelUpCost(),
		RerollCost:   gs.game.MarketSystem.RerollCost(),
		LastMessages: gs.eventLog.Lines(),
	})
	gs.upgradeBook.Draw(screen, counts)
}
