// internal/state/won_state.go
package state

import (
	"fmt"

	"go-merge-defense/internal/app"
	"go-merge-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// WonState is the summary screen shown after the last wave.
type WonState struct {
	game     *app.Game
	fontFace font.Face
}

func NewWonState(game *app.Game, fontFace font.Face) *WonState {
	return &WonState{game: game, fontFace: fontFace}
}

func (s *WonState) Enter()                   {}
func (s *WonState) Exit()                    {}
func (s *WonState) Update(deltaTime float64) {}

func (s *WonState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	player := s.game.PlayerSystem.State()
	lines := []string{
		"All waves cleared",
		fmt.Sprintf("Waves: %d", s.game.GetWaveNumber()),
		fmt.Sprintf("Gold: %d  Level: %d", player.Gold, player.Level),
		fmt.Sprintf("Items: %d  Power: %d", s.game.Inventory.Len(), s.game.Power()),
	}
	for i, line := range lines {
		bounds := text.BoundString(s.fontFace, line)
		x := (config.ScreenWidth - bounds.Dx()) / 2
		y := config.ScreenHeight/2 - 40 + i*20
		text.Draw(screen, line, s.fontFace, x, y, config.TextLightColor)
	}
}
