// internal/ui/hud.go
package ui

import (
	"fmt"
	"image/color"
	"sort"

	"go-merge-defense/internal/component"
	"go-merge-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// HUDData is the snapshot of game state the HUD draws.
type HUDData struct {
	Phase        component.GamePhase
	Wave         component.Wave
	Player       component.PlayerState
	Slots        []component.MarketSlot
	Counts       map[string]int
	Enemies      int
	BoardLocked  bool
	Speed        float64
	Paused       bool
	LevelUpCost  int
	RerollCost   int
	LastMessages []string
}

// HUD draws the text panels: status line, market offers, inventory and recent events.
type HUD struct {
	fontFace font.Face
}

func NewHUD(fontFace font.Face) *HUD {
	return &HUD{fontFace: fontFace}
}

func (h *HUD) line(screen *ebiten.Image, s string, x, row int, clr color.Color) {
	lineHeight := h.fontFace.Metrics().Height.Ceil() + 4
	text.Draw(screen, s, h.fontFace, x, 24+row*lineHeight, clr)
}

func (h *HUD) Draw(screen *ebiten.Image, d HUDData) {
	status := fmt.Sprintf("%s | wave %d (%s) %d/%d spawned | enemies %d | gold %d | level %d/%d | x%.0f",
		d.Phase, d.Wave.Number, d.Wave.Phase, d.Wave.UnitsSpawned, d.Wave.MaxUnits,
		d.Enemies, d.Player.Gold, d.Player.Level, d.Player.MaxLevel, d.Speed)
	if d.Paused {
		status += " | PAUSED"
	}
	h.line(screen, status, 16, 0, config.TextLightColor)

	row := 2
	if d.Phase == component.MarketPhase {
		h.line(screen, fmt.Sprintf("Market  [R] reroll (%d)  [L] level up (%d)  [Space] start wave", d.RerollCost, d.LevelUpCost), 16, row, config.BuildStateColor)
		row++
		for _, slot := range d.Slots {
			clr := color.Color(config.TierColor(slot.Tier))
			label := fmt.Sprintf("[%d] %-12s tier %d  rarity %d  %d gold", slot.Index+1, slot.Name, slot.Tier, slot.Rarity, slot.Price)
			if !slot.Enabled {
				clr = config.TextDimColor
				label = fmt.Sprintf("[%d] sold", slot.Index+1)
			}
			h.line(screen, label, 32, row, clr)
			row++
		}
	} else {
		h.line(screen, "Wave in progress", 16, row, config.WaveStateColor)
		row++
	}

	row++
	invTitle := "Inventory  [D] hold to drag"
	invColor := color.Color(config.TextLightColor)
	if d.BoardLocked {
		invTitle = "Inventory  (board locked, merges deferred)"
		invColor = config.LockedColor
	}
	h.line(screen, invTitle, 16, row, invColor)
	row++
	tags := make([]string, 0, len(d.Counts))
	for tag := range d.Counts {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	for _, tag := range tags {
		h.line(screen, fmt.Sprintf("%-12s x%d", tag, d.Counts[tag]), 32, row, config.TextLightColor)
		row++
	}

	row++
	for _, msg := range d.LastMessages {
		h.line(screen, msg, 16, row, config.TextDimColor)
		row++
	}
}
