// internal/ui/upgrade_book.go
package ui

import (
	"fmt"
	"image/color"

	"go-merge-defense/internal/config"
	"go-merge-defense/internal/defs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// UpgradeBook is a toggleable window listing every upgrade link and how close the
// inventory is to completing it.
type UpgradeBook struct {
	IsVisible bool
	X, Y      float32
	Width     float32
	Height    float32
	fontFace  font.Face
	links     []defs.UpgradeLink
}

func NewUpgradeBook(x, y, width, height float32, fontFace font.Face, links []defs.UpgradeLink) *UpgradeBook {
	return &UpgradeBook{
		X:        x,
		Y:        y,
		Width:    width,
		Height:   height,
		fontFace: fontFace,
		links:    links,
	}
}

func (b *UpgradeBook) Toggle() {
	b.IsVisible = !b.IsVisible
}

// Draw renders the book if visible. counts maps a tag to the number of items held.
func (b *UpgradeBook) Draw(screen *ebiten.Image, counts map[string]int) {
	if !b.IsVisible {
		return
	}

	bgColor := color.RGBA{R: 20, G: 20, B: 30, A: 230}
	borderColor := color.RGBA{R: 70, G: 100, B: 120, A: 255}
	vector.DrawFilledRect(screen, b.X, b.Y, b.Width, b.Height, bgColor, false)
	vector.StrokeRect(screen, b.X, b.Y, b.Width, b.Height, 2, borderColor, false)

	title := "Upgrades"
	titleBounds := text.BoundString(b.fontFace, title)
	titleX := int(b.X + (b.Width-float32(titleBounds.Dx()))/2)
	titleY := int(b.Y) + 24
	text.Draw(screen, title, b.fontFace, titleX, titleY, config.TextLightColor)

	lineHeight := b.fontFace.Metrics().Height.Ceil() + 6
	for i, link := range b.links {
		have := counts[link.SourceTag]
		line := fmt.Sprintf("3 x %-10s = %-10s (%d/%d)", link.SourceTag, link.Yield.Tag, have%config.MergeThreshold, config.MergeThreshold)
		clr := color.Color(config.TextDimColor)
		if have > 0 {
			clr = config.TierColor(link.Yield.Tier)
		}
		text.Draw(screen, line, b.fontFace, int(b.X)+16, titleY+lineHeight*(i+2), clr)
	}
}
