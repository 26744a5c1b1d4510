// internal/ui/wave_indicator.go
package ui

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// WaveIndicator shows the current wave number in Roman numerals.
type WaveIndicator struct {
	X, Y     int
	Color    color.Color
	fontFace font.Face
}

func NewWaveIndicator(x, y int, fontFace font.Face, clr color.Color) *WaveIndicator {
	return &WaveIndicator{X: x, Y: y, Color: clr, fontFace: fontFace}
}

func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Draw centers the numeral on X. Nothing is drawn before the first wave.
func (i *WaveIndicator) Draw(screen *ebiten.Image, waveNumber int) {
	if waveNumber <= 0 {
		return
	}
	label := toRoman(waveNumber)
	bounds := text.BoundString(i.fontFace, label)
	text.Draw(screen, label, i.fontFace, i.X-bounds.Dx()/2, i.Y, i.Color)
}
