// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 960
	ScreenHeight = 540
	TPS          = 60
	FixedStep    = 1.0 / TPS // seconds simulated per ebiten Update

	// Waves
	BaseUnitsPerWave      = 5 // quota before the first wave; wave 1 gets base + increment
	UnitsPerWaveIncrement = 5
	SpawnInterval         = 1.0 // seconds
	MaxWaves              = 0   // 0 = endless

	// Enemies
	EnemyHealth   = 3
	EnemyLifetime = 30.0 // seconds before an enemy leaks off the field

	// Merging
	MergeThreshold = 3

	// Economy
	StartingGold    = 10
	KillReward      = 1
	RoundReward     = 5
	RerollCost      = 1
	LevelUpBaseCost = 2
	StartLevel      = 1
	MaxPlayerLevel  = 5

	// Market
	MarketSlots = 5
	MarketSeed  = 0 // 0 = seed from the clock

	// Board
	BoardSlots = 16
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	TextDimColor    = color.RGBA{120, 120, 130, 255}
	WaveStateColor  = color.RGBA{220, 60, 60, 255}
	BuildStateColor = color.RGBA{70, 130, 180, 255}
	LockedColor     = color.RGBA{255, 215, 0, 255}
	TierColors      = []color.RGBA{
		{200, 200, 200, 255}, // tier 1
		{50, 205, 50, 255},   // tier 2
		{50, 100, 255, 255},  // tier 3
		{180, 50, 230, 255},  // tier 4+
	}
)

// TierColor returns the HUD color for an item tier.
func TierColor(tier int) color.RGBA {
	if tier < 1 {
		tier = 1
	}
	if tier > len(TierColors) {
		tier = len(TierColors)
	}
	return TierColors[tier-1]
}
