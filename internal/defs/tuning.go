// internal/defs/tuning.go
package defs

import (
	"fmt"
	"os"
	"time"

	"go-merge-defense/internal/config"

	"gopkg.in/yaml.v3"
)

// Tuning holds the wave, enemy, economy and market constants loaded from tuning.yaml.
type Tuning struct {
	Wave    WaveTuning    `yaml:"wave"`
	Enemy   EnemyTuning   `yaml:"enemy"`
	Economy EconomyTuning `yaml:"economy"`
	Market  MarketTuning  `yaml:"market"`
	Board   BoardTuning   `yaml:"board"`
}

type WaveTuning struct {
	BaseUnits      int           `yaml:"base_units"`
	UnitsIncrement int           `yaml:"units_increment"`
	SpawnInterval  time.Duration `yaml:"spawn_interval"`
	MaxWaves       int           `yaml:"max_waves"`
}

type EnemyTuning struct {
	Health   int           `yaml:"health"`
	Lifetime time.Duration `yaml:"lifetime"`
}

type EconomyTuning struct {
	StartingGold    int `yaml:"starting_gold"`
	KillReward      int `yaml:"kill_reward"`
	RoundReward     int `yaml:"round_reward"`
	RerollCost      int `yaml:"reroll_cost"`
	LevelUpBaseCost int `yaml:"level_up_base_cost"`
	MaxLevel        int `yaml:"max_level"`
}

type MarketTuning struct {
	Slots int   `yaml:"slots"`
	Seed  int64 `yaml:"seed"`
}

type BoardTuning struct {
	Slots int `yaml:"slots"`
}

// DefaultTuning returns the compiled-in constants from the config package.
func DefaultTuning() Tuning {
	return Tuning{
		Wave: WaveTuning{
			BaseUnits:      config.BaseUnitsPerWave,
			UnitsIncrement: config.UnitsPerWaveIncrement,
			SpawnInterval:  time.Duration(config.SpawnInterval * float64(time.Second)),
			MaxWaves:       config.MaxWaves,
		},
		Enemy: EnemyTuning{
			Health:   config.EnemyHealth,
			Lifetime: time.Duration(config.EnemyLifetime * float64(time.Second)),
		},
		Economy: EconomyTuning{
			StartingGold:    config.StartingGold,
			KillReward:      config.KillReward,
			RoundReward:     config.RoundReward,
			RerollCost:      config.RerollCost,
			LevelUpBaseCost: config.LevelUpBaseCost,
			MaxLevel:        config.MaxPlayerLevel,
		},
		Market: MarketTuning{
			Slots: config.MarketSlots,
			Seed:  config.MarketSeed,
		},
		Board: BoardTuning{
			Slots: config.BoardSlots,
		},
	}
}

// LoadTuning reads a YAML tuning file. Keys missing from the file keep their defaults.
func LoadTuning(path string) (Tuning, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Tuning{}, fmt.Errorf("failed to read tuning file: %w", err)
	}
	return ParseTuning(raw)
}

// ParseTuning overlays raw YAML on DefaultTuning and validates the result.
func ParseTuning(raw []byte) (Tuning, error) {
	t := DefaultTuning()
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return Tuning{}, fmt.Errorf("tuning.yaml: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, fmt.Errorf("tuning.yaml: %w", err)
	}
	return t, nil
}

// Validate rejects values the simulation cannot run with.
func (t Tuning) Validate() error {
	switch {
	case t.Wave.BaseUnits < 0:
		return fmt.Errorf("wave.base_units must be >= 0, got %d", t.Wave.BaseUnits)
	case t.Wave.UnitsIncrement < 0:
		return fmt.Errorf("wave.units_increment must be >= 0, got %d", t.Wave.UnitsIncrement)
	case t.Wave.SpawnInterval <= 0:
		return fmt.Errorf("wave.spawn_interval must be positive, got %s", t.Wave.SpawnInterval)
	case t.Wave.MaxWaves < 0:
		return fmt.Errorf("wave.max_waves must be >= 0, got %d", t.Wave.MaxWaves)
	case t.Enemy.Health <= 0:
		return fmt.Errorf("enemy.health must be positive, got %d", t.Enemy.Health)
	case t.Enemy.Lifetime < 0:
		return fmt.Errorf("enemy.lifetime must be >= 0, got %s", t.Enemy.Lifetime)
	case t.Economy.StartingGold < 0, t.Economy.KillReward < 0, t.Economy.RoundReward < 0,
		t.Economy.RerollCost < 0, t.Economy.LevelUpBaseCost < 0:
		return fmt.Errorf("economy values must be >= 0")
	case t.Economy.MaxLevel < 1:
		return fmt.Errorf("economy.max_level must be >= 1, got %d", t.Economy.MaxLevel)
	case t.Market.Slots < 1:
		return fmt.Errorf("market.slots must be >= 1, got %d", t.Market.Slots)
	case t.Board.Slots < 1:
		return fmt.Errorf("board.slots must be >= 1, got %d", t.Board.Slots)
	}
	return nil
}
