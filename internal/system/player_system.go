// internal/system/player_system.go
package system

import (
	"errors"
	"log"

	"go-merge-defense/internal/component"
	"go-merge-defense/internal/config"
	"go-merge-defense/internal/defs"
	"go-merge-defense/internal/event"
)

var (
	ErrNotEnoughGold = errors.New("not enough gold")
	ErrMaxLevel      = errors.New("player level already at max")
)

// PlayerSystem keeps the player's gold and level and pays out kill and round rewards.
type PlayerSystem struct {
	state           *component.PlayerState
	killReward      int
	roundReward     int
	eventDispatcher *event.Dispatcher
}

func NewPlayerSystem(tuning defs.EconomyTuning, eventDispatcher *event.Dispatcher) *PlayerSystem {
	s := &PlayerSystem{
		state: &component.PlayerState{
			Level:    config.StartLevel,
			MaxLevel: tuning.MaxLevel,
			Gold:     tuning.StartingGold,
		},
		killReward:      tuning.KillReward,
		roundReward:     tuning.RoundReward,
		eventDispatcher: eventDispatcher,
	}
	eventDispatcher.Subscribe(event.EnemyKilled, s)
	eventDispatcher.Subscribe(event.RoundEnded, s)
	return s
}

// OnEvent pays out rewards.
func (s *PlayerSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyKilled:
		if s.killReward > 0 {
			s.GainGold(s.killReward)
		}
	case event.RoundEnded:
		if s.roundReward > 0 {
			s.GainGold(s.roundReward)
		}
	}
}

// GainLevel spends cost gold on one level.
func (s *PlayerSystem) GainLevel(cost int) error {
	if !s.CheckLevel() {
		log.Println("Player's level has already reached max")
		return ErrMaxLevel
	}
	if !s.CheckGold(cost) {
		log.Println("Not enough gold")
		return ErrNotEnoughGold
	}
	s.RemoveGold(cost)
	s.AddOneLevel()
	return nil
}

// CheckGold reports whether the player can afford amount.
func (s *PlayerSystem) CheckGold(amount int) bool {
	return s.state.Gold >= amount
}

func (s *PlayerSystem) GainGold(amount int) {
	s.state.Gold += amount
	s.eventDispatcher.Dispatch(event.Event{Type: event.GoldChanged, Data: s.state.Gold})
}

func (s *PlayerSystem) RemoveGold(amount int) {
	s.state.Gold -= amount
	s.eventDispatcher.Dispatch(event.Event{Type: event.GoldChanged, Data: s.state.Gold})
}

// CheckLevel reports whether the player can still level up.
func (s *PlayerSystem) CheckLevel() bool {
	return s.state.Level < s.state.MaxLevel
}

func (s *PlayerSystem) AddOneLevel() {
	s.state.Level++
	s.eventDispatcher.Dispatch(event.Event{Type: event.LevelUp, Data: s.state.Level})
}

func (s *PlayerSystem) GetPlayerLevel() int {
	return s.state.Level
}

func (s *PlayerSystem) GetPlayerGold() int {
	return s.state.Gold
}

// State returns a copy of the player state.
func (s *PlayerSystem) State() component.PlayerState {
	return *s.state
}
