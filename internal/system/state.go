// internal/system/state.go
package system

import (
	"errors"
	"log"

	"go-merge-defense/internal/component"
	"go-merge-defense/internal/event"
	"go-merge-defense/internal/interfaces"
)

// ErrGameWon is returned when a wave is requested after the last one was cleared.
var ErrGameWon = errors.New("all waves cleared")

// StateSystem sequences the round loop: market phase, wave phase, market phase again.
type StateSystem struct {
	phase           component.GamePhase
	maxWaves        int
	gameContext     interfaces.GameContext
	eventDispatcher *event.Dispatcher
}

func NewStateSystem(gameContext interfaces.GameContext, maxWaves int, eventDispatcher *event.Dispatcher) *StateSystem {
	ss := &StateSystem{
		phase:           component.MarketPhase,
		maxWaves:        maxWaves,
		gameContext:     gameContext,
		eventDispatcher: eventDispatcher,
	}
	eventDispatcher.Subscribe(event.RoundEnded, ss)
	return ss
}

func (s *StateSystem) OnEvent(e event.Event) {
	if e.Type != event.RoundEnded {
		return
	}
	wave := s.gameContext.GetWaveNumber()
	if payload, ok := e.Data.(event.WavePayload); ok {
		wave = payload.WaveNumber
	}
	if s.maxWaves > 0 && wave >= s.maxWaves {
		s.setPhase(component.WonPhase)
		s.eventDispatcher.Dispatch(event.Event{Type: event.GameWon, Data: event.WavePayload{WaveNumber: wave}})
		return
	}
	s.SwitchToMarketPhase()
}

// SwitchToMarketPhase opens the shop with fresh offers.
func (s *StateSystem) SwitchToMarketPhase() {
	s.gameContext.ClearEnemies()
	s.gameContext.RenewMarket()
	s.setPhase(component.MarketPhase)
}

// SwitchToWavePhase starts the next wave. Only valid from the market phase.
func (s *StateSystem) SwitchToWavePhase() error {
	if s.phase == component.WonPhase {
		return ErrGameWon
	}
	if s.phase != component.MarketPhase {
		log.Printf("Cannot start a wave during the %s phase", s.phase)
		return ErrWaveInProgress
	}
	if err := s.gameContext.StartWave(); err != nil {
		return err
	}
	s.setPhase(component.WavePhase)
	return nil
}

func (s *StateSystem) Current() component.GamePhase {
	return s.phase
}

func (s *StateSystem) setPhase(phase component.GamePhase) {
	if s.phase == phase {
		return
	}
	s.phase = phase
	s.eventDispatcher.Dispatch(event.Event{Type: event.PhaseChanged, Data: phase})
}
