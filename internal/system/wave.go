// internal/system/wave.go
package system

import (
	"errors"
	"log"

	"go-merge-defense/internal/component"
	"go-merge-defense/internal/defs"
	"go-merge-defense/internal/event"
	"go-merge-defense/internal/interfaces"
)

// ErrWaveInProgress is returned by StartWave when the previous round has not ended.
var ErrWaveInProgress = errors.New("wave already in progress")

// WaveSystem paces enemy spawns and detects the end of a wave and of a round.
//
// Idle -> StartWave -> Spawning -> quota reached -> WaveCleared -> field empty -> Idle.
// Stopping the spawns and ending the round are separate steps so a round never ends
// while spawned enemies are still alive.
type WaveSystem struct {
	wave            *component.Wave
	increment       int
	spawner         interfaces.Spawner
	enemies         interfaces.EnemyCounter
	eventDispatcher *event.Dispatcher
}

func NewWaveSystem(tuning defs.WaveTuning, spawner interfaces.Spawner, enemies interfaces.EnemyCounter, eventDispatcher *event.Dispatcher) *WaveSystem {
	return &WaveSystem{
		wave: &component.Wave{
			MaxUnits:      tuning.BaseUnits,
			Phase:         component.WaveIdle,
			SpawnInterval: tuning.SpawnInterval.Seconds(),
		},
		increment:       tuning.UnitsIncrement,
		spawner:         spawner,
		enemies:         enemies,
		eventDispatcher: eventDispatcher,
	}
}

// StartWave begins the next wave. It only works from Idle; otherwise nothing changes.
func (s *WaveSystem) StartWave() error {
	if s.wave.Phase != component.WaveIdle {
		log.Printf("StartWave ignored: wave %d is %s", s.wave.Number, s.wave.Phase)
		return ErrWaveInProgress
	}

	s.wave.Number++
	s.wave.MaxUnits += s.increment
	s.wave.UnitsSpawned = 0
	s.wave.Phase = component.WaveSpawning
	// The first spawn is due right away.
	s.wave.SpawnTimer = s.wave.SpawnInterval
	s.wave.TimerArmed = true

	s.dispatch(event.WaveStarted)
	return nil
}

// Tick advances the state machine by one fixed step of deltaTime seconds.
func (s *WaveSystem) Tick(deltaTime float64) {
	if s.wave.Phase == component.WaveSpawning {
		if s.wave.TimerArmed {
			s.wave.SpawnTimer += deltaTime
			for s.wave.SpawnTimer >= s.wave.SpawnInterval && s.wave.UnitsSpawned < s.wave.MaxUnits {
				s.wave.SpawnTimer -= s.wave.SpawnInterval
				s.onSpawnTick()
			}
		}

		if s.wave.UnitsSpawned >= s.wave.MaxUnits {
			s.wave.TimerArmed = false
			s.wave.SpawnTimer = 0
			s.wave.Phase = component.WaveCleared
			s.dispatch(event.WaveEnded)
		}
	}

	if s.wave.Phase == component.WaveCleared && s.enemies.ActiveEnemies() == 0 {
		s.wave.Phase = component.WaveIdle
		s.dispatch(event.RoundEnded)
	}
}

func (s *WaveSystem) onSpawnTick() {
	if s.wave.Phase != component.WaveSpawning || !s.wave.TimerArmed {
		return
	}
	s.spawner.SpawnOne()
	s.wave.UnitsSpawned++
}

func (s *WaveSystem) dispatch(eventType event.EventType) {
	s.eventDispatcher.Dispatch(event.Event{
		Type: eventType,
		Data: event.WavePayload{WaveNumber: s.wave.Number},
	})
}

func (s *WaveSystem) GetWaveNumber() int {
	return s.wave.Number
}

func (s *WaveSystem) Phase() component.WaveStage {
	return s.wave.Phase
}

// State returns a copy of the wave state.
func (s *WaveSystem) State() component.Wave {
	return *s.wave
}
