// internal/component/wave.go
package component

// WaveStage drives which checks the wave system runs each tick.
type WaveStage int

const (
	WaveIdle     WaveStage = iota // no wave in progress
	WaveSpawning                  // spawn timer armed
	WaveCleared                   // quota reached, waiting for the field to empty
)

func (p WaveStage) String() string {
	switch p {
	case WaveIdle:
		return "Idle"
	case WaveSpawning:
		return "Spawning"
	case WaveCleared:
		return "WaveCleared"
	}
	return "Unknown"
}

// Wave is the wave/round progression state.
type Wave struct {
	Number        int       // current wave, 0 before the first StartWave
	MaxUnits      int       // spawn quota of the current wave
	UnitsSpawned  int       // spawns issued this wave
	Phase         WaveStage // state machine position
	SpawnTimer    float64   // seconds accumulated towards the next spawn
	SpawnInterval float64   // seconds between spawns
	TimerArmed    bool      // false once the quota cancels the timer
}
