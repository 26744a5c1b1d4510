// internal/interfaces/game_context.go
package interfaces

// GameContext is what the phase state system needs from the orchestrating game.
type GameContext interface {
	StartWave() error
	RenewMarket()
	ClearEnemies()
	GetWaveNumber() int
}
