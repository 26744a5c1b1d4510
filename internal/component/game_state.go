package component

// GamePhase is the orchestration phase of the round loop.
type GamePhase int

const (
	MarketPhase GamePhase = iota // between waves, player buys and merges
	WavePhase                    // a wave is running
	WonPhase                     // the last configured wave has been cleared
)

func (p GamePhase) String() string {
	switch p {
	case MarketPhase:
		return "Market"
	case WavePhase:
		return "Wave"
	case WonPhase:
		return "Won"
	}
	return "Unknown"
}
