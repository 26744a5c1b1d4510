package component

// PlayerState holds the player's wallet and level.
type PlayerState struct {
	Level    int // current level, starts at 1
	MaxLevel int // level cap
	Gold     int // current balance
}
