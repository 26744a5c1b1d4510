package component

import "go-merge-defense/internal/types"

// Enemy is an active unit on the field.
type Enemy struct {
	ID        types.EntityID
	Health    int     // remaining hit points
	TimeAlive float64 // seconds since spawn
	Lifetime  float64 // seconds until it leaks off the field, 0 = never
}
