// internal/app/defense.go
package app

// AutoDefense stands in for tower combat: it damages the oldest enemy on a cooldown
// that shortens as the inventory's total tier grows.
type AutoDefense struct {
	BaseInterval float64 // seconds between shots with an empty inventory
	Damage       int
	cooldown     float64
}

func NewAutoDefense(baseInterval float64, damage int) *AutoDefense {
	return &AutoDefense{BaseInterval: baseInterval, Damage: damage}
}

// Interval returns the current shot interval for the given power.
func (d *AutoDefense) Interval(power int) float64 {
	return d.BaseInterval / float64(1+power)
}

// Update fires as many shots as are due within deltaTime.
func (d *AutoDefense) Update(g *Game, deltaTime float64) {
	if g.IsPaused() {
		return
	}
	interval := d.Interval(g.Power())
	if interval <= 0 {
		return
	}
	d.cooldown -= deltaTime * g.SpeedMultiplier
	for d.cooldown <= 0 {
		d.cooldown += interval
		id, ok := g.Field.Oldest()
		if !ok {
			d.cooldown = 0
			return
		}
		g.Field.Damage(id, d.Damage)
	}
}
