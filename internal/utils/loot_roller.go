package utils

import (
	"math/rand"
	"sort"
	"time"

	"go-merge-defense/internal/defs"
)

// LootRoller draws market offers from weighted loot tables. A fixed seed replays the
// same offers for the same sequence of rolls.
type LootRoller struct {
	rng  *rand.Rand
	seed int64
}

// NewLootRoller seeds a roller. Zero picks a seed from the clock.
func NewLootRoller(seed int64) *LootRoller {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &LootRoller{rng: rand.New(rand.NewSource(seed)), seed: seed}
}

// Seed returns the seed in use, so a clock-seeded run can be replayed.
func (r *LootRoller) Seed() int64 {
	return r.seed
}

// Roll draws n tags from entries with replacement, proportionally to their weights.
// Entries without a positive weight are never drawn, except that a table whose weights
// are all zero yields its first tag every time. An empty table yields nil.
func (r *LootRoller) Roll(entries []defs.LootEntry, n int) []string {
	if len(entries) == 0 || n <= 0 {
		return nil
	}

	cumulative := make([]int, len(entries))
	total := 0
	for i, entry := range entries {
		if entry.Weight > 0 {
			total += entry.Weight
		}
		cumulative[i] = total
	}

	tags := make([]string, n)
	for i := range tags {
		if total == 0 {
			tags[i] = entries[0].Tag
			continue
		}
		pick := r.rng.Intn(total)
		tags[i] = entries[sort.SearchInts(cumulative, pick+1)].Tag
	}
	return tags
}
