// Package sim drives stepwise searches and injects mid-run obstacles.
package sim

import (
	"math/rand"

	"github.com/elektrokombinacija/pathfinder-lab/internal/core"
)

// Injector spawns dynamic obstacles on open cells. Randomness comes
// from an explicit seeded generator so runs replay identically.
type Injector struct {
	prob   float64
	maxPer int
	rng    *rand.Rand
}

// NewInjector creates an injector with per-cell spawn probability prob,
// at most maxPerTick spawns per call, and the given seed.
func NewInjector(prob float64, maxPerTick int, seed int64) *Injector {
	if prob < 0 {
		prob = 0
	}
	if prob > 1 {
		prob = 1
	}
	return &Injector{
		prob:   prob,
		maxPer: maxPerTick,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// MaybeSpawn samples a Bernoulli trial for each Open cell in row-major
// order, skipping start, target and excluded cells, and blocks the
// selected ones. Returns the newly blocked cells. The driver calls
// this at most once per tick.
func (in *Injector) MaybeSpawn(g *core.Grid, exclude map[core.Cell]bool) []core.Cell {
	if in.prob == 0 || in.maxPer == 0 {
		return nil
	}

	var spawned []core.Cell
	for _, c := range g.Cells() {
		if len(spawned) >= in.maxPer {
			break
		}
		if g.StateAt(c) != core.Open || exclude[c] {
			continue
		}
		if in.rng.Float64() >= in.prob {
			continue
		}
		if g.SetObstacle(c) {
			spawned = append(spawned, c)
		}
	}
	return spawned
}
