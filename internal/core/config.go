package core

import (
	"errors"
	"fmt"
)

// Configuration defaults matching the reference setup.
const (
	DefaultGridSize        = 20
	DefaultDepthLimit      = 20
	DefaultSpawnProb       = 0.02
	DefaultMaxSpawnPerTick = 3
	DefaultSeed            = 42
)

var (
	ErrBadGridSize   = errors.New("grid size must be at least 2")
	ErrBadSpawnProb  = errors.New("spawn probability must be in [0,1]")
	ErrBadDepthLimit = errors.New("depth limit must be non-negative")
)

// Config is the immutable per-run configuration record. The engine
// treats it as fixed for the run's duration; a restart re-reads it.
type Config struct {
	GridSize        int
	Start           Cell
	Target          Cell
	Algorithm       string
	DepthLimit      int
	SpawnProb       float64
	MaxSpawnPerTick int
	Seed            int64
}

// DefaultConfig returns the reference configuration: 20x20 grid, start
// near the top-left corner, target near the bottom-right.
func DefaultConfig() Config {
	return Config{
		GridSize:        DefaultGridSize,
		Start:           Cell{1, 1},
		Target:          Cell{DefaultGridSize - 2, DefaultGridSize - 2},
		Algorithm:       "BFS",
		DepthLimit:      DefaultDepthLimit,
		SpawnProb:       DefaultSpawnProb,
		MaxSpawnPerTick: DefaultMaxSpawnPerTick,
		Seed:            DefaultSeed,
	}
}

// Validate checks the configuration for structural errors.
func (c Config) Validate() error {
	if c.GridSize < 2 {
		return fmt.Errorf("%w: got %d", ErrBadGridSize, c.GridSize)
	}
	if c.SpawnProb < 0 || c.SpawnProb > 1 {
		return fmt.Errorf("%w: got %g", ErrBadSpawnProb, c.SpawnProb)
	}
	if c.DepthLimit < 0 {
		return fmt.Errorf("%w: got %d", ErrBadDepthLimit, c.DepthLimit)
	}
	return nil
}

// NewGridFromConfig builds the grid described by the configuration.
func NewGridFromConfig(c Config) *Grid {
	return NewGrid(c.GridSize, c.Start, c.Target)
}
