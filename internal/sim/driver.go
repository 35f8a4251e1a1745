package sim

import (
	"fmt"

	"github.com/elektrokombinacija/pathfinder-lab/internal/algo"
	"github.com/elektrokombinacija/pathfinder-lab/internal/core"
)

// Stats is a per-run statistics snapshot.
type Stats struct {
	Expansions   int
	FrontierSize int
	Ticks        int
	Spawned      int
	PathLength   int
	Status       string
}

// TickResult is what one driver tick hands to the renderer.
type TickResult struct {
	Outcome   algo.StepOutcome
	Stats     Stats
	Path      []core.Cell
	PathValid bool
	NewBlocks []core.Cell
}

// Driver advances a strategy one expansion per tick, splicing obstacle
// injection between expansions. Strictly single-threaded: the caller's
// loop controls pacing, and grid edits must happen between ticks.
type Driver struct {
	cfg      core.Config
	grid     *core.Grid
	strategy algo.Strategy
	injector *Injector

	stats     Stats
	found     bool
	path      []core.Cell
	pathValid bool
}

// NewDriver builds a driver for the configuration. It fails when the
// configuration is invalid, the algorithm is unknown, or start/target
// are blocked on the supplied grid.
func NewDriver(cfg core.Config, grid *core.Grid) (*Driver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if grid == nil {
		grid = core.NewGridFromConfig(cfg)
	}
	strategy, err := algo.New(cfg.Algorithm)
	if err != nil {
		return nil, err
	}
	d := &Driver{
		cfg:      cfg,
		grid:     grid,
		strategy: strategy,
		injector: NewInjector(cfg.SpawnProb, cfg.MaxSpawnPerTick, cfg.Seed),
	}
	if err := d.startStrategy(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Driver) startStrategy() error {
	err := d.strategy.Start(d.grid, d.grid.Start(), d.grid.Target(),
		algo.Params{DepthLimit: d.cfg.DepthLimit})
	if err != nil {
		return err
	}
	d.stats = Stats{Status: "running " + d.strategy.Name()}
	d.found = false
	d.path = nil
	d.pathValid = false
	return nil
}

// Grid exposes the grid for read-only rendering and between-tick edits.
func (d *Driver) Grid() *core.Grid { return d.grid }

// Strategy exposes the active strategy for read-only rendering.
func (d *Driver) Strategy() algo.Strategy { return d.strategy }

// Path returns the cached path and whether it is still unblocked.
func (d *Driver) Path() ([]core.Cell, bool) { return d.path, d.pathValid }

// Stats returns the current statistics snapshot.
func (d *Driver) Stats() Stats { return d.stats }

// Done reports whether the strategy has terminated.
func (d *Driver) Done() bool { return d.strategy.IsTerminal() }

// Tick runs one driver cycle: inject obstacles, re-validate the cached
// path, advance the strategy by one expansion, and refresh statistics.
func (d *Driver) Tick() TickResult {
	d.stats.Ticks++

	// Obstacles never land on the cached path while it is valid; a
	// path can still be cut by user wall edits, caught below.
	exclude := make(map[core.Cell]bool, len(d.path))
	if d.pathValid {
		for _, c := range d.path {
			exclude[c] = true
		}
	}
	spawned := d.injector.MaybeSpawn(d.grid, exclude)
	d.stats.Spawned += len(spawned)

	if d.pathValid && pathBlocked(d.grid, d.path) {
		d.pathValid = false
		d.stats.Status = "path blocked"
	}

	outcome := d.strategy.Step(d.grid)
	switch outcome.Kind {
	case algo.Expanded:
		d.stats.Expansions++
	case algo.Found:
		if !d.found {
			d.found = true
			d.stats.Expansions++
			path, err := algo.ReconstructPath(d.strategy.Parents(), d.grid.Start(), d.grid.Target())
			if err != nil {
				d.stats.Status = fmt.Sprintf("internal error: %v", err)
				break
			}
			d.path = path
			d.pathValid = !pathBlocked(d.grid, path)
			d.stats.PathLength = len(path) - 1
			d.stats.Status = "path found"
		}
	case algo.Exhausted:
		d.stats.Status = "no path"
	}
	d.stats.FrontierSize = len(d.strategy.Frontier())

	return TickResult{
		Outcome:   outcome,
		Stats:     d.stats,
		Path:      d.path,
		PathValid: d.pathValid,
		NewBlocks: spawned,
	}
}

// Run ticks until the strategy terminates or maxTicks elapse.
func (d *Driver) Run(maxTicks int) TickResult {
	var res TickResult
	for i := 0; i < maxTicks && !d.Done(); i++ {
		res = d.Tick()
	}
	return res
}

// Restart discards the search state and begins the same algorithm
// anew on the current grid. clearDynamic also removes injected
// obstacles first.
func (d *Driver) Restart(clearDynamic bool) error {
	if clearDynamic {
		d.grid.ClearDynamic()
	}
	return d.startStrategy()
}

// SwitchAlgorithm swaps the strategy, discarding all search state.
func (d *Driver) SwitchAlgorithm(name string) error {
	strategy, err := algo.New(name)
	if err != nil {
		return err
	}
	d.strategy = strategy
	d.cfg.Algorithm = name
	return d.startStrategy()
}

// pathBlocked reports whether any cell of the path is now impassable.
func pathBlocked(g *core.Grid, path []core.Cell) bool {
	for _, c := range path {
		if g.IsBlocked(c) {
			return true
		}
	}
	return false
}
