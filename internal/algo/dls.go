package algo

import "github.com/elektrokombinacija/pathfinder-lab/internal/core"

// DLS is depth-first search with a depth ceiling. Neighbors are not
// pushed once a cell sits at the limit, so the search may report
// Exhausted while reachable cells remain beyond it: DLS is incomplete
// by definition.
type DLS struct {
	state *searchState
	limit int
}

// NewDLS creates an uninitialized depth-limited strategy.
func NewDLS() *DLS { return &DLS{} }

func (d *DLS) Name() string { return "DLS" }

func (d *DLS) Start(g *core.Grid, start, target core.Cell, p Params) error {
	if err := checkEndpoints(g, start, target); err != nil {
		return err
	}
	// Negative means "use the configured default"; zero is a literal
	// ceiling that only ever expands the start cell.
	d.limit = p.DepthLimit
	if d.limit < 0 {
		d.limit = core.DefaultDepthLimit
	}
	d.state = newSearchState(start, target)
	return nil
}

func (d *DLS) Step(g *core.Grid) StepOutcome {
	return d.state.expandList(g, true, d.limit)
}

func (d *DLS) IsTerminal() bool { return d.state != nil && d.state.terminal }

func (d *DLS) Frontier() []core.Cell { return d.state.frontierCells() }

func (d *DLS) Visited() []core.Cell { return d.state.visitedCells() }

func (d *DLS) Parents() map[core.Cell]core.Cell { return d.state.parents }
