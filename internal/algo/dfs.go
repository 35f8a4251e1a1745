package algo

import "github.com/elektrokombinacija/pathfinder-lab/internal/core"

// DFS expands the most recently discovered cell first. Neighbor pushes
// are reversed so the first cell in direction order is expanded next.
type DFS struct {
	state *searchState
}

// NewDFS creates an uninitialized depth-first strategy.
func NewDFS() *DFS { return &DFS{} }

func (d *DFS) Name() string { return "DFS" }

func (d *DFS) Start(g *core.Grid, start, target core.Cell, _ Params) error {
	if err := checkEndpoints(g, start, target); err != nil {
		return err
	}
	d.state = newSearchState(start, target)
	return nil
}

func (d *DFS) Step(g *core.Grid) StepOutcome {
	return d.state.expandList(g, true, -1)
}

func (d *DFS) IsTerminal() bool { return d.state != nil && d.state.terminal }

func (d *DFS) Frontier() []core.Cell { return d.state.frontierCells() }

func (d *DFS) Visited() []core.Cell { return d.state.visitedCells() }

func (d *DFS) Parents() map[core.Cell]core.Cell { return d.state.parents }
