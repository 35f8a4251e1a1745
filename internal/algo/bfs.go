package algo

import "github.com/elektrokombinacija/pathfinder-lab/internal/core"

// BFS expands cells in FIFO discovery order. With uniform step counts
// it finds a path with the fewest moves.
type BFS struct {
	state *searchState
}

// NewBFS creates an uninitialized breadth-first strategy.
func NewBFS() *BFS { return &BFS{} }

func (b *BFS) Name() string { return "BFS" }

func (b *BFS) Start(g *core.Grid, start, target core.Cell, _ Params) error {
	if err := checkEndpoints(g, start, target); err != nil {
		return err
	}
	b.state = newSearchState(start, target)
	return nil
}

func (b *BFS) Step(g *core.Grid) StepOutcome {
	return b.state.expandList(g, false, -1)
}

func (b *BFS) IsTerminal() bool { return b.state != nil && b.state.terminal }

func (b *BFS) Frontier() []core.Cell { return b.state.frontierCells() }

func (b *BFS) Visited() []core.Cell { return b.state.visitedCells() }

func (b *BFS) Parents() map[core.Cell]core.Cell { return b.state.parents }
