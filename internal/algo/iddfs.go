package algo

import "github.com/elektrokombinacija/pathfinder-lab/internal/core"

// IDDFS runs depth-limited rounds at increasing limits 0, 1, 2, ...,
// each on a fresh state. The outer loop is explicit so the strategy
// still honors the one-expansion-per-Step contract. A round that
// exhausts without reaching more cells than the previous round proves
// no path exists; the grid diameter (N*N) caps the limit as a hard
// stop against restart loops.
type IDDFS struct {
	start, target core.Cell

	inner        *searchState
	limit        int
	maxLimit     int
	prevExpanded int

	terminal bool
	outcome  StepOutcome
}

// NewIDDFS creates an uninitialized iterative-deepening strategy.
func NewIDDFS() *IDDFS { return &IDDFS{} }

func (it *IDDFS) Name() string { return "IDDFS" }

// Limit returns the current round's depth limit.
func (it *IDDFS) Limit() int { return it.limit }

func (it *IDDFS) Start(g *core.Grid, start, target core.Cell, _ Params) error {
	if err := checkEndpoints(g, start, target); err != nil {
		return err
	}
	it.start, it.target = start, target
	it.limit = 0
	it.maxLimit = g.Size() * g.Size()
	it.prevExpanded = -1
	it.inner = newSearchState(start, target)
	it.terminal = false
	it.outcome = StepOutcome{}
	return nil
}

func (it *IDDFS) Step(g *core.Grid) StepOutcome {
	if it.terminal {
		return it.outcome
	}

	o := it.inner.expandList(g, true, it.limit)
	switch o.Kind {
	case Found:
		it.terminal = true
		it.outcome = o
		return o
	case Exhausted:
		expanded := len(it.inner.visited)
		if it.limit >= it.maxLimit || expanded <= it.prevExpanded {
			it.terminal = true
			it.outcome = o
			return o
		}
		// Restart the next round; the exhausted pop was not an
		// expansion, so stepping the new round keeps one expansion
		// per call.
		it.prevExpanded = expanded
		it.limit++
		it.inner = newSearchState(it.start, it.target)
		return it.inner.expandList(g, true, it.limit)
	default:
		return o
	}
}

func (it *IDDFS) IsTerminal() bool { return it.terminal }

func (it *IDDFS) Frontier() []core.Cell { return it.inner.frontierCells() }

func (it *IDDFS) Visited() []core.Cell { return it.inner.visitedCells() }

func (it *IDDFS) Parents() map[core.Cell]core.Cell { return it.inner.parents }
