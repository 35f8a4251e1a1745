package algo

import "github.com/elektrokombinacija/pathfinder-lab/internal/core"

// Bidirectional runs two breadth-first halves, forward from start and
// backward from target, advancing each by one expansion per Step (a
// coordinated pair). The search reports Found the moment a cell is
// present in both visited sets; the halves' parent chains are then
// spliced into one start-to-target map so the usual reconstruction
// applies.
type Bidirectional struct {
	start, target core.Cell

	fwd, bwd *searchState
	visited  []core.Cell // merged expansion order across halves
	visitSet map[core.Cell]bool
	merged   map[core.Cell]core.Cell // set on Found

	terminal bool
	outcome  StepOutcome
}

// NewBidirectional creates an uninitialized bidirectional strategy.
func NewBidirectional() *Bidirectional { return &Bidirectional{} }

func (b *Bidirectional) Name() string { return "Bidirectional" }

func (b *Bidirectional) Start(g *core.Grid, start, target core.Cell, _ Params) error {
	if err := checkEndpoints(g, start, target); err != nil {
		return err
	}
	b.start, b.target = start, target
	b.fwd = newSearchState(start, target)
	b.bwd = newSearchState(target, start)
	b.visited = nil
	b.visitSet = map[core.Cell]bool{}
	b.merged = nil
	b.terminal = false
	b.outcome = StepOutcome{}
	return nil
}

func (b *Bidirectional) Step(g *core.Grid) StepOutcome {
	if b.terminal {
		return b.outcome
	}

	var discovered []core.Cell

	if o, met := b.halfStep(g, b.fwd, b.bwd); met {
		return o
	} else if o.Kind == Expanded {
		discovered = append(discovered, o.Discovered...)
	}

	if o, met := b.halfStep(g, b.bwd, b.fwd); met {
		return o
	} else if o.Kind == Expanded {
		discovered = append(discovered, o.Discovered...)
	}

	if b.fwd.terminal && b.bwd.terminal {
		return b.finish(StepOutcome{Kind: Exhausted})
	}

	// Report the forward half's cell as the expanded one; both halves'
	// discoveries are listed.
	cell := b.fwd.outcome.Cell
	if len(b.fwd.visited) > 0 {
		cell = b.fwd.visited[len(b.fwd.visited)-1]
	}
	return StepOutcome{Kind: Expanded, Cell: cell, Discovered: discovered}
}

// halfStep advances one half and checks the meeting rule against the
// other half's visited set. met is true when the search terminated.
func (b *Bidirectional) halfStep(g *core.Grid, half, other *searchState) (StepOutcome, bool) {
	if half.terminal {
		return half.outcome, false
	}
	o := half.expandList(g, false, -1)
	switch o.Kind {
	case Exhausted:
		return o, false
	case Found:
		// A half reaching its own goal means it crossed the whole way;
		// its goal is the other half's root, already visited or about
		// to be. Treat as meeting at that cell.
		b.recordVisit(o.Cell)
		b.splice(o.Cell, half, other)
		return b.finish(StepOutcome{Kind: Found, Cell: b.target}), true
	default:
		b.recordVisit(o.Cell)
		if other.visitSet[o.Cell] {
			b.splice(o.Cell, half, other)
			return b.finish(StepOutcome{Kind: Found, Cell: b.target}), true
		}
		return o, false
	}
}

func (b *Bidirectional) recordVisit(c core.Cell) {
	if !b.visitSet[c] {
		b.visitSet[c] = true
		b.visited = append(b.visited, c)
	}
}

// splice builds a single start-to-target parent map through the
// meeting cell: forward links as-is, backward links reversed.
func (b *Bidirectional) splice(meet core.Cell, half, other *searchState) {
	fwd, bwd := half, other
	if half.start != b.start {
		fwd, bwd = other, half
	}

	merged := make(map[core.Cell]core.Cell, len(fwd.parents)+len(bwd.parents))
	for c, p := range fwd.parents {
		merged[c] = p
	}
	// Backward chain runs meet -> ... -> target; reverse each link so
	// the cell nearer the target points back toward the meeting cell.
	prev := meet
	for prev != bwd.start {
		p, ok := bwd.parents[prev]
		if !ok {
			break
		}
		merged[p] = prev
		prev = p
	}
	b.merged = merged
}

func (b *Bidirectional) finish(o StepOutcome) StepOutcome {
	b.terminal = true
	b.outcome = o
	return o
}

func (b *Bidirectional) IsTerminal() bool { return b.terminal }

func (b *Bidirectional) Frontier() []core.Cell {
	return append(b.fwd.frontierCells(), b.bwd.frontierCells()...)
}

func (b *Bidirectional) Visited() []core.Cell {
	out := make([]core.Cell, len(b.visited))
	copy(out, b.visited)
	return out
}

func (b *Bidirectional) Parents() map[core.Cell]core.Cell {
	if b.merged != nil {
		return b.merged
	}
	return b.fwd.parents
}
