package core

import "math"

// DiagonalCost is the move cost between diagonally adjacent cells.
var DiagonalCost = math.Sqrt2

// Move pairs a reachable neighbor with its move cost.
type Move struct {
	Cell Cell
	Cost float64
}

// directions is the fixed neighbor iteration order: N, S, E, W, NE, NW,
// SE, SW. Strategies rely on this order for reproducible expansion, so
// it is part of the engine contract, not a rendering detail.
var directions = [8]Cell{
	{-1, 0},  // N
	{1, 0},   // S
	{0, 1},   // E
	{0, -1},  // W
	{-1, 1},  // NE
	{-1, -1}, // NW
	{1, 1},   // SE
	{1, -1},  // SW
}

// Grid is an N x N cell-state container with one Start and one Target.
// Start and Target are fixed after construction; walls and dynamic
// obstacles may toggle on any other cell between engine steps.
type Grid struct {
	size   int
	states [][]CellState
	start  Cell
	target Cell
}

// NewGrid creates an all-Open grid with the given start and target.
// Out-of-bounds or coincident placements are clamped to the original
// defaults (start top-left area, target bottom-right area).
func NewGrid(size int, start, target Cell) *Grid {
	if size < 2 {
		size = 2
	}
	if !inBounds(start, size) {
		start = Cell{1, 1}
	}
	if !inBounds(target, size) || target == start {
		target = Cell{size - 2, size - 2}
		if target == start {
			target = Cell{size - 1, size - 1}
		}
	}
	states := make([][]CellState, size)
	for r := range states {
		states[r] = make([]CellState, size)
	}
	g := &Grid{size: size, states: states, start: start, target: target}
	g.states[start.Row][start.Col] = Start
	g.states[target.Row][target.Col] = Target
	return g
}

// Size returns the grid dimension N.
func (g *Grid) Size() int { return g.size }

// Start returns the start cell.
func (g *Grid) Start() Cell { return g.start }

// Target returns the target cell.
func (g *Grid) Target() Cell { return g.target }

// InBounds reports whether the cell lies inside the grid.
func (g *Grid) InBounds(c Cell) bool { return inBounds(c, g.size) }

func inBounds(c Cell, size int) bool {
	return c.Row >= 0 && c.Row < size && c.Col >= 0 && c.Col < size
}

// StateAt returns the state of a cell; out-of-bounds reads as StaticWall
// so callers can treat the border as solid.
func (g *Grid) StateAt(c Cell) CellState {
	if !g.InBounds(c) {
		return StaticWall
	}
	return g.states[c.Row][c.Col]
}

// IsBlocked reports whether a cell cannot be entered.
func (g *Grid) IsBlocked(c Cell) bool {
	return g.StateAt(c).Blocked()
}

// SetWall toggles a static wall. Edits targeting Start or Target are
// silently ignored, as are edits on dynamic obstacles.
func (g *Grid) SetWall(c Cell, on bool) {
	if !g.InBounds(c) || c == g.start || c == g.target {
		return
	}
	cur := g.states[c.Row][c.Col]
	if on && cur == Open {
		g.states[c.Row][c.Col] = StaticWall
	} else if !on && cur == StaticWall {
		g.states[c.Row][c.Col] = Open
	}
}

// SetObstacle marks an Open cell as a dynamic obstacle. Start, Target,
// walls and existing obstacles are left untouched.
func (g *Grid) SetObstacle(c Cell) bool {
	if !g.InBounds(c) || c == g.start || c == g.target {
		return false
	}
	if g.states[c.Row][c.Col] != Open {
		return false
	}
	g.states[c.Row][c.Col] = DynamicObstacle
	return true
}

// ClearDynamic reverts every dynamic obstacle to Open.
func (g *Grid) ClearDynamic() {
	for r := range g.states {
		for c := range g.states[r] {
			if g.states[r][c] == DynamicObstacle {
				g.states[r][c] = Open
			}
		}
	}
}

// Cells iterates all cells in row-major order.
func (g *Grid) Cells() []Cell {
	out := make([]Cell, 0, g.size*g.size)
	for r := 0; r < g.size; r++ {
		for c := 0; c < g.size; c++ {
			out = append(out, Cell{r, c})
		}
	}
	return out
}

// Neighbors returns the reachable neighbors of c in the fixed direction
// order. Orthogonal moves cost 1, diagonal moves cost sqrt(2). A
// diagonal move is refused when both flanking orthogonal cells are
// blocked, so a path never slips through a wall corner.
func (g *Grid) Neighbors(c Cell) []Move {
	moves := make([]Move, 0, 8)
	for _, d := range directions {
		n := Cell{c.Row + d.Row, c.Col + d.Col}
		if g.IsBlocked(n) {
			continue
		}
		cost := 1.0
		if d.Row != 0 && d.Col != 0 {
			if g.IsBlocked(Cell{c.Row + d.Row, c.Col}) && g.IsBlocked(Cell{c.Row, c.Col + d.Col}) {
				continue
			}
			cost = DiagonalCost
		}
		moves = append(moves, Move{Cell: n, Cost: cost})
	}
	return moves
}

// Adjacent reports whether a and b are distinct 8-neighbors.
func Adjacent(a, b Cell) bool {
	dr, dc := a.Row-b.Row, a.Col-b.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return (dr | dc) != 0 && dr <= 1 && dc <= 1
}
