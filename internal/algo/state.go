package algo

import "github.com/elektrokombinacija/pathfinder-lab/internal/core"

// entry is a frontier element for the list-backed strategies.
type entry struct {
	cell  core.Cell
	depth int
}

// searchState is the book-keeping shared by the list-backed strategies
// (BFS, DFS, DLS and the bidirectional halves). It tracks discovered
// cells, expansion order and parent links; the owning strategy supplies
// the frontier discipline via expandList's arguments.
type searchState struct {
	start, target core.Cell

	frontier  []entry
	bestDepth map[core.Cell]int
	visited   []core.Cell
	visitSet  map[core.Cell]bool
	parents   map[core.Cell]core.Cell

	terminal bool
	outcome  StepOutcome
}

func newSearchState(start, target core.Cell) *searchState {
	s := &searchState{
		start:     start,
		target:    target,
		bestDepth: map[core.Cell]int{start: 0},
		visitSet:  map[core.Cell]bool{},
		parents:   map[core.Cell]core.Cell{},
	}
	s.frontier = append(s.frontier, entry{cell: start})
	return s
}

// markVisited records one expansion, once per cell.
func (s *searchState) markVisited(c core.Cell) {
	if !s.visitSet[c] {
		s.visitSet[c] = true
		s.visited = append(s.visited, c)
	}
}

// finish latches a terminal outcome; later Step calls replay it.
func (s *searchState) finish(o StepOutcome) StepOutcome {
	s.terminal = true
	s.outcome = o
	return o
}

func (s *searchState) frontierCells() []core.Cell {
	out := make([]core.Cell, 0, len(s.frontier))
	dup := make(map[core.Cell]bool, len(s.frontier))
	for _, e := range s.frontier {
		if dup[e.cell] {
			continue
		}
		dup[e.cell] = true
		out = append(out, e.cell)
	}
	return out
}

func (s *searchState) visitedCells() []core.Cell {
	out := make([]core.Cell, len(s.visited))
	copy(out, s.visited)
	return out
}

// expandList performs one expansion for a list-backed strategy.
//
// lifo selects DFS order; pushes are then reversed so the
// first-ordered neighbor is expanded next. limit, when >= 0, is the
// DLS depth ceiling: cells sitting at the limit expand to nothing.
//
// Depth-limited callers (limit >= 0) get shallower-rediscovery
// re-pushes: a cell reached again on a strictly shorter route re-enters
// the frontier, the depth analogue of UCS re-pushing on a cheaper path.
// Unlimited callers dedupe on first discovery.
func (s *searchState) expandList(g *core.Grid, lifo bool, limit int) StepOutcome {
	if s.terminal {
		return s.outcome
	}

	// Pop, discarding entries whose cell was blocked after discovery
	// (lazy invalidation of dynamic obstacles) and entries obsoleted
	// by a shallower rediscovery.
	var cur entry
	for {
		if len(s.frontier) == 0 {
			return s.finish(StepOutcome{Kind: Exhausted})
		}
		if lifo {
			cur = s.frontier[len(s.frontier)-1]
			s.frontier = s.frontier[:len(s.frontier)-1]
		} else {
			cur = s.frontier[0]
			s.frontier = s.frontier[1:]
		}
		if g.IsBlocked(cur.cell) {
			continue
		}
		if best, ok := s.bestDepth[cur.cell]; ok && cur.depth > best {
			continue
		}
		break
	}

	s.markVisited(cur.cell)
	if cur.cell == s.target {
		return s.finish(StepOutcome{Kind: Found, Cell: cur.cell})
	}

	var discovered []core.Cell
	if limit < 0 || cur.depth < limit {
		moves := g.Neighbors(cur.cell)
		if lifo {
			for i, j := 0, len(moves)-1; i < j; i, j = i+1, j-1 {
				moves[i], moves[j] = moves[j], moves[i]
			}
		}
		nd := cur.depth + 1
		for _, m := range moves {
			best, seen := s.bestDepth[m.Cell]
			if seen && (limit < 0 || nd >= best) {
				continue
			}
			s.bestDepth[m.Cell] = nd
			s.parents[m.Cell] = cur.cell
			s.frontier = append(s.frontier, entry{cell: m.Cell, depth: nd})
			if !seen {
				discovered = append(discovered, m.Cell)
			}
		}
	}

	return StepOutcome{Kind: Expanded, Cell: cur.cell, Discovered: discovered}
}
