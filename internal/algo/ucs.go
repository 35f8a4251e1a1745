package algo

import (
	"container/heap"

	"github.com/elektrokombinacija/pathfinder-lab/internal/core"
)

// ucsNode is a priority queue element.
type ucsNode struct {
	cell  core.Cell
	cost  float64
	seq   int // insertion order, stable tiebreak
	index int // heap index
}

// ucsHeap implements heap.Interface ordered by cost, then insertion.
type ucsHeap []*ucsNode

func (h ucsHeap) Len() int { return len(h) }
func (h ucsHeap) Less(i, j int) bool {
	if h[i].cost != h[j].cost {
		return h[i].cost < h[j].cost
	}
	return h[i].seq < h[j].seq
}
func (h ucsHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}
func (h *ucsHeap) Push(x any) {
	n := x.(*ucsNode)
	n.index = len(*h)
	*h = append(*h, n)
}
func (h *ucsHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	old[n-1] = nil
	*h = old[0 : n-1]
	return x
}

// UCS expands cells in order of accumulated path cost. A cell may be
// re-pushed with a lower cost while still pending; once popped it is
// finalized and stale duplicates are discarded on pop.
type UCS struct {
	start, target core.Cell

	open    ucsHeap
	seq     int
	best    map[core.Cell]float64 // cheapest known cost per pending cell
	visited []core.Cell
	done    map[core.Cell]bool // finalized cells
	parents map[core.Cell]core.Cell
	costs   map[core.Cell]float64 // finalized costs

	terminal bool
	outcome  StepOutcome
}

// NewUCS creates an uninitialized uniform-cost strategy.
func NewUCS() *UCS { return &UCS{} }

func (u *UCS) Name() string { return "UCS" }

func (u *UCS) Start(g *core.Grid, start, target core.Cell, _ Params) error {
	if err := checkEndpoints(g, start, target); err != nil {
		return err
	}
	u.start, u.target = start, target
	u.open = ucsHeap{}
	heap.Init(&u.open)
	u.seq = 0
	u.best = map[core.Cell]float64{start: 0}
	u.visited = nil
	u.done = map[core.Cell]bool{}
	u.parents = map[core.Cell]core.Cell{}
	u.costs = map[core.Cell]float64{}
	u.terminal = false
	u.outcome = StepOutcome{}
	u.push(start, 0)
	return nil
}

func (u *UCS) push(c core.Cell, cost float64) {
	heap.Push(&u.open, &ucsNode{cell: c, cost: cost, seq: u.seq})
	u.seq++
}

func (u *UCS) Step(g *core.Grid) StepOutcome {
	if u.terminal {
		return u.outcome
	}

	// Pop past finalized duplicates and lazily invalidated cells.
	var cur *ucsNode
	for u.open.Len() > 0 {
		n := heap.Pop(&u.open).(*ucsNode)
		if u.done[n.cell] || g.IsBlocked(n.cell) {
			continue
		}
		cur = n
		break
	}
	if cur == nil {
		return u.finish(StepOutcome{Kind: Exhausted})
	}

	u.done[cur.cell] = true
	u.costs[cur.cell] = cur.cost
	u.visited = append(u.visited, cur.cell)

	if cur.cell == u.target {
		return u.finish(StepOutcome{Kind: Found, Cell: cur.cell})
	}

	var discovered []core.Cell
	for _, m := range g.Neighbors(cur.cell) {
		if u.done[m.Cell] {
			continue
		}
		nc := cur.cost + m.Cost
		if prev, ok := u.best[m.Cell]; ok && prev <= nc {
			continue
		}
		_, pending := u.best[m.Cell]
		u.best[m.Cell] = nc
		u.parents[m.Cell] = cur.cell
		u.push(m.Cell, nc)
		if !pending {
			discovered = append(discovered, m.Cell)
		}
	}

	return StepOutcome{Kind: Expanded, Cell: cur.cell, Discovered: discovered}
}

func (u *UCS) finish(o StepOutcome) StepOutcome {
	u.terminal = true
	u.outcome = o
	return o
}

func (u *UCS) IsTerminal() bool { return u.terminal }

func (u *UCS) Frontier() []core.Cell {
	out := make([]core.Cell, 0, u.open.Len())
	dup := make(map[core.Cell]bool, u.open.Len())
	for _, n := range u.open {
		if u.done[n.cell] || dup[n.cell] {
			continue
		}
		dup[n.cell] = true
		out = append(out, n.cell)
	}
	return out
}

func (u *UCS) Visited() []core.Cell {
	out := make([]core.Cell, len(u.visited))
	copy(out, u.visited)
	return out
}

func (u *UCS) Parents() map[core.Cell]core.Cell { return u.parents }

// CostTo returns the finalized cost of a visited cell.
func (u *UCS) CostTo(c core.Cell) (float64, bool) {
	cost, ok := u.costs[c]
	return cost, ok
}
