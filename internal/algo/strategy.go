// Package algo implements stepwise uninformed search strategies.
//
// Every strategy advances by exactly one expansion per Step call so the
// driver can interleave rendering and grid mutation between steps
// without breaking frontier/visited invariants.
package algo

import (
	"errors"
	"fmt"

	"github.com/elektrokombinacija/pathfinder-lab/internal/core"
)

// Strategy is the shared stepping contract for all search variants.
type Strategy interface {
	// Start initializes the search. It fails with ErrUnreachableConfig
	// when the start or target cell is blocked at init time.
	Start(g *core.Grid, start, target core.Cell, p Params) error

	// Step performs exactly one expansion against the current grid.
	// Calling Step on a terminal strategy returns the terminal outcome
	// again without mutating state.
	Step(g *core.Grid) StepOutcome

	// IsTerminal reports whether the search has finished.
	IsTerminal() bool

	// Frontier returns the pending cells in container order.
	Frontier() []core.Cell

	// Visited returns expanded cells in expansion order.
	Visited() []core.Cell

	// Parents returns the parent-link map for path reconstruction.
	// The start cell has no entry.
	Parents() map[core.Cell]core.Cell

	// Name returns the algorithm name.
	Name() string
}

// Params carries per-strategy tunables.
type Params struct {
	DepthLimit int // DLS ceiling; ignored by other strategies
}

// OutcomeKind classifies a step result.
type OutcomeKind int

const (
	Expanded OutcomeKind = iota
	Found
	Exhausted
)

func (k OutcomeKind) String() string {
	return [...]string{"Expanded", "Found", "Exhausted"}[k]
}

// StepOutcome describes one expansion. For Expanded, Cell is the
// expanded cell and Discovered lists newly pushed neighbors. For Found,
// Cell is the target.
type StepOutcome struct {
	Kind       OutcomeKind
	Cell       core.Cell
	Discovered []core.Cell
}

var (
	// ErrUnreachableConfig means start or target was blocked at Start
	// time, so the search was never begun.
	ErrUnreachableConfig = errors.New("start or target cell is blocked")

	// ErrNoPath means a parent chain did not reach the start cell.
	ErrNoPath = errors.New("no parent chain to start")

	errUnknownAlgorithm = errors.New("unknown algorithm")
)

// Names lists the available algorithms in presentation order.
func Names() []string {
	return []string{"BFS", "DFS", "UCS", "DLS", "IDDFS", "Bidirectional"}
}

// New returns the strategy registered under name.
func New(name string) (Strategy, error) {
	switch name {
	case "BFS":
		return NewBFS(), nil
	case "DFS":
		return NewDFS(), nil
	case "UCS":
		return NewUCS(), nil
	case "DLS":
		return NewDLS(), nil
	case "IDDFS":
		return NewIDDFS(), nil
	case "Bidirectional":
		return NewBidirectional(), nil
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownAlgorithm, name)
	}
}

// checkEndpoints validates the start/target configuration.
func checkEndpoints(g *core.Grid, start, target core.Cell) error {
	if !g.InBounds(start) || !g.InBounds(target) {
		return fmt.Errorf("%w: start=%v target=%v", ErrUnreachableConfig, start, target)
	}
	if g.IsBlocked(start) || g.IsBlocked(target) {
		return fmt.Errorf("%w: start=%v target=%v", ErrUnreachableConfig, start, target)
	}
	return nil
}
