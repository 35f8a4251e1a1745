// Package core defines the grid domain model for pathfinder-lab.
package core

import "fmt"

// Cell is a grid coordinate. Value identity: two cells with equal
// row/col are the same cell.
type Cell struct {
	Row, Col int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// CellState classifies what occupies a cell.
type CellState int

const (
	Open CellState = iota
	StaticWall
	DynamicObstacle
	Start
	Target
)

func (s CellState) String() string {
	return [...]string{"Open", "StaticWall", "DynamicObstacle", "Start", "Target"}[s]
}

// Blocked reports whether the state is impassable.
func (s CellState) Blocked() bool {
	return s == StaticWall || s == DynamicObstacle
}
