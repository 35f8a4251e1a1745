package algo

import (
	"fmt"

	"github.com/elektrokombinacija/pathfinder-lab/internal/core"
)

// ReconstructPath walks parent links from target back to start and
// returns the cells in start-to-target order. Runs in O(path length).
// ErrNoPath means the chain broke before reaching start.
func ReconstructPath(parents map[core.Cell]core.Cell, start, target core.Cell) ([]core.Cell, error) {
	if start == target {
		return []core.Cell{start}, nil
	}

	// Cycle guard: a parent map can hold at most one link per cell.
	maxLen := len(parents) + 1

	path := []core.Cell{target}
	cur := target
	for cur != start {
		p, ok := parents[cur]
		if !ok || len(path) > maxLen {
			return nil, fmt.Errorf("%w: broken at %v", ErrNoPath, cur)
		}
		path = append(path, p)
		cur = p
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}

// PathCost sums move costs along a path of adjacent cells.
func PathCost(path []core.Cell) float64 {
	total := 0.0
	for i := 1; i < len(path); i++ {
		dr := path[i].Row - path[i-1].Row
		dc := path[i].Col - path[i-1].Col
		if dr != 0 && dc != 0 {
			total += core.DiagonalCost
		} else {
			total += 1.0
		}
	}
	return total
}
