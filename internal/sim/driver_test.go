package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elektrokombinacija/pathfinder-lab/internal/algo"
	"github.com/elektrokombinacija/pathfinder-lab/internal/core"
)

func quietConfig(alg string) core.Config {
	cfg := core.DefaultConfig()
	cfg.GridSize = 8
	cfg.Start = core.Cell{Row: 0, Col: 0}
	cfg.Target = core.Cell{Row: 7, Col: 7}
	cfg.Algorithm = alg
	cfg.SpawnProb = 0 // no obstacles unless a test wants them
	return cfg
}

func TestDriverRunsEveryAlgorithmToFound(t *testing.T) {
	for _, name := range algo.Names() {
		t.Run(name, func(t *testing.T) {
			driver, err := NewDriver(quietConfig(name), nil)
			require.NoError(t, err)

			res := driver.Run(100000)
			require.True(t, driver.Done())

			path, valid := driver.Path()
			require.NotEmpty(t, path, "open grid must yield a path")
			assert.True(t, valid)
			assert.Equal(t, "path found", res.Stats.Status)
			assert.Equal(t, len(path)-1, res.Stats.PathLength)
			assert.Greater(t, res.Stats.Expansions, 0)
			assert.Greater(t, res.Stats.Ticks, 0)
		})
	}
}

func TestDriverRejectsBadConfig(t *testing.T) {
	cfg := quietConfig("BFS")
	cfg.SpawnProb = 2
	_, err := NewDriver(cfg, nil)
	assert.ErrorIs(t, err, core.ErrBadSpawnProb)

	cfg = quietConfig("AStar")
	_, err = NewDriver(cfg, nil)
	assert.Error(t, err)
}

func TestDriverInvalidatesPathCrossedByObstacle(t *testing.T) {
	driver, err := NewDriver(quietConfig("BFS"), nil)
	require.NoError(t, err)

	driver.Run(100000)
	path, valid := driver.Path()
	require.True(t, valid)
	require.Greater(t, len(path), 2)

	// Block a mid-path cell the way a wall edit between ticks would.
	mid := path[len(path)/2]
	require.True(t, driver.Grid().SetObstacle(mid))

	res := driver.Tick()
	assert.False(t, res.PathValid, "path through a blocked cell must be invalidated")
	assert.Equal(t, "path blocked", res.Stats.Status)
	// The cached path itself is kept for display, just flagged.
	assert.NotEmpty(t, res.Path)
}

func TestDriverTerminalTicksAreStable(t *testing.T) {
	driver, err := NewDriver(quietConfig("DFS"), nil)
	require.NoError(t, err)

	first := driver.Run(100000)
	again := driver.Tick()
	assert.Equal(t, first.Outcome, again.Outcome)
	assert.Equal(t, first.Stats.Expansions, again.Stats.Expansions)
}

func TestDriverRestartDiscardsSearchState(t *testing.T) {
	driver, err := NewDriver(quietConfig("BFS"), nil)
	require.NoError(t, err)
	driver.Run(100000)
	require.True(t, driver.Done())

	require.NoError(t, driver.Restart(false))
	assert.False(t, driver.Done())
	assert.Equal(t, 0, driver.Stats().Expansions)
	path, _ := driver.Path()
	assert.Empty(t, path)
}

func TestDriverRestartClearsDynamicObstacles(t *testing.T) {
	cfg := quietConfig("BFS")
	cfg.SpawnProb = 0.2
	cfg.MaxSpawnPerTick = 2
	driver, err := NewDriver(cfg, nil)
	require.NoError(t, err)

	driver.Run(100000)
	require.Greater(t, driver.Stats().Spawned, 0, "spawning enabled, expected obstacles")

	require.NoError(t, driver.Restart(true))
	for _, c := range driver.Grid().Cells() {
		assert.NotEqual(t, core.DynamicObstacle, driver.Grid().StateAt(c))
	}
}

func TestDriverSwitchAlgorithm(t *testing.T) {
	driver, err := NewDriver(quietConfig("BFS"), nil)
	require.NoError(t, err)
	driver.Run(100000)

	require.NoError(t, driver.SwitchAlgorithm("UCS"))
	assert.Equal(t, "UCS", driver.Strategy().Name())
	assert.False(t, driver.Done())

	assert.Error(t, driver.SwitchAlgorithm("Greedy"))
}

func TestDriverExhaustsOnEnclosedTarget(t *testing.T) {
	cfg := quietConfig("BFS")
	grid := core.NewGridFromConfig(cfg)
	target := grid.Target()
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			grid.SetWall(core.Cell{Row: target.Row + dr, Col: target.Col + dc}, true)
		}
	}

	driver, err := NewDriver(cfg, grid)
	require.NoError(t, err)
	res := driver.Run(100000)
	assert.Equal(t, algo.Exhausted, res.Outcome.Kind)
	assert.Equal(t, "no path", res.Stats.Status)
	path, _ := driver.Path()
	assert.Empty(t, path)
}
