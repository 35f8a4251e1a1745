package algo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elektrokombinacija/pathfinder-lab/internal/core"
)

// buildGrid creates a grid with the given static walls.
func buildGrid(size int, start, target core.Cell, walls ...core.Cell) *core.Grid {
	g := core.NewGrid(size, start, target)
	for _, w := range walls {
		g.SetWall(w, true)
	}
	return g
}

// runToEnd steps a started strategy until it terminates.
func runToEnd(t *testing.T, s Strategy, g *core.Grid) StepOutcome {
	t.Helper()
	n := g.Size() * g.Size()
	budget := 20 * n * n // generous: IDDFS restarts and re-expansions add up
	for i := 0; i < budget; i++ {
		o := s.Step(g)
		if o.Kind != Expanded {
			return o
		}
	}
	t.Fatalf("%s did not terminate within %d steps", s.Name(), budget)
	return StepOutcome{}
}

// searchPath starts and runs a strategy, returning the reconstructed
// path when it found the target, or nil on Exhausted.
func searchPath(t *testing.T, name string, g *core.Grid, p Params) []core.Cell {
	t.Helper()
	s, err := New(name)
	require.NoError(t, err)
	require.NoError(t, s.Start(g, g.Start(), g.Target(), p))

	o := runToEnd(t, s, g)
	if o.Kind == Exhausted {
		return nil
	}
	path, err := ReconstructPath(s.Parents(), g.Start(), g.Target())
	require.NoError(t, err)
	return path
}

// requireValidPath checks the path is a connected sequence of adjacent,
// unblocked, distinct cells from start to target.
func requireValidPath(t *testing.T, g *core.Grid, path []core.Cell) {
	t.Helper()
	require.NotEmpty(t, path)
	require.Equal(t, g.Start(), path[0])
	require.Equal(t, g.Target(), path[len(path)-1])

	seen := map[core.Cell]bool{}
	for i, c := range path {
		require.False(t, g.IsBlocked(c), "path crosses blocked cell %v", c)
		require.False(t, seen[c], "path repeats cell %v", c)
		seen[c] = true
		if i > 0 {
			require.True(t, core.Adjacent(path[i-1], c),
				"path jumps from %v to %v", path[i-1], c)
		}
	}
}

func TestOpenGridDiagonalScenario(t *testing.T) {
	// 5x5, no walls, start (0,0), target (4,4): the optimal route is
	// four diagonal moves.
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			g := buildGrid(5, core.Cell{Row: 0, Col: 0}, core.Cell{Row: 4, Col: 4})
			path := searchPath(t, name, g, Params{DepthLimit: 20})
			require.NotNil(t, path, "expected a path on an open grid")
			requireValidPath(t, g, path)

			switch name {
			case "BFS", "IDDFS", "Bidirectional":
				assert.Len(t, path, 5, "optimal move count is 4")
			case "UCS":
				assert.InDelta(t, 4*math.Sqrt2, PathCost(path), 1e-9)
			}
		})
	}
}

func TestStartEqualsTarget(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			g := core.NewGrid(5, core.Cell{Row: 2, Col: 2}, core.Cell{Row: 4, Col: 4})
			s, err := New(name)
			require.NoError(t, err)
			require.NoError(t, s.Start(g, g.Start(), g.Start(), Params{DepthLimit: 20}))

			o := s.Step(g)
			require.Equal(t, Found, o.Kind, "first step must find the target")

			path, err := ReconstructPath(s.Parents(), g.Start(), g.Start())
			require.NoError(t, err)
			assert.Equal(t, []core.Cell{g.Start()}, path)
		})
	}
}

func TestEnclosedTargetExhausts(t *testing.T) {
	// Target (4,4) walled off on every side that exists.
	walls := []core.Cell{{Row: 3, Col: 3}, {Row: 3, Col: 4}, {Row: 4, Col: 3}}
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			g := buildGrid(6, core.Cell{Row: 0, Col: 0}, core.Cell{Row: 4, Col: 4}, walls...)
			g.SetWall(core.Cell{Row: 3, Col: 5}, true)
			g.SetWall(core.Cell{Row: 5, Col: 3}, true)
			g.SetWall(core.Cell{Row: 5, Col: 5}, true)
			g.SetWall(core.Cell{Row: 4, Col: 5}, true)
			g.SetWall(core.Cell{Row: 5, Col: 4}, true)

			path := searchPath(t, name, g, Params{DepthLimit: 50})
			assert.Nil(t, path, "no route into an enclosed target")
		})
	}
}

func TestUnreachableConfiguration(t *testing.T) {
	g := buildGrid(5, core.Cell{Row: 1, Col: 1}, core.Cell{Row: 3, Col: 3},
		core.Cell{Row: 2, Col: 2})
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			s, err := New(name)
			require.NoError(t, err)
			err = s.Start(g, core.Cell{Row: 2, Col: 2}, g.Target(), Params{})
			assert.ErrorIs(t, err, ErrUnreachableConfig)
		})
	}
}

func TestTerminalIdempotence(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			g := buildGrid(5, core.Cell{Row: 0, Col: 0}, core.Cell{Row: 4, Col: 4})
			s, err := New(name)
			require.NoError(t, err)
			require.NoError(t, s.Start(g, g.Start(), g.Target(), Params{DepthLimit: 20}))

			final := runToEnd(t, s, g)
			require.True(t, s.IsTerminal())

			visited := s.Visited()
			frontier := s.Frontier()
			for i := 0; i < 3; i++ {
				again := s.Step(g)
				assert.Equal(t, final, again)
				assert.Equal(t, visited, s.Visited())
				assert.Equal(t, frontier, s.Frontier())
			}
		})
	}
}

func TestOneExpansionPerStep(t *testing.T) {
	g := buildGrid(8, core.Cell{Row: 0, Col: 0}, core.Cell{Row: 7, Col: 7})
	for _, name := range []string{"BFS", "DFS", "UCS", "DLS"} {
		t.Run(name, func(t *testing.T) {
			s, err := New(name)
			require.NoError(t, err)
			require.NoError(t, s.Start(g, g.Start(), g.Target(), Params{DepthLimit: 30}))

			prev := 0
			for !s.IsTerminal() {
				s.Step(g)
				grown := len(s.Visited()) - prev
				assert.LessOrEqual(t, grown, 1, "more than one expansion in a step")
				prev = len(s.Visited())
			}
		})
	}
}

func TestBFSNeverLongerThanDFS(t *testing.T) {
	pairs := []struct{ start, target core.Cell }{
		{core.Cell{Row: 0, Col: 0}, core.Cell{Row: 6, Col: 6}},
		{core.Cell{Row: 3, Col: 0}, core.Cell{Row: 3, Col: 6}},
		{core.Cell{Row: 6, Col: 0}, core.Cell{Row: 0, Col: 6}},
	}
	for _, p := range pairs {
		bfsPath := searchPath(t, "BFS", buildGrid(7, p.start, p.target), Params{})
		dfsPath := searchPath(t, "DFS", buildGrid(7, p.start, p.target), Params{})
		require.NotNil(t, bfsPath)
		require.NotNil(t, dfsPath)
		assert.LessOrEqual(t, len(bfsPath), len(dfsPath),
			"BFS must not be longer than DFS for %v -> %v", p.start, p.target)
	}
}

func TestUCSCostIsMinimal(t *testing.T) {
	// Wall off the direct diagonal so routes differ per strategy.
	walls := []core.Cell{
		{Row: 1, Col: 1}, {Row: 2, Col: 2}, {Row: 3, Col: 3},
		{Row: 1, Col: 3}, {Row: 3, Col: 1},
	}
	mk := func() *core.Grid {
		return buildGrid(6, core.Cell{Row: 0, Col: 0}, core.Cell{Row: 5, Col: 5}, walls...)
	}

	ucsPath := searchPath(t, "UCS", mk(), Params{})
	require.NotNil(t, ucsPath)
	ucsCost := PathCost(ucsPath)

	for _, name := range []string{"BFS", "DFS", "IDDFS"} {
		other := searchPath(t, name, mk(), Params{})
		require.NotNil(t, other, name)
		assert.LessOrEqual(t, ucsCost, PathCost(other)+1e-9,
			"UCS must not cost more than %s", name)
	}
}

func TestUCSRepushesPendingCellOnCheaperRoute(t *testing.T) {
	// Two walled corridors from (0,0) to the target (2,4). The diagonal
	// staircase (1,1),(2,2),(3,3) pops (3,3) at cost 3*sqrt2 ~ 4.243
	// and discovers the target at 4*sqrt2 ~ 5.657. The top corridor
	// (0,1),(0,2),(0,3),(1,4) pops (1,4) at 3+sqrt2 ~ 4.414, while the
	// target is still pending, and relaxes it to 4+sqrt2 ~ 5.414. The
	// remaining open cells are corner-cut flanks for the staircase.
	open := map[core.Cell]bool{
		{Row: 0, Col: 0}: true, // start
		{Row: 0, Col: 1}: true,
		{Row: 0, Col: 2}: true,
		{Row: 0, Col: 3}: true,
		{Row: 0, Col: 4}: true,
		{Row: 1, Col: 1}: true,
		{Row: 2, Col: 1}: true,
		{Row: 2, Col: 2}: true,
		{Row: 3, Col: 2}: true,
		{Row: 3, Col: 3}: true,
		{Row: 3, Col: 4}: true,
		{Row: 1, Col: 4}: true,
		{Row: 2, Col: 4}: true, // target
	}
	g := core.NewGrid(6, core.Cell{Row: 0, Col: 0}, core.Cell{Row: 2, Col: 4})
	for _, c := range g.Cells() {
		if !open[c] {
			g.SetWall(c, true)
		}
	}

	u := NewUCS()
	require.NoError(t, u.Start(g, g.Start(), g.Target(), Params{}))
	o := runToEnd(t, u, g)
	require.Equal(t, Found, o.Kind)

	cost, ok := u.CostTo(g.Target())
	require.True(t, ok)
	assert.InDelta(t, 4+math.Sqrt2, cost, 1e-9,
		"pending target must be relaxed below the staircase discovery cost 4*sqrt2")

	path, err := ReconstructPath(u.Parents(), g.Start(), g.Target())
	require.NoError(t, err)
	requireValidPath(t, g, path)
	assert.Equal(t, []core.Cell{
		{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2},
		{Row: 0, Col: 3}, {Row: 1, Col: 4}, {Row: 2, Col: 4},
	}, path, "final route must come through the relaxed corridor")
}

func TestIDDFSMatchesBFSLength(t *testing.T) {
	grids := []func() *core.Grid{
		func() *core.Grid {
			return buildGrid(6, core.Cell{Row: 0, Col: 0}, core.Cell{Row: 5, Col: 5})
		},
		func() *core.Grid {
			return buildGrid(6, core.Cell{Row: 0, Col: 0}, core.Cell{Row: 5, Col: 5},
				core.Cell{Row: 2, Col: 2}, core.Cell{Row: 2, Col: 3}, core.Cell{Row: 3, Col: 2})
		},
		func() *core.Grid {
			return buildGrid(7, core.Cell{Row: 6, Col: 0}, core.Cell{Row: 0, Col: 6},
				core.Cell{Row: 3, Col: 1}, core.Cell{Row: 3, Col: 2}, core.Cell{Row: 3, Col: 3},
				core.Cell{Row: 3, Col: 4}, core.Cell{Row: 3, Col: 5})
		},
	}
	for i, mk := range grids {
		bfsPath := searchPath(t, "BFS", mk(), Params{})
		iddfsPath := searchPath(t, "IDDFS", mk(), Params{})
		require.NotNil(t, bfsPath, "grid %d", i)
		require.NotNil(t, iddfsPath, "grid %d", i)
		assert.Equal(t, len(bfsPath), len(iddfsPath), "grid %d", i)
	}
}

func TestDLSExhaustsBeyondLimit(t *testing.T) {
	// Shortest route on an open 10x10 from corner to corner is 9 moves.
	g := buildGrid(10, core.Cell{Row: 0, Col: 0}, core.Cell{Row: 9, Col: 9})

	path := searchPath(t, "DLS", g, Params{DepthLimit: 4})
	assert.Nil(t, path, "limit below the true distance must exhaust")

	g = buildGrid(10, core.Cell{Row: 0, Col: 0}, core.Cell{Row: 9, Col: 9})
	path = searchPath(t, "DLS", g, Params{DepthLimit: 9})
	require.NotNil(t, path, "limit at the true distance must succeed")
	requireValidPath(t, g, path)
}

func TestDLSZeroLimitOnlyExpandsStart(t *testing.T) {
	g := buildGrid(5, core.Cell{Row: 0, Col: 0}, core.Cell{Row: 4, Col: 4})
	path := searchPath(t, "DLS", g, Params{DepthLimit: 0})
	assert.Nil(t, path)
}

func TestBidirectionalPathValidWithWalls(t *testing.T) {
	g := buildGrid(8, core.Cell{Row: 0, Col: 0}, core.Cell{Row: 7, Col: 7},
		core.Cell{Row: 2, Col: 0}, core.Cell{Row: 2, Col: 1}, core.Cell{Row: 2, Col: 2},
		core.Cell{Row: 2, Col: 3}, core.Cell{Row: 2, Col: 4}, core.Cell{Row: 2, Col: 5},
		core.Cell{Row: 5, Col: 7}, core.Cell{Row: 5, Col: 6}, core.Cell{Row: 5, Col: 5},
		core.Cell{Row: 5, Col: 4}, core.Cell{Row: 5, Col: 3})
	path := searchPath(t, "Bidirectional", g, Params{})
	require.NotNil(t, path)
	requireValidPath(t, g, path)
}

func TestLazyFrontierInvalidation(t *testing.T) {
	g := buildGrid(7, core.Cell{Row: 0, Col: 0}, core.Cell{Row: 6, Col: 6})
	s := NewBFS()
	require.NoError(t, s.Start(g, g.Start(), g.Target(), Params{}))

	// Discover some frontier, then block one of its cells between
	// steps, as the injector would.
	for i := 0; i < 3; i++ {
		s.Step(g)
	}
	frontier := s.Frontier()
	require.NotEmpty(t, frontier)
	blocked := frontier[len(frontier)-1]
	require.True(t, g.SetObstacle(blocked))

	runToEnd(t, s, g)
	for _, c := range s.Visited() {
		assert.NotEqual(t, blocked, c, "blocked frontier entry must be skipped, not expanded")
	}
}

func TestVisitedNeverReexpanded(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			g := buildGrid(6, core.Cell{Row: 0, Col: 0}, core.Cell{Row: 5, Col: 5},
				core.Cell{Row: 2, Col: 2}, core.Cell{Row: 3, Col: 2})
			s, err := New(name)
			require.NoError(t, err)
			require.NoError(t, s.Start(g, g.Start(), g.Target(), Params{DepthLimit: 20}))
			runToEnd(t, s, g)

			seen := map[core.Cell]bool{}
			for _, c := range s.Visited() {
				assert.False(t, seen[c], "cell %v listed twice in visited", c)
				seen[c] = true
			}
		})
	}
}

func TestUnknownAlgorithm(t *testing.T) {
	_, err := New("Dijkstra")
	assert.Error(t, err)
}
