package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elektrokombinacija/pathfinder-lab/internal/core"
)

func TestInjectorDeterministicForSeed(t *testing.T) {
	spawn := func() []core.Cell {
		g := core.NewGrid(10, core.Cell{Row: 0, Col: 0}, core.Cell{Row: 9, Col: 9})
		in := NewInjector(0.1, 100, 7)
		var all []core.Cell
		for i := 0; i < 5; i++ {
			all = append(all, in.MaybeSpawn(g, nil)...)
		}
		return all
	}

	first := spawn()
	second := spawn()
	require.NotEmpty(t, first, "0.1 over 5 ticks on 100 cells should spawn something")
	assert.Equal(t, first, second, "same seed must replay the same spawns")
}

func TestInjectorNeverBlocksEndpointsOrExcluded(t *testing.T) {
	g := core.NewGrid(8, core.Cell{Row: 1, Col: 1}, core.Cell{Row: 6, Col: 6})
	exclude := map[core.Cell]bool{
		{Row: 3, Col: 3}: true,
		{Row: 4, Col: 4}: true,
	}

	in := NewInjector(1.0, 1000, 1)
	spawned := in.MaybeSpawn(g, exclude)
	require.NotEmpty(t, spawned)

	for _, c := range spawned {
		assert.NotEqual(t, g.Start(), c)
		assert.NotEqual(t, g.Target(), c)
		assert.False(t, exclude[c], "excluded cell %v was blocked", c)
	}
	assert.Equal(t, core.Open, g.StateAt(core.Cell{Row: 3, Col: 3}))
	assert.Equal(t, core.Start, g.StateAt(g.Start()))
}

func TestInjectorRespectsPerTickCap(t *testing.T) {
	g := core.NewGrid(10, core.Cell{Row: 0, Col: 0}, core.Cell{Row: 9, Col: 9})
	in := NewInjector(1.0, 4, 3)
	assert.Len(t, in.MaybeSpawn(g, nil), 4)
}

func TestInjectorZeroProbability(t *testing.T) {
	g := core.NewGrid(10, core.Cell{Row: 0, Col: 0}, core.Cell{Row: 9, Col: 9})
	in := NewInjector(0, 10, 3)
	assert.Empty(t, in.MaybeSpawn(g, nil))
}
