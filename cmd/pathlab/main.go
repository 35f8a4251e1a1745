// Command pathlab runs the stepwise search engine headless and logs
// the outcome, for benchmarking and scripted comparisons.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/elektrokombinacija/pathfinder-lab/internal/algo"
	"github.com/elektrokombinacija/pathfinder-lab/internal/core"
	"github.com/elektrokombinacija/pathfinder-lab/internal/sim"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type options struct {
	size      int
	algorithm string
	depth     int
	spawnProb float64
	spawnCap  int
	seed      int64
	maxTicks  int
	walls     []string
	all       bool
}

func newRootCmd() *cobra.Command {
	opts := options{}
	def := core.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "pathlab",
		Short: "Run uninformed grid searches one expansion at a time",
		Long: "pathlab runs one of six uninformed search strategies (" +
			strings.Join(algo.Names(), ", ") +
			") on an N x N grid, stepping one expansion per tick while dynamic obstacles spawn mid-run.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}

	cmd.Flags().IntVar(&opts.size, "size", def.GridSize, "grid dimension N")
	cmd.Flags().StringVar(&opts.algorithm, "algo", def.Algorithm, "algorithm: "+strings.Join(algo.Names(), "|"))
	cmd.Flags().IntVar(&opts.depth, "depth-limit", def.DepthLimit, "DLS depth ceiling")
	cmd.Flags().Float64Var(&opts.spawnProb, "spawn-prob", 0, "per-cell obstacle spawn probability per tick")
	cmd.Flags().IntVar(&opts.spawnCap, "spawn-cap", def.MaxSpawnPerTick, "max obstacle spawns per tick")
	cmd.Flags().Int64Var(&opts.seed, "seed", def.Seed, "obstacle RNG seed")
	cmd.Flags().IntVar(&opts.maxTicks, "max-ticks", 100000, "tick budget before giving up")
	cmd.Flags().StringSliceVar(&opts.walls, "walls", nil, "static wall cell as r,c (repeatable)")
	cmd.Flags().BoolVar(&opts.all, "all", false, "run every algorithm and compare")

	return cmd
}

func run(opts options) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	names := []string{opts.algorithm}
	if opts.all {
		names = algo.Names()
	}

	for _, name := range names {
		cfg := core.DefaultConfig()
		cfg.GridSize = opts.size
		cfg.Start = core.Cell{Row: 1, Col: 1}
		cfg.Target = core.Cell{Row: opts.size - 2, Col: opts.size - 2}
		cfg.Algorithm = name
		cfg.DepthLimit = opts.depth
		cfg.SpawnProb = opts.spawnProb
		cfg.MaxSpawnPerTick = opts.spawnCap
		cfg.Seed = opts.seed

		grid := core.NewGridFromConfig(cfg)
		if err := applyWalls(grid, opts.walls); err != nil {
			return err
		}

		driver, err := sim.NewDriver(cfg, grid)
		if err != nil {
			if errors.Is(err, algo.ErrUnreachableConfig) {
				logger.Error("unreachable configuration", "algo", name, "err", err)
			}
			return err
		}

		res := driver.Run(opts.maxTicks)
		stats := res.Stats
		logger.Info("run finished",
			"algo", name,
			"status", stats.Status,
			"expansions", stats.Expansions,
			"ticks", stats.Ticks,
			"path_length", stats.PathLength,
			"path_cost", fmt.Sprintf("%.3f", algo.PathCost(res.Path)),
			"path_valid", res.PathValid,
			"obstacles", stats.Spawned,
		)
	}
	return nil
}

// applyWalls parses repeated "r,c" flags into static walls.
func applyWalls(g *core.Grid, walls []string) error {
	for _, w := range walls {
		parts := strings.SplitN(w, ",", 2)
		if len(parts) != 2 {
			return fmt.Errorf("bad wall %q: want r,c", w)
		}
		r, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
		c, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err1 != nil || err2 != nil {
			return fmt.Errorf("bad wall %q: want r,c", w)
		}
		g.SetWall(core.Cell{Row: r, Col: c}, true)
	}
	return nil
}
