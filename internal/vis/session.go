// Package vis implements a Gio-based visualization for pathfinder-lab.
package vis

import (
	"time"

	"github.com/elektrokombinacija/pathfinder-lab/internal/core"
	"github.com/elektrokombinacija/pathfinder-lab/internal/sim"
)

// EditMode selects what a board click does.
type EditMode int

const (
	ModePlaceWall EditMode = iota
	ModeErase
	ModePlaceStart
	ModePlaceTarget
)

// Session owns the engine side of the UI: the driver, the run
// configuration, edit state and tick pacing. All mutation happens on
// the frame loop, between driver ticks.
type Session struct {
	Cfg    core.Config
	Driver *sim.Driver

	Mode    EditMode
	Running bool
	Err     error

	StepDelay time.Duration
	lastStep  time.Time
}

// NewSession builds a session from the configuration.
func NewSession(cfg core.Config) (*Session, error) {
	driver, err := sim.NewDriver(cfg, nil)
	if err != nil {
		return nil, err
	}
	return &Session{
		Cfg:       cfg,
		Driver:    driver,
		Mode:      ModePlaceWall,
		StepDelay: 40 * time.Millisecond,
	}, nil
}

// Advance performs driver ticks due since the last frame. Returns true
// when the board changed and needs a redraw.
func (s *Session) Advance() bool {
	if !s.Running || s.Driver.Done() {
		if s.Driver.Done() {
			s.Running = false
		}
		return false
	}
	now := time.Now()
	if now.Sub(s.lastStep) < s.StepDelay {
		return false
	}
	s.lastStep = now
	s.Driver.Tick()
	if s.Driver.Done() {
		s.Running = false
	}
	return true
}

// Toggle starts or pauses the run. Pause is simply "stop ticking".
func (s *Session) Toggle() {
	s.Running = !s.Running
	if s.Running {
		s.lastStep = time.Time{}
	}
}

// Restart discards search state and begins the algorithm again.
func (s *Session) Restart() {
	s.Running = false
	s.Err = s.Driver.Restart(false)
}

// ResetGrid rebuilds an empty grid, dropping walls and obstacles.
func (s *Session) ResetGrid() {
	s.Running = false
	s.rebuild(s.Cfg, false)
}

// SelectAlgorithm switches the active strategy.
func (s *Session) SelectAlgorithm(name string) {
	s.Running = false
	s.Err = s.Driver.SwitchAlgorithm(name)
	if s.Err == nil {
		s.Cfg.Algorithm = name
	}
}

// Click applies the current edit mode to a cell. Edits happen only
// between ticks; the frame loop guarantees that.
func (s *Session) Click(c core.Cell) {
	g := s.Driver.Grid()
	if !g.InBounds(c) {
		return
	}
	switch s.Mode {
	// Wall edits land between ticks; lazy frontier invalidation keeps
	// a running search consistent, so the run is not interrupted.
	case ModePlaceWall:
		g.SetWall(c, g.StateAt(c) != core.StaticWall)
	case ModeErase:
		g.SetWall(c, false)
	case ModePlaceStart:
		if c != g.Target() && !g.IsBlocked(c) {
			cfg := s.Cfg
			cfg.Start = c
			s.rebuild(cfg, true)
		}
	case ModePlaceTarget:
		if c != g.Start() && !g.IsBlocked(c) {
			cfg := s.Cfg
			cfg.Target = c
			s.rebuild(cfg, true)
		}
	}
}

// Drag paints walls while the pointer is held down.
func (s *Session) Drag(c core.Cell) {
	if s.Mode != ModePlaceWall && s.Mode != ModeErase {
		return
	}
	g := s.Driver.Grid()
	if !g.InBounds(c) {
		return
	}
	g.SetWall(c, s.Mode == ModePlaceWall)
}

// rebuild replaces grid and driver. Start/Target moves cannot be
// expressed as in-place edits, so they go through here; keepWalls
// carries the user's static walls onto the new grid.
func (s *Session) rebuild(cfg core.Config, keepWalls bool) {
	grid := core.NewGridFromConfig(cfg)
	if keepWalls {
		old := s.Driver.Grid()
		for _, c := range old.Cells() {
			if old.StateAt(c) == core.StaticWall {
				grid.SetWall(c, true)
			}
		}
	}
	driver, err := sim.NewDriver(cfg, grid)
	if err != nil {
		s.Err = err
		return
	}
	s.Cfg = cfg
	s.Driver = driver
	s.Err = nil
	s.Running = false
}
