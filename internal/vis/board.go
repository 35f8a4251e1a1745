package vis

import (
	"image"
	"image/color"

	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/widget/material"

	"github.com/elektrokombinacija/pathfinder-lab/internal/core"
)

// Cell palette, carried over from the reference color scheme.
var (
	colBG       = color.NRGBA{R: 15, G: 23, B: 42, A: 255}
	colGridLine = color.NRGBA{R: 40, G: 55, B: 75, A: 255}
	colOpen     = color.NRGBA{R: 51, G: 65, B: 85, A: 255}
	colWall     = color.NRGBA{R: 20, G: 20, B: 25, A: 255}
	colObstacle = color.NRGBA{R: 120, G: 70, B: 30, A: 255}
	colStart    = color.NRGBA{R: 34, G: 197, B: 94, A: 255}
	colTarget   = color.NRGBA{R: 239, G: 68, B: 68, A: 255}
	colFrontier = color.NRGBA{R: 59, G: 130, B: 246, A: 255}
	colExplored = color.NRGBA{R: 139, G: 60, B: 210, A: 255}
	colPath     = color.NRGBA{R: 250, G: 204, B: 21, A: 255}
	colPathDead = color.NRGBA{R: 140, G: 120, B: 40, A: 255}
)

// Board renders the grid and routes pointer edits to the session.
type Board struct {
	session  *Session
	cellSize int
	dragging bool
	lastDrag core.Cell
}

// NewBoard creates the board widget.
func NewBoard(s *Session) *Board {
	return &Board{session: s, cellSize: 24}
}

// Layout draws the grid and processes pointer events.
func (b *Board) Layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	g := b.session.Driver.Grid()
	n := g.Size()

	// Fit the board into the available area.
	avail := gtx.Constraints.Max
	b.cellSize = min(avail.X, avail.Y) / n
	if b.cellSize < 4 {
		b.cellSize = 4
	}
	side := b.cellSize * n

	defer clip.Rect(image.Rect(0, 0, side, side)).Push(gtx.Ops).Pop()
	paint.Fill(gtx.Ops, colBG)

	b.handlePointer(gtx)

	// Overlay sets: frontier, explored, path.
	strategy := b.session.Driver.Strategy()
	frontier := cellSet(strategy.Frontier())
	explored := cellSet(strategy.Visited())
	path, pathValid := b.session.Driver.Path()
	onPath := cellSet(path)

	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			cell := core.Cell{Row: r, Col: c}
			b.fillCell(gtx, r, c, b.cellColor(g, cell, frontier, explored, onPath, pathValid))
		}
	}

	return layout.Dimensions{Size: image.Point{X: side, Y: side}}
}

// cellColor picks the overlay color with the reference precedence:
// start/target, path, explored, frontier, grid state.
func (b *Board) cellColor(g *core.Grid, c core.Cell, frontier, explored, onPath map[core.Cell]bool, pathValid bool) color.NRGBA {
	switch {
	case c == g.Start():
		return colStart
	case c == g.Target():
		return colTarget
	case onPath[c]:
		if pathValid {
			return colPath
		}
		return colPathDead
	case explored[c]:
		return colExplored
	case frontier[c]:
		return colFrontier
	}
	switch g.StateAt(c) {
	case core.StaticWall:
		return colWall
	case core.DynamicObstacle:
		return colObstacle
	default:
		return colOpen
	}
}

func (b *Board) fillCell(gtx layout.Context, row, col int, col8 color.NRGBA) {
	x := col * b.cellSize
	y := row * b.cellSize
	outer := image.Rect(x, y, x+b.cellSize, y+b.cellSize)
	paint.FillShape(gtx.Ops, colGridLine, clip.Rect(outer).Op())
	inner := image.Rect(x+1, y+1, x+b.cellSize-1, y+b.cellSize-1)
	paint.FillShape(gtx.Ops, col8, clip.Rect(inner).Op())
}

func (b *Board) handlePointer(gtx layout.Context) {
	n := b.session.Driver.Grid().Size()
	side := b.cellSize * n
	area := clip.Rect(image.Rect(0, 0, side, side)).Push(gtx.Ops)
	event.Op(gtx.Ops, b)
	area.Pop()

	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target: b,
			Kinds:  pointer.Press | pointer.Drag | pointer.Release,
		})
		if !ok {
			break
		}
		pe, ok := ev.(pointer.Event)
		if !ok {
			continue
		}
		cell := core.Cell{
			Row: int(pe.Position.Y) / b.cellSize,
			Col: int(pe.Position.X) / b.cellSize,
		}
		switch pe.Kind {
		case pointer.Press:
			if pe.Buttons.Contain(pointer.ButtonPrimary) {
				b.dragging = true
				b.lastDrag = cell
				b.session.Click(cell)
			}
		case pointer.Drag:
			if b.dragging && cell != b.lastDrag {
				b.lastDrag = cell
				b.session.Drag(cell)
			}
		case pointer.Release:
			b.dragging = false
		}
	}
}

func cellSet(cells []core.Cell) map[core.Cell]bool {
	set := make(map[core.Cell]bool, len(cells))
	for _, c := range cells {
		set[c] = true
	}
	return set
}
