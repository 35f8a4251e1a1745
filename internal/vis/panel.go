package vis

import (
	"fmt"
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget/material"
)

// Panel shows run statistics and the cell color legend.
type Panel struct {
	session *Session
}

// NewPanel creates the statistics panel.
func NewPanel(s *Session) *Panel {
	return &Panel{session: s}
}

// Layout renders the panel.
func (p *Panel) Layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	width := 220
	gtx.Constraints.Max.X = width
	rect := image.Rect(0, 0, width, gtx.Constraints.Max.Y)
	paint.FillShape(gtx.Ops, color.NRGBA{R: 30, G: 36, B: 48, A: 255}, clip.Rect(rect).Op())

	stats := p.session.Driver.Stats()
	rows := []string{
		"Algorithm: " + p.session.Cfg.Algorithm,
		"Status: " + stats.Status,
		fmt.Sprintf("Nodes expanded: %d", stats.Expansions),
		fmt.Sprintf("Frontier size: %d", stats.FrontierSize),
		fmt.Sprintf("Path length: %d", stats.PathLength),
		fmt.Sprintf("Ticks: %d", stats.Ticks),
		fmt.Sprintf("Obstacles spawned: %d", stats.Spawned),
	}
	if p.session.Err != nil {
		rows = append(rows, "Error: "+p.session.Err.Error())
	}

	legend := []struct {
		label string
		col   color.NRGBA
	}{
		{"Start", colStart},
		{"Target", colTarget},
		{"Wall", colWall},
		{"Obstacle", colObstacle},
		{"Frontier", colFrontier},
		{"Explored", colExplored},
		{"Path", colPath},
	}

	return layout.Inset{Top: unit.Dp(10), Left: unit.Dp(10), Right: unit.Dp(10)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		children := make([]layout.FlexChild, 0, len(rows)+len(legend)+1)
		for _, row := range rows {
			row := row
			children = append(children, layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				label := material.Label(th, 13, row)
				label.Color = color.NRGBA{R: 220, G: 225, B: 235, A: 255}
				return layout.Inset{Bottom: unit.Dp(4)}.Layout(gtx, label.Layout)
			}))
		}
		children = append(children, layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout))
		for _, item := range legend {
			item := item
			children = append(children, layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
					layout.Rigid(func(gtx layout.Context) layout.Dimensions {
						swatch := image.Rect(0, 0, 16, 16)
						paint.FillShape(gtx.Ops, item.col, clip.Rect(swatch).Op())
						return layout.Dimensions{Size: image.Point{X: 16, Y: 16}}
					}),
					layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
					layout.Rigid(func(gtx layout.Context) layout.Dimensions {
						label := material.Label(th, 12, item.label)
						label.Color = color.NRGBA{R: 180, G: 188, B: 200, A: 255}
						return label.Layout(gtx)
					}),
				)
			}), layout.Rigid(layout.Spacer{Height: unit.Dp(4)}.Layout))
		}
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx, children...)
	})
}
