package vis

import (
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/elektrokombinacija/pathfinder-lab/internal/algo"
)

// Toolbar provides algorithm selection, run controls and edit modes.
type Toolbar struct {
	session *Session

	algoBtns map[string]*widget.Clickable

	runBtn   widget.Clickable
	clearBtn widget.Clickable
	resetBtn widget.Clickable

	wallBtn   widget.Clickable
	eraseBtn  widget.Clickable
	startBtn  widget.Clickable
	targetBtn widget.Clickable
}

// NewToolbar creates the toolbar.
func NewToolbar(s *Session) *Toolbar {
	btns := make(map[string]*widget.Clickable, len(algo.Names()))
	for _, name := range algo.Names() {
		btns[name] = new(widget.Clickable)
	}
	return &Toolbar{session: s, algoBtns: btns}
}

// Layout renders the toolbar.
func (t *Toolbar) Layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	height := 48
	rect := image.Rect(0, 0, gtx.Constraints.Max.X, height)
	paint.FillShape(gtx.Ops, color.NRGBA{R: 40, G: 43, B: 48, A: 255}, clip.Rect(rect).Op())

	t.handleClicks(gtx)

	return layout.Inset{Left: unit.Dp(10), Right: unit.Dp(10), Top: unit.Dp(8), Bottom: unit.Dp(8)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle, Spacing: layout.SpaceStart}.Layout(gtx,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return t.layoutAlgoButtons(gtx, th)
			}),
			layout.Rigid(t.separator),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return t.layoutRunControls(gtx, th)
			}),
			layout.Rigid(t.separator),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return t.layoutEditModes(gtx, th)
			}),
			layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
				return layout.Dimensions{}
			}),
		)
	})
}

func (t *Toolbar) layoutAlgoButtons(gtx layout.Context, th *material.Theme) layout.Dimensions {
	children := make([]layout.FlexChild, 0, len(algo.Names())*2)
	for _, name := range algo.Names() {
		name := name
		children = append(children,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return t.button(gtx, th, t.algoBtns[name], name, t.session.Cfg.Algorithm == name)
			}),
			layout.Rigid(layout.Spacer{Width: unit.Dp(4)}.Layout),
		)
	}
	return layout.Flex{Axis: layout.Horizontal, Spacing: layout.SpaceStart}.Layout(gtx, children...)
}

func (t *Toolbar) layoutRunControls(gtx layout.Context, th *material.Theme) layout.Dimensions {
	return layout.Flex{Axis: layout.Horizontal, Spacing: layout.SpaceStart}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			label := "Run"
			if t.session.Running {
				label = "Pause"
			}
			return t.button(gtx, th, &t.runBtn, label, t.session.Running)
		}),
		layout.Rigid(layout.Spacer{Width: unit.Dp(4)}.Layout),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return t.button(gtx, th, &t.clearBtn, "Clear", false)
		}),
		layout.Rigid(layout.Spacer{Width: unit.Dp(4)}.Layout),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return t.button(gtx, th, &t.resetBtn, "Reset Grid", false)
		}),
	)
}

func (t *Toolbar) layoutEditModes(gtx layout.Context, th *material.Theme) layout.Dimensions {
	mode := t.session.Mode
	return layout.Flex{Axis: layout.Horizontal, Spacing: layout.SpaceStart}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return t.button(gtx, th, &t.wallBtn, "Wall", mode == ModePlaceWall)
		}),
		layout.Rigid(layout.Spacer{Width: unit.Dp(2)}.Layout),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return t.button(gtx, th, &t.eraseBtn, "Erase", mode == ModeErase)
		}),
		layout.Rigid(layout.Spacer{Width: unit.Dp(2)}.Layout),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return t.button(gtx, th, &t.startBtn, "Start", mode == ModePlaceStart)
		}),
		layout.Rigid(layout.Spacer{Width: unit.Dp(2)}.Layout),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return t.button(gtx, th, &t.targetBtn, "Target", mode == ModePlaceTarget)
		}),
	)
}

func (t *Toolbar) separator(gtx layout.Context) layout.Dimensions {
	return layout.Inset{Left: unit.Dp(8), Right: unit.Dp(8)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		rect := image.Rect(0, 0, 1, 24)
		paint.FillShape(gtx.Ops, color.NRGBA{R: 60, G: 65, B: 70, A: 255}, clip.Rect(rect).Op())
		return layout.Dimensions{Size: image.Point{X: 1, Y: 24}}
	})
}

func (t *Toolbar) button(gtx layout.Context, th *material.Theme, btn *widget.Clickable, text string, active bool) layout.Dimensions {
	bg := color.NRGBA{R: 55, G: 58, B: 65, A: 255}
	if active {
		bg = color.NRGBA{R: 34, G: 150, B: 94, A: 255}
	}
	if btn.Hovered() {
		bg.R = minU8(bg.R+15, 255)
		bg.G = minU8(bg.G+15, 255)
		bg.B = minU8(bg.B+15, 255)
	}

	return btn.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Background{}.Layout(gtx,
			func(gtx layout.Context) layout.Dimensions {
				gtx.Constraints.Min = image.Point{X: 64, Y: 28}
				rect := image.Rect(0, 0, gtx.Constraints.Min.X, gtx.Constraints.Min.Y)
				paint.FillShape(gtx.Ops, bg, clip.Rect(rect).Op())
				return layout.Dimensions{Size: gtx.Constraints.Min}
			},
			func(gtx layout.Context) layout.Dimensions {
				return layout.Center.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
					label := material.Label(th, 12, text)
					label.Color = color.NRGBA{R: 220, G: 220, B: 220, A: 255}
					return label.Layout(gtx)
				})
			},
		)
	})
}

func (t *Toolbar) handleClicks(gtx layout.Context) {
	for name, btn := range t.algoBtns {
		for btn.Clicked(gtx) {
			t.session.SelectAlgorithm(name)
		}
	}

	for t.runBtn.Clicked(gtx) {
		t.session.Toggle()
	}
	for t.clearBtn.Clicked(gtx) {
		t.session.Restart()
	}
	for t.resetBtn.Clicked(gtx) {
		t.session.ResetGrid()
	}

	for t.wallBtn.Clicked(gtx) {
		t.session.Mode = ModePlaceWall
	}
	for t.eraseBtn.Clicked(gtx) {
		t.session.Mode = ModeErase
	}
	for t.startBtn.Clicked(gtx) {
		t.session.Mode = ModePlaceStart
	}
	for t.targetBtn.Clicked(gtx) {
		t.session.Mode = ModePlaceTarget
	}
}

func minU8(a, b uint8) uint8 {
	if a < b {
		return a
	}
	return b
}
