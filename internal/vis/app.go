package vis

import (
	"image/color"

	"gioui.org/app"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/widget/material"

	"github.com/elektrokombinacija/pathfinder-lab/internal/core"
)

// App is the main visualization application.
type App struct {
	session *Session
	theme   *material.Theme
	board   *Board
	toolbar *Toolbar
	panel   *Panel
}

// NewApp creates the application for the given configuration.
func NewApp(cfg core.Config) (*App, error) {
	session, err := NewSession(cfg)
	if err != nil {
		return nil, err
	}
	return &App{
		session: session,
		theme:   material.NewTheme(),
		board:   NewBoard(session),
		toolbar: NewToolbar(session),
		panel:   NewPanel(session),
	}, nil
}

// Run starts the application event loop.
func (a *App) Run(w *app.Window) error {
	var ops op.Ops

	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err

		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)

			a.session.Advance()
			a.layout(gtx)
			e.Frame(gtx.Ops)

			// Keep frames coming while the search is ticking.
			if a.session.Running {
				w.Invalidate()
			}
		}
	}
}

func (a *App) layout(gtx layout.Context) layout.Dimensions {
	paint.Fill(gtx.Ops, color.NRGBA{R: 30, G: 30, B: 35, A: 255})

	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return a.toolbar.Layout(gtx, a.theme)
		}),
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{Axis: layout.Horizontal}.Layout(gtx,
				layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
					return a.board.Layout(gtx, a.theme)
				}),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					return a.panel.Layout(gtx, a.theme)
				}),
			)
		}),
	)
}
