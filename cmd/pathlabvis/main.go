// Command pathlabvis provides a GUI visualization for the stepwise
// search engine.
package main

import (
	"log"
	"os"

	"gioui.org/app"
	"gioui.org/unit"

	"github.com/elektrokombinacija/pathfinder-lab/internal/core"
	"github.com/elektrokombinacija/pathfinder-lab/internal/vis"
)

func main() {
	go func() {
		window := new(app.Window)
		window.Option(
			app.Title("Pathfinder Lab"),
			app.Size(unit.Dp(1000), unit.Dp(800)),
		)

		application, err := vis.NewApp(core.DefaultConfig())
		if err != nil {
			log.Fatal(err)
		}
		if err := application.Run(window); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}
