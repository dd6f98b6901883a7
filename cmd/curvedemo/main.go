// Command curvedemo builds a small scene, drives it with a scripted drag
// and saves the result as a PNG.
package main

import (
	"flag"
	"log"
	"log/slog"
	"math"
	"os"

	"github.com/gogpu/curvekit"
	"github.com/gogpu/curvekit/integration/ggsurface"
	"github.com/gogpu/curvekit/internal/panel"
)

func main() {
	var (
		width   = flag.Int("width", 800, "image width")
		height  = flag.Int("height", 600, "image height")
		output  = flag.String("output", "curves.png", "output file")
		ticks   = flag.Bool("ticks", false, "draw segment ticks on curves")
		verbose = flag.Bool("v", false, "log controller events")
	)
	flag.Parse()

	if *verbose {
		curvekit.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	surface, err := ggsurface.New(*width, *height)
	if err != nil {
		log.Fatalf("Failed to create surface: %v", err)
	}
	defer surface.Close()

	scene, bezier := buildScene(*ticks)
	ctrl := curvekit.NewController(scene, surface, curvekit.WithBackground("#F8F8F0"))
	p := panel.New(ctrl)

	// Select the Bézier curve and pull its second tangent point down.
	ctrl.Select(bezier)
	drag(ctrl, bezier.P2, curvekit.Pt(bezier.P2.X+40, bezier.P2.Y+120))

	if err := surface.Label(p.Summary(), 12, float64(*height)-14, "#333333"); err != nil {
		log.Printf("Label: %v", err)
	}

	if err := surface.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Demo saved to %s (%dx%d)\n", *output, *width, *height)
}

func buildScene(ticks bool) (*curvekit.Scene, *curvekit.BezierCurve) {
	line := curvekit.NewLine(curvekit.Pt(60, 60), curvekit.Pt(300, 140), curvekit.DrawStyle{Width: 2, Color: "#AA3300"})
	circle := curvekit.NewCircle(curvekit.Pt(600, 150), 80, curvekit.DrawStyle{Width: 3, Color: "#3366CC", Fill: true})

	spiral := curvekit.NewParametricCurve(
		"200 + 12*t*cos(t)", "400 + 12*t*sin(t)",
		0, 4*math.Pi, 120, ticks,
		curvekit.DrawStyle{Width: 2, Color: "#228822"},
	)
	lissajous := curvekit.NewParametricCurve(
		"600 + 120*Math.sin(3*t)", "420 + 90*Math.sin(2*t)",
		0, 2*math.Pi, 200, ticks,
		curvekit.DrawStyle{Width: 2, Color: "#884488"},
	)

	bezier := curvekit.NewBezierCurve(
		curvekit.Pt(340, 520), curvekit.Pt(380, 300), curvekit.Pt(520, 300), curvekit.Pt(560, 520),
		40, ticks, curvekit.DefaultStyle(),
	)
	return curvekit.NewScene(line, circle, spiral, lissajous, bezier), bezier
}

// drag presses at from, moves in ten steps to to and releases.
func drag(ctrl *curvekit.Controller, from, to curvekit.Point) {
	const steps = 10
	ctrl.PointerDown(from)
	for i := 1; i <= steps; i++ {
		ctrl.PointerMove(from.Lerp(to, float64(i)/steps))
	}
	ctrl.PointerUp(to)
}
