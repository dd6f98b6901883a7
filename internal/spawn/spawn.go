// Package spawn creates randomly placed primitives for the "new object"
// actions of the frontends.
package spawn

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"strconv"

	"github.com/gogpu/curvekit"
)

// ErrUnknownKind is returned by Spawn for an unsupported primitive kind.
var ErrUnknownKind = errors.New("spawn: unknown kind")

// Kinds lists the primitive kinds Spawn accepts.
var Kinds = []string{"line", "circle", "parametric", "bezier"}

// margin keeps random points this far from the canvas border.
const margin = 5

// Generator produces random primitives that fit a canvas.
type Generator struct {
	rng           *rand.Rand
	width, height int

	// Segments and Ticks are used for new curves.
	Segments int
	Ticks    bool

	// TMin and TMax are the parameter range of new parametric curves.
	TMin, TMax float64
}

// New creates a generator for a width x height canvas. The same seed
// yields the same sequence of primitives.
func New(width, height int, seed uint64) *Generator {
	return &Generator{
		rng:      rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		width:    width,
		height:   height,
		Segments: 20,
		TMin:     0,
		TMax:     2 * math.Pi,
	}
}

// Spawn creates a primitive of the given kind.
func (g *Generator) Spawn(kind string) (curvekit.Primitive, error) {
	switch kind {
	case "line":
		return g.Line(), nil
	case "circle":
		return g.Circle(), nil
	case "parametric":
		return g.Parametric("", ""), nil
	case "bezier":
		return g.Bezier(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
}

// Line returns a random line.
func (g *Generator) Line() *curvekit.Line {
	return curvekit.NewLine(g.Point(), g.Point(), g.Style())
}

// Circle returns a random circle.
func (g *Generator) Circle() *curvekit.Circle {
	return curvekit.NewCircle(g.Point(), g.Radius(), g.Style())
}

// Parametric returns a parametric curve over [TMin, TMax]. Empty formulas
// are replaced by a random ellipse-like curve.
func (g *Generator) Parametric(fx, fy string) *curvekit.ParametricCurve {
	if fx == "" {
		fx = g.coord(g.width) + " + " + g.coord(g.height) + "*sin(t)"
	}
	if fy == "" {
		fy = g.coord(g.width) + " + " + g.coord(g.height) + "*cos(t)"
	}
	return curvekit.NewParametricCurve(fx, fy, g.TMin, g.TMax, g.Segments, g.Ticks, g.Style())
}

// Bezier returns a Bézier curve with four random control points.
func (g *Generator) Bezier() *curvekit.BezierCurve {
	return curvekit.NewBezierCurve(g.Point(), g.Point(), g.Point(), g.Point(), g.Segments, g.Ticks, g.Style())
}

// Point returns a random point at least 5px inside the canvas.
func (g *Generator) Point() curvekit.Point {
	return curvekit.Pt(float64(g.between(g.width)), float64(g.between(g.height)))
}

// Radius returns a random radius of at most a quarter of the canvas height.
func (g *Generator) Radius() float64 {
	return float64(g.intn((g.height-2*margin)/4) + margin)
}

// Style returns a random width in [1, 3] and a random color.
func (g *Generator) Style() curvekit.DrawStyle {
	return curvekit.DrawStyle{Width: float64(g.intn(3) + 1), Color: g.Color()}
}

// Color returns a random "#RRGGBB" color whose channels are multiples
// of 10.
func (g *Generator) Color() string {
	ch := func() int { return g.intn(26) * 10 }
	return fmt.Sprintf("#%02x%02x%02x", ch(), ch(), ch())
}

func (g *Generator) between(n int) int {
	return g.intn(n-2*margin) + margin
}

func (g *Generator) coord(n int) string {
	return strconv.Itoa(g.between(n))
}

// intn is rand.IntN without the panic for n <= 0.
func (g *Generator) intn(n int) int {
	if n <= 0 {
		return 0
	}
	return g.rng.IntN(n)
}

// Place adds p on top of the controller's scene and selects it.
func Place(ctrl *curvekit.Controller, p curvekit.Primitive) {
	ctrl.Deselect()
	ctrl.Scene().Add(p)
	ctrl.Select(p)
}
