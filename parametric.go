package curvekit

import (
	"fmt"

	"github.com/gogpu/curvekit/expr"
)

// ParametricCurve is the curve (x(t), y(t)) for t in [TMin, TMax], where
// FX and FY are formulas in the expr language with the variable t.
//
// A curve whose formulas do not compile or evaluate draws nothing.
type ParametricCurve struct {
	TMin, TMax float64
	FX, FY     string
	Segments   int
	Ticks      bool
	Style      DrawStyle

	sampler
	fx, fy *expr.Expr
}

// NewParametricCurve creates a parametric curve.
func NewParametricCurve(fx, fy string, tmin, tmax float64, segments int, ticks bool, style DrawStyle) *ParametricCurve {
	return &ParametricCurve{
		TMin:     tmin,
		TMax:     tmax,
		FX:       fx,
		FY:       fy,
		Segments: segments,
		Ticks:    ticks,
		Style:    style,
	}
}

// DrawStyle implements Primitive.
func (c *ParametricCurve) DrawStyle() *DrawStyle { return &c.Style }

// Compile compiles FX and FY, reusing the previous result while the
// source text is unchanged.
func (c *ParametricCurve) Compile() error {
	var err error
	if c.fx, err = recompile(c.fx, c.FX); err != nil {
		return fmt.Errorf("x(t): %w", err)
	}
	if c.fy, err = recompile(c.fy, c.FY); err != nil {
		return fmt.Errorf("y(t): %w", err)
	}
	return nil
}

func recompile(prev *expr.Expr, src string) (*expr.Expr, error) {
	if prev != nil && prev.String() == src {
		return prev, nil
	}
	return expr.Compile(src)
}

// Draw samples and strokes the curve. Formula errors are logged at debug
// level and the draw becomes a no-op with an empty sample cache.
func (c *ParametricCurve) Draw(s Surface) {
	err := c.Compile()
	if err == nil {
		err = c.resample(c.fx, c.fy, c.TMin, c.TMax, c.Segments)
	}
	if err != nil {
		c.samples = c.samples[:0]
		Logger().Debug("curvekit: parametric curve not drawn", "fx", c.FX, "fy", c.FY, "error", err)
		return
	}
	c.draw(s, c.Style, c.Ticks)
}

// IsHit tests p against the segments of the last draw.
func (c *ParametricCurve) IsHit(p Point) bool {
	return c.isHit(p, c.Style.Width)
}

// CreateDraggers returns no overlays: a parametric curve is edited through
// its formula fields only.
func (c *ParametricCurve) CreateDraggers() []Overlay {
	return nil
}
