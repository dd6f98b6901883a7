package curvekit

import "github.com/gogpu/curvekit/expr"

// Cubic Bernstein formulas of a Bézier curve over its control points.
const (
	BezierFX = "(1-t)^3*p0[0] + 3*(1-t)^2*t*p1[0] + 3*(1-t)*t^2*p2[0] + t^3*p3[0]"
	BezierFY = "(1-t)^3*p0[1] + 3*(1-t)^2*t*p1[1] + 3*(1-t)*t^2*p2[1] + t^3*p3[1]"
)

var (
	bezierFX = expr.MustCompile(BezierFX)
	bezierFY = expr.MustCompile(BezierFY)
)

// BezierCurve is a cubic Bézier curve that can be dragged by its end
// points (P0, P3) and its tangent points (P1, P2).
type BezierCurve struct {
	P0, P1, P2, P3 Point
	Segments       int
	Ticks          bool
	Style          DrawStyle

	sampler
}

// NewBezierCurve creates a cubic Bézier curve.
func NewBezierCurve(p0, p1, p2, p3 Point, segments int, ticks bool, style DrawStyle) *BezierCurve {
	return &BezierCurve{
		P0:       p0,
		P1:       p1,
		P2:       p2,
		P3:       p3,
		Segments: segments,
		Ticks:    ticks,
		Style:    style,
	}
}

// DrawStyle implements Primitive.
func (c *BezierCurve) DrawStyle() *DrawStyle { return &c.Style }

// Domain returns the fixed parameter range of a Bézier curve.
func (c *BezierCurve) Domain() (tmin, tmax float64) { return 0, 1 }

// Formulas returns the fixed x(t) and y(t) formulas.
func (c *BezierCurve) Formulas() (fx, fy string) { return BezierFX, BezierFY }

// ControlPoints returns P0..P3. It implements PointSource.
func (c *BezierCurve) ControlPoints() []Point {
	return []Point{c.P0, c.P1, c.P2, c.P3}
}

// At evaluates the curve at t directly, without touching the sample cache.
func (c *BezierCurve) At(t float64) Point {
	mt := 1 - t
	a, b, cc, d := mt*mt*mt, 3*mt*mt*t, 3*mt*t*t, t*t*t
	return Point{
		X: a*c.P0.X + b*c.P1.X + cc*c.P2.X + d*c.P3.X,
		Y: a*c.P0.Y + b*c.P1.Y + cc*c.P2.Y + d*c.P3.Y,
	}
}

// Draw samples and strokes the curve.
func (c *BezierCurve) Draw(s Surface) {
	if c.env.Points == nil {
		c.env.Points = make(map[string][2]float64, 4)
	}
	c.env.Points["p0"] = [2]float64{c.P0.X, c.P0.Y}
	c.env.Points["p1"] = [2]float64{c.P1.X, c.P1.Y}
	c.env.Points["p2"] = [2]float64{c.P2.X, c.P2.Y}
	c.env.Points["p3"] = [2]float64{c.P3.X, c.P3.Y}

	if err := c.resample(bezierFX, bezierFY, 0, 1, c.Segments); err != nil {
		Logger().Debug("curvekit: bezier curve not drawn", "error", err)
		return
	}
	c.draw(s, c.Style, c.Ticks)
}

// IsHit tests p against the segments of the last draw.
func (c *BezierCurve) IsHit(p Point) bool {
	return c.isHit(p, c.Style.Width)
}

// CreateDraggers returns four point handles, end points filled and
// tangent points outlined, followed by the control polygon.
func (c *BezierCurve) CreateDraggers() []Overlay {
	end := HandleStyle{Radius: HandleRadius, Color: HandleColor, Fill: true}
	tangent := HandleStyle{Radius: HandleRadius, Color: HandleColor}
	return []Overlay{
		NewPointDragger(FieldAccessor(&c.P0), end),
		NewPointDragger(FieldAccessor(&c.P1), tangent),
		NewPointDragger(FieldAccessor(&c.P2), tangent),
		NewPointDragger(FieldAccessor(&c.P3), end),
		NewControlPolygon(c, PolygonStyle{Width: 1, Color: HandleColor}),
	}
}
