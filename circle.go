package curvekit

import "math"

// Circle is a circle that can be dragged by its center and resized by a
// handle on its bottom edge.
type Circle struct {
	Center Point
	Radius float64
	Style  DrawStyle
}

// NewCircle creates a circle.
func NewCircle(center Point, radius float64, style DrawStyle) *Circle {
	return &Circle{Center: center, Radius: radius, Style: style}
}

// DrawStyle implements Primitive.
func (c *Circle) DrawStyle() *DrawStyle { return &c.Style }

// Draw strokes the circle, filling it first when Style.Fill is set.
func (c *Circle) Draw(s Surface) {
	s.BeginPath()
	s.Arc(c.Center.X, c.Center.Y, c.Radius, 0, 2*math.Pi, true)
	s.ClosePath()

	s.SetLineWidth(c.Style.Width)
	s.SetStrokeColor(c.Style.Color)
	s.SetFillColor(c.Style.Color)
	if c.Style.Fill {
		s.Fill()
	}
	s.Stroke()
}

// IsHit reports whether p lies on the border of the circle. Only the
// stroked ring is hit-testable, the interior is not, regardless of the
// fill flag.
func (c *Circle) IsHit(p Point) bool {
	d2 := p.Sub(c.Center).LengthSquared()
	r := c.Radius + c.Style.Width/2
	return d2 >= (r-HitTolerance)*(r-HitTolerance) && d2 <= (r+HitTolerance)*(r+HitTolerance)
}

// CreateDraggers returns the center handle and the radius handle.
func (c *Circle) CreateDraggers() []Overlay {
	style := HandleStyle{Radius: HandleRadius, Color: c.Style.Color, Fill: true}
	return []Overlay{
		NewPointDragger(FieldAccessor(&c.Center), style),
		NewPointDragger(radiusField{c: c}, style),
	}
}

// radiusField sits at the bottom of the circle and changes the radius by
// the vertical pointer movement. The pointer position itself is ignored,
// and the radius is not clamped.
type radiusField struct {
	c *Circle
}

func (f radiusField) Read() Point {
	return Point{X: f.c.Center.X, Y: f.c.Center.Y + f.c.Radius}
}

func (f radiusField) Write(ev DragEvent) {
	f.c.Radius += ev.Delta.Y
}
