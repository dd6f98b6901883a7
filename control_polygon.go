package curvekit

// PointSource supplies the current vertices of a control polygon.
type PointSource interface {
	ControlPoints() []Point
}

// ControlPolygon connects a sequence of points with straight segments.
// It is a decoration: it implements Overlay but not Handle, so the
// controller draws it and never hit-tests it.
type ControlPolygon struct {
	src   PointSource
	style PolygonStyle
}

// NewControlPolygon creates a polygon over the points of src, which are
// read again on every Draw. Zero style fields fall back to a 2px red
// stroke.
func NewControlPolygon(src PointSource, style PolygonStyle) *ControlPolygon {
	return &ControlPolygon{src: src, style: style.withDefaults()}
}

// Style returns the polygon style.
func (c *ControlPolygon) Style() PolygonStyle {
	return c.style
}

// Draw strokes the segments between consecutive points.
func (c *ControlPolygon) Draw(s Surface) {
	pts := c.src.ControlPoints()
	if len(pts) < 2 {
		return
	}
	s.BeginPath()
	for i := 0; i < len(pts)-1; i++ {
		s.MoveTo(pts[i].X, pts[i].Y)
		s.LineTo(pts[i+1].X, pts[i+1].Y)
	}
	s.SetLineWidth(c.style.Width)
	s.SetStrokeColor(c.style.Color)
	s.Stroke()
}
