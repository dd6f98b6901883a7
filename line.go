package curvekit

// Line is a straight segment that can be dragged by its endpoints.
type Line struct {
	P0, P1 Point
	Style  DrawStyle
}

// NewLine creates a line from p0 to p1.
func NewLine(p0, p1 Point, style DrawStyle) *Line {
	return &Line{P0: p0, P1: p1, Style: style}
}

// DrawStyle implements Primitive.
func (l *Line) DrawStyle() *DrawStyle { return &l.Style }

// Draw strokes the segment.
func (l *Line) Draw(s Surface) {
	s.BeginPath()
	s.MoveTo(l.P0.X, l.P0.Y)
	s.LineTo(l.P1.X, l.P1.Y)
	s.SetLineWidth(l.Style.Width)
	s.SetStrokeColor(l.Style.Color)
	s.Stroke()
}

// IsHit reports whether p projects inside the segment within half the
// stroke width plus HitTolerance. A zero-length line is never hit.
func (l *Line) IsHit(p Point) bool {
	d, ok := segmentDistance(p, l.P0, l.P1)
	return ok && d <= l.Style.Width/2+HitTolerance
}

// CreateDraggers returns one handle per endpoint.
func (l *Line) CreateDraggers() []Overlay {
	style := HandleStyle{Radius: HandleRadius, Color: l.Style.Color, Fill: true}
	return []Overlay{
		NewPointDragger(FieldAccessor(&l.P0), style),
		NewPointDragger(FieldAccessor(&l.P1), style),
	}
}
