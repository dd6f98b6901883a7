package curvekit

import "math"

// DragEvent is delivered to an Accessor on every pointer move of a drag.
// Delta is the pointer movement since the previous event.
type DragEvent struct {
	Position Point
	Delta    Point
}

// Accessor reads and writes one field of a primitive on behalf of a handle.
// The setter decides how to interpret the event: most use Position, the
// circle radius accessor uses only Delta.Y.
type Accessor interface {
	Read() Point
	Write(ev DragEvent)
}

// Overlay is drawn on top of the selected primitive.
type Overlay interface {
	Draw(s Surface)
}

// Handle is an interactive overlay that can be hit and dragged.
type Handle interface {
	Overlay
	IsHit(p Point) bool
	DragStart(p Point)
	DragMove(p Point)
}

// pointField controls a Point stored in a primitive.
type pointField struct {
	p *Point
}

func (f pointField) Read() Point        { return *f.p }
func (f pointField) Write(ev DragEvent) { *f.p = ev.Position }

// FieldAccessor returns an Accessor that moves the point at p to the
// pointer position.
func FieldAccessor(p *Point) Accessor {
	return pointField{p: p}
}

// PointDragger is a small circular handle bound to an Accessor.
type PointDragger struct {
	acc   Accessor
	style HandleStyle
	prev  Point
}

// NewPointDragger creates a handle drawn at acc.Read().
func NewPointDragger(acc Accessor, style HandleStyle) *PointDragger {
	return &PointDragger{acc: acc, style: style}
}

// Position returns the current handle position.
func (d *PointDragger) Position() Point {
	return d.acc.Read()
}

// Style returns the handle style.
func (d *PointDragger) Style() HandleStyle {
	return d.style
}

// Draw renders the handle as a filled or outlined circle.
func (d *PointDragger) Draw(s Surface) {
	pos := d.acc.Read()
	s.BeginPath()
	s.Arc(pos.X, pos.Y, d.style.Radius, 0, 2*math.Pi, true)
	s.ClosePath()
	if d.style.Fill {
		s.SetFillColor(d.style.Color)
		s.Fill()
		return
	}
	s.SetLineWidth(math.Max(d.style.Width, 1))
	s.SetStrokeColor(d.style.Color)
	s.Stroke()
}

// IsHit reports whether p is inside the handle, with HitTolerance slack.
func (d *PointDragger) IsHit(p Point) bool {
	r := d.style.Radius + d.style.Width/2 + HitTolerance
	return p.Sub(d.acc.Read()).LengthSquared() <= r*r
}

// DragStart remembers the pointer position the drag starts from.
func (d *PointDragger) DragStart(p Point) {
	d.prev = p
}

// DragMove forwards the pointer movement to the accessor.
func (d *PointDragger) DragMove(p Point) {
	ev := DragEvent{Position: p, Delta: p.Sub(d.prev)}
	d.prev = p
	d.acc.Write(ev)
}
