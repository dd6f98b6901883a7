package curvekit

// Surface is the 2D drawing context primitives render into.
//
// The method set mirrors the HTML canvas path API: a path is started with
// BeginPath, built with MoveTo, LineTo and Arc, and painted with Stroke or
// Fill. Painting does not consume the current path, so a shape may be
// filled and then stroked. Colors are "#RRGGBB" hex strings.
//
// Implementations live in the recording and integration/ggsurface
// packages. Surfaces are not safe for concurrent use.
type Surface interface {
	// Clear fills the whole surface with color and discards the current path.
	Clear(color string)

	BeginPath()
	ClosePath()
	MoveTo(x, y float64)
	LineTo(x, y float64)

	// Arc adds a circular arc centered at (x, y) from angle a0 to a1,
	// both in radians. ccw selects the counter-clockwise direction.
	Arc(x, y, r, a0, a1 float64, ccw bool)

	SetLineWidth(w float64)
	SetStrokeColor(color string)
	SetFillColor(color string)

	Stroke()
	Fill()

	// Width and Height report the surface size in pixels.
	Width() int
	Height() int
}
