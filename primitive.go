package curvekit

// Primitive is a drawable, hit-testable geometric object.
//
// Implementations are *Line, *Circle, *ParametricCurve and *BezierCurve.
// Attribute editors change a primitive through its exported fields; the
// Scene Controller only relies on this interface.
type Primitive interface {
	// Draw renders the primitive into s.
	Draw(s Surface)

	// IsHit reports whether p lies on the primitive's outline.
	IsHit(p Point) bool

	// CreateDraggers returns fresh overlays for manipulating the
	// primitive. Overlays implementing Handle are interactive; the rest
	// are decorations that are drawn but never hit-tested.
	CreateDraggers() []Overlay

	// DrawStyle returns the primitive's mutable style.
	DrawStyle() *DrawStyle
}

// Kind returns a short lowercase name for the primitive's variant.
func Kind(p Primitive) string {
	switch p.(type) {
	case *Line:
		return "line"
	case *Circle:
		return "circle"
	case *ParametricCurve:
		return "parametric"
	case *BezierCurve:
		return "bezier"
	case nil:
		return "none"
	default:
		return "unknown"
	}
}
