package curvekit

// HitTolerance is the slack in pixels added around strokes and handles
// when testing whether a pointer position hits them.
const HitTolerance = 2.0

// Default styling shared by the primitives.
const (
	DefaultColor = "#0000AA"
	DefaultWidth = 4.0

	// TickColor and TickWidthFactor style the segment tick marks of curves.
	TickColor       = "#FF0000"
	TickWidthFactor = 5.0

	// HandleRadius is the radius of the point handles the primitives create.
	HandleRadius = 4.0
	// HandleColor is used by Bézier curve handles and their control polygon.
	HandleColor = "#0000FF"
)

// DrawStyle describes how a primitive strokes (and optionally fills) itself.
type DrawStyle struct {
	Width float64
	Color string
	Fill  bool
}

// DefaultStyle returns the style used when a primitive is created without one.
func DefaultStyle() DrawStyle {
	return DrawStyle{Width: DefaultWidth, Color: DefaultColor}
}

// HandleStyle describes a point handle.
type HandleStyle struct {
	Radius float64
	Width  float64
	Color  string
	Fill   bool
}

// PolygonStyle describes a control polygon.
type PolygonStyle struct {
	Width float64
	Color string
}

// withDefaults fills in the zero fields of s.
func (s PolygonStyle) withDefaults() PolygonStyle {
	if s.Width == 0 {
		s.Width = 2
	}
	if s.Color == "" {
		s.Color = "#ff0000"
	}
	return s
}

// IsHexColor reports whether s has the form "#RRGGBB".
func IsHexColor(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	for i := 1; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
