package curvekit

import "math"

// Point represents a 2D point or vector in canvas pixel space.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Dot returns the dot product of two vectors.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Length returns the Euclidean length of the vector.
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// LengthSquared returns the squared length of the vector.
func (p Point) LengthSquared() float64 {
	return p.X*p.X + p.Y*p.Y
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// Normalize returns a unit vector in the same direction.
// The zero vector is returned unchanged.
func (p Point) Normalize() Point {
	length := p.Length()
	if length == 0 {
		return Point{}
	}
	return Point{X: p.X / length, Y: p.Y / length}
}

// Lerp performs linear interpolation between two points.
// t=0 returns p, t=1 returns q.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// ProjectPointOnLine projects p onto the infinite line through p0 and p1
// and returns the parameter t of the projection, so that the projected
// point is p0 + t*(p1-p0). The parameter is not clamped: callers test
// 0 < t < 1 to decide whether the projection falls on the segment.
//
// ok is false when p0 and p1 coincide and no projection exists.
func ProjectPointOnLine(p, p0, p1 Point) (t float64, ok bool) {
	d := p1.Sub(p0)
	l2 := d.LengthSquared()
	if l2 == 0 {
		return 0, false
	}
	return p.Sub(p0).Dot(d) / l2, true
}

// segmentDistance returns the distance from p to the segment p0-p1 when
// the projection of p falls strictly inside the segment.
func segmentDistance(p, p0, p1 Point) (float64, bool) {
	t, ok := ProjectPointOnLine(p, p0, p1)
	if !ok || t <= 0 || t >= 1 {
		return 0, false
	}
	return p0.Lerp(p1, t).Distance(p), true
}
