package curvekit

import (
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/curvekit/expr"
)

// ErrSegments is reported (to the debug log) when a curve is asked to draw
// with a segment count outside [1, MaxSegments].
var ErrSegments = errors.New("curvekit: segment count out of range")

// ErrNotFinite is reported (to the debug log) when a curve formula
// evaluates to NaN or an infinity.
var ErrNotFinite = errors.New("curvekit: formula value is not finite")

// MaxSegments is the largest segment count a curve draws with.
const MaxSegments = 10000

// sampler is the draw and hit-test machinery shared by ParametricCurve and
// BezierCurve. They differ only in where x(t) and y(t) come from.
//
// samples is rebuilt in full on every draw and is the only input of the
// hit test, so the hit test always matches what was last drawn.
type sampler struct {
	samples []Point
	env     expr.Env
}

// resample evaluates fx and fy at seg+1 evenly spaced values of t across
// [tmin, tmax]. Any evaluation error leaves the cache empty.
func (c *sampler) resample(fx, fy *expr.Expr, tmin, tmax float64, seg int) error {
	c.samples = c.samples[:0]
	if seg < 1 || seg > MaxSegments {
		return fmt.Errorf("%w: %d not in [1, %d]", ErrSegments, seg, MaxSegments)
	}
	if c.env.Vars == nil {
		c.env.Vars = make(map[string]float64, 1)
	}

	// Validate at tmin first, so formulas that fail everywhere bail out
	// before any allocation.
	if _, err := c.at(fx, fy, tmin); err != nil {
		return err
	}

	pts := make([]Point, 0, seg+1)
	step := (tmax - tmin) / float64(seg)
	for i := 0; i <= seg; i++ {
		p, err := c.at(fx, fy, tmin+float64(i)*step)
		if err != nil {
			return err
		}
		pts = append(pts, p)
	}
	c.samples = pts
	return nil
}

func (c *sampler) at(fx, fy *expr.Expr, t float64) (Point, error) {
	c.env.Vars["t"] = t
	x, err := fx.Eval(c.env)
	if err != nil {
		return Point{}, fmt.Errorf("x(t): %w", err)
	}
	if !isFinite(x) {
		return Point{}, fmt.Errorf("x(%g) = %g: %w", t, x, ErrNotFinite)
	}
	y, err := fy.Eval(c.env)
	if err != nil {
		return Point{}, fmt.Errorf("y(t): %w", err)
	}
	if !isFinite(y) {
		return Point{}, fmt.Errorf("y(%g) = %g: %w", t, y, ErrNotFinite)
	}
	return Point{X: x, Y: y}, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// draw strokes the cached samples as a polyline and, when ticks is set,
// a short red mark at every interior sample.
func (c *sampler) draw(s Surface, style DrawStyle, ticks bool) {
	pts := c.samples
	if len(pts) < 2 {
		return
	}

	s.BeginPath()
	s.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		s.LineTo(p.X, p.Y)
	}
	s.SetLineWidth(style.Width)
	s.SetStrokeColor(style.Color)
	s.Stroke()

	if !ticks {
		return
	}
	s.BeginPath()
	for j := 1; j < len(pts)-1; j++ {
		dir := pts[j+1].Sub(pts[j-1])
		l := dir.Length()
		if l == 0 {
			continue
		}
		end := pts[j].Add(dir.Mul(1 / l))
		s.MoveTo(pts[j].X, pts[j].Y)
		s.LineTo(end.X, end.Y)
	}
	s.SetLineWidth(style.Width * TickWidthFactor)
	s.SetStrokeColor(TickColor)
	s.Stroke()
}

// isHit walks the cached segments in order and accepts the first one the
// point projects into within half the width plus HitTolerance.
func (c *sampler) isHit(p Point, width float64) bool {
	for i := 0; i+1 < len(c.samples); i++ {
		d, ok := segmentDistance(p, c.samples[i], c.samples[i+1])
		if ok && d <= width/2+HitTolerance {
			return true
		}
	}
	return false
}

// Samples returns the points computed by the last Draw. The slice is owned
// by the curve and must not be modified.
func (c *sampler) Samples() []Point {
	return c.samples
}
