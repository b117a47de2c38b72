package geometry

import (
	"fmt"
	"math"
)

///////////////////////////////////////////////////////////////////////////////
/// CURVE
///////////////////////////////////////////////////////////////////////////////

// Relative tolerance for deciding that a rendered cubic is visually a
// straight line. One percent of the larger magnitude, matching the
// tolerance Graphviz output comfortably fits within.
const linearRelTol = 0.01

// Curve holds the geometry of a single edge segment.
//
// A curve may either be a straight line or a cubic Bézier as specified
// by IsBezier. If the curve is linear then Points holds the polyline
// anchors. If the curve is a cubic Bézier then Points holds exactly the
// four control points P0..P3.
type Curve struct {
	Start    Point
	End      Point
	IsBezier bool
	Points   []Point
}

// NewBezier creates a cubic Bézier curve from its four control points
func NewBezier(p0, p1, p2, p3 Point) *Curve {
	return &Curve{
		Start:    p0,
		End:      p3,
		IsBezier: true,
		Points:   []Point{p0, p1, p2, p3},
	}
}

// NewPolyline creates a straight-line curve through the given anchor points
func NewPolyline(points ...Point) (*Curve, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("a polyline curve requires at least 2 points, got %d", len(points))
	}
	ret := &Curve{
		Start:    points[0],
		End:      points[len(points)-1],
		IsBezier: false,
		Points:   points,
	}
	return ret, nil
}

func (c *Curve) String() string {
	return fmt.Sprintf("%s , %s", c.Start, c.End)
}

// Position calculates the point along the curve at parametric
// parameter t where 0 <= t <= 1.
//
// For a cubic Bézier this implements
// B(t) = (1-t)³P₀ + 3(1-t)²tP₁ + 3(1-t)t²P₂ + t³P₃
// independently on the X and Y axes. For a straight segment it is a
// linear interpolation between Start and End.
func (c *Curve) Position(t float64) Point {
	if !c.IsBezier {
		return c.Start.Lerp(c.End, t)
	}
	return Point{
		X: cubicAt(c.Points[0].X, c.Points[1].X, c.Points[2].X, c.Points[3].X, t),
		Y: cubicAt(c.Points[0].Y, c.Points[1].Y, c.Points[2].Y, c.Points[3].Y, t),
	}
}

// Velocity calculates the first derivative of the curve at parametric
// parameter t where 0 <= t <= 1.
//
// For a cubic Bézier this implements
// B'(t) = 3(1-t)²(P₁-P₀) + 6(1-t)t(P₂-P₁) + 3t²(P₃-P₂)
// per axis. A straight segment has the constant derivative End - Start.
func (c *Curve) Velocity(t float64) Point {
	if !c.IsBezier {
		return c.End.Sub(c.Start)
	}
	return Point{
		X: cubicDerivativeAt(c.Points[0].X, c.Points[1].X, c.Points[2].X, c.Points[3].X, t),
		Y: cubicDerivativeAt(c.Points[0].Y, c.Points[1].Y, c.Points[2].Y, c.Points[3].Y, t),
	}
}

// cubicAt evaluates the cubic Bernstein polynomial for one axis
func cubicAt(p0, p1, p2, p3, t float64) float64 {
	mt := 1.0 - t
	return (mt * mt * mt * p0) +
		(3.0 * mt * mt * t * p1) +
		(3.0 * mt * t * t * p2) +
		(t * t * t * p3)
}

// cubicDerivativeAt evaluates the derivative of the cubic for one axis
func cubicDerivativeAt(p0, p1, p2, p3, t float64) float64 {
	mt := 1.0 - t
	return (3.0 * mt * mt * (p1 - p0)) +
		(6.0 * mt * t * (p2 - p1)) +
		(3.0 * t * t * (p3 - p2))
}

// IsLinear decides whether a cubic Bézier is visually indistinguishable
// from the straight line between its endpoints, so that it can be
// re-emitted as a plain connector in the output format.
//
// A degenerate curve whose endpoints coincide (a self loop) is never
// linear. When the chord between the endpoints is vertical its slope is
// undefined, so the whole curve is rotated 90 degrees once and tested
// against the rotated chord; rotation cannot change the answer. The
// rotated chord cannot itself be vertical because that would require
// Start == End, which is excluded above.
func (c *Curve) IsLinear() bool {
	if c.Start == c.End {
		return false
	}
	if !c.IsBezier {
		return true
	}
	p := c.Points
	if p[0].X == p[3].X {
		r := []Point{p[0].Rotate90(), p[1].Rotate90(), p[2].Rotate90(), p[3].Rotate90()}
		return controlsOnChord(r)
	}
	return controlsOnChord(p)
}

// controlsOnChord reports whether both control points of a cubic lie on
// the line through its endpoints, within the linearity tolerance.
// The chord must not be vertical.
func controlsOnChord(p []Point) bool {
	m := (p[3].Y - p[0].Y) / (p[3].X - p[0].X)
	b := p[0].Y - (m * p[0].X)
	return isClose(m*p[1].X+b, p[1].Y, linearRelTol) &&
		isClose(m*p[2].X+b, p[2].Y, linearRelTol)
}

// isClose reports whether a and b are within the given relative tolerance
func isClose(a, b, relTol float64) bool {
	return math.Abs(a-b) <= relTol*math.Max(math.Abs(a), math.Abs(b))
}

// SubdivideAt splits a cubic Bézier at parameter t using de Casteljau's
// construction, returning the two cubic halves. The halves share the
// split point Position(t) and their tangents agree there, so rendering
// both halves reproduces the original curve exactly.
func (c *Curve) SubdivideAt(t float64) (*Curve, *Curve, error) {
	if !c.IsBezier {
		return nil, nil, fmt.Errorf("cannot subdivide a non-bezier curve")
	}
	p := c.Points
	q1 := p[0].Lerp(p[1], t)
	q2 := p[1].Lerp(p[2], t)
	q3 := p[2].Lerp(p[3], t)
	r1 := q1.Lerp(q2, t)
	r2 := q2.Lerp(q3, t)
	s := r1.Lerp(r2, t) // the split point, equal to Position(t)
	return NewBezier(p[0], q1, r1, s), NewBezier(s, r2, q3, p[3]), nil
}

// Subdivide splits the cubic into halves at t = 0.5
func (c *Curve) Subdivide() (*Curve, *Curve, error) {
	return c.SubdivideAt(0.5)
}
