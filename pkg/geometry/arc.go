package geometry

import "math"

///////////////////////////////////////////////////////////////////////////////
/// ELLIPTICAL ARC
///////////////////////////////////////////////////////////////////////////////

// EllipticalArc is an arc segment in SVG endpoint notation: the two
// endpoints plus radii, x-axis rotation and the large-arc/sweep flags.
type EllipticalArc struct {
	Start    Point
	End      Point
	RadiusX  float64
	RadiusY  float64
	Rotation float64 // x-axis rotation in radians
	LargeArc bool
	Sweep    bool

	// computed center parameterization
	center Point
	theta  float64 // start angle
	delta  float64 // signed angular extent
}

// NewEllipticalArc creates an arc and resolves its center parameterization
func NewEllipticalArc(start, end Point, radiusX, radiusY, rotation float64, largeArc, sweep bool) *EllipticalArc {
	arc := &EllipticalArc{
		Start:    start,
		End:      end,
		RadiusX:  math.Abs(radiusX),
		RadiusY:  math.Abs(radiusY),
		Rotation: rotation,
		LargeArc: largeArc,
		Sweep:    sweep,
	}
	arc.compute()
	return arc
}

// compute derives the ellipse center, start angle and angular extent
// from the endpoint parameterization
func (arc *EllipticalArc) compute() {
	if arc.RadiusX == 0 || arc.RadiusY == 0 || arc.Start == arc.End {
		return
	}
	rx, ry := arc.RadiusX, arc.RadiusY
	cosR := math.Cos(arc.Rotation)
	sinR := math.Sin(arc.Rotation)

	// midpoint of the chord in the rotated frame
	dx := (arc.Start.X - arc.End.X) / 2
	dy := (arc.Start.Y - arc.End.Y) / 2
	x1 := cosR*dx + sinR*dy
	y1 := -sinR*dx + cosR*dy

	// scale up radii that cannot span the chord
	lambda := (x1*x1)/(rx*rx) + (y1*y1)/(ry*ry)
	if lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
		arc.RadiusX = rx
		arc.RadiusY = ry
	}

	num := rx*rx*ry*ry - rx*rx*y1*y1 - ry*ry*x1*x1
	if num < 0 {
		num = 0
	}
	den := rx*rx*y1*y1 + ry*ry*x1*x1
	coef := math.Sqrt(num / den)
	if arc.LargeArc == arc.Sweep {
		coef = -coef
	}
	cx1 := coef * rx * y1 / ry
	cy1 := -coef * ry * x1 / rx

	arc.center = Point{
		X: cosR*cx1 - sinR*cy1 + (arc.Start.X+arc.End.X)/2,
		Y: sinR*cx1 + cosR*cy1 + (arc.Start.Y+arc.End.Y)/2,
	}

	arc.theta = math.Atan2((y1-cy1)/ry, (x1-cx1)/rx)
	end := math.Atan2((-y1-cy1)/ry, (-x1-cx1)/rx)
	arc.delta = end - arc.theta
	if !arc.Sweep && arc.delta > 0 {
		arc.delta -= 2 * math.Pi
	}
	if arc.Sweep && arc.delta < 0 {
		arc.delta += 2 * math.Pi
	}
}

// pointAt returns the ellipse point at angle a
func (arc *EllipticalArc) pointAt(a float64) Point {
	cosR := math.Cos(arc.Rotation)
	sinR := math.Sin(arc.Rotation)
	ex := arc.RadiusX * math.Cos(a)
	ey := arc.RadiusY * math.Sin(a)
	return Point{
		X: arc.center.X + cosR*ex - sinR*ey,
		Y: arc.center.Y + sinR*ex + cosR*ey,
	}
}

// derivativeAt returns the ellipse tangent vector at angle a
func (arc *EllipticalArc) derivativeAt(a float64) Point {
	cosR := math.Cos(arc.Rotation)
	sinR := math.Sin(arc.Rotation)
	ex := -arc.RadiusX * math.Sin(a)
	ey := arc.RadiusY * math.Cos(a)
	return Point{
		X: cosR*ex - sinR*ey,
		Y: sinR*ex + cosR*ey,
	}
}

// Cubics approximates the arc with cubic Bézier curves, one per
// quarter-turn or less. Degenerate arcs with a zero radius or
// coincident endpoints return nil; the caller draws a line instead.
func (arc *EllipticalArc) Cubics() []*Curve {
	if arc.RadiusX == 0 || arc.RadiusY == 0 || arc.Start == arc.End {
		return nil
	}

	segments := int(math.Ceil(math.Abs(arc.delta) / (math.Pi / 2)))
	if segments < 1 {
		segments = 1
	}
	step := arc.delta / float64(segments)
	// control point distance for a circular arc of the step angle
	k := 4.0 / 3.0 * math.Tan(step/4)

	curves := make([]*Curve, 0, segments)
	a0 := arc.theta
	p0 := arc.Start
	for i := 0; i < segments; i++ {
		a1 := a0 + step
		p3 := arc.pointAt(a1)
		if i == segments-1 {
			p3 = arc.End
		}
		p1 := p0.Add(arc.derivativeAt(a0).Scale(k))
		p2 := p3.Sub(arc.derivativeAt(a1).Scale(k))
		curves = append(curves, NewBezier(p0, p1, p2, p3))
		a0 = a1
		p0 = p3
	}
	return curves
}
