package domain

import "math"

// CurveLift is the vertical offset of the inner Bézier control points of an edge.
const CurveLift = 20.0

// Point is a position in graph (model) coordinates.
type Point struct {
	X float64
	Y float64
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Rect is an axis aligned rectangle anchored at its top-left corner.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Curve holds the four control points of a cubic Bézier segment.
type Curve [4]Point

// At evaluates the curve at t.
func (c Curve) At(t float64) Point {
	return BezierPoint(t, c[0], c[1], c[2], c[3])
}

// BezierPoint evaluates the cubic Bézier defined by p0..p3 at t in [0,1].
func BezierPoint(t float64, p0, p1, p2, p3 Point) Point {
	cX := 3 * (p1.X - p0.X)
	bX := 3*(p2.X-p1.X) - cX
	aX := p3.X - p0.X - cX - bX

	cY := 3 * (p1.Y - p0.Y)
	bY := 3*(p2.Y-p1.Y) - cY
	aY := p3.Y - p0.Y - cY - bY

	t2 := t * t
	t3 := t2 * t

	return Point{
		X: aX*t3 + bX*t2 + cX*t + p0.X,
		Y: aY*t3 + bY*t2 + cY*t + p0.Y,
	}
}

// liftFor returns the control point offset for a traffic direction.
// Inbound edges bow upwards, outbound edges downwards, so the two edges between
// the same pair of nodes never overlap.
func liftFor(dir Direction) float64 {
	if dir == DirectionIn {
		return -CurveLift
	}
	return CurveLift
}

// EdgeCurve returns the curve an edge is stroked along, always from source to target.
func EdgeCurve(source, target Point, dir Direction) Curve {
	lift := liftFor(dir)
	return Curve{
		source,
		{X: source.X, Y: source.Y + lift},
		{X: target.X, Y: target.Y + lift},
		target,
	}
}

// ParticleCurve returns the trajectory of particles on an edge. It follows the
// same geometry as EdgeCurve but runs target to source for inbound edges, so a
// particle always travels in the direction the traffic flows.
func ParticleCurve(source, target Point, dir Direction) Curve {
	c := EdgeCurve(source, target, dir)
	if dir == DirectionIn {
		return Curve{c[3], c[2], c[1], c[0]}
	}
	return c
}

// Midpoint returns the point halfway along the edge curve.
func Midpoint(source, target Point, dir Direction) Point {
	return EdgeCurve(source, target, dir).At(0.5)
}

// Transform is the pan/zoom state of the viewport together with the device
// pixel ratio of the presentation surface.
type Transform struct {
	Pan        Point
	Zoom       float64
	PixelRatio float64
}

// IdentityTransform returns a transform that maps model coordinates to pixels 1:1.
func IdentityTransform() Transform {
	return Transform{Zoom: 1, PixelRatio: 1}
}

// Scale returns the combined scale factor applied to model units.
func (t Transform) Scale() float64 {
	return t.Zoom * t.PixelRatio
}

// Apply maps a model point to device pixels: translate by pan×ratio, then scale
// by zoom×ratio.
func (t Transform) Apply(p Point) Point {
	s := t.Scale()
	return Point{
		X: t.Pan.X*t.PixelRatio + p.X*s,
		Y: t.Pan.Y*t.PixelRatio + p.Y*s,
	}
}

// Angle returns the direction from p to q in radians.
func Angle(p, q Point) float64 {
	d := q.Sub(p)
	return math.Atan2(d.Y, d.X)
}
