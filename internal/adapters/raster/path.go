package raster

import (
	"math"
	"slices"

	"go.trai.ch/trafficlens/internal/core/domain"
)

// curveSegments is the number of line segments a Bézier stroke is split into.
const curveSegments = 32

// polygon is a closed outline in device pixels.
type polygon []domain.Point

func (p polygon) area() float64 {
	var a float64
	for i := range p {
		j := (i + 1) % len(p)
		a += p[i].X*p[j].Y - p[j].X*p[i].Y
	}
	return a / 2
}

// oriented returns p wound in the given direction. The rasterizer adds the
// coverage of overlapping outlines with equal winding and cancels outlines of
// opposite winding, which is how holes are cut.
func (p polygon) oriented(positive bool) polygon {
	if (p.area() >= 0) == positive {
		return p
	}
	r := slices.Clone(p)
	slices.Reverse(r)
	return r
}

// arcSteps picks a segment count that keeps chords under about two pixels.
func arcSteps(radius, sweep float64) int {
	n := int(math.Ceil(math.Abs(sweep) * radius / 2))
	return max(8, min(n, 720))
}

func arcPoints(center domain.Point, radius, start, end float64) []domain.Point {
	n := arcSteps(radius, end-start)
	pts := make([]domain.Point, 0, n+1)
	for i := 0; i <= n; i++ {
		a := start + (end-start)*float64(i)/float64(n)
		pts = append(pts, domain.Point{X: center.X + radius*math.Cos(a), Y: center.Y + radius*math.Sin(a)})
	}
	return pts
}

func circlePolygon(center domain.Point, radius float64) polygon {
	pts := arcPoints(center, radius, 0, 2*math.Pi)
	return polygon(pts[:len(pts)-1])
}

// band is the region between two concentric arcs.
func band(center domain.Point, inner, outer, start, end float64) polygon {
	out := arcPoints(center, outer, start, end)
	in := arcPoints(center, inner, start, end)
	slices.Reverse(in)
	return polygon(append(out, in...))
}

// strokePolyline outlines a polyline of the given width as one quad per
// segment plus a disc per joint.
func strokePolyline(pts []domain.Point, width float64) []polygon {
	hw := width / 2
	var polys []polygon
	for i := 0; i+1 < len(pts); i++ {
		a, b := pts[i], pts[i+1]
		dx, dy := b.X-a.X, b.Y-a.Y
		l := math.Hypot(dx, dy)
		if l == 0 {
			continue
		}
		nx, ny := -dy/l*hw, dx/l*hw
		polys = append(polys, polygon{
			{X: a.X + nx, Y: a.Y + ny},
			{X: b.X + nx, Y: b.Y + ny},
			{X: b.X - nx, Y: b.Y - ny},
			{X: a.X - nx, Y: a.Y - ny},
		}.oriented(true))
	}
	for i := 1; i+1 < len(pts); i++ {
		polys = append(polys, circlePolygon(pts[i], hw).oriented(true))
	}
	return polys
}

// dashIntervals splits [0, length) into the "on" intervals of a dash pattern
// shifted by offset. An odd-length pattern is repeated once, as canvas does.
func dashIntervals(length float64, dash []float64, offset float64) [][2]float64 {
	if len(dash)%2 == 1 {
		dash = append(slices.Clone(dash), dash...)
	}
	var period float64
	for _, d := range dash {
		if d < 0 {
			return [][2]float64{{0, length}}
		}
		period += d
	}
	if period <= 0 {
		return [][2]float64{{0, length}}
	}

	phase := math.Mod(offset, period)
	if phase < 0 {
		phase += period
	}

	var out [][2]float64
	pos := -phase
	for i := 0; pos < length; i = (i + 1) % len(dash) {
		end := pos + dash[i]
		if i%2 == 0 {
			s, e := max(pos, 0), min(end, length)
			if e > s {
				out = append(out, [2]float64{s, e})
			}
		}
		pos = end
	}
	return out
}
