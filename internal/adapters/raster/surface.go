// Package raster implements the drawing surface on in-memory RGBA images using
// the golang.org/x/image vector rasterizer, OpenType text and scalers.
package raster

import (
	"image"
	"image/color"
	"math"

	"go.trai.ch/trafficlens/internal/core/domain"
	"go.trai.ch/trafficlens/internal/core/ports"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

var _ ports.Surface = (*Surface)(nil)

// Surface rasterizes draw calls into an RGBA image.
type Surface struct {
	img       *image.RGBA
	transform domain.Transform
	alpha     float64
	fonts     *fonts
	ras       vector.Rasterizer
}

func newSurface(width, height int, f *fonts) *Surface {
	return &Surface{
		img:       image.NewRGBA(image.Rect(0, 0, max(width, 0), max(height, 0))),
		transform: domain.IdentityTransform(),
		alpha:     1,
		fonts:     f,
	}
}

// Image returns the backing image.
func (s *Surface) Image() *image.RGBA {
	return s.img
}

func (s *Surface) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

func (s *Surface) Resize(width, height int) {
	if w, h := s.Size(); w == width && h == height {
		s.Clear()
		return
	}
	s.img = image.NewRGBA(image.Rect(0, 0, max(width, 0), max(height, 0)))
}

func (s *Surface) Clear() {
	draw.Draw(s.img, s.img.Bounds(), image.Transparent, image.Point{}, draw.Src)
}

func (s *Surface) SetTransform(t domain.Transform) {
	s.transform = t
}

func (s *Surface) SetAlpha(alpha float64) {
	s.alpha = math.Max(0, math.Min(1, alpha))
}

// paint returns col with the global alpha applied.
func (s *Surface) paint(col color.Color) *image.Uniform {
	r, g, b, a := col.RGBA()
	k := s.alpha
	return image.NewUniform(color.RGBA64{
		R: uint16(float64(r) * k),
		G: uint16(float64(g) * k),
		B: uint16(float64(b) * k),
		A: uint16(float64(a) * k),
	})
}

func (s *Surface) device(p domain.Point) domain.Point {
	return s.transform.Apply(p)
}

// fill rasterizes the polygons, given in device pixels, as one coverage mask.
func (s *Surface) fill(col color.Color, polys ...polygon) {
	w, h := s.Size()
	if w == 0 || h == 0 || len(polys) == 0 {
		return
	}

	s.ras.Reset(w, h)
	s.ras.DrawOp = draw.Over
	for _, poly := range polys {
		if len(poly) < 3 {
			continue
		}
		s.ras.MoveTo(float32(poly[0].X), float32(poly[0].Y))
		for _, p := range poly[1:] {
			s.ras.LineTo(float32(p.X), float32(p.Y))
		}
		s.ras.ClosePath()
	}
	s.ras.Draw(s.img, s.img.Bounds(), s.paint(col), image.Point{})
}

func (s *Surface) StrokeCurve(c domain.Curve, width float64, col color.Color) {
	pts := make([]domain.Point, 0, curveSegments+1)
	for i := 0; i <= curveSegments; i++ {
		pts = append(pts, s.device(c.At(float64(i)/curveSegments)))
	}
	s.fill(col, strokePolyline(pts, width*s.transform.Scale())...)
}

func (s *Surface) StrokeCircle(center domain.Point, radius, width float64, col color.Color, dash []float64, dashOffset float64) {
	scale := s.transform.Scale()
	c := s.device(center)
	r := radius * scale
	hw := width * scale / 2
	inner := math.Max(0, r-hw)

	if len(dash) == 0 {
		s.fill(col,
			circlePolygon(c, r+hw).oriented(true),
			circlePolygon(c, inner).oriented(false),
		)
		return
	}

	// Dash lengths are measured along the circle in model units.
	var polys []polygon
	for _, on := range dashIntervals(2*math.Pi*radius, dash, dashOffset) {
		start, end := on[0]/radius, on[1]/radius
		polys = append(polys, band(c, inner, r+hw, start, end).oriented(true))
	}
	s.fill(col, polys...)
}

func (s *Surface) FillCircle(center domain.Point, radius float64, col color.Color) {
	if radius <= 0 {
		return
	}
	s.fill(col, circlePolygon(s.device(center), radius*s.transform.Scale()))
}

func (s *Surface) FillSector(center domain.Point, radius, start, end float64, col color.Color) {
	if radius <= 0 || end <= start {
		return
	}
	c := s.device(center)
	pts := append([]domain.Point{c}, arcPoints(c, radius*s.transform.Scale(), start, end)...)
	s.fill(col, polygon(pts))
}

func (s *Surface) FillRect(r domain.Rect, col color.Color) {
	a := s.device(domain.Point{X: r.X, Y: r.Y})
	b := s.device(domain.Point{X: r.X + r.Width, Y: r.Y + r.Height})
	s.fill(col, polygon{a, {X: b.X, Y: a.Y}, b, {X: a.X, Y: b.Y}})
}

func (s *Surface) FillText(text string, p domain.Point, size float64, col color.Color) {
	face, err := s.fonts.face(size * s.transform.Scale())
	if err != nil {
		return
	}
	d := s.device(p)
	drawer := font.Drawer{
		Dst:  s.img,
		Src:  s.paint(col),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.Int26_6(d.X * 64), Y: fixed.Int26_6(d.Y * 64)},
	}
	drawer.DrawString(text)
}

func (s *Surface) MeasureText(text string, size float64) float64 {
	face, err := s.fonts.face(size)
	if err != nil {
		return 0
	}
	return float64(font.MeasureString(face, text)) / 64
}

func (s *Surface) DrawImage(img image.Image, r domain.Rect) {
	if img == nil {
		return
	}
	a := s.device(domain.Point{X: r.X, Y: r.Y})
	b := s.device(domain.Point{X: r.X + r.Width, Y: r.Y + r.Height})
	dst := image.Rect(int(math.Round(a.X)), int(math.Round(a.Y)), int(math.Round(b.X)), int(math.Round(b.Y)))
	if dst.Empty() {
		return
	}

	var opts *draw.Options
	if s.alpha < 1 {
		opts = &draw.Options{SrcMask: image.NewUniform(color.Alpha16{A: uint16(s.alpha * 0xffff)})}
	}
	draw.CatmullRom.Scale(s.img, dst, img, img.Bounds(), draw.Over, opts)
}

// Blit composites src over this surface. Sources from other packages are drawn
// through their image.Image view when they expose one.
func (s *Surface) Blit(src ports.Surface) {
	var img image.Image
	switch v := src.(type) {
	case *Surface:
		img = v.img
	case interface{ Image() image.Image }:
		img = v.Image()
	default:
		return
	}
	draw.Draw(s.img, s.img.Bounds(), img, image.Point{}, draw.Over)
}
