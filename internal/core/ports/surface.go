package ports

import (
	"image"
	"image/color"

	"go.trai.ch/trafficlens/internal/core/domain"
)

// Surface is the minimal immediate-mode drawing capability set the renderer
// needs. Coordinates passed to drawing calls are model coordinates; the surface
// maps them through the transform set with SetTransform. Widths, radii and font
// sizes scale with the transform as well.
//
//go:generate mockgen -source=surface.go -destination=mocks/mock_surface.go -package=mocks
type Surface interface {
	// Size returns the pixel dimensions of the surface.
	Size() (width, height int)
	// Resize changes the pixel dimensions and discards the content.
	Resize(width, height int)
	// Clear erases the whole surface, ignoring the transform.
	Clear()

	// SetTransform replaces the current transform.
	SetTransform(t domain.Transform)
	// SetAlpha sets the global opacity applied to subsequent drawing calls.
	SetAlpha(alpha float64)

	// StrokeCurve strokes a cubic Bézier curve.
	StrokeCurve(c domain.Curve, width float64, col color.Color)
	// StrokeCircle strokes a circle outline; dash is an on/off pattern in model
	// units shifted by dashOffset, or nil for a solid line.
	StrokeCircle(center domain.Point, radius, width float64, col color.Color, dash []float64, dashOffset float64)
	// FillCircle fills a disc.
	FillCircle(center domain.Point, radius float64, col color.Color)
	// FillSector fills a circular wedge from start to end (radians, clockwise
	// in screen space since y grows downwards).
	FillSector(center domain.Point, radius, start, end float64, col color.Color)
	// FillRect fills an axis aligned rectangle.
	FillRect(r domain.Rect, col color.Color)
	// FillText draws text with its baseline-left corner at p.
	FillText(text string, p domain.Point, size float64, col color.Color)
	// MeasureText returns the advance width of text at size in model units.
	MeasureText(text string, size float64) float64
	// DrawImage draws img scaled into r.
	DrawImage(img image.Image, r domain.Rect)

	// Blit composites another surface onto this one at the origin, ignoring
	// both transforms.
	Blit(src Surface)
}

// Canvas is the presentation surface: a visible drawing context plus the
// ability to create offscreen buffers of matching kind.
type Canvas interface {
	// Context returns the visible 2D drawing context.
	Context() (Surface, error)
	// NewOffscreen creates an offscreen buffer that can be blitted onto the context.
	NewOffscreen() (Surface, error)
}
