package raster

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"go.trai.ch/trafficlens/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/image/draw"
)

var _ ports.Canvas = (*Canvas)(nil)

// Canvas is an off-screen presentation surface with a solid background,
// standing in for the host page a browser would composite onto.
type Canvas struct {
	visible    *Surface
	background color.Color
	fonts      *fonts
}

// NewCanvas creates a canvas of the given pixel size.
func NewCanvas(width, height int, background color.Color) (*Canvas, error) {
	f, err := newFonts()
	if err != nil {
		return nil, err
	}
	return &Canvas{
		visible:    newSurface(width, height, f),
		background: background,
		fonts:      f,
	}, nil
}

// Context returns the visible surface. A canvas without area has no context.
func (c *Canvas) Context() (ports.Surface, error) {
	if w, h := c.visible.Size(); w <= 0 || h <= 0 {
		return nil, zerr.With(zerr.With(zerr.New("canvas has no area"), "width", w), "height", h)
	}
	return c.visible, nil
}

// NewOffscreen creates an empty surface sharing the canvas fonts.
func (c *Canvas) NewOffscreen() (ports.Surface, error) {
	return newSurface(0, 0, c.fonts), nil
}

// Resize changes the visible size, as a host window resize would.
func (c *Canvas) Resize(width, height int) {
	c.visible.Resize(width, height)
}

// Frame flattens the visible surface onto the background.
func (c *Canvas) Frame() *image.RGBA {
	b := c.visible.img.Bounds()
	out := image.NewRGBA(b)
	draw.Draw(out, b, image.NewUniform(c.background), image.Point{}, draw.Src)
	draw.Draw(out, b, c.visible.img, b.Min, draw.Over)
	return out
}

// EncodePNG writes the flattened frame as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, c.Frame()); err != nil {
		return zerr.Wrap(err, "failed to encode frame")
	}
	return nil
}
