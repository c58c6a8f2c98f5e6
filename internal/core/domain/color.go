package domain

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"go.trai.ch/zerr"
)

var namedColors = map[string]color.RGBA{
	"white":       {R: 255, G: 255, B: 255, A: 255},
	"black":       {A: 255},
	"red":         {R: 255, A: 255},
	"orange":      {R: 255, G: 165, A: 255},
	"green":       {G: 128, A: 255},
	"gray":        {R: 128, G: 128, B: 128, A: 255},
	"grey":        {R: 128, G: 128, B: 128, A: 255},
	"transparent": {},
}

// ParseColor parses "#rgb", "#rrggbb", "rgb(r, g, b)", "rgba(r, g, b, a)" and a
// few CSS colour names.
func ParseColor(s string) (color.RGBA, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[v]; ok {
		return c, nil
	}

	if strings.HasPrefix(v, "#") {
		c, err := colorful.Hex(v)
		if err != nil {
			return color.RGBA{}, zerr.With(zerr.Wrap(err, ErrInvalidColor.Error()), "color", s)
		}
		r, g, b := c.RGB255()
		return color.RGBA{R: r, G: g, B: b, A: 255}, nil
	}

	for _, prefix := range []string{"rgba(", "rgb("} {
		if strings.HasPrefix(v, prefix) && strings.HasSuffix(v, ")") {
			return parseFunctional(s, strings.TrimSuffix(strings.TrimPrefix(v, prefix), ")"))
		}
	}

	return color.RGBA{}, zerr.With(ErrInvalidColor, "color", s)
}

func parseFunctional(raw, args string) (color.RGBA, error) {
	parts := strings.Split(args, ",")
	if len(parts) != 3 && len(parts) != 4 {
		return color.RGBA{}, zerr.With(ErrInvalidColor, "color", raw)
	}

	var ch [3]uint8
	for i := range 3 {
		n, err := strconv.ParseFloat(strings.TrimSpace(parts[i]), 64)
		if err != nil || n < 0 || n > 255 {
			return color.RGBA{}, zerr.With(ErrInvalidColor, "color", raw)
		}
		ch[i] = uint8(n)
	}

	alpha := 1.0
	if len(parts) == 4 {
		a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil || a < 0 || a > 1 {
			return color.RGBA{}, zerr.With(ErrInvalidColor, "color", raw)
		}
		alpha = a
	}

	// color.RGBA is alpha-premultiplied.
	return color.RGBA{
		R: uint8(float64(ch[0]) * alpha),
		G: uint8(float64(ch[1]) * alpha),
		B: uint8(float64(ch[2]) * alpha),
		A: uint8(255 * alpha),
	}, nil
}

// Palette is the parsed form of Style.
type Palette struct {
	Healthy color.RGBA
	Danger  color.RGBA
	Unknown color.RGBA
}

// NewPalette parses the colours of a style.
func NewPalette(s Style) (Palette, error) {
	var p Palette
	var err error
	if p.Healthy, err = ParseColor(s.HealthyColor); err != nil {
		return Palette{}, zerr.With(err, "field", "healthyColor")
	}
	if p.Danger, err = ParseColor(s.DangerColor); err != nil {
		return Palette{}, zerr.With(err, "field", "dangerColor")
	}
	if p.Unknown, err = ParseColor(s.UnknownColor); err != nil {
		return Palette{}, zerr.With(err, "field", "unknownColor")
	}
	return p, nil
}

// WedgeColors returns the donut colours in wedge order: error, unknown, healthy.
func (p Palette) WedgeColors() [3]color.RGBA {
	return [3]color.RGBA{p.Danger, p.Unknown, p.Healthy}
}
