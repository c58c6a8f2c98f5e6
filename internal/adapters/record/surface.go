// Package record implements a drawing surface that records draw commands
// instead of rasterizing them. It backs the command dump of the CLI.
package record

import (
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"

	"go.trai.ch/trafficlens/internal/core/domain"
	"go.trai.ch/trafficlens/internal/core/ports"
)

// Op names a recorded drawing call.
type Op string

// Recorded operations.
const (
	OpResize       Op = "resize"
	OpClear        Op = "clear"
	OpTransform    Op = "transform"
	OpAlpha        Op = "alpha"
	OpStrokeCurve  Op = "strokeCurve"
	OpStrokeCircle Op = "strokeCircle"
	OpFillCircle   Op = "fillCircle"
	OpFillSector   Op = "fillSector"
	OpFillRect     Op = "fillRect"
	OpFillText     Op = "fillText"
	OpDrawImage    Op = "drawImage"
	OpBlit         Op = "blit"
)

// Command is one recorded call. Only the fields relevant to Op are set.
type Command struct {
	Op         Op
	Alpha      float64
	Point      domain.Point
	Curve      domain.Curve
	Rect       domain.Rect
	Transform  domain.Transform
	Radius     float64
	Width      float64
	Start, End float64
	Size       float64
	Text       string
	Color      color.RGBA
	Dash       []float64
	DashOffset float64
	// Blitted holds the commands of the source surface of a blit.
	Blitted int
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func pt(p domain.Point) string {
	return "(" + num(p.X) + "," + num(p.Y) + ")"
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// String renders the command in a stable, line-oriented form.
func (c Command) String() string {
	var b strings.Builder
	b.WriteString(string(c.Op))
	switch c.Op {
	case OpResize:
		fmt.Fprintf(&b, " %sx%s", num(c.Rect.Width), num(c.Rect.Height))
	case OpTransform:
		fmt.Fprintf(&b, " pan=%s zoom=%s ratio=%s", pt(c.Transform.Pan), num(c.Transform.Zoom), num(c.Transform.PixelRatio))
	case OpAlpha:
		b.WriteString(" " + num(c.Alpha))
	case OpStrokeCurve:
		fmt.Fprintf(&b, " %s %s %s %s w=%s %s", pt(c.Curve[0]), pt(c.Curve[1]), pt(c.Curve[2]), pt(c.Curve[3]), num(c.Width), hex(c.Color))
	case OpStrokeCircle:
		fmt.Fprintf(&b, " %s r=%s w=%s %s dash=%v off=%s", pt(c.Point), num(c.Radius), num(c.Width), hex(c.Color), c.Dash, num(c.DashOffset))
	case OpFillCircle:
		fmt.Fprintf(&b, " %s r=%s %s", pt(c.Point), num(c.Radius), hex(c.Color))
	case OpFillSector:
		fmt.Fprintf(&b, " %s r=%s %s..%s %s", pt(c.Point), num(c.Radius), num(c.Start), num(c.End), hex(c.Color))
	case OpFillRect:
		fmt.Fprintf(&b, " %s %sx%s %s", pt(domain.Point{X: c.Rect.X, Y: c.Rect.Y}), num(c.Rect.Width), num(c.Rect.Height), hex(c.Color))
	case OpFillText:
		fmt.Fprintf(&b, " %q %s size=%s %s", c.Text, pt(c.Point), num(c.Size), hex(c.Color))
	case OpDrawImage:
		fmt.Fprintf(&b, " %s %sx%s", pt(domain.Point{X: c.Rect.X, Y: c.Rect.Y}), num(c.Rect.Width), num(c.Rect.Height))
	case OpBlit:
		fmt.Fprintf(&b, " %d commands", c.Blitted)
	case OpClear:
	}
	return b.String()
}

// Surface records every call made to it.
type Surface struct {
	width, height int
	alpha         float64
	commands      []Command
}

var _ ports.Surface = (*Surface)(nil)

// NewSurface creates a recording surface of the given size.
func NewSurface(width, height int) *Surface {
	return &Surface{width: width, height: height, alpha: 1}
}

func rgba(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{}
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}

func (s *Surface) add(c Command) {
	c.Alpha = s.alpha
	s.commands = append(s.commands, c)
}

// Commands returns the recorded commands.
func (s *Surface) Commands() []Command {
	return s.commands
}

// Filter returns the recorded commands with the given op.
func (s *Surface) Filter(op Op) []Command {
	var out []Command
	for _, c := range s.commands {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

// Reset forgets all recorded commands.
func (s *Surface) Reset() {
	s.commands = nil
}

// Dump renders all recorded commands, one per line.
func (s *Surface) Dump() string {
	var b strings.Builder
	for _, c := range s.commands {
		b.WriteString(c.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// Size implements ports.Surface.
func (s *Surface) Size() (int, int) {
	return s.width, s.height
}

// Resize implements ports.Surface. Resizing discards recorded commands, as it
// discards pixels on a real surface.
func (s *Surface) Resize(width, height int) {
	s.width, s.height = width, height
	s.commands = nil
	s.add(Command{Op: OpResize, Rect: domain.Rect{Width: float64(width), Height: float64(height)}})
}

// Clear implements ports.Surface.
func (s *Surface) Clear() {
	s.add(Command{Op: OpClear})
}

// SetTransform implements ports.Surface.
func (s *Surface) SetTransform(t domain.Transform) {
	s.add(Command{Op: OpTransform, Transform: t})
}

// SetAlpha implements ports.Surface.
func (s *Surface) SetAlpha(alpha float64) {
	s.alpha = alpha
	s.add(Command{Op: OpAlpha})
}

// StrokeCurve implements ports.Surface.
func (s *Surface) StrokeCurve(c domain.Curve, width float64, col color.Color) {
	s.add(Command{Op: OpStrokeCurve, Curve: c, Width: width, Color: rgba(col)})
}

// StrokeCircle implements ports.Surface.
func (s *Surface) StrokeCircle(center domain.Point, radius, width float64, col color.Color, dash []float64, dashOffset float64) {
	s.add(Command{
		Op: OpStrokeCircle, Point: center, Radius: radius, Width: width,
		Color: rgba(col), Dash: append([]float64(nil), dash...), DashOffset: dashOffset,
	})
}

// FillCircle implements ports.Surface.
func (s *Surface) FillCircle(center domain.Point, radius float64, col color.Color) {
	s.add(Command{Op: OpFillCircle, Point: center, Radius: radius, Color: rgba(col)})
}

// FillSector implements ports.Surface.
func (s *Surface) FillSector(center domain.Point, radius, start, end float64, col color.Color) {
	s.add(Command{Op: OpFillSector, Point: center, Radius: radius, Start: start, End: end, Color: rgba(col)})
}

// FillRect implements ports.Surface.
func (s *Surface) FillRect(r domain.Rect, col color.Color) {
	s.add(Command{Op: OpFillRect, Rect: r, Color: rgba(col)})
}

// FillText implements ports.Surface.
func (s *Surface) FillText(text string, p domain.Point, size float64, col color.Color) {
	s.add(Command{Op: OpFillText, Text: text, Point: p, Size: size, Color: rgba(col)})
}

// MeasureText implements ports.Surface with a fixed advance of half the font
// size per rune.
func (s *Surface) MeasureText(text string, size float64) float64 {
	return float64(len([]rune(text))) * size / 2
}

// DrawImage implements ports.Surface.
func (s *Surface) DrawImage(_ image.Image, r domain.Rect) {
	s.add(Command{Op: OpDrawImage, Rect: r})
}

// Blit implements ports.Surface.
func (s *Surface) Blit(src ports.Surface) {
	n := 0
	if rs, ok := src.(*Surface); ok {
		n = len(rs.commands)
	}
	s.add(Command{Op: OpBlit, Blitted: n})
}

// Canvas hands out recording surfaces.
type Canvas struct {
	visible   *Surface
	offscreen []*Surface
}

var _ ports.Canvas = (*Canvas)(nil)

// NewCanvas creates a canvas whose visible surface has the given size.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{visible: NewSurface(width, height)}
}

// Context implements ports.Canvas.
func (c *Canvas) Context() (ports.Surface, error) {
	return c.visible, nil
}

// NewOffscreen implements ports.Canvas.
func (c *Canvas) NewOffscreen() (ports.Surface, error) {
	s := NewSurface(0, 0)
	c.offscreen = append(c.offscreen, s)
	return s, nil
}

// Visible returns the visible surface.
func (c *Canvas) Visible() *Surface {
	return c.visible
}

// Offscreen returns the most recently created offscreen surface, or nil.
func (c *Canvas) Offscreen() *Surface {
	if len(c.offscreen) == 0 {
		return nil
	}
	return c.offscreen[len(c.offscreen)-1]
}
