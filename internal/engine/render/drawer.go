// Package render draws the traffic scene: edges, particles, nodes and labels.
package render

import (
	"errors"
	"image/color"
	"math"
	"strconv"
	"time"

	"github.com/jonboulle/clockwork"
	"go.trai.ch/trafficlens/internal/core/domain"
	"go.trai.ch/trafficlens/internal/core/ports"
	"go.trai.ch/trafficlens/internal/engine/assets"
	"go.trai.ch/trafficlens/internal/engine/icons"
	"go.trai.ch/zerr"
)

// ParticleLanes is the part of the particle store the drawer needs.
type ParticleLanes interface {
	Count() int
	Visit(edgeID string, now time.Time, fn func(class domain.ParticleClass, t float64))
	RetireExpired(edgeID string, now time.Time) int
}

// Deps bundles the collaborators of a Drawer.
type Deps struct {
	Canvas    ports.Canvas
	Scene     ports.SceneSource
	Selection ports.Selection
	Viewport  ports.Viewport
	Particles ParticleLanes
	Assets    *assets.Cache
	Resolver  ports.IconResolver
	Logger    ports.Logger
	Metrics   ports.RenderMetrics
	Clock     clockwork.Clock
}

// Drawer renders frames onto an offscreen surface and composites them onto the
// visible one. It is not safe for concurrent use; one goroutine drives it.
type Drawer struct {
	deps      Deps
	visible   ports.Surface
	offscreen ports.Surface

	settings domain.Settings
	palette  domain.Palette
	catalog  *icons.Catalog

	state FrameState
}

// NewDrawer binds a drawer to the canvas. It fails with ErrNoDrawingContext
// when the canvas cannot provide a visible context or an offscreen buffer.
func NewDrawer(deps Deps, settings domain.Settings) (*Drawer, error) {
	visible, err := deps.Canvas.Context()
	if err == nil && visible == nil {
		err = errors.New("canvas returned no context")
	}
	if err != nil {
		return nil, errors.Join(domain.ErrNoDrawingContext, err)
	}

	offscreen, err := deps.Canvas.NewOffscreen()
	if err == nil && offscreen == nil {
		err = errors.New("canvas returned no offscreen buffer")
	}
	if err != nil {
		return nil, errors.Join(domain.ErrNoDrawingContext, zerr.Wrap(err, "offscreen buffer"))
	}

	palette, err := domain.NewPalette(settings.Style)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrInvalidSettings.Error())
	}

	return &Drawer{
		deps:      deps,
		visible:   visible,
		offscreen: offscreen,
		settings:  settings,
		palette:   palette,
		catalog:   icons.NewCatalog(settings, deps.Logger),
	}, nil
}

// SetSettings applies new settings from the next frame on. Changed icon
// mappings invalidate the asset cache. Settings with unparsable colours are
// rejected and the previous settings stay in effect.
func (d *Drawer) SetSettings(s domain.Settings) error {
	palette, err := domain.NewPalette(s.Style)
	if err != nil {
		return zerr.Wrap(err, domain.ErrInvalidSettings.Error())
	}
	if domain.IconsChanged(d.settings, s) {
		d.deps.Assets.Reset()
		d.catalog = icons.NewCatalog(s, d.deps.Logger)
	}
	d.settings = s
	d.palette = palette
	return nil
}

// Settings returns the settings in effect.
func (d *Drawer) Settings() domain.Settings {
	return d.settings
}

// State returns a copy of the frame bookkeeping.
func (d *Drawer) State() FrameState {
	return d.state
}

// TickFPS publishes the frames drawn since the previous tick as the FPS value.
// The host calls it once per second.
func (d *Drawer) TickFPS() {
	d.state.FPS = d.state.Frames
	d.state.Frames = 0
}

func (d *Drawer) skipFrame(now time.Time) bool {
	if d.deps.Particles.Count() > 0 {
		return false
	}
	return !d.settings.Animate && now.Sub(d.state.LastRender) < skipWindow
}

// Repaint draws one frame and reports whether it did. Unless force is set, a
// frame is skipped while animation is off, no particle is alive and the last
// frame is less than a second old.
func (d *Drawer) Repaint(force bool) bool {
	now := d.deps.Clock.Now()
	if !force && d.skipFrame(now) {
		d.deps.Metrics.FrameSkipped()
		return false
	}
	d.state.LastRender = now

	g := d.deps.Scene.Snapshot()
	if g == nil {
		g = domain.NewGraph()
	}

	width, height := d.visible.Size()
	d.offscreen.Resize(width, height)
	tr := d.deps.Viewport.Transform()
	d.offscreen.SetTransform(tr)

	selected := d.deps.Selection.Selected()
	nb := domain.ComputeNeighborhood(g, selected)
	d.state.Neighborhood = nb

	d.drawEdges(g, nb, tr.Zoom, now)
	d.drawNodes(g, nb, selected, tr.Zoom)

	d.visible.SetTransform(domain.IdentityTransform())
	d.visible.SetAlpha(1)
	d.visible.Clear()
	if width > 0 && height > 0 {
		d.visible.Blit(d.offscreen)
	}

	d.state.Frames++
	if d.settings.ShowDebugInformation {
		d.drawDebugInformation()
	}

	d.state.DashOffset = dashOffsetAt(now)
	d.deps.Metrics.FrameRendered()
	return true
}

func (d *Drawer) drawEdges(g *domain.Graph, nb domain.Neighborhood, zoom float64, now time.Time) {
	var dimmed, opaque []domain.Edge
	for e := range g.Edges() {
		if nb.Emphasized(e.ID) {
			opaque = append(opaque, e)
		} else {
			dimmed = append(dimmed, e)
		}
	}

	d.offscreen.SetAlpha(dimmedAlpha)
	d.drawEdgeSet(g, dimmed, nb, zoom, now)
	d.offscreen.SetAlpha(1)
	d.drawEdgeSet(g, opaque, nb, zoom, now)
}

func (d *Drawer) drawEdgeSet(g *domain.Graph, edges []domain.Edge, nb domain.Neighborhood, zoom float64, now time.Time) {
	for _, e := range edges {
		src, dst, ok := g.Endpoints(e)
		if !ok {
			continue
		}
		highlighted := !nb.Empty() && nb.Has(e.ID)
		stroke := domain.EdgeStrokeFor(e.Metrics, highlighted)
		d.offscreen.StrokeCurve(domain.EdgeCurve(src, dst, e.Direction), stroke.Width, stroke.Color)
		d.drawEdgeParticles(e, src, dst, now)
	}

	if d.settings.ShowConnectionStats && zoom > minZoomForLabels {
		for _, e := range edges {
			if src, dst, ok := g.Endpoints(e); ok {
				d.drawEdgeLabel(e, src, dst)
			}
		}
	}
}

func (d *Drawer) drawEdgeParticles(e domain.Edge, src, dst domain.Point, now time.Time) {
	curve := domain.ParticleCurve(src, dst, e.Direction)
	radius := domain.ParticleRadius(e.Metrics)

	var positions [len(domain.ParticleClasses)][]domain.Point
	d.deps.Particles.Visit(e.ID, now, func(class domain.ParticleClass, t float64) {
		positions[class] = append(positions[class], curve.At(t))
	})

	colors := [len(domain.ParticleClasses)]color.Color{particleColor, d.palette.Danger}
	for _, class := range domain.ParticleClasses {
		for _, p := range positions[class] {
			d.offscreen.FillCircle(p, radius, colors[class])
		}
	}

	if n := d.deps.Particles.RetireExpired(e.ID, now); n > 0 {
		d.deps.Metrics.ParticlesRetired(n)
	}
}

func (d *Drawer) drawEdgeLabel(e domain.Edge, src, dst domain.Point) {
	mid := domain.Midpoint(src, dst, e.Direction)

	d.drawInterfaceName(e.Metrics.IfName, src, mid, e.Metrics.EPS)
	d.drawInterfaceName(e.Metrics.PeerIfName, dst, mid, e.Metrics.EPS)

	if label := domain.RateLabel(e.Metrics); label != "" {
		d.drawLabel(label, mid)
	}
}

// drawLabel draws a boxed label centred horizontally on p.
func (d *Drawer) drawLabel(label string, p domain.Point) {
	width := d.offscreen.MeasureText(label, labelFontSize)
	pos := domain.Point{X: p.X - width/2, Y: p.Y + labelBaselineDrop}
	d.fillLabelBox(pos, width, labelFontSize, labelColor)
	d.offscreen.FillText(label, pos, labelFontSize, backgroundColor)
}

// InterfaceLabelPosition returns where an interface label of the given width
// is drawn for an edge endpoint anchor: pushed one label width along the
// direction towards the edge midpoint and, when the anchor lies right of the
// midpoint, shifted back by its width so the label extends towards the middle.
func InterfaceLabelPosition(anchor, mid domain.Point, width float64) domain.Point {
	angle := domain.Angle(anchor, mid)
	p := domain.Point{
		X: anchor.X + math.Cos(angle)*width,
		Y: anchor.Y + math.Sin(angle)*width,
	}
	if anchor.X > mid.X {
		p.X -= width
	}
	return p
}

func (d *Drawer) drawInterfaceName(name string, anchor, mid domain.Point, eps float64) {
	if name == "" {
		return
	}
	width := d.offscreen.MeasureText(name, interfaceFontSize)
	pos := InterfaceLabelPosition(anchor, mid, width)

	bg := labelColor
	if eps > 0 {
		bg = errorLabel
	}
	d.fillLabelBox(pos, width, interfaceFontSize, bg)
	d.offscreen.FillText(name, pos, interfaceFontSize, backgroundColor)
}

func (d *Drawer) fillLabelBox(baseline domain.Point, width, size float64, bg color.Color) {
	d.offscreen.FillRect(domain.Rect{
		X:      baseline.X - labelPadding,
		Y:      baseline.Y - size - labelPadding,
		Width:  width + 2*labelPadding,
		Height: size + 2*labelPadding,
	}, bg)
}

func (d *Drawer) drawNodes(g *domain.Graph, nb domain.Neighborhood, selected []string, zoom float64) {
	isSelected := make(map[string]bool, len(selected))
	for _, id := range selected {
		isSelected[id] = true
	}

	for n := range g.Nodes() {
		if nb.Emphasized(n.ID) {
			d.offscreen.SetAlpha(1)
		} else {
			d.offscreen.SetAlpha(dimmedAlpha)
		}

		if n.Kind == domain.NodeExternal {
			d.drawExternalNode(n)
		} else {
			d.drawDonut(n, isSelected[n.ID])
			if d.settings.ShowBaselines {
				d.drawBaseline(n)
			}
			d.drawServiceIcon(n)
		}

		if zoom > minZoomForLabels {
			d.drawNodeLabel(n, nb)
		}
	}
	d.offscreen.SetAlpha(1)
}

func (d *Drawer) drawDonut(n domain.Node, selected bool) {
	c := n.Position
	d.offscreen.FillCircle(c, donutRadius+donutStrokeWidth, white)

	wedges := domain.DonutFractions(n.Metrics).Wedges()
	colors := d.palette.WedgeColors()
	start := -math.Pi / 2
	for i, pct := range wedges {
		sweep := pct * 2 * math.Pi
		if sweep > 0 {
			d.offscreen.FillSector(c, donutRadius, start, start+sweep, colors[i])
		}
		start += sweep
	}

	d.offscreen.FillCircle(c, donutRadius-donutWidth, white)
	cutout := backgroundColor
	if selected {
		cutout = white
	}
	d.offscreen.FillCircle(c, donutRadius-donutWidth-donutStrokeWidth, cutout)
}

// drawBaseline draws the dashed threshold ring around a node; it is red and
// animated while the node reports errors.
func (d *Drawer) drawBaseline(n domain.Node) {
	violation := n.Metrics.EPS > 0
	strokeWidth := donutStrokeWidth * 2
	col := baselineOK
	if violation {
		strokeWidth *= baselineViolation
		col = violationColor
	}
	radius := donutRadius + strokeWidth - strokeWidth*0.2

	dashOffset := 0.0
	if violation && d.settings.Animate {
		dashOffset = d.state.DashOffset
	}

	d.offscreen.StrokeCircle(n.Position, radius, strokeWidth, white, nil, 0)
	d.offscreen.StrokeCircle(n.Position, radius, strokeWidth, col, []float64{baselineDashOn, baselineDashOff}, dashOffset)
	d.offscreen.FillCircle(n.Position, donutRadius-donutWidth-donutStrokeWidth, col)
}

func (d *Drawer) drawServiceIcon(n domain.Node) {
	icon, ok := d.catalog.Service(n.ID)
	if !ok {
		return
	}
	d.drawIcon(icon, n.Position, serviceIconSize)
}

func (d *Drawer) drawExternalNode(n domain.Node) {
	d.offscreen.FillCircle(n.Position, externalRadius, white)
	d.offscreen.FillCircle(n.Position, externalInner, backgroundColor)
	d.drawIcon(d.catalog.External(n.ExternalType), n.Position, externalIconSize)
}

func (d *Drawer) drawIcon(icon icons.Icon, c domain.Point, size float64) {
	img := d.deps.Assets.Get(icon.Name, func() string {
		return d.deps.Resolver.Locate(icon.Asset)
	})
	if img == nil {
		return
	}
	d.offscreen.DrawImage(img, domain.Rect{X: c.X - size/2, Y: c.Y - size/2, Width: size, Height: size})
}

func (d *Drawer) drawNodeLabel(n domain.Node, nb domain.Neighborhood) {
	label := domain.TruncateLabel(n.ID, !nb.Empty() && nb.Has(n.ID))
	width := d.offscreen.MeasureText(label, labelFontSize)
	pos := domain.Point{X: n.Position.X - width/2, Y: n.Position.Y + nodeHeight*nodeLabelDrop}

	bg := labelColor
	if d.settings.ShowBaselines {
		bg = baselineLabel
	}
	d.fillLabelBox(pos, width, labelFontSize, bg)
	d.offscreen.FillText(label, pos, labelFontSize, backgroundColor)
}

func (d *Drawer) drawDebugInformation() {
	d.visible.FillText("Frames per Second: "+strconv.Itoa(d.state.FPS), domain.Point{X: debugX, Y: debugLineHeight}, debugFontSize, white)
	d.visible.FillText("Particles: "+strconv.Itoa(d.deps.Particles.Count()), domain.Point{X: debugX, Y: 2 * debugLineHeight}, debugFontSize, white)
}
