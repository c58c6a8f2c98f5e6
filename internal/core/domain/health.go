package domain

import (
	"image/color"
	"math"
)

// Donut holds the wedge fractions of an internal node's health ring.
// The three fractions always sum to 1.
type Donut struct {
	Error   float64
	Unknown float64
	Healthy float64
}

// Wedges returns the fractions in drawing order: error, unknown, healthy.
func (d Donut) Wedges() [3]float64 {
	return [3]float64{d.Error, d.Unknown, d.Healthy}
}

// DonutFractions derives the health ring of a node from its metrics. A node
// without known bandwidth is entirely unknown; otherwise the error share is
// eps/pps when packets flow, and the remainder is healthy.
func DonutFractions(m Metrics) Donut {
	if !Known(m.BPS) {
		return Donut{Unknown: 1}
	}

	errPct := 0.0
	if m.EPS > 0 && m.PPS > 0 {
		errPct = math.Min(1, m.EPS/m.PPS)
	}
	return Donut{Error: errPct, Healthy: 1 - errPct}
}

const (
	edgeBaseDimmed     = 80
	edgeBaseEmphasized = 140
	edgeColorRange     = 255
	maxChannel         = 255
)

// EdgeStroke describes how an edge line is stroked.
type EdgeStroke struct {
	Width float64
	Color color.RGBA
}

// ErrorRatio returns eps/bps, treating 0/0 as no errors and x/0 as unbounded.
func ErrorRatio(m Metrics) float64 {
	if m.EPS <= 0 {
		return 0
	}
	if m.BPS == 0 {
		return math.Inf(1)
	}
	return m.EPS / m.BPS
}

// ErrorChannel returns the red channel for an edge with the given eps/bps
// ratio. It grows with log2(ratio+1) from base and saturates at 255.
func ErrorChannel(base, ratio float64) uint8 {
	v := base + edgeColorRange*math.Log2(ratio+1)
	if math.IsNaN(v) || v > maxChannel {
		v = maxChannel
	}
	return uint8(math.Round(v))
}

// EdgeStrokeFor returns the stroke of an edge. Edges inside a non-empty
// selection neighbourhood are wider and brighter.
func EdgeStrokeFor(m Metrics, highlighted bool) EdgeStroke {
	base := float64(edgeBaseDimmed)
	width := 1.0
	if highlighted {
		base = edgeBaseEmphasized
		width = 3
	}

	b := uint8(base)
	if !Known(m.BPS) || !Known(m.EPS) {
		return EdgeStroke{Width: width, Color: color.RGBA{R: b, G: b, B: b, A: 0xff}}
	}
	return EdgeStroke{
		Width: width,
		Color: color.RGBA{R: ErrorChannel(base, ErrorRatio(m)), G: b, B: b, A: 0xff},
	}
}

// ParticleRadius picks the particle size tier from the bits-per-packet ratio.
func ParticleRadius(m Metrics) float64 {
	r := m.BitsPerPacket()
	switch {
	case r >= 50000:
		return 10
	case r >= 25000:
		return 6
	case r >= 12000:
		return 4
	case r >= 6000:
		return 2
	default:
		return 1
	}
}
