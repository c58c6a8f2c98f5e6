package render

import (
	"image/color"
	"time"
)

var (
	white           = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	labelColor      = color.RGBA{R: 0xba, G: 0xd5, B: 0xed, A: 0xff}
	backgroundColor = color.RGBA{R: 0x21, G: 0x21, B: 0x21, A: 0xff}
	baselineLabel   = color.RGBA{R: 0xff, G: 0x73, B: 0x83, A: 0xff}
	errorLabel      = color.RGBA{R: 0xff, A: 0xff}
	particleColor   = color.RGBA{R: 0xd1, G: 0xe2, B: 0xf2, A: 0xff}
	violationColor  = color.RGBA{R: 184, G: 36, B: 36, A: 0xff}
	baselineOK      = color.RGBA{R: 0x37, G: 0x87, B: 0x2d, A: 0xff}
)

// BackgroundColor is the panel colour the scene is drawn over.
func BackgroundColor() color.RGBA {
	return backgroundColor
}

const (
	dimmedAlpha = 0.25

	labelFontSize     = 6.0
	interfaceFontSize = 4.0
	labelPadding      = 1.0
	labelBaselineDrop = 3.0

	donutRadius      = 15.0
	donutWidth       = 5.0
	donutStrokeWidth = 0.5

	serviceIconSize   = 16.0
	externalRadius    = 12.0
	externalInner     = 11.5
	externalIconSize  = 12.0
	nodeHeight        = 30.0
	nodeLabelDrop     = 0.8
	debugFontSize     = 12.0
	debugX            = 10.0
	debugLineHeight   = 12.0
	minZoomForLabels  = 1.0
	skipWindow        = time.Second
	dashPeriod        = 60 * time.Second
	dashStep          = 250 * time.Millisecond
	baselineDashOn    = 10.0
	baselineDashOff   = 2.0
	baselineViolation = 1.5
)
