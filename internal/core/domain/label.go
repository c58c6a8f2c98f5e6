package domain

import (
	"math"
	"strings"

	"github.com/dustin/go-humanize"
)

const (
	maxLabelLength = 20
	labelKeep      = 7
)

// TruncateLabel shortens long node labels to head + "..." + tail unless the
// node is emphasized by the current selection.
func TruncateLabel(label string, keepFull bool) string {
	if keepFull {
		return label
	}
	runes := []rune(label)
	if len(runes) <= maxLabelLength {
		return label
	}
	return string(runes[:labelKeep]) + "..." + string(runes[len(runes)-labelKeep:])
}

// FormatSI renders a rate with an SI prefix, e.g. 1234 -> "1.2 k".
// Values of 1000 and above keep one decimal, smaller values none.
func FormatSI(v float64) string {
	if math.Abs(v) < 1000 {
		return humanize.FtoaWithDigits(v, 0)
	}
	return humanize.SIWithDigits(v, 1, "")
}

// RateLabel joins the known bandwidth and error rate of an edge into one label,
// e.g. "1.5 k bps, 3 eps". It returns "" when neither is known.
func RateLabel(m Metrics) string {
	var parts []string
	if Known(m.BPS) {
		parts = append(parts, FormatSI(m.BPS)+" bps")
	}
	if Known(m.EPS) {
		parts = append(parts, FormatSI(m.EPS)+" eps")
	}
	return strings.Join(parts, ", ")
}
