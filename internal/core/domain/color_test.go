package domain_test

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/trafficlens/internal/core/domain"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{in: "#d1e2f2", want: color.RGBA{R: 0xd1, G: 0xe2, B: 0xf2, A: 0xff}},
		{in: "#FFF", want: color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
		{in: "rgb(184, 36, 36)", want: color.RGBA{R: 184, G: 36, B: 36, A: 0xff}},
		{in: "rgba(200, 100, 0, 0.5)", want: color.RGBA{R: 100, G: 50, B: 0, A: 127}},
		{in: "white", want: color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := domain.ParseColor(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseColor_Invalid(t *testing.T) {
	for _, in := range []string{"", "#zzzzzz", "rgb(1,2)", "rgb(300,0,0)", "rgba(1,2,3,2)", "chartreuse-ish"} {
		_, err := domain.ParseColor(in)
		require.ErrorContains(t, err, domain.ErrInvalidColor.Error(), "input %q", in)
	}
}

func TestNewPalette(t *testing.T) {
	p, err := domain.NewPalette(domain.DefaultSettings().Style)
	require.NoError(t, err)

	w := p.WedgeColors()
	assert.Equal(t, color.RGBA{R: 184, G: 36, B: 36, A: 0xff}, w[0])
	assert.Equal(t, color.RGBA{R: 123, G: 123, B: 138, A: 0xff}, w[1])
	assert.Equal(t, color.RGBA{R: 87, G: 148, B: 242, A: 0xff}, w[2])

	_, err = domain.NewPalette(domain.Style{HealthyColor: "nope"})
	require.Error(t, err)
}
