package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/trafficlens/internal/adapters/config"
	"go.trai.ch/trafficlens/internal/core/domain"
	"go.trai.ch/trafficlens/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func newLoader(t *testing.T) *config.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	return config.NewLoader(log)
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	s, err := newLoader(t).Load("")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), *s)
}

func TestLoad_YAMLMergesOverDefaults(t *testing.T) {
	path := writeFile(t, "trafficlens.yaml", `
animate: false
showBaselines: true
serviceIcons:
  - pattern: "^postgres"
    filename: database
style:
  dangerColor: "#ff0000"
particles:
  cadence: 100ms
  maxPerEdge: 8
`)

	s, err := newLoader(t).Load(path)
	require.NoError(t, err)

	defaults := domain.DefaultSettings()
	assert.False(t, s.Animate)
	assert.True(t, s.ShowBaselines)
	assert.Equal(t, defaults.ShowConnectionStats, s.ShowConnectionStats)
	assert.Equal(t, []domain.ServiceIcon{{Pattern: "^postgres", Filename: "database"}}, s.ServiceIcons)
	assert.Equal(t, defaults.ExternalIcons, s.ExternalIcons)
	assert.Equal(t, "#ff0000", s.Style.DangerColor)
	assert.Equal(t, defaults.Style.HealthyColor, s.Style.HealthyColor)
	assert.Equal(t, 100*time.Millisecond, s.Particles.Cadence)
	assert.Equal(t, 8, s.Particles.MaxPerEdge)
	assert.InDelta(t, defaults.Particles.MaxSpawnRate, s.Particles.MaxSpawnRate, 1e-9)
}

func TestLoad_TOML(t *testing.T) {
	path := writeFile(t, "trafficlens.toml", `
showDebugInformation = true

[[externalIcons]]
name = "kafka"
filename = "message"

[particles]
maxSpawnRate = 4.0
`)

	s, err := newLoader(t).Load(path)
	require.NoError(t, err)
	assert.True(t, s.ShowDebugInformation)
	assert.Equal(t, []domain.ExternalIcon{{Name: "kafka", Filename: "message"}}, s.ExternalIcons)
	assert.InDelta(t, 4.0, s.Particles.MaxSpawnRate, 1e-9)
}

func TestLoad_EmptyIconListClearsDefaults(t *testing.T) {
	path := writeFile(t, "trafficlens.yaml", "serviceIcons: []\n")

	s, err := newLoader(t).Load(path)
	require.NoError(t, err)
	assert.Empty(t, s.ServiceIcons)
	assert.NotEmpty(t, s.ExternalIcons)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := newLoader(t).Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to read settings file")
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeFile(t, "trafficlens.yaml", "animate: [oops\n")

	_, err := newLoader(t).Load(path)
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to parse settings file")
}

func TestParse_Rejects(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantField string
	}{
		{
			name:      "icon without pattern",
			content:   "serviceIcons:\n  - filename: java\n",
			wantField: "settingsFile.ServiceIcons[0].Pattern",
		},
		{
			name:      "icon filename with path separator",
			content:   "externalIcons:\n  - name: web\n    filename: ../web\n",
			wantField: "settingsFile.ExternalIcons[0].Filename",
		},
		{
			name:      "negative spawn rate",
			content:   "particles:\n  maxSpawnRate: -1\n",
			wantField: "settingsFile.Particles.MaxSpawnRate",
		},
		{
			name:      "unparsable cadence",
			content:   "particles:\n  cadence: soon\n",
			wantField: "particles.cadence",
		},
		{
			name:      "cadence too short",
			content:   "particles:\n  cadence: 1ms\n",
			wantField: "particles.cadence",
		},
		{
			name:      "velocity bounds inverted",
			content:   "particles:\n  minVelocity: 0.01\n  maxVelocity: 0.001\n",
			wantField: "particles.minVelocity",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newLoader(t).Parse([]byte(tt.content), false)
			require.Error(t, err)
			assert.ErrorContains(t, err, "invalid settings")

			zErr, ok := err.(*zerr.Error)
			require.True(t, ok, "expected *zerr.Error, got %T", err)
			assert.Equal(t, tt.wantField, zErr.Metadata()["field"])
		})
	}
}

func TestParse_RejectsBadColor(t *testing.T) {
	_, err := newLoader(t).Parse([]byte("style:\n  healthyColor: chartreuse-ish\n"), false)
	require.Error(t, err)
	assert.ErrorContains(t, err, "invalid settings")
	assert.ErrorContains(t, err, "invalid color")
}
