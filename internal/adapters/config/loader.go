// Package config loads and watches the visualization settings file.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"go.trai.ch/trafficlens/internal/core/domain"
	"go.trai.ch/trafficlens/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the settings file looked up when no path is given.
const DefaultFilename = "trafficlens.yaml"

const minCadence = 5 * time.Millisecond

var _ ports.SettingsLoader = (*Loader)(nil)

// Loader implements ports.SettingsLoader for YAML and TOML files.
type Loader struct {
	Logger   ports.Logger
	validate *validator.Validate
}

// NewLoader creates a new settings loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{
		Logger:   logger,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Load reads the settings at path and merges them over domain.DefaultSettings.
// The format follows the extension: ".toml" is TOML, anything else YAML.
func (l *Loader) Load(path string) (*domain.Settings, error) {
	defaults := domain.DefaultSettings()
	if path == "" {
		return &defaults, nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read settings file"), "path", path)
	}

	settings, err := l.Parse(data, strings.EqualFold(filepath.Ext(path), ".toml"))
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}

	l.Logger.Info("loaded settings from " + path)
	return settings, nil
}

// Parse decodes settings from data, either TOML or YAML.
func (l *Loader) Parse(data []byte, isTOML bool) (*domain.Settings, error) {
	var file settingsFile
	if isTOML {
		if _, err := toml.Decode(string(data), &file); err != nil {
			return nil, zerr.Wrap(err, "failed to parse settings file")
		}
	} else if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, "failed to parse settings file")
	}

	if err := l.validate.Struct(&file); err != nil {
		return nil, validationError(err)
	}

	settings := domain.DefaultSettings()
	if err := apply(&settings, &file); err != nil {
		return nil, err
	}
	if err := check(&settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

func apply(s *domain.Settings, f *settingsFile) error {
	setBool(&s.Animate, f.Animate)
	setBool(&s.ShowConnectionStats, f.ShowConnectionStats)
	setBool(&s.ShowDebugInformation, f.ShowDebugInformation)
	setBool(&s.ShowBaselines, f.ShowBaselines)
	setBool(&s.ShowDummyData, f.ShowDummyData)
	setBool(&s.SumTimings, f.SumTimings)
	setBool(&s.FilterEmptyConnections, f.FilterEmptyConnections)

	if f.ServiceIcons != nil {
		s.ServiceIcons = make([]domain.ServiceIcon, 0, len(f.ServiceIcons))
		for _, icon := range f.ServiceIcons {
			s.ServiceIcons = append(s.ServiceIcons, domain.ServiceIcon{Pattern: icon.Pattern, Filename: icon.Filename})
		}
	}
	if f.ExternalIcons != nil {
		s.ExternalIcons = make([]domain.ExternalIcon, 0, len(f.ExternalIcons))
		for _, icon := range f.ExternalIcons {
			s.ExternalIcons = append(s.ExternalIcons, domain.ExternalIcon{Name: icon.Name, Filename: icon.Filename})
		}
	}

	if st := f.Style; st != nil {
		setString(&s.Style.HealthyColor, st.HealthyColor)
		setString(&s.Style.DangerColor, st.DangerColor)
		setString(&s.Style.UnknownColor, st.UnknownColor)
	}

	if p := f.Particles; p != nil {
		if p.Cadence != "" {
			d, err := time.ParseDuration(p.Cadence)
			if err != nil {
				return zerr.With(zerr.Wrap(err, domain.ErrInvalidSettings.Error()), "field", "particles.cadence")
			}
			s.Particles.Cadence = d
		}
		if p.MaxSpawnRate != nil {
			s.Particles.MaxSpawnRate = *p.MaxSpawnRate
		}
		if p.MinVelocity != nil {
			s.Particles.MinVelocity = *p.MinVelocity
		}
		if p.MaxVelocity != nil {
			s.Particles.MaxVelocity = *p.MaxVelocity
		}
		if p.MaxPerEdge != nil {
			s.Particles.MaxPerEdge = *p.MaxPerEdge
		}
	}
	return nil
}

// check validates the merged result, catching constraints that span fields.
func check(s *domain.Settings) error {
	if _, err := domain.NewPalette(s.Style); err != nil {
		return zerr.Wrap(err, domain.ErrInvalidSettings.Error())
	}
	if s.Particles.Cadence < minCadence {
		return zerr.With(zerr.With(domain.ErrInvalidSettings, "field", "particles.cadence"),
			"value", s.Particles.Cadence.String())
	}
	if s.Particles.MinVelocity > s.Particles.MaxVelocity {
		return zerr.With(domain.ErrInvalidSettings, "field", "particles.minVelocity")
	}
	return nil
}

func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return zerr.With(zerr.With(domain.ErrInvalidSettings, "field", fe.Namespace()), "rule", fe.Tag())
	}
	return zerr.Wrap(err, domain.ErrInvalidSettings.Error())
}

func setBool(dst, src *bool) {
	if src != nil {
		*dst = *src
	}
}

func setString(dst *string, src string) {
	if src != "" {
		*dst = src
	}
}
