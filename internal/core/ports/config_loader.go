package ports

import (
	"context"

	"go.trai.ch/trafficlens/internal/core/domain"
)

// SettingsLoader defines the interface for loading the visualization settings.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type SettingsLoader interface {
	// Load reads the settings file at path and merges it over the defaults.
	// An empty path returns the defaults.
	Load(path string) (*domain.Settings, error)
}

// SettingsWatcher reports settings changes until the context is cancelled.
type SettingsWatcher interface {
	// Watch blocks, calling apply with every successfully reloaded settings value.
	Watch(ctx context.Context, path string, apply func(*domain.Settings)) error
}
