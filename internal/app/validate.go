package app

import (
	"strings"

	"go.trai.ch/trafficlens/internal/adapters/fs"
	"go.trai.ch/trafficlens/internal/core/domain"
	"go.trai.ch/trafficlens/internal/engine/icons"
	"go.trai.ch/zerr"
)

// ValidateOptions selects the files checked by Validate.
type ValidateOptions struct {
	SettingsPath string
	GraphPath    string
	AssetDir     string
}

// ValidationReport summarises what Validate checked.
type ValidationReport struct {
	Settings      domain.Settings
	Nodes         int
	Edges         int
	MissingAssets []string
}

// Validate loads the settings and, when given, the graph file, and checks
// that every icon the settings refer to exists below the asset directory.
// The report is returned alongside ErrMissingAssets so callers can list them.
func (a *App) Validate(opts ValidateOptions) (ValidationReport, error) {
	var report ValidationReport

	settings, err := a.loadSettings(opts.SettingsPath)
	if err != nil {
		return report, err
	}
	report.Settings = settings

	if opts.GraphPath != "" {
		g, err := a.graphs.Load(opts.GraphPath)
		if err != nil {
			return report, zerr.Wrap(err, "failed to load graph")
		}
		report.Nodes = g.NodeCount()
		report.Edges = g.EdgeCount()
	}

	dir := opts.AssetDir
	if dir == "" {
		dir = "."
	}
	missing, err := fs.NewResolver(dir).Missing(icons.RequiredAssets(settings))
	if err != nil {
		return report, err
	}
	report.MissingAssets = missing
	if len(missing) > 0 {
		return report, zerr.With(domain.ErrMissingAssets, "assets", strings.Join(missing, ","))
	}
	return report, nil
}
