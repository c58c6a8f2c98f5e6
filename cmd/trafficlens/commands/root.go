// Package commands implements the CLI commands for trafficlens.
package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/trafficlens/internal/adapters/config"
	"go.trai.ch/trafficlens/internal/app"
	"go.trai.ch/trafficlens/internal/build"
)

// CLI represents the command line interface for trafficlens.
type CLI struct {
	app     Application
	log     LogConfigurer
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Render(ctx context.Context, opts app.RenderOptions) error
	Live(ctx context.Context, opts app.LiveOptions) error
	Validate(opts app.ValidateOptions) (app.ValidationReport, error)
}

// LogConfigurer adjusts the process logger from global flags.
type LogConfigurer interface {
	SetJSON(enable bool)
	SetVerbose(enable bool)
}

// New creates a new CLI instance with the given app. A non-nil log receives
// the --log-json and --verbose flags.
func New(a Application, log LogConfigurer) *CLI {
	rootCmd := &cobra.Command{
		Use:           "trafficlens",
		Short:         "Render network traffic graphs with animated particles",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().Bool("log-json", false, "Write logs as JSON")
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")

	c := &CLI{
		app:     a,
		log:     log,
		rootCmd: rootCmd,
	}
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		if c.log == nil {
			return
		}
		jsonLogs, _ := cmd.Flags().GetBool("log-json")
		verbose, _ := cmd.Flags().GetBool("verbose")
		c.log.SetJSON(jsonLogs)
		c.log.SetVerbose(verbose)
	}

	rootCmd.AddCommand(c.newRenderCmd())
	rootCmd.AddCommand(c.newLiveCmd())
	rootCmd.AddCommand(c.newValidateCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// addSettingsFlag registers --settings. Without the flag, trafficlens.yaml in
// the working directory is used when present.
func addSettingsFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("settings", "s", "", "Settings file (YAML or TOML, default ./"+config.DefaultFilename+" if present)")
}

func settingsPath(cmd *cobra.Command) string {
	path, _ := cmd.Flags().GetString("settings")
	if path != "" {
		return path
	}
	if _, err := os.Stat(config.DefaultFilename); err == nil {
		return config.DefaultFilename
	}
	return ""
}

// addViewFlags registers the flags shared by render and live.
func addViewFlags(cmd *cobra.Command) {
	addSettingsFlag(cmd)
	cmd.Flags().StringP("graph", "g", "", "Graph file (YAML or JSON)")
	cmd.Flags().Bool("demo", false, "Draw generated demo traffic instead of a graph file")
	cmd.Flags().String("assets", ".", "Directory holding the icon images")
	cmd.Flags().Int("width", 1280, "View width in CSS pixels")
	cmd.Flags().Int("height", 720, "View height in CSS pixels")
	cmd.Flags().Float64("pixel-ratio", 1, "Device pixels per CSS pixel")
	cmd.Flags().StringSlice("select", nil, "Node or edge IDs to select")
}

func viewOptions(cmd *cobra.Command) app.ViewOptions {
	graph, _ := cmd.Flags().GetString("graph")
	demo, _ := cmd.Flags().GetBool("demo")
	assets, _ := cmd.Flags().GetString("assets")
	width, _ := cmd.Flags().GetInt("width")
	height, _ := cmd.Flags().GetInt("height")
	ratio, _ := cmd.Flags().GetFloat64("pixel-ratio")
	selected, _ := cmd.Flags().GetStringSlice("select")

	return app.ViewOptions{
		SettingsPath: settingsPath(cmd),
		GraphPath:    graph,
		Demo:         demo,
		AssetDir:     assets,
		Width:        width,
		Height:       height,
		PixelRatio:   ratio,
		Select:       selected,
	}
}
