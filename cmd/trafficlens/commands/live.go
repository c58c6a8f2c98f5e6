package commands

import (
	"time"

	"github.com/spf13/cobra"
	"go.trai.ch/trafficlens/internal/app"
)

func (c *CLI) newLiveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "live",
		Short: "Run the render loop with a live dashboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			snapshot, _ := cmd.Flags().GetString("snapshot")
			fps, _ := cmd.Flags().GetInt("fps")
			refresh, _ := cmd.Flags().GetDuration("refresh")
			outputMode, _ := cmd.Flags().GetString("output-mode")
			ci, _ := cmd.Flags().GetBool("ci")
			metricsAddr, _ := cmd.Flags().GetString("metrics-addr")
			logFile, _ := cmd.Flags().GetString("log-file")

			// If --ci is set, override output-mode to "plain"
			if ci {
				outputMode = "plain"
			}

			var frameInterval time.Duration
			if fps > 0 {
				frameInterval = time.Second / time.Duration(fps)
			}

			return c.app.Live(cmd.Context(), app.LiveOptions{
				ViewOptions:     viewOptions(cmd),
				Snapshot:        snapshot,
				FrameInterval:   frameInterval,
				RefreshInterval: refresh,
				OutputMode:      outputMode,
				MetricsAddr:     metricsAddr,
				LogFile:         logFile,
			})
		},
	}
	addViewFlags(cmd)
	cmd.Flags().String("snapshot", "", "Write the current frame to this PNG after every refresh")
	cmd.Flags().Int("fps", 30, "Target frames per second")
	cmd.Flags().Duration("refresh", app.DefaultRefreshInterval, "Interval between graph refreshes")
	cmd.Flags().StringP("output-mode", "o", "auto", "Output mode: auto, dashboard, or plain")
	cmd.Flags().Bool("ci", false, "Use plain output mode (shorthand for --output-mode=plain)")
	cmd.Flags().String("metrics-addr", "", "Serve Prometheus metrics on this address, e.g. :9090")
	cmd.Flags().String("log-file", "", "Write logs to this file while the dashboard runs")
	return cmd
}
