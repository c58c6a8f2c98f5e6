package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/trafficlens/internal/app"
)

func (c *CLI) newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check the settings, graph file and icon assets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			graph, _ := cmd.Flags().GetString("graph")
			assets, _ := cmd.Flags().GetString("assets")

			report, err := c.app.Validate(app.ValidateOptions{
				SettingsPath: settingsPath(cmd),
				GraphPath:    graph,
				AssetDir:     assets,
			})

			out := cmd.OutOrStdout()
			for _, asset := range report.MissingAssets {
				_, _ = fmt.Fprintf(out, "missing asset: %s\n", asset)
			}
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(out, "settings ok: %d service icons, %d external icons\n",
				len(report.Settings.ServiceIcons), len(report.Settings.ExternalIcons))
			if graph != "" {
				_, _ = fmt.Fprintf(out, "graph ok: %d nodes, %d edges\n", report.Nodes, report.Edges)
			}
			return nil
		},
	}
	addSettingsFlag(cmd)
	cmd.Flags().StringP("graph", "g", "", "Graph file to check")
	cmd.Flags().String("assets", ".", "Directory holding the icon images")
	return cmd
}
