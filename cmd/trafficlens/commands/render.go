package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/trafficlens/internal/app"
)

func (c *CLI) newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the graph to a PNG image",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			output, _ := cmd.Flags().GetString("output")
			frames, _ := cmd.Flags().GetInt("frames")
			interval, _ := cmd.Flags().GetDuration("interval")
			frameDir, _ := cmd.Flags().GetString("frames-dir")
			gif, _ := cmd.Flags().GetString("gif")
			fitSelection, _ := cmd.Flags().GetBool("fit-selection")

			return c.app.Render(cmd.Context(), app.RenderOptions{
				ViewOptions:  viewOptions(cmd),
				Output:       output,
				Frames:       frames,
				Interval:     interval,
				FrameDir:     frameDir,
				GIF:          gif,
				FitSelection: fitSelection,
			})
		},
	}
	addViewFlags(cmd)
	cmd.Flags().StringP("output", "o", "trafficlens.png", "PNG file for the last frame, - for stdout")
	cmd.Flags().IntP("frames", "n", 1, "Number of frames to simulate")
	cmd.Flags().Duration("interval", app.DefaultFrameInterval, "Simulated time between frames")
	cmd.Flags().String("frames-dir", "", "Store every frame content-addressed in this directory")
	cmd.Flags().String("gif", "", "Write all frames as an animated GIF")
	cmd.Flags().Bool("fit-selection", false, "Fit the view to the selection and its neighbours")
	return cmd
}
