package commands

// Root command for Cobra CLI
// perfplot <baseline.json> renders the chart; cobra's own error and usage
// printing is silenced so the tool controls its console contract

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"perfplot/internal/infra/log"
	"perfplot/internal/perfchart"
)

var rootCmd = &cobra.Command{
	Use:   "perfplot <baseline.json>",
	Short: "Render a horizontal bar chart PNG from a performance baseline JSON file",
	Long: `perfplot reads a JSON array of {"Name", "AvgMs"} performance records and
writes a horizontal bar chart summarizing average elapsed time per scenario.
The PNG is written next to the input as plot-<stem>.png.`,
	Version:       "1.0.0",
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlot,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().Int("width", perfchart.DefaultWidth, "Chart width in pixels (env: PERFPLOT_CHART_WIDTH)")
	rootCmd.Flags().Int("height", perfchart.DefaultHeight, "Chart height in pixels (env: PERFPLOT_CHART_HEIGHT)")
	rootCmd.Flags().String("font", "", "Path to a TTF font for chart text (env: PERFPLOT_CHART_FONT)")
	rootCmd.Flags().String("out", "", "Output PNG path, default plot-<stem>.png next to the input (env: PERFPLOT_OUTPUT_PATH)")
	rootCmd.Flags().BoolP("verbose", "v", false, "Enable debug logging to stderr (env: PERFPLOT_VERBOSE)")

	rootCmd.AddCommand(sampleCmd)
}

func runPlot(cmd *cobra.Command, args []string) error {
	opts, err := perfchart.LoadOptions(cmd.Flags())
	if err != nil {
		log.LogError("Failed to resolve options", zap.Error(err))
		return err
	}
	log.SetVerbose(opts.App.Verbose)

	if len(args) < 1 {
		fmt.Println("Usage: perfplot <baseline.json>")
		return &perfchart.UsageError{}
	}

	out, err := perfchart.Render(args[0], opts)
	if err != nil {
		var notFoundErr *perfchart.NotFoundError
		if errors.As(err, &notFoundErr) {
			fmt.Println("File not found: " + notFoundErr.Path)
			return err
		}
		log.LogError("Failed to render chart", zap.String("path", args[0]), zap.Error(err))
		return err
	}

	fmt.Println("Wrote " + out)
	return nil
}
