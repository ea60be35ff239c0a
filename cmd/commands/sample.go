package commands

// Command to write an example baseline file
// Gives users something to render without running a benchmark first

import (
	"fmt"

	"github.com/spf13/cobra"

	"perfplot/internal/baseline"
)

var sampleCmd = &cobra.Command{
	Use:   "sample <path>",
	Short: "Write an example baseline JSON file",
	Long:  `Write a small example baseline file that perfplot can render, useful for trying the tool or checking fonts on a new machine.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runSample,
}

func runSample(cmd *cobra.Command, args []string) error {
	records := []baseline.Record{
		{Name: "cold start", AvgMs: 182},
		{Name: "warm start", AvgMs: 47},
		{Name: "parse config", AvgMs: 9},
		{Name: "first query", AvgMs: 121},
		{Name: "cached query", AvgMs: 13},
	}

	if err := baseline.Save(args[0], records); err != nil {
		return err
	}

	fmt.Println("Wrote " + args[0])
	return nil
}
