package main

// Main entry point of the tool
// Executes the root command and maps errors to process exit codes

import (
	"fmt"
	"os"

	"perfplot/cmd/commands"
	"perfplot/internal/perfchart"
)

func main() {
	err := commands.Execute()
	if err == nil {
		return
	}
	code := perfchart.ExitCode(err)
	if code == perfchart.ExitFailure {
		// Usage and not-found messages are already printed by the command.
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(code)
}
