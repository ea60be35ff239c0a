package perfchart

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"perfplot/internal/baseline"
	"perfplot/internal/infra/fs"
	logging "perfplot/internal/infra/log"
)

// Render validates path, loads the baseline, draws the chart and writes the
// PNG. It returns the output path on success. Errors carry their exit code
// through ExitCode.
func Render(path string, opts *Options) (string, error) {
	if path == "" {
		return "", &UsageError{}
	}
	if _, err := os.Stat(path); err != nil {
		return "", &NotFoundError{Path: path}
	}

	records, err := baseline.Load(path)
	if err != nil {
		return "", err
	}
	logging.LogDebug("baseline loaded",
		zap.String("path", path),
		zap.Int("records", len(records)))

	dc, err := Draw(records, opts.Chart)
	if err != nil {
		return "", err
	}

	out := opts.Output.Path
	if out == "" {
		out = OutputPath(path)
	}

	// Overwrites any previous chart at this path silently.
	if err := dc.SavePNG(out); err != nil {
		return "", fmt.Errorf("failed to save chart: %w", err)
	}
	size, err := fs.CheckNonEmpty(out)
	if err != nil {
		return "", fmt.Errorf("chart file unusable after rendering: %w", err)
	}
	logging.LogDebug("chart written",
		zap.String("path", out),
		zap.Int64("size", size),
		zap.Int("bars", len(records)))

	return out, nil
}

// OutputPath derives the chart path for an input baseline:
// <parent>/plot-<stem>.png, where stem is the filename with only its final
// extension removed.
func OutputPath(input string) string {
	base := filepath.Base(input)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(filepath.Dir(input), "plot-"+stem+".png")
}
