package perfchart

import (
	"errors"
	"fmt"
)

// Process exit codes. Usage mistakes and missing input files share code 2,
// everything else that fails exits 1.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// UsageError means the caller supplied no baseline path.
type UsageError struct{}

func (e *UsageError) Error() string {
	return "missing baseline path argument"
}

// NotFoundError means the supplied path does not name an existing file.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("file not found: %s", e.Path)
}

// ExitCode maps an error returned by Render (or the command layer) to the
// process exit code the CLI contract requires.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		return ExitUsage
	}
	var notFoundErr *NotFoundError
	if errors.As(err, &notFoundErr) {
		return ExitUsage
	}
	return ExitFailure
}
