package main

import (
	"errors"
	"os"

	hw2html "github.com/alnah/go-hw2html"
	"github.com/alnah/go-hw2html/internal/config"
)

// Exit codes for the hw2html CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitBrowser = 4 // Browser/Chrome errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, hw2html.ErrBrowserConnect) ||
		errors.Is(err, hw2html.ErrPageCreate) ||
		errors.Is(err, hw2html.ErrPageLoad) ||
		errors.Is(err, hw2html.ErrPDFGeneration) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrReadCSS) ||
		errors.Is(err, ErrCreateOutputDir) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrNoFiles) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidMargin) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, hw2html.ErrInvalidPageSize) ||
		errors.Is(err, hw2html.ErrInvalidOrientation) ||
		errors.Is(err, hw2html.ErrInvalidMargin) ||
		errors.Is(err, hw2html.ErrStyleNotFound) ||
		errors.Is(err, hw2html.ErrInvalidAssetPath) ||
		errors.Is(err, ErrInvalidArgs) ||
		errors.Is(err, ErrTooManyArgs) ||
		errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrInvalidTimeout) {
		return ExitUsage
	}

	return ExitGeneral
}
