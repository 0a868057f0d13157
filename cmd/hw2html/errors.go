package main

import (
	"context"
	"errors"
	"strings"

	hw2html "github.com/alnah/go-hw2html"
	"github.com/alnah/go-hw2html/internal/config"
	"github.com/alnah/go-hw2html/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput            = errors.New("no input specified")
	ErrNoFiles            = errors.New("no documents found")
	ErrInvalidArgs        = errors.New("invalid arguments")
	ErrTooManyArgs        = errors.New("too many arguments")
	ErrUnknownCommand     = errors.New("unknown command")
	ErrInvalidExtension   = errors.New("unsupported input extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	ErrInvalidTimeout     = errors.New("invalid timeout")
	ErrReadInput          = errors.New("failed to read input file")
	ErrReadCSS            = errors.New("failed to read CSS file")
	ErrCreateOutputDir    = errors.New("failed to create output directory")
	ErrWriteOutput        = errors.New("failed to write output file")
	ErrConverterInit      = errors.New("failed to initialize converter")
)

// hintFor returns an actionable hint for err, or "" when none applies.
// getenv feeds the browser hints.
func hintFor(err error, getenv hints.Getenv) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(searchedConfigPaths(err))
	case errors.Is(err, hw2html.ErrStyleNotFound):
		return hints.ForStyleNotFound(hw2html.StyleNames())
	case errors.Is(err, hw2html.ErrBrowserConnect):
		return hints.ForBrowserConnect(getenv, hints.InContainer())
	case errors.Is(err, hw2html.ErrPageLoad), errors.Is(err, context.DeadlineExceeded):
		return hints.ForTimeout(timeoutEnv)
	case errors.Is(err, ErrNoFiles), errors.Is(err, ErrInvalidExtension):
		return hints.ForNoInputFiles(inputExtensions)
	case errors.Is(err, ErrReadCSS):
		return hints.ForCSSFile()
	case errors.Is(err, ErrCreateOutputDir):
		return hints.ForOutputDirectory()
	}
	return ""
}

// searchedConfigPaths extracts the paths listed after "tried" in a config
// lookup error.
func searchedConfigPaths(err error) []string {
	_, tried, ok := strings.Cut(err.Error(), "tried ")
	if !ok {
		return nil
	}
	return strings.Split(tried, ", ")
}
