package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// pageFlags holds PDF page layout flags.
type pageFlags struct {
	size        string
	orientation string
	margin      float64
}

// styleFlags holds stylesheet and head flags.
type styleFlags struct {
	style     string // base style name, file path or inline CSS
	css       string // extra CSS file appended after the base style
	clean     bool   // drop the base style
	engine    string // math engine script src
	assetPath string // custom styles directory
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common  commonFlags
	output  string
	workers int
	timeout string
	pdf     bool
	style   styleFlags
	page    pageFlags
}

// cssFlags holds flags for the css command.
type cssFlags struct {
	common    commonFlags
	style     string
	assetPath string
	list      bool
}

// dumpFlags holds flags for the dump command.
type dumpFlags struct {
	noColor bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addStyleFlags adds stylesheet flags to a FlagSet.
func addStyleFlags(fs *flag.FlagSet, f *styleFlags) {
	fs.StringVar(&f.style, "style", "", "base style name, CSS file path or inline CSS")
	fs.StringVar(&f.css, "css", "", "extra CSS file appended after the base style")
	fs.BoolVar(&f.clean, "clean", false, "omit the base style")
	fs.StringVar(&f.engine, "engine", "", "math engine script src written to <head>")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom styles directory")
}

// addPageFlags adds page layout flags to a FlagSet.
func addPageFlags(fs *flag.FlagSet, f *pageFlags) {
	fs.StringVarP(&f.size, "page-size", "p", "", "PDF page size: letter, a4, legal")
	fs.StringVar(&f.orientation, "orientation", "", "PDF orientation: portrait, landscape")
	fs.Float64Var(&f.margin, "margin", 0, "PDF margin in inches (0.25-3.0)")
}

// newFlagSet creates a FlagSet that reports errors instead of exiting.
func newFlagSet(name string, stderr io.Writer, usage func(io.Writer)) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { usage(stderr) }
	return fs
}

// parseConvertFlags parses convert command flags and returns positional args.
func parseConvertFlags(args []string, stderr io.Writer) (*convertFlags, []string, error) {
	fs := newFlagSet("convert", stderr, printConvertUsage)
	f := &convertFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "PDF page load timeout (e.g., 30s, 2m)")
	fs.BoolVar(&f.pdf, "pdf", false, "also write a PDF next to each HTML file")

	addCommonFlags(fs, &f.common)
	addStyleFlags(fs, &f.style)
	addPageFlags(fs, &f.page)

	if err := fs.Parse(args); err != nil {
		return nil, nil, parseError(err)
	}
	return f, fs.Args(), nil
}

// parseCSSFlags parses css command flags.
func parseCSSFlags(args []string, stderr io.Writer) (*cssFlags, error) {
	fs := newFlagSet("css", stderr, printCSSUsage)
	f := &cssFlags{}

	fs.StringVar(&f.style, "style", "", "style name, CSS file path or inline CSS")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom styles directory")
	fs.BoolVar(&f.list, "list", false, "list style names, including --asset-path styles")
	addCommonFlags(fs, &f.common)

	if err := fs.Parse(args); err != nil {
		return nil, parseError(err)
	}
	if fs.NArg() > 0 {
		return nil, ErrTooManyArgs
	}
	return f, nil
}

// parseConfigFlags parses config command flags.
func parseConfigFlags(args []string, stderr io.Writer) (*commonFlags, error) {
	fs := newFlagSet("config", stderr, printConfigUsage)
	f := &commonFlags{}
	addCommonFlags(fs, f)

	if err := fs.Parse(args); err != nil {
		return nil, parseError(err)
	}
	if fs.NArg() > 0 {
		return nil, ErrTooManyArgs
	}
	return f, nil
}

// parseDumpFlags parses dump command flags and returns positional args.
func parseDumpFlags(args []string, stderr io.Writer) (*dumpFlags, []string, error) {
	fs := newFlagSet("dump", stderr, printDumpUsage)
	f := &dumpFlags{}
	fs.BoolVar(&f.noColor, "no-color", false, "disable colored output")

	if err := fs.Parse(args); err != nil {
		return nil, nil, parseError(err)
	}
	return f, fs.Args(), nil
}

// parseError wraps flag errors as usage errors. A help request passes through.
func parseError(err error) error {
	if errors.Is(err, flag.ErrHelp) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrInvalidArgs, err)
}
