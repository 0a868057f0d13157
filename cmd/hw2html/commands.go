package main

import (
	"fmt"
	"io"
	"os"

	"github.com/k0kubun/pp"

	hw2html "github.com/alnah/go-hw2html"
	"github.com/alnah/go-hw2html/internal/document"
	"github.com/alnah/go-hw2html/internal/logger"
)

// runCSS prints the resolved base stylesheet, or the built-in style names
// with --list.
func runCSS(args []string, env *Environment) error {
	flags, err := parseCSSFlags(args, env.Stderr)
	if err != nil {
		return err
	}

	log := logger.NewWithLevel(env.Stderr, logger.LevelFor(flags.common.quiet, flags.common.verbose))
	cfg, err := loadConfig(flags.common.config, log)
	if err != nil {
		return err
	}
	if flags.assetPath != "" {
		cfg.Assets.BasePath = flags.assetPath
	}

	if flags.list {
		names, err := hw2html.ListStyles(cfg.Assets.BasePath)
		if err != nil {
			return err
		}
		for _, name := range names {
			fmt.Fprintln(env.Stdout, name)
		}
		return nil
	}

	if flags.style != "" {
		cfg.CSS.Style = flags.style
		cfg.CSS.Clean = false
	}

	conv, err := hw2html.NewConverter(converterOptions(cfg, 0)...)
	if err != nil {
		return err
	}
	defer conv.Close()

	_, err = io.WriteString(env.Stdout, conv.Style())
	return err
}

// runConfig prints the effective configuration as YAML.
func runConfig(args []string, env *Environment) error {
	flags, err := parseConfigFlags(args, env.Stderr)
	if err != nil {
		return err
	}

	log := logger.NewWithLevel(env.Stderr, logger.LevelFor(flags.quiet, flags.verbose))
	cfg, err := loadConfig(flags.config, log)
	if err != nil {
		return err
	}

	out, err := cfg.YAML()
	if err != nil {
		return fmt.Errorf("rendering config: %w", err)
	}
	_, err = env.Stdout.Write(out)
	return err
}

// runDump pretty-prints the parsed document tree of a single input.
// "-" reads from standard input.
func runDump(args []string, env *Environment) error {
	flags, positional, err := parseDumpFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	switch {
	case len(positional) == 0:
		return ErrNoInput
	case len(positional) > 1:
		return fmt.Errorf("%w: dump takes a single input", ErrTooManyArgs)
	}

	r := env.Stdin
	if path := positional[0]; path != "-" {
		f, err := os.Open(path) // #nosec G304 -- user-provided path
		if err != nil {
			return fmt.Errorf("%w: %v", ErrReadInput, err)
		}
		defer f.Close()
		r = f
	}

	doc, err := document.ParseReader(r)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadInput, err)
	}

	pp.ColoringEnabled = !flags.noColor
	_, err = pp.Fprintln(env.Stdout, doc)
	return err
}
