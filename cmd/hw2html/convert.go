package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	hw2html "github.com/alnah/go-hw2html"
	"github.com/alnah/go-hw2html/internal/config"
	"github.com/alnah/go-hw2html/internal/logger"
)

// timeoutEnv overrides the PDF timeout when --timeout is not given.
const timeoutEnv = "HW2HTML_TIMEOUT"

// runConvertCmd parses convert flags and runs the conversion under a
// signal-aware context.
func runConvertCmd(args []string, env *Environment) error {
	flags, positional, err := parseConvertFlags(args, env.Stderr)
	if err != nil {
		return err
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	return runConvert(ctx, positional, flags, env)
}

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, positional []string, flags *convertFlags, env *Environment) error {
	start := time.Now()
	log := logger.NewWithLevel(env.Stderr, logger.LevelFor(flags.common.quiet, flags.common.verbose))

	if err := validateWorkers(flags.workers); err != nil {
		return err
	}
	if len(positional) > 3 {
		return fmt.Errorf("%w: expected <input> [output] [css], got %d arguments", ErrTooManyArgs, len(positional))
	}

	cfg, err := loadConfig(flags.common.config, log)
	if err != nil {
		return err
	}

	// Merge CLI flags into config (CLI wins)
	mergeFlags(flags, cfg)

	timeout, err := resolveTimeout(flags.timeout, env.Getenv)
	if err != nil {
		return err
	}

	var page *hw2html.PageSettings
	if cfg.Output.PDF {
		if page, err = buildPageSettings(cfg); err != nil {
			return err
		}
	}

	inputPath, err := resolveInputPath(positional, cfg)
	if err != nil {
		return err
	}

	css, err := readExtraCSS(positionalAt(positional, 2, flags.style.css))
	if err != nil {
		return err
	}

	outputDir := positionalAt(positional, 1, flags.output)
	if outputDir == "" {
		outputDir = cfg.Output.DefaultDir
	}

	files, skipped, err := discoverFiles(inputPath, outputDir)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	for _, path := range skipped {
		log.Skipped(path, "unsupported extension")
	}
	if len(files) == 0 {
		return fmt.Errorf("%w in %s", ErrNoFiles, inputPath)
	}

	size := min(hw2html.ResolvePoolSize(flags.workers), len(files))
	pool := env.NewPool(size, converterOptions(cfg, timeout)...)
	defer pool.Close()
	log.PoolSized(size, len(files))

	results := convertBatch(ctx, pool, files, &conversionParams{
		css:  css,
		pdf:  cfg.Output.PDF,
		page: page,
	})

	summary := printResults(env.Stdout, log, results, flags.common.quiet, flags.common.verbose)
	if len(results) > 1 {
		log.BatchCompleted(summary.Succeeded, summary.Failed, time.Since(start))
	}
	if summary.Failed > 0 {
		return fmt.Errorf("%d of %d conversion(s) failed: %w", summary.Failed, len(results), firstError(results))
	}
	return nil
}

// loadConfig loads the named config, or the defaults when name is empty.
func loadConfig(name string, log *logger.Logger) (*config.Config, error) {
	if name == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.LoadConfig(name)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if path, err := config.Locate(name); err == nil {
		log.ConfigLoaded(path)
	}
	return cfg, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	if flags.pdf {
		cfg.Output.PDF = true
	}

	if flags.style.style != "" {
		cfg.CSS.Style = flags.style.style
	}
	if flags.style.clean {
		cfg.CSS.Clean = true
	}
	if flags.style.engine != "" {
		cfg.Engine.Src = flags.style.engine
	}
	if flags.style.assetPath != "" {
		cfg.Assets.BasePath = flags.style.assetPath
	}

	if flags.page.size != "" {
		cfg.Page.Size = flags.page.size
	}
	if flags.page.orientation != "" {
		cfg.Page.Orientation = flags.page.orientation
	}
	if flags.page.margin > 0 {
		cfg.Page.Margin = flags.page.margin
	}
}

// converterOptions builds the converter options shared by every pool member.
func converterOptions(cfg *config.Config, timeout time.Duration) []hw2html.Option {
	style := cfg.CSS.Style
	if cfg.CSS.Clean {
		style = ""
	}

	opts := []hw2html.Option{
		hw2html.WithStyle(style),
		hw2html.WithEngine(cfg.Engine.Src),
	}
	if cfg.Assets.BasePath != "" {
		opts = append(opts, hw2html.WithAssetPath(cfg.Assets.BasePath))
	}
	if timeout > 0 {
		opts = append(opts, hw2html.WithTimeout(timeout))
	}
	return opts
}

// buildPageSettings converts and validates the config page section.
func buildPageSettings(cfg *config.Config) (*hw2html.PageSettings, error) {
	ps := &hw2html.PageSettings{
		Size:        cfg.Page.Size,
		Orientation: cfg.Page.Orientation,
		Margin:      cfg.Page.Margin,
	}

	if ps.Size == "" {
		ps.Size = hw2html.PageSizeLetter
	}
	if ps.Orientation == "" {
		ps.Orientation = hw2html.OrientationPortrait
	}
	if ps.Margin == 0 {
		ps.Margin = hw2html.DefaultMargin
	}

	if err := ps.Validate(); err != nil {
		return nil, err
	}
	return ps, nil
}

// resolveTimeout returns the PDF timeout: --timeout, then HW2HTML_TIMEOUT.
// Zero means the library default.
func resolveTimeout(flagValue string, getenv func(string) string) (time.Duration, error) {
	value := flagValue
	if value == "" {
		value = getenv(timeoutEnv)
	}
	if value == "" {
		return 0, nil
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidTimeout, value, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: %q (must be positive)", ErrInvalidTimeout, value)
	}
	return d, nil
}

// resolveInputPath determines the input path from args or config.
func resolveInputPath(args []string, cfg *config.Config) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Input.DefaultDir != "" {
		return cfg.Input.DefaultDir, nil
	}
	return "", ErrNoInput
}

// positionalAt returns flagValue when set, else args[i] when present.
func positionalAt(args []string, i int, flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if i < len(args) {
		return args[i]
	}
	return ""
}

// readExtraCSS reads the extra stylesheet, if any.
func readExtraCSS(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	content, err := os.ReadFile(path) // #nosec G304 -- user-provided path
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReadCSS, err)
	}
	return string(content), nil
}

// firstError returns the first failure in results.
func firstError(results []ConversionResult) error {
	for _, r := range results {
		if r.Err != nil {
			return r.Err
		}
	}
	return errors.New("unknown failure")
}
