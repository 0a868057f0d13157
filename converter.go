package hw2html

import (
	"context"
	"fmt"
	"os"

	"github.com/alnah/go-hw2html/internal/assets"
	"github.com/alnah/go-hw2html/internal/document"
	"github.com/alnah/go-hw2html/internal/fileutil"
	"github.com/alnah/go-hw2html/internal/pipeline"
)

// Converter orchestrates the document-to-HTML pipeline and optional PDF export.
// Create with NewConverter(), use Convert() for conversion, and Close() when done.
// A Converter holds no per-document state; the browser used for PDF output is
// its only shared resource, so use one Converter per goroutine or a ConverterPool.
type Converter struct {
	cfg               converterConfig
	assetLoader       assets.AssetLoader // internal loader
	publicAssetLoader AssetLoader        // public loader (from WithAssetLoader)
	pdfConverter      pdfConverter
}

// NewConverter creates a Converter with default configuration.
// Use options to customize behavior (e.g., WithStyle, WithEngine, WithTimeout).
// Returns error if the asset path is invalid or the style cannot be loaded.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg: converterConfig{
			timeout:    defaultTimeout,
			styleInput: DefaultStyle,
		},
		assetLoader: assets.NewEmbeddedLoader(),
	}

	for _, opt := range opts {
		opt(c)
	}

	// Handle WithAssetPath: resolve to internal loader
	if c.cfg.assetPath != "" {
		resolver, err := assets.NewAssetResolver(c.cfg.assetPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
		}
		c.assetLoader = resolver
	}

	// Handle WithAssetLoader: the public interface is a subset of the internal one
	if c.publicAssetLoader != nil {
		c.assetLoader = c.publicAssetLoader
	}

	// Resolve style input (name, path, or CSS content) to CSS content
	if err := c.resolveStyle(); err != nil {
		return nil, err
	}

	// Create PDF converter if not injected (e.g., by tests).
	// The browser itself is only launched by the first PDF conversion.
	if c.pdfConverter == nil {
		c.pdfConverter = newRodConverter(c.cfg.timeout)
	}

	return c, nil
}

// Convert parses input.Source and renders it to a complete HTML document.
// When input.PDF is set, the HTML is also rendered to PDF.
// The context is used for cancellation and timeout.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *ConvertResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: internal error: %v", ErrHTMLConversion, r)
		}
	}()

	if err := validateInput(input); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc := document.ParseString(input.Source)

	engine := c.cfg.engine
	if input.Engine != "" {
		engine = input.Engine
	}

	// Converter style first (base), input CSS last (can override)
	htmlContent := pipeline.Assemble(doc, pipeline.Options{
		CSS:       pipeline.JoinCSS(c.cfg.resolvedStyle, input.CSS),
		ScriptSrc: engine,
	}).String()

	res := &ConvertResult{
		Document: doc,
		HTML:     []byte(htmlContent),
	}

	if !input.PDF {
		return res, nil
	}

	pdfBytes, err := c.pdfConverter.ToPDF(ctx, htmlContent, &pdfOptions{Page: input.Page})
	if err != nil {
		return nil, fmt.Errorf("converting to PDF: %w", err)
	}

	res.PDF = pdfBytes
	return res, nil
}

// Style returns the resolved base CSS, empty when the base style is disabled.
func (c *Converter) Style() string {
	return c.cfg.resolvedStyle
}

// Close releases resources (headless Chrome browser).
func (c *Converter) Close() error {
	if c.pdfConverter != nil {
		return c.pdfConverter.Close()
	}
	return nil
}

// resolveStyle resolves the style input (name, path, or CSS content) to CSS content.
// Called during NewConverter() after options are applied and asset loader is configured.
func (c *Converter) resolveStyle() error {
	input := c.cfg.styleInput
	if input == "" {
		return nil // base style disabled
	}

	// CSS content? (contains { or })
	if fileutil.IsCSS(input) {
		c.cfg.resolvedStyle = input
		return nil
	}

	// File path? (contains / or \)
	if fileutil.IsFilePath(input) {
		content, err := os.ReadFile(input) // #nosec G304 -- user-provided path
		if err != nil {
			return fmt.Errorf("loading style file %q: %w", input, err)
		}
		c.cfg.resolvedStyle = string(content)
		return nil
	}

	// Style name -> use asset loader
	css, err := c.assetLoader.LoadStyle(input)
	if err != nil {
		return fmt.Errorf("loading style %q: %w", input, convertAssetError(err))
	}
	c.cfg.resolvedStyle = css
	return nil
}

// validateInput checks the page settings of a PDF request.
// Any Source is valid: empty or malformed text still parses into a document.
func validateInput(input Input) error {
	if input.PDF {
		if err := input.Page.Validate(); err != nil {
			return err
		}
	}
	return nil
}
