package hw2html

// Notes:
// - The PDF backend is replaced through withPDFConverter so no browser is
//   launched; the HTML path never touches the backend.
// - Panic recovery is exercised through a backend that panics.

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// Mock Implementations
// ---------------------------------------------------------------------------

type mockPDFConverter struct {
	called    bool
	closed    bool
	inputHTML string
	inputOpts *pdfOptions
	output    []byte
	err       error
}

func (m *mockPDFConverter) ToPDF(ctx context.Context, htmlContent string, opts *pdfOptions) ([]byte, error) {
	m.called = true
	m.inputHTML = htmlContent
	m.inputOpts = opts
	if m.err != nil {
		return nil, m.err
	}
	if m.output != nil {
		return m.output, nil
	}
	return []byte("%PDF-1.4 mock"), nil
}

func (m *mockPDFConverter) Close() error {
	m.closed = true
	return nil
}

type panicPDFConverter struct{}

func (p *panicPDFConverter) ToPDF(ctx context.Context, htmlContent string, opts *pdfOptions) ([]byte, error) {
	panic("simulated panic in PDF backend")
}

func (p *panicPDFConverter) Close() error { return nil }

type mockAssetLoader struct {
	styleContent string
	styleErr     error
	calledWith   string
}

func (m *mockAssetLoader) LoadStyle(name string) (string, error) {
	m.calledWith = name
	if m.styleErr != nil {
		return "", m.styleErr
	}
	return m.styleContent, nil
}

// ---------------------------------------------------------------------------
// Test Options (Internal Dependency Injection)
// ---------------------------------------------------------------------------

func withPDFConverter(pc pdfConverter) Option {
	return func(c *Converter) {
		c.pdfConverter = pc
	}
}

func newTestConverter(t *testing.T, opts ...Option) (*Converter, *mockPDFConverter) {
	t.Helper()
	mock := &mockPDFConverter{}
	conv, err := NewConverter(append([]Option{withPDFConverter(mock)}, opts...)...)
	if err != nil {
		t.Fatalf("NewConverter() error = %v", err)
	}
	t.Cleanup(func() { _ = conv.Close() })
	return conv, mock
}

const sample = "Homework 3\nBob\n\nProblem 1\nShow that $x^2 \\geq 0$.\n//  proof sketch\n\n\nProblem 2\n| n | n^2 |\n|***|***:|\n| 2 | 4 |\n"

// ---------------------------------------------------------------------------
// TestValidateInput - Required fields and page settings
// ---------------------------------------------------------------------------

func TestValidateInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   Input
		wantErr error
	}{
		{
			name:  "empty source",
			input: Input{},
		},
		{
			name:  "html only ignores invalid page",
			input: Input{Source: "T", Page: &PageSettings{Size: "tabloid"}},
		},
		{
			name:    "pdf validates page size",
			input:   Input{Source: "T", PDF: true, Page: &PageSettings{Size: "tabloid", Orientation: "portrait", Margin: 1}},
			wantErr: ErrInvalidPageSize,
		},
		{
			name:  "pdf with nil page uses defaults",
			input: Input{Source: "T", PDF: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := validateInput(tt.input)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("validateInput() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("validateInput() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestConvert - HTML output
// ---------------------------------------------------------------------------

func TestConvert_Success(t *testing.T) {
	t.Parallel()

	conv, mock := newTestConverter(t)

	result, err := conv.Convert(context.Background(), Input{Source: sample})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}

	html := string(result.HTML)
	if !strings.HasPrefix(html, "<!DOCTYPE html>\n<html>\n") {
		t.Errorf("HTML should start with doctype, got %q", html[:min(len(html), 40)])
	}
	for _, want := range []string{
		`<h1 class="strictCenter" id="title">` + "\nHomework 3\n</h1>",
		`<h3 class="strictCenter" id="author">` + "\nBob\n</h3>",
		`<div class="contentDiv" id="content0">`,
		`<div class="contentDiv" id="content1">`,
		"<h4>\nProblem 1\n</h4>",
		"<p>\nShow that $x^2 \\geq 0$.\n</p>",
		"\n  proof sketch\n",
		`<th style="text-align: left">`,
		`<th style="text-align: right">`,
		"<style>\n",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("HTML missing %q", want)
		}
	}
	if result.Document == nil || result.Document.Title != "Homework 3" || len(result.Document.Sections) != 2 {
		t.Errorf("Document = %+v, want parsed title and two sections", result.Document)
	}
	if result.PDF != nil {
		t.Error("PDF should be nil when not requested")
	}
	if mock.called {
		t.Error("PDF backend should not be called for HTML output")
	}
}

func TestConvert_EmptySource(t *testing.T) {
	t.Parallel()

	conv, _ := newTestConverter(t)

	result, err := conv.Convert(context.Background(), Input{})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	html := string(result.HTML)
	if !strings.Contains(html, `<div class="contentDiv" id="content0">`) {
		t.Errorf("empty source should still render content0:\n%s", html)
	}
	if strings.Contains(html, `id="title"`) || strings.Contains(html, "<h4>") {
		t.Errorf("empty source should render no title or headings:\n%s", html)
	}
	if result.Document.HasTitle || len(result.Document.Sections) != 0 {
		t.Errorf("Document = %+v, want empty", result.Document)
	}
}

func TestConvert_VeryLongLine(t *testing.T) {
	t.Parallel()

	conv, _ := newTestConverter(t)

	long := strings.Repeat("x", 2<<20)
	result, err := conv.Convert(context.Background(), Input{Source: "Homework 1\nAlice\n\nIntro\n" + long})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if result.Document.Title != "Homework 1" || len(result.Document.Sections) != 1 {
		t.Fatalf("Document title %q with %d sections, want Homework 1 with 1", result.Document.Title, len(result.Document.Sections))
	}
	html := string(result.HTML)
	for _, want := range []string{`id="title">` + "\nHomework 1\n", "<h4>\nIntro\n</h4>", "<p>\n" + long + "\n</p>"} {
		if !strings.Contains(html, want) {
			t.Errorf("HTML missing %q", want[:min(len(want), 40)])
		}
	}
}

func TestConvert_CSSOrder(t *testing.T) {
	t.Parallel()

	conv, _ := newTestConverter(t, WithStyle("body { color: red; }"))

	result, err := conv.Convert(context.Background(), Input{Source: sample, CSS: "body { color: blue; }"})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}

	html := string(result.HTML)
	base := strings.Index(html, "color: red")
	extra := strings.Index(html, "color: blue")
	if base < 0 || extra < 0 || base > extra {
		t.Errorf("expected converter style before input CSS, got positions %d and %d", base, extra)
	}
	if strings.Count(html, "<style>") != 1 {
		t.Error("expected a single <style> element")
	}
}

func TestConvert_NoHeadWithoutStyleOrEngine(t *testing.T) {
	t.Parallel()

	conv, _ := newTestConverter(t, WithStyle(""))

	result, err := conv.Convert(context.Background(), Input{Source: sample})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if strings.Contains(string(result.HTML), "<head>") {
		t.Error("expected no <head> without style or engine")
	}
	if conv.Style() != "" {
		t.Errorf("Style() = %q, want empty", conv.Style())
	}
}

func TestConvert_Engine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		opts    []Option
		engine  string
		wantSrc string
	}{
		{name: "no engine", opts: []Option{WithStyle("")}},
		{name: "converter engine", opts: []Option{WithEngine("mathjax.js")}, wantSrc: "mathjax.js"},
		{name: "input overrides converter", opts: []Option{WithEngine("mathjax.js")}, engine: "katex.js", wantSrc: "katex.js"},
		{name: "input only", engine: "katex.js", wantSrc: "katex.js"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			conv, _ := newTestConverter(t, tt.opts...)
			result, err := conv.Convert(context.Background(), Input{Source: sample, Engine: tt.engine})
			if err != nil {
				t.Fatalf("Convert() error = %v", err)
			}

			html := string(result.HTML)
			if tt.wantSrc == "" {
				if strings.Contains(html, "<script") {
					t.Error("unexpected <script>")
				}
				return
			}
			if !strings.Contains(html, `<script src="`+tt.wantSrc+`">`) {
				t.Errorf("expected script src %q in head", tt.wantSrc)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestConvert_PDF - Backend delegation
// ---------------------------------------------------------------------------

func TestConvert_PDF(t *testing.T) {
	t.Parallel()

	conv, mock := newTestConverter(t)
	mock.output = []byte("%PDF-1.7 test")
	page := &PageSettings{Size: PageSizeA4, Orientation: OrientationLandscape, Margin: 1}

	result, err := conv.Convert(context.Background(), Input{Source: sample, PDF: true, Page: page})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}

	if string(result.PDF) != "%PDF-1.7 test" {
		t.Errorf("PDF = %q, want backend output", result.PDF)
	}
	if mock.inputHTML != string(result.HTML) {
		t.Error("backend should receive the rendered HTML")
	}
	if mock.inputOpts == nil || mock.inputOpts.Page != page {
		t.Errorf("backend options = %+v, want page settings passed through", mock.inputOpts)
	}
}

func TestConvert_PDFConverterError(t *testing.T) {
	t.Parallel()

	conv, mock := newTestConverter(t)
	mock.err = ErrBrowserConnect

	_, err := conv.Convert(context.Background(), Input{Source: sample, PDF: true})
	if !errors.Is(err, ErrBrowserConnect) {
		t.Errorf("Convert() error = %v, want ErrBrowserConnect", err)
	}
	if !strings.Contains(err.Error(), "converting to PDF") {
		t.Errorf("error should carry context, got %q", err.Error())
	}
}

func TestConvert_InvalidPageOnlyForPDF(t *testing.T) {
	t.Parallel()

	conv, mock := newTestConverter(t)
	page := &PageSettings{Size: PageSizeLetter, Orientation: OrientationPortrait, Margin: 10}

	if _, err := conv.Convert(context.Background(), Input{Source: sample, Page: page}); err != nil {
		t.Errorf("HTML conversion should ignore page settings, got %v", err)
	}

	_, err := conv.Convert(context.Background(), Input{Source: sample, PDF: true, Page: page})
	if !errors.Is(err, ErrInvalidMargin) {
		t.Errorf("Convert() error = %v, want ErrInvalidMargin", err)
	}
	if mock.called {
		t.Error("backend should not be called with invalid page settings")
	}
}

func TestConvert_RecoversPanic(t *testing.T) {
	t.Parallel()

	conv, err := NewConverter(withPDFConverter(&panicPDFConverter{}))
	if err != nil {
		t.Fatalf("NewConverter() error = %v", err)
	}
	defer conv.Close()

	_, err = conv.Convert(context.Background(), Input{Source: sample, PDF: true})
	if !errors.Is(err, ErrHTMLConversion) {
		t.Fatalf("Convert() error = %v, want ErrHTMLConversion", err)
	}
	if !strings.Contains(err.Error(), "internal error") {
		t.Errorf("expected 'internal error' in message, got %q", err.Error())
	}
}

func TestConvert_ContextCancellation(t *testing.T) {
	t.Parallel()

	conv, _ := newTestConverter(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := conv.Convert(ctx, Input{Source: sample})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Convert() error = %v, want context.Canceled", err)
	}
}

// ---------------------------------------------------------------------------
// TestNewConverter - Style resolution and options
// ---------------------------------------------------------------------------

func TestNewConverter_Style(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cssPath := filepath.Join(dir, "custom.css")
	if err := os.WriteFile(cssPath, []byte("h4 { color: green; }"), 0600); err != nil {
		t.Fatalf("setup: %v", err)
	}

	tests := []struct {
		name      string
		style     *string
		wantStyle string
		wantErr   error
		wantAny   bool
	}{
		{name: "default style", wantStyle: ".strictCenter"},
		{name: "style by name", style: strPtr("print"), wantStyle: "page-break-inside"},
		{name: "inline css", style: strPtr("p { margin: 0; }"), wantStyle: "p { margin: 0; }"},
		{name: "css file path", style: strPtr(cssPath), wantStyle: "color: green"},
		{name: "disabled", style: strPtr("")},
		{name: "unknown name", style: strPtr("nonexistent"), wantErr: ErrStyleNotFound},
		{name: "missing file", style: strPtr(filepath.Join(dir, "missing.css")), wantAny: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			opts := []Option{withPDFConverter(&mockPDFConverter{})}
			if tt.style != nil {
				opts = append(opts, WithStyle(*tt.style))
			}
			conv, err := NewConverter(opts...)

			if tt.wantErr != nil || tt.wantAny {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
					t.Errorf("NewConverter() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewConverter() error = %v", err)
			}
			defer conv.Close()

			if tt.wantStyle == "" {
				if conv.Style() != "" {
					t.Errorf("Style() = %q, want empty", conv.Style())
				}
				return
			}
			if !strings.Contains(conv.Style(), tt.wantStyle) {
				t.Errorf("Style() missing %q", tt.wantStyle)
			}
		})
	}
}

func strPtr(s string) *string { return &s }

func TestNewConverter_InvalidAssetPath(t *testing.T) {
	t.Parallel()

	_, err := NewConverter(WithAssetPath("/nonexistent/assets/dir"), withPDFConverter(&mockPDFConverter{}))
	if !errors.Is(err, ErrInvalidAssetPath) {
		t.Errorf("NewConverter() error = %v, want ErrInvalidAssetPath", err)
	}
}

func TestNewConverter_AssetPathOverride(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "styles"), 0755); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "styles", "default.css"), []byte("/* mine */"), 0600); err != nil {
		t.Fatalf("setup: %v", err)
	}

	conv, _ := newTestConverter(t, WithAssetPath(dir))
	if conv.Style() != "/* mine */" {
		t.Errorf("Style() = %q, want override from asset path", conv.Style())
	}
}

func TestWithAssetLoader(t *testing.T) {
	t.Parallel()

	t.Run("custom loader supplies the style", func(t *testing.T) {
		t.Parallel()

		loader := &mockAssetLoader{styleContent: "/* custom */"}
		conv, _ := newTestConverter(t, WithAssetLoader(loader), WithStyle("corporate"))

		if loader.calledWith != "corporate" {
			t.Errorf("loader called with %q, want corporate", loader.calledWith)
		}
		if conv.Style() != "/* custom */" {
			t.Errorf("Style() = %q, want loader content", conv.Style())
		}
	})

	t.Run("loader error is returned", func(t *testing.T) {
		t.Parallel()

		loader := &mockAssetLoader{styleErr: ErrStyleNotFound}
		_, err := NewConverter(WithAssetLoader(loader), withPDFConverter(&mockPDFConverter{}))
		if !errors.Is(err, ErrStyleNotFound) {
			t.Errorf("NewConverter() error = %v, want ErrStyleNotFound", err)
		}
	})
}

func TestWithTimeout(t *testing.T) {
	t.Parallel()

	t.Run("sets timeout", func(t *testing.T) {
		t.Parallel()

		conv, _ := newTestConverter(t, WithTimeout(5e9))
		if conv.cfg.timeout != 5e9 {
			t.Errorf("timeout = %v, want 5s", conv.cfg.timeout)
		}
	})

	t.Run("panics on non-positive duration", func(t *testing.T) {
		t.Parallel()

		defer func() {
			if recover() == nil {
				t.Error("expected panic for zero duration")
			}
		}()
		WithTimeout(0)
	})
}

func TestConverter_Close(t *testing.T) {
	t.Parallel()

	mock := &mockPDFConverter{}
	conv, err := NewConverter(withPDFConverter(mock))
	if err != nil {
		t.Fatalf("NewConverter() error = %v", err)
	}
	if err := conv.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if !mock.closed {
		t.Error("Close() should close the PDF backend")
	}
}
