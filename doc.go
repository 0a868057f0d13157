// Package hw2html converts homework markup documents to HTML, and optionally PDF.
//
// # Quick Start
//
// Create a converter, convert a document, and close when done:
//
//	conv, err := hw2html.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer conv.Close()
//
//	result, err := conv.Convert(ctx, hw2html.Input{
//	    Source: "Homework 1\nAlice\n\nQuestion 1\nThe answer is 42.",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("hw1.html", result.HTML, 0644)
//
// # Document Format
//
// The first lines up to the first empty line form the header: title, then
// author. The rest is split into sections by two consecutive empty lines. The
// first line of a section is its heading. Within a section, a single empty line
// ends a paragraph. Lines starting with "//" are kept verbatim, lines starting
// with "|" are table rows, and any other line is text.
//
// # Conversion Pipeline
//
//  1. Parsing into a document tree (internal/document)
//  2. Assembly into an HTML element tree with head and content groups (internal/pipeline)
//  3. Serialization to a string (internal/htmltree)
//  4. Optional PDF rendering via headless Chrome (go-rod)
//
// # Configuration
//
// Use functional options to customize the converter:
//
//	conv, err := hw2html.NewConverter(
//	    hw2html.WithStyle("print"),
//	    hw2html.WithEngine("https://cdn.example.org/mathjax/tex-chtml.js"),
//	    hw2html.WithAssetPath("/path/to/custom/assets"),
//	)
//
// Per-conversion options are passed via Input:
//
//	result, err := conv.Convert(ctx, hw2html.Input{
//	    Source: content,
//	    CSS:    "th { background: #eef; }",
//	    PDF:    true,
//	    Page:   &hw2html.PageSettings{Size: "a4"},
//	})
//
// # Parallel Processing
//
// For batch conversion, use ConverterPool to manage multiple converters:
//
//	pool := hw2html.NewConverterPool(4)
//	defer pool.Close()
//
//	conv := pool.Acquire()
//	defer pool.Release(conv)
//	result, err := conv.Convert(ctx, input)
//
// # Browser Requirements
//
// Only PDF output needs Chrome/Chromium. The browser is launched on the first
// PDF conversion; the go-rod library downloads a managed Chromium on first run
// if none is found. Set ROD_NO_SANDBOX=1 in containers and ROD_BROWSER_BIN to
// use a custom Chrome binary.
package hw2html
