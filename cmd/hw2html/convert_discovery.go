package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	hw2html "github.com/alnah/go-hw2html"
	"github.com/alnah/go-hw2html/internal/fileutil"
)

// inputExtensions lists the document extensions picked up from directories.
var inputExtensions = []string{".hw", ".txt"}

// Output extensions.
const (
	htmlExt = ".html"
	pdfExt  = ".pdf"
)

// FileToConvert represents a single file to process.
type FileToConvert struct {
	InputPath  string
	OutputPath string // HTML destination
}

// discoverFiles finds the documents to convert.
// A file input is taken as is, whatever its extension. A directory is walked
// recursively for inputExtensions; other files are returned as skipped.
func discoverFiles(inputPath, outputDir string) (files []FileToConvert, skipped []string, err error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, nil, err
	}

	if !info.IsDir() {
		if fileutil.HasExtension(inputPath, htmlExt) {
			return nil, nil, fmt.Errorf("%w: %s would be overwritten by its own output", ErrInvalidExtension, inputPath)
		}
		outPath := resolveOutputPath(inputPath, outputDir, "")
		return []FileToConvert{{InputPath: inputPath, OutputPath: outPath}}, nil, nil
	}

	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() {
			return nil
		}
		if !fileutil.HasExtension(path, inputExtensions...) {
			skipped = append(skipped, path)
			return nil
		}
		outPath := resolveOutputPath(path, outputDir, inputPath)
		files = append(files, FileToConvert{InputPath: path, OutputPath: outPath})
		return nil
	})

	return files, skipped, err
}

// resolveOutputPath determines the HTML output path for a document.
// Without outputDir the HTML lands next to the source. A single input may
// name its output file directly with an .html outputDir.
func resolveOutputPath(inputPath, outputDir, baseInputDir string) string {
	base := fileutil.ReplaceExtension(filepath.Base(inputPath), htmlExt)

	if outputDir == "" {
		return filepath.Join(filepath.Dir(inputPath), base)
	}

	if baseInputDir == "" && fileutil.HasExtension(outputDir, htmlExt) {
		return outputDir
	}

	if baseInputDir != "" {
		relPath, err := filepath.Rel(baseInputDir, inputPath)
		if err == nil {
			return filepath.Join(outputDir, filepath.Dir(relPath), base)
		}
	}

	return filepath.Join(outputDir, base)
}

// pdfOutputPath returns the PDF path written next to an HTML output.
func pdfOutputPath(htmlPath string) string {
	if !strings.EqualFold(filepath.Ext(htmlPath), htmlExt) {
		return htmlPath + pdfExt
	}
	return fileutil.ReplaceExtension(htmlPath, pdfExt)
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > hw2html.MaxPoolSize {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, hw2html.MaxPoolSize)
	}
	return nil
}
