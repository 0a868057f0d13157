package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/dustin/go-humanize"

	hw2html "github.com/alnah/go-hw2html"
	"github.com/alnah/go-hw2html/internal/fileutil"
	"github.com/alnah/go-hw2html/internal/logger"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// CLIConverter is the interface for the conversion service.
type CLIConverter interface {
	Convert(ctx context.Context, input hw2html.Input) (*hw2html.ConvertResult, error)
}

// Compile-time interface implementation check.
var _ CLIConverter = (*hw2html.Converter)(nil)

// Pool abstracts converter pool operations for testability.
type Pool interface {
	Acquire() (CLIConverter, error)
	Release(CLIConverter)
	Size() int
	Close() error
}

// poolAdapter exposes a *hw2html.ConverterPool as a Pool.
type poolAdapter struct {
	pool *hw2html.ConverterPool
}

// Compile-time check that poolAdapter implements Pool.
var _ Pool = (*poolAdapter)(nil)

// newConverterPool is the production Pool factory.
func newConverterPool(size int, opts ...hw2html.Option) Pool {
	return &poolAdapter{pool: hw2html.NewConverterPool(size, opts...)}
}

func (a *poolAdapter) Acquire() (CLIConverter, error) {
	conv, err := a.pool.Acquire()
	if err != nil {
		return nil, err
	}
	return conv, nil
}

// Release panics when c did not come from this adapter.
func (a *poolAdapter) Release(c CLIConverter) {
	conv, ok := c.(*hw2html.Converter)
	if !ok {
		panic(fmt.Sprintf("poolAdapter.Release: unexpected type %T", c))
	}
	a.pool.Release(conv)
}

func (a *poolAdapter) Size() int    { return a.pool.Size() }
func (a *poolAdapter) Close() error { return a.pool.Close() }

// conversionParams groups per-document inputs shared across a batch.
type conversionParams struct {
	css  string                // extra CSS appended after the base style
	pdf  bool                  // also write a PDF
	page *hw2html.PageSettings // PDF page settings
}

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	PDFPath    string // empty unless a PDF was written
	HTMLBytes  int
	PDFBytes   int
	Err        error
	Duration   time.Duration
}

// convertBatch processes files concurrently using the converter pool.
// Results are returned in the order of files.
func convertBatch(ctx context.Context, pool Pool, files []FileToConvert, params *conversionParams) []ConversionResult {
	if len(files) == 0 {
		return nil
	}

	concurrency := min(pool.Size(), len(files))

	results := make([]ConversionResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			conv, err := pool.Acquire()
			if err != nil {
				// Converter creation failed, fail the jobs this worker takes.
				for idx := range jobs {
					results[idx] = ConversionResult{
						InputPath: files[idx].InputPath,
						Err:       fmt.Errorf("%w: %w", ErrConverterInit, err),
					}
				}
				return
			}
			defer pool.Release(conv)

			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = ConversionResult{
						InputPath: files[idx].InputPath,
						Err:       ctx.Err(),
					}
					continue
				}
				results[idx] = convertFile(ctx, conv, files[idx], params)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// convertFile processes a single file and returns the result.
func convertFile(ctx context.Context, conv CLIConverter, f FileToConvert, params *conversionParams) ConversionResult {
	start := time.Now()
	result := ConversionResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}
	fail := func(err error) ConversionResult {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	source, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		return fail(fmt.Errorf("%w: %v", ErrReadInput, err))
	}

	if err := os.MkdirAll(filepath.Dir(f.OutputPath), dirPermissions); err != nil {
		return fail(fmt.Errorf("%w: %v", ErrCreateOutputDir, err))
	}

	converted, err := conv.Convert(ctx, hw2html.Input{
		Source: string(source),
		CSS:    params.css,
		PDF:    params.pdf,
		Page:   params.page,
	})
	if err != nil {
		return fail(err)
	}

	if err := fileutil.WriteAtomic(f.OutputPath, converted.HTML, filePermissions); err != nil {
		return fail(fmt.Errorf("%w: %v", ErrWriteOutput, err))
	}
	result.HTMLBytes = len(converted.HTML)

	if params.pdf {
		pdfPath := pdfOutputPath(f.OutputPath)
		if err := fileutil.WriteAtomic(pdfPath, converted.PDF, filePermissions); err != nil {
			return fail(fmt.Errorf("%w: %v", ErrWriteOutput, err))
		}
		result.PDFPath = pdfPath
		result.PDFBytes = len(converted.PDF)
	}

	result.Duration = time.Since(start)
	return result
}

// ResultSummary holds the count of succeeded and failed conversions.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed conversions.
func countResults(results []ConversionResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// printResults writes created files to w and reports failures through log.
// Returns the summary of the batch.
func printResults(w io.Writer, log *logger.Logger, results []ConversionResult, quiet, verbose bool) ResultSummary {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			log.FileError(r.InputPath, r.Err)
			continue
		}

		log.FileConverted(r.InputPath, r.OutputPath, r.Duration)
		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(w, "%s -> %s (%s, %v)\n", r.InputPath, r.OutputPath,
				humanize.Bytes(uint64(r.HTMLBytes)), r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(w, "Created %s (%s)\n", r.OutputPath, humanize.Bytes(uint64(r.HTMLBytes)))
		}
		if r.PDFPath != "" {
			fmt.Fprintf(w, "Created %s (%s)\n", r.PDFPath, humanize.Bytes(uint64(r.PDFBytes)))
		}
	}

	return summary
}
