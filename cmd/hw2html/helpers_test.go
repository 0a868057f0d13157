package main

// Notes:
// - Shared test infrastructure: mock converter and pool, a buffered
//   environment, and file helpers.

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	hw2html "github.com/alnah/go-hw2html"
)

// ---------------------------------------------------------------------------
// Mock Implementations
// ---------------------------------------------------------------------------

// mockConverter renders a fixed HTML body and records inputs.
type mockConverter struct {
	mu     sync.Mutex
	err    error
	inputs []hw2html.Input
}

func (m *mockConverter) Convert(_ context.Context, input hw2html.Input) (*hw2html.ConvertResult, error) {
	m.mu.Lock()
	m.inputs = append(m.inputs, input)
	m.mu.Unlock()

	if m.err != nil {
		return nil, m.err
	}
	res := &hw2html.ConvertResult{HTML: []byte("<html>" + input.Source + "</html>")}
	if input.PDF {
		res.PDF = []byte("%PDF-1.4 mock")
	}
	return res, nil
}

// mockPool hands out a single shared mockConverter.
type mockPool struct {
	conv       *mockConverter
	size       int
	acquireErr error
	opts       []hw2html.Option
	closed     bool
}

func (p *mockPool) Acquire() (CLIConverter, error) {
	if p.acquireErr != nil {
		return nil, p.acquireErr
	}
	return p.conv, nil
}

func (p *mockPool) Release(CLIConverter) {}
func (p *mockPool) Size() int            { return p.size }
func (p *mockPool) Close() error         { p.closed = true; return nil }

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// testEnv returns an environment writing to buffers and using pool.
// A nil pool selects the real converter pool.
func testEnv(pool *mockPool) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	env := &Environment{
		Stdin:   strings.NewReader(""),
		Stdout:  stdout,
		Stderr:  stderr,
		Getenv:  func(string) string { return "" },
		NewPool: newConverterPool,
	}
	if pool != nil {
		env.NewPool = func(size int, opts ...hw2html.Option) Pool {
			pool.opts = opts
			if pool.size == 0 {
				pool.size = size
			}
			return pool
		}
	}
	return env, stdout, stderr
}

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("setup mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("setup write: %v", err)
	}
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

const sampleDoc = "Homework 2\nCarol\n\nQuestion 1\nAnswer text\n\n\nQuestion 2\n| x | y |\n|***|***|\n| 1 | 2 |\n"
