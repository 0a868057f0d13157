// Package yamlutil reads and writes the YAML settings files used by hw2html.
package yamlutil

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
)

// MaxFileSize caps how much of a settings file is read (1MB).
const MaxFileSize = 1 << 20

var (
	ErrEmpty    = errors.New("yamlutil: empty document")
	ErrTooLarge = errors.New("yamlutil: document exceeds maximum size")
	ErrDecode   = errors.New("yamlutil: invalid document")
)

// ReadStrict decodes the file at path into v, rejecting unknown fields.
// Open errors are returned wrapped so callers can test for fs.ErrNotExist.
func ReadStrict(path string, v any) error {
	f, err := os.Open(path) // #nosec G304 -- path chosen by the caller
	if err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, MaxFileSize+1))
	if err != nil {
		return fmt.Errorf("yamlutil: reading %s: %w", path, err)
	}
	return DecodeStrict(data, v)
}

// DecodeStrict decodes data into v, rejecting unknown fields.
// Fields absent from data keep the values already in v.
func DecodeStrict(data []byte, v any) error {
	switch {
	case v == nil:
		return fmt.Errorf("%w: nil destination", ErrDecode)
	case len(bytes.TrimSpace(data)) == 0:
		return ErrEmpty
	case len(data) > MaxFileSize:
		return fmt.Errorf("%w: more than %d bytes", ErrTooLarge, MaxFileSize)
	}
	if err := yaml.UnmarshalWithOptions(data, v, yaml.Strict()); err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return nil
}

// Encode renders v as YAML with two-space indentation and indented lists.
func Encode(v any) ([]byte, error) {
	out, err := yaml.MarshalWithOptions(v, yaml.Indent(2), yaml.IndentSequence(true))
	if err != nil {
		return nil, fmt.Errorf("yamlutil: %w", err)
	}
	return out, nil
}
