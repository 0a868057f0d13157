package yamlutil_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-hw2html/internal/yamlutil"
)

type settings struct {
	Style  string   `yaml:"style"`
	Margin float64  `yaml:"margin"`
	Clean  bool     `yaml:"clean"`
	Tags   []string `yaml:"tags,omitempty"`
}

// ---------------------------------------------------------------------------
// TestDecodeStrict - Strict decoding over existing values
// ---------------------------------------------------------------------------

func TestDecodeStrict(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    string
		dest    any
		want    settings
		wantErr error
	}{
		{
			name: "all fields",
			data: "style: print\nmargin: 1.5\nclean: true\n",
			dest: &settings{},
			want: settings{Style: "print", Margin: 1.5, Clean: true},
		},
		{
			name: "absent fields keep existing values",
			data: "clean: true\n",
			dest: &settings{Style: "default", Margin: 0.5},
			want: settings{Style: "default", Margin: 0.5, Clean: true},
		},
		{
			name:    "unknown field",
			data:    "style: print\nfooter: true\n",
			dest:    &settings{},
			wantErr: yamlutil.ErrDecode,
		},
		{
			name:    "malformed",
			data:    "style: [unclosed",
			dest:    &settings{},
			wantErr: yamlutil.ErrDecode,
		},
		{
			name:    "whitespace only",
			data:    " \n\t\n",
			dest:    &settings{},
			wantErr: yamlutil.ErrEmpty,
		},
		{
			name:    "nil destination",
			data:    "style: print\n",
			dest:    nil,
			wantErr: yamlutil.ErrDecode,
		},
		{
			name:    "too large",
			data:    "style: \"" + strings.Repeat("x", yamlutil.MaxFileSize) + "\"\n",
			dest:    &settings{},
			wantErr: yamlutil.ErrTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := yamlutil.DecodeStrict([]byte(tt.data), tt.dest)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("DecodeStrict() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("DecodeStrict() error = %v", err)
			}
			if got := *tt.dest.(*settings); got.Style != tt.want.Style || got.Margin != tt.want.Margin || got.Clean != tt.want.Clean {
				t.Errorf("decoded = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestReadStrict - File access
// ---------------------------------------------------------------------------

func TestReadStrict(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	t.Run("reads file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(dir, "ok.yaml")
		if err := os.WriteFile(path, []byte("style: print\n"), 0600); err != nil {
			t.Fatal(err)
		}
		var s settings
		if err := yamlutil.ReadStrict(path, &s); err != nil {
			t.Fatalf("ReadStrict() error = %v", err)
		}
		if s.Style != "print" {
			t.Errorf("Style = %q, want print", s.Style)
		}
	})

	t.Run("missing file wraps fs.ErrNotExist", func(t *testing.T) {
		t.Parallel()

		err := yamlutil.ReadStrict(filepath.Join(dir, "missing.yaml"), &settings{})
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("error = %v, want fs.ErrNotExist", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestEncode - Layout and reload
// ---------------------------------------------------------------------------

func TestEncode(t *testing.T) {
	t.Parallel()

	in := settings{Style: "print", Margin: 0.75, Tags: []string{"a", "b"}}
	out, err := yamlutil.Encode(in)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	for _, want := range []string{"style: print", "margin: 0.75", "clean: false", "  - a"} {
		if !strings.Contains(string(out), want) {
			t.Errorf("Encode() missing %q in:\n%s", want, out)
		}
	}

	var back settings
	if err := yamlutil.DecodeStrict(out, &back); err != nil {
		t.Fatalf("DecodeStrict(Encode()) error = %v", err)
	}
	if back.Style != in.Style || back.Margin != in.Margin || len(back.Tags) != 2 {
		t.Errorf("reloaded = %+v, want %+v", back, in)
	}
}

func TestEncode_Unsupported(t *testing.T) {
	t.Parallel()

	if _, err := yamlutil.Encode(map[string]any{"ch": make(chan int)}); err == nil {
		t.Error("Encode(chan) should fail")
	}
}
