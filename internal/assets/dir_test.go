package assets

// Notes:
// - Symlink cases are skipped where the filesystem refuses to create links.

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func writeStyle(t *testing.T, base, name, css string) {
	t.Helper()
	dir := filepath.Join(base, stylesSubdir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), []byte(css), 0644); err != nil {
		t.Fatalf("setup: %v", err)
	}
}

// ---------------------------------------------------------------------------
// TestNewDirLoader - Base path checks
// ---------------------------------------------------------------------------

func TestNewDirLoader(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{name: "directory", path: t.TempDir()},
		{name: "empty path", path: "", wantErr: ErrInvalidBasePath},
		{name: "missing directory", path: "/nonexistent/path/abc123xyz", wantErr: ErrInvalidBasePath},
		{name: "regular file", path: file, wantErr: ErrInvalidBasePath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			loader, err := NewDirLoader(tt.path)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("NewDirLoader(%q) error = %v, want %v", tt.path, err, tt.wantErr)
				}
				return
			}
			if err != nil || loader == nil {
				t.Fatalf("NewDirLoader(%q) = %v, %v", tt.path, loader, err)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestDirLoader_LoadStyle - Lookup and containment
// ---------------------------------------------------------------------------

func TestDirLoader_LoadStyle(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	writeStyle(t, base, "exam.css", ".contentDiv { margin: 0; }")
	if err := os.MkdirAll(filepath.Join(base, stylesSubdir, "broken.css"), 0755); err != nil {
		t.Fatal(err)
	}
	loader, err := NewDirLoader(base)
	if err != nil {
		t.Fatalf("NewDirLoader() error = %v", err)
	}

	tests := []struct {
		name    string
		style   string
		want    string
		wantErr error
	}{
		{name: "existing style", style: "exam", want: ".contentDiv { margin: 0; }"},
		{name: "missing style", style: "nope", wantErr: ErrStyleNotFound},
		{name: "invalid name", style: "../exam", wantErr: ErrInvalidAssetName},
		{name: "directory named like a style", style: "broken", wantErr: ErrAssetRead},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := loader.LoadStyle(tt.style)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("LoadStyle(%q) error = %v, want %v", tt.style, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadStyle(%q) error = %v", tt.style, err)
			}
			if got != tt.want {
				t.Errorf("LoadStyle(%q) = %q, want %q", tt.style, got, tt.want)
			}
		})
	}
}

func TestDirLoader_SymlinkEscape(t *testing.T) {
	t.Parallel()

	outside := filepath.Join(t.TempDir(), "secret.css")
	if err := os.WriteFile(outside, []byte("secret"), 0644); err != nil {
		t.Fatal(err)
	}
	base := t.TempDir()
	if err := os.MkdirAll(filepath.Join(base, stylesSubdir), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink(outside, filepath.Join(base, stylesSubdir, "evil.css")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	loader, err := NewDirLoader(base)
	if err != nil {
		t.Fatalf("NewDirLoader() error = %v", err)
	}
	got, err := loader.LoadStyle("evil")
	if !errors.Is(err, ErrPathTraversal) {
		t.Errorf("LoadStyle(evil) = %q, %v, want ErrPathTraversal", got, err)
	}
}

func TestDirLoader_StyleNames(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	writeStyle(t, base, "zeta.css", "")
	writeStyle(t, base, "alpha.css", "")
	writeStyle(t, base, "notes.txt", "")
	writeStyle(t, base, "bad name.css", "")

	loader, err := NewDirLoader(base)
	if err != nil {
		t.Fatalf("NewDirLoader() error = %v", err)
	}
	if got := loader.StyleNames(); !slices.Equal(got, []string{"alpha", "zeta"}) {
		t.Errorf("StyleNames() = %v, want [alpha zeta]", got)
	}

	empty, _ := NewDirLoader(t.TempDir())
	if got := empty.StyleNames(); len(got) != 0 {
		t.Errorf("StyleNames() without styles dir = %v, want none", got)
	}
}
