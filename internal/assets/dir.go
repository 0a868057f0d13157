package assets

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// stylesSubdir is where a DirLoader looks for {name}.css files.
const stylesSubdir = "styles"

// DirLoader loads styles from {basePath}/styles on disk. Files are opened
// through os.OpenInRoot, so symlinks and names cannot reach outside that
// directory.
type DirLoader struct {
	basePath string
}

// NewDirLoader returns a DirLoader for basePath.
// Returns ErrInvalidBasePath unless basePath is a readable directory.
func NewDirLoader(basePath string) (*DirLoader, error) {
	if basePath == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidBasePath)
	}
	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}

	info, err := os.Stat(abs)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("%w: directory does not exist: %s", ErrInvalidBasePath, abs)
	case err != nil:
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	case !info.IsDir():
		return nil, fmt.Errorf("%w: not a directory: %s", ErrInvalidBasePath, abs)
	}
	if _, err := os.ReadDir(abs); err != nil {
		return nil, fmt.Errorf("%w: cannot read directory: %v", ErrInvalidBasePath, err)
	}
	return &DirLoader{basePath: abs}, nil
}

// LoadStyle reads {basePath}/styles/{name}.css.
func (d *DirLoader) LoadStyle(name string) (string, error) {
	if err := ValidateStyleName(name); err != nil {
		return "", err
	}
	dir := d.stylesDir()
	file := name + ".css"

	f, err := os.OpenInRoot(dir, file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %q", ErrStyleNotFound, name)
		}
		if info, lerr := os.Lstat(filepath.Join(dir, file)); lerr == nil && info.Mode()&fs.ModeSymlink != 0 {
			return "", fmt.Errorf("%w: %s", ErrPathTraversal, file)
		}
		return "", fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrAssetRead, file, err)
	}
	return string(content), nil
}

// StyleNames lists the valid style names present on disk, sorted.
// A missing styles directory yields no names.
func (d *DirLoader) StyleNames() []string {
	entries, err := os.ReadDir(d.stylesDir())
	if err != nil {
		return nil
	}
	var names []string
	for _, entry := range entries {
		name, ok := strings.CutSuffix(entry.Name(), ".css")
		if ok && !entry.IsDir() && ValidateStyleName(name) == nil {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}

func (d *DirLoader) stylesDir() string {
	return filepath.Join(d.basePath, stylesSubdir)
}

// Compile-time interface check.
var _ AssetLoader = (*DirLoader)(nil)
