package assets

import (
	"errors"
	"slices"
)

// AssetResolver serves styles from an optional custom directory, falling back
// to the embedded styles for names the directory does not have.
type AssetResolver struct {
	custom   *DirLoader // nil without a custom path
	embedded *EmbeddedLoader
}

// NewAssetResolver returns a resolver over customBasePath and the embedded
// styles. An empty customBasePath uses the embedded styles only.
func NewAssetResolver(customBasePath string) (*AssetResolver, error) {
	r := &AssetResolver{embedded: NewEmbeddedLoader()}
	if customBasePath == "" {
		return r, nil
	}
	custom, err := NewDirLoader(customBasePath)
	if err != nil {
		return nil, err
	}
	r.custom = custom
	return r, nil
}

// LoadStyle loads name from the custom directory first. Only ErrStyleNotFound
// falls through to the embedded styles; invalid names and read failures are
// returned as is.
func (r *AssetResolver) LoadStyle(name string) (string, error) {
	if r.custom == nil {
		return r.embedded.LoadStyle(name)
	}
	content, err := r.custom.LoadStyle(name)
	if err == nil || !errors.Is(err, ErrStyleNotFound) {
		return content, err
	}
	return r.embedded.LoadStyle(name)
}

// StyleNames lists every name LoadStyle can serve, sorted and deduplicated.
func (r *AssetResolver) StyleNames() []string {
	names := r.embedded.StyleNames()
	if r.custom != nil {
		names = append(names, r.custom.StyleNames()...)
	}
	slices.Sort(names)
	return slices.Compact(names)
}

// HasCustomLoader reports whether a custom directory is configured.
func (r *AssetResolver) HasCustomLoader() bool {
	return r.custom != nil
}

// Compile-time interface check.
var _ AssetLoader = (*AssetResolver)(nil)
