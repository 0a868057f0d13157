package assets

import "fmt"

// MaxStyleNameLength bounds style names accepted by every loader.
const MaxStyleNameLength = 64

// ValidateStyleName accepts names made of ASCII letters, digits, '-' and '_',
// starting with a letter or digit. Anything else could name a path rather
// than a file in the styles directory.
func ValidateStyleName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	case len(name) > MaxStyleNameLength:
		return fmt.Errorf("%w: longer than %d bytes", ErrInvalidAssetName, MaxStyleNameLength)
	case !isAlnum(name[0]):
		return fmt.Errorf("%w: %q must start with a letter or digit", ErrInvalidAssetName, name)
	}
	for i := 1; i < len(name); i++ {
		if c := name[i]; !isAlnum(c) && c != '-' && c != '_' {
			return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
		}
	}
	return nil
}

func isAlnum(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9'
}
