// Package hints builds the "hint:" lines appended to CLI error messages.
// Every hint renders as "\n  hint: <text>"; an empty string means no hint.
package hints

import (
	"path/filepath"
	"strings"

	"github.com/alnah/go-hw2html/internal/fileutil"
)

// configDir is the application directory under the user config directory.
const configDir = "go-hw2html"

// ciVars are environment variables set by common CI runners.
var ciVars = []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL"}

// Getenv reads an environment variable; os.Getenv in production.
type Getenv func(string) string

// InContainer reports whether the process runs inside Docker.
func InContainer() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ForBrowserConnect suggests rod settings for a Chrome that failed to start.
// Sandboxing is the usual culprit in CI and containers.
func ForBrowserConnect(getenv Getenv, inContainer bool) string {
	var parts []string
	sandboxed := getenv("ROD_NO_SANDBOX") != "1"
	if sandboxed && (inContainer || inCI(getenv)) {
		parts = append(parts, "set ROD_NO_SANDBOX=1 for Docker/CI")
	}
	if getenv("ROD_BROWSER_BIN") == "" {
		parts = append(parts, "set ROD_BROWSER_BIN to use custom Chrome")
	}
	return format(parts...)
}

func inCI(getenv Getenv) bool {
	for _, v := range ciVars {
		if getenv(v) != "" {
			return true
		}
	}
	return false
}

// ForTimeout suggests raising the page load timeout named by envVar.
func ForTimeout(envVar string) string {
	return format("raise the limit with --timeout or " + envVar + " (e.g. 2m)")
}

// ForConfigNotFound suggests --config, or creating the first searched path
// that lies under the user config directory.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"
	for _, p := range searchedPaths {
		if strings.Contains(filepath.ToSlash(p), "/"+configDir+"/") {
			return format(hint + " or create " + p)
		}
	}
	return format(hint)
}

// ForOutputDirectory applies when the output directory cannot be created.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForStyleNotFound lists the styles that do exist.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForNoInputFiles names the extensions picked up from a directory.
func ForNoInputFiles(exts []string) string {
	return format("inputs must end with " + strings.Join(exts, " or "))
}

// ForCSSFile applies when the extra CSS file cannot be read.
func ForCSSFile() string {
	return format("the CSS file is appended after the base style; use --clean to drop the base")
}

// format joins parts with "; " behind the hint prefix.
func format(parts ...string) string {
	if len(parts) == 0 {
		return ""
	}
	return "\n  hint: " + strings.Join(parts, "; ")
}
