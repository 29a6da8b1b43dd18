package pip

import (
	"context"
	"regexp"
	"strings"
)

// Distribution is one installed package record as reported by a Provider.
// Requires holds declared dependency names exactly as parsed, pre-resolution;
// entries may name packages that are not installed.
type Distribution struct {
	Name     string
	Version  string
	Requires []string
}

// Provider supplies the installed-package snapshot the graph is built from.
type Provider interface {
	// ListInstalled returns one record per installed distribution.
	// A failure to read the environment as a whole is returned as an error;
	// individual corrupt records are skipped and logged by implementations.
	ListInstalled(ctx context.Context) ([]Distribution, error)
}

// Result reports the outcome of uninstalling a single package.
type Result struct {
	Name string
	Err  error // nil on success
}

// Remover performs actual uninstallation. Implementations must process names
// one at a time, in order, and continue past individual failures.
type Remover interface {
	Remove(ctx context.Context, names []string) []Result
}

var normalizeRE = regexp.MustCompile(`[-_.]+`)

// Normalize converts a package name to its canonical form.
// Applies lowercase and collapses runs of hyphen, underscore, and dot to a
// single hyphen, following PEP 503 normalization rules used by PyPI.
func Normalize(name string) string {
	return normalizeRE.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "-")
}
