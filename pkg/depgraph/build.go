package depgraph

import (
	"github.com/matzehuels/pipremove/pkg/errors"
	"github.com/matzehuels/pipremove/pkg/pip"
)

// MissingDep records a declared dependency that is not installed.
// These impose no retention constraint (they are already absent) but are
// surfaced to the user in verbose output.
type MissingDep struct {
	Package    string // normalized name of the declaring package
	Dependency string // normalized name of the absent dependency
}

// BuildOptions configures graph construction.
type BuildOptions struct {
	// Logf receives warnings about skipped records; may be nil.
	Logf func(format string, args ...any)
}

// BuildResult is the output of Build: the graph plus the declared-but-absent
// dependencies encountered while resolving edges.
type BuildResult struct {
	Graph          *Graph
	NeverInstalled []MissingDep
}

// Build constructs the dependency graph from the provider's records.
//
// Names are normalized before use; when two records normalize to the same
// name the later record wins. Declared dependencies are resolved against the
// installed set: a dependency with no matching node is dropped from the edge
// set and recorded in NeverInstalled. Self-dependencies are ignored.
func Build(dists []pip.Distribution, opts BuildOptions) (*BuildResult, error) {
	logf := opts.Logf
	if logf == nil {
		logf = func(string, ...any) {}
	}

	g := New()
	for _, d := range dists {
		name := pip.Normalize(d.Name)
		if name == "" {
			logf("skipping record with empty name (version %q)", d.Version)
			continue
		}
		p := Package{Name: name, Version: d.Version, Requires: d.Requires}
		if err := g.AddPackage(p); err != nil {
			// Duplicate normalized name: replace so the later record wins.
			g.nodes[name] = &p
			logf("duplicate record for %s, keeping version %q", name, d.Version)
		}
	}

	var missing []MissingDep
	for _, name := range g.Names() {
		p, _ := g.Package(name)
		for _, raw := range p.Requires {
			dep := pip.Normalize(raw)
			if dep == "" || dep == name {
				continue
			}
			if !g.Has(dep) {
				missing = append(missing, MissingDep{Package: name, Dependency: dep})
				continue
			}
			if err := g.AddEdge(name, dep); err != nil {
				return nil, errors.Wrap(errors.ErrCodeGraphBuild, err, "adding edge %s -> %s", name, dep)
			}
		}
	}

	return &BuildResult{Graph: g, NeverInstalled: missing}, nil
}
