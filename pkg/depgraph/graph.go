package depgraph

import (
	"errors"
	"slices"
	"sort"
)

var (
	// ErrInvalidName is returned by [Graph.AddPackage] when the package name
	// is empty. All nodes must have non-empty identifiers.
	ErrInvalidName = errors.New("package name must not be empty")

	// ErrDuplicatePackage is returned by [Graph.AddPackage] when a package
	// with the same normalized name already exists in the graph.
	ErrDuplicatePackage = errors.New("duplicate package name")

	// ErrUnknownPackage is returned by [Graph.AddEdge] when either endpoint
	// does not exist in the graph.
	ErrUnknownPackage = errors.New("unknown package")

	// ErrSelfEdge is returned by [Graph.AddEdge] when a package declares a
	// dependency on itself.
	ErrSelfEdge = errors.New("package cannot depend on itself")
)

// Package represents one installed distribution. Name is the normalized
// identity; Version is opaque and display-only. Requires holds the declared
// dependency names as parsed, pre-resolution - resolved edges live on the
// graph, not here.
type Package struct {
	Name     string
	Version  string
	Requires []string
}

// Graph is a directed graph of installed packages. Forward edges point from
// a package to its installed dependencies; reverse edges are kept consistent
// automatically.
//
// The zero value is not usable - use New. Graph is not safe for concurrent
// use without external synchronization, but the removal pipeline never
// mutates a graph after Build returns.
type Graph struct {
	nodes      map[string]*Package
	requires   map[string][]string // name -> dependency names
	requiredBy map[string][]string // name -> dependent names
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		nodes:      make(map[string]*Package),
		requires:   make(map[string][]string),
		requiredBy: make(map[string][]string),
	}
}

// AddPackage adds a node to the graph. The package's Name must already be
// normalized by the caller. Returns ErrInvalidName for an empty name or
// ErrDuplicatePackage if the name is already present.
func (g *Graph) AddPackage(p Package) error {
	if p.Name == "" {
		return ErrInvalidName
	}
	if _, exists := g.nodes[p.Name]; exists {
		return ErrDuplicatePackage
	}
	g.nodes[p.Name] = &p
	return nil
}

// AddEdge records that from requires to. Both endpoints must exist and must
// differ. Adding the same edge twice is a no-op, so re-declared dependencies
// never produce duplicate edges.
func (g *Graph) AddEdge(from, to string) error {
	if _, ok := g.nodes[from]; !ok {
		return ErrUnknownPackage
	}
	if _, ok := g.nodes[to]; !ok {
		return ErrUnknownPackage
	}
	if from == to {
		return ErrSelfEdge
	}
	if slices.Contains(g.requires[from], to) {
		return nil
	}
	g.requires[from] = append(g.requires[from], to)
	g.requiredBy[to] = append(g.requiredBy[to], from)
	return nil
}

// Has reports whether the named package exists in the graph.
func (g *Graph) Has(name string) bool {
	_, ok := g.nodes[name]
	return ok
}

// Package returns the named package and true, or nil and false if not found.
func (g *Graph) Package(name string) (*Package, bool) {
	p, ok := g.nodes[name]
	return p, ok
}

// Requires returns the installed dependencies of the named package, sorted.
// Returns nil for unknown packages or packages without resolved dependencies.
func (g *Graph) Requires(name string) []string {
	return sortedCopy(g.requires[name])
}

// RequiredBy returns the installed packages that depend on name, sorted.
// Returns nil for unknown packages or packages nothing depends on.
func (g *Graph) RequiredBy(name string) []string {
	return sortedCopy(g.requiredBy[name])
}

// Names returns every package name in the graph, sorted.
func (g *Graph) Names() []string {
	names := make([]string, 0, len(g.nodes))
	for name := range g.nodes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PackageCount returns the number of packages in the graph.
func (g *Graph) PackageCount() int { return len(g.nodes) }

// EdgeCount returns the number of resolved dependency edges.
func (g *Graph) EdgeCount() int {
	n := 0
	for _, deps := range g.requires {
		n += len(deps)
	}
	return n
}

// Closure returns the set of packages reachable from the given roots by
// following forward (depends-on) edges, including the roots themselves.
// Unknown roots are ignored.
func (g *Graph) Closure(roots []string) map[string]bool {
	reached := make(map[string]bool)
	stack := make([]string, 0, len(roots))
	for _, r := range roots {
		if g.Has(r) && !reached[r] {
			reached[r] = true
			stack = append(stack, r)
		}
	}
	for len(stack) > 0 {
		name := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, dep := range g.requires[name] {
			if !reached[dep] {
				reached[dep] = true
				stack = append(stack, dep)
			}
		}
	}
	return reached
}

func sortedCopy(s []string) []string {
	if s == nil {
		return nil
	}
	out := slices.Clone(s)
	sort.Strings(out)
	return out
}
