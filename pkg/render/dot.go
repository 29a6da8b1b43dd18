package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/pipremove/pkg/depgraph"
	"github.com/matzehuels/pipremove/pkg/removal"
)

// Options configures DOT generation.
type Options struct {
	// Detailed includes versions in node labels.
	Detailed bool
}

// ToDOT renders the candidate closure of the analysis as a DOT digraph.
// Packages in the removal set are drawn in red, retained packages in amber
// with their blockers attached, and protected packages in grey. Edges are
// the resolved depends-on edges between closure members.
func ToDOT(g *depgraph.Graph, a *removal.Analysis, opts Options) string {
	closure := g.Closure(a.Targets)

	var buf bytes.Buffer
	buf.WriteString("digraph removal {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, margin=\"0.2,0.1\"];\n")
	buf.WriteString("\n")

	// Closure members that survive also pull in their external blockers so
	// the picture explains itself.
	extra := make(map[string]bool)
	for _, blockers := range a.Retained {
		for _, b := range blockers {
			if !closure[b] {
				extra[b] = true
			}
		}
	}
	for _, dependents := range a.StillRequired {
		for _, d := range dependents {
			if !closure[d] {
				extra[d] = true
			}
		}
	}

	for _, name := range g.Names() {
		if !closure[name] && !extra[name] {
			continue
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", name, nodeAttrs(g, a, name, opts))
	}

	buf.WriteString("\n")
	for _, name := range g.Names() {
		if !closure[name] && !extra[name] {
			continue
		}
		for _, dep := range g.Requires(name) {
			if closure[dep] || extra[dep] {
				fmt.Fprintf(&buf, "  %q -> %q;\n", name, dep)
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeAttrs(g *depgraph.Graph, a *removal.Analysis, name string, opts Options) string {
	label := name
	if opts.Detailed {
		if p, ok := g.Package(name); ok && p.Version != "" {
			label = fmt.Sprintf("%s\n%s", name, p.Version)
		}
	}

	fill := "white"
	switch {
	case a.Remove[name]:
		fill = "lightcoral"
	case inList(a.Protected, name):
		fill = "lightgrey"
	default:
		if _, ok := a.Retained[name]; ok {
			fill = "khaki"
		}
	}
	return fmt.Sprintf("label=%q, fillcolor=%q", label, fill)
}

func inList(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
