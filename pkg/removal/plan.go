package removal

import (
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/matzehuels/pipremove/pkg/depgraph"
	"github.com/matzehuels/pipremove/pkg/errors"
)

// Plan is an ordered deletion sequence for one removal set. Steps is a
// topological ordering of the set: no package appears before a package that
// still requires it.
type Plan struct {
	ID    string // unique per computation, for logs and summaries
	Steps []string
}

// BuildPlan linearizes the analysis' removal set.
//
// Ordering uses the required-by edges restricted to the set: a package is
// ready once every in-set dependent has been emitted. Ties between ready
// packages break lexicographically so output is reproducible. A cycle in
// the induced subgraph yields ErrCodeCyclicDependency with the cycle spelled
// out - inconsistent metadata is reported, not silently resolved.
func BuildPlan(g *depgraph.Graph, a *Analysis) (*Plan, error) {
	set := a.Remove

	// Pending in-set dependents per package. A package with none left can
	// be deleted without breaking a not-yet-deleted member of the set.
	pending := make(map[string]int, len(set))
	for name := range set {
		n := 0
		for _, dependent := range g.RequiredBy(name) {
			if set[dependent] {
				n++
			}
		}
		pending[name] = n
	}

	var ready []string
	for name, n := range pending {
		if n == 0 {
			ready = append(ready, name)
		}
	}
	sort.Strings(ready)

	steps := make([]string, 0, len(set))
	for len(ready) > 0 {
		name := ready[0]
		ready = ready[1:]
		steps = append(steps, name)

		var unlocked []string
		for _, dep := range g.Requires(name) {
			if !set[dep] {
				continue
			}
			pending[dep]--
			if pending[dep] == 0 {
				unlocked = append(unlocked, dep)
			}
		}
		if len(unlocked) > 0 {
			ready = append(ready, unlocked...)
			sort.Strings(ready)
		}
	}

	if len(steps) != len(set) {
		cycle := findCycle(g, set, pending)
		return nil, errors.New(errors.ErrCodeCyclicDependency,
			"dependency cycle in removal set: %s", strings.Join(cycle, " -> "))
	}

	return &Plan{ID: uuid.NewString(), Steps: steps}, nil
}

// findCycle locates one concrete cycle among the packages that could not be
// ordered. pending identifies them: every node with dependents left after
// Kahn's algorithm stalls lies on or leads into a cycle.
func findCycle(g *depgraph.Graph, set map[string]bool, pending map[string]int) []string {
	stuck := make(map[string]bool)
	for name, n := range pending {
		if n > 0 {
			stuck[name] = true
		}
	}

	const (
		white = iota
		gray
		black
	)
	color := make(map[string]int)
	var path []string
	var cycle []string

	var dfs func(name string) bool
	dfs = func(name string) bool {
		color[name] = gray
		path = append(path, name)
		for _, dep := range g.Requires(name) {
			if !stuck[dep] || !set[dep] {
				continue
			}
			switch color[dep] {
			case white:
				if dfs(dep) {
					return true
				}
			case gray:
				for i, p := range path {
					if p == dep {
						cycle = append(append(cycle, path[i:]...), dep)
						return true
					}
				}
			}
		}
		color[name] = black
		path = path[:len(path)-1]
		return false
	}

	for _, name := range sortedSet(stuck) {
		if color[name] == white && dfs(name) {
			return cycle
		}
	}
	return sortedSet(stuck) // unreachable if pending was computed correctly
}
