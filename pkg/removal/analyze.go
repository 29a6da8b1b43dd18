package removal

import (
	"sort"
	"strings"

	"github.com/matzehuels/pipremove/pkg/depgraph"
	"github.com/matzehuels/pipremove/pkg/errors"
	"github.com/matzehuels/pipremove/pkg/pip"
)

// DefaultProtected is the built-in whitelist of packages that are never
// candidates for removal, regardless of the dependency graph. Users extend
// it via configuration.
var DefaultProtected = map[string]bool{
	"pip":        true,
	"setuptools": true,
	"wheel":      true,
	"packaging":  true,
}

// Request describes one removal computation.
type Request struct {
	// Targets are the user-supplied package names; normalized internally.
	Targets []string
	// Strict aborts the whole request when any target is missing from the
	// graph. Non-strict mode proceeds with the valid subset.
	Strict bool
	// RefuseRequired turns the "target still required by X" warning into an
	// error instead of force-removing the target.
	RefuseRequired bool
	// Protected extends DefaultProtected; keys must be normalized names.
	Protected map[string]bool
}

// Analysis is the deterministic output of Analyze for one request.
type Analysis struct {
	// Targets are the normalized targets that exist in the graph, sorted.
	Targets []string
	// Missing are requested targets absent from the graph, sorted. Only
	// populated in non-strict mode; strict mode returns an error instead.
	Missing []string
	// Remove is the final safe-removal set.
	Remove map[string]bool
	// Retained maps each excluded candidate to the packages outside the
	// removal set that still require it, sorted.
	Retained map[string][]string
	// StillRequired maps each target to surviving packages that declare it
	// as a dependency. The target is removed anyway; this is the
	// warning-worthy fact the caller should surface.
	StillRequired map[string][]string
	// Protected are closure members excluded by the whitelist, sorted.
	Protected []string
}

// Analyze computes the minimal safe-removal set for the request.
//
// It returns ErrCodePackageNotFound when targets are missing (always, in
// strict mode; only when no valid target remains otherwise),
// ErrCodeProtectedPackage when a target is whitelisted, and
// ErrCodeStillRequired when RefuseRequired is set and a surviving package
// still depends on a target.
func Analyze(g *depgraph.Graph, req Request) (*Analysis, error) {
	protected := make(map[string]bool, len(DefaultProtected)+len(req.Protected))
	for name := range DefaultProtected {
		protected[name] = true
	}
	for name, ok := range req.Protected {
		if ok {
			protected[pip.Normalize(name)] = true
		}
	}

	targets, missing, err := resolveTargets(g, req, protected)
	if err != nil {
		return nil, err
	}

	// Step 1: candidate closure of the valid targets.
	closure := g.Closure(targets)

	isTarget := make(map[string]bool, len(targets))
	for _, t := range targets {
		isTarget[t] = true
	}

	// Whitelisted candidates never enter the tentative removal set.
	remove := make(map[string]bool, len(closure))
	var protectedOut []string
	for name := range closure {
		if protected[name] {
			protectedOut = append(protectedOut, name)
			continue
		}
		remove[name] = true
	}
	sort.Strings(protectedOut)

	// Step 2: retention fixed point. Retention is monotonic - the set only
	// shrinks - so iterate full scans until one produces no change. Scan in
	// sorted order so the work, not just the result, is deterministic.
	for {
		changed := false
		for _, name := range sortedSet(remove) {
			if isTarget[name] {
				continue // Step 3: explicit targets are exempt.
			}
			for _, dependent := range g.RequiredBy(name) {
				if !remove[dependent] {
					delete(remove, name)
					changed = true
					break
				}
			}
		}
		if !changed {
			break
		}
	}

	// Blockers are computed against the final set so every retained entry
	// reports the dependents that actually survive the run.
	retained := make(map[string][]string)
	for name := range closure {
		if remove[name] || protected[name] {
			continue
		}
		var blockers []string
		for _, dependent := range g.RequiredBy(name) {
			if !remove[dependent] {
				blockers = append(blockers, dependent)
			}
		}
		sort.Strings(blockers)
		retained[name] = blockers
	}

	stillRequired := make(map[string][]string)
	for _, t := range targets {
		var dependents []string
		for _, dependent := range g.RequiredBy(t) {
			if !remove[dependent] {
				dependents = append(dependents, dependent)
			}
		}
		if len(dependents) > 0 {
			sort.Strings(dependents)
			stillRequired[t] = dependents
		}
	}

	if req.RefuseRequired && len(stillRequired) > 0 {
		names := sortedKeys(stillRequired)
		return nil, errors.New(errors.ErrCodeStillRequired,
			"refusing to remove packages still required by others: %s", strings.Join(names, ", "))
	}

	return &Analysis{
		Targets:       targets,
		Missing:       missing,
		Remove:        remove,
		Retained:      retained,
		StillRequired: stillRequired,
		Protected:     protectedOut,
	}, nil
}

// resolveTargets normalizes the requested targets and splits them into the
// valid subset and the missing ones, applying the strict and protected
// policies.
func resolveTargets(g *depgraph.Graph, req Request, protected map[string]bool) (targets, missing []string, err error) {
	seen := make(map[string]bool)
	for _, raw := range req.Targets {
		name := pip.Normalize(raw)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true

		if !g.Has(name) {
			missing = append(missing, name)
			continue
		}
		if protected[name] {
			return nil, nil, errors.New(errors.ErrCodeProtectedPackage,
				"package %q is protected and cannot be removed", name)
		}
		targets = append(targets, name)
	}
	sort.Strings(targets)
	sort.Strings(missing)

	if len(missing) > 0 && (req.Strict || len(targets) == 0) {
		return nil, nil, errors.New(errors.ErrCodePackageNotFound,
			"package(s) not installed: %s", strings.Join(missing, ", "))
	}
	return targets, missing, nil
}

func sortedSet(set map[string]bool) []string {
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func sortedKeys(m map[string][]string) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
