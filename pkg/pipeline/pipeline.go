// Package pipeline orchestrates the removal pipeline: scan the environment,
// build the dependency graph, analyze the removal set, plan the deletion
// order, and optionally execute it.
//
// The whole computation runs to completion before any deletion happens, so a
// build or analysis failure always aborts with zero side effects. Execution
// itself is fail-forward: a failed uninstall is recorded and the remaining
// plan entries are still attempted, since the already-computed plan stays
// valid for them.
//
// # Usage
//
//	runner := pipeline.NewRunner(provider, remover, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Targets: []string{"requests"},
//	    DryRun:  true,
//	})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(result.Plan.Steps)
package pipeline

import (
	"time"

	"github.com/matzehuels/pipremove/pkg/depgraph"
	"github.com/matzehuels/pipremove/pkg/errors"
	"github.com/matzehuels/pipremove/pkg/pip"
	"github.com/matzehuels/pipremove/pkg/removal"
)

// Options controls one pipeline run.
type Options struct {
	// Targets are the packages to remove recursively. Required.
	Targets []string
	// DryRun stops after planning; the Remover is never invoked.
	DryRun bool
	// Strict aborts when any target is not installed instead of proceeding
	// with the valid subset.
	Strict bool
	// RefuseRequired refuses targets that surviving packages still require
	// instead of force-removing them with a warning.
	RefuseRequired bool
	// Protected extends the built-in whitelist of never-removed packages.
	Protected []string
}

// Validate checks the options before a run.
func (o *Options) Validate() error {
	if len(o.Targets) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "at least one target package is required")
	}
	for _, name := range o.Targets {
		if err := errors.ValidatePackageName(name); err != nil {
			return err
		}
	}
	return nil
}

// Stats holds per-stage timings and graph dimensions for one run.
type Stats struct {
	ScanTime    time.Duration
	AnalyzeTime time.Duration
	RemoveTime  time.Duration
	Packages    int
	Edges       int
}

// Result is the outcome of one pipeline run. Graph, Analysis, and Plan are
// always populated on success; Removed and Failed only after execution.
type Result struct {
	RunID          string
	Graph          *depgraph.Graph
	NeverInstalled []depgraph.MissingDep
	Analysis       *removal.Analysis
	Plan           *removal.Plan
	Removed        []string     // successfully uninstalled, in plan order
	Failed         []pip.Result // per-item failures, in plan order
	Stats          Stats
}

// Succeeded reports whether every requested target was found and every
// attempted deletion succeeded. A dry run with no missing targets succeeds.
func (r *Result) Succeeded() bool {
	return len(r.Failed) == 0 && len(r.Analysis.Missing) == 0
}
