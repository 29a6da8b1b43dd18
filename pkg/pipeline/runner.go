package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/pipremove/pkg/depgraph"
	"github.com/matzehuels/pipremove/pkg/errors"
	"github.com/matzehuels/pipremove/pkg/pip"
	"github.com/matzehuels/pipremove/pkg/removal"
)

// Runner executes the scan → build → analyze → plan → remove pipeline.
//
// The Runner is stateless except for its collaborators and logger - it does
// not retain results between runs, and every run rebuilds the graph from a
// fresh snapshot of the environment.
type Runner struct {
	Provider pip.Provider
	Remover  pip.Remover
	Logger   *log.Logger
}

// NewRunner creates a runner. remover may be nil for analysis-only use
// (Run then fails, Plan works). If logger is nil, log.Default() is used.
func NewRunner(provider pip.Provider, remover pip.Remover, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Provider: provider, Remover: remover, Logger: logger}
}

// Execute runs the complete pipeline for one request: Plan, then - unless
// opts.DryRun is set - Run.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	result, err := r.Plan(ctx, opts)
	if err != nil {
		return nil, err
	}
	if opts.DryRun {
		return result, nil
	}
	if err := r.Run(ctx, result); err != nil {
		return nil, err
	}
	return result, nil
}

// Plan computes the removal plan without any side effects: it snapshots the
// environment, builds the graph, analyzes the removal set, and orders it.
// Build and analysis errors abort here, before anything can be deleted.
func (r *Runner) Plan(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	result := &Result{RunID: uuid.NewString()}
	logger := r.Logger.With("run", result.RunID)

	scanStart := time.Now()
	dists, err := r.Provider.ListInstalled(ctx)
	if err != nil {
		return nil, err
	}

	built, err := depgraph.Build(dists, depgraph.BuildOptions{
		Logf: func(format string, args ...any) { logger.Warnf(format, args...) },
	})
	if err != nil {
		return nil, err
	}
	result.Graph = built.Graph
	result.NeverInstalled = built.NeverInstalled
	result.Stats.ScanTime = time.Since(scanStart)
	result.Stats.Packages = built.Graph.PackageCount()
	result.Stats.Edges = built.Graph.EdgeCount()

	logger.Info("built dependency graph",
		"packages", result.Stats.Packages,
		"edges", result.Stats.Edges,
		"duration", result.Stats.ScanTime.Round(time.Millisecond))

	analyzeStart := time.Now()
	analysis, err := removal.Analyze(built.Graph, removal.Request{
		Targets:        opts.Targets,
		Strict:         opts.Strict,
		RefuseRequired: opts.RefuseRequired,
		Protected:      protectedSet(opts.Protected),
	})
	if err != nil {
		return nil, err
	}
	result.Analysis = analysis

	plan, err := removal.BuildPlan(built.Graph, analysis)
	if err != nil {
		return nil, err
	}
	result.Plan = plan
	result.Stats.AnalyzeTime = time.Since(analyzeStart)

	logger.Info("computed removal plan",
		"plan", plan.ID,
		"remove", len(plan.Steps),
		"retained", len(analysis.Retained),
		"duration", result.Stats.AnalyzeTime.Round(time.Millisecond))

	return result, nil
}

// Run executes an already-computed plan, fail-forward: a failed uninstall is
// recorded in result.Failed and the remaining entries are still attempted.
// The plan stays valid for them - nothing needs recomputing after a failure.
func (r *Runner) Run(ctx context.Context, result *Result) error {
	if r.Remover == nil {
		return errors.New(errors.ErrCodeInternal, "runner has no remover configured")
	}

	logger := r.Logger.With("run", result.RunID)

	removeStart := time.Now()
	for _, res := range r.Remover.Remove(ctx, result.Plan.Steps) {
		if res.Err != nil {
			logger.Warnf("failed to remove %s: %v", res.Name, res.Err)
			result.Failed = append(result.Failed, res)
			continue
		}
		result.Removed = append(result.Removed, res.Name)
	}
	result.Stats.RemoveTime = time.Since(removeStart)

	logger.Info("removal finished",
		"removed", len(result.Removed),
		"failed", len(result.Failed),
		"duration", result.Stats.RemoveTime.Round(time.Millisecond))

	return nil
}

func protectedSet(names []string) map[string]bool {
	if len(names) == 0 {
		return nil
	}
	set := make(map[string]bool, len(names))
	for _, name := range names {
		set[name] = true
	}
	return set
}
