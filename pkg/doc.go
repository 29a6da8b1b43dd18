// Package pkg provides the core libraries for pipremove.
//
// # Overview
//
// Pipremove removes installed pip packages together with the dependencies
// that nothing else needs. The pkg directory is organized into five areas:
//
//  1. [pip] - Environment scanning and pip subprocess control
//  2. [depgraph] - Dependency graph structure and construction
//  3. [removal] - Retention analysis and removal planning
//  4. [render] - DOT and SVG visualization of removal plans
//  5. [pipeline] - Orchestration (scan → analyze → plan → remove)
//
// # Architecture
//
// The typical data flow through pipremove:
//
//	site-packages (*.dist-info)
//	         ↓
//	    [pip] package (scan installed distributions)
//	         ↓
//	    [depgraph] package (graph structure)
//	         ↓
//	    [removal] package (retention analysis + ordering)
//	         ↓
//	    [pipeline] package (execute via pip uninstall)
//
// # Quick Start
//
// Plan and execute a removal:
//
//	import (
//	    "context"
//	    "github.com/matzehuels/pipremove/pkg/pip"
//	    "github.com/matzehuels/pipremove/pkg/pipeline"
//	)
//
//	provider, _ := pip.DiscoverEnv(context.Background(), "python3", nil)
//	runner := pipeline.NewRunner(provider, &pip.PipRemover{}, nil)
//	res, err := runner.Execute(context.Background(), pipeline.Options{
//	    Targets: []string{"requests"},
//	})
//
// Supporting packages: [buildinfo] exposes build metadata set via ldflags,
// and [errors] provides the structured error codes shared by all layers.
package pkg
