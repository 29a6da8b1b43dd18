// Package removal computes which installed packages are safe to uninstall
// and in what order.
//
// [Analyze] takes the dependency graph snapshot and a [Request] naming one
// or more targets, computes the candidate closure (targets plus transitive
// dependencies), and shrinks it to a fixed point: any candidate still
// required by a package outside the set is retained. Explicit targets are
// exempt from retention - naming a target is user intent - but dependents
// that would be left broken are surfaced so the caller can warn or refuse.
//
// [BuildPlan] linearizes the resulting removal set so that every package is
// deleted before the dependencies only it was holding in place. Cycles in
// the induced subgraph indicate inconsistent installed metadata and are
// reported, never silently broken.
package removal
