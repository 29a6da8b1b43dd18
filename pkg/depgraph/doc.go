// Package depgraph models the installed-package dependency graph.
//
// The graph is an immutable per-run snapshot: it is built once from the
// metadata provider's records by [Build], analyzed, and discarded. Forward
// edges point from a package to the installed packages it requires; reverse
// ("required by") edges are maintained alongside and are always consistent
// with the forward edges.
//
// Two invariants hold for every graph produced by [Build]:
//   - every edge endpoint exists in the node set (declared dependencies that
//     are not installed are dropped, never stored as dangling edges)
//   - no self-edges
package depgraph
