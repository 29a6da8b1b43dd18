// Package pip provides the two external collaborators of the removal
// pipeline: a metadata [Provider] that reads installed distributions from a
// Python environment, and a [Remover] that performs actual uninstallation by
// shelling out to pip.
//
// Everything else in the repository treats both as pure interfaces, so tests
// substitute fakes and the core never touches the filesystem or a subprocess.
//
// # Name Normalization
//
// Package identity follows PEP 503: names are lowercased and runs of `-`,
// `_`, and `.` collapse to a single hyphen, so "My_Package" and "my-package"
// resolve to the same node. Use [Normalize] anywhere a declared name is
// compared against an installed one.
package pip
