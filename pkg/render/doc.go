// Package render turns removal analyses into Graphviz DOT and SVG output.
//
// [ToDOT] serializes the removal closure as a digraph with nodes colored by
// their fate (removed, retained, protected). [RenderSVG] runs the DOT source
// through the graphviz layout engine to produce an SVG document.
package render
