// Package progress renders memorization progress as graph visualizations.
//
// A pack is drawn as a root node connected to one node per verse, with each
// verse node colored by its health level (weak, fair, strong). [ToDOT]
// produces Graphviz DOT text and [RenderSVG] rasterizes it, mirroring the
// `versedeck stats` command's --format=dot and --format=svg outputs.
package progress
