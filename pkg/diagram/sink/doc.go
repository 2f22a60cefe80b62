// Package sink provides output generators for diagram scenes.
//
// The primary sink is [RenderSVG], which emits the scene as a standalone
// SVG document. [RenderPNG] and [RenderPDF] convert that SVG via
// rsvg-convert, and [RenderJSON] emits the scene graph itself for
// inspection and round-trip tooling.
package sink
