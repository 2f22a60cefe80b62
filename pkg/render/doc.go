// Package render provides format conversion for rendered diagrams.
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg). They are shared by the SVG
// sink and the node-link exporter:
//
//	svg, err := sink.RenderSVG(scene, opts...)
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// The [nodelink] subpackage renders the scene as a traditional directed
// graph diagram using Graphviz, for the case where positions should be
// computed instead of taken from the fixed composition.
//
// [nodelink]: github.com/matzehuels/triagemap/pkg/render/nodelink
package render
