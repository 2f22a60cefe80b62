// Package diagram defines the scene model for the triage pipeline diagram.
//
// # Overview
//
// A [Scene] is a fixed, declarative description of a flow diagram: styled
// node boxes, directed connectors with arrowheads, and free-standing labels,
// all at explicit coordinates. Scenes are composed once (see
// [github.com/matzehuels/triagemap/pkg/flow]) and are immutable afterwards;
// rendering never mutates them.
//
// Visual styling is resolved through two fixed tables:
//
//   - the theme registry ([Lookup]) maps a semantic [Category] to fill,
//     stroke, text color and stroke dashing for nodes
//   - the connector palette ([Color]) maps a named color to its hex value
//     and its arrowhead marker id ([Color.MarkerID])
//
// Referencing a category or color absent from these tables is a
// configuration defect, not a runtime condition: [Scene.Validate] surfaces
// every such defect before anything is drawn, and renderers assume a
// validated scene.
//
// The legend is derived from the theme registry via [Legend], so the two
// surfaces cannot drift apart.
//
// # Rendering
//
// Scenes are rendered by the sink subpackage:
//
//	scene := flow.Compose()
//	svg, err := sink.RenderSVG(scene, sink.WithLegend())
//
// [Scene.Validate]: validation entry point used by sinks and the CLI.
package diagram
