// Package nodelink renders the pipeline scene as a node-link diagram.
//
// The primary diagram uses the hand-placed coordinates baked into the
// composition. This package is the escape hatch for when positions should
// be computed instead: it flattens the scene to its node/edge structure,
// emits Graphviz DOT, and lets Graphviz do the layout.
//
//	dot := nodelink.ToDOT(scene, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(dot)
package nodelink
