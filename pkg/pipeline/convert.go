package pipeline

import "github.com/matzehuels/triagemap/pkg/render"

// Conversion hooks, swappable in tests so runner tests don't need librsvg
// installed.
var (
	pngFromSVG = render.ToPNG
	pdfFromSVG = render.ToPDF
)
