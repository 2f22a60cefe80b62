package styles

import (
	"bytes"
	"encoding/xml"
)

// FontFamily is the font stack used for all diagram text.
const FontFamily = `'Inter', 'Helvetica Neue', Arial, sans-serif`

// Text line baselines relative to the node's vertical center. A node shows
// one, two, or three lines; each count uses its own fixed offsets so the
// block stays visually centered.
const (
	// Title only
	TitleOnlyOffset = 5.0

	// Title + one subtitle
	PairTitleOffset    = -4.0
	PairSubtitleOffset = 14.0

	// Title + subtitle + detail
	TripleTitleOffset    = -12.0
	TripleSubtitleOffset = 6.0
	TripleDetailOffset   = 22.0
)

// Font sizes per text line.
const (
	TitleFontSize    = 14.0
	SubtitleFontSize = 11.0
	DetailFontSize   = 10.0
)

// LineOffsets returns the baseline offsets for a node's text lines given
// which optional lines are present. The returned slice has one entry per
// rendered line, in title/subtitle/detail order.
func LineOffsets(hasSubtitle, hasDetail bool) []float64 {
	switch {
	case hasSubtitle && hasDetail:
		return []float64{TripleTitleOffset, TripleSubtitleOffset, TripleDetailOffset}
	case hasSubtitle:
		return []float64{PairTitleOffset, PairSubtitleOffset}
	default:
		return []float64{TitleOnlyOffset}
	}
}

// EscapeXML escapes text for safe embedding in SVG.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
