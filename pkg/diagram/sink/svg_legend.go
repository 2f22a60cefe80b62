package sink

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/triagemap/pkg/diagram"
	"github.com/matzehuels/triagemap/pkg/diagram/styles"
)

const (
	legendPanelHeight = 180.0
	legendPanelPad    = 24.0
	legendTitleY      = 34.0
	legendEntryStartY = 66.0
	legendEntryHeight = 34.0
	legendColumns     = 3
	legendSwatchW     = 26.0
	legendSwatchH     = 16.0
)

// renderLegendPanel draws the legend below the diagram frame. Entries come
// straight from diagram.Legend(), so swatches always mirror the theme
// registry.
func renderLegendPanel(buf *bytes.Buffer, style styles.Style, frameWidth, frameHeight float64, entries []diagram.LegendEntry) {
	panelY := frameHeight

	fmt.Fprintf(buf, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#CBD5E1" stroke-width="1"/>`+"\n",
		legendPanelPad, panelY, frameWidth-legendPanelPad, panelY)

	style.RenderLabel(buf, styles.Label{
		X: frameWidth / 2, Y: panelY + legendTitleY,
		PX: frameWidth / 2, PY: panelY + legendTitleY,
		Text: "Legend", Color: "#0F172A", Size: 16,
	})

	colWidth := (frameWidth - 2*legendPanelPad) / legendColumns
	for i, e := range entries {
		row, col := i/legendColumns, i%legendColumns
		x := legendPanelPad + float64(col)*colWidth
		y := panelY + legendEntryStartY + float64(row)*legendEntryHeight
		renderLegendEntry(buf, e, x, y)
	}
}

func renderLegendEntry(buf *bytes.Buffer, e diagram.LegendEntry, x, y float64) {
	fmt.Fprintf(buf, `  <rect class="legend-swatch" data-category="%s" x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="3" fill="%s" stroke="%s" stroke-width="1.5"`,
		styles.EscapeXML(string(e.Category)), x, y, legendSwatchW, legendSwatchH, e.Fill, e.Stroke)
	if e.Dashed {
		buf.WriteString(` stroke-dasharray="4 3"`)
	}
	buf.WriteString("/>\n")

	fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-family="%s" font-size="12" fill="#334155">%s</text>`+"\n",
		x+legendSwatchW+10, y+legendSwatchH-3, styles.FontFamily, styles.EscapeXML(e.Text))
}
