package diagram

// LegendEntry is one row of the legend panel: a swatch mirroring a theme
// entry plus its caption.
type LegendEntry struct {
	Category Category `json:"category"`
	Text     string   `json:"text"`
	Fill     string   `json:"fill"`
	Stroke   string   `json:"stroke"`
	Dashed   bool     `json:"dashed,omitempty"`
}

// Legend derives the legend entries by iterating the theme registry in
// display order. Deriving (rather than re-listing) the values means the
// legend cannot drift out of sync with the registry.
func Legend() []LegendEntry {
	entries := make([]LegendEntry, 0, len(categoryOrder))
	for _, c := range categoryOrder {
		t := registry[c]
		entries = append(entries, LegendEntry{
			Category: c,
			Text:     t.Label,
			Fill:     t.Fill,
			Stroke:   t.Stroke,
			Dashed:   t.Dashed,
		})
	}
	return entries
}
