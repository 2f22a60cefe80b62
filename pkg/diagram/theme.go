package diagram

// Category is a semantic styling category. Every node carries one; the
// theme registry maps it to the node's visual style and the legend caption.
type Category string

// The fixed set of categories used by the triage pipeline composition.
const (
	CategoryStream   Category = "stream"
	CategoryRouter   Category = "router"
	CategoryState    Category = "state"
	CategoryStage2   Category = "stage-2"
	CategoryStage3   Category = "stage-3"
	CategoryStage4   Category = "stage-4"
	CategoryQuestion Category = "question"
	CategoryMapping  Category = "mapping"
	CategoryOutput   Category = "output"
)

// Theme is the visual style bundle for one category.
type Theme struct {
	Fill   string // node background
	Stroke string // node border
	Text   string // text color
	Dashed bool   // dashed border stroke
	Label  string // legend caption
}

// registry is the single source of styling truth. The legend is derived
// from it (see Legend); nothing else re-lists these values.
var registry = map[Category]Theme{
	CategoryStream:   {Fill: "#E0F2FE", Stroke: "#0284C7", Text: "#0C4A6E", Label: "Streaming input"},
	CategoryRouter:   {Fill: "#FEF3C7", Stroke: "#D97706", Text: "#78350F", Label: "Retriage routing"},
	CategoryState:    {Fill: "#F1F5F9", Stroke: "#64748B", Text: "#334155", Dashed: true, Label: "Session state"},
	CategoryStage2:   {Fill: "#DCFCE7", Stroke: "#16A34A", Text: "#14532D", Label: "Stage 2 · symptom category"},
	CategoryStage3:   {Fill: "#E0E7FF", Stroke: "#4F46E5", Text: "#312E81", Label: "Stage 3 · symptom detail"},
	CategoryStage4:   {Fill: "#FCE7F3", Stroke: "#DB2777", Text: "#831843", Label: "Stage 4 · presentation"},
	CategoryQuestion: {Fill: "#FFF7ED", Stroke: "#EA580C", Text: "#7C2D12", Dashed: true, Label: "Follow-up question"},
	CategoryMapping:  {Fill: "#F5F3FF", Stroke: "#7C3AED", Text: "#4C1D95", Label: "Candidate mapping"},
	CategoryOutput:   {Fill: "#FEE2E2", Stroke: "#DC2626", Text: "#7F1D1D", Label: "Final KTAS level"},
}

// categoryOrder fixes legend and iteration order.
var categoryOrder = []Category{
	CategoryStream,
	CategoryRouter,
	CategoryState,
	CategoryStage2,
	CategoryStage3,
	CategoryStage4,
	CategoryQuestion,
	CategoryMapping,
	CategoryOutput,
}

// Lookup returns the theme for a category.
func Lookup(c Category) (Theme, bool) {
	t, ok := registry[c]
	return t, ok
}

// Categories returns all registered categories in display order.
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// Color is a named connector color. The name selects both the stroke hex
// and the pre-declared arrowhead marker, keeping the two in lockstep.
type Color string

// The fixed connector palette. One arrowhead marker is declared per color
// at diagram-build time; connectors reference markers by color name.
const (
	ColorSlate  Color = "slate"
	ColorAmber  Color = "amber"
	ColorGreen  Color = "green"
	ColorIndigo Color = "indigo"
	ColorPink   Color = "pink"
	ColorViolet Color = "violet"
	ColorRed    Color = "red"
)

var palette = map[Color]string{
	ColorSlate:  "#64748B",
	ColorAmber:  "#D97706",
	ColorGreen:  "#16A34A",
	ColorIndigo: "#4F46E5",
	ColorPink:   "#DB2777",
	ColorViolet: "#7C3AED",
	ColorRed:    "#DC2626",
}

var paletteOrder = []Color{
	ColorSlate, ColorAmber, ColorGreen, ColorIndigo, ColorPink, ColorViolet, ColorRed,
}

// Hex returns the stroke hex for a palette color.
func (c Color) Hex() (string, bool) {
	h, ok := palette[c]
	return h, ok
}

// MarkerID returns the id of the arrowhead marker for this color. This is
// the single point where color names resolve to marker ids; renderers must
// not duplicate the mapping.
func (c Color) MarkerID() string {
	return "arrow-" + string(c)
}

// Palette returns all connector colors in declaration order.
func Palette() []Color {
	out := make([]Color, len(paletteOrder))
	copy(out, paletteOrder)
	return out
}
