package flow

import "github.com/matzehuels/triagemap/pkg/diagram"

// Canvas dimensions of the composition in logical units. The rendered SVG
// scales responsively; these only fix the aspect ratio.
const (
	CanvasWidth  = 1040.0
	CanvasHeight = 760.0
)

// Node ids of the composition. Exported so tooling (DOT export, tests,
// the serve surface) can address individual nodes.
const (
	NodeInput  = "input"
	NodeState  = "state"
	NodeJudge  = "judge"
	NodeOutput = "final_level"

	NodeRetriageStage2 = "retriage_stage2"
	NodeRetriageStage3 = "retriage_stage3"
	NodeRetriageStage4 = "retriage_stage4"

	NodeAskStage2 = "ask_stage2"
	NodeAskStage3 = "ask_stage3"
	NodeAskStage4 = "ask_stage4"

	NodeStage2Classifier = "stage2_classifier"
	NodeStage3Classifier = "stage3_classifier"
	NodeStage4Classifier = "stage4_classifier"

	NodeStage3Candidates = "stage3_candidates"
	NodeStage4Candidates = "stage4_candidates"
)

func pt(x, y float64) diagram.Point { return diagram.Point{X: x, Y: y} }
func ptr(x, y float64) *diagram.Point { p := pt(x, y); return &p }

// curve builds a one-bend cubic connector between two points.
func curve(from, to string, start, c1, c2, end diagram.Point, color diagram.Color, dashed bool) diagram.Connector {
	return diagram.Connector{
		From: from, To: to,
		Start: start, End: end,
		C1: &c1, C2: &c2,
		Color: color, Dashed: dashed,
	}
}

// straight builds a straight connector between two points.
func straight(from, to string, start, end diagram.Point, color diagram.Color, dashed bool) diagram.Connector {
	return diagram.Connector{
		From: from, To: to,
		Start: start, End: end,
		Color: color, Dashed: dashed,
	}
}

// Compose builds the full pipeline scene. The result is immutable by
// convention: callers render it, they never modify it.
func Compose() *diagram.Scene {
	return &diagram.Scene{
		Title:      "Pre-KTAS Retriage Pipeline",
		Width:      CanvasWidth,
		Height:     CanvasHeight,
		Nodes:      composeNodes(),
		Connectors: composeConnectors(),
		Labels:     composeLabels(),
	}
}

func composeNodes() []diagram.Node {
	return []diagram.Node{
		{
			ID:       NodeInput,
			Category: diagram.CategoryStream,
			Rect:     diagram.Rect{X: 440, Y: 60, W: 200, H: 58},
			Title:    "Streaming Input",
			Subtitle: "voice & keyboard turns",
			Glyph:    "🎙",
			Glow:     true,
		},
		{
			ID:       NodeState,
			Category: diagram.CategoryState,
			Rect:     diagram.Rect{X: 60, Y: 160, W: 190, H: 66},
			Title:    "Session State",
			Subtitle: "prior selections · answers",
			Detail:   "patient info · class log",
			Glyph:    "🗂",
		},
		{
			ID:       NodeJudge,
			Category: diagram.CategoryRouter,
			Rect:     diagram.Rect{X: 420, Y: 180, W: 240, H: 70},
			Title:    "Retriage Judge",
			Subtitle: "selects stage to re-evaluate",
			Glow:     true,
		},

		// Stage 2 branch (left)
		{
			ID:       NodeRetriageStage2,
			Category: diagram.CategoryStage2,
			Rect:     diagram.Rect{X: 90, Y: 320, W: 180, H: 62},
			Title:    "Stage 2 Re-Eval",
			Subtitle: "broad symptom category",
		},
		{
			ID:       NodeAskStage2,
			Category: diagram.CategoryQuestion,
			Rect:     diagram.Rect{X: 20, Y: 480, W: 140, H: 56},
			Title:    "Ask Question",
			Subtitle: "more info needed",
		},
		{
			ID:       NodeStage2Classifier,
			Category: diagram.CategoryStage2,
			Rect:     diagram.Rect{X: 175, Y: 480, W: 175, H: 62},
			Title:    "Stage 2 Classifier",
			Subtitle: "pick symptom category",
		},

		// Stage 3 branch (center)
		{
			ID:       NodeRetriageStage3,
			Category: diagram.CategoryStage3,
			Rect:     diagram.Rect{X: 450, Y: 320, W: 180, H: 62},
			Title:    "Stage 3 Re-Eval",
			Subtitle: "symptom detail",
		},
		{
			ID:       NodeStage3Candidates,
			Category: diagram.CategoryMapping,
			Rect:     diagram.Rect{X: 545, Y: 400, W: 160, H: 48},
			Title:    "Stage 3 Candidates",
			Subtitle: "narrowed by stage 2 pick",
			Radius:   6,
		},
		{
			ID:       NodeAskStage3,
			Category: diagram.CategoryQuestion,
			Rect:     diagram.Rect{X: 380, Y: 480, W: 140, H: 56},
			Title:    "Ask Question",
			Subtitle: "more info needed",
		},
		{
			ID:       NodeStage3Classifier,
			Category: diagram.CategoryStage3,
			Rect:     diagram.Rect{X: 535, Y: 480, W: 175, H: 62},
			Title:    "Stage 3 Classifier",
			Subtitle: "pick symptom detail",
		},

		// Stage 4 branch (right)
		{
			ID:       NodeRetriageStage4,
			Category: diagram.CategoryStage4,
			Rect:     diagram.Rect{X: 810, Y: 320, W: 180, H: 62},
			Title:    "Stage 4 Re-Eval",
			Subtitle: "clinical presentation",
		},
		{
			ID:       NodeStage4Candidates,
			Category: diagram.CategoryMapping,
			Rect:     diagram.Rect{X: 900, Y: 400, W: 140, H: 48},
			Title:    "Stage 4 Candidates",
			Subtitle: "narrowed by stage 3 pick",
			Radius:   6,
		},
		{
			ID:       NodeAskStage4,
			Category: diagram.CategoryQuestion,
			Rect:     diagram.Rect{X: 740, Y: 480, W: 140, H: 56},
			Title:    "Ask Question",
			Subtitle: "more info needed",
		},
		{
			ID:       NodeStage4Classifier,
			Category: diagram.CategoryStage4,
			Rect:     diagram.Rect{X: 890, Y: 480, W: 150, H: 62},
			Title:    "Stage 4 Classifier",
			Subtitle: "pick presentation",
		},

		{
			ID:       NodeOutput,
			Category: diagram.CategoryOutput,
			Rect:     diagram.Rect{X: 420, Y: 640, W: 240, H: 70},
			Title:    "Final KTAS Level",
			Subtitle: "severity grade 1–5",
			Glyph:    "🚨",
			Glow:     true,
		},
	}
}

func composeConnectors() []diagram.Connector {
	return []diagram.Connector{
		// Input and carried-over context into the judge.
		straight(NodeInput, NodeJudge, pt(540, 118), pt(540, 180), diagram.ColorSlate, false),
		straight(NodeState, NodeJudge, pt(250, 193), pt(420, 215), diagram.ColorSlate, true),

		// Fan-out to the three branches: the center branch drops straight,
		// the outer branches take one-bend curves so the paths stay apart.
		curve(NodeJudge, NodeRetriageStage2, pt(540, 250), pt(540, 290), pt(180, 280), pt(180, 320), diagram.ColorGreen, false),
		straight(NodeJudge, NodeRetriageStage3, pt(540, 250), pt(540, 320), diagram.ColorIndigo, false),
		curve(NodeJudge, NodeRetriageStage4, pt(540, 250), pt(540, 290), pt(900, 280), pt(900, 320), diagram.ColorPink, false),

		// Stage 2 branch: ask or classify.
		curve(NodeRetriageStage2, NodeAskStage2, pt(180, 382), pt(180, 420), pt(90, 440), pt(90, 480), diagram.ColorAmber, true),
		curve(NodeRetriageStage2, NodeStage2Classifier, pt(180, 382), pt(180, 420), pt(262, 440), pt(262, 480), diagram.ColorGreen, false),

		// Stage 3 branch.
		curve(NodeRetriageStage3, NodeAskStage3, pt(540, 382), pt(540, 420), pt(450, 440), pt(450, 480), diagram.ColorAmber, true),
		curve(NodeRetriageStage3, NodeStage3Classifier, pt(540, 382), pt(540, 420), pt(622, 440), pt(622, 480), diagram.ColorIndigo, false),

		// Stage 4 branch.
		curve(NodeRetriageStage4, NodeAskStage4, pt(900, 382), pt(900, 420), pt(810, 440), pt(810, 480), diagram.ColorAmber, true),
		curve(NodeRetriageStage4, NodeStage4Classifier, pt(900, 382), pt(900, 420), pt(965, 440), pt(965, 480), diagram.ColorPink, false),

		// Candidate mappings: each stage's pick narrows the next stage.
		curve(NodeStage2Classifier, NodeStage3Candidates, pt(350, 511), pt(420, 511), pt(470, 424), pt(545, 424), diagram.ColorViolet, false),
		straight(NodeStage3Candidates, NodeStage3Classifier, pt(625, 448), pt(622, 480), diagram.ColorViolet, false),
		curve(NodeStage3Classifier, NodeStage4Candidates, pt(710, 511), pt(790, 511), pt(820, 424), pt(900, 424), diagram.ColorViolet, false),
		straight(NodeStage4Candidates, NodeStage4Classifier, pt(970, 448), pt(965, 480), diagram.ColorViolet, false),

		// Convergence on the final level. Stage 4 is the canonical severity
		// source; the stage 2/3 edges show those branches also feed the end.
		curve(NodeStage2Classifier, NodeOutput, pt(262, 542), pt(262, 595), pt(420, 610), pt(470, 640), diagram.ColorSlate, false),
		curve(NodeStage3Classifier, NodeOutput, pt(622, 542), pt(622, 590), pt(560, 610), pt(560, 640), diagram.ColorSlate, false),
		curve(NodeStage4Classifier, NodeOutput, pt(965, 542), pt(965, 600), pt(760, 620), pt(610, 640), diagram.ColorRed, false),

		// Feedback: answers to follow-up questions re-enter the pipeline.
		curve(NodeAskStage2, NodeJudge, pt(90, 480), pt(40, 380), pt(120, 250), pt(420, 212), diagram.ColorAmber, true),
	}
}

func composeLabels() []diagram.Label {
	return []diagram.Label{
		{
			At:    pt(52, 350),
			Text:  "answers re-enter as input",
			Color: "#B45309",
			Size:  11,
			Angle: -90,
			Pivot: ptr(52, 350),
		},
		{
			At:    pt(332, 196),
			Text:  "carried-over context",
			Size:  10,
		},
		{
			At:    pt(800, 628),
			Text:  "canonical severity path",
			Color: "#B91C1C",
			Size:  10,
		},
	}
}

// BranchBounds returns the bounding box of each stage branch's node
// cluster (re-eval, ask, classifier, and any candidate-mapping node).
// The three boxes must not intersect; the validate command and the layout
// tests check this.
func BranchBounds() map[string]diagram.Rect {
	s := Compose()
	branches := map[string][]string{
		"stage-2": {NodeRetriageStage2, NodeAskStage2, NodeStage2Classifier},
		"stage-3": {NodeRetriageStage3, NodeAskStage3, NodeStage3Classifier, NodeStage3Candidates},
		"stage-4": {NodeRetriageStage4, NodeAskStage4, NodeStage4Classifier, NodeStage4Candidates},
	}

	out := make(map[string]diagram.Rect, len(branches))
	for name, ids := range branches {
		var box diagram.Rect
		for i, id := range ids {
			n, _ := s.Node(id)
			if i == 0 {
				box = n.Rect
				continue
			}
			box = box.Union(n.Rect)
		}
		out[name] = box
	}
	return out
}
