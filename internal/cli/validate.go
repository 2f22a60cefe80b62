package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/triagemap/pkg/diagram"
	"github.com/matzehuels/triagemap/pkg/errors"
	"github.com/matzehuels/triagemap/pkg/flow"
)

// validateCommand creates the validate command for structural checks.
func (c *CLI) validateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the composition for structural defects",
		Long: `Check the pipeline composition for structural defects.

Beyond basic scene validity (unique ids, known categories and colors,
resolvable connector endpoints), validate verifies the layout invariants
the composition is built around: every category appears in the diagram
and the legend, the three stage branches occupy disjoint regions, all
geometry stays inside the canvas, and follow-up answers have a feedback
path back to the judge.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate()
		},
	}
}

// check is one named validation over the composition.
type check struct {
	name string
	run  func(*diagram.Scene) error
}

func runValidate() error {
	scene := flow.Compose()

	checks := []check{
		{"scene validity", func(s *diagram.Scene) error { return s.Validate() }},
		{"category coverage", checkCategoryCoverage},
		{"legend consistency", checkLegend},
		{"branch separation", checkBranchSeparation},
		{"canvas bounds", checkCanvasBounds},
		{"feedback path", checkFeedbackPath},
	}

	failed := 0
	for _, ck := range checks {
		if err := ck.run(scene); err != nil {
			printError("%s: %v", ck.name, err)
			failed++
			continue
		}
		printSuccess("%s", ck.name)
	}

	if failed > 0 {
		return errors.New(errors.ErrCodeInvalidScene, "%d of %d checks failed", failed, len(checks))
	}
	printDetail("%d nodes, %d connectors, %d labels", len(scene.Nodes), len(scene.Connectors), len(scene.Labels))
	return nil
}

// checkCategoryCoverage verifies every registered category is used by at
// least one node, so the legend never advertises a shape that isn't drawn.
func checkCategoryCoverage(s *diagram.Scene) error {
	used := make(map[diagram.Category]bool, len(s.Nodes))
	for _, n := range s.Nodes {
		used[n.Category] = true
	}

	var missing []string
	for _, cat := range diagram.Categories() {
		if !used[cat] {
			missing = append(missing, string(cat))
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("unused categories: %s", strings.Join(missing, ", "))
	}
	return nil
}

// checkLegend verifies the legend derives one entry per category, in
// registry order.
func checkLegend(*diagram.Scene) error {
	entries := diagram.Legend()
	cats := diagram.Categories()
	if len(entries) != len(cats) {
		return fmt.Errorf("legend has %d entries, registry has %d categories", len(entries), len(cats))
	}
	for i, e := range entries {
		if e.Category != cats[i] {
			return fmt.Errorf("legend entry %d is %q, want %q", i, e.Category, cats[i])
		}
	}
	return nil
}

// checkBranchSeparation verifies the three stage branch clusters occupy
// pairwise disjoint regions of the canvas.
func checkBranchSeparation(*diagram.Scene) error {
	bounds := flow.BranchBounds()
	names := make([]string, 0, len(bounds))
	for name := range bounds {
		names = append(names, name)
	}
	for i := 0; i < len(names); i++ {
		for j := i + 1; j < len(names); j++ {
			if bounds[names[i]].Intersects(bounds[names[j]]) {
				return fmt.Errorf("branches %s and %s overlap", names[i], names[j])
			}
		}
	}
	return nil
}

// checkCanvasBounds verifies all node rectangles and connector endpoints
// lie inside the canvas.
func checkCanvasBounds(s *diagram.Scene) error {
	for _, n := range s.Nodes {
		if n.Rect.X < 0 || n.Rect.Y < 0 || n.Rect.Right() > s.Width || n.Rect.Bottom() > s.Height {
			return fmt.Errorf("node %q extends outside the canvas", n.ID)
		}
	}
	for i, conn := range s.Connectors {
		for _, p := range []diagram.Point{conn.Start, conn.End} {
			if p.X < 0 || p.Y < 0 || p.X > s.Width || p.Y > s.Height {
				return fmt.Errorf("connector %d (%s→%s) leaves the canvas", i, conn.From, conn.To)
			}
		}
	}
	return nil
}

// checkFeedbackPath verifies an ask-question node connects back to the
// judge, closing the answer loop.
func checkFeedbackPath(s *diagram.Scene) error {
	asks := map[string]bool{
		flow.NodeAskStage2: true,
		flow.NodeAskStage3: true,
		flow.NodeAskStage4: true,
	}
	for _, conn := range s.Connectors {
		if asks[conn.From] && conn.To == flow.NodeJudge {
			return nil
		}
	}
	return fmt.Errorf("no connector from an ask-question node back to %q", flow.NodeJudge)
}
