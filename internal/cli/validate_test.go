package cli

import (
	"testing"

	"github.com/matzehuels/triagemap/pkg/flow"
)

func TestRunValidate(t *testing.T) {
	// The shipped composition must pass every check.
	if err := runValidate(); err != nil {
		t.Errorf("runValidate() = %v, want nil", err)
	}
}

func TestCheckCategoryCoverage(t *testing.T) {
	s := flow.Compose()
	if err := checkCategoryCoverage(s); err != nil {
		t.Errorf("checkCategoryCoverage = %v", err)
	}

	// Drop every stream node and the check must flag the gap.
	kept := s.Nodes[:0]
	for _, n := range s.Nodes {
		if n.ID != flow.NodeInput {
			kept = append(kept, n)
		}
	}
	s.Nodes = kept
	if err := checkCategoryCoverage(s); err == nil {
		t.Error("checkCategoryCoverage should fail when a category goes unused")
	}
}

func TestCheckCanvasBounds(t *testing.T) {
	s := flow.Compose()
	if err := checkCanvasBounds(s); err != nil {
		t.Errorf("checkCanvasBounds = %v", err)
	}

	s.Nodes[0].Rect.X = s.Width - 1
	if err := checkCanvasBounds(s); err == nil {
		t.Error("checkCanvasBounds should flag a node past the right edge")
	}
}

func TestCheckFeedbackPath(t *testing.T) {
	s := flow.Compose()
	if err := checkFeedbackPath(s); err != nil {
		t.Errorf("checkFeedbackPath = %v", err)
	}

	asks := map[string]bool{flow.NodeAskStage2: true, flow.NodeAskStage3: true, flow.NodeAskStage4: true}
	kept := s.Connectors[:0]
	for _, c := range s.Connectors {
		if !(asks[c.From] && c.To == flow.NodeJudge) {
			kept = append(kept, c)
		}
	}
	s.Connectors = kept
	if err := checkFeedbackPath(s); err == nil {
		t.Error("checkFeedbackPath should fail without an ask→judge connector")
	}
}

func TestCheckLegendAndBranches(t *testing.T) {
	if err := checkLegend(nil); err != nil {
		t.Errorf("checkLegend = %v", err)
	}
	if err := checkBranchSeparation(nil); err != nil {
		t.Errorf("checkBranchSeparation = %v", err)
	}
}
