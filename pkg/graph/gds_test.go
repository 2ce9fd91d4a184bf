package graph

import (
	"context"
	"strings"
	"testing"
)

// gdsRunner answers GDS procedure calls with canned summaries.
type gdsRunner struct {
	fakeRunner
}

func (g *gdsRunner) Run(ctx context.Context, cypher string, params map[string]any) ([]map[string]any, error) {
	g.statements = append(g.statements, cypher)
	g.params = append(g.params, params)
	switch {
	case strings.Contains(cypher, "gds.pageRank.write"):
		return []map[string]any{{
			"nodePropertiesWritten": int64(1862),
			"ranIterations":         int64(14),
		}}, nil
	case strings.Contains(cypher, "gds.louvain.write"):
		return []map[string]any{{
			"communityCount": int64(37),
			"modularity":     0.58,
		}}, nil
	}
	return nil, nil
}

// TestRunPageRank_DropProjectWrite verifies the drop → project → write
// sequence and the summary mapping.
func TestRunPageRank_DropProjectWrite(t *testing.T) {
	runner := &gdsRunner{}
	summary, err := RunPageRank(context.Background(), runner, testLogger())
	if err != nil {
		t.Fatalf("RunPageRank: %v", err)
	}

	if len(runner.statements) != 3 {
		t.Fatalf("statements = %d, want drop, project, write", len(runner.statements))
	}
	if !strings.Contains(runner.statements[0], "gds.graph.drop") {
		t.Errorf("first statement must drop: %s", runner.statements[0])
	}
	if !strings.Contains(runner.statements[1], "gds.graph.project.cypher") {
		t.Errorf("second statement must project: %s", runner.statements[1])
	}
	if runner.params[1]["name"] != OrderProductGraph {
		t.Errorf("projection name = %v", runner.params[1]["name"])
	}
	relQuery := runner.params[1]["relQuery"].(string)
	if !strings.Contains(relQuery, "CONTAINS") || !strings.Contains(relQuery, "weight") {
		t.Errorf("projection must weight order→product edges: %s", relQuery)
	}
	if !strings.Contains(runner.statements[2], "writeProperty") {
		t.Errorf("write statement must name the write-back property")
	}
	if runner.params[2]["writeProperty"] != PageRankProperty {
		t.Errorf("write property = %v", runner.params[2]["writeProperty"])
	}

	if summary.NodePropertiesWritten != 1862 || summary.RanIterations != 14 {
		t.Errorf("summary = %+v", summary)
	}
}

// TestRunLouvain_CoPurchaseProjection verifies the ordered-pair
// co-occurrence projection and the summary mapping.
func TestRunLouvain_CoPurchaseProjection(t *testing.T) {
	runner := &gdsRunner{}
	summary, err := RunLouvain(context.Background(), runner, testLogger())
	if err != nil {
		t.Fatalf("RunLouvain: %v", err)
	}

	if runner.params[1]["name"] != ProductCoGraph {
		t.Errorf("projection name = %v", runner.params[1]["name"])
	}
	relQuery := runner.params[1]["relQuery"].(string)
	if !strings.Contains(relQuery, "id(p1) < id(p2)") {
		t.Errorf("pairs must be ordered to avoid double-counting: %s", relQuery)
	}
	if !strings.Contains(relQuery, "count(*) AS weight") {
		t.Errorf("edge weight must be the shared-order count: %s", relQuery)
	}
	if runner.params[2]["writeProperty"] != CommunityProperty {
		t.Errorf("write property = %v", runner.params[2]["writeProperty"])
	}

	if summary.CommunityCount != 37 || summary.Modularity != 0.58 {
		t.Errorf("summary = %+v", summary)
	}
}
