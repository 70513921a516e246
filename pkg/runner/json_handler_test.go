package runner

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/aretw0/steptree/pkg/domain"
	"github.com/aretw0/steptree/pkg/tree"
)

func TestJSONHandler_Export(t *testing.T) {
	b := tree.New()
	if err := b.Apply(domain.StepStart{ID: 1, Parent: 0, Kind: domain.ActionBuild, Text: "build foo"}); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if err := b.Apply(domain.StepResult{ID: 1, Code: 105, Fields: []uint64{1, 5, 1, 0}}); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	buf := &bytes.Buffer{}
	if err := NewJSONHandler(buf).Export(b.Walk(domain.RootID)); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines of output, got %d", len(lines))
	}

	var root, child JSONNode
	if err := json.Unmarshal([]byte(lines[0]), &root); err != nil {
		t.Fatalf("Failed to decode JSON: %v", err)
	}
	if err := json.Unmarshal([]byte(lines[1]), &child); err != nil {
		t.Fatalf("Failed to decode JSON: %v", err)
	}

	if root.Parent != nil || root.Kind != "BUILD" || len(root.Children) != 1 {
		t.Errorf("Unexpected root: %+v", root)
	}
	if child.Depth != 1 || child.Summary != "1/5 (1)" || child.Text != "build foo" {
		t.Errorf("Unexpected child: %+v", child)
	}
	if child.Parent == nil || *child.Parent != domain.RootID {
		t.Errorf("Expected child parent 0, got %v", child.Parent)
	}
	if !strings.Contains(lines[1], `"children":[]`) {
		t.Errorf("Expected empty children array, got %s", lines[1])
	}
}
