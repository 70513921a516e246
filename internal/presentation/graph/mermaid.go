package graph

import (
	"fmt"
	"iter"
	"strings"

	"github.com/aretw0/steptree/pkg/domain"
)

// GenerateMermaid produces a Mermaid flowchart from a pre-order walk of the tree.
// It applies semantic styling:
// - Root: ((Circle))
// - Build kinds: [[Subroutine]]
// - Transfers and substitutions: [/Parallelogram/]
// - Default: [Rectangle]
// Steps whose progress is complete or still running get a class each.
func GenerateMermaid(walk iter.Seq2[int, domain.Step]) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	var finished, running []string

	for _, step := range walk {
		id := mermaidID(step.ID)

		opener, closer := "[", "]"
		switch {
		case step.IsRoot():
			opener, closer = "((", "))"
		case step.Kind == domain.ActionBuild || step.Kind == domain.ActionBuilds:
			opener, closer = "[[", "]]"
		case step.Kind == domain.ActionFileTransfer || step.Kind == domain.ActionSubstitute ||
			step.Kind == domain.ActionCopyPath || step.Kind == domain.ActionCopyPaths:
			opener, closer = "[/", "/]"
		}

		label := fmt.Sprintf("%s %s", step.Kind, step.Progress)
		if step.Text != "" {
			label += " <br/> " + sanitizeLabel(step.Text)
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", id, opener, label, closer))

		if step.Parent != nil {
			sb.WriteString(fmt.Sprintf("    %s --> %s\n", mermaidID(*step.Parent), id))
		}

		p := step.Progress
		switch {
		case p.Expected > 0 && p.Done >= p.Expected:
			finished = append(finished, id)
		case p.Running > 0:
			running = append(running, id)
		}
	}

	if len(finished) > 0 || len(running) > 0 {
		sb.WriteString("\n    %% Progress Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds
		sb.WriteString("    classDef finished fill:#e8f5e9,stroke:#2e7d32,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef running fill:#ffeb3b,stroke:#fbc02d,stroke-width:2px,color:#000;\n")
		for _, id := range finished {
			sb.WriteString(fmt.Sprintf("    class %s finished;\n", id))
		}
		for _, id := range running {
			sb.WriteString(fmt.Sprintf("    class %s running;\n", id))
		}
	}

	return sb.String()
}

func mermaidID(id domain.StepID) string {
	return fmt.Sprintf("s%d", id)
}

// sanitizeLabel keeps free text from closing the quoted Mermaid label.
func sanitizeLabel(text string) string {
	s := strings.ReplaceAll(text, "\"", "'")
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}
