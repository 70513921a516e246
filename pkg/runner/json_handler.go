package runner

import (
	"encoding/json"
	"io"
	"iter"

	"github.com/aretw0/steptree/pkg/domain"
)

// JSONNode is the NDJSON shape of one step in a tree export.
type JSONNode struct {
	Depth    int             `json:"depth"`
	ID       domain.StepID   `json:"id"`
	Parent   *domain.StepID  `json:"parent"`
	Kind     string          `json:"kind"`
	Progress domain.Progress `json:"progress"`
	Summary  string          `json:"summary"`
	Text     string          `json:"text"`
	Children []domain.StepID `json:"children"`
}

// JSONHandler exports a tree as JSON-Lines, one step per line in pre-order.
type JSONHandler struct {
	Encoder *json.Encoder
}

// NewJSONHandler creates a handler writing to w.
func NewJSONHandler(w io.Writer) *JSONHandler {
	return &JSONHandler{Encoder: json.NewEncoder(w)}
}

// Export writes every step of the walk.
func (h *JSONHandler) Export(walk iter.Seq2[int, domain.Step]) error {
	for depth, step := range walk {
		children := step.Children
		if children == nil {
			children = []domain.StepID{}
		}
		node := JSONNode{
			Depth:    depth,
			ID:       step.ID,
			Parent:   step.Parent,
			Kind:     step.Kind.String(),
			Progress: step.Progress,
			Summary:  step.Progress.String(),
			Text:     step.Text,
			Children: children,
		}
		if err := h.Encoder.Encode(node); err != nil {
			return err
		}
	}
	return nil
}
