package tree

import (
	"iter"

	"github.com/aretw0/steptree/pkg/domain"
	"github.com/aretw0/steptree/pkg/ports"
)

// Walk returns a lazy pre-order traversal starting at id. Each step is
// yielded with its depth relative to id; children come in arrival order.
// The sequence can be ranged over any number of times. An unknown id
// yields nothing.
func (b *Builder) Walk(id domain.StepID) iter.Seq2[int, domain.Step] {
	return func(yield func(int, domain.Step) bool) {
		b.walk(id, 0, yield)
	}
}

func (b *Builder) walk(id domain.StepID, depth int, yield func(int, domain.Step) bool) bool {
	step, ok := b.steps[id]
	if !ok {
		return true
	}
	if !yield(depth, step.Clone()) {
		return false
	}
	for _, child := range step.Children {
		if !b.walk(child, depth+1, yield) {
			return false
		}
	}
	return true
}

// Visit walks the subtree at id and calls v once per step.
func (b *Builder) Visit(id domain.StepID, v ports.Visitor) {
	for depth, step := range b.Walk(id) {
		v(depth, step.Kind, step.Progress.String(), step.Text)
	}
}
