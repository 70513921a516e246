package dsl

import (
	"github.com/aretw0/steptree/pkg/decoder"
	"github.com/aretw0/steptree/pkg/domain"
)

// StepBuilder provides a fluent API for configuring a start record.
type StepBuilder struct {
	id      domain.StepID
	parent  domain.StepID
	kind    domain.ActionKind
	text    string
	level   uint8
	builder *Builder
}

// Under sets the parent step.
func (s *StepBuilder) Under(parent domain.StepID) *StepBuilder {
	s.parent = parent
	return s
}

// Kind sets the activity kind.
func (s *StepBuilder) Kind(kind domain.ActionKind) *StepBuilder {
	s.kind = kind
	return s
}

// Text sets the description.
func (s *StepBuilder) Text(text string) *StepBuilder {
	s.text = text
	return s
}

// Level sets the verbosity level.
func (s *StepBuilder) Level(level uint8) *StepBuilder {
	s.level = level
	return s
}

// Done returns to the log builder, for chaining further records.
func (s *StepBuilder) Done() *Builder {
	return s.builder
}

func (s *StepBuilder) line(prefix string) string {
	return record{
		"action": decoder.ActionStart,
		"id":     s.id,
		"parent": s.parent,
		"type":   uint8(s.kind),
		"text":   s.text,
		"level":  s.level,
	}.line(prefix)
}
