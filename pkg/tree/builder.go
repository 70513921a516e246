package tree

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/steptree/internal/logging"
	"github.com/aretw0/steptree/pkg/domain"
	"github.com/aretw0/steptree/pkg/observability"
	"github.com/aretw0/steptree/pkg/ports"
)

// State is the lifecycle phase of a tree.
type State int

const (
	// StateEmpty holds only the root.
	StateEmpty State = iota
	// StateGrowing has had at least one record applied.
	StateGrowing
	// StateFinal accepts no more records.
	StateFinal
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateGrowing:
		return "growing"
	case StateFinal:
		return "final"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Builder owns every step of one run and applies decoded records to them.
// It is not safe for concurrent use; ingestion is a single control flow.
type Builder struct {
	steps map[domain.StepID]*domain.Step
	state State

	messages ports.MessageSink
	errors   ports.ErrorSink
	logger   *slog.Logger
	metrics  *observability.Metrics
	lenient  bool
}

// New creates a Builder seeded with the root step.
func New(opts ...Option) *Builder {
	b := &Builder{
		steps: map[domain.StepID]*domain.Step{
			domain.RootID: domain.NewRootStep(),
		},
		messages: ports.Discard,
		errors:   ports.Discard,
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Apply mutates the tree according to one record.
//
// Messages and decode errors are forwarded to their sinks and never fail.
// A start or result record that references an unknown step returns a
// *domain.StructuralError, unless the builder is lenient, in which case the
// violation goes to the error sink and the record is skipped.
func (b *Builder) Apply(rec domain.Record) error {
	if b.state == StateFinal {
		return domain.ErrFinalized
	}
	b.state = StateGrowing

	switch r := rec.(type) {
	case domain.Message:
		b.metrics.ObserveRecord("msg")
		b.messages.Message(r.Level, r.Text)
		return nil

	case domain.DecodeError:
		b.metrics.ObserveDecodeError()
		b.logger.Debug("bad line", "line", r.Line, "err", r.Err)
		b.errors.DecodeError(r.Line, r.Err)
		return nil

	case domain.StepStart:
		b.metrics.ObserveRecord("start")
		return b.structural(b.start(r))

	case domain.StepResult:
		b.metrics.ObserveRecord("result")
		return b.structural(b.result(r))

	case nil:
		return fmt.Errorf("apply: nil record")
	}
	return fmt.Errorf("apply: unsupported record %T", rec)
}

func (b *Builder) start(r domain.StepStart) error {
	parent, ok := b.steps[r.Parent]
	if !ok {
		return &domain.StructuralError{Op: "start", ID: r.ID, Ref: r.Parent, Err: domain.ErrUnknownParent}
	}
	if _, dup := b.steps[r.ID]; dup {
		return &domain.StructuralError{Op: "start", ID: r.ID, Ref: r.ID, Err: domain.ErrDuplicateStep}
	}

	parentID := r.Parent
	b.steps[r.ID] = &domain.Step{
		ID:       r.ID,
		Kind:     r.Kind,
		Text:     r.Text,
		Parent:   &parentID,
		Children: []domain.StepID{},
		Level:    r.Level,
	}
	parent.Children = append(parent.Children, r.ID)

	b.metrics.ObserveStep(r.Kind)
	b.logger.Debug("step started", "id", r.ID, "parent", r.Parent, "kind", r.Kind)
	return nil
}

func (b *Builder) result(r domain.StepResult) error {
	step, ok := b.steps[r.ID]
	if !ok {
		return &domain.StructuralError{Op: "result", ID: r.ID, Ref: r.ID, Err: domain.ErrUnknownStep}
	}

	// Progress is only modelled for build-kind results; other kinds are
	// consumed without touching the step.
	if r.Code != uint64(domain.ActionBuild) {
		b.logger.Debug("result ignored", "id", r.ID, "type", domain.ResultKind(r.Code))
		return nil
	}

	var fields []uint64
	if r.Raw == nil {
		fields = r.Fields
	}
	progress, err := domain.ProgressFromFields(fields)
	if err != nil {
		if r.Raw != nil {
			err = fmt.Errorf("%w: non-numeric fields", domain.ErrFieldCount)
		}
		b.metrics.ObserveDecodeError()
		b.errors.DecodeError(describeResult(r), err)
		return nil
	}

	step.Progress = progress
	b.metrics.ObserveProgress(progress)
	return nil
}

// structural applies the fatal-or-skip policy to a lookup failure.
func (b *Builder) structural(err error) error {
	if err == nil {
		return nil
	}
	b.metrics.ObserveStructural()
	if !b.lenient {
		b.logger.Error("structural violation", "err", err)
		return err
	}
	b.logger.Warn("structural violation skipped", "err", err)
	b.errors.DecodeError(err.Error(), err)
	return nil
}

// Finalize marks the end of the stream. Further records are rejected.
func (b *Builder) Finalize() {
	b.state = StateFinal
}

// State returns the lifecycle phase of the tree.
func (b *Builder) State() State {
	return b.state
}

// Len returns the number of steps, root included.
func (b *Builder) Len() int {
	return len(b.steps)
}

// Root returns a copy of the root step.
func (b *Builder) Root() domain.Step {
	return b.steps[domain.RootID].Clone()
}

// Step returns a copy of the step with the given id.
func (b *Builder) Step(id domain.StepID) (domain.Step, bool) {
	s, ok := b.steps[id]
	if !ok {
		return domain.Step{}, false
	}
	return s.Clone(), true
}

func describeResult(r domain.StepResult) string {
	return fmt.Sprintf("result id=%d type=%d fields=%v", r.ID, r.Code, resultFields(r))
}

func resultFields(r domain.StepResult) any {
	if r.Raw != nil {
		return r.Raw
	}
	return r.Fields
}
