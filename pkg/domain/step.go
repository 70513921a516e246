package domain

import (
	"fmt"
	"slices"
)

// StepID identifies a step within a single run.
type StepID uint64

// RootID is reserved for the synthetic root step.
const RootID StepID = 0

// Progress describes the aggregation state of a build-kind step.
type Progress struct {
	Done     uint64 `json:"done"`
	Expected uint64 `json:"expected"`
	Running  uint64 `json:"running"`
	Failed   uint64 `json:"failed"`
}

// ProgressFromFields builds a Progress from the positional result fields
// (done, expected, running, failed).
func ProgressFromFields(fields []uint64) (Progress, error) {
	if len(fields) != 4 {
		return Progress{}, fmt.Errorf("%w: got %d, want 4", ErrFieldCount, len(fields))
	}
	return Progress{
		Done:     fields[0],
		Expected: fields[1],
		Running:  fields[2],
		Failed:   fields[3],
	}, nil
}

// String renders the progress as "done/expected (running)".
func (p Progress) String() string {
	return fmt.Sprintf("%d/%d (%d)", p.Done, p.Expected, p.Running)
}

// Step is one node in the build hierarchy.
type Step struct {
	ID   StepID     `json:"id"`
	Kind ActionKind `json:"kind"`
	Text string     `json:"text"`

	// Parent is nil only for the root.
	Parent *StepID `json:"parent,omitempty"`

	// Children are listed in the order their start records arrived.
	Children []StepID `json:"children"`

	Progress Progress `json:"progress"`

	// Level is the verbosity level of the start record.
	Level uint8 `json:"level,omitempty"`
}

// NewRootStep returns the synthetic root every tree starts from.
func NewRootStep() *Step {
	return &Step{ID: RootID, Kind: ActionBuild}
}

// IsRoot reports whether the step is the synthetic root.
func (s Step) IsRoot() bool {
	return s.Parent == nil
}

// Clone returns a copy that shares no memory with s.
func (s Step) Clone() Step {
	c := s
	c.Children = slices.Clone(s.Children)
	if s.Parent != nil {
		p := *s.Parent
		c.Parent = &p
	}
	return c
}
