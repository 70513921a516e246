package ports

import "github.com/aretw0/steptree/pkg/domain"

// MessageSink receives free-text message records verbatim, in arrival order.
type MessageSink interface {
	Message(level uint8, text string)
}

// ErrorSink receives every line that could not be applied, in arrival order.
type ErrorSink interface {
	DecodeError(line string, err error)
}

// Visitor is called once per step during a pre-order walk. progress is the
// display form "done/expected (running)".
type Visitor func(depth int, kind domain.ActionKind, progress string, text string)

// MessageFunc adapts a plain function to MessageSink.
type MessageFunc func(level uint8, text string)

func (f MessageFunc) Message(level uint8, text string) { f(level, text) }

// ErrorFunc adapts a plain function to ErrorSink.
type ErrorFunc func(line string, err error)

func (f ErrorFunc) DecodeError(line string, err error) { f(line, err) }

// Discard drops everything it receives.
var Discard discard

type discard struct{}

func (discard) Message(uint8, string)     {}
func (discard) DecodeError(string, error) {}
