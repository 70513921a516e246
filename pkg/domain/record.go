package domain

// Record is one decoded log line. The set of implementations is closed:
// Message, StepStart, StepResult and DecodeError.
type Record interface {
	record()
}

// Message is a free-text note meant for the user.
type Message struct {
	Level uint8
	Text  string
}

// StepStart announces a new step under an existing parent.
type StepStart struct {
	ID     StepID
	Parent StepID
	Kind   ActionKind
	Text   string
	Level  uint8
}

// StepResult carries result data for an existing step. Code is the raw
// result type; Fields holds the payload when it is purely numeric, Raw
// holds it otherwise.
type StepResult struct {
	ID     StepID
	Code   uint64
	Fields []uint64
	Raw    []any
}

// DecodeError is a line that could not be interpreted.
type DecodeError struct {
	Line string
	Err  error
}

func (Message) record()     {}
func (StepStart) record()   {}
func (StepResult) record()  {}
func (DecodeError) record() {}

// Error lets a DecodeError travel as an error value.
func (d DecodeError) Error() string {
	if d.Err == nil {
		return "bad line: " + d.Line
	}
	return "bad line: " + d.Err.Error()
}

func (d DecodeError) Unwrap() error {
	return d.Err
}
