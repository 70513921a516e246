package runner

import (
	"fmt"
	"io"
)

// WriterSinks writes messages verbatim to Out and bad lines to Err.
// It implements both ports.MessageSink and ports.ErrorSink.
type WriterSinks struct {
	Out io.Writer
	Err io.Writer

	// MaxLevel drops messages above this verbosity level. Zero keeps everything.
	MaxLevel uint8
}

// NewWriterSinks creates sinks writing to out and errw.
func NewWriterSinks(out, errw io.Writer) *WriterSinks {
	return &WriterSinks{Out: out, Err: errw}
}

func (s *WriterSinks) Message(level uint8, text string) {
	if s.MaxLevel > 0 && level > s.MaxLevel {
		return
	}
	fmt.Fprintln(s.Out, text)
}

func (s *WriterSinks) DecodeError(line string, err error) {
	fmt.Fprintf(s.Err, "Bad line: %s\n", line)
}
