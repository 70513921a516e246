package runner

import (
	"log/slog"

	"github.com/aretw0/steptree/pkg/decoder"
	"github.com/aretw0/steptree/pkg/ports"
)

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithDecoder configures the line decoder.
func WithDecoder(d *decoder.Decoder) Option {
	return func(r *Runner) {
		if d != nil {
			r.Decoder = d
		}
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.Logger = logger
		}
	}
}

// WithPassthrough routes unprefixed lines to sink instead of the error sink.
func WithPassthrough(sink ports.MessageSink) Option {
	return func(r *Runner) {
		r.Passthrough = sink
	}
}
