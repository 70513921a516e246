package tree

import (
	"log/slog"

	"github.com/aretw0/steptree/pkg/observability"
	"github.com/aretw0/steptree/pkg/ports"
)

// Option defines a functional option for configuring the Builder.
type Option func(*Builder)

// WithMessageSink configures where message records go.
func WithMessageSink(sink ports.MessageSink) Option {
	return func(b *Builder) {
		if sink != nil {
			b.messages = sink
		}
	}
}

// WithErrorSink configures where bad lines are reported.
func WithErrorSink(sink ports.ErrorSink) Option {
	return func(b *Builder) {
		if sink != nil {
			b.errors = sink
		}
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Builder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithMetrics configures the Prometheus collectors to update.
func WithMetrics(m *observability.Metrics) Option {
	return func(b *Builder) {
		b.metrics = m
	}
}

// WithLenient turns structural violations into reported-and-skipped records
// instead of fatal errors.
func WithLenient(lenient bool) Option {
	return func(b *Builder) {
		b.lenient = lenient
	}
}
