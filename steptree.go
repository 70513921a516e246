package steptree

import (
	"context"
	"io"
	"iter"
	"log/slog"

	"github.com/aretw0/steptree/internal/logging"
	"github.com/aretw0/steptree/pkg/decoder"
	"github.com/aretw0/steptree/pkg/domain"
	"github.com/aretw0/steptree/pkg/observability"
	"github.com/aretw0/steptree/pkg/ports"
	"github.com/aretw0/steptree/pkg/runner"
	"github.com/aretw0/steptree/pkg/tree"
)

// Version is the release version, overridden at build time with -ldflags.
var Version = "0.1.0-dev"

// Monitor is the high-level entry point for the library.
// It wires a decoder, a tree builder and a runner for one log source.
type Monitor struct {
	tree   *tree.Builder
	runner *runner.Runner

	messages    ports.MessageSink
	errors      ports.ErrorSink
	logger      *slog.Logger
	metrics     *observability.Metrics
	prefix      string
	passthrough bool
	lenient     bool
}

// Option defines a functional option for configuring the Monitor.
type Option func(*Monitor)

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Monitor) {
		m.logger = logger
	}
}

// WithMessageSink sets where free-text messages go.
func WithMessageSink(sink ports.MessageSink) Option {
	return func(m *Monitor) {
		m.messages = sink
	}
}

// WithErrorSink sets where undecodable lines go.
func WithErrorSink(sink ports.ErrorSink) Option {
	return func(m *Monitor) {
		m.errors = sink
	}
}

// WithMetrics records ingestion metrics into m.
func WithMetrics(metrics *observability.Metrics) Option {
	return func(m *Monitor) {
		m.metrics = metrics
	}
}

// WithPrefix requires every structured line to start with prefix (e.g. "@nix").
// When passthrough is set, other lines go to the message sink verbatim
// instead of being reported as bad lines.
func WithPrefix(prefix string, passthrough bool) Option {
	return func(m *Monitor) {
		m.prefix = prefix
		m.passthrough = passthrough
	}
}

// WithLenient reports structural violations and keeps going instead of
// stopping at the first one.
func WithLenient(lenient bool) Option {
	return func(m *Monitor) {
		m.lenient = lenient
	}
}

// New creates a Monitor ready to ingest one log source.
func New(opts ...Option) *Monitor {
	m := &Monitor{
		messages: ports.Discard,
		errors:   ports.Discard,
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}

	m.tree = tree.New(
		tree.WithMessageSink(m.messages),
		tree.WithErrorSink(m.errors),
		tree.WithLogger(m.logger),
		tree.WithMetrics(m.metrics),
		tree.WithLenient(m.lenient),
	)

	runnerOpts := []runner.Option{
		runner.WithLogger(m.logger),
		runner.WithDecoder(decoder.New(decoder.WithPrefix(m.prefix))),
	}
	if m.passthrough && m.prefix != "" {
		runnerOpts = append(runnerOpts, runner.WithPassthrough(m.messages))
	}
	m.runner = runner.New(m.tree, runnerOpts...)
	return m
}

// Ingest reads src to exhaustion. On a structural violation it returns the
// error; the tree built so far stays available for rendering.
func (m *Monitor) Ingest(ctx context.Context, src io.Reader) (runner.Stats, error) {
	return m.runner.Run(ctx, src)
}

// Tree exposes the underlying builder.
func (m *Monitor) Tree() *tree.Builder {
	return m.tree
}

// Root returns a copy of the root step.
func (m *Monitor) Root() domain.Step {
	return m.tree.Root()
}

// Walk traverses the whole tree in pre-order.
func (m *Monitor) Walk() iter.Seq2[int, domain.Step] {
	return m.tree.Walk(domain.RootID)
}

// Visit calls v for every step in pre-order.
func (m *Monitor) Visit(v ports.Visitor) {
	m.tree.Visit(domain.RootID, v)
}
