package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/aretw0/steptree"
	"github.com/aretw0/steptree/internal/config"
	"github.com/aretw0/steptree/internal/presentation/graph"
	"github.com/aretw0/steptree/internal/presentation/tui"
	"github.com/aretw0/steptree/pkg/observability"
	"github.com/aretw0/steptree/pkg/runner"
	"github.com/muesli/termenv"
	"github.com/prometheus/client_golang/prometheus"
)

// RunOptions contains all the configuration for the run and graph commands.
type RunOptions struct {
	config.Config

	Input string // path to the log, "" or "-" for stdin

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func (o *RunOptions) defaults() {
	if o.Stdin == nil {
		o.Stdin = os.Stdin
	}
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
	if o.Format == "" {
		o.Format = config.FormatAuto
	}
}

// Execute handles the 'run' command: ingest the log, then render the tree.
// The tree is rendered even when ingestion stops early, and the ingestion
// error is returned afterwards.
func Execute(ctx context.Context, opts RunOptions) error {
	opts.defaults()
	if err := opts.Validate(); err != nil {
		return err
	}

	logger := createLogger(opts.Debug, opts.Stderr)

	var metrics *observability.Metrics
	if opts.MetricsAddr != "" {
		reg := prometheus.NewRegistry()
		metrics = observability.NewMetrics(reg)
		srv, err := StartMetricsServer(opts.MetricsAddr, reg, logger)
		if err != nil {
			return fmt.Errorf("failed to start metrics server: %w", err)
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	m, ingestErr := ingest(ctx, opts, logger, metrics)
	if m == nil {
		return ingestErr
	}
	if IsInterrupted(ingestErr) {
		return ingestErr
	}

	if err := render(opts, m); err != nil {
		return err
	}
	return ingestErr
}

// ExecuteGraph handles the 'graph' command: ingest the log, then print a Mermaid diagram.
func ExecuteGraph(ctx context.Context, opts RunOptions) error {
	opts.defaults()
	logger := createLogger(opts.Debug, opts.Stderr)

	m, ingestErr := ingest(ctx, opts, logger, nil)
	if m == nil || IsInterrupted(ingestErr) {
		return ingestErr
	}

	if _, err := fmt.Fprint(opts.Stdout, graph.GenerateMermaid(m.Walk())); err != nil {
		return err
	}
	return ingestErr
}

func ingest(ctx context.Context, opts RunOptions, logger *slog.Logger, metrics *observability.Metrics) (*steptree.Monitor, error) {
	src, err := openInput(opts.Input, opts.Stdin)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	sinks := runner.NewWriterSinks(opts.Stdout, opts.Stderr)
	sinks.MaxLevel = opts.MaxLevel

	m := steptree.New(
		steptree.WithLogger(logger),
		steptree.WithMessageSink(sinks),
		steptree.WithErrorSink(sinks),
		steptree.WithMetrics(metrics),
		steptree.WithPrefix(opts.Prefix, opts.Passthrough),
		steptree.WithLenient(opts.Lenient),
	)

	stats, err := m.Ingest(ctx, src)
	logger.Info("Log ingested",
		"lines", stats.Lines,
		"steps", m.Tree().Len(),
		"bad_lines", stats.Errors,
	)
	if err != nil {
		return m, fmt.Errorf("ingestion stopped: %w", err)
	}
	return m, nil
}

func render(opts RunOptions, m *steptree.Monitor) error {
	src := tui.Source(m.Visit)
	tty := isTerminal(opts.Stdout)

	switch opts.Format {
	case config.FormatJSON:
		return runner.NewJSONHandler(opts.Stdout).Export(m.Walk())

	case config.FormatMarkdown:
		style := "notty"
		if tty {
			style = ""
		}
		renderMarkdown, err := tui.NewRenderer(style)
		if err != nil {
			return err
		}
		out, err := renderMarkdown(tui.Markdown(src))
		if err != nil {
			return fmt.Errorf("failed to render markdown: %w", err)
		}
		_, err = fmt.Fprint(opts.Stdout, out)
		return err

	case config.FormatColor:
		profile := termenv.ANSI256
		if tty {
			profile = termenv.NewOutput(opts.Stdout).EnvColorProfile()
		}
		return tui.RenderStyled(opts.Stdout, src, opts.Indent, profile)

	case config.FormatAuto:
		if tty {
			profile := termenv.NewOutput(opts.Stdout).EnvColorProfile()
			return tui.RenderStyled(opts.Stdout, src, opts.Indent, profile)
		}
	}

	return tui.RenderText(opts.Stdout, src, opts.Indent)
}
