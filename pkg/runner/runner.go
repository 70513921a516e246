package runner

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/steptree/internal/logging"
	"github.com/aretw0/steptree/pkg/decoder"
	"github.com/aretw0/steptree/pkg/domain"
	"github.com/aretw0/steptree/pkg/ports"
	"github.com/aretw0/steptree/pkg/tree"
)

// MaxLineSize is the longest line the runner accepts from a log source.
const MaxLineSize = 1 << 20

// Stats counts what a run consumed.
type Stats struct {
	Lines       int
	Messages    int
	Starts      int
	Results     int
	Errors      int
	Passthrough int
}

// Runner drives one log source through the decoder into a tree builder.
type Runner struct {
	Decoder *decoder.Decoder
	Builder *tree.Builder
	Logger  *slog.Logger

	// Passthrough receives lines without the structured prefix when the
	// decoder requires one. If nil, such lines are decode errors.
	Passthrough ports.MessageSink
}

// New creates a Runner over b. A default decoder and a no-op logger are used
// unless overridden by options.
func New(b *tree.Builder, opts ...Option) *Runner {
	r := &Runner{
		Decoder: decoder.New(),
		Builder: b,
		Logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run reads src line by line until EOF, applying each decoded record.
// It stops at the first structural violation and returns it with the line
// number attached; the tree keeps everything applied before that line.
// The builder is finalized when Run returns without a read error.
func (r *Runner) Run(ctx context.Context, src io.Reader) (Stats, error) {
	var stats Stats

	scanner := bufio.NewScanner(src)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineSize)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		stats.Lines++
		line := scanner.Text()

		if r.Passthrough != nil && !r.Decoder.IsStructured(line) {
			stats.Passthrough++
			r.Passthrough.Message(0, line)
			continue
		}

		rec := r.Decoder.Decode(line)
		count(&stats, rec)

		if err := r.Builder.Apply(rec); err != nil {
			r.Logger.Error("ingestion aborted", "line", stats.Lines, "err", err)
			r.Builder.Finalize()
			return stats, fmt.Errorf("line %d: %w", stats.Lines, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return stats, fmt.Errorf("failed to read log: %w", err)
	}

	r.Builder.Finalize()
	r.Logger.Debug("ingestion complete",
		"lines", stats.Lines,
		"steps", r.Builder.Len(),
		"errors", stats.Errors,
	)
	return stats, nil
}

func count(stats *Stats, rec domain.Record) {
	switch rec.(type) {
	case domain.Message:
		stats.Messages++
	case domain.StepStart:
		stats.Starts++
	case domain.StepResult:
		stats.Results++
	case domain.DecodeError:
		stats.Errors++
	}
}
