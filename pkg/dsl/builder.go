package dsl

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/aretw0/steptree/pkg/decoder"
	"github.com/aretw0/steptree/pkg/domain"
)

// entry renders to one log line.
type entry interface {
	line(prefix string) string
}

// Builder accumulates log lines in declaration order.
type Builder struct {
	prefix  string
	entries []entry
}

// New creates a builder emitting lines with the default "@nix" prefix.
func New() *Builder {
	return &Builder{prefix: decoder.DefaultPrefix}
}

// WithPrefix changes the leading token of every structured line.
func (b *Builder) WithPrefix(prefix string) *Builder {
	b.prefix = prefix
	return b
}

// Start declares a step. It starts under the root with kind UNKNOWN until configured.
func (b *Builder) Start(id domain.StepID) *StepBuilder {
	sb := &StepBuilder{
		id:      id,
		parent:  domain.RootID,
		builder: b,
	}
	b.entries = append(b.entries, sb)
	return sb
}

// Progress emits a build progress result for step id.
func (b *Builder) Progress(id domain.StepID, done, expected, running, failed uint64) *Builder {
	return b.Result(id, uint64(domain.ResultProgress), done, expected, running, failed)
}

// Result emits a result record with arbitrary fields.
func (b *Builder) Result(id domain.StepID, code uint64, fields ...any) *Builder {
	if fields == nil {
		fields = []any{}
	}
	b.entries = append(b.entries, record{
		"action": decoder.ActionResult,
		"id":     id,
		"type":   code,
		"fields": fields,
	})
	return b
}

// Message emits a free-text message.
func (b *Builder) Message(level uint8, text string) *Builder {
	b.entries = append(b.entries, record{
		"action": decoder.ActionMsg,
		"level":  level,
		"msg":    text,
	})
	return b
}

// Line emits raw verbatim, e.g. a malformed or unprefixed line.
func (b *Builder) Line(raw string) *Builder {
	b.entries = append(b.entries, rawLine(raw))
	return b
}

// Build renders the log, one newline-terminated line per entry.
func (b *Builder) Build() string {
	var sb strings.Builder
	for _, e := range b.entries {
		sb.WriteString(e.line(b.prefix))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Reader returns the rendered log as a stream.
func (b *Builder) Reader() io.Reader {
	return strings.NewReader(b.Build())
}

type record map[string]any

func (r record) line(prefix string) string {
	// Values are plain numbers, strings and slices of them; Marshal cannot fail.
	data, _ := json.Marshal(map[string]any(r))
	return prefix + " " + string(data)
}

type rawLine string

func (r rawLine) line(string) string {
	return string(r)
}
