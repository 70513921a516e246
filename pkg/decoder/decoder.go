package decoder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/aretw0/steptree/internal/dto"
	"github.com/aretw0/steptree/pkg/domain"
	"github.com/mitchellh/mapstructure"
)

// Discriminator values of the "action" field.
const (
	ActionMsg    = "msg"
	ActionStart  = "start"
	ActionResult = "result"
)

// DefaultPrefix is the marker the build engine puts in front of every structured line.
const DefaultPrefix = "@nix"

var (
	// ErrNoPayload is returned for lines without a whitespace-separated document.
	ErrNoPayload = errors.New("missing payload after prefix")
	// ErrPrefixMismatch is returned when a required prefix is not present.
	ErrPrefixMismatch = errors.New("unexpected line prefix")
	// ErrUnknownAction is returned for an unknown or missing discriminator.
	ErrUnknownAction = errors.New("unknown action")
	// ErrMissingField is returned when a record lacks a field its action requires.
	ErrMissingField = errors.New("missing field")
)

// Decoder turns raw log lines into records. The zero value accepts any prefix token.
type Decoder struct {
	prefix string
}

// Option configures a Decoder.
type Option func(*Decoder)

// WithPrefix requires the leading token of every line to equal prefix.
// An empty prefix accepts any token.
func WithPrefix(prefix string) Option {
	return func(d *Decoder) {
		d.prefix = prefix
	}
}

// New creates a Decoder.
func New(opts ...Option) *Decoder {
	d := &Decoder{}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Decode interprets one line with a default Decoder.
func Decode(line string) domain.Record {
	return (&Decoder{}).Decode(line)
}

// Decode interprets one line. It never panics and never returns nil:
// anything it cannot interpret comes back as a domain.DecodeError.
func (d *Decoder) Decode(line string) domain.Record {
	payload, err := d.split(line)
	if err != nil {
		return domain.DecodeError{Line: line, Err: err}
	}

	raw, err := parseDocument(payload)
	if err != nil {
		return domain.DecodeError{Line: line, Err: err}
	}

	rec, err := convert(raw)
	if err != nil {
		return domain.DecodeError{Line: line, Err: err}
	}
	return rec
}

// IsStructured reports whether line starts with the configured prefix.
// With no prefix configured every line qualifies.
func (d *Decoder) IsStructured(line string) bool {
	if d.prefix == "" {
		return true
	}
	token, _, _ := cut(line)
	return token == d.prefix
}

func (d *Decoder) split(line string) (string, error) {
	token, payload, ok := cut(line)
	if !ok {
		return "", ErrNoPayload
	}
	if d.prefix != "" && token != d.prefix {
		return "", fmt.Errorf("%w: %q", ErrPrefixMismatch, token)
	}
	return payload, nil
}

// cut splits line on the first run of whitespace, ignoring leading and trailing whitespace.
func cut(line string) (token, rest string, ok bool) {
	line = strings.TrimSpace(line)
	i := strings.IndexFunc(line, unicode.IsSpace)
	if i < 0 {
		return line, "", false
	}
	rest = strings.TrimLeftFunc(line[i:], unicode.IsSpace)
	return line[:i], rest, rest != ""
}

func parseDocument(payload string) (dto.RawRecord, error) {
	var doc map[string]any
	dec := json.NewDecoder(bytes.NewReader([]byte(payload)))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return dto.RawRecord{}, fmt.Errorf("invalid JSON: %w", err)
	}
	if dec.More() {
		return dto.RawRecord{}, errors.New("invalid JSON: trailing data after document")
	}

	var raw dto.RawRecord
	if err := mapstructure.Decode(doc, &raw); err != nil {
		return dto.RawRecord{}, fmt.Errorf("invalid record: %w", err)
	}
	return raw, nil
}

func convert(raw dto.RawRecord) (domain.Record, error) {
	if raw.Action == nil {
		return nil, fmt.Errorf("%w: field `action` is absent", ErrUnknownAction)
	}

	switch *raw.Action {
	case ActionMsg:
		if raw.Msg == nil {
			return nil, missing("msg")
		}
		return domain.Message{Level: deref(raw.Level), Text: *raw.Msg}, nil

	case ActionStart:
		if raw.ID == nil {
			return nil, missing("id")
		}
		if raw.Parent == nil {
			return nil, missing("parent")
		}
		if raw.Type == nil {
			return nil, missing("type")
		}
		kind, err := domain.ParseActionKind(*raw.Type)
		if err != nil {
			return nil, err
		}
		return domain.StepStart{
			ID:     domain.StepID(*raw.ID),
			Parent: domain.StepID(*raw.Parent),
			Kind:   kind,
			Text:   deref(raw.Text),
			Level:  deref(raw.Level),
		}, nil

	case ActionResult:
		if raw.ID == nil {
			return nil, missing("id")
		}
		if raw.Type == nil {
			return nil, missing("type")
		}
		res := domain.StepResult{
			ID:   domain.StepID(*raw.ID),
			Code: *raw.Type,
		}
		if nums, ok := numericFields(raw.Fields); ok {
			res.Fields = nums
		} else {
			res.Raw = raw.Fields
		}
		// Progress payloads are positional; a wrong shape fails this record only.
		if res.Code == uint64(domain.ActionBuild) {
			if res.Raw != nil {
				return nil, fmt.Errorf("%w: non-numeric fields", domain.ErrFieldCount)
			}
			if _, err := domain.ProgressFromFields(res.Fields); err != nil {
				return nil, err
			}
		}
		return res, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownAction, *raw.Action)
}

// numericFields decodes fields as unsigned integers. It reports false when
// any element is not a non-negative integer.
func numericFields(fields []any) ([]uint64, bool) {
	if fields == nil {
		return []uint64{}, true
	}
	for _, f := range fields {
		if _, ok := f.(json.Number); !ok {
			return nil, false
		}
	}
	out := make([]uint64, 0, len(fields))
	if err := mapstructure.Decode(fields, &out); err != nil {
		return nil, false
	}
	return out, true
}

func missing(field string) error {
	return fmt.Errorf("%w `%s`", ErrMissingField, field)
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
