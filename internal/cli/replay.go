package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/aretw0/steptree/pkg/runner"
)

// ReplayOptions configures the 'replay' command.
type ReplayOptions struct {
	Input  string  // record file, "" or "-" for stdin
	Factor float64 // speedup, 1 plays in real time
	Skip   float64 // seconds to race through at the start of the record

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// now and sleep are swapped out in tests.
	now   func() time.Time
	sleep func(context.Context, time.Duration) error
}

// ErrBadRecord is returned for lines that are not "<stream> <delay_ms> <line>".
var ErrBadRecord = errors.New("invalid record line")

type stream int

const (
	streamStdout stream = iota
	streamStderr
)

type recordLine struct {
	stream stream
	delay  time.Duration // offset from the start of the recording
	text   string
}

// parseRecordLine splits "<stdout|stderr> <delay_ms> <line>". The line part may be empty.
func parseRecordLine(raw string) (recordLine, error) {
	cols := strings.SplitN(raw, " ", 3)
	if len(cols) < 2 {
		return recordLine{}, fmt.Errorf("%w: missing delay column", ErrBadRecord)
	}

	var rec recordLine
	switch strings.ToLower(cols[0]) {
	case "stdout", "out":
		rec.stream = streamStdout
	case "stderr", "err":
		rec.stream = streamStderr
	default:
		return recordLine{}, fmt.Errorf("%w: unknown stream %q", ErrBadRecord, cols[0])
	}

	ms, err := strconv.ParseUint(cols[1], 10, 64)
	if err != nil {
		return recordLine{}, fmt.Errorf("%w: invalid delay %q", ErrBadRecord, cols[1])
	}
	rec.delay = time.Duration(ms) * time.Millisecond

	if len(cols) == 3 {
		rec.text = cols[2]
	}
	return rec, nil
}

// replayDelay is the offset from the start of playback at which a record
// recorded at delay must be emitted.
func replayDelay(delay time.Duration, skip, factor float64) time.Duration {
	target := float64(delay) - skip*float64(time.Second)
	if target < 0 {
		target = 0
	}
	return time.Duration(target / factor)
}

// Replay plays a recorded build back onto Stdout and Stderr with its
// original timing, so the output can be piped into 'run'.
func Replay(ctx context.Context, opts ReplayOptions) error {
	if opts.Factor <= 0 {
		return fmt.Errorf("factor must be positive, got %v", opts.Factor)
	}
	if opts.Skip < 0 {
		return fmt.Errorf("skip must not be negative, got %v", opts.Skip)
	}
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	if opts.now == nil {
		opts.now = time.Now
	}
	if opts.sleep == nil {
		opts.sleep = sleepContext
	}

	src, err := openInput(opts.Input, opts.Stdin)
	if err != nil {
		return err
	}
	defer src.Close()

	start := opts.now()
	scanner := bufio.NewScanner(src)
	scanner.Buffer(make([]byte, 0, 64*1024), runner.MaxLineSize)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		rec, err := parseRecordLine(scanner.Text())
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNum, err)
		}

		wait := replayDelay(rec.delay, opts.Skip, opts.Factor) - opts.now().Sub(start)
		if wait > 0 {
			if err := opts.sleep(ctx, wait); err != nil {
				return err
			}
		}

		out := opts.Stdout
		if rec.stream == streamStderr {
			out = opts.Stderr
		}
		if _, err := fmt.Fprintln(out, rec.text); err != nil {
			return fmt.Errorf("could not write line %d: %w", lineNum, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("could not read record: %w", err)
	}
	return nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
