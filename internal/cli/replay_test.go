package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecordLine(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    recordLine
		wantErr bool
	}{
		{name: "Stdout", raw: "stdout 120 hello world", want: recordLine{streamStdout, 120 * time.Millisecond, "hello world"}},
		{name: "Stderr", raw: `stderr 0 @nix {"action":"msg","msg":"x"}`, want: recordLine{streamStderr, 0, `@nix {"action":"msg","msg":"x"}`}},
		{name: "Case Insensitive", raw: "StdErr 5 x", want: recordLine{streamStderr, 5 * time.Millisecond, "x"}},
		{name: "Empty Line", raw: "stdout 7", want: recordLine{streamStdout, 7 * time.Millisecond, ""}},
		{name: "Unknown Stream", raw: "stdin 1 x", wantErr: true},
		{name: "Bad Delay", raw: "stdout soon x", wantErr: true},
		{name: "Negative Delay", raw: "stdout -1 x", wantErr: true},
		{name: "Missing Delay", raw: "stdout", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseRecordLine(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrBadRecord)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReplayDelay(t *testing.T) {
	assert.Equal(t, 2*time.Second, replayDelay(2*time.Second, 0, 1))
	assert.Equal(t, time.Second, replayDelay(2*time.Second, 0, 2))
	assert.Equal(t, 500*time.Millisecond, replayDelay(2*time.Second, 1.5, 1))
	assert.Equal(t, time.Duration(0), replayDelay(time.Second, 3, 1))
}

// fakeClock advances only when slept on.
type fakeClock struct {
	now    time.Time
	sleeps []time.Duration
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Sleep(_ context.Context, d time.Duration) error {
	c.sleeps = append(c.sleeps, d)
	c.now = c.now.Add(d)
	return nil
}

func TestReplay(t *testing.T) {
	record := strings.Join([]string{
		"stdout 0 first",
		"stderr 1000 second",
		"stderr 1000 same time",
		"stdout 3000 last",
	}, "\n")

	clock := &fakeClock{now: time.Unix(0, 0)}
	var out, errw bytes.Buffer
	err := Replay(context.Background(), ReplayOptions{
		Factor: 2,
		Skip:   0.5,
		Stdin:  strings.NewReader(record),
		Stdout: &out,
		Stderr: &errw,
		now:    clock.Now,
		sleep:  clock.Sleep,
	})
	require.NoError(t, err)

	assert.Equal(t, "first\nlast\n", out.String())
	assert.Equal(t, "second\nsame time\n", errw.String())
	assert.Equal(t, []time.Duration{250 * time.Millisecond, 1000 * time.Millisecond}, clock.sleeps)
}

func TestReplay_BadRecord(t *testing.T) {
	var out bytes.Buffer
	err := Replay(context.Background(), ReplayOptions{
		Factor: 1,
		Stdin:  strings.NewReader("stdout 0 ok\nnonsense\n"),
		Stdout: &out,
		Stderr: &out,
		sleep:  func(context.Context, time.Duration) error { return nil },
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadRecord)
	assert.Contains(t, err.Error(), "line 2")
	assert.Equal(t, "ok\n", out.String())
}

func TestReplay_InvalidOptions(t *testing.T) {
	assert.Error(t, Replay(context.Background(), ReplayOptions{Factor: 0}))
	assert.Error(t, Replay(context.Background(), ReplayOptions{Factor: 1, Skip: -1}))
}

func TestReplay_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := Replay(ctx, ReplayOptions{
		Factor: 1,
		Stdin:  strings.NewReader("stdout 60000 never\n"),
		Stdout: &out,
		Stderr: &out,
	})
	assert.True(t, IsInterrupted(err))
	assert.Empty(t, out.String())
}
