package runner_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aretw0/steptree/pkg/decoder"
	"github.com/aretw0/steptree/pkg/domain"
	"github.com/aretw0/steptree/pkg/runner"
	"github.com/aretw0/steptree/pkg/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleLog = `@nix {"action":"start","id":1,"parent":0,"type":105,"text":"build foo"}
@nix {"action":"start","id":2,"parent":1,"type":101,"text":"transfer bar"}
@nix not-json
@nix {"action":"result","id":1,"type":105,"fields":[1,5,1,0]}
@nix {"action":"msg","msg":"hello"}
`

func TestRunner_Run(t *testing.T) {
	var out, errw bytes.Buffer
	sinks := runner.NewWriterSinks(&out, &errw)
	b := tree.New(tree.WithMessageSink(sinks), tree.WithErrorSink(sinks))

	stats, err := runner.New(b).Run(context.Background(), strings.NewReader(sampleLog))
	require.NoError(t, err)

	assert.Equal(t, runner.Stats{Lines: 5, Messages: 1, Starts: 2, Results: 1, Errors: 1}, stats)
	assert.Equal(t, "hello\n", out.String())
	assert.Equal(t, "Bad line: @nix not-json\n", errw.String())
	assert.Equal(t, tree.StateFinal, b.State())
	assert.Equal(t, 3, b.Len())
}

func TestRunner_StopsOnStructuralViolation(t *testing.T) {
	src := strings.Join([]string{
		`@nix {"action":"start","id":1,"parent":0,"type":105,"text":"a"}`,
		`@nix {"action":"start","id":3,"parent":2,"type":105,"text":"orphan"}`,
		`@nix {"action":"start","id":4,"parent":1,"type":105,"text":"never"}`,
	}, "\n")

	b := tree.New()
	stats, err := runner.New(b).Run(context.Background(), strings.NewReader(src))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnknownParent))
	assert.Contains(t, err.Error(), "line 2")
	assert.Equal(t, 2, stats.Lines)

	// The partial tree is still there for rendering.
	assert.Equal(t, 2, b.Len())
	assert.Equal(t, tree.StateFinal, b.State())
}

func TestRunner_Passthrough(t *testing.T) {
	src := "building '/nix/store/x.drv'...\n" +
		`@nix {"action":"msg","msg":"structured"}` + "\n"

	var out, errw bytes.Buffer
	sinks := runner.NewWriterSinks(&out, &errw)
	b := tree.New(tree.WithMessageSink(sinks), tree.WithErrorSink(sinks))
	r := runner.New(b,
		runner.WithDecoder(decoder.New(decoder.WithPrefix(decoder.DefaultPrefix))),
		runner.WithPassthrough(sinks),
	)

	stats, err := r.Run(context.Background(), strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Passthrough)
	assert.Equal(t, "building '/nix/store/x.drv'...\nstructured\n", out.String())
	assert.Empty(t, errw.String())
}

func TestRunner_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	b := tree.New()
	_, err := runner.New(b).Run(ctx, strings.NewReader(sampleLog))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWriterSinks_MaxLevel(t *testing.T) {
	var out bytes.Buffer
	sinks := runner.NewWriterSinks(&out, &out)
	sinks.MaxLevel = 3

	sinks.Message(1, "error")
	sinks.Message(5, "debug")
	sinks.Message(3, "info")

	assert.Equal(t, "error\ninfo\n", out.String())
}
