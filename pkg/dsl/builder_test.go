package dsl_test

import (
	"context"
	"strings"
	"testing"

	"github.com/aretw0/steptree/pkg/decoder"
	"github.com/aretw0/steptree/pkg/domain"
	"github.com/aretw0/steptree/pkg/dsl"
	"github.com/aretw0/steptree/pkg/runner"
	"github.com/aretw0/steptree/pkg/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_Lines(t *testing.T) {
	b := dsl.New()
	b.Start(1).Kind(domain.ActionBuild).Text("build foo").Level(3)
	b.Progress(1, 1, 5, 1, 0).
		Message(2, "hello").
		Line("@nix not-json")

	want := `@nix {"action":"start","id":1,"level":3,"parent":0,"text":"build foo","type":105}` + "\n" +
		`@nix {"action":"result","fields":[1,5,1,0],"id":1,"type":105}` + "\n" +
		`@nix {"action":"msg","level":2,"msg":"hello"}` + "\n" +
		"@nix not-json\n"
	assert.Equal(t, want, b.Build())
}

func TestBuilder_DecodesBack(t *testing.T) {
	b := dsl.New().WithPrefix("nix-log")
	b.Start(4).Under(0).Kind(domain.ActionCopyPath).Text("copy").Done().
		Result(4, uint64(domain.ResultSetPhase), "buildPhase")

	d := decoder.New(decoder.WithPrefix("nix-log"))
	var records []domain.Record
	for _, line := range strings.Split(strings.TrimSuffix(b.Build(), "\n"), "\n") {
		records = append(records, d.Decode(line))
	}

	assert.Equal(t, []domain.Record{
		domain.StepStart{ID: 4, Parent: 0, Kind: domain.ActionCopyPath, Text: "copy"},
		domain.StepResult{ID: 4, Code: uint64(domain.ResultSetPhase), Raw: []any{"buildPhase"}},
	}, records)
}

func TestBuilder_BuildsTree(t *testing.T) {
	b := dsl.New()
	b.Start(1).Kind(domain.ActionBuilds).Text("builds")
	b.Start(2).Under(1).Kind(domain.ActionBuild).Text("build a")
	b.Start(3).Under(1).Kind(domain.ActionBuild).Text("build b")
	b.Start(4).Under(2).Kind(domain.ActionFileTransfer).Text("fetch")
	b.Progress(2, 2, 2, 0, 0)
	b.Message(1, "done")

	tr := tree.New()
	_, err := runner.New(tr).Run(context.Background(), b.Reader())
	require.NoError(t, err)

	var ids []domain.StepID
	for _, s := range tr.Walk(domain.RootID) {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []domain.StepID{0, 1, 2, 4, 3}, ids)

	built, ok := tr.Step(2)
	require.True(t, ok)
	assert.Equal(t, domain.Progress{Done: 2, Expected: 2}, built.Progress)
}
