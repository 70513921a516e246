package steptree_test

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/aretw0/steptree"
	"github.com/aretw0/steptree/pkg/domain"
	"github.com/aretw0/steptree/pkg/runner"
)

// ExampleNew rebuilds a small tree from an in-memory log and prints it.
func ExampleNew() {
	log := strings.Join([]string{
		`@nix {"action":"start","id":1,"parent":0,"type":105,"text":"build foo"}`,
		`@nix {"action":"start","id":2,"parent":1,"type":101,"text":"transfer bar"}`,
		`@nix {"action":"result","id":1,"type":105,"fields":[1,5,1,0]}`,
		`@nix {"action":"msg","msg":"hello"}`,
	}, "\n")

	sinks := runner.NewWriterSinks(os.Stdout, os.Stdout)
	m := steptree.New(
		steptree.WithMessageSink(sinks),
		steptree.WithErrorSink(sinks),
	)

	if _, err := m.Ingest(context.Background(), strings.NewReader(log)); err != nil {
		fmt.Println("error:", err)
		return
	}

	m.Visit(func(depth int, kind domain.ActionKind, progress, text string) {
		line := fmt.Sprintf("%d %s %s %s", depth, kind, progress, text)
		fmt.Println(strings.TrimSpace(line))
	})

	// Output:
	// hello
	// 0 BUILD 0/0 (0)
	// 1 BUILD 1/5 (1) build foo
	// 2 FILE_TRANSFER 0/0 (0) transfer bar
}
