/*
Package steptree rebuilds the tree of build steps from a Nix internal-json log.

A build engine running with --log-format internal-json writes one JSON
document per line, each behind a short prefix:

	@nix {"action":"start","id":1,"parent":0,"type":105,"text":"build foo"}
	@nix {"action":"result","id":1,"type":105,"fields":[1,5,1,0]}
	@nix {"action":"msg","level":3,"msg":"hello"}

steptree decodes those lines, links every step to its parent, keeps the
latest progress of build steps and hands the finished tree to a renderer.
Free-text messages and undecodable lines are passed to sinks supplied by
the host.

# Usage

	package main

	import (
		"context"
		"fmt"
		"log"
		"os"
		"strings"

		"github.com/aretw0/steptree"
		"github.com/aretw0/steptree/pkg/runner"
	)

	func main() {
		sinks := runner.NewWriterSinks(os.Stdout, os.Stderr)
		m := steptree.New(
			steptree.WithMessageSink(sinks),
			steptree.WithErrorSink(sinks),
		)

		if _, err := m.Ingest(context.Background(), os.Stdin); err != nil {
			log.Printf("log ended early: %v", err)
		}

		for depth, step := range m.Walk() {
			fmt.Printf("%s%s %s %s\n", strings.Repeat("  ", depth), step.Kind, step.Progress, step.Text)
		}
	}
*/
package steptree
