/*
Package runner reads a log source line by line and feeds it to a tree builder.

It is the driver around the core: it owns the read loop, the optional
passthrough of unstructured lines, writer-backed sinks for messages and bad
lines, and the JSON-Lines export of a finished tree.

# Usage

	sinks := runner.NewWriterSinks(os.Stdout, os.Stderr)
	b := tree.New(tree.WithMessageSink(sinks), tree.WithErrorSink(sinks))

	stats, err := runner.New(b).Run(ctx, os.Stdin)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("%d lines, %d steps", stats.Lines, b.Len())
*/
package runner
