/*
Package dsl provides a Go DSL for writing internal-json build logs.

It is the inverse of the decoder: instead of hand-writing "@nix {...}" lines
in fixtures, tests and demos declare steps, results and messages with a fluent
builder and render them in declaration order.

Example usage:

	b := dsl.New()

	b.Start(1).Kind(domain.ActionBuild).Text("building hello")
	b.Start(2).Under(1).Kind(domain.ActionFileTransfer).Text("downloading")
	b.Message(3, "unpacking sources")
	b.Progress(1, 1, 4, 1, 0)

	m := steptree.New()
	m.Ingest(ctx, b.Reader())
*/
package dsl
