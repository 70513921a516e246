/*
Package tree rebuilds the hierarchy of build steps from decoded log records.

A Builder starts with a synthetic root (id 0, kind BUILD) and grows as
records are applied: start records add a child under an existing parent,
result records replace the progress of build-kind steps. Parents always
arrive before their children, so a record that names an unknown step is a
structural violation of the stream.

# Usage

	b := tree.New(tree.WithMessageSink(sink))
	for _, line := range lines {
		if err := b.Apply(decoder.Decode(line)); err != nil {
			return err
		}
	}
	b.Finalize()

	for depth, step := range b.Walk(domain.RootID) {
		fmt.Printf("%s%s %s %s\n", strings.Repeat("  ", depth), step.Kind, step.Progress, step.Text)
	}
*/
package tree
