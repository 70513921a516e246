package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/steptree/pkg/domain"
	"github.com/aretw0/steptree/pkg/ports"
)

// Source walks a tree, calling the visitor once per step in pre-order.
// (*tree.Builder).Visit bound to a start id satisfies it.
type Source func(ports.Visitor)

// Line formats one step the way the plain renderer prints it:
// indentation, kind, progress summary and text.
func Line(depth, indent int, kind domain.ActionKind, progress, text string) string {
	line := fmt.Sprintf("%s%s %s %s", strings.Repeat(" ", depth*indent), kind, progress, text)
	return strings.TrimRight(line, " ")
}

// RenderText writes the tree as plain indented lines.
func RenderText(w io.Writer, src Source, indent int) error {
	var err error
	src(func(depth int, kind domain.ActionKind, progress, text string) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintln(w, Line(depth, indent, kind, progress, text))
	})
	return err
}
