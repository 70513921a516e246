package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/steptree/pkg/domain"
	"github.com/charmbracelet/glamour"
)

// Markdown converts the tree into a nested markdown list.
func Markdown(src Source) string {
	var sb strings.Builder
	src(func(depth int, kind domain.ActionKind, progress, text string) {
		sb.WriteString(strings.Repeat("  ", depth))
		fmt.Fprintf(&sb, "- **%s** `%s`", kind, progress)
		if text != "" {
			sb.WriteString(" ")
			sb.WriteString(escapeMarkdown(text))
		}
		sb.WriteString("\n")
	})
	return sb.String()
}

// NewRenderer returns a function that renders markdown using glamour.
// An empty style detects light/dark background automatically; "notty"
// produces plain text.
func NewRenderer(style string) (func(string) (string, error), error) {
	opt := glamour.WithAutoStyle()
	if style != "" {
		opt = glamour.WithStandardStyle(style)
	}
	r, err := glamour.NewTermRenderer(opt)
	if err != nil {
		return nil, fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	return r.Render, nil
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"_", `\_`,
	"`", "\\`",
	"[", `\[`,
	"]", `\]`,
	"<", `\<`,
)

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}
