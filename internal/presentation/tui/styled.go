package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/steptree/pkg/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Palette, shared with the rest of the terminal output.
var (
	purple = lipgloss.Color("99")
	green  = lipgloss.Color("76")
	blue   = lipgloss.Color("39")
	yellow = lipgloss.Color("214")
	dim    = lipgloss.Color("243")
	faint  = lipgloss.Color("238")
)

// Styler renders steps with lipgloss styles for one output.
type Styler struct {
	guide    lipgloss.Style
	build    lipgloss.Style
	transfer lipgloss.Style
	other    lipgloss.Style
	pending  lipgloss.Style
	running  lipgloss.Style
	done     lipgloss.Style
	text     lipgloss.Style
}

// NewStyler creates a Styler for w. Pass termenv.Ascii to disable colours.
func NewStyler(w io.Writer, profile termenv.Profile) *Styler {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(profile)
	return &Styler{
		guide:    r.NewStyle().Foreground(faint),
		build:    r.NewStyle().Foreground(purple).Bold(true),
		transfer: r.NewStyle().Foreground(blue),
		other:    r.NewStyle().Foreground(dim),
		pending:  r.NewStyle().Foreground(dim),
		running:  r.NewStyle().Foreground(yellow),
		done:     r.NewStyle().Foreground(green),
		text:     r.NewStyle(),
	}
}

func (s *Styler) kind(k domain.ActionKind) string {
	switch k {
	case domain.ActionBuild, domain.ActionBuilds, domain.ActionRealise:
		return s.build.Render(k.String())
	case domain.ActionFileTransfer, domain.ActionCopyPath, domain.ActionCopyPaths, domain.ActionSubstitute:
		return s.transfer.Render(k.String())
	}
	return s.other.Render(k.String())
}

// progress colours the summary by how far along it is. The summary is the
// "done/expected (running)" form, parsed back for its numbers.
func (s *Styler) progress(summary string) string {
	var done, expected, running uint64
	if _, err := fmt.Sscanf(summary, "%d/%d (%d)", &done, &expected, &running); err != nil {
		return s.pending.Render(summary)
	}
	switch {
	case expected > 0 && done >= expected:
		return s.done.Render(summary)
	case running > 0 || done > 0:
		return s.running.Render(summary)
	}
	return s.pending.Render(summary)
}

// Line renders one step with a guide in place of plain indentation.
func (s *Styler) Line(depth, indent int, kind domain.ActionKind, progress, text string) string {
	var sb strings.Builder
	if depth > 0 {
		sb.WriteString(strings.Repeat(" ", (depth-1)*indent))
		sb.WriteString(s.guide.Render("└" + strings.Repeat("─", max(indent-1, 0))))
	}
	sb.WriteString(s.kind(kind))
	sb.WriteString(" ")
	sb.WriteString(s.progress(progress))
	if text != "" {
		sb.WriteString(" ")
		sb.WriteString(s.text.Render(text))
	}
	return sb.String()
}

// RenderStyled writes the tree with colours for the given profile.
func RenderStyled(w io.Writer, src Source, indent int, profile termenv.Profile) error {
	s := NewStyler(w, profile)
	var err error
	src(func(depth int, kind domain.ActionKind, progress, text string) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintln(w, s.Line(depth, indent, kind, progress, text))
	})
	return err
}
