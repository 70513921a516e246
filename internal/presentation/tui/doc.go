// Package tui renders a step tree for the terminal: plain indented text,
// lipgloss-coloured lines with tree guides, or a markdown list rendered by
// glamour.
package tui
