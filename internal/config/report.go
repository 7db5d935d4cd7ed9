package config

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// RenderText formats the result for humans. Implements ui.TextRenderer.
func (r *ValidationResult) RenderText() (string, error) {
	var sb strings.Builder

	if r.Valid {
		fmt.Fprintf(&sb, "%s Config is valid: %s\n", color.GreenString("✓"), r.Path)
	} else {
		fmt.Fprintf(&sb, "%s Config is invalid: %s\n", color.RedString("✗"), r.Path)
	}

	if len(r.Errors) > 0 {
		sb.WriteString("\n  Errors:\n")
		for _, issue := range r.Errors {
			fmt.Fprintf(&sb, "    - %s\n", issue)
		}
	}
	if len(r.Warnings) > 0 {
		sb.WriteString("\n  Warnings:\n")
		for _, issue := range r.Warnings {
			fmt.Fprintf(&sb, "    %s %s\n", color.YellowString("⚠"), issue)
		}
	}
	return sb.String(), nil
}

// String renders the issue with its line number when known.
func (i ValidationIssue) String() string {
	if i.Line > 0 {
		return fmt.Sprintf("line %d: %s", i.Line, i.Message)
	}
	return i.Message
}

// RenderText formats the resolution for humans. Implements ui.TextRenderer.
func (r Resolution) RenderText() (string, error) {
	var sb strings.Builder
	path := r.Path
	if path == "" {
		path = "(none resolved)"
	}
	fmt.Fprintf(&sb, "Path: %s\n", path)
	sb.WriteString("SearchOrder:\n")
	for _, p := range r.SearchOrder {
		fmt.Fprintf(&sb, "  - %s\n", p)
	}
	return sb.String(), nil
}

// RenderText renders the effective config as YAML-like text.
func (c *Config) RenderText() (string, error) {
	return fmt.Sprintf("version: %d\n", c.Version), nil
}
