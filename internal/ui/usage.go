// Package ui holds small rendering helpers shared by the console and actions.
package ui

import (
	"strings"

	"github.com/footprint-tools/cmdtree/internal/domain"
)

// FormatUsage styles a usage line with the command in Info color and the
// argument placeholders muted.
func FormatUsage(s domain.Styler, usage string) string {
	cmdEnd := len(usage)
	for i, c := range usage {
		if c == '[' || c == '<' {
			cmdEnd = i
			break
		}
	}

	cmd := strings.TrimSpace(usage[:cmdEnd])
	rest := ""
	if cmdEnd < len(usage) {
		rest = usage[cmdEnd:]
	}

	if rest == "" {
		return s.Info(cmd)
	}
	return s.Info(cmd) + " " + s.Muted(rest)
}

// FormatMessage highlights "Usage: ..." messages and leaves anything else
// untouched.
func FormatMessage(s domain.Styler, text string) string {
	const prefix = "Usage: "
	if line, ok := strings.CutPrefix(text, prefix); ok {
		return s.Header("Usage:") + " " + FormatUsage(s, line)
	}
	return text
}
