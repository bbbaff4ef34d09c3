// Package style provides semantic terminal styling using lipgloss.
//
// This package is the only place where lipgloss is imported. All styling
// is semantic (Success, Warning, Error, etc.) rather than visual.
//
// When disabled, all helpers return the input string unchanged with no ANSI codes.
package style

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	enabled bool
	palette Palette

	successStyle lipgloss.Style
	warningStyle lipgloss.Style
	errorStyle   lipgloss.Style
	infoStyle    lipgloss.Style
	headerStyle  lipgloss.Style
	mutedStyle   lipgloss.Style
)

// Init initializes the style package with the given enabled state.
// NO_COLOR and CMDTREE_NO_COLOR, when set to any non-empty value, disable
// styling regardless of enable.
//
// This function should be called once from main before any output.
func Init(enable bool) {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("CMDTREE_NO_COLOR") != "" {
		enabled = false
		return
	}

	enabled = enable
	if enabled {
		palette = DetectPalette()
		initStyles(palette)
	}
}

// Resolve maps the color config value (auto, always, never) and whether
// output is a terminal to the enabled state passed to Init.
func Resolve(mode string, isTTY bool) bool {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "always":
		return true
	case "never":
		return false
	default:
		return isTTY
	}
}

func initStyles(p Palette) {
	lipgloss.SetColorProfile(termenv.ANSI256)

	successStyle = makeStyle(p.Success)
	warningStyle = makeStyle(p.Warning)
	errorStyle = makeStyle(p.Error)
	infoStyle = makeStyle(p.Info)
	mutedStyle = makeStyle(p.Muted)
	headerStyle = makeStyle(p.Header)
}

// makeStyle creates a lipgloss style from "bold" or an ANSI color number.
func makeStyle(value string) lipgloss.Style {
	if value == "bold" {
		return lipgloss.NewStyle().Bold(true)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(value))
}

func render(s lipgloss.Style, text string) string {
	if !enabled {
		return text
	}
	return s.Render(text)
}

// Enabled returns whether styling is currently enabled.
func Enabled() bool {
	return enabled
}

func Success(text string) string { return render(successStyle, text) }

func Warning(text string) string { return render(warningStyle, text) }

func Error(text string) string { return render(errorStyle, text) }

func Info(text string) string { return render(infoStyle, text) }

// Header styles text for section headers or titles.
func Header(text string) string { return render(headerStyle, text) }

// Muted styles text for less important or secondary information.
func Muted(text string) string { return render(mutedStyle, text) }
