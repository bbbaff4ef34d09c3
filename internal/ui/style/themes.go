package style

import "github.com/muesli/termenv"

// Palette holds the colors of one theme. Values are ANSI color numbers
// (0-255) or "bold".
type Palette struct {
	Success string
	Warning string
	Error   string
	Info    string
	Muted   string
	Header  string
}

var (
	// DarkPalette uses bright colors for dark backgrounds.
	DarkPalette = Palette{
		Success: "10",
		Warning: "11",
		Error:   "9",
		Info:    "14",
		Muted:   "245",
		Header:  "bold",
	}

	// LightPalette uses dark saturated colors for light backgrounds.
	LightPalette = Palette{
		Success: "28",
		Warning: "130",
		Error:   "124",
		Info:    "27",
		Muted:   "242",
		Header:  "bold",
	}
)

// DetectPalette picks the palette matching the terminal background.
func DetectPalette() Palette {
	if termenv.HasDarkBackground() {
		return DarkPalette
	}
	return LightPalette
}

// CurrentPalette returns the palette in use, or the zero Palette when
// styling is disabled.
func CurrentPalette() Palette {
	if !enabled {
		return Palette{}
	}
	return palette
}
