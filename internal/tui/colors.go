package tui

import "github.com/okravets/dayline/internal/models"

// Palette holds the color set for one theme.
type Palette struct {
	// Base Colors
	CardBackground string
	Border         string

	// Text Colors
	PrimaryText   string
	SecondaryText string
	DisabledText  string
	Placeholder   string
	HelpText      string

	// Accent Colors
	AccentMain   string
	AccentBright string

	// State Colors
	Error   string
	Success string
	Warning string
}

// darkPalette is the default theme.
var darkPalette = Palette{
	CardBackground: "#1B1530", // Dark purple
	Border:         "#3A3F55", // Grey-blue

	PrimaryText:   "#E6EAF2",
	SecondaryText: "#B1B8C7", // Subtle purple-tinted grey
	DisabledText:  "#6D7383",
	Placeholder:   "#B1B8C7",
	HelpText:      "240",

	AccentMain:   "#7C3AED",
	AccentBright: "#A78BFA",

	Error:   "#EF4444",
	Success: "#22C55E",
	Warning: "#F59E0B",
}

var lightPalette = Palette{
	CardBackground: "#F4F1FA", // Pale lavender
	Border:         "#C7CBDD",

	PrimaryText:   "#1F2430",
	SecondaryText: "#4C5265",
	DisabledText:  "#9AA0B2",
	Placeholder:   "#8A90A3",
	HelpText:      "245",

	AccentMain:   "#6D28D9",
	AccentBright: "#7C3AED",

	Error:   "#DC2626",
	Success: "#16A34A",
	Warning: "#D97706",
}

// PaletteFor returns the color palette for a theme.
func PaletteFor(theme models.Theme) Palette {
	if theme == models.ThemeLight {
		return lightPalette
	}
	return darkPalette
}
