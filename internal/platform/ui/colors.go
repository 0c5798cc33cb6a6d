// internal/platform/ui/colors.go
package ui

import "github.com/pterm/pterm"

// Palette
var (
	// SkyCyan - headers, accents
	SkyCyan = pterm.NewRGB(0, 206, 209)

	// OceanBlue - step numbers, section titles
	OceanBlue = pterm.NewRGB(58, 134, 255)

	// Violet - gradient middle
	Violet = pterm.NewRGB(131, 56, 236)

	// Magenta - gradient end
	Magenta = pterm.NewRGB(255, 0, 110)

	// MintGreen - success
	MintGreen = pterm.NewRGB(6, 214, 160)

	// Amber - warnings
	Amber = pterm.NewRGB(255, 182, 39)

	// Crimson - errors
	Crimson = pterm.NewRGB(215, 38, 56)

	// Slate - secondary text, details
	Slate = pterm.NewRGB(128, 128, 128)

	// Snow - main text
	Snow = pterm.NewRGB(232, 232, 232)
)

// Preconfigured styles
var (
	StylePrimary   = OceanBlue.ToRGBStyle()
	StyleSuccess   = MintGreen.ToRGBStyle()
	StyleWarning   = Amber.ToRGBStyle()
	StyleError     = Crimson.ToRGBStyle()
	StyleSecondary = Slate.ToRGBStyle()
	StyleText      = Snow.ToRGBStyle()
	StyleAccent    = SkyCyan.ToRGBStyle()
)

// Gradient is cycled through by step numbers and table titles.
var Gradient = []pterm.RGB{SkyCyan, OceanBlue, Violet, Magenta}
