// internal/platform/ui/symbols.go
package ui

import (
	"github.com/pterm/pterm"

	"depboot/internal/core/ports"
)

// Separators
const (
	SeparatorHeavy = "════════════════════════════════════════════════════════════"
	SeparatorLight = "────────────────────────────────────────────────────────────"
)

// Bar glyphs for static progress lines.
const (
	BarFull  = "■"
	BarEmpty = "□"
)

// severityStyle returns the style used for a status message.
func severityStyle(s ports.Severity) pterm.RGBStyle {
	switch s {
	case ports.SeveritySuccess:
		return StyleSuccess
	case ports.SeverityWarning:
		return StyleWarning
	case ports.SeverityError:
		return StyleError
	default:
		return StyleAccent
	}
}

// severityLevel maps a severity to a plain log level tag.
func severityLevel(s ports.Severity) string {
	switch s {
	case ports.SeveritySuccess:
		return "OK"
	case ports.SeverityWarning:
		return "WARN"
	case ports.SeverityError:
		return "ERROR"
	default:
		return "INFO"
	}
}
