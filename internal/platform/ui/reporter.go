// internal/platform/ui/reporter.go
package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"depboot/internal/core/ports"
)

// Mode selects the Reporter implementation.
type Mode string

const (
	ModeAuto   Mode = "auto"   // pretty on a terminal, plain otherwise
	ModePretty Mode = "pretty" // pterm
	ModePlain  Mode = "plain"  // text lines
	ModeJSON   Mode = "json"   // JSON lines
	ModeQuiet  Mode = "quiet"  // no output
)

// Modes lists the accepted mode names.
func Modes() []string {
	return []string{string(ModeAuto), string(ModePretty), string(ModePlain), string(ModeJSON), string(ModeQuiet)}
}

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	switch m {
	case ModeAuto, ModePretty, ModePlain, ModeJSON, ModeQuiet:
		return m, nil
	case "":
		return ModeAuto, nil
	default:
		return "", fmt.Errorf("invalid output mode %q (valid: %s)", s, strings.Join(Modes(), ", "))
	}
}

// NewReporter builds the reporter for mode writing to out. In auto mode the
// styled reporter is used only when out is a terminal.
func NewReporter(mode Mode, out *os.File) ports.Reporter {
	switch mode {
	case ModePretty:
		return NewPTermReporter(out)
	case ModePlain:
		return NewPlainReporter(LogFormatText, out)
	case ModeJSON:
		return NewPlainReporter(LogFormatJSON, out)
	case ModeQuiet:
		return NewNoopReporter()
	default:
		if IsTerminal(out) {
			return NewPTermReporter(out)
		}
		return NewPlainReporter(LogFormatText, out)
	}
}

// IsTerminal reports whether f is an interactive terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
