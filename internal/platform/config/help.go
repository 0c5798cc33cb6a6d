// internal/platform/config/help.go
package config

import (
	"fmt"
	"io"
	"runtime"
)

const helpText = `
depboot - Python dependency bootstrapper

USAGE:
  depboot [options]

Checks the Python interpreter, makes sure pip is available, installs or
upgrades every required library and verifies that each one imports.

OPTIONS:
  --python string        Interpreter to manage (default: python3, python on Windows)
  --deps string          YAML dependency file (default: built-in table)
  --report string        Report path, "-" for stdout (default: "install_config.json")
  --min-runtime string   Minimum interpreter version (default: "3.7.0")
  --timeout int          Per-command timeout in seconds, 0=none (default: 0)
  --entry string         Script suggested after a successful run (default: "main.py")
  --output string        auto|pretty|plain|json|quiet (default: auto)
  -q, --quiet            Only log errors
  --verbose              Debug logging
  -v, --version          Print version information and exit
  -h, --help             Show this help message

DEPENDENCY FILE:
  requests: "2.28.0"
  rich:
    min_version: "13.0.0"
    module: rich.console

ENVIRONMENT VARIABLES:
  DEPBOOT_PYTHON                Interpreter
  DEPBOOT_DEPS_FILE             Dependency file
  DEPBOOT_REPORT                Report path
  DEPBOOT_MIN_RUNTIME           Minimum interpreter version
  DEPBOOT_COMMAND_TIMEOUT=120   Per-command timeout in seconds
  DEPBOOT_ENTRYPOINT            Suggested script
  DEPBOOT_OUTPUT=plain          Output mode
  DEPBOOT_LOG_LEVEL=debug       Log level (debug|info|warn|error)

  Note: CLI flags override environment variables.

EXIT STATUS:
  0  every dependency installed and imported
  1  anything else
`

// PrintHelp writes the help message to w.
func PrintHelp(w io.Writer) {
	fmt.Fprint(w, helpText)
}

// PrintVersion writes build information to w.
func PrintVersion(w io.Writer, version, commit, date string) {
	fmt.Fprintf(w, "depboot %s\n", version)
	fmt.Fprintf(w, "  Commit:  %s\n", commit)
	fmt.Fprintf(w, "  Built:   %s\n", date)
	fmt.Fprintf(w, "  Go:      %s\n", runtime.Version())
}
