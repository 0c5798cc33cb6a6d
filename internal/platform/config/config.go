// internal/platform/config/config.go
package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"depboot/internal/platform/ui"
	"depboot/internal/platform/validator"
	"depboot/internal/platform/version"
)

// Defaults.
const (
	DefaultReportPath = "install_config.json"
	DefaultMinRuntime = "3.7.0"
	DefaultEntrypoint = "main.py"
)

type Config struct {
	// Runtime
	Python     string
	MinRuntime string

	// Dependencies
	DepsFile string // empty = built-in table

	// Command execution
	CommandTimeoutS int // per command, seconds (0 = no timeout)

	// Output
	ReportPath string // "-" = stdout
	Output     ui.Mode
	Verbose    bool
	Quiet      bool

	// Entrypoint is the script suggested after a successful run.
	Entrypoint string

	ShowVersion bool
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		Python:     defaultPython(runtime.GOOS),
		MinRuntime: DefaultMinRuntime,
		ReportPath: DefaultReportPath,
		Output:     ui.ModeAuto,
		Entrypoint: DefaultEntrypoint,
	}
}

func defaultPython(goos string) string {
	if goos == "windows" {
		return "python"
	}
	return "python3"
}

// Load builds the configuration: defaults, then DEPBOOT_* env, then flags.
// It returns pflag.ErrHelp when -h/--help was given.
func Load(args []string) (Config, error) {
	cfg := DefaultConfig()

	if err := loadFromEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := loadFromFlags(&cfg, args); err != nil {
		return cfg, err
	}

	normalize(&cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadFromEnv(cfg *Config) error {
	if v := getenv("DEPBOOT_PYTHON", ""); v != "" {
		cfg.Python = v
	}
	if v := getenv("DEPBOOT_DEPS_FILE", ""); v != "" {
		cfg.DepsFile = v
	}
	if v := getenv("DEPBOOT_REPORT", ""); v != "" {
		cfg.ReportPath = v
	}
	if v := getenv("DEPBOOT_MIN_RUNTIME", ""); v != "" {
		cfg.MinRuntime = v
	}
	if v := getenv("DEPBOOT_COMMAND_TIMEOUT", ""); v != "" {
		cfg.CommandTimeoutS = parseInt(v, cfg.CommandTimeoutS)
	}
	if v := getenv("DEPBOOT_ENTRYPOINT", ""); v != "" {
		cfg.Entrypoint = v
	}
	if v := getenv("DEPBOOT_OUTPUT", ""); v != "" {
		mode, err := ui.ParseMode(v)
		if err != nil {
			return fmt.Errorf("DEPBOOT_OUTPUT: %w", err)
		}
		cfg.Output = mode
	}
	return nil
}

func loadFromFlags(cfg *Config, args []string) error {
	fs := pflag.NewFlagSet("depboot", pflag.ContinueOnError)
	fs.SortFlags = false
	fs.Usage = func() {}
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.Python, "python", cfg.Python, "Interpreter to manage")
	fs.StringVar(&cfg.DepsFile, "deps", cfg.DepsFile, "YAML dependency file (default: built-in table)")
	fs.StringVar(&cfg.ReportPath, "report", cfg.ReportPath, `Report path ("-" for stdout)`)
	fs.StringVar(&cfg.MinRuntime, "min-runtime", cfg.MinRuntime, "Minimum interpreter version")
	fs.IntVar(&cfg.CommandTimeoutS, "timeout", cfg.CommandTimeoutS, "Per-command timeout in seconds (0 = none)")
	fs.StringVar(&cfg.Entrypoint, "entry", cfg.Entrypoint, "Script suggested after a successful run")
	output := fs.String("output", string(cfg.Output), "Output mode: "+strings.Join(ui.Modes(), "|"))
	fs.BoolVarP(&cfg.Quiet, "quiet", "q", cfg.Quiet, "Only log errors")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "Debug logging")
	fs.BoolVarP(&cfg.ShowVersion, "version", "v", false, "Print version and exit")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	if fs.Changed("output") {
		mode, err := ui.ParseMode(*output)
		if err != nil {
			return err
		}
		cfg.Output = mode
	}
	return nil
}

func normalize(c *Config) {
	c.Python = strings.TrimSpace(c.Python)
	c.DepsFile = strings.TrimSpace(c.DepsFile)
	c.ReportPath = strings.TrimSpace(c.ReportPath)
	c.MinRuntime = strings.TrimSpace(c.MinRuntime)
	if c.CommandTimeoutS < 0 {
		c.CommandTimeoutS = 0
	}
	if c.ReportPath == "" {
		c.ReportPath = DefaultReportPath
	}
	if c.Entrypoint = strings.TrimSpace(c.Entrypoint); c.Entrypoint == "" {
		c.Entrypoint = DefaultEntrypoint
	}
	if c.Output == "" {
		c.Output = ui.ModeAuto
	}
}

// Validate checks fields that cannot be normalized.
func (c Config) Validate() error {
	if c.Python == "" {
		return fmt.Errorf("interpreter name must not be empty")
	}
	if !validator.IsCommandName(c.Python) {
		return fmt.Errorf("invalid interpreter name %q", c.Python)
	}
	if !version.IsStrict(c.MinRuntime) {
		return fmt.Errorf("invalid minimum runtime %q: expected MAJOR.MINOR.PATCH", c.MinRuntime)
	}
	if c.Verbose && c.Quiet {
		return fmt.Errorf("--verbose and --quiet are mutually exclusive")
	}
	return nil
}

// ToJSON serializes the configuration, useful for debug logs.
func (c Config) ToJSON() (string, error) {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// CommandTimeout returns the per-command timeout as a duration.
func (c Config) CommandTimeout() time.Duration {
	if c.CommandTimeoutS <= 0 {
		return 0
	}
	return time.Duration(c.CommandTimeoutS) * time.Second
}

// Helpers

func getenv(k, def string) string {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		return v
	}
	return def
}

func parseInt(v string, def int) int {
	i, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	return i
}
