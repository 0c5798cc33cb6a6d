// internal/platform/config/config_test.go
package config

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/spf13/pflag"

	"depboot/internal/platform/ui"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"DEPBOOT_PYTHON", "DEPBOOT_DEPS_FILE", "DEPBOOT_REPORT",
		"DEPBOOT_MIN_RUNTIME", "DEPBOOT_COMMAND_TIMEOUT", "DEPBOOT_OUTPUT",
		"DEPBOOT_ENTRYPOINT",
	} {
		t.Setenv(k, "")
	}
}

func TestGetenv(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		def      string
		envValue string
		expected string
	}{
		{
			name:     "env var exists",
			key:      "DEPBOOT_TEST_KEY_1",
			def:      "default",
			envValue: "custom",
			expected: "custom",
		},
		{
			name:     "env var empty string",
			key:      "DEPBOOT_TEST_KEY_EMPTY",
			def:      "default",
			envValue: "",
			expected: "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.envValue)

			result := getenv(tt.key, tt.def)

			if result != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, result)
			}
		})
	}
}

func TestParseInt(t *testing.T) {
	tests := []struct {
		input    string
		def      int
		expected int
	}{
		{"42", 0, 42},
		{" 7 ", 0, 7},
		{"-3", 0, -3},
		{"abc", 9, 9},
		{"", 5, 5},
		{"1.5", 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseInt(tt.input, tt.def); got != tt.expected {
				t.Errorf("parseInt(%q, %d): expected %d, got %d", tt.input, tt.def, tt.expected, got)
			}
		})
	}
}

func TestDefaultPython(t *testing.T) {
	if got := defaultPython("windows"); got != "python" {
		t.Errorf("windows: expected python, got %q", got)
	}
	if got := defaultPython("linux"); got != "python3" {
		t.Errorf("linux: expected python3, got %q", got)
	}
}

func TestNormalize(t *testing.T) {
	cfg := Config{
		Python:          "  python3.11 ",
		ReportPath:      "",
		MinRuntime:      " 3.8.0",
		CommandTimeoutS: -4,
	}

	normalize(&cfg)

	if cfg.Python != "python3.11" {
		t.Errorf("Python: got %q", cfg.Python)
	}
	if cfg.ReportPath != DefaultReportPath {
		t.Errorf("ReportPath: got %q", cfg.ReportPath)
	}
	if cfg.MinRuntime != "3.8.0" {
		t.Errorf("MinRuntime: got %q", cfg.MinRuntime)
	}
	if cfg.CommandTimeoutS != 0 {
		t.Errorf("CommandTimeoutS: got %d", cfg.CommandTimeoutS)
	}
	if cfg.Output != ui.ModeAuto {
		t.Errorf("Output: got %q", cfg.Output)
	}
}

func TestConfig_CommandTimeout(t *testing.T) {
	tests := []struct {
		name     string
		timeoutS int
		expected time.Duration
	}{
		{"two minutes", 120, 2 * time.Minute},
		{"zero", 0, 0},
		{"negative", -5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{CommandTimeoutS: tt.timeoutS}
			if got := cfg.CommandTimeout(); got != tt.expected {
				t.Errorf("CommandTimeout(): expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.ReportPath != DefaultReportPath {
		t.Errorf("ReportPath: got %q", cfg.ReportPath)
	}
	if cfg.MinRuntime != DefaultMinRuntime {
		t.Errorf("MinRuntime: got %q", cfg.MinRuntime)
	}
	if cfg.DepsFile != "" {
		t.Errorf("DepsFile: got %q", cfg.DepsFile)
	}
	if cfg.Output != ui.ModeAuto {
		t.Errorf("Output: got %q", cfg.Output)
	}
	if cfg.CommandTimeout() != 0 {
		t.Errorf("CommandTimeout: got %s", cfg.CommandTimeout())
	}
	if cfg.Entrypoint != DefaultEntrypoint {
		t.Errorf("Entrypoint: got %q", cfg.Entrypoint)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("DEPBOOT_PYTHON", "python3.12")
	t.Setenv("DEPBOOT_DEPS_FILE", "deps.yaml")
	t.Setenv("DEPBOOT_REPORT", "out/report.json")
	t.Setenv("DEPBOOT_MIN_RUNTIME", "3.9.0")
	t.Setenv("DEPBOOT_COMMAND_TIMEOUT", "90")
	t.Setenv("DEPBOOT_OUTPUT", "json")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Python != "python3.12" {
		t.Errorf("Python: got %q", cfg.Python)
	}
	if cfg.DepsFile != "deps.yaml" {
		t.Errorf("DepsFile: got %q", cfg.DepsFile)
	}
	if cfg.ReportPath != "out/report.json" {
		t.Errorf("ReportPath: got %q", cfg.ReportPath)
	}
	if cfg.MinRuntime != "3.9.0" {
		t.Errorf("MinRuntime: got %q", cfg.MinRuntime)
	}
	if cfg.CommandTimeout() != 90*time.Second {
		t.Errorf("CommandTimeout: got %s", cfg.CommandTimeout())
	}
	if cfg.Output != ui.ModeJSON {
		t.Errorf("Output: got %q", cfg.Output)
	}
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("DEPBOOT_PYTHON", "python3.12")
	t.Setenv("DEPBOOT_OUTPUT", "json")

	cfg, err := Load([]string{"--python", "pypy3", "--output", "plain", "--report", "-", "-q"})
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Python != "pypy3" {
		t.Errorf("Python: got %q", cfg.Python)
	}
	if cfg.Output != ui.ModePlain {
		t.Errorf("Output: got %q", cfg.Output)
	}
	if cfg.ReportPath != "-" {
		t.Errorf("ReportPath: got %q", cfg.ReportPath)
	}
	if !cfg.Quiet {
		t.Error("Quiet: expected true")
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
		want string
	}{
		{"bad output flag", nil, []string{"--output", "fancy"}, "invalid output mode"},
		{"bad output env", map[string]string{"DEPBOOT_OUTPUT": "fancy"}, nil, "DEPBOOT_OUTPUT"},
		{"two component min runtime", nil, []string{"--min-runtime", "3.7"}, "invalid minimum runtime"},
		{"verbose and quiet", nil, []string{"--verbose", "--quiet"}, "mutually exclusive"},
		{"positional argument", nil, []string{"extra"}, "unexpected arguments"},
		{"unknown flag", nil, []string{"--target", "x"}, "unknown flag"},
		{"empty python", nil, []string{"--python", " "}, "must not be empty"},
		{"option as python", nil, []string{"--python=-c"}, "invalid interpreter name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load(tt.args)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestLoad_Help(t *testing.T) {
	clearEnv(t)

	_, err := Load([]string{"-h"})
	if !errors.Is(err, pflag.ErrHelp) {
		t.Fatalf("expected pflag.ErrHelp, got %v", err)
	}
}

func TestLoad_Version(t *testing.T) {
	clearEnv(t)

	cfg, err := Load([]string{"-v"})
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if !cfg.ShowVersion {
		t.Error("ShowVersion: expected true")
	}
}

func TestPrintHelpAndVersion(t *testing.T) {
	var buf bytes.Buffer
	PrintHelp(&buf)
	if !strings.Contains(buf.String(), "--min-runtime") {
		t.Error("help text misses --min-runtime")
	}

	buf.Reset()
	PrintVersion(&buf, "1.2.3", "abc123", "2025-01-01")
	if !strings.HasPrefix(buf.String(), "depboot 1.2.3\n") {
		t.Errorf("unexpected version output: %q", buf.String())
	}
}
