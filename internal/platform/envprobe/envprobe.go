// internal/platform/envprobe/envprobe.go
// Package envprobe fingerprints the host and the managed interpreter.
package envprobe

import (
	"context"
	"os"
	"runtime"
	"strings"

	"depboot/internal/core/domain"
	"depboot/internal/core/ports"
	"depboot/internal/platform/logx"
)

// SandboxRoot is the data directory of the Termux app on Android.
const SandboxRoot = "/data/data/com.termux"

// sandboxMarker appears in interpreter paths inside Termux.
const sandboxMarker = "com.termux"

// sandboxEnvVars are exported by the Termux app to its shells.
var sandboxEnvVars = []string{"TERMUX_VERSION", "TERMUX_APP_PID"}

// Probe implements ports.EnvironmentDetector.
type Probe struct {
	inspector ports.RuntimeInspector
	logger    logx.Logger

	goos      string
	goarch    string
	lookupEnv func(string) (string, bool)
	homeDir   func() (string, error)
}

// Options configures a Probe. Zero values use the running process.
type Options struct {
	Inspector ports.RuntimeInspector
	Logger    logx.Logger

	GOOS      string
	GOARCH    string
	LookupEnv func(string) (string, bool)
	HomeDir   func() (string, error)
}

// New creates a Probe.
func New(opts Options) *Probe {
	if opts.Logger == nil {
		opts.Logger = logx.New()
	}
	if opts.GOOS == "" {
		opts.GOOS = runtime.GOOS
	}
	if opts.GOARCH == "" {
		opts.GOARCH = runtime.GOARCH
	}
	if opts.LookupEnv == nil {
		opts.LookupEnv = os.LookupEnv
	}
	if opts.HomeDir == nil {
		opts.HomeDir = os.UserHomeDir
	}
	return &Probe{
		inspector: opts.Inspector,
		logger:    opts.Logger.With("component", "envprobe"),
		goos:      opts.GOOS,
		goarch:    opts.GOARCH,
		lookupEnv: opts.LookupEnv,
		homeDir:   opts.HomeDir,
	}
}

// Detect never fails: anything that cannot be learned is reported as
// domain.Unknown.
func (p *Probe) Detect(ctx context.Context) domain.EnvironmentInfo {
	env := domain.EnvironmentInfo{
		OSFamily:          domain.OSFamilyFromGOOS(p.goos),
		OSName:            osName(p.goos),
		Architecture:      p.goarch,
		RuntimeVersion:    domain.Unknown,
		RuntimeExecutable: domain.Unknown,
		RuntimePrefix:     domain.Unknown,
	}

	var info ports.RuntimeInfo
	if p.inspector != nil {
		var err error
		info, err = p.inspector.Inspect(ctx)
		if err != nil {
			p.logger.Warn("interpreter inspection failed", "error", err.Error())
		}
	}

	if info.Version != "" {
		env.RuntimeVersion = info.Version
	}
	if info.Executable != "" {
		env.RuntimeExecutable = info.Executable
	}
	if info.Prefix != "" {
		env.RuntimePrefix = info.Prefix
	}
	if info.Machine != "" {
		env.Architecture = info.Machine
	}
	if info.Platform != "" {
		env.OSName = info.Platform
	}

	env.Sandboxed = p.sandboxed(info)
	return env
}

// sandboxed is true when any single Termux signal matches.
func (p *Probe) sandboxed(info ports.RuntimeInfo) bool {
	signals := p.sandboxSignals(info)
	for name, hit := range signals {
		if hit {
			p.logger.Debug("sandbox signal matched", "signal", name)
			return true
		}
	}
	return false
}

func (p *Probe) sandboxSignals(info ports.RuntimeInfo) map[string]bool {
	signals := make(map[string]bool, len(sandboxEnvVars)+3)
	for _, name := range sandboxEnvVars {
		_, ok := p.lookupEnv(name)
		signals["env:"+name] = ok
	}

	home, err := p.homeDir()
	signals["home"] = err == nil && strings.HasPrefix(home, SandboxRoot)
	signals["prefix"] = strings.HasPrefix(info.Prefix, SandboxRoot)
	signals["executable"] = strings.Contains(info.Executable, sandboxMarker)
	return signals
}

func osName(goos string) string {
	switch goos {
	case "linux", "android":
		return "Linux"
	case "darwin":
		return "Darwin"
	case "windows":
		return "Windows"
	case "":
		return domain.Unknown
	default:
		return goos
	}
}
