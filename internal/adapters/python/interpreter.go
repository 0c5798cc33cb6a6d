// Package python adapts a Python interpreter, driven as a child process, to
// the runtime ports: inspection, capability checks, version reads and imports.
package python

import (
	"context"
	"encoding/json"
	"strings"

	"depboot/internal/core/domain"
	"depboot/internal/core/ports"
	"depboot/internal/platform/errors"
	"depboot/internal/platform/logx"
)

// Interpreter runs snippets through one interpreter executable.
type Interpreter struct {
	runner ports.CommandRunner
	python string
	logger logx.Logger
}

// New creates an Interpreter for the given executable name or path.
func New(runner ports.CommandRunner, python string, logger logx.Logger) *Interpreter {
	if logger == nil {
		logger = logx.New()
	}
	return &Interpreter{
		runner: runner,
		python: python,
		logger: logger.With("component", "python"),
	}
}

// Executable returns the configured interpreter.
func (i *Interpreter) Executable() string {
	return i.python
}

func (i *Interpreter) command(script string, args ...string) domain.Invocation {
	return domain.Command(i.python, append([]string{"-c", script}, args...)...)
}

// Inspect implements ports.RuntimeInspector.
func (i *Interpreter) Inspect(ctx context.Context) (ports.RuntimeInfo, error) {
	res, err := i.runner.Run(ctx, i.command(inspectScript))
	if err != nil {
		return ports.RuntimeInfo{}, err
	}
	if !res.Succeeded {
		return ports.RuntimeInfo{}, errors.Wrapf(domain.ErrRuntimeUnavailable, "%s exited with %d: %s", i.python, res.ExitCode, res.Message())
	}

	var info ports.RuntimeInfo
	if err := json.Unmarshal([]byte(res.FirstLine()), &info); err != nil {
		return ports.RuntimeInfo{}, errors.Wrapf(err, "decode interpreter facts")
	}
	return info, nil
}

// ModuleLoadable checks presence by importing the module.
func (i *Interpreter) ModuleLoadable() ports.CapabilityCheck {
	return &snippetCheck{name: "module_loadable", script: loadScript, interp: i}
}

// PackageIndexEntry checks presence through the import system's finder,
// without executing the module.
func (i *Interpreter) PackageIndexEntry() ports.CapabilityCheck {
	return &snippetCheck{name: "package_index_entry", script: findSpecScript, interp: i}
}

// Presence is ModuleLoadable OR PackageIndexEntry.
func (i *Interpreter) Presence() ports.CapabilityCheck {
	return ports.AnyOf(i.ModuleLoadable(), i.PackageIndexEntry())
}

type snippetCheck struct {
	name   string
	script string
	interp *Interpreter
}

func (c *snippetCheck) Name() string { return c.name }

func (c *snippetCheck) Check(ctx context.Context, req domain.Requirement) ports.Presence {
	res, err := c.interp.runner.Run(ctx, c.interp.command(c.script, req.ImportPath()))
	if err != nil {
		c.interp.logger.Debug("capability check could not run", "check", c.name, "module", req.ImportPath(), "error", err.Error())
		return ports.PresenceError
	}

	switch res.ExitCode {
	case exitLoaded:
		return ports.PresenceLoaded
	case exitImportFail:
		return ports.PresenceAbsent
	default:
		c.interp.logger.Debug("capability check failed", "check", c.name, "module", req.ImportPath(), "exit_code", res.ExitCode)
		return ports.PresenceError
	}
}

// ReadVersion implements ports.VersionReader. A module without __version__
// yields an empty string.
func (i *Interpreter) ReadVersion(ctx context.Context, req domain.Requirement) (string, error) {
	res, err := i.runner.Run(ctx, i.command(versionScript, req.ImportPath()))
	if err != nil {
		return "", err
	}
	if !res.Succeeded {
		return "", errors.New(res.Message())
	}
	return strings.TrimSpace(res.FirstLine()), nil
}

// Import implements ports.Importer with a fresh interpreter process.
func (i *Interpreter) Import(ctx context.Context, req domain.Requirement) domain.VerificationResult {
	out := domain.VerificationResult{Name: req.Name}

	res, err := i.runner.Run(ctx, i.command(importScript, req.ImportPath()))
	if err != nil {
		out.Detail = "error: " + clip(err.Error(), 50)
		return out
	}

	switch res.ExitCode {
	case exitLoaded:
		out.OK = true
		out.Detail = "import OK"
	case exitImportFail:
		out.Detail = clip(res.FirstLine(), 50)
	default:
		msg := res.FirstLine()
		if msg == "" {
			msg = res.Message()
		}
		out.Detail = "error: " + clip(msg, 50)
	}
	return out
}

func clip(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
