// internal/core/usecases/manager_bootstrapper.go
package usecases

import (
	"context"

	"depboot/internal/core/domain"
	"depboot/internal/core/ports"
	"depboot/internal/platform/logx"
	"depboot/internal/platform/ui"
)

// ManagerBootstrapper makes sure pip answers before anything is installed.
type ManagerBootstrapper struct {
	runner   ports.CommandRunner
	python   string
	reporter ports.Reporter
	logger   logx.Logger
}

// ManagerBootstrapperOptions configures a ManagerBootstrapper.
type ManagerBootstrapperOptions struct {
	Runner   ports.CommandRunner
	Python   string
	Reporter ports.Reporter
	Logger   logx.Logger
}

// NewManagerBootstrapper creates a bootstrapper.
func NewManagerBootstrapper(opts ManagerBootstrapperOptions) *ManagerBootstrapper {
	if opts.Python == "" {
		opts.Python = "python3"
	}
	if opts.Reporter == nil {
		opts.Reporter = ui.NewNoopReporter()
	}
	if opts.Logger == nil {
		opts.Logger = logx.New()
	}
	return &ManagerBootstrapper{
		runner:   opts.Runner,
		python:   opts.Python,
		reporter: opts.Reporter,
		logger:   opts.Logger.With("component", "manager_bootstrapper"),
	}
}

// ProbeCommand is the version query used to detect a working manager.
func (b *ManagerBootstrapper) ProbeCommand() domain.Invocation {
	return domain.Command(b.python, "-m", "pip", "--version")
}

// BootstrapCommand selects the single bootstrap command for env.
// Windows and Unix hosts both use ensurepip; Termux has no ensurepip and
// ships pip as a system package.
func (b *ManagerBootstrapper) BootstrapCommand(env domain.EnvironmentInfo) domain.Invocation {
	if env.Sandboxed {
		return domain.Command("pkg", "install", "python-pip", "-y")
	}
	return domain.Command(b.python, "-m", "ensurepip", "--upgrade")
}

// Ensure reports whether the manager is runnable, bootstrapping it once if needed.
func (b *ManagerBootstrapper) Ensure(ctx context.Context, env domain.EnvironmentInfo) bool {
	probe := b.ProbeCommand()
	res, err := b.runner.Run(ctx, probe)
	if err == nil && res.Succeeded {
		b.logger.Debug("package manager present", "banner", res.FirstLine())
		b.reporter.Status("✅", "pip is installed", ports.SeveritySuccess, res.FirstLine())
		return true
	}
	if err != nil {
		b.logger.Warn("manager probe could not run", "command", probe.String(), "error", err.Error())
	}

	b.reporter.Status("⚠️", "pip is not installed", ports.SeverityWarning, "")

	cmd := b.BootstrapCommand(env)
	b.reporter.Status("📦", "Installing pip", ports.SeverityInfo, cmd.String())
	b.logger.Info("bootstrapping package manager", "command", cmd.String())

	res, err = b.runner.Run(ctx, cmd)
	if err != nil {
		b.logger.Err(err, "command", cmd.String())
		b.reporter.Status("❌", "Could not install pip", ports.SeverityError, truncate(err.Error(), 100))
		return false
	}
	if !res.Succeeded {
		b.logger.Warn("bootstrap command failed", "exit_code", res.ExitCode)
		b.reporter.Status("❌", "Could not install pip", ports.SeverityError, truncate(res.Message(), 100))
		return false
	}

	b.reporter.Status("✅", "pip installed", ports.SeveritySuccess, "")
	return true
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
