// internal/core/usecases/install_strategy.go
package usecases

import (
	"context"

	"depboot/internal/core/domain"
	"depboot/internal/core/ports"
	"depboot/internal/platform/errors"
	"depboot/internal/platform/logx"
)

// Strategy is one way of invoking the package manager's install command.
// The package argument goes between Prefix and Suffix.
type Strategy struct {
	Name   string
	Path   string
	Prefix []string
	Suffix []string
}

// Invocation builds the install command for pkg.
func (s Strategy) Invocation(pkg string) domain.Invocation {
	args := make([]string, 0, len(s.Prefix)+len(s.Suffix)+1)
	args = append(args, s.Prefix...)
	args = append(args, pkg)
	args = append(args, s.Suffix...)
	return domain.Invocation{Path: s.Path, Args: args}
}

// DefaultStrategies returns the ordered install strategies for env.
func DefaultStrategies(python string, env domain.EnvironmentInfo) []Strategy {
	switch {
	case env.Sandboxed:
		return []Strategy{
			{Name: "runtime module", Path: python, Prefix: []string{"-m", "pip", "install"}, Suffix: []string{"--upgrade"}},
			{Name: "pip", Path: "pip", Prefix: []string{"install"}, Suffix: []string{"--upgrade"}},
		}
	case env.IsWindows():
		return []Strategy{
			{Name: "runtime module", Path: python, Prefix: []string{"-m", "pip", "install"}, Suffix: []string{"--upgrade"}},
			{Name: "py launcher", Path: "py", Prefix: []string{"-m", "pip", "install"}, Suffix: []string{"--upgrade"}},
			{Name: "pip", Path: "pip", Prefix: []string{"install"}, Suffix: []string{"--upgrade"}},
		}
	default:
		return []Strategy{
			{Name: "runtime module", Path: python, Prefix: []string{"-m", "pip", "install"}, Suffix: []string{"--upgrade", "--user"}},
			{Name: "pip3", Path: "pip3", Prefix: []string{"install"}, Suffix: []string{"--upgrade", "--user"}},
			{Name: "python3 module", Path: "python3", Prefix: []string{"-m", "pip", "install"}, Suffix: []string{"--upgrade", "--user"}},
		}
	}
}

// StrategyFunc selects strategies for an environment.
type StrategyFunc func(env domain.EnvironmentInfo) []Strategy

// InstallStrategyEngine tries install strategies in order, each first with the
// version pin and then unconstrained, stopping at the first success.
type InstallStrategyEngine struct {
	runner     ports.CommandRunner
	strategies StrategyFunc
	logger     logx.Logger
}

// InstallStrategyEngineOptions configures an InstallStrategyEngine.
type InstallStrategyEngineOptions struct {
	Runner ports.CommandRunner
	Python string
	// Strategies overrides DefaultStrategies.
	Strategies StrategyFunc
	Logger     logx.Logger
}

// NewInstallStrategyEngine creates an engine.
func NewInstallStrategyEngine(opts InstallStrategyEngineOptions) *InstallStrategyEngine {
	if opts.Python == "" {
		opts.Python = "python3"
	}
	if opts.Logger == nil {
		opts.Logger = logx.New()
	}
	if opts.Strategies == nil {
		python := opts.Python
		opts.Strategies = func(env domain.EnvironmentInfo) []Strategy {
			return DefaultStrategies(python, env)
		}
	}
	return &InstallStrategyEngine{
		runner:     opts.Runner,
		strategies: opts.Strategies,
		logger:     opts.Logger.With("component", "install_strategy"),
	}
}

// Attempts lists every command Install would try for req, in order.
func (e *InstallStrategyEngine) Attempts(req domain.Requirement, env domain.EnvironmentInfo) []domain.Invocation {
	strategies := e.strategies(env)
	out := make([]domain.Invocation, 0, len(strategies)*2)
	for _, s := range strategies {
		out = append(out, s.Invocation(req.Pin()), s.Invocation(req.Name))
	}
	return out
}

// Install runs the attempts until one succeeds and returns nil. Runner errors
// count as a failed attempt. When every attempt fails, or ctx ends first, it
// returns a *domain.InstallError describing the last attempt.
func (e *InstallStrategyEngine) Install(ctx context.Context, req domain.Requirement, env domain.EnvironmentInfo) error {
	failure := &domain.InstallError{Package: req.Name}
	for i, inv := range e.Attempts(req, env) {
		if ctxErr := ctx.Err(); ctxErr != nil {
			failure.Cause = errors.Classify(ctxErr)
			break
		}
		failure.Attempts = i + 1
		failure.Command = inv.String()

		res, err := e.runner.Run(ctx, inv)
		failure.Last, failure.Cause = res, err
		if err != nil {
			e.logger.Debug("install attempt could not run", "attempt", i+1, "command", inv.String(), "error", err.Error())
			continue
		}
		if res.Succeeded {
			e.logger.Info("install attempt succeeded", "package", req.Name, "attempt", i+1, "command", inv.String())
			return nil
		}
		e.logger.Debug("install attempt failed", "attempt", i+1, "command", inv.String(), "exit_code", res.ExitCode)
	}

	e.logger.Warn("all install strategies failed", "package", req.Name, "attempts", failure.Attempts, "error", failure.Error())
	return failure
}
