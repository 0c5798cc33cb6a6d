// Package main implements the depboot CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/pflag"

	"depboot/internal/adapters/output"
	"depboot/internal/adapters/python"
	"depboot/internal/core/domain"
	"depboot/internal/core/ports"
	"depboot/internal/core/usecases"
	"depboot/internal/platform/config"
	"depboot/internal/platform/envprobe"
	"depboot/internal/platform/execx"
	"depboot/internal/platform/logx"
	"depboot/internal/platform/privilege"
	"depboot/internal/platform/ui"
)

var (
	version = "1.0.0"
	commit  = "none"
	date    = "unknown"
)

// childEnv is appended to the environment of every interpreter and pip call.
var childEnv = []string{
	"PYTHONIOENCODING=utf-8",
	"PIP_DISABLE_PIP_VERSION_CHECK=1",
}

func main() {
	os.Exit(realMain(os.Args[1:]))
}

func realMain(args []string) int {
	cfg, err := config.Load(args)
	if errors.Is(err, pflag.ErrHelp) {
		config.PrintHelp(os.Stdout)
		return 0
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "depboot: %v\n\nRun 'depboot --help' for usage.\n", err)
		return 1
	}

	if cfg.ShowVersion {
		config.PrintVersion(os.Stdout, version, commit, date)
		return 0
	}

	logger := newLogger(cfg).With("run", uuid.NewString())

	// The report owns stdout when written there.
	reporterOut := os.Stdout
	if cfg.ReportPath == output.StdoutPath {
		reporterOut = os.Stderr
	}
	reporter := ui.NewReporter(cfg.Output, reporterOut)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return exitCode(run(ctx, cfg, reporter, logger))
}

func newLogger(cfg config.Config) logx.Logger {
	logger := logx.New()
	switch {
	case cfg.Verbose:
		logger.SetLevel(logx.LevelDebug)
	case cfg.Quiet:
		logger.SetLevel(logx.LevelError)
	}
	return logger
}

// run wires the pipeline and executes it once. A panic below this point is
// reported and converted into an error.
func run(ctx context.Context, cfg config.Config, reporter ports.Reporter, logger logx.Logger) (err error) {
	defer func() {
		if r := recover(); r != nil {
			reporter.Status("💥", "Unexpected error", ports.SeverityError, fmt.Sprint(r))
			err = fmt.Errorf("unexpected error: %v", r)
			logger.Err(err, "event", "panic_recovered")
		}
	}()

	spec, err := config.LoadDependencySpec(cfg.DepsFile)
	if err != nil {
		reporter.Status("❌", "Invalid dependency file", ports.SeverityError, err.Error())
		return err
	}

	if cfgJSON, jerr := cfg.ToJSON(); jerr == nil {
		logger.Debug("configuration loaded", "config", cfgJSON, "dependencies", spec.Len())
	}

	pipeline, err := buildPipeline(cfg, spec, reporter, logger)
	if err != nil {
		return err
	}

	summary, err := pipeline.Run(ctx)
	logger.Debug("run finished",
		"duration", summary.Duration,
		"outcomes", len(summary.Outcomes),
		"report_written", summary.ReportWritten,
	)
	if err != nil {
		logger.Err(err, "event", "bootstrap_failed")
	}
	return err
}

func buildPipeline(cfg config.Config, spec domain.DependencySpec, reporter ports.Reporter, logger logx.Logger) (*usecases.Pipeline, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("working directory: %w", err)
	}

	runner := execx.New(execx.Options{
		Timeout: cfg.CommandTimeout(),
		Env:     childEnv,
		Logger:  logger,
	})
	interp := python.New(runner, cfg.Python, logger)

	detector := envprobe.New(envprobe.Options{
		Inspector: interp,
		Logger:    logger,
	})

	bootstrapper := usecases.NewManagerBootstrapper(usecases.ManagerBootstrapperOptions{
		Runner:   runner,
		Python:   cfg.Python,
		Reporter: reporter,
		Logger:   logger,
	})

	installer := usecases.NewInstallStrategyEngine(usecases.InstallStrategyEngineOptions{
		Runner: runner,
		Python: cfg.Python,
		Logger: logger,
	})

	resolver := usecases.NewDependencyResolver(usecases.DependencyResolverOptions{
		Presence:  interp.Presence(),
		Versions:  interp,
		Installer: installer,
		Reporter:  reporter,
		Logger:    logger,
	})

	verifier := usecases.NewVerificationStage(usecases.VerificationStageOptions{
		Importer: interp,
		Reporter: reporter,
		Logger:   logger,
	})

	return usecases.NewPipeline(usecases.PipelineOptions{
		Detector:     detector,
		Privilege:    privilege.Current(),
		Bootstrapper: bootstrapper,
		Resolver:     resolver,
		Verifier:     verifier,
		Persister:    output.NewReportPersister(cfg.ReportPath),
		Spec:         spec,
		MinRuntime:   cfg.MinRuntime,
		WorkingDir:   wd,
		NextSteps:    nextSteps(cfg),
		Reporter:     reporter,
		Logger:       logger,
	}), nil
}

func nextSteps(cfg config.Config) []string {
	return []string{
		fmt.Sprintf("Start the application: %s %s", cfg.Python, cfg.Entrypoint),
		"Check that its credential and cookie files are in place",
		"Make sure the network connection is stable",
		"Press Ctrl+C to stop it",
	}
}

// exitCode maps a run result to the process exit status.
func exitCode(err error) int {
	if err != nil {
		return 1
	}
	return 0
}
